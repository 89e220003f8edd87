package mapgen

import (
	"fmt"
	"slices"

	"github.com/udisondev/spirego/internal/model"
)

// AvailableNextNodes returns the nodes listed in the connections of nodeID.
// Returns nil if nodeID is not on the map.
func AvailableNextNodes(m model.GameMap, nodeID string) []model.MapNode {
	src, ok := m.Node(nodeID)
	if !ok {
		return nil
	}

	var out []model.MapNode
	for _, n := range m.Nodes {
		if slices.Contains(src.Connections, n.ID) {
			out = append(out, n)
		}
	}
	return out
}

// MoveToNode returns a copy of m with nodeID visited and current.
// Returns m unchanged if nodeID does not exist.
func MoveToNode(m model.GameMap, nodeID string) model.GameMap {
	if _, ok := m.Node(nodeID); !ok {
		return m
	}

	out := m.Clone()
	out.CurrentNodeID = nodeID
	for i := range out.Nodes {
		if out.Nodes[i].ID == nodeID {
			out.Nodes[i].Visited = true
		}
	}
	return out
}

// Progress returns how far up the map the current node is, in percent.
// Returns 0 if the current node is not found.
func Progress(m model.GameMap) float64 {
	cur, ok := m.CurrentNode()
	if !ok || m.Height < 2 {
		return 0
	}
	maxDistance := float64(m.Height - 1)
	return float64(m.Height-1-cur.Y) / maxDistance * 100
}

// HasReachedBoss reports whether the current node is the boss.
func HasReachedBoss(m model.GameMap) bool {
	cur, ok := m.CurrentNode()
	return ok && cur.Type == model.NodeBoss
}

// Validate checks the structural invariants of a generated map:
// exactly one boss node on row 0, edges only from row y to row y-1,
// at least one outgoing edge for every non-boss node, and the boss
// reachable from every starting-row node.
func Validate(m model.GameMap) error {
	byID := make(map[string]model.MapNode, len(m.Nodes))
	for _, n := range m.Nodes {
		byID[n.ID] = n
	}

	bossRow := m.Row(0)
	if len(bossRow) != 1 || bossRow[0].Type != model.NodeBoss {
		return fmt.Errorf("boss row must hold exactly one boss node, got %d nodes", len(bossRow))
	}
	boss := bossRow[0]

	for _, n := range m.Nodes {
		if n.Type == model.NodeBoss {
			if len(n.Connections) != 0 {
				return fmt.Errorf("boss node %s has outgoing connections", n.ID)
			}
			continue
		}
		if len(n.Connections) == 0 {
			return fmt.Errorf("node %s has no outgoing connections", n.ID)
		}
		for _, id := range n.Connections {
			dst, ok := byID[id]
			if !ok {
				return fmt.Errorf("node %s connects to unknown node %s", n.ID, id)
			}
			if dst.Y != n.Y-1 {
				return fmt.Errorf("node %s (row %d) connects to %s (row %d)", n.ID, n.Y, dst.ID, dst.Y)
			}
		}
	}

	for _, start := range m.Row(m.Height - 1) {
		if !reaches(byID, start.ID, boss.ID) {
			return fmt.Errorf("boss not reachable from %s", start.ID)
		}
	}

	if _, ok := byID[m.CurrentNodeID]; !ok {
		return fmt.Errorf("current node %s not on map", m.CurrentNodeID)
	}
	return nil
}

func reaches(byID map[string]model.MapNode, from, to string) bool {
	seen := make(map[string]bool)
	stack := []string{from}
	for len(stack) > 0 {
		id := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if id == to {
			return true
		}
		if seen[id] {
			continue
		}
		seen[id] = true
		stack = append(stack, byID[id].Connections...)
	}
	return false
}
