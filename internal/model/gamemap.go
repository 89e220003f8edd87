package model

// NodeType is the encounter kind of a map node.
type NodeType string

const (
	NodeMonster  NodeType = "monster"
	NodeElite    NodeType = "elite"
	NodeBoss     NodeType = "boss"
	NodeShop     NodeType = "shop"
	NodeTreasure NodeType = "treasure"
	NodeRest     NodeType = "rest"
	NodeEvent    NodeType = "event"
	NodeUnknown  NodeType = "unknown"
)

// IsCombat reports whether entering the node starts a combat.
func (t NodeType) IsCombat() bool {
	return t == NodeMonster || t == NodeElite || t == NodeBoss
}

// Reward is the stubbed loot attached to a node.
type Reward struct {
	Kind    string
	Options []string
}

// MapNode is a vertex of the act map. Row 0 is the boss row, row Height-1
// is the starting row. Connections point from row y to row y-1 only.
type MapNode struct {
	ID          string
	Type        NodeType
	X           int
	Y           int
	Visited     bool
	Connections []string
	Reward      *Reward
}

// GameMap is the node graph of one act.
type GameMap struct {
	Act           int
	Nodes         []MapNode
	CurrentNodeID string
	Seed          int64
	Width         int
	Height        int
}

// Node returns the node with id.
func (m GameMap) Node(id string) (MapNode, bool) {
	for _, n := range m.Nodes {
		if n.ID == id {
			return n, true
		}
	}
	return MapNode{}, false
}

// CurrentNode returns the node the player stands on.
func (m GameMap) CurrentNode() (MapNode, bool) {
	return m.Node(m.CurrentNodeID)
}

// Row returns the nodes with the given y, in generation order.
func (m GameMap) Row(y int) []MapNode {
	var out []MapNode
	for _, n := range m.Nodes {
		if n.Y == y {
			out = append(out, n)
		}
	}
	return out
}

// Clone returns a deep copy.
func (m GameMap) Clone() GameMap {
	out := m
	if m.Nodes != nil {
		out.Nodes = make([]MapNode, len(m.Nodes))
		for i, n := range m.Nodes {
			if n.Connections != nil {
				n.Connections = append([]string(nil), n.Connections...)
			}
			if n.Reward != nil {
				r := *n.Reward
				r.Options = append([]string(nil), n.Reward.Options...)
				n.Reward = &r
			}
			out.Nodes[i] = n
		}
	}
	return out
}
