// Package mapgen builds the seeded node graph of an act and answers
// traversal queries over it.
package mapgen

import (
	"fmt"
	"log/slog"
	"slices"

	"github.com/udisondev/spirego/internal/model"
	"github.com/udisondev/spirego/internal/rng"
)

// Node type draw thresholds, checked in order with one draw each.
const (
	treasureChance = 0.10
	eventChance    = 0.15
	eliteChance    = 0.20

	// Below this draw a row gets two nodes, otherwise three.
	twoNodeRowChance = 0.5
	// Below this draw a node connects to one target, otherwise two.
	singleConnectionChance = 0.6
)

// Layout is the map grid size.
type Layout struct {
	Width  int
	Height int
}

// DefaultLayout returns the 7×15 grid.
func DefaultLayout() Layout {
	return Layout{Width: 7, Height: 15}
}

// Generator builds maps for a fixed layout. Safe for concurrent use: every
// Generate call owns its own random stream.
type Generator struct {
	layout Layout
}

// NewGenerator creates a Generator. Heights below 2 are raised to 2 so the
// map always has a starting row and a boss row.
func NewGenerator(layout Layout) *Generator {
	if layout.Height < 2 {
		layout.Height = 2
	}
	if layout.Width < 1 {
		layout.Width = 1
	}
	return &Generator{layout: layout}
}

// Generate builds the map for act from seed with the default layout.
func Generate(act int, seed int64) model.GameMap {
	return NewGenerator(DefaultLayout()).Generate(act, seed)
}

// Generate builds the map for act. The same act and seed always produce the
// same nodes, connections and starting node.
func (g *Generator) Generate(act int, seed int64) model.GameMap {
	stream := rng.New(seed)
	h := g.layout.Height

	rows := make([][]model.MapNode, h)
	for y := h - 1; y >= 0; y-- {
		rows[y] = g.generateRow(y, stream)
	}

	g.connectRows(rows, stream)

	bottom := rows[h-1]
	start := bottom[stream.IntN(len(bottom))]

	// Nodes are listed boss row first, matching row index order.
	nodes := make([]model.MapNode, 0, h*3)
	for y := range h {
		nodes = append(nodes, rows[y]...)
	}

	slog.Debug("map generated", "act", act, "seed", seed, "nodes", len(nodes), "start", start.ID)

	return model.GameMap{
		Act:           act,
		Nodes:         nodes,
		CurrentNodeID: start.ID,
		Seed:          seed,
		Width:         g.layout.Width,
		Height:        h,
	}
}

func (g *Generator) generateRow(y int, stream *rng.Stream) []model.MapNode {
	if y == 0 {
		return []model.MapNode{{
			ID:   nodeID(0, 0),
			Type: model.NodeBoss,
			X:    g.layout.Width / 2,
			Y:    0,
		}}
	}

	count := 3
	if stream.Next() < twoNodeRowChance {
		count = 2
	}

	spacing := float64(g.layout.Width) / float64(count+1)
	nodes := make([]model.MapNode, count)
	for i := range count {
		nodes[i] = model.MapNode{
			ID:   nodeID(y, i),
			Type: g.nodeType(y, stream),
			X:    int(spacing * float64(i+1)),
			Y:    y,
		}
	}
	return nodes
}

// nodeType applies the fixed rule precedence. Shop and rest rows consume no draws.
func (g *Generator) nodeType(y int, stream *rng.Stream) model.NodeType {
	rowFromTop := g.layout.Height - 1 - y

	switch {
	case rowFromTop > 0 && rowFromTop%5 == 0:
		return model.NodeShop
	case rowFromTop > 0 && rowFromTop%4 == 0:
		return model.NodeRest
	}

	if stream.Next() < treasureChance {
		return model.NodeTreasure
	}
	if stream.Next() < eventChance {
		return model.NodeEvent
	}
	if stream.Next() < eliteChance {
		return model.NodeElite
	}
	return model.NodeMonster
}

// connectRows links every node of row y to its 1 or 2 nearest nodes in row y-1,
// walking from the starting row up to the row below the boss.
func (g *Generator) connectRows(rows [][]model.MapNode, stream *rng.Stream) {
	for y := len(rows) - 1; y > 0; y-- {
		next := rows[y-1]
		if len(next) == 0 {
			continue
		}

		for i := range rows[y] {
			src := &rows[y][i]

			want := 1
			if len(next) > 1 && stream.Next() >= singleConnectionChance {
				want = 2
			}

			// Stable sort keeps row order on distance ties.
			sorted := slices.Clone(next)
			slices.SortStableFunc(sorted, func(a, b model.MapNode) int {
				return absInt(a.X-src.X) - absInt(b.X-src.X)
			})

			for k := 0; k < want && k < len(sorted); k++ {
				src.Connections = append(src.Connections, sorted[k].ID)
			}
		}
	}
}

func nodeID(y, i int) string {
	return fmt.Sprintf("node_%d_%d", y, i)
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
