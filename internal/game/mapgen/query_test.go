package mapgen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/udisondev/spirego/internal/model"
)

func TestAvailableNextNodes(t *testing.T) {
	m := Generate(1, 42)

	next := AvailableNextNodes(m, "node_3_0")
	require.Len(t, next, 2)
	ids := []string{next[0].ID, next[1].ID}
	assert.ElementsMatch(t, []string{"node_2_0", "node_2_1"}, ids)

	assert.Empty(t, AvailableNextNodes(m, "node_0_0"))
	assert.Nil(t, AvailableNextNodes(m, "missing"))
}

func TestMoveToNode(t *testing.T) {
	m := Generate(1, 42)

	moved := MoveToNode(m, "node_13_1")
	assert.Equal(t, "node_13_1", moved.CurrentNodeID)
	n, _ := moved.Node("node_13_1")
	assert.True(t, n.Visited)

	// Input untouched.
	orig, _ := m.Node("node_13_1")
	assert.False(t, orig.Visited)
	assert.Equal(t, "node_14_1", m.CurrentNodeID)
}

func TestMoveToNode_UnknownIsNoop(t *testing.T) {
	m := Generate(1, 42)
	assert.Equal(t, m, MoveToNode(m, "node_99_0"))
}

func TestProgress(t *testing.T) {
	m := Generate(1, 42)
	assert.InDelta(t, 0.0, Progress(m), 1e-9)

	m = MoveToNode(m, "node_7_0")
	assert.InDelta(t, 50.0, Progress(m), 1e-9)

	m = MoveToNode(m, "node_0_0")
	assert.InDelta(t, 100.0, Progress(m), 1e-9)
	assert.True(t, HasReachedBoss(m))

	m.CurrentNodeID = "gone"
	assert.Equal(t, 0.0, Progress(m))
	assert.False(t, HasReachedBoss(m))
}

func TestValidate_DetectsBrokenMaps(t *testing.T) {
	good := model.GameMap{
		Height: 2,
		Nodes: []model.MapNode{
			{ID: "node_0_0", Type: model.NodeBoss, Y: 0},
			{ID: "node_1_0", Type: model.NodeMonster, Y: 1, Connections: []string{"node_0_0"}},
		},
		CurrentNodeID: "node_1_0",
	}
	require.NoError(t, Validate(good))

	deadEnd := good.Clone()
	deadEnd.Nodes[1].Connections = nil
	assert.Error(t, Validate(deadEnd))

	skipRow := model.GameMap{
		Height: 3,
		Nodes: []model.MapNode{
			{ID: "node_0_0", Type: model.NodeBoss, Y: 0},
			{ID: "node_1_0", Type: model.NodeMonster, Y: 1, Connections: []string{"node_0_0"}},
			{ID: "node_2_0", Type: model.NodeMonster, Y: 2, Connections: []string{"node_0_0"}},
		},
		CurrentNodeID: "node_2_0",
	}
	assert.Error(t, Validate(skipRow))
}
