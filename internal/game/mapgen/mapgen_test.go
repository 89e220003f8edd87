package mapgen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/udisondev/spirego/internal/model"
)

func TestGenerate_Deterministic(t *testing.T) {
	for _, seed := range []int64{0, 1, 42, 99991, 1 << 40} {
		a := Generate(1, seed)
		b := Generate(1, seed)
		require.Equal(t, a, b, "seed %d", seed)
	}
}

func TestGenerate_Invariants(t *testing.T) {
	for seed := int64(0); seed < 500; seed++ {
		m := Generate(1, seed)
		require.NoError(t, Validate(m), "seed %d", seed)

		bossRow := m.Row(0)
		require.Len(t, bossRow, 1)
		assert.Equal(t, model.NodeBoss, bossRow[0].Type)
		assert.Equal(t, 3, bossRow[0].X)

		for y := 1; y < m.Height; y++ {
			n := len(m.Row(y))
			assert.True(t, n == 2 || n == 3, "seed %d row %d has %d nodes", seed, y, n)
		}

		cur, ok := m.CurrentNode()
		require.True(t, ok)
		assert.Equal(t, m.Height-1, cur.Y)
	}
}

func TestGenerate_GoldenSeed42(t *testing.T) {
	m := Generate(1, 42)

	assert.Equal(t, 1, m.Act)
	assert.Equal(t, int64(42), m.Seed)
	assert.Equal(t, "node_14_1", m.CurrentNodeID)

	wantTypes := map[int][]model.NodeType{
		1:  {model.NodeMonster, model.NodeEvent},
		2:  {model.NodeRest, model.NodeRest},
		4:  {model.NodeShop, model.NodeShop, model.NodeShop},
		7:  {model.NodeElite, model.NodeTreasure, model.NodeMonster},
		14: {model.NodeMonster, model.NodeMonster, model.NodeTreasure},
	}
	for y, want := range wantTypes {
		row := m.Row(y)
		require.Len(t, row, len(want), "row %d", y)
		for i := range want {
			assert.Equal(t, want[i], row[i].Type, "row %d node %d", y, i)
		}
	}

	n, ok := m.Node("node_3_0")
	require.True(t, ok)
	assert.Equal(t, 1, n.X)
	assert.Equal(t, []string{"node_2_0", "node_2_1"}, n.Connections)

	n, ok = m.Node("node_12_1")
	require.True(t, ok)
	assert.Equal(t, []string{"node_11_1", "node_11_0"}, n.Connections)
}

func TestGenerate_RowRules(t *testing.T) {
	m := Generate(2, 7)
	for _, n := range m.Nodes {
		rowFromTop := m.Height - 1 - n.Y
		switch {
		case n.Y == 0:
			assert.Equal(t, model.NodeBoss, n.Type)
		case rowFromTop > 0 && rowFromTop%5 == 0:
			assert.Equal(t, model.NodeShop, n.Type, n.ID)
		case rowFromTop > 0 && rowFromTop%4 == 0:
			assert.Equal(t, model.NodeRest, n.Type, n.ID)
		default:
			assert.Contains(t, []model.NodeType{
				model.NodeTreasure, model.NodeEvent, model.NodeElite, model.NodeMonster,
			}, n.Type, n.ID)
		}
	}
}

func TestGenerate_PositionsEvenlySpaced(t *testing.T) {
	m := Generate(1, 42)
	for y := 1; y < m.Height; y++ {
		row := m.Row(y)
		switch len(row) {
		case 2:
			assert.Equal(t, []int{2, 4}, []int{row[0].X, row[1].X})
		case 3:
			assert.Equal(t, []int{1, 3, 5}, []int{row[0].X, row[1].X, row[2].X})
		}
	}
}

func TestNewGenerator_CustomLayout(t *testing.T) {
	g := NewGenerator(Layout{Width: 9, Height: 5})
	m := g.Generate(1, 3)

	require.NoError(t, Validate(m))
	assert.Equal(t, 5, m.Height)
	assert.Equal(t, 4, m.Row(0)[0].X)

	tiny := NewGenerator(Layout{Width: 0, Height: 0}).Generate(1, 3)
	require.NoError(t, Validate(tiny))
	assert.Equal(t, 2, tiny.Height)
}
