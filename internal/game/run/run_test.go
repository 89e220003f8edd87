package run

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/udisondev/spirego/internal/config"
	"github.com/udisondev/spirego/internal/game/mapgen"
	"github.com/udisondev/spirego/internal/model"
	"github.com/udisondev/spirego/internal/testutil"
)

var epoch = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

func newTestSession(t *testing.T) (*Session, *FakeClock) {
	t.Helper()
	clock := NewFakeClock(epoch)
	opts := DefaultOptions()
	opts.Clock = clock
	return NewSession(opts), clock
}

func startRun(t *testing.T, s *Session, seed int64) model.GameState {
	t.Helper()
	st, err := s.StartNewRun("ironclad", seed)
	require.NoError(t, err)
	return st
}

func firstAttack(hand []model.Card, energy int) int {
	for i, c := range hand {
		if c.Type == model.CardAttack && c.Cost <= energy {
			return i
		}
	}
	return -1
}

// fight plays attacks at the first living enemy until the combat ends.
func fight(t *testing.T, s *Session, st model.GameState) model.GameState {
	t.Helper()
	var err error
	for i := 0; st.CurrentCombat != nil; i++ {
		require.Less(t, i, 500, "combat did not end")
		c := st.CurrentCombat
		idx := firstAttack(c.Player.Hand, c.Energy)
		if idx < 0 {
			st, err = s.EndTurn()
			require.NoError(t, err)
			continue
		}
		target := ""
		if living := c.LivingEnemies(); len(living) > 0 {
			target = c.Enemies[living[0]].ID
		}
		st, err = s.PlayCard(idx, target)
		require.NoError(t, err)
	}
	return st
}

func eventKinds(st model.GameState) []model.RunEventKind {
	out := make([]model.RunEventKind, 0, len(st.RunHistory))
	for _, e := range st.RunHistory {
		out = append(out, e.Kind)
	}
	return out
}

func TestInitializeGameState(t *testing.T) {
	opts := DefaultOptions()
	opts.Clock = NewFakeClock(epoch)

	st, err := InitializeGameState("ironclad", 42, opts)
	require.NoError(t, err)

	assert.NotEmpty(t, st.RunID)
	assert.Equal(t, int64(42), st.Seed)
	assert.Equal(t, 1, st.CurrentAct)
	assert.True(t, st.IsRunActive)
	assert.Equal(t, model.OutcomeInProgress, st.Outcome)
	assert.Equal(t, epoch, st.RunStartTime)
	assert.Nil(t, st.CurrentCombat)

	assert.Equal(t, 80, st.Player.MaxHP)
	assert.Equal(t, 80, st.Player.CurrentHP)
	assert.Len(t, st.Player.Deck, 5)
	assert.ElementsMatch(t, st.Player.Deck, st.Player.DrawPile)
	assert.Empty(t, st.Player.Hand)
	require.Len(t, st.Player.Relics, 1)
	assert.Equal(t, "burning_blood", st.Player.Relics[0].ID)

	require.NoError(t, mapgen.Validate(st.CurrentMap))
	start, ok := st.CurrentMap.CurrentNode()
	require.True(t, ok)
	assert.True(t, start.Visited)
	assert.Equal(t, st.CurrentMap.Height-1, start.Y)
}

func TestInitializeGameState_UnknownCharacter(t *testing.T) {
	_, err := InitializeGameState("silent", 1, DefaultOptions())
	require.ErrorIs(t, err, model.ErrNotFound)
}

func TestSession_NoRun(t *testing.T) {
	s, _ := newTestSession(t)

	_, ok := s.State()
	assert.False(t, ok)

	_, err := s.PlayCard(0, "")
	require.ErrorIs(t, err, model.ErrIllegalState)
	_, err = s.EndTurn()
	require.ErrorIs(t, err, model.ErrIllegalState)
	_, err = s.StartCombat([]string{"cultist"})
	require.ErrorIs(t, err, model.ErrIllegalState)
	assert.ErrorIs(t, s.LastError(), model.ErrIllegalState)

	_, err = s.StartNewRun("nobody", 1)
	require.ErrorIs(t, err, model.ErrNotFound)
	_, ok = s.State()
	assert.False(t, ok)
}

func TestSession_StartCombat(t *testing.T) {
	s, _ := newTestSession(t)
	startRun(t, s, 7)

	st, err := s.StartCombat([]string{"louse_red", "nope"})
	require.ErrorIs(t, err, model.ErrNotFound)
	assert.Nil(t, st.CurrentCombat, "failed command keeps the previous state")
	assert.ErrorIs(t, s.LastError(), model.ErrNotFound)

	st, err = s.StartCombat([]string{"louse_red", "louse_red"})
	require.NoError(t, err)
	require.NotNil(t, st.CurrentCombat)

	c := st.CurrentCombat
	assert.Equal(t, model.PhasePlayerAction, c.Phase)
	assert.Equal(t, 3, c.Energy)
	assert.Len(t, c.Player.Hand, 5)
	require.Len(t, c.Enemies, 2)
	assert.NotEqual(t, c.Enemies[0].ID, c.Enemies[1].ID)
	testutil.AssertEvents(t, []model.RunEventKind{model.EventCombatStart}, st.RunHistory)

	_, err = s.StartCombat([]string{"cultist"})
	require.ErrorIs(t, err, model.ErrIllegalState)
}

func TestSession_RejectedPlayIsNotAnError(t *testing.T) {
	s, _ := newTestSession(t)
	startRun(t, s, 7)
	before, err := s.StartCombat([]string{"cultist"})
	require.NoError(t, err)

	after, err := s.PlayCard(99, "cultist")
	require.NoError(t, err)
	assert.Equal(t, before.CurrentCombat, after.CurrentCombat)
}

func TestSession_WinCombat(t *testing.T) {
	s, _ := newTestSession(t)
	startRun(t, s, 7)
	st, err := s.StartCombat([]string{"louse_red"})
	require.NoError(t, err)

	st = fight(t, s, st)

	assert.True(t, st.IsRunActive)
	assert.Nil(t, st.CurrentCombat)
	assert.Equal(t, 1, st.FloorsCleared)
	assert.Equal(t, 1, st.TotalTurns)
	assert.Equal(t, 80, st.Player.CurrentHP)
	assert.Len(t, st.Player.DrawPile, 5)
	assert.Empty(t, st.Player.Hand)
	assert.Empty(t, st.Player.DiscardPile)
	assert.Empty(t, st.Player.Powers)
	testutil.AssertEvents(t, []model.RunEventKind{model.EventCombatStart, model.EventCombatEnd}, st.RunHistory)
	assert.Equal(t, string(model.SidePlayer), st.RunHistory[1].Detail)
}

func TestSession_CombatEndHealsWithBurningBlood(t *testing.T) {
	s, _ := newTestSession(t)
	startRun(t, s, 7)
	s.state.Player.CurrentHP = 50

	st, err := s.StartCombat([]string{"louse_red"})
	require.NoError(t, err)
	st = fight(t, s, st)

	assert.Equal(t, 56, st.Player.CurrentHP)
}

func TestSession_EndTurn(t *testing.T) {
	s, _ := newTestSession(t)
	startRun(t, s, 7)
	_, err := s.StartCombat([]string{"jaw_worm"})
	require.NoError(t, err)

	st, err := s.EndTurn()
	require.NoError(t, err)

	require.NotNil(t, st.CurrentCombat)
	c := st.CurrentCombat
	assert.Equal(t, 75, c.Player.CurrentHP)
	assert.Equal(t, 80, st.Player.CurrentHP, "persistent player untouched until combat ends")
	assert.Equal(t, 2, c.Turn)
	assert.Equal(t, model.PhasePlayerAction, c.Phase)
	assert.Equal(t, 3, c.Energy)
	assert.Len(t, c.Player.Hand, 5)
	assert.Equal(t, 1, c.Enemies[0].IntentIndex)
}

func TestSession_LoseRun(t *testing.T) {
	s, clock := newTestSession(t)
	startRun(t, s, 7)
	s.state.Player.CurrentHP = 1

	_, err := s.StartCombat([]string{"cultist"})
	require.NoError(t, err)
	clock.Advance(time.Minute)

	st, err := s.EndTurn()
	require.NoError(t, err)

	assert.False(t, st.IsRunActive)
	assert.Equal(t, model.OutcomeLost, st.Outcome)
	assert.Nil(t, st.CurrentCombat)
	assert.Zero(t, st.Player.CurrentHP)
	testutil.AssertEvents(t, []model.RunEventKind{
		model.EventCombatStart,
		model.EventHPLost,
		model.EventCombatEnd,
		model.EventRunCompleted,
	}, st.RunHistory)
	assert.Equal(t, 6, st.RunHistory[1].Value)

	sum := Summarize(st)
	assert.Equal(t, model.OutcomeLost, sum.Outcome)
	assert.Equal(t, epoch, sum.StartedAt)
	assert.Equal(t, epoch.Add(time.Minute), sum.FinishedAt)
	assert.Equal(t, "ironclad", sum.Character)

	_, err = s.StartCombat([]string{"cultist"})
	require.ErrorIs(t, err, model.ErrIllegalState)
}

func TestSession_ChooseNode(t *testing.T) {
	s, _ := newTestSession(t)
	st := startRun(t, s, 42)

	_, err := s.ChooseNode("node_0_0")
	require.ErrorIs(t, err, model.ErrInvalidAction)

	next := mapgen.AvailableNextNodes(st.CurrentMap, st.CurrentMap.CurrentNodeID)
	require.NotEmpty(t, next)

	st, err = s.ChooseNode(next[0].ID)
	require.NoError(t, err)
	assert.Equal(t, next[0].ID, st.CurrentMap.CurrentNodeID)

	node, ok := st.CurrentMap.CurrentNode()
	require.True(t, ok)
	assert.True(t, node.Visited)
	if node.Type.IsCombat() {
		require.NotNil(t, st.CurrentCombat)
		assert.NotEmpty(t, st.CurrentCombat.Enemies)
		_, err = s.ChooseNode(next[0].ID)
		require.ErrorIs(t, err, model.ErrIllegalState)
	} else {
		assert.Nil(t, st.CurrentCombat)
		assert.Equal(t, 1, st.FloorsCleared)
	}
}

func TestSession_BossAdvancesAct(t *testing.T) {
	s, _ := newTestSession(t)
	st := startRun(t, s, 42)
	s.state.CurrentMap = mapgen.MoveToNode(st.CurrentMap, "node_0_0")

	st, err := s.StartCombat([]string{"louse_red"})
	require.NoError(t, err)
	st = fight(t, s, st)

	assert.True(t, st.IsRunActive)
	assert.Equal(t, 2, st.CurrentAct)
	assert.Equal(t, 2, st.CurrentMap.Act)
	assert.Equal(t, int64(43), st.CurrentMap.Seed)
	require.NoError(t, mapgen.Validate(st.CurrentMap))
	assert.Contains(t, eventKinds(st), model.EventActCompleted)
}

func TestSession_LastBossWinsRun(t *testing.T) {
	clock := NewFakeClock(epoch)
	opts := DefaultOptions()
	opts.Clock = clock
	opts.Acts = 1
	s := NewSession(opts)

	st := startRun(t, s, 42)
	s.state.CurrentMap = mapgen.MoveToNode(st.CurrentMap, "node_0_0")

	st, err := s.StartCombat([]string{"louse_red"})
	require.NoError(t, err)
	st = fight(t, s, st)

	assert.False(t, st.IsRunActive)
	assert.Equal(t, model.OutcomeWon, st.Outcome)
	assert.Equal(t, 1, st.CurrentAct)
	kinds := eventKinds(st)
	assert.Equal(t, model.EventRunCompleted, kinds[len(kinds)-1])
}

func TestSession_Potions(t *testing.T) {
	s, _ := newTestSession(t)
	startRun(t, s, 7)

	_, err := s.AddPotion("elixir_of_nothing")
	require.ErrorIs(t, err, model.ErrNotFound)

	for range 3 {
		_, err = s.AddPotion("block_potion")
		require.NoError(t, err)
	}
	_, err = s.AddPotion("block_potion")
	require.ErrorIs(t, err, model.ErrInvalidAction)

	_, err = s.UsePotion(0, "")
	require.ErrorIs(t, err, model.ErrIllegalState, "potions need a combat")

	_, err = s.StartCombat([]string{"cultist"})
	require.NoError(t, err)
	st, err := s.UsePotion(0, "")
	require.NoError(t, err)

	assert.Equal(t, 12, st.CurrentCombat.Player.Block)
	assert.Len(t, st.CurrentCombat.Player.Potions, 2)
	assert.Len(t, st.Player.Potions, 3, "committed only at combat end")
}

func TestSession_AbandonAndReset(t *testing.T) {
	s, _ := newTestSession(t)
	startRun(t, s, 7)
	_, err := s.StartCombat([]string{"cultist"})
	require.NoError(t, err)

	st, err := s.Abandon()
	require.NoError(t, err)
	assert.Equal(t, model.OutcomeAbandoned, st.Outcome)
	assert.False(t, st.IsRunActive)
	assert.Nil(t, st.CurrentCombat)
	assert.Equal(t, 1, st.TotalTurns)

	_, err = s.Abandon()
	require.ErrorIs(t, err, model.ErrIllegalState)

	s.ResetGame()
	_, ok := s.State()
	assert.False(t, ok)
	assert.NoError(t, s.LastError())
}

func TestSession_SameSeedSameRun(t *testing.T) {
	a, _ := newTestSession(t)
	b, _ := newTestSession(t)

	sa := startRun(t, a, 1234)
	sb := startRun(t, b, 1234)
	assert.Equal(t, sa.CurrentMap, sb.CurrentMap)
	assert.Equal(t, sa.Player.DrawPile, sb.Player.DrawPile)
	assert.NotEqual(t, sa.RunID, sb.RunID)

	ca, err := a.StartCombat([]string{"cultist"})
	require.NoError(t, err)
	cb, err := b.StartCombat([]string{"cultist"})
	require.NoError(t, err)
	assert.Equal(t, ca.CurrentCombat.Player.Hand, cb.CurrentCombat.Player.Hand)
}

func TestSession_StateIsACopy(t *testing.T) {
	s, _ := newTestSession(t)
	startRun(t, s, 7)

	st, ok := s.State()
	require.True(t, ok)
	st.Player.CurrentHP = 1
	st.CurrentMap.Nodes[0].Type = model.NodeShop

	again, _ := s.State()
	assert.Equal(t, 80, again.Player.CurrentHP)
	assert.Equal(t, model.NodeBoss, again.CurrentMap.Nodes[0].Type)
}

func TestOptionsFromConfig(t *testing.T) {
	r := config.DefaultRules()
	r.HandSize = 7
	r.MapHeight = 10
	r.Acts = 2

	opts := OptionsFromConfig(r)
	assert.Equal(t, 7, opts.Rules.HandSize)
	assert.Equal(t, 3, opts.Rules.StartingEnergy)
	assert.Equal(t, mapgen.Layout{Width: 7, Height: 10}, opts.Layout)
	assert.Equal(t, 2, opts.Acts)
	assert.Equal(t, 3, opts.MaxPotionSlots)
	assert.NotNil(t, opts.Clock)
}
