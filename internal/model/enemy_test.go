package model

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/udisondev/spirego/internal/game/status"
)

func TestEnemy_AdvanceIntentWraps(t *testing.T) {
	e := Enemy{Intents: []Intent{
		{Action: IntentAttack, Value: 6},
		{Action: IntentBuff, Value: 2},
	}}

	got := make([]IntentAction, 0, 3)
	for range 3 {
		in, ok := e.CurrentIntent()
		assert.True(t, ok)
		got = append(got, in.Action)
		e.AdvanceIntent()
	}

	assert.Equal(t, []IntentAction{IntentAttack, IntentBuff, IntentAttack}, got)
}

func TestEnemy_NoIntents(t *testing.T) {
	e := Enemy{}
	_, ok := e.CurrentIntent()
	assert.False(t, ok)

	e.AdvanceIntent()
	assert.Equal(t, 0, e.IntentIndex)
}

func TestEnemy_DisplayHP(t *testing.T) {
	e := Enemy{CurrentHP: -4}
	assert.True(t, e.IsDead())
	assert.Equal(t, 0, e.DisplayHP())
}

func TestEnemy_CloneIsIndependent(t *testing.T) {
	e := Enemy{
		Intents: []Intent{{Action: IntentAttack, Value: 5}},
		Powers:  status.Ledger{{Type: status.Strength, Stacks: 1, StackType: status.Intensity}},
	}
	c := e.Clone()
	c.Intents[0].Value = 99
	c.Powers[0].Stacks = 99

	assert.Equal(t, 5, e.Intents[0].Value)
	assert.Equal(t, 1, e.Powers[0].Stacks)
}

func TestIntentAction_String(t *testing.T) {
	assert.Equal(t, "multi_attack", IntentMultiAttack.String())
	assert.Equal(t, "unknown", IntentAction(42).String())
}
