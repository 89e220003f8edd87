package model

import "github.com/udisondev/spirego/internal/game/status"

// IntentAction is the kind of action an enemy telegraphs.
type IntentAction int8

const (
	IntentAttack IntentAction = iota
	IntentBlock
	IntentBuff
	IntentDebuff
	IntentHeal
	IntentSummon
	IntentPower
	IntentMultiAttack
)

// String returns the intent action name.
func (a IntentAction) String() string {
	switch a {
	case IntentAttack:
		return "attack"
	case IntentBlock:
		return "block"
	case IntentBuff:
		return "buff"
	case IntentDebuff:
		return "debuff"
	case IntentHeal:
		return "heal"
	case IntentSummon:
		return "summon"
	case IntentPower:
		return "power"
	case IntentMultiAttack:
		return "multi_attack"
	default:
		return "unknown"
	}
}

// Intent is one step of an enemy's cyclic action list.
type Intent struct {
	Action IntentAction
	Value  int
	// Hits is the number of strikes for multi_attack; 0 is treated as 1.
	Hits        int
	Description string
}

// Enemy is a combatant controlled by its intent list.
type Enemy struct {
	// ID is unique within a combat. TemplateID is the content id it was built from.
	ID          string
	TemplateID  string
	Name        string
	MaxHP       int
	CurrentHP   int
	Block       int
	Intents     []Intent
	IntentIndex int
	Powers      status.Ledger
	Minion      bool
}

// IsDead reports whether the enemy is at or below 0 HP.
func (e Enemy) IsDead() bool {
	return e.CurrentHP <= 0
}

// DisplayHP returns CurrentHP clamped to 0.
func (e Enemy) DisplayHP() int {
	return max(e.CurrentHP, 0)
}

// CurrentIntent returns the intent the enemy will execute next.
func (e Enemy) CurrentIntent() (Intent, bool) {
	if len(e.Intents) == 0 {
		return Intent{}, false
	}
	return e.Intents[e.IntentIndex%len(e.Intents)], true
}

// AdvanceIntent moves the cursor to the next intent, wrapping around.
func (e *Enemy) AdvanceIntent() {
	if len(e.Intents) == 0 {
		return
	}
	e.IntentIndex = (e.IntentIndex + 1) % len(e.Intents)
}

// Clone returns a deep copy.
func (e Enemy) Clone() Enemy {
	out := e
	if e.Intents != nil {
		out.Intents = make([]Intent, len(e.Intents))
		copy(out.Intents, e.Intents)
	}
	out.Powers = e.Powers.Clone()
	return out
}
