package model

import "github.com/udisondev/spirego/internal/game/status"

// EffectKind is the closed set of card/potion/relic effects.
// Adding a kind requires a matching case in the combat resolver.
type EffectKind int8

const (
	EffectDamage EffectKind = iota
	EffectBlock
	EffectBuff
	EffectDebuff
	EffectDraw
	EffectEnergy
	EffectHeal
	EffectExhaust
	EffectScry
)

// String returns the effect kind name.
func (k EffectKind) String() string {
	switch k {
	case EffectDamage:
		return "damage"
	case EffectBlock:
		return "block"
	case EffectBuff:
		return "buff"
	case EffectDebuff:
		return "debuff"
	case EffectDraw:
		return "draw"
	case EffectEnergy:
		return "energy"
	case EffectHeal:
		return "heal"
	case EffectExhaust:
		return "exhaust"
	case EffectScry:
		return "scry"
	default:
		return "unknown"
	}
}

// Target selects who an effect applies to.
type Target int8

const (
	TargetSelf Target = iota
	TargetSingleEnemy
	TargetAllEnemies
	TargetRandomEnemy
)

// String returns the target name.
func (t Target) String() string {
	switch t {
	case TargetSelf:
		return "self"
	case TargetSingleEnemy:
		return "single_enemy"
	case TargetAllEnemies:
		return "all_enemies"
	case TargetRandomEnemy:
		return "random_enemy"
	default:
		return "unknown"
	}
}

// Effect is pure data interpreted by the combat engine.
type Effect struct {
	Kind   EffectKind
	Target Target
	Value  int
	// Times repeats the effect; 0 is treated as 1.
	Times int
	// Condition names the status applied by buff/debuff effects.
	Condition   status.Type
	Description string
}

// Repeats returns how many times the effect resolves.
func (e Effect) Repeats() int {
	if e.Times < 1 {
		return 1
	}
	return e.Times
}
