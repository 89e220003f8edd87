// Package status implements the status effect ledger shared by the player
// and enemies: stacking on apply, and decay at the start of the holder's turn.
package status

import "fmt"

// Type names a status effect.
type Type string

const (
	Vulnerable    Type = "vulnerable"
	Weak          Type = "weak"
	Strength      Type = "strength"
	Dexterity     Type = "dexterity"
	Artifact      Type = "artifact"
	Thorns        Type = "thorns"
	Barricade     Type = "barricade"
	Metallicize   Type = "metallicize"
	PlatedArmor   Type = "plated_armor"
	Intangible    Type = "intangible"
	Regen         Type = "regen"
	Frail         Type = "frail"
	Entangled     Type = "entangled"
	Flex          Type = "flex"
	Blur          Type = "blur"
	DrawReduction Type = "draw_reduction"
	Poison        Type = "poison"
	Shackled      Type = "shackled"
	Minion        Type = "minion"
)

// StackType defines how stacks of an effect behave over time.
type StackType string

const (
	// Duration stacks lose one stack at the start of each holder turn.
	Duration StackType = "duration"
	// Intensity stacks persist until explicitly removed.
	Intensity StackType = "intensity"
	// None marks flag-like effects whose stack count is not meaningful.
	None StackType = "none"
)

// Effect is a single ledger entry.
type Effect struct {
	Type      Type      `json:"type"`
	Stacks    int       `json:"stacks"`
	StackType StackType `json:"stack_type"`
}

// Description returns a short human-readable label, e.g. "vulnerable: 2 turns".
func (e Effect) Description() string {
	if e.StackType == Duration {
		return fmt.Sprintf("%s: %d turns", e.Type, e.Stacks)
	}
	return fmt.Sprintf("%s: +%d", e.Type, e.Stacks)
}
