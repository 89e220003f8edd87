// Package combat implements the turn-based combat state machine:
//
//	player_turn → player_action → enemy_turn → (player_turn | combat_end)
//
// Every operation takes a combat snapshot and returns an updated copy; the
// input is never modified. Rejected operations (wrong phase, bad index,
// not enough energy) return the input unchanged.
package combat

import (
	"fmt"
	"log/slog"
	"math/rand/v2"

	"github.com/udisondev/spirego/internal/game/status"
	"github.com/udisondev/spirego/internal/model"
)

// pcgStream is the second PCG word; the first is the caller's seed.
const pcgStream = 0x9e3779b97f4a7c15

// Rules holds the per-turn constants.
type Rules struct {
	StartingEnergy int
	HandSize       int
}

// DefaultRules returns 3 energy and a 5 card hand.
func DefaultRules() Rules {
	return Rules{StartingEnergy: 3, HandSize: 5}
}

// Engine resolves combat operations. Its random source drives deck shuffles
// and random_enemy targeting.
//
// Not safe for concurrent use: one Engine per run.
type Engine struct {
	rules Rules
	rnd   *rand.Rand
}

// NewEngine creates an Engine whose randomness is fully determined by seed.
func NewEngine(rules Rules, seed uint64) *Engine {
	return &Engine{
		rules: rules,
		rnd:   rand.New(rand.NewPCG(seed, pcgStream)),
	}
}

// Rules returns the engine rules.
func (e *Engine) Rules() Rules {
	return e.rules
}

// Initialize creates a combat from the player and enemy templates.
// Enemies start at full HP on their first intent. The player keeps deck,
// piles, relics, potions, gold and HP, and gets an empty hand, no powers
// and no block.
func (e *Engine) Initialize(id string, player model.Player, enemies []model.Enemy) model.Combat {
	c := model.Combat{
		ID:           id,
		Enemies:      make([]model.Enemy, len(enemies)),
		Player:       player.Clone(),
		Phase:        model.PhasePlayerTurn,
		Energy:       e.rules.StartingEnergy,
		Turn:         1,
		Round:        1,
		IsPlayerTurn: true,
	}

	seen := make(map[string]int, len(enemies))
	for i, tmpl := range enemies {
		en := tmpl.Clone()
		if en.TemplateID == "" {
			en.TemplateID = en.ID
		}
		seen[en.ID]++
		if n := seen[en.ID]; n > 1 {
			en.ID = fmt.Sprintf("%s_%d", en.ID, n)
		}
		en.CurrentHP = en.MaxHP
		en.IntentIndex = 0
		en.Block = 0
		c.Enemies[i] = en
	}

	c.Player.Hand = nil
	c.Player.Powers = nil
	c.Player.Block = 0

	e.triggerRelics(&c, model.TriggerCombatStart, "")

	slog.Debug("combat initialized", "combat", id, "enemies", len(c.Enemies), "playerHP", c.Player.CurrentHP)
	return c
}

// StartPlayerTurn draws a hand, resets energy, clears block (unless
// barricade) and runs turn-start status processing for the player.
func (e *Engine) StartPlayerTurn(c model.Combat) model.Combat {
	if c.Phase != model.PhasePlayerTurn {
		slog.Debug("start player turn rejected", "phase", c.Phase)
		return c
	}

	out := c.Clone()
	if !out.Player.Powers.Has(status.Barricade) {
		out.Player.Block = 0
	}

	drawn := e.DrawCards(&out.Player, e.rules.HandSize)
	out.Player.Hand = append(out.Player.Hand, drawn...)
	out.Energy = e.rules.StartingEnergy

	powers, ts := out.Player.Powers.TickTurnStart()
	out.Player.Powers = powers
	if healed := out.Player.Heal(ts.Heal); healed > 0 {
		slog.Debug("player regen", "healed", healed)
	}

	e.triggerRelics(&out, model.TriggerTurnStart, "")

	out.Phase = model.PhasePlayerAction
	out.IsPlayerTurn = true
	return out
}

// EndPlayerTurn discards the hand, drains energy and hands over to the enemies.
func (e *Engine) EndPlayerTurn(c model.Combat) model.Combat {
	if c.Phase != model.PhasePlayerAction {
		slog.Debug("end player turn rejected", "phase", c.Phase)
		return c
	}

	out := c.Clone()
	e.triggerRelics(&out, model.TriggerTurnEnd, "")

	out.Player.DiscardPile = append(out.Player.DiscardPile, out.Player.Hand...)
	out.Player.Hand = nil
	out.Energy = 0
	out.Phase = model.PhaseEnemyTurn
	out.IsPlayerTurn = false

	record(&out, model.CombatAction{Kind: model.ActionEndTurn, Actor: model.SidePlayer})
	return out
}

// IsOver reports whether every enemy or the player is dead.
func IsOver(c model.Combat) bool {
	return c.AllEnemiesDead() || c.Player.IsDead()
}

// Winner returns the winning side, or SideNone while the combat goes on.
// Player death is checked first: simultaneous lethal damage is a loss.
func Winner(c model.Combat) model.Side {
	if c.Player.IsDead() {
		return model.SideEnemy
	}
	if c.AllEnemiesDead() {
		return model.SidePlayer
	}
	return model.SideNone
}

func record(c *model.Combat, a model.CombatAction) {
	a.Turn = c.Turn
	c.History = append(c.History, a)
}
