package combat

import (
	"log/slog"

	"github.com/udisondev/spirego/internal/game/status"
	"github.com/udisondev/spirego/internal/model"
)

// StartEnemyTurn lets every living enemy execute its current intent in list
// order, advances every intent cursor (dead enemies included), then runs
// turn-start status processing for the enemies. Leads to combat_end when all
// enemies are dead, otherwise to the next player_turn.
//
// Player death is not checked here; see Winner.
func (e *Engine) StartEnemyTurn(c model.Combat) model.Combat {
	if c.Phase != model.PhaseEnemyTurn {
		slog.Debug("start enemy turn rejected", "phase", c.Phase)
		return c
	}

	out := c.Clone()
	for i := range out.Enemies {
		en := &out.Enemies[i]
		if !en.IsDead() {
			if !en.Powers.Has(status.Barricade) {
				en.Block = 0
			}
			if intent, ok := en.CurrentIntent(); ok {
				e.executeIntent(&out, i, intent)
			}
		}
		en.AdvanceIntent()
	}

	for i := range out.Enemies {
		en := &out.Enemies[i]
		powers, ts := en.Powers.TickTurnStart()
		en.Powers = powers
		if ts.Heal > 0 && !en.IsDead() {
			en.CurrentHP = min(en.CurrentHP+ts.Heal, en.MaxHP)
		}
	}

	if out.AllEnemiesDead() {
		out.Phase = model.PhaseCombatEnd
		slog.Debug("combat ended", "combat", out.ID, "turn", out.Turn)
		return out
	}

	out.Turn++
	out.Round++
	out.Phase = model.PhasePlayerTurn
	return out
}

func (e *Engine) executeIntent(c *model.Combat, i int, intent model.Intent) {
	en := &c.Enemies[i]
	record(c, model.CombatAction{
		Kind:   model.ActionEnemyAction,
		Actor:  model.SideEnemy,
		Source: en.ID,
		Value:  intent.Value,
		Detail: intent.Action.String(),
	})

	switch intent.Action {
	case model.IntentAttack:
		e.hitPlayer(c, i, intent.Value)
	case model.IntentMultiAttack:
		for range max(intent.Hits, 1) {
			e.hitPlayer(c, i, intent.Value)
		}
	case model.IntentBlock:
		en.Block += intent.Value
	case model.IntentBuff:
		en.Powers = en.Powers.Apply(status.Strength, intent.Value, status.Intensity)
	case model.IntentDebuff:
		c.Player.Powers = c.Player.Powers.Apply(status.Vulnerable, intent.Value, status.Duration)
	case model.IntentHeal:
		en.CurrentHP = min(en.CurrentHP+intent.Value, en.MaxHP)
	case model.IntentSummon, model.IntentPower:
		slog.Debug("intent not implemented", "enemy", en.ID, "action", intent.Action)
	}
}

// hitPlayer applies one enemy attack, using the attacking enemy's statuses.
func (e *Engine) hitPlayer(c *model.Combat, i, base int) {
	en := c.Enemies[i]
	dmg := CalculateDamage(base, en.Powers, c.Player.Powers)
	loss := absorb(&c.Player.Block, dmg)
	c.Player.CurrentHP -= loss
	record(c, model.CombatAction{
		Kind:   model.ActionDamageDealt,
		Actor:  model.SideEnemy,
		Source: en.ID,
		Target: string(model.SidePlayer),
		Value:  loss,
	})
}
