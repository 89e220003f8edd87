package combat

import (
	"log/slog"
	"slices"

	"github.com/udisondev/spirego/internal/model"
)

// PlayCard plays the card at handIndex against targetEnemyID.
//
// The play is rejected (input returned unchanged) outside player_action,
// for an out-of-range index, an unplayable card or insufficient energy.
// targetEnemyID only matters for single_enemy effects; a missing or dead
// target skips those effects.
func (e *Engine) PlayCard(c model.Combat, handIndex int, targetEnemyID string) model.Combat {
	if c.Phase != model.PhasePlayerAction {
		slog.Debug("play card rejected", "reason", "phase", "phase", c.Phase)
		return c
	}
	if handIndex < 0 || handIndex >= len(c.Player.Hand) {
		slog.Debug("play card rejected", "reason", "index", "index", handIndex)
		return c
	}
	card := c.Player.Hand[handIndex]
	if !card.Playable() {
		slog.Debug("play card rejected", "reason", "unplayable", "card", card.ID)
		return c
	}
	if c.Energy < card.Cost {
		slog.Debug("play card rejected", "reason", "energy", "card", card.ID, "cost", card.Cost, "energy", c.Energy)
		return c
	}

	out := c.Clone()
	out.Energy -= card.Cost
	out.Player.Hand = slices.Delete(out.Player.Hand, handIndex, handIndex+1)
	record(&out, model.CombatAction{
		Kind:   model.ActionCardPlay,
		Actor:  model.SidePlayer,
		Source: card.ID,
		Target: targetEnemyID,
		Value:  card.Cost,
	})

	for _, eff := range card.Effects {
		e.resolve(&out, eff, targetEnemyID, card.ID)
	}
	e.triggerRelics(&out, model.TriggerCardPlay, card.Type)

	if card.Exhaust {
		out.Player.ExhaustPile = append(out.Player.ExhaustPile, card)
	} else {
		out.Player.DiscardPile = append(out.Player.DiscardPile, card)
	}

	slog.Debug("card played", "combat", out.ID, "card", card.ID, "energy", out.Energy)
	return out
}

// UsePotion consumes the potion in slot and resolves its effects.
// Rejected outside player_action or for an out-of-range slot.
func (e *Engine) UsePotion(c model.Combat, slot int, targetEnemyID string) model.Combat {
	if c.Phase != model.PhasePlayerAction {
		slog.Debug("use potion rejected", "reason", "phase", "phase", c.Phase)
		return c
	}
	if slot < 0 || slot >= len(c.Player.Potions) {
		slog.Debug("use potion rejected", "reason", "slot", "slot", slot)
		return c
	}

	out := c.Clone()
	potion := out.Player.Potions[slot]
	out.Player.Potions = slices.Delete(out.Player.Potions, slot, slot+1)
	record(&out, model.CombatAction{
		Kind:   model.ActionPotionUse,
		Actor:  model.SidePlayer,
		Source: potion.ID,
		Target: targetEnemyID,
	})

	for _, eff := range potion.Effects {
		e.resolve(&out, eff, targetEnemyID, potion.ID)
	}

	slog.Debug("potion used", "combat", out.ID, "potion", potion.ID)
	return out
}

// triggerRelics resolves every player relic bound to trigger. For
// TriggerCardPlay, cardType filters relics with an OnCardType.
func (e *Engine) triggerRelics(c *model.Combat, trigger model.RelicTrigger, cardType model.CardType) {
	for _, r := range c.Player.Relics {
		if r.Trigger != trigger {
			continue
		}
		if r.OnCardType != "" && r.OnCardType != cardType {
			continue
		}
		for _, eff := range r.Effects {
			e.resolve(c, eff, "", r.ID)
		}
	}
}

// ApplyCombatEndRelics resolves combat_end relics on a player after combat.
// Only effects that make sense outside combat (heal) apply.
func ApplyCombatEndRelics(p model.Player) model.Player {
	out := p.Clone()
	for _, r := range out.Relics {
		if r.Trigger != model.TriggerCombatEnd {
			continue
		}
		for _, eff := range r.Effects {
			if eff.Kind != model.EffectHeal {
				continue
			}
			for range eff.Repeats() {
				healed := out.Heal(eff.Value)
				slog.Debug("combat end relic", "relic", r.ID, "healed", healed)
			}
		}
	}
	return out
}
