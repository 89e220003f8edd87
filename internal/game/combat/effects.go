package combat

import (
	"log/slog"

	"github.com/udisondev/spirego/internal/game/status"
	"github.com/udisondev/spirego/internal/model"
)

// resolve applies eff on behalf of the player. source is the card, potion
// or relic ID used in the history.
func (e *Engine) resolve(c *model.Combat, eff model.Effect, targetEnemyID, source string) {
	for range eff.Repeats() {
		switch eff.Kind {
		case model.EffectDamage:
			if eff.Target == model.TargetSelf {
				loss := absorb(&c.Player.Block, eff.Value)
				c.Player.CurrentHP -= loss
				continue
			}
			for _, i := range e.targets(c, eff.Target, targetEnemyID) {
				e.hitEnemy(c, i, eff.Value, source)
			}

		case model.EffectBlock:
			if eff.Target == model.TargetSelf {
				c.Player.Block += eff.Value
				continue
			}
			for _, i := range e.targets(c, eff.Target, targetEnemyID) {
				c.Enemies[i].Block += eff.Value
			}

		case model.EffectBuff:
			e.applyStatus(c, eff, status.Intensity, targetEnemyID, source)

		case model.EffectDebuff:
			e.applyStatus(c, eff, status.Duration, targetEnemyID, source)

		case model.EffectDraw:
			drawn := e.DrawCards(&c.Player, eff.Value)
			c.Player.Hand = append(c.Player.Hand, drawn...)

		case model.EffectEnergy:
			c.Energy += eff.Value

		case model.EffectHeal:
			c.Player.Heal(eff.Value)

		case model.EffectExhaust:
			exhaustFromHand(&c.Player, eff.Value)

		case model.EffectScry:
			scry(&c.Player, eff.Value)

		default:
			slog.Warn("unknown effect kind", "kind", eff.Kind, "source", source)
		}
	}
}

// targets returns enemy indices hit by an enemy-targeted effect.
func (e *Engine) targets(c *model.Combat, t model.Target, targetEnemyID string) []int {
	switch t {
	case model.TargetSingleEnemy:
		i := c.EnemyIndex(targetEnemyID)
		if i < 0 || c.Enemies[i].IsDead() {
			return nil
		}
		return []int{i}
	case model.TargetAllEnemies:
		return c.LivingEnemies()
	case model.TargetRandomEnemy:
		living := c.LivingEnemies()
		if len(living) == 0 {
			return nil
		}
		return []int{living[e.rnd.IntN(len(living))]}
	default:
		return nil
	}
}

func (e *Engine) hitEnemy(c *model.Combat, i, base int, source string) {
	en := &c.Enemies[i]
	dmg := CalculateDamage(base, c.Player.Powers, en.Powers)
	loss := absorb(&en.Block, dmg)
	en.CurrentHP -= loss
	record(c, model.CombatAction{
		Kind:   model.ActionDamageDealt,
		Actor:  model.SidePlayer,
		Source: source,
		Target: en.ID,
		Value:  loss,
	})
}

// applyStatus puts eff.Condition on the player (self) or on the targeted
// enemies. Effects without a condition do nothing.
func (e *Engine) applyStatus(c *model.Combat, eff model.Effect, st status.StackType, targetEnemyID, source string) {
	if eff.Condition == "" {
		return
	}
	if eff.Target == model.TargetSelf {
		c.Player.Powers = c.Player.Powers.Apply(eff.Condition, eff.Value, st)
		record(c, model.CombatAction{
			Kind:   model.ActionStatusApplied,
			Actor:  model.SidePlayer,
			Source: source,
			Target: string(model.SidePlayer),
			Value:  eff.Value,
			Detail: string(eff.Condition),
		})
		return
	}
	for _, i := range e.targets(c, eff.Target, targetEnemyID) {
		c.Enemies[i].Powers = c.Enemies[i].Powers.Apply(eff.Condition, eff.Value, st)
		record(c, model.CombatAction{
			Kind:   model.ActionStatusApplied,
			Actor:  model.SidePlayer,
			Source: source,
			Target: c.Enemies[i].ID,
			Value:  eff.Value,
			Detail: string(eff.Condition),
		})
	}
}

// exhaustFromHand moves the n rightmost hand cards to the exhaust pile.
func exhaustFromHand(p *model.Player, n int) {
	for ; n > 0 && len(p.Hand) > 0; n-- {
		last := len(p.Hand) - 1
		p.ExhaustPile = append(p.ExhaustPile, p.Hand[last])
		p.Hand = p.Hand[:last]
	}
}

// scry looks at the top n draw pile cards and discards the unplayable ones.
func scry(p *model.Player, n int) {
	if n <= 0 || len(p.DrawPile) == 0 {
		return
	}
	start := max(len(p.DrawPile)-n, 0)
	kept := make([]model.Card, 0, len(p.DrawPile))
	kept = append(kept, p.DrawPile[:start]...)
	for _, card := range p.DrawPile[start:] {
		if card.Playable() {
			kept = append(kept, card)
			continue
		}
		p.DiscardPile = append(p.DiscardPile, card)
	}
	p.DrawPile = kept
}
