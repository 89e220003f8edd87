// Package autoplay plays runs without a human: a Policy picks cards and map
// nodes, Play drives a run.Session until the run ends.
package autoplay

import (
	"github.com/udisondev/spirego/internal/game/combat"
	"github.com/udisondev/spirego/internal/game/status"
	"github.com/udisondev/spirego/internal/model"
)

// Policy decides the next move.
type Policy interface {
	// NextPlay returns the hand card to play and its target.
	// ok=false ends the turn.
	NextPlay(c model.Combat) (handIndex int, target string, ok bool)
	// NextNode picks one of the reachable nodes.
	NextNode(st model.GameState, options []model.MapNode) string
}

// nodePreference ranks node types for Greedy; lower is better.
var nodePreference = map[model.NodeType]int{
	model.NodeRest:     0,
	model.NodeTreasure: 1,
	model.NodeShop:     2,
	model.NodeEvent:    3,
	model.NodeUnknown:  4,
	model.NodeMonster:  5,
	model.NodeElite:    6,
	model.NodeBoss:     7,
}

// Greedy attacks the weakest enemy with whatever deals the most damage and
// blocks only against telegraphed attacks.
type Greedy struct{}

func (Greedy) NextPlay(c model.Combat) (int, string, bool) {
	target := weakestEnemy(c)
	if target < 0 {
		return 0, "", false
	}
	incoming := max(IncomingDamage(c)-c.Player.Block, 0)

	best, bestScore := -1, 0
	for i, card := range c.Player.Hand {
		if !card.Playable() || card.Cost > c.Energy {
			continue
		}
		if score := scoreCard(card, c.Player.Powers, c.Enemies[target], incoming); score > bestScore {
			best, bestScore = i, score
		}
	}
	if best < 0 {
		return 0, "", false
	}
	return best, c.Enemies[target].ID, true
}

func (Greedy) NextNode(_ model.GameState, options []model.MapNode) string {
	best := options[0]
	for _, n := range options[1:] {
		if nodePreference[n.Type] < nodePreference[best.Type] {
			best = n
		}
	}
	return best.ID
}

// IncomingDamage sums the damage the living enemies telegraph this turn.
func IncomingDamage(c model.Combat) int {
	total := 0
	for _, i := range c.LivingEnemies() {
		en := c.Enemies[i]
		intent, ok := en.CurrentIntent()
		if !ok {
			continue
		}
		switch intent.Action {
		case model.IntentAttack:
			total += combat.CalculateDamage(intent.Value, en.Powers, c.Player.Powers)
		case model.IntentMultiAttack:
			total += combat.CalculateDamage(intent.Value, en.Powers, c.Player.Powers) * max(intent.Hits, 1)
		}
	}
	return total
}

func weakestEnemy(c model.Combat) int {
	best := -1
	for _, i := range c.LivingEnemies() {
		if best < 0 || c.Enemies[i].CurrentHP < c.Enemies[best].CurrentHP {
			best = i
		}
	}
	return best
}

func scoreCard(card model.Card, powers status.Ledger, target model.Enemy, incoming int) int {
	score := 0
	for _, eff := range card.Effects {
		n := eff.Repeats()
		switch eff.Kind {
		case model.EffectDamage:
			if eff.Target == model.TargetSelf {
				score -= eff.Value * n
				continue
			}
			score += min(combat.CalculateDamage(eff.Value, powers, target.Powers), target.CurrentHP+target.Block) * n
		case model.EffectBlock:
			score += min(eff.Value*n, incoming)
		case model.EffectBuff, model.EffectDebuff:
			if eff.Condition != "" {
				score += 2 * eff.Value
			}
		case model.EffectDraw, model.EffectEnergy:
			score += 3 * eff.Value * n
		case model.EffectHeal:
			score += eff.Value * n
		}
	}
	return score
}
