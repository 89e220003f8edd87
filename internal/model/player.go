package model

import "github.com/udisondev/spirego/internal/game/status"

// Player is the persistent run entity. Deck is the canonical card pool;
// the other piles partition cards during combat only.
type Player struct {
	MaxHP          int
	CurrentHP      int
	Gold           int
	Block          int
	Deck           []Card
	Hand           []Card
	DrawPile       []Card
	DiscardPile    []Card
	ExhaustPile    []Card
	Relics         []Relic
	Potions        []Potion
	Powers         status.Ledger
	Character      string
	AscensionLevel int
}

// IsDead reports whether the player is at or below 0 HP.
func (p Player) IsDead() bool {
	return p.CurrentHP <= 0
}

// Heal restores up to amount HP, capped at MaxHP. Returns HP actually restored.
func (p *Player) Heal(amount int) int {
	if amount <= 0 {
		return 0
	}
	before := p.CurrentHP
	p.CurrentHP = min(p.CurrentHP+amount, p.MaxHP)
	return max(p.CurrentHP-before, 0)
}

// HasRelic reports whether the player owns the relic with id.
func (p Player) HasRelic(id string) bool {
	for _, r := range p.Relics {
		if r.ID == id {
			return true
		}
	}
	return false
}

// Clone returns a deep copy.
func (p Player) Clone() Player {
	out := p
	out.Deck = cloneCards(p.Deck)
	out.Hand = cloneCards(p.Hand)
	out.DrawPile = cloneCards(p.DrawPile)
	out.DiscardPile = cloneCards(p.DiscardPile)
	out.ExhaustPile = cloneCards(p.ExhaustPile)
	if p.Relics != nil {
		out.Relics = make([]Relic, len(p.Relics))
		copy(out.Relics, p.Relics)
	}
	if p.Potions != nil {
		out.Potions = make([]Potion, len(p.Potions))
		copy(out.Potions, p.Potions)
	}
	out.Powers = p.Powers.Clone()
	return out
}
