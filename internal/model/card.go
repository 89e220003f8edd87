package model

// CardType classifies cards.
type CardType string

const (
	CardAttack CardType = "attack"
	CardSkill  CardType = "skill"
	CardPower  CardType = "power"
	CardStatus CardType = "status"
	CardCurse  CardType = "curse"
)

// Rarity of cards and potions.
type Rarity string

const (
	RarityCommon   Rarity = "common"
	RarityUncommon Rarity = "uncommon"
	RarityRare     Rarity = "rare"
)

// Card is an immutable template. Cards in piles are value copies; a card has
// no identity beyond its position in a pile.
type Card struct {
	ID          string
	Name        string
	Description string
	Type        CardType
	Cost        int
	BaseCost    int
	Rarity      Rarity
	Character   string
	Effects     []Effect
	Upgrades    int
	MaxUpgrades int
	Exhaust     bool
}

// Playable reports whether the card can be played from hand.
// Status and curse cards only clog the deck.
func (c Card) Playable() bool {
	return c.Type != CardStatus && c.Type != CardCurse
}

func cloneCards(cards []Card) []Card {
	if cards == nil {
		return nil
	}
	out := make([]Card, len(cards))
	copy(out, cards)
	return out
}
