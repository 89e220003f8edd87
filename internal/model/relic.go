package model

// RelicRarity of relics.
type RelicRarity string

const (
	RelicStarter  RelicRarity = "starter"
	RelicCommon   RelicRarity = "common"
	RelicUncommon RelicRarity = "uncommon"
	RelicRare     RelicRarity = "rare"
	RelicCurse    RelicRarity = "curse"
)

// RelicTrigger is the moment a relic resolves its effects.
type RelicTrigger string

const (
	TriggerNone        RelicTrigger = ""
	TriggerCardPlay    RelicTrigger = "card_play"
	TriggerTurnStart   RelicTrigger = "turn_start"
	TriggerTurnEnd     RelicTrigger = "turn_end"
	TriggerCombatStart RelicTrigger = "combat_start"
	TriggerCombatEnd   RelicTrigger = "combat_end"
)

// Relic is a persistent passive item.
type Relic struct {
	ID          string
	Name        string
	Description string
	Rarity      RelicRarity
	Character   string
	Trigger     RelicTrigger
	// OnCardType restricts TriggerCardPlay relics to one card type; empty means any card.
	OnCardType CardType
	Effects    []Effect
}

// Potion is a single-use consumable.
type Potion struct {
	ID          string
	Name        string
	Description string
	Rarity      Rarity
	Effects     []Effect
}
