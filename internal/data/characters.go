package data

import (
	"github.com/udisondev/spirego/internal/game/status"
	"github.com/udisondev/spirego/internal/model"
)

// Character is a playable class template.
type Character struct {
	ID             string
	Name           string
	Description    string
	MaxHP          int
	StartingDeck   []model.Card
	StarterRelic   model.Relic
	ExclusiveCards []string
}

var relicTable = map[string]model.Relic{
	"burning_blood": {
		ID:          "burning_blood",
		Name:        "Burning Blood",
		Description: "At the end of combat, heal 6 HP.",
		Rarity:      model.RelicStarter,
		Character:   CharacterIronclad,
		Trigger:     model.TriggerCombatEnd,
		Effects: []model.Effect{
			{Kind: model.EffectHeal, Target: model.TargetSelf, Value: 6, Description: "Heal 6 HP"},
		},
	},
	"akabeko": {
		ID:          "akabeko",
		Name:        "Akabeko",
		Description: "Whenever you play a Power card, deal 1 damage to a random enemy.",
		Rarity:      model.RelicCommon,
		Character:   CharacterIronclad,
		Trigger:     model.TriggerCardPlay,
		OnCardType:  model.CardPower,
		Effects: []model.Effect{
			{Kind: model.EffectDamage, Target: model.TargetRandomEnemy, Value: 1, Description: "Deal 1 damage to a random enemy"},
		},
	},
	"anchor": {
		ID:          "anchor",
		Name:        "Anchor",
		Description: "Reduce the effect of Vulnerable applied to you by 1.",
		Rarity:      model.RelicCommon,
		Character:   CharacterIronclad,
	},
}

var potionTable = map[string]model.Potion{
	"strength_potion": {
		ID:          "strength_potion",
		Name:        "Strength Potion",
		Description: "Apply 2 Strength.",
		Rarity:      model.RarityCommon,
		Effects: []model.Effect{
			{Kind: model.EffectBuff, Target: model.TargetSelf, Value: 2, Condition: status.Strength, Description: "Apply 2 Strength"},
		},
	},
	"block_potion": {
		ID:          "block_potion",
		Name:        "Block Potion",
		Description: "Gain 12 block.",
		Rarity:      model.RarityCommon,
		Effects: []model.Effect{
			{Kind: model.EffectBlock, Target: model.TargetSelf, Value: 12, Description: "Gain 12 block"},
		},
	},
	"damage_potion": {
		ID:          "damage_potion",
		Name:        "Damage Potion",
		Description: "Deal 20 damage to a random enemy.",
		Rarity:      model.RarityCommon,
		Effects: []model.Effect{
			{Kind: model.EffectDamage, Target: model.TargetRandomEnemy, Value: 20, Description: "Deal 20 damage"},
		},
	},
}

var characterTable = map[string]Character{
	CharacterIronclad: {
		ID:             CharacterIronclad,
		Name:           "Ironclad",
		Description:    "A veteran warrior with a focus on strength and defense.",
		MaxHP:          80,
		StartingDeck:   []model.Card{cardStrike, cardDefend, cardBash, cardStrike, cardDefend},
		StarterRelic:   relicTable["burning_blood"],
		ExclusiveCards: []string{"berserk"},
	},
}
