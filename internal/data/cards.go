package data

import (
	"github.com/udisondev/spirego/internal/game/status"
	"github.com/udisondev/spirego/internal/model"
)

// CharacterIronclad is the id of the only playable character.
const CharacterIronclad = "ironclad"

var (
	cardStrike = model.Card{
		ID:          "strike",
		Name:        "Strike",
		Description: "Deal 6 damage.",
		Type:        model.CardAttack,
		Cost:        1,
		BaseCost:    1,
		Rarity:      model.RarityCommon,
		Character:   CharacterIronclad,
		Effects: []model.Effect{
			{Kind: model.EffectDamage, Target: model.TargetSingleEnemy, Value: 6, Description: "Deal 6 damage"},
		},
		MaxUpgrades: 1,
	}

	cardDefend = model.Card{
		ID:          "defend",
		Name:        "Defend",
		Description: "Gain 5 block.",
		Type:        model.CardSkill,
		Cost:        1,
		BaseCost:    1,
		Rarity:      model.RarityCommon,
		Character:   CharacterIronclad,
		Effects: []model.Effect{
			{Kind: model.EffectBlock, Target: model.TargetSelf, Value: 5, Description: "Gain 5 block"},
		},
		MaxUpgrades: 1,
	}

	cardBash = model.Card{
		ID:          "bash",
		Name:        "Bash",
		Description: "Deal 8 damage. Apply 2 Vulnerable.",
		Type:        model.CardAttack,
		Cost:        1,
		BaseCost:    1,
		Rarity:      model.RarityCommon,
		Character:   CharacterIronclad,
		Effects: []model.Effect{
			{Kind: model.EffectDamage, Target: model.TargetSingleEnemy, Value: 8, Description: "Deal 8 damage"},
			{Kind: model.EffectDebuff, Target: model.TargetSingleEnemy, Value: 2, Condition: status.Vulnerable, Description: "Apply 2 Vulnerable"},
		},
		MaxUpgrades: 1,
	}
)

// cardTable holds every card template by id.
var cardTable = map[string]model.Card{
	"strike": cardStrike,
	"defend": cardDefend,
	"bash":   cardBash,

	// Common
	"heavy_slash": {
		ID:          "heavy_slash",
		Name:        "Heavy Slash",
		Description: "Deal 16 damage.",
		Type:        model.CardAttack,
		Cost:        3,
		BaseCost:    3,
		Rarity:      model.RarityCommon,
		Character:   CharacterIronclad,
		Effects: []model.Effect{
			{Kind: model.EffectDamage, Target: model.TargetSingleEnemy, Value: 16, Description: "Deal 16 damage"},
		},
		MaxUpgrades: 1,
	},
	"pummel": {
		ID:          "pummel",
		Name:        "Pummel",
		Description: "Deal 4 damage 4 times.",
		Type:        model.CardAttack,
		Cost:        1,
		BaseCost:    1,
		Rarity:      model.RarityCommon,
		Character:   CharacterIronclad,
		Effects: []model.Effect{
			{Kind: model.EffectDamage, Target: model.TargetSingleEnemy, Value: 4, Times: 4, Description: "Deal 4 damage 4 times"},
		},
		MaxUpgrades: 1,
	},
	"iron_wave": {
		ID:          "iron_wave",
		Name:        "Iron Wave",
		Description: "Deal 5 damage. Gain 5 block.",
		Type:        model.CardAttack,
		Cost:        1,
		BaseCost:    1,
		Rarity:      model.RarityCommon,
		Character:   CharacterIronclad,
		Effects: []model.Effect{
			{Kind: model.EffectDamage, Target: model.TargetSingleEnemy, Value: 5, Description: "Deal 5 damage"},
			{Kind: model.EffectBlock, Target: model.TargetSelf, Value: 5, Description: "Gain 5 block"},
		},
		MaxUpgrades: 1,
	},
	"shrug_it_off": {
		ID:          "shrug_it_off",
		Name:        "Shrug It Off",
		Description: "Gain 8 block. Draw 1 card.",
		Type:        model.CardSkill,
		Cost:        1,
		BaseCost:    1,
		Rarity:      model.RarityCommon,
		Character:   CharacterIronclad,
		Effects: []model.Effect{
			{Kind: model.EffectBlock, Target: model.TargetSelf, Value: 8, Description: "Gain 8 block"},
			{Kind: model.EffectDraw, Target: model.TargetSelf, Value: 1, Description: "Draw 1 card"},
		},
		MaxUpgrades: 1,
	},

	// Uncommon
	"bludgeon": {
		ID:          "bludgeon",
		Name:        "Bludgeon",
		Description: "Deal 32 damage.",
		Type:        model.CardAttack,
		Cost:        3,
		BaseCost:    3,
		Rarity:      model.RarityUncommon,
		Character:   CharacterIronclad,
		Effects: []model.Effect{
			{Kind: model.EffectDamage, Target: model.TargetSingleEnemy, Value: 32, Description: "Deal 32 damage"},
		},
		MaxUpgrades: 1,
	},
	"power_through": {
		ID:          "power_through",
		Name:        "Power Through",
		Description: "Gain 15 block. Exhaust 1 card from your hand.",
		Type:        model.CardSkill,
		Cost:        1,
		BaseCost:    1,
		Rarity:      model.RarityUncommon,
		Character:   CharacterIronclad,
		Effects: []model.Effect{
			{Kind: model.EffectBlock, Target: model.TargetSelf, Value: 15, Description: "Gain 15 block"},
			{Kind: model.EffectExhaust, Target: model.TargetSelf, Value: 1, Description: "Exhaust 1 card from your hand"},
		},
		MaxUpgrades: 1,
	},
	"inflame": {
		ID:          "inflame",
		Name:        "Inflame",
		Description: "Apply 2 Strength.",
		Type:        model.CardPower,
		Cost:        1,
		BaseCost:    1,
		Rarity:      model.RarityUncommon,
		Character:   CharacterIronclad,
		Effects: []model.Effect{
			{Kind: model.EffectBuff, Target: model.TargetSelf, Value: 2, Condition: status.Strength, Description: "Apply 2 Strength"},
		},
		MaxUpgrades: 1,
	},

	// Rare
	"pummel_strike": {
		ID:          "pummel_strike",
		Name:        "Pummel Strike",
		Description: "Deal 8 damage 3 times.",
		Type:        model.CardAttack,
		Cost:        4,
		BaseCost:    4,
		Rarity:      model.RarityRare,
		Character:   CharacterIronclad,
		Effects: []model.Effect{
			{Kind: model.EffectDamage, Target: model.TargetSingleEnemy, Value: 8, Times: 3, Description: "Deal 8 damage 3 times"},
		},
		MaxUpgrades: 1,
	},
	"berserk": {
		ID:          "berserk",
		Name:        "Berserk",
		Description: "Apply 2 Strength. Gain 1 Vulnerable.",
		Type:        model.CardPower,
		Cost:        0,
		BaseCost:    0,
		Rarity:      model.RarityRare,
		Character:   CharacterIronclad,
		Effects: []model.Effect{
			{Kind: model.EffectBuff, Target: model.TargetSelf, Value: 2, Condition: status.Strength, Description: "Apply 2 Strength"},
			{Kind: model.EffectDebuff, Target: model.TargetSelf, Value: 1, Condition: status.Vulnerable, Description: "Gain 1 Vulnerable"},
		},
		MaxUpgrades: 1,
	},
}
