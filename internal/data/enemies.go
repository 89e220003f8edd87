package data

import "github.com/udisondev/spirego/internal/model"

// enemyTable holds every enemy template by id.
var enemyTable = map[string]model.Enemy{
	"cultist": {
		ID:        "cultist",
		Name:      "Cultist",
		MaxHP:     48,
		CurrentHP: 48,
		Intents: []model.Intent{
			{Action: model.IntentAttack, Value: 6, Description: "Attack for 6 damage"},
			{Action: model.IntentBuff, Value: 2, Description: "Apply 2 Strength"},
		},
	},
	"jaw_worm": {
		ID:        "jaw_worm",
		Name:      "Jaw Worm",
		MaxHP:     40,
		CurrentHP: 40,
		Intents: []model.Intent{
			{Action: model.IntentAttack, Value: 5, Description: "Attack for 5 damage"},
			{Action: model.IntentBlock, Value: 5, Description: "Gain 5 block"},
		},
	},
	"louse_red": {
		ID:        "louse_red",
		Name:      "Red Louse",
		MaxHP:     13,
		CurrentHP: 13,
		Intents: []model.Intent{
			{Action: model.IntentAttack, Value: 4, Description: "Attack for 4 damage"},
			{Action: model.IntentBuff, Value: 1, Description: "Apply 1 Strength"},
		},
	},
}

// encounterTable lists enemy groups per node type, indexed by act-1.
// Acts without their own pool reuse the last defined one.
var encounterTable = map[model.NodeType][][][]string{
	model.NodeMonster: {
		{
			{"cultist"},
			{"jaw_worm"},
			{"louse_red", "louse_red"},
		},
	},
	model.NodeElite: {
		{
			{"cultist", "louse_red"},
			{"jaw_worm", "louse_red"},
		},
	},
	model.NodeBoss: {
		{
			{"cultist", "jaw_worm", "louse_red"},
		},
	},
}
