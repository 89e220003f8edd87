package config

// Rules holds the game constants.
type Rules struct {
	StartingEnergy int `yaml:"starting_energy"`
	HandSize       int `yaml:"hand_size"`
	MapWidth       int `yaml:"map_width"`
	MapHeight      int `yaml:"map_height"`
	Acts           int `yaml:"acts"`
	MaxPotionSlots int `yaml:"max_potion_slots"`
}

// DefaultRules returns the standard rule set: 3 energy, 5 card hands,
// 7x15 maps, 3 acts and 3 potion slots.
func DefaultRules() Rules {
	return Rules{
		StartingEnergy: 3,
		HandSize:       5,
		MapWidth:       7,
		MapHeight:      15,
		Acts:           3,
		MaxPotionSlots: 3,
	}
}

// Simulator configures cmd/simulator.
type Simulator struct {
	Runs    int `yaml:"runs"`
	Workers int `yaml:"workers"`
	// BaseSeed seeds run i with BaseSeed+i. 0 picks a random seed per run.
	BaseSeed          int64  `yaml:"base_seed"`
	Character         string `yaml:"character"`
	MaxTurnsPerCombat int    `yaml:"max_turns_per_combat"`
}

// DefaultSimulator returns 100 runs on 4 workers.
func DefaultSimulator() Simulator {
	return Simulator{
		Runs:              100,
		Workers:           4,
		BaseSeed:          1,
		Character:         "ironclad",
		MaxTurnsPerCombat: 50,
	}
}
