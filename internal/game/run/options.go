package run

import (
	"github.com/udisondev/spirego/internal/config"
	"github.com/udisondev/spirego/internal/game/combat"
	"github.com/udisondev/spirego/internal/game/mapgen"
)

// Options configures a Session.
type Options struct {
	Rules          combat.Rules
	Layout         mapgen.Layout
	Acts           int
	MaxPotionSlots int
	Clock          Clock
}

// DefaultOptions returns the standard rules on the wall clock.
func DefaultOptions() Options {
	return Options{
		Rules:          combat.DefaultRules(),
		Layout:         mapgen.DefaultLayout(),
		Acts:           3,
		MaxPotionSlots: 3,
		Clock:          RealClock{},
	}
}

// OptionsFromConfig maps the rules config section onto Options.
func OptionsFromConfig(r config.Rules) Options {
	opts := DefaultOptions()
	opts.Rules = combat.Rules{
		StartingEnergy: r.StartingEnergy,
		HandSize:       r.HandSize,
	}
	opts.Layout = mapgen.Layout{Width: r.MapWidth, Height: r.MapHeight}
	opts.Acts = r.Acts
	opts.MaxPotionSlots = r.MaxPotionSlots
	return opts
}
