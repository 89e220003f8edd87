package run

import (
	"math/rand/v2"

	"github.com/google/uuid"

	"github.com/udisondev/spirego/internal/data"
	"github.com/udisondev/spirego/internal/game/combat"
	"github.com/udisondev/spirego/internal/game/mapgen"
	"github.com/udisondev/spirego/internal/model"
)

// encounterStream is the second PCG word of the encounter picker.
const encounterStream = 0x2545f4914f6cdd1d

// InitializeGameState creates act 1 of a new run for characterID.
// Returns model.ErrNotFound for an unknown character.
func InitializeGameState(characterID string, seed int64, opts Options) (model.GameState, error) {
	if opts.Clock == nil {
		opts.Clock = RealClock{}
	}
	return newGameState(characterID, seed, opts, combat.NewEngine(opts.Rules, uint64(seed)))
}

func newGameState(characterID string, seed int64, opts Options, engine *combat.Engine) (model.GameState, error) {
	ch, err := data.GetCharacter(characterID)
	if err != nil {
		return model.GameState{}, err
	}

	player := model.Player{
		MaxHP:     ch.MaxHP,
		CurrentHP: ch.MaxHP,
		Deck:      ch.StartingDeck,
		DrawPile:  append([]model.Card(nil), ch.StartingDeck...),
		Relics:    []model.Relic{ch.StarterRelic},
		Character: ch.ID,
	}
	engine.Shuffle(player.DrawPile)

	return model.GameState{
		RunID:        uuid.NewString(),
		Seed:         seed,
		CurrentAct:   1,
		CurrentMap:   actMap(opts.Layout, 1, seed),
		Player:       player,
		RunStartTime: opts.Clock.Now(),
		IsRunActive:  true,
	}, nil
}

// actMap generates the map for act and marks its starting node visited.
// Act n uses seed+n-1, so act 1 is generated from the run seed itself.
func actMap(layout mapgen.Layout, act int, seed int64) model.GameMap {
	m := mapgen.NewGenerator(layout).Generate(act, seed+int64(act-1))
	return mapgen.MoveToNode(m, m.CurrentNodeID)
}

func newEncounterRand(seed int64) *rand.Rand {
	return rand.New(rand.NewPCG(uint64(seed), encounterStream))
}
