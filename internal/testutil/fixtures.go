package testutil

import (
	"testing"

	"github.com/udisondev/spirego/internal/data"
	"github.com/udisondev/spirego/internal/model"
)

// Card возвращает копию карты из таблицы контента или валит тест.
func Card(tb testing.TB, id string) model.Card {
	tb.Helper()
	c, err := data.GetCard(id)
	if err != nil {
		tb.Fatalf("card fixture: %v", err)
	}
	return c
}

// Enemy возвращает свежий шаблон врага или валит тест.
func Enemy(tb testing.TB, id string) model.Enemy {
	tb.Helper()
	e, err := data.GetEnemy(id)
	if err != nil {
		tb.Fatalf("enemy fixture: %v", err)
	}
	return e
}

// Ironclad возвращает стартового игрока: полный HP, стартовая колода в
// draw pile (без перемешивания), стартовая реликвия.
func Ironclad(tb testing.TB) model.Player {
	tb.Helper()
	ch, err := data.GetCharacter(data.CharacterIronclad)
	if err != nil {
		tb.Fatalf("character fixture: %v", err)
	}
	return model.Player{
		MaxHP:     ch.MaxHP,
		CurrentHP: ch.MaxHP,
		Deck:      ch.StartingDeck,
		DrawPile:  append([]model.Card(nil), ch.StartingDeck...),
		Relics:    []model.Relic{ch.StarterRelic},
		Character: ch.ID,
	}
}
