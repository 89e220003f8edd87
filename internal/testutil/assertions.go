package testutil

import (
	"slices"
	"testing"

	"github.com/udisondev/spirego/internal/model"
)

// CardIDs возвращает id карт в порядке стопки.
func CardIDs(cards []model.Card) []string {
	out := make([]string, 0, len(cards))
	for _, c := range cards {
		out = append(out, c.ID)
	}
	return out
}

// AssertPile проверяет точный порядок карт в стопке (последняя = верх колоды).
func AssertPile(tb testing.TB, want []string, pile []model.Card) {
	tb.Helper()
	if got := CardIDs(pile); !slices.Equal(got, want) {
		tb.Fatalf("pile mismatch: want %v, got %v", want, got)
	}
}

// AssertEvents проверяет последовательность типов событий забега.
func AssertEvents(tb testing.TB, want []model.RunEventKind, events []model.RunEvent) {
	tb.Helper()
	got := make([]model.RunEventKind, 0, len(events))
	for _, e := range events {
		got = append(got, e.Kind)
	}
	if !slices.Equal(got, want) {
		tb.Fatalf("run events mismatch: want %v, got %v", want, got)
	}
}
