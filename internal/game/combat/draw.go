package combat

import (
	"log/slog"

	"github.com/udisondev/spirego/internal/model"
)

// DrawCards pops up to n cards from the top (end) of the draw pile. When the
// draw pile runs out, the discard pile is shuffled into it. Drawing stops
// early when both piles are empty. The drawn cards are returned; the caller
// decides where they go.
func (e *Engine) DrawCards(p *model.Player, n int) []model.Card {
	var drawn []model.Card
	for range n {
		if len(p.DrawPile) == 0 {
			if len(p.DiscardPile) == 0 {
				break
			}
			p.DrawPile = p.DiscardPile
			p.DiscardPile = nil
			e.Shuffle(p.DrawPile)
			slog.Debug("discard reshuffled", "cards", len(p.DrawPile))
		}
		last := len(p.DrawPile) - 1
		drawn = append(drawn, p.DrawPile[last])
		p.DrawPile = p.DrawPile[:last]
	}
	return drawn
}

// Shuffle permutes cards in place (Fisher–Yates) with the engine's source.
func (e *Engine) Shuffle(cards []model.Card) {
	for i := len(cards) - 1; i > 0; i-- {
		j := e.rnd.IntN(i + 1)
		cards[i], cards[j] = cards[j], cards[i]
	}
}
