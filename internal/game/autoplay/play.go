package autoplay

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/udisondev/spirego/internal/game/mapgen"
	"github.com/udisondev/spirego/internal/game/run"
	"github.com/udisondev/spirego/internal/model"
)

// Play drives the session's current run to its end with policy. A combat
// lasting more than maxTurnsPerCombat turns abandons the run.
func Play(ctx context.Context, s *run.Session, policy Policy, maxTurnsPerCombat int) (model.GameState, error) {
	st, ok := s.State()
	if !ok {
		return model.GameState{}, fmt.Errorf("autoplay: %w", model.ErrIllegalState)
	}

	for st.IsRunActive {
		if err := ctx.Err(); err != nil {
			return st, err
		}

		var err error
		switch c := st.CurrentCombat; {
		case c != nil && c.Turn > maxTurnsPerCombat:
			slog.Debug("combat turn limit reached", "run", st.RunID, "combat", c.ID, "turn", c.Turn)
			st, err = s.Abandon()

		case c != nil:
			st, err = playTurnStep(s, policy, *c)

		default:
			options := mapgen.AvailableNextNodes(st.CurrentMap, st.CurrentMap.CurrentNodeID)
			if len(options) == 0 {
				return st, fmt.Errorf("no way forward from %s: %w", st.CurrentMap.CurrentNodeID, model.ErrIllegalState)
			}
			st, err = s.ChooseNode(policy.NextNode(st, options))
		}
		if err != nil {
			return st, err
		}
	}
	return st, nil
}

// playTurnStep plays one card, or ends the turn when the policy passes or
// the engine rejects the play.
func playTurnStep(s *run.Session, policy Policy, c model.Combat) (model.GameState, error) {
	idx, target, ok := policy.NextPlay(c)
	if !ok {
		return s.EndTurn()
	}

	st, err := s.PlayCard(idx, target)
	if err != nil {
		return st, err
	}
	if st.CurrentCombat != nil && len(st.CurrentCombat.History) == len(c.History) {
		slog.Debug("play rejected, ending turn", "index", idx)
		return s.EndTurn()
	}
	return st, nil
}
