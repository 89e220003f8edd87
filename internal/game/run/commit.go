package run

import (
	"log/slog"

	"github.com/udisondev/spirego/internal/game/combat"
	"github.com/udisondev/spirego/internal/model"
)

// settle stores c as the active combat, or commits it when it is over.
func (s *Session) settle(st *model.GameState, c model.Combat) {
	if !combat.IsOver(c) {
		st.CurrentCombat = &c
		return
	}
	s.finishCombat(st, c)
}

// finishCombat merges the combat result into the run. This is the only
// place the combat's working copy of the player flows back.
func (s *Session) finishCombat(st *model.GameState, c model.Combat) {
	winner := combat.Winner(c)
	st.CurrentCombat = nil
	st.TotalTurns += c.Turn

	if lost := st.Player.CurrentHP - c.Player.CurrentHP; lost > 0 {
		s.event(st, model.EventHPLost, lost, c.ID)
	}
	s.event(st, model.EventCombatEnd, c.Turn, string(winner))
	slog.Info("combat ended", "run", st.RunID, "combat", c.ID, "winner", winner, "turns", c.Turn, "hp", c.Player.CurrentHP)

	if winner == model.SideEnemy {
		st.Player.CurrentHP = max(c.Player.CurrentHP, 0)
		s.endRun(st, model.OutcomeLost)
		return
	}

	st.Player = s.commitPlayer(st.Player, c.Player)
	st.FloorsCleared++

	node, ok := st.CurrentMap.CurrentNode()
	if !ok || node.Type != model.NodeBoss {
		return
	}

	s.event(st, model.EventActCompleted, st.CurrentAct, node.ID)
	if st.CurrentAct >= s.opts.Acts {
		s.endRun(st, model.OutcomeWon)
		return
	}

	st.CurrentAct++
	st.CurrentMap = actMap(s.opts.Layout, st.CurrentAct, st.Seed)
	slog.Info("act started", "run", st.RunID, "act", st.CurrentAct, "start", st.CurrentMap.CurrentNodeID)
}

// commitPlayer copies HP, gold and potions from the combat player and
// rebuilds the piles from the deck.
func (s *Session) commitPlayer(persistent, fought model.Player) model.Player {
	p := persistent.Clone()
	p.CurrentHP = fought.CurrentHP
	p.Gold = fought.Gold
	p.Potions = append([]model.Potion(nil), fought.Potions...)

	p.Hand = nil
	p.DrawPile = append([]model.Card(nil), p.Deck...)
	p.DiscardPile = nil
	p.ExhaustPile = nil
	p.Powers = nil
	p.Block = 0
	s.engine.Shuffle(p.DrawPile)

	return combat.ApplyCombatEndRelics(p)
}

func (s *Session) endRun(st *model.GameState, outcome model.Outcome) {
	st.IsRunActive = false
	st.Outcome = outcome
	s.event(st, model.EventRunCompleted, st.FloorsCleared, string(outcome))
	slog.Info("run completed", "run", st.RunID, "outcome", outcome, "act", st.CurrentAct, "floors", st.FloorsCleared, "turns", st.TotalTurns)
}

func (s *Session) event(st *model.GameState, kind model.RunEventKind, value int, detail string) {
	st.RunHistory = append(st.RunHistory, model.RunEvent{
		Kind:   kind,
		Act:    st.CurrentAct,
		NodeID: st.CurrentMap.CurrentNodeID,
		Value:  value,
		Detail: detail,
		At:     s.opts.Clock.Now(),
	})
}
