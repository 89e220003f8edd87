package model

import "time"

// RunEventKind classifies run history entries.
type RunEventKind string

const (
	EventCombatStart  RunEventKind = "combat_start"
	EventCombatEnd    RunEventKind = "combat_end"
	EventHPLost       RunEventKind = "hp_lost"
	EventActCompleted RunEventKind = "act_completed"
	EventRunCompleted RunEventKind = "run_completed"
)

// RunEvent is one entry of the run history.
type RunEvent struct {
	Kind   RunEventKind
	Act    int
	NodeID string
	Value  int
	Detail string
	At     time.Time
}

// Outcome is the final result of a run.
type Outcome string

const (
	OutcomeInProgress Outcome = ""
	OutcomeWon        Outcome = "won"
	OutcomeLost       Outcome = "lost"
	OutcomeAbandoned  Outcome = "abandoned"
)

// GameState is the top-level run aggregate. CurrentCombat is non-nil iff the
// player is mid-encounter.
type GameState struct {
	RunID         string
	Seed          int64
	CurrentAct    int
	CurrentMap    GameMap
	Player        Player
	CurrentCombat *Combat
	RunHistory    []RunEvent
	RunStartTime  time.Time
	IsRunActive   bool
	Outcome       Outcome
	FloorsCleared int
	TotalTurns    int
}

// Clone returns a deep copy.
func (s GameState) Clone() GameState {
	out := s
	out.CurrentMap = s.CurrentMap.Clone()
	out.Player = s.Player.Clone()
	if s.CurrentCombat != nil {
		c := s.CurrentCombat.Clone()
		out.CurrentCombat = &c
	}
	if s.RunHistory != nil {
		out.RunHistory = make([]RunEvent, len(s.RunHistory))
		copy(out.RunHistory, s.RunHistory)
	}
	return out
}
