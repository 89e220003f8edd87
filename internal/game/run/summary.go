package run

import (
	"time"

	"github.com/udisondev/spirego/internal/model"
)

// Summary is the outcome of a finished (or abandoned) run.
type Summary struct {
	RunID         string
	Character     string
	Seed          int64
	ActReached    int
	FloorsCleared int
	Outcome       model.Outcome
	Turns         int
	StartedAt     time.Time
	FinishedAt    time.Time
}

// Summarize extracts the run summary from st. FinishedAt is the time of the
// run_completed event, or zero while the run is in progress.
func Summarize(st model.GameState) Summary {
	sum := Summary{
		RunID:         st.RunID,
		Character:     st.Player.Character,
		Seed:          st.Seed,
		ActReached:    st.CurrentAct,
		FloorsCleared: st.FloorsCleared,
		Outcome:       st.Outcome,
		Turns:         st.TotalTurns,
		StartedAt:     st.RunStartTime,
	}
	for i := len(st.RunHistory) - 1; i >= 0; i-- {
		if st.RunHistory[i].Kind == model.EventRunCompleted {
			sum.FinishedAt = st.RunHistory[i].At
			break
		}
	}
	return sum
}
