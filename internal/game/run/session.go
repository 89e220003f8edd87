// Package run owns the run-level game state: the persistent player, the
// current act map and the active combat. A Session serializes commands and
// commits combat results back into the player.
package run

import (
	"fmt"
	"log/slog"
	"math/rand/v2"
	"sync"

	"github.com/google/uuid"

	"github.com/udisondev/spirego/internal/data"
	"github.com/udisondev/spirego/internal/game/combat"
	"github.com/udisondev/spirego/internal/game/mapgen"
	"github.com/udisondev/spirego/internal/model"
)

// Session drives one run at a time. Safe for concurrent use; commands are
// applied one at a time.
//
// Every command either applies fully or leaves the state untouched and
// returns an error. Plays the combat engine rejects (not enough energy,
// bad index) are not errors: the state is returned unchanged.
type Session struct {
	mu      sync.Mutex
	opts    Options
	state   *model.GameState
	engine  *combat.Engine
	rnd     *rand.Rand
	lastErr error
}

// NewSession creates an idle session. Call StartNewRun to begin.
func NewSession(opts Options) *Session {
	if opts.Clock == nil {
		opts.Clock = RealClock{}
	}
	return &Session{opts: opts}
}

// State returns a deep copy of the current run state. ok is false when no
// run has been started.
func (s *Session) State() (state model.GameState, ok bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state == nil {
		return model.GameState{}, false
	}
	return s.state.Clone(), true
}

// LastError returns the error of the most recent failed command. It is
// cleared by StartNewRun and ResetGame.
func (s *Session) LastError() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastErr
}

// StartNewRun replaces any current run with a fresh one.
func (s *Session) StartNewRun(characterID string, seed int64) (model.GameState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	engine := combat.NewEngine(s.opts.Rules, uint64(seed))
	st, err := newGameState(characterID, seed, s.opts, engine)
	if err != nil {
		return s.fail(fmt.Errorf("starting run: %w", err))
	}

	s.state = &st
	s.engine = engine
	s.rnd = newEncounterRand(seed)
	s.lastErr = nil

	slog.Info("run started", "run", st.RunID, "character", characterID, "seed", seed)
	return st.Clone(), nil
}

// ResetGame drops the current run.
func (s *Session) ResetGame() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state != nil {
		slog.Info("run reset", "run", s.state.RunID)
	}
	s.state = nil
	s.engine = nil
	s.rnd = nil
	s.lastErr = nil
}

// ChooseNode moves to nodeID, which must be connected to the current node.
// Monster, elite and boss nodes start a combat with an encounter from the
// act's pool; other node types are resolved immediately.
func (s *Session) ChooseNode(nodeID string) (model.GameState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.requireIdle(); err != nil {
		return s.fail(err)
	}

	next := s.state.Clone()
	reachable := false
	for _, n := range mapgen.AvailableNextNodes(next.CurrentMap, next.CurrentMap.CurrentNodeID) {
		if n.ID == nodeID {
			reachable = true
			break
		}
	}
	if !reachable {
		return s.fail(fmt.Errorf("node %s not reachable from %s: %w", nodeID, next.CurrentMap.CurrentNodeID, model.ErrInvalidAction))
	}

	next.CurrentMap = mapgen.MoveToNode(next.CurrentMap, nodeID)
	node, _ := next.CurrentMap.CurrentNode()

	if !node.Type.IsCombat() {
		next.FloorsCleared++
		slog.Debug("node resolved", "node", nodeID, "type", node.Type)
		s.state = &next
		return next.Clone(), nil
	}

	pool := data.Encounters(next.CurrentAct, node.Type)
	if len(pool) == 0 {
		return s.fail(fmt.Errorf("encounters for %s in act %d: %w", node.Type, next.CurrentAct, model.ErrNotFound))
	}
	enemyIDs := pool[s.rnd.IntN(len(pool))]

	if err := s.enterCombat(&next, enemyIDs); err != nil {
		return s.fail(err)
	}
	s.state = &next
	return next.Clone(), nil
}

// StartCombat starts a combat against enemyIDs at the current node.
// Returns model.ErrNotFound for an unknown enemy id.
func (s *Session) StartCombat(enemyIDs []string) (model.GameState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.requireIdle(); err != nil {
		return s.fail(err)
	}

	next := s.state.Clone()
	if err := s.enterCombat(&next, enemyIDs); err != nil {
		return s.fail(err)
	}
	s.state = &next
	return next.Clone(), nil
}

// PlayCard plays the hand card at handIndex. Ends the combat when the play
// kills the last enemy.
func (s *Session) PlayCard(handIndex int, targetEnemyID string) (model.GameState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.requireCombat(); err != nil {
		return s.fail(err)
	}

	next := s.state.Clone()
	c := s.engine.PlayCard(*next.CurrentCombat, handIndex, targetEnemyID)
	s.settle(&next, c)
	s.state = &next
	return next.Clone(), nil
}

// UsePotion drinks the potion in slot.
func (s *Session) UsePotion(slot int, targetEnemyID string) (model.GameState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.requireCombat(); err != nil {
		return s.fail(err)
	}

	next := s.state.Clone()
	c := s.engine.UsePotion(*next.CurrentCombat, slot, targetEnemyID)
	s.settle(&next, c)
	s.state = &next
	return next.Clone(), nil
}

// EndTurn ends the player turn, lets the enemies act and starts the next
// player turn, stopping as soon as the combat is over.
func (s *Session) EndTurn() (model.GameState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.requireCombat(); err != nil {
		return s.fail(err)
	}

	next := s.state.Clone()
	c := s.engine.EndPlayerTurn(*next.CurrentCombat)
	if !combat.IsOver(c) {
		c = s.engine.StartEnemyTurn(c)
	}
	if !combat.IsOver(c) {
		c = s.engine.StartPlayerTurn(c)
	}
	s.settle(&next, c)
	s.state = &next
	return next.Clone(), nil
}

// AddPotion puts a potion in the first free slot.
// Returns model.ErrInvalidAction when every slot is taken.
func (s *Session) AddPotion(potionID string) (model.GameState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.requireActive(); err != nil {
		return s.fail(err)
	}
	potion, err := data.GetPotion(potionID)
	if err != nil {
		return s.fail(err)
	}

	next := s.state.Clone()
	p := &next.Player
	if next.CurrentCombat != nil {
		p = &next.CurrentCombat.Player
	}
	if len(p.Potions) >= s.opts.MaxPotionSlots {
		return s.fail(fmt.Errorf("potion slots full (%d): %w", s.opts.MaxPotionSlots, model.ErrInvalidAction))
	}
	p.Potions = append(p.Potions, potion)

	s.state = &next
	return next.Clone(), nil
}

// Abandon ends the current run without a winner.
func (s *Session) Abandon() (model.GameState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.requireActive(); err != nil {
		return s.fail(err)
	}

	next := s.state.Clone()
	if next.CurrentCombat != nil {
		next.TotalTurns += next.CurrentCombat.Turn
		next.CurrentCombat = nil
	}
	s.endRun(&next, model.OutcomeAbandoned)
	s.state = &next
	return next.Clone(), nil
}

func (s *Session) enterCombat(st *model.GameState, enemyIDs []string) error {
	enemies, err := data.GetEnemies(enemyIDs)
	if err != nil {
		return fmt.Errorf("starting combat: %w", err)
	}
	if len(enemies) == 0 {
		return fmt.Errorf("starting combat: no enemies: %w", model.ErrInvalidAction)
	}

	c := s.engine.Initialize(uuid.NewString(), st.Player, enemies)
	c = s.engine.StartPlayerTurn(c)
	st.CurrentCombat = &c

	s.event(st, model.EventCombatStart, len(enemies), fmt.Sprint(enemyIDs))
	slog.Info("combat started", "run", st.RunID, "combat", c.ID, "act", st.CurrentAct, "node", st.CurrentMap.CurrentNodeID, "enemies", enemyIDs)
	return nil
}

func (s *Session) fail(err error) (model.GameState, error) {
	s.lastErr = err
	slog.Debug("command failed", "error", err)
	if s.state == nil {
		return model.GameState{}, err
	}
	return s.state.Clone(), err
}

func (s *Session) requireActive() error {
	if s.state == nil {
		return fmt.Errorf("no run: %w", model.ErrIllegalState)
	}
	if !s.state.IsRunActive {
		return fmt.Errorf("run %s is over: %w", s.state.RunID, model.ErrIllegalState)
	}
	return nil
}

func (s *Session) requireIdle() error {
	if err := s.requireActive(); err != nil {
		return err
	}
	if s.state.CurrentCombat != nil {
		return fmt.Errorf("combat %s in progress: %w", s.state.CurrentCombat.ID, model.ErrIllegalState)
	}
	return nil
}

func (s *Session) requireCombat() error {
	if err := s.requireActive(); err != nil {
		return err
	}
	if s.state.CurrentCombat == nil {
		return fmt.Errorf("no active combat: %w", model.ErrIllegalState)
	}
	return nil
}
