package model

import "errors"

var (
	// ErrNotFound is returned for unknown character, enemy, card, relic, potion or node ids.
	ErrNotFound = errors.New("not found")
	// ErrIllegalState is returned when a command does not fit the current run
	// state, e.g. playing a card with no active combat.
	ErrIllegalState = errors.New("illegal state")
	// ErrInvalidAction is returned by the run layer for moves the map does not allow.
	// The combat engine never returns it: rejected plays are silent no-ops.
	ErrInvalidAction = errors.New("invalid action")
)
