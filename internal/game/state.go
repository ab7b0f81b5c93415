// Package game drives a 2048 grid through its lifecycle:
// Init -> Playing -> {Won, Over} -> Init or Exit.
package game

import (
	"fmt"

	"github.com/vovakirdan/term2048/internal/core"
)

// State is a phase of the game loop.
type State int

const (
	StateInit State = iota
	StatePlaying
	StateWon
	StateOver
	StateExit
)

// String returns a human-readable name for the state.
func (s State) String() string {
	switch s {
	case StateInit:
		return "init"
	case StatePlaying:
		return "playing"
	case StateWon:
		return "won"
	case StateOver:
		return "over"
	case StateExit:
		return "exit"
	default:
		return "unknown"
	}
}

// Outcome is what the engine reported for the action being handled.
// Won and Over are only meaningful when Moved is true.
type Outcome struct {
	Moved bool
	Won   bool
	Over  bool
}

// Next returns the state that follows s after action a with the given outcome.
// Init ignores the action. A win beats game over when both hold.
func Next(s State, a core.Action, o Outcome) State {
	switch s {
	case StateInit:
		return StatePlaying

	case StatePlaying:
		switch a {
		case core.ActionRestart:
			return StateInit
		case core.ActionExit:
			return StateExit
		case core.ActionUp, core.ActionLeft, core.ActionDown, core.ActionRight:
			switch {
			case !o.Moved:
				return StatePlaying
			case o.Won:
				return StateWon
			case o.Over:
				return StateOver
			default:
				return StatePlaying
			}
		}

	case StateWon, StateOver:
		switch a {
		case core.ActionRestart:
			return StateInit
		case core.ActionExit:
			return StateExit
		case core.ActionUp, core.ActionLeft, core.ActionDown, core.ActionRight:
			return s
		}

	case StateExit:
		return StateExit
	}

	panic(fmt.Sprintf("game: no transition from %v on %v", s, a))
}
