// Package core provides the action vocabulary shared by the engine, the state
// machine and the input front ends. It has no external dependencies so the
// game logic stays pure and testable.
package core

import "unicode"

// Direction is one of the four ways tiles can be shifted.
type Direction int

const (
	DirUp Direction = iota
	DirLeft
	DirDown
	DirRight
)

// Directions lists every direction in a fixed order.
var Directions = [...]Direction{DirUp, DirLeft, DirDown, DirRight}

// String returns a human-readable name for the direction.
func (d Direction) String() string {
	switch d {
	case DirUp:
		return "Up"
	case DirLeft:
		return "Left"
	case DirDown:
		return "Down"
	case DirRight:
		return "Right"
	default:
		return "Unknown"
	}
}

// Action is a semantic player intent, abstracted from physical key presses.
// It is the only vocabulary the state machine accepts.
type Action int

const (
	ActionUp Action = iota
	ActionLeft
	ActionDown
	ActionRight
	ActionRestart
	ActionExit
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionUp:
		return "Up"
	case ActionLeft:
		return "Left"
	case ActionDown:
		return "Down"
	case ActionRight:
		return "Right"
	case ActionRestart:
		return "Restart"
	case ActionExit:
		return "Exit"
	default:
		return "Unknown"
	}
}

// Direction returns the move direction for a directional action.
// Restart and Exit are meta-actions and report ok == false.
func (a Action) Direction() (dir Direction, ok bool) {
	switch a {
	case ActionUp:
		return DirUp, true
	case ActionLeft:
		return DirLeft, true
	case ActionDown:
		return DirDown, true
	case ActionRight:
		return DirRight, true
	case ActionRestart, ActionExit:
		return 0, false
	default:
		return 0, false
	}
}

// ParseKey maps a key to an action using the default layout:
// W=Up, A=Left, S=Down, D=Right, R=Restart, Q=Exit (case-insensitive).
// Any other key reports ok == false and should be discarded.
func ParseKey(r rune) (action Action, ok bool) {
	switch unicode.ToLower(r) {
	case 'w':
		return ActionUp, true
	case 'a':
		return ActionLeft, true
	case 's':
		return ActionDown, true
	case 'd':
		return ActionRight, true
	case 'r':
		return ActionRestart, true
	case 'q':
		return ActionExit, true
	}
	return 0, false
}
