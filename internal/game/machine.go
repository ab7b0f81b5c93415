package game

import (
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/term2048/internal/core"
	"github.com/vovakirdan/term2048/internal/grid"
)

// DefaultTarget is the tile value that wins the game.
const DefaultTarget = 2048

// Source supplies player actions. Next blocks until one is available and
// only ever returns members of the action vocabulary.
type Source interface {
	Next() (core.Action, error)
}

// Renderer displays a snapshot. It must not keep the snapshot past the call.
type Renderer interface {
	Render(Snapshot) error
}

// Machine owns a grid and interprets actions into state transitions.
// It is not safe for concurrent use; one action is handled at a time.
type Machine struct {
	grid   *grid.Grid
	target int
	state  State
	logger *log.Logger
}

// Option configures a Machine.
type Option func(*Machine)

// WithTarget sets the winning tile value.
func WithTarget(target int) Option {
	return func(m *Machine) {
		m.target = target
	}
}

// WithLogger sets the logger used for transition tracing.
func WithLogger(logger *log.Logger) Option {
	return func(m *Machine) {
		m.logger = logger
	}
}

// NewMachine creates a machine in the Init state around g.
func NewMachine(g *grid.Grid, opts ...Option) *Machine {
	m := &Machine{
		grid:   g,
		target: DefaultTarget,
		state:  StateInit,
	}
	for _, opt := range opts {
		opt(m)
	}
	if m.logger == nil {
		m.logger = log.New(io.Discard)
	}
	return m
}

// State returns the current state.
func (m *Machine) State() State {
	return m.state
}

// Target returns the winning tile value.
func (m *Machine) Target() int {
	return m.target
}

// Start runs the Init state if the machine is in it, leaving it in Playing.
func (m *Machine) Start() {
	for m.state == StateInit {
		m.grid.Reset()
		m.logger.Info("new game", "size", m.grid.Size(), "highscore", m.grid.Highscore())
		m.state = Next(StateInit, core.ActionRestart, Outcome{})
	}
}

// Handle applies one action and returns the resulting state.
// Win and game over are only evaluated after a move that changed the grid.
func (m *Machine) Handle(a core.Action) State {
	m.Start()

	var outcome Outcome
	if dir, ok := a.Direction(); ok && m.state == StatePlaying {
		outcome.Moved = m.grid.Move(dir)
		if outcome.Moved {
			outcome.Won = m.grid.MaxTile() >= m.target
			outcome.Over = !m.grid.HasMove()
		}
	}

	prev := m.state
	m.state = Next(prev, a, outcome)
	m.logger.Debug("transition",
		"from", prev,
		"to", m.state,
		"action", a,
		"moved", outcome.Moved,
		"score", m.grid.Score(),
	)

	m.Start()
	return m.state
}

// Run is the blocking game loop: render, read one action, handle it, until
// the player exits. A source returning io.EOF ends the loop cleanly.
func (m *Machine) Run(src Source, r Renderer) error {
	m.Start()

	for m.state != StateExit {
		if err := r.Render(m.Snapshot()); err != nil {
			return fmt.Errorf("game: render: %w", err)
		}

		action, err := src.Next()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("game: read action: %w", err)
		}

		m.Handle(action)
	}

	return nil
}
