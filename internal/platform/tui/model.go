// Package tui runs the game in a terminal, either as a Bubble Tea program,
// as a plain blocking loop over a raw terminal, or served over SSH.
package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/term2048/internal/config"
	"github.com/vovakirdan/term2048/internal/game"
	"github.com/vovakirdan/term2048/internal/grid"
)

// Model is the Bubble Tea model driving a game.Machine.
type Model struct {
	machine  *game.Machine
	keys     KeyMap
	help     help.Model
	width    int
	height   int
	shotDir  string
	quitting bool
}

// NewModel wraps a machine. The machine is started on Init.
func NewModel(machine *game.Machine) Model {
	return Model{
		machine: machine,
		keys:    DefaultKeyMap(),
		help:    help.New(),
	}
}

// NewMachine builds a grid and machine from the effective configuration.
func NewMachine(cfg config.Config, logger *log.Logger) *game.Machine {
	g := grid.New(cfg.Size,
		grid.WithSeed(cfg.Seed),
		grid.WithSpawn4Probability(cfg.Spawn4Probability),
	)
	return game.NewMachine(g,
		game.WithTarget(cfg.Target),
		game.WithLogger(logger),
	)
}

// Init starts a fresh game.
func (m Model) Init() tea.Cmd {
	m.machine.Start()
	return nil
}

// Update handles messages and advances the machine.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, screenshotKey) {
		//nolint:errcheck // Best-effort save, game continues regardless
		m.saveScreenshot()
		return m, nil
	}

	action, ok := m.keys.Action(msg)
	if !ok {
		return m, nil
	}
	if m.machine.Handle(action) == game.StateExit {
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

var screenshotKey = key.NewBinding(key.WithKeys("ctrl+s"))

// saveScreenshot writes the plain-text board to ~/.term2048/screenshots.
func (m Model) saveScreenshot() (string, error) {
	dir := m.shotDir
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("tui: screenshot: %w", err)
		}
		dir = filepath.Join(home, ".term2048", "screenshots")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("tui: screenshot: %w", err)
	}

	name := fmt.Sprintf("term2048_%s.txt", time.Now().Format("20060102_150405"))
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(game.RenderText(m.machine.Snapshot())), 0o600); err != nil {
		return "", fmt.Errorf("tui: screenshot: %w", err)
	}
	return path, nil
}

// View renders the board centred in the window.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	content := RenderSnapshot(m.machine.Snapshot(), m.keys, m.help)
	if m.width == 0 || m.height == 0 {
		return content
	}
	if lipgloss.Width(content) > m.width || lipgloss.Height(content) > m.height {
		return "Window too small\nPlease resize terminal"
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
}

// Run plays one game in the alternate screen until the player exits.
func Run(cfg config.Config, logger *log.Logger) error {
	p := tea.NewProgram(NewModel(NewMachine(cfg, logger)), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("tui: %w", err)
	}
	return nil
}
