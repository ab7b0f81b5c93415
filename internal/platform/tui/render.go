package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/term2048/internal/game"
)

// tileStyles maps tile values to ANSI 256-color styles.
var tileStyles = map[int]lipgloss.Style{
	2:    lipgloss.NewStyle().Foreground(lipgloss.Color("255")),
	4:    lipgloss.NewStyle().Foreground(lipgloss.Color("230")),
	8:    lipgloss.NewStyle().Foreground(lipgloss.Color("215")),
	16:   lipgloss.NewStyle().Foreground(lipgloss.Color("209")),
	32:   lipgloss.NewStyle().Foreground(lipgloss.Color("203")),
	64:   lipgloss.NewStyle().Foreground(lipgloss.Color("196")),
	128:  lipgloss.NewStyle().Foreground(lipgloss.Color("228")).Bold(true),
	256:  lipgloss.NewStyle().Foreground(lipgloss.Color("227")).Bold(true),
	512:  lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Bold(true),
	1024: lipgloss.NewStyle().Foreground(lipgloss.Color("220")).Bold(true),
	2048: lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Bold(true),
}

var (
	bigTileStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("48")).Bold(true)
	borderStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	scoreStyle   = lipgloss.NewStyle().Bold(true)
	winStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true)
	overStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
)

func tileStyle(value int) lipgloss.Style {
	if style, ok := tileStyles[value]; ok {
		return style
	}
	return bigTileStyle
}

// styledCell is a game.CellFunc that colours tiles by value.
func styledCell(value, width int) string {
	if value == 0 {
		return strings.Repeat(" ", width)
	}
	return tileStyle(value).Render(game.PlainCell(value, width))
}

// styleBorders colours the table frame, leaving the tile text alone.
func styleBorders(line string) string {
	if strings.HasPrefix(line, "+") {
		return borderStyle.Render(line)
	}
	bar := borderStyle.Render("|")
	return strings.ReplaceAll(line, "|", bar)
}

// RenderSnapshot draws a snapshot with colours and key help.
func RenderSnapshot(s game.Snapshot, keys KeyMap, h help.Model) string {
	lines := []string{scoreStyle.Render(fmt.Sprintf("SCORE: %d", s.Score))}
	if s.Highscore > 0 {
		lines = append(lines, fmt.Sprintf("HIGHSCORE: %d", s.Highscore))
	}

	for _, line := range game.BoardLines(s.Cells, styledCell) {
		lines = append(lines, styleBorders(line))
	}

	switch {
	case s.Win:
		lines = append(lines, winStyle.Render(game.WinMessage))
	case s.Over:
		lines = append(lines, overStyle.Render(game.OverMessage))
	default:
		lines = append(lines, h.ShortHelpView(keys.ShortHelp()))
	}
	lines = append(lines, h.ShortHelpView(keys.MetaHelp()))

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}
