package game

import (
	"fmt"
	"strconv"
	"strings"
)

// Text shown under the board.
const (
	HelpMoves   = "(W)Up (S)Down (A)Left (D)Right"
	HelpMeta    = "(R)Restart (Q)Exit"
	WinMessage  = "You Win!"
	OverMessage = "GAME OVER"
)

const minCellWidth = 5

// CellFunc formats a tile value into exactly width visible columns.
// Empty cells have value 0.
type CellFunc func(value, width int) string

// CellWidth returns the column width needed to show every tile on the board.
func CellWidth(cells [][]int) int {
	width := minCellWidth
	for _, row := range cells {
		for _, v := range row {
			width = max(width, len(strconv.Itoa(v)))
		}
	}
	return width
}

// PlainCell centres the value in the cell, or leaves it blank when empty.
func PlainCell(value, width int) string {
	if value == 0 {
		return strings.Repeat(" ", width)
	}
	return center(strconv.Itoa(value), width)
}

func center(s string, width int) string {
	pad := width - len(s)
	if pad <= 0 {
		return s
	}
	left := pad / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", pad-left)
}

// BoardLines draws the grid as a bordered table:
//
//	+-----+-----+
//	|  2  |     |
//	+-----+-----+
func BoardLines(cells [][]int, cell CellFunc) []string {
	width := CellWidth(cells)
	separator := strings.Repeat("+"+strings.Repeat("-", width), len(cells)) + "+"

	lines := make([]string, 0, 2*len(cells)+1)
	for _, row := range cells {
		lines = append(lines, separator)

		parts := make([]string, len(row))
		for x, v := range row {
			parts[x] = cell(v, width)
		}
		lines = append(lines, "|"+strings.Join(parts, "|")+"|")
	}
	lines = append(lines, separator)
	return lines
}

// StatusLine returns the win banner, the game over banner or the move help,
// in that priority.
func StatusLine(s Snapshot) string {
	switch {
	case s.Win:
		return WinMessage
	case s.Over:
		return OverMessage
	default:
		return HelpMoves
	}
}

// RenderText renders a snapshot the way a plain terminal shows it.
func RenderText(s Snapshot) string {
	var b strings.Builder

	fmt.Fprintf(&b, "SCORE: %d\n", s.Score)
	if s.Highscore > 0 {
		fmt.Fprintf(&b, "HIGHSCORE: %d\n", s.Highscore)
	}

	for _, line := range BoardLines(s.Cells, PlainCell) {
		b.WriteString(line)
		b.WriteByte('\n')
	}

	b.WriteString(StatusLine(s))
	b.WriteByte('\n')
	b.WriteString(HelpMeta)
	b.WriteByte('\n')

	return b.String()
}
