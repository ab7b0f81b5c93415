package grid

import (
	"math/rand"
	"slices"
	"testing"

	"github.com/vovakirdan/term2048/internal/core"
)

func TestMoveRowLeft(t *testing.T) {
	tests := []struct {
		name     string
		input    []int
		expected []int
		score    int
	}{
		{
			name:     "simple merge",
			input:    []int{2, 2, 0, 0},
			expected: []int{4, 0, 0, 0},
			score:    4,
		},
		{
			name:     "merge with trailing tile",
			input:    []int{2, 2, 2, 0},
			expected: []int{4, 2, 0, 0},
			score:    4,
		},
		{
			name:     "double merge",
			input:    []int{2, 2, 2, 2},
			expected: []int{4, 4, 0, 0},
			score:    8,
		},
		{
			name:     "no merge possible",
			input:    []int{2, 4, 8, 16},
			expected: []int{2, 4, 8, 16},
			score:    0,
		},
		{
			name:     "slide with gap",
			input:    []int{0, 0, 2, 2},
			expected: []int{4, 0, 0, 0},
			score:    4,
		},
		{
			name:     "merge across gaps",
			input:    []int{4, 0, 0, 4},
			expected: []int{8, 0, 0, 0},
			score:    8,
		},
		{
			name:     "alternating tiles",
			input:    []int{2, 4, 2, 4},
			expected: []int{2, 4, 2, 4},
			score:    0,
		},
		{
			name:     "no change needed",
			input:    []int{4, 2, 0, 0},
			expected: []int{4, 2, 0, 0},
			score:    0,
		},
		{
			name:     "empty row",
			input:    []int{0, 0, 0, 0},
			expected: []int{0, 0, 0, 0},
			score:    0,
		},
		{
			name:     "single tile",
			input:    []int{0, 4, 0, 0},
			expected: []int{4, 0, 0, 0},
			score:    0,
		},
		{
			name:     "one merge per tile",
			input:    []int{4, 4, 4, 4},
			expected: []int{8, 8, 0, 0},
			score:    16,
		},
		{
			name:     "merged tile does not cascade",
			input:    []int{4, 4, 8, 0},
			expected: []int{8, 8, 0, 0},
			score:    8,
		},
		{
			name:     "wide row",
			input:    []int{2, 0, 2, 4, 0, 4},
			expected: []int{4, 8, 0, 0, 0, 0},
			score:    12,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, score := moveRowLeft(tt.input)
			if !slices.Equal(result, tt.expected) {
				t.Errorf("moveRowLeft(%v) = %v, want %v", tt.input, result, tt.expected)
			}
			if score != tt.score {
				t.Errorf("moveRowLeft(%v) score = %d, want %d", tt.input, score, tt.score)
			}
		})
	}
}

func TestCanMoveRowLeft(t *testing.T) {
	tests := []struct {
		row  []int
		want bool
	}{
		{[]int{2, 4, 2, 4}, false},
		{[]int{2, 4, 0, 0}, false},
		{[]int{0, 0, 0, 0}, false},
		{[]int{0, 0, 0, 2}, true},
		{[]int{2, 2, 4, 8}, true},
		{[]int{2, 4, 8, 8}, true},
		{[]int{2, 0, 4, 0}, true},
	}

	for _, tt := range tests {
		if got := canMoveRowLeft(tt.row); got != tt.want {
			t.Errorf("canMoveRowLeft(%v) = %v, want %v", tt.row, got, tt.want)
		}
	}
}

// randomRow builds a row of random small powers of two with some gaps.
func randomRow(rng *rand.Rand) []int {
	values := []int{0, 0, 2, 4, 8, 16}
	row := make([]int, 1+rng.Intn(8))
	for i := range row {
		row[i] = values[rng.Intn(len(values))]
	}
	return row
}

func nonZero(row []int) []int {
	var out []int
	for _, v := range row {
		if v != 0 {
			out = append(out, v)
		}
	}
	return out
}

func sum(row []int) int {
	total := 0
	for _, v := range row {
		total += v
	}
	return total
}

func TestCompactPreservesTiles(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for range 500 {
		row := randomRow(rng)
		result := compact(row)

		if len(result) != len(row) {
			t.Fatalf("compact(%v) length = %d, want %d", row, len(result), len(row))
		}
		if !slices.Equal(nonZero(result), nonZero(row)) {
			t.Fatalf("compact(%v) = %v, tiles or order changed", row, result)
		}
		tiles := len(nonZero(row))
		for i, v := range result {
			if (i < tiles) != (v != 0) {
				t.Fatalf("compact(%v) = %v, not packed to the left", row, result)
			}
		}
	}
}

func TestMergeConservesTileSum(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	for range 500 {
		row := compact(randomRow(rng))
		result, score := merge(row)

		if len(result) != len(row) {
			t.Fatalf("merge(%v) length = %d, want %d", row, len(result), len(row))
		}
		// Two tiles of v become one of 2v, so the board total stays put
		// and every merge removes exactly one tile.
		if sum(result) != sum(row) {
			t.Fatalf("merge(%v) = %v, tile sum %d, want %d", row, result, sum(result), sum(row))
		}
		merges := len(nonZero(row)) - len(nonZero(result))
		if (merges == 0) != (score == 0) {
			t.Fatalf("merge(%v) score = %d with %d merges", row, score, merges)
		}
		if score < 4*merges || score%2 != 0 {
			t.Fatalf("merge(%v) score = %d, inconsistent with %d merges", row, score, merges)
		}
	}
}

func TestTransposeInvertRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	for size := MinSize; size <= 6; size++ {
		cells := emptyCells(size)
		for y := range cells {
			for x := range cells[y] {
				cells[y][x] = rng.Intn(64)
			}
		}

		if got := transpose(transpose(cells)); !equalCells(got, cells) {
			t.Errorf("transpose(transpose(%v)) = %v", cells, got)
		}
		if got := invert(invert(cells)); !equalCells(got, cells) {
			t.Errorf("invert(invert(%v)) = %v", cells, got)
		}
	}
}

func TestShiftLeft(t *testing.T) {
	board := [][]int{
		{2, 2, 0, 0},
		{4, 0, 4, 0},
		{2, 2, 2, 2},
		{0, 0, 0, 2},
	}

	expected := [][]int{
		{4, 0, 0, 0},
		{8, 0, 0, 0},
		{4, 4, 0, 0},
		{2, 0, 0, 0},
	}

	result, score := shift(board, core.DirLeft)

	if !equalCells(result, expected) {
		t.Errorf("shift left: got\n%v\nwant\n%v", result, expected)
	}

	expectedScore := 4 + 8 + 4 + 4
	if score != expectedScore {
		t.Errorf("shift left score = %d, want %d", score, expectedScore)
	}
}

func TestShiftRight(t *testing.T) {
	board := [][]int{
		{2, 2, 0, 0},
		{4, 0, 4, 0},
		{2, 2, 2, 2},
		{0, 0, 0, 2},
	}

	expected := [][]int{
		{0, 0, 0, 4},
		{0, 0, 0, 8},
		{0, 0, 4, 4},
		{0, 0, 0, 2},
	}

	result, _ := shift(board, core.DirRight)

	if !equalCells(result, expected) {
		t.Errorf("shift right: got\n%v\nwant\n%v", result, expected)
	}
}

func TestShiftUp(t *testing.T) {
	board := [][]int{
		{2, 4, 2, 0},
		{2, 0, 2, 0},
		{0, 4, 2, 0},
		{0, 0, 2, 2},
	}

	expected := [][]int{
		{4, 8, 4, 2},
		{0, 0, 4, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	}

	result, score := shift(board, core.DirUp)

	if !equalCells(result, expected) {
		t.Errorf("shift up: got\n%v\nwant\n%v", result, expected)
	}
	if score != 4+8+4+4 {
		t.Errorf("shift up score = %d, want 20", score)
	}
}

func TestShiftDown(t *testing.T) {
	board := [][]int{
		{2, 4, 2, 2},
		{2, 0, 2, 0},
		{0, 4, 2, 0},
		{0, 0, 2, 0},
	}

	expected := [][]int{
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 4, 0},
		{4, 8, 4, 2},
	}

	result, _ := shift(board, core.DirDown)

	if !equalCells(result, expected) {
		t.Errorf("shift down: got\n%v\nwant\n%v", result, expected)
	}
}

func TestShiftDoesNotTouchInput(t *testing.T) {
	board := [][]int{
		{2, 2},
		{0, 4},
	}
	for _, dir := range core.Directions {
		shift(board, dir)
	}
	if !equalCells(board, [][]int{{2, 2}, {0, 4}}) {
		t.Errorf("shift mutated its input: %v", board)
	}
}

func equalCells(a, b [][]int) bool {
	return slices.EqualFunc(a, b, func(x, y []int) bool {
		return slices.Equal(x, y)
	})
}
