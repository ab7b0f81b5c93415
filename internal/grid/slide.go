package grid

import (
	"fmt"

	"github.com/vovakirdan/term2048/internal/core"
)

// compact pushes non-zero values to the left, keeping their order,
// and pads the right side with zeros.
func compact(row []int) []int {
	result := make([]int, len(row))
	writePos := 0
	for _, v := range row {
		if v == 0 {
			continue
		}
		result[writePos] = v
		writePos++
	}
	return result
}

// merge combines equal adjacent tiles of a compacted row, left to right.
// A merged tile cannot merge again in the same pass, so [2,2,2] becomes [4,2].
// Returns the row (same length as the input) and the score gained.
func merge(row []int) (result []int, score int) {
	result = make([]int, 0, len(row))
	for i := 0; i < len(row); i++ {
		if row[i] != 0 && i+1 < len(row) && row[i] == row[i+1] {
			merged := row[i] * 2
			result = append(result, merged)
			score += merged
			i++ // the partner is consumed
			continue
		}
		result = append(result, row[i])
	}
	for len(result) < len(row) {
		result = append(result, 0)
	}
	return result, score
}

// moveRowLeft slides and merges a single row to the left.
func moveRowLeft(row []int) ([]int, int) {
	merged, score := merge(compact(row))
	return compact(merged), score
}

// canMoveRowLeft reports whether sliding the row left would change it:
// a tile sits right of an empty slot, or two equal tiles are adjacent.
func canMoveRowLeft(row []int) bool {
	for i := 0; i+1 < len(row); i++ {
		if row[i] == 0 && row[i+1] != 0 {
			return true
		}
		if row[i] != 0 && row[i] == row[i+1] {
			return true
		}
	}
	return false
}

// transpose returns the matrix transpose.
func transpose(cells [][]int) [][]int {
	result := make([][]int, len(cells))
	for y := range cells {
		result[y] = make([]int, len(cells))
		for x := range cells {
			result[y][x] = cells[x][y]
		}
	}
	return result
}

// invert returns a copy with every row reversed.
func invert(cells [][]int) [][]int {
	result := make([][]int, len(cells))
	for y, row := range cells {
		n := len(row)
		result[y] = make([]int, n)
		for x := range row {
			result[y][x] = row[n-1-x]
		}
	}
	return result
}

// moveLeft slides every row left.
func moveLeft(cells [][]int) ([][]int, int) {
	result := make([][]int, len(cells))
	total := 0
	for y, row := range cells {
		var score int
		result[y], score = moveRowLeft(row)
		total += score
	}
	return result, total
}

// shift applies a full move in the given direction without spawning.
// Every direction reduces to a left move: Right inverts the rows around it,
// Up transposes around Left, Down transposes around Right.
func shift(cells [][]int, dir core.Direction) ([][]int, int) {
	switch dir {
	case core.DirLeft:
		return moveLeft(cells)
	case core.DirRight:
		slid, score := moveLeft(invert(cells))
		return invert(slid), score
	case core.DirUp:
		slid, score := shift(transpose(cells), core.DirLeft)
		return transpose(slid), score
	case core.DirDown:
		slid, score := shift(transpose(cells), core.DirRight)
		return transpose(slid), score
	default:
		panic(fmt.Sprintf("grid: unknown direction %d", dir))
	}
}

// canShift reports whether a move in the given direction would change anything.
func canShift(cells [][]int, dir core.Direction) bool {
	switch dir {
	case core.DirLeft:
		for _, row := range cells {
			if canMoveRowLeft(row) {
				return true
			}
		}
		return false
	case core.DirRight:
		return canShift(invert(cells), core.DirLeft)
	case core.DirUp:
		return canShift(transpose(cells), core.DirLeft)
	case core.DirDown:
		return canShift(transpose(cells), core.DirRight)
	default:
		panic(fmt.Sprintf("grid: unknown direction %d", dir))
	}
}
