// Package grid implements the 2048 board engine: tile spawning, directional
// shift/merge, movability checks and score bookkeeping.
//
// The engine knows nothing about winning or losing; it only exposes the raw
// cells needed to decide that.
package grid

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/vovakirdan/term2048/internal/core"
)

const (
	// DefaultSize is the default board dimension.
	DefaultSize = 4
	// MinSize is the smallest board the engine accepts.
	MinSize = 2
	// DefaultSpawn4Probability is the chance a spawned tile is a 4 instead of a 2.
	DefaultSpawn4Probability = 0.10
)

// Random is the source of randomness used for spawning.
// *rand.Rand satisfies it.
type Random interface {
	// Intn returns a value in [0, n).
	Intn(n int) int
	// Float64 returns a value in [0.0, 1.0).
	Float64() float64
}

// Grid is a square board of tiles plus the running score.
// Zero means an empty cell; every other value is a power of two.
type Grid struct {
	size      int
	cells     [][]int
	score     int
	highscore int
	spawn4    float64
	rng       Random
}

// Option configures a Grid.
type Option func(*Grid)

// WithRandom sets the random source used for spawning.
func WithRandom(r Random) Option {
	return func(g *Grid) {
		g.rng = r
	}
}

// WithSeed seeds a math/rand source for reproducible games.
// A zero seed uses the current time.
func WithSeed(seed int64) Option {
	return func(g *Grid) {
		if seed == 0 {
			seed = time.Now().UnixNano()
		}
		g.rng = rand.New(rand.NewSource(seed))
	}
}

// WithSpawn4Probability sets the chance that a spawned tile is a 4.
func WithSpawn4Probability(p float64) Option {
	return func(g *Grid) {
		g.spawn4 = p
	}
}

// WithHighscore carries a highscore into a new engine.
func WithHighscore(highscore int) Option {
	return func(g *Grid) {
		g.highscore = highscore
	}
}

// New creates a size x size grid and resets it, so it starts with two tiles.
// Panics if size is smaller than MinSize.
func New(size int, opts ...Option) *Grid {
	g := newGrid(size, opts)
	g.Reset()
	return g
}

// FromCells creates a grid holding a copy of the given cells, without spawning.
// The score starts at zero. Panics if cells is not square or too small.
func FromCells(cells [][]int, opts ...Option) *Grid {
	g := newGrid(len(cells), opts)
	for y, row := range cells {
		if len(row) != g.size {
			panic(fmt.Sprintf("grid: row %d has %d cells, want %d", y, len(row), g.size))
		}
		copy(g.cells[y], row)
	}
	return g
}

func newGrid(size int, opts []Option) *Grid {
	if size < MinSize {
		panic(fmt.Sprintf("grid: size %d is smaller than %d", size, MinSize))
	}

	g := &Grid{
		size:   size,
		cells:  emptyCells(size),
		spawn4: DefaultSpawn4Probability,
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.rng == nil {
		g.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return g
}

func emptyCells(size int) [][]int {
	cells := make([][]int, size)
	for y := range cells {
		cells[y] = make([]int, size)
	}
	return cells
}

// Reset starts a new game: the score rolls into the highscore if it beats it,
// the board is cleared and two tiles are spawned.
func (g *Grid) Reset() {
	if g.score > g.highscore {
		g.highscore = g.score
	}
	g.score = 0
	g.cells = emptyCells(g.size)
	g.SpawnRandomTile()
	g.SpawnRandomTile()
}

// SpawnRandomTile places a 2 (or a 4, with the configured probability) on a
// uniformly chosen empty cell.
// Callers must know an empty cell exists; spawning on a full board panics.
func (g *Grid) SpawnRandomTile() {
	empty := g.emptyPositions()
	if len(empty) == 0 {
		panic("grid: spawn on a full board")
	}

	pos := empty[g.rng.Intn(len(empty))]

	value := 2
	if g.rng.Float64() < g.spawn4 {
		value = 4
	}
	g.cells[pos.y][pos.x] = value
}

type position struct{ x, y int }

func (g *Grid) emptyPositions() []position {
	var positions []position
	for y := range g.size {
		for x := range g.size {
			if g.cells[y][x] == 0 {
				positions = append(positions, position{x, y})
			}
		}
	}
	return positions
}

// CanMove reports whether moving in dir would change at least one cell.
func (g *Grid) CanMove(dir core.Direction) bool {
	return canShift(g.cells, dir)
}

// Move shifts and merges the tiles in dir, adds the merge rewards to the
// score and spawns one new tile. If the move would change nothing it returns
// false and leaves the grid untouched.
func (g *Grid) Move(dir core.Direction) bool {
	if !g.CanMove(dir) {
		return false
	}

	cells, gained := shift(g.cells, dir)
	g.cells = cells
	g.score += gained
	g.SpawnRandomTile()
	return true
}

// HasMove reports whether any direction is still playable.
func (g *Grid) HasMove() bool {
	for _, dir := range core.Directions {
		if g.CanMove(dir) {
			return true
		}
	}
	return false
}

// MaxTile returns the largest value on the board.
func (g *Grid) MaxTile() int {
	maxVal := 0
	for _, row := range g.cells {
		for _, v := range row {
			maxVal = max(maxVal, v)
		}
	}
	return maxVal
}

// EmptyCount returns the number of empty cells.
func (g *Grid) EmptyCount() int {
	return len(g.emptyPositions())
}

// Cells returns a copy of the board, row by row.
func (g *Grid) Cells() [][]int {
	cells := emptyCells(g.size)
	for y, row := range g.cells {
		copy(cells[y], row)
	}
	return cells
}

// Size returns the board dimension.
func (g *Grid) Size() int { return g.size }

// Score returns the score of the current game.
func (g *Grid) Score() int { return g.score }

// Highscore returns the best score of any finished game on this engine.
func (g *Grid) Highscore() int { return g.highscore }
