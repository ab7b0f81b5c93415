package game

// Snapshot is a read-only view of one turn, handed to renderers.
type Snapshot struct {
	Cells     [][]int // deep copy; row-major
	Size      int
	Score     int
	Highscore int
	MaxTile   int
	Target    int
	Win       bool
	Over      bool
	State     State
}

// Snapshot captures the current grid and status.
func (m *Machine) Snapshot() Snapshot {
	return Snapshot{
		Cells:     m.grid.Cells(),
		Size:      m.grid.Size(),
		Score:     m.grid.Score(),
		Highscore: m.grid.Highscore(),
		MaxTile:   m.grid.MaxTile(),
		Target:    m.target,
		Win:       m.state == StateWon,
		Over:      m.state == StateOver,
		State:     m.state,
	}
}
