// Package gridtest provides test doubles for the grid engine.
// ScriptedRandom satisfies grid.Random.
package gridtest

// ScriptedRandom replays queued values. When a queue runs dry Intn returns 0
// and Float64 returns 0.99, which places a 2 on the first empty cell.
type ScriptedRandom struct {
	IntnResults    []int
	Float64Results []float64

	intnIndex    int
	float64Index int
}

// NewScriptedRandom creates an empty ScriptedRandom.
func NewScriptedRandom() *ScriptedRandom {
	return &ScriptedRandom{}
}

// Intn returns the next queued result, clamped into [0, n).
func (r *ScriptedRandom) Intn(n int) int {
	if r.intnIndex >= len(r.IntnResults) {
		return 0
	}
	result := r.IntnResults[r.intnIndex]
	r.intnIndex++
	if result >= n {
		result = n - 1
	}
	return result
}

// Float64 returns the next queued result.
func (r *ScriptedRandom) Float64() float64 {
	if r.float64Index >= len(r.Float64Results) {
		return 0.99
	}
	result := r.Float64Results[r.float64Index]
	r.float64Index++
	return result
}

// QueueIntn adds values to the Intn result queue.
func (r *ScriptedRandom) QueueIntn(values ...int) {
	r.IntnResults = append(r.IntnResults, values...)
}

// QueueFloat64 adds values to the Float64 result queue.
func (r *ScriptedRandom) QueueFloat64(values ...float64) {
	r.Float64Results = append(r.Float64Results, values...)
}

// Calls returns how many Intn and Float64 values have been consumed.
func (r *ScriptedRandom) Calls() (intn, float64s int) {
	return r.intnIndex, r.float64Index
}
