package stats

import (
	"golang.org/x/exp/constraints"
)

// Number is the set of sample types the primitives accept.
type Number interface {
	constraints.Integer | constraints.Float
}

// State is the lifecycle state shared by all primitives.
type State int

const (
	StateEmpty State = iota
	StatePartial
	StateFull
	StateAccumulating
)

func (s State) String() string {
	switch s {
	case StateEmpty:
		return "empty"
	case StatePartial:
		return "partial"
	case StateFull:
		return "full"
	case StateAccumulating:
		return "accumulating"
	default:
		return "unknown"
	}
}

// StatsProvider is implemented by every windowed primitive.
type StatsProvider interface {
	Len() int
	Capacity() int
	State() State
	Reset()
}

var (
	_ StatsProvider = (*Window[float64])(nil)
	_ StatsProvider = (*SlidingMinMax[float64])(nil)
	_ StatsProvider = (*SlidingMean[float64])(nil)
)

func windowState(n int, capacity int) State {
	if n == 0 {
		return StateEmpty
	} else if n < capacity {
		return StatePartial
	}
	return StateFull
}
