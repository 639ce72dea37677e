package views

import (
	"github.com/ds2-lab/streamstat/monitor/series"
)

type DashControl interface {
	Quit(string)
}

// SeriesSource is the series a view displays.
type SeriesSource interface {
	Name() string
	Values() []float64
	Snapshot() (series.Snapshot, error)
}

// StatusSource reports totals over all series.
type StatusSource interface {
	Len() int
	Samples() uint64
}
