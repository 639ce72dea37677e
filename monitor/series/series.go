package series

import (
	"fmt"
	"sync"
	"time"

	"github.com/ds2-lab/streamstat/common/stats"
)

// Snapshot is the set of aggregates republished after every push.
type Snapshot struct {
	Name     string
	Time     time.Time
	Seq      uint64
	Last     float64
	Len      int
	Capacity int

	// Trailing window.
	Min  float64
	Max  float64
	Mean float64

	// Whole stream.
	RunningMean  float64
	Variance     float64
	StdDev       float64
	Form         stats.VarianceForm
	HasDeviation bool
}

func (s Snapshot) String() string {
	deviation := "n/a"
	if s.HasDeviation {
		deviation = fmt.Sprintf("%.4g", s.StdDev)
	}
	return fmt.Sprintf("%s#%d: last %.4g, window(%d/%d) min %.4g, max %.4g, mean %.4g, running mean %.4g, %s stddev %s",
		s.Name, s.Seq, s.Last, s.Len, s.Capacity, s.Min, s.Max, s.Mean, s.RunningMean, s.Form, deviation)
}

// Series composes the primitives over one stream. The trailing window is
// shared by the sliding mean and the series history. Unlike the primitives,
// a Series is safe for concurrent use.
type Series struct {
	name      string
	form      stats.VarianceForm
	mean      *stats.SlidingMean[float64]
	minmax    *stats.SlidingMinMax[float64]
	running   stats.RunningStatistician[float64]
	threshold *Threshold
	mu        sync.RWMutex
}

func New(name string, capacity int, form stats.VarianceForm) (*Series, error) {
	mean, err := stats.NewSlidingMean[float64](capacity)
	if err != nil {
		return nil, err
	}
	minmax, err := stats.NewSlidingMinMax[float64](capacity)
	if err != nil {
		return nil, err
	}
	return &Series{
		name:   name,
		form:   form,
		mean:   mean,
		minmax: minmax,
	}, nil
}

func (s *Series) Name() string {
	return s.name
}

func (s *Series) Capacity() int {
	return s.mean.Capacity()
}

// SetResumInterval see stats.SlidingMean.SetResumInterval
func (s *Series) SetResumInterval(interval int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.mean.SetResumInterval(interval)
}

func (s *Series) SetThreshold(threshold *Threshold) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.threshold = threshold
}

// Push adds a sample and returns the aggregates after it.
func (s *Series) Push(val float64) Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.mean.Push(val)
	s.minmax.Push(val)
	s.running.Push(val)
	return s.snapshotLocked(time.Now())
}

// Snapshot returns the current aggregates, or stats.ErrEmptyWindow if nothing
// has been pushed since creation or the last reset.
func (s *Series) Snapshot() (Snapshot, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.mean.Len() == 0 {
		return Snapshot{Name: s.name, Capacity: s.mean.Capacity(), Form: s.form}, stats.ErrEmptyWindow
	}
	return s.snapshotLocked(time.Now()), nil
}

func (s *Series) snapshotLocked(now time.Time) Snapshot {
	snap := Snapshot{
		Name:     s.name,
		Time:     now,
		Seq:      s.running.Count(),
		Len:      s.mean.Len(),
		Capacity: s.mean.Capacity(),
		Form:     s.form,
	}
	// The window is not empty here, errors are not expected.
	snap.Last, _ = s.mean.Window().Last()
	snap.Min, _ = s.minmax.Min()
	snap.Max, _ = s.minmax.Max()
	snap.Mean, _ = s.mean.Mean()
	snap.RunningMean, _ = s.running.Mean()
	if variance, err := s.running.Variance(s.form); err == nil {
		snap.Variance = variance
		snap.StdDev, _ = s.running.StdDev(s.form)
		snap.HasDeviation = true
	}
	return snap
}

// Check tests the snapshot against the threshold of the series.
func (s *Series) Check(snap Snapshot) (Breach, bool) {
	s.mu.RLock()
	threshold := s.threshold
	s.mu.RUnlock()

	return threshold.Check(snap)
}

// Values returns the trailing window, oldest first.
func (s *Series) Values() []float64 {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.mean.Window().Values()
}

// Count returns the number of samples pushed since the last reset.
func (s *Series) Count() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.running.Count()
}

func (s *Series) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.mean.Reset()
	s.minmax.Reset()
	s.running.Reset()
}
