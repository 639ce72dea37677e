package stats

// DefaultResumFactor sets the default resummation interval to this many
// window capacities worth of pushes.
const DefaultResumFactor = 64

// SlidingMean reports the arithmetic mean of the last N samples, keeping a
// running sum that is adjusted by the entering and the evicted sample.
//
// Floating point sums drift under repeated add and subtract, so the sum is
// recomputed from the window contents every ResumInterval pushes.
type SlidingMean[T Number] struct {
	window     *Window[T]
	sum        T
	resumEvery int
	sinceResum int
}

func NewSlidingMean[T Number](capacity int) (*SlidingMean[T], error) {
	window, err := NewWindow[T](capacity)
	if err != nil {
		return nil, err
	}
	return NewSlidingMeanOn(window), nil
}

// NewSlidingMeanOn builds a mean on top of w. The mean owns pushes from now
// on: samples must be pushed through the mean, not the window. Samples
// already in w are summed.
func NewSlidingMeanOn[T Number](w *Window[T]) *SlidingMean[T] {
	return &SlidingMean[T]{
		window:     w,
		sum:        w.Sum(),
		resumEvery: DefaultResumFactor * w.Capacity(),
	}
}

// SetResumInterval sets how many pushes pass between full resummations.
// 0 disables resummation.
func (m *SlidingMean[T]) SetResumInterval(interval int) {
	if interval < 0 {
		interval = 0
	}
	m.resumEvery = interval
	m.sinceResum = 0
}

func (m *SlidingMean[T]) ResumInterval() int {
	return m.resumEvery
}

// Push adds val and returns the sample it evicted, if any.
func (m *SlidingMean[T]) Push(val T) (evicted T, ok bool) {
	evicted, ok = m.window.Push(val)
	if ok {
		m.sum -= evicted
	}
	m.sum += val

	if m.resumEvery > 0 {
		m.sinceResum++
		if m.sinceResum >= m.resumEvery {
			m.Resum()
		}
	}
	return
}

// Resum recomputes the running sum from the window contents.
func (m *SlidingMean[T]) Resum() {
	m.sum = m.window.Sum()
	m.sinceResum = 0
}

func (m *SlidingMean[T]) Mean() (float64, error) {
	n := m.window.Len()
	if n == 0 {
		return 0, ErrEmptyWindow
	}
	return float64(m.sum) / float64(n), nil
}

// Sum returns the running sum of the samples in the window.
func (m *SlidingMean[T]) Sum() T {
	return m.sum
}

// Window exposes the underlying window for reading.
func (m *SlidingMean[T]) Window() *Window[T] {
	return m.window
}

func (m *SlidingMean[T]) Capacity() int {
	return m.window.Capacity()
}

func (m *SlidingMean[T]) Len() int {
	return m.window.Len()
}

func (m *SlidingMean[T]) State() State {
	return m.window.State()
}

func (m *SlidingMean[T]) Reset() {
	m.window.Reset()
	var zero T
	m.sum = zero
	m.sinceResum = 0
}
