package stats

import (
	"math"
)

// VarianceForm selects the divisor used for variance.
type VarianceForm int

const (
	// Population divides M2 by n.
	Population VarianceForm = iota
	// Sample divides M2 by n-1.
	Sample
)

func (f VarianceForm) String() string {
	if f == Sample {
		return "sample"
	}
	return "population"
}

// MinSamples returns the count needed before the form is defined.
func (f VarianceForm) MinSamples() uint64 {
	if f == Sample {
		return 2
	}
	return 1
}

// RunningStatistician tracks count, mean and variance of the whole stream in
// O(1) memory, using the update presented in Welford '62. The zero value is
// ready to use.
type RunningStatistician[T Number] struct {
	n    uint64
	mean float64
	m2   float64
}

func NewRunningStatistician[T Number]() *RunningStatistician[T] {
	return &RunningStatistician[T]{}
}

func (r *RunningStatistician[T]) Push(val T) {
	x := float64(val)
	r.n++
	delta := x - r.mean
	r.mean += delta / float64(r.n)
	r.m2 += delta * (x - r.mean)
}

func (r *RunningStatistician[T]) Count() uint64 {
	return r.n
}

func (r *RunningStatistician[T]) Mean() (float64, error) {
	if r.n == 0 {
		return 0, ErrInsufficientSamples
	}
	return r.mean, nil
}

// Variance returns the variance in the requested form.
func (r *RunningStatistician[T]) Variance(form VarianceForm) (float64, error) {
	if r.n < form.MinSamples() {
		return 0, ErrInsufficientSamples
	}
	if form == Sample {
		return r.m2 / float64(r.n-1), nil
	}
	return r.m2 / float64(r.n), nil
}

func (r *RunningStatistician[T]) PopulationVariance() (float64, error) {
	return r.Variance(Population)
}

func (r *RunningStatistician[T]) SampleVariance() (float64, error) {
	return r.Variance(Sample)
}

func (r *RunningStatistician[T]) StdDev(form VarianceForm) (float64, error) {
	variance, err := r.Variance(form)
	if err != nil {
		return 0, err
	}
	return math.Sqrt(variance), nil
}

func (r *RunningStatistician[T]) PopulationStdDev() (float64, error) {
	return r.StdDev(Population)
}

func (r *RunningStatistician[T]) SampleStdDev() (float64, error) {
	return r.StdDev(Sample)
}

func (r *RunningStatistician[T]) State() State {
	if r.n == 0 {
		return StateEmpty
	}
	return StateAccumulating
}

func (r *RunningStatistician[T]) Reset() {
	r.n = 0
	r.mean = 0
	r.m2 = 0
}
