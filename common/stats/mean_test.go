package stats

import (
	"math"
	"math/rand"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

var _ = Describe("SlidingMean", func() {
	It("should fail on non-positive capacity", func() {
		_, err := NewSlidingMean[float64](-3)
		Expect(err).To(MatchError(ErrInvalidConfiguration))
	})

	It("should fail while empty", func() {
		mean, _ := NewSlidingMean[int](3)
		_, err := mean.Mean()
		Expect(err).To(Equal(ErrEmptyWindow))
	})

	It("should average the trailing window of [5, 1, 4, 2, 8]", func() {
		mean, _ := NewSlidingMean[int](3)
		expected := []float64{5, 3, 10.0 / 3, 7.0 / 3, 14.0 / 3}
		for i, val := range []int{5, 1, 4, 2, 8} {
			mean.Push(val)
			Expect(mean.Mean()).To(BeNumerically("~", expected[i], 1e-12))
		}
		Expect(mean.Sum()).To(Equal(14))
		Expect(mean.Len()).To(Equal(3))
	})

	It("should report the evicted sample", func() {
		mean, _ := NewSlidingMean[int](2)
		_, ok := mean.Push(1)
		Expect(ok).To(BeFalse())
		mean.Push(2)
		evicted, ok := mean.Push(3)
		Expect(ok).To(BeTrue())
		Expect(evicted).To(Equal(1))
	})

	It("should behave as last value seen with capacity 1", func() {
		mean, _ := NewSlidingMean[float64](1)
		for _, val := range []float64{3.5, -2, 11} {
			mean.Push(val)
			Expect(mean.Mean()).To(Equal(val))
		}
	})

	It("should match brute force on random streams", func() {
		rnd := rand.New(rand.NewSource(2))
		for _, capacity := range []int{1, 3, 10, 64} {
			mean, _ := NewSlidingMean[float64](capacity)
			mean.SetResumInterval(0)
			history := make([]float64, 0, 2000)
			for i := 0; i < 2000; i++ {
				val := rnd.NormFloat64()*100 + 50
				mean.Push(val)
				history = append(history, val)

				from := len(history) - capacity
				if from < 0 {
					from = 0
				}
				sum := 0.0
				for _, v := range history[from:] {
					sum += v
				}
				got, err := mean.Mean()
				Expect(err).To(BeNil())
				Expect(got).To(BeNumerically("~", sum/float64(len(history)-from), 1e-6))
			}
		}
	})

	It("should resum periodically", func() {
		mean, _ := NewSlidingMean[float64](4)
		Expect(mean.ResumInterval()).To(Equal(DefaultResumFactor * 4))

		mean.SetResumInterval(3)
		for _, val := range []float64{1, 2, 3, 4, 5} {
			mean.Push(val)
		}
		// Corrupt the running sum and let the next resummation repair it.
		mean.sum += 1000
		mean.Push(6)
		Expect(mean.Sum()).To(Equal(18.0))
		Expect(mean.Mean()).To(Equal(4.5))
	})

	It("should stay accurate on long float streams", func() {
		mean, _ := NewSlidingMean[float64](10)
		for i := 0; i < 200000; i++ {
			mean.Push(1e8 + float64(i%7)*0.1)
		}
		got, err := mean.Mean()
		Expect(err).To(BeNil())
		Expect(math.Abs(got - mean.Window().Sum()/10)).To(BeNumerically("<", 1e-4))
	})

	It("should share a window created by the caller", func() {
		window, _ := NewWindow[int](3)
		window.Push(10)
		window.Push(20)
		mean := NewSlidingMeanOn(window)
		Expect(mean.Mean()).To(Equal(15.0))
		mean.Push(30)
		mean.Push(40)
		Expect(window.Values()).To(Equal([]int{20, 30, 40}))
		Expect(mean.Mean()).To(Equal(30.0))
	})

	It("should return identical results on repeated queries", func() {
		mean, _ := NewSlidingMean[float64](5)
		for _, val := range []float64{0.1, 0.2, 0.3} {
			mean.Push(val)
		}
		first, _ := mean.Mean()
		second, _ := mean.Mean()
		Expect(first).To(Equal(second))
	})

	It("should match a fresh instance after reset", func() {
		mean, _ := NewSlidingMean[float64](3)
		for _, val := range []float64{9, 9, 9, 9} {
			mean.Push(val)
		}
		mean.Reset()
		_, err := mean.Mean()
		Expect(err).To(Equal(ErrEmptyWindow))
		Expect(mean.State()).To(Equal(StateEmpty))

		fresh, _ := NewSlidingMean[float64](3)
		for _, val := range []float64{1, 2} {
			mean.Push(val)
			fresh.Push(val)
		}
		want, _ := fresh.Mean()
		Expect(mean.Mean()).To(Equal(want))
		Expect(mean.State()).To(Equal(StatePartial))
	})
})
