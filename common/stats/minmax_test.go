package stats

import (
	"math/rand"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

func bruteMinMax(history []int, capacity int) (int, int) {
	from := len(history) - capacity
	if from < 0 {
		from = 0
	}
	min, max := history[from], history[from]
	for _, val := range history[from:] {
		if val < min {
			min = val
		}
		if val > max {
			max = val
		}
	}
	return min, max
}

var _ = Describe("SlidingMinMax", func() {
	It("should fail on non-positive capacity", func() {
		mm, err := NewSlidingMinMax[int](0)
		Expect(mm).To(BeNil())
		Expect(err).To(MatchError(ErrInvalidConfiguration))
	})

	It("should fail before any push", func() {
		mm, _ := NewSlidingMinMax[float64](3)
		_, err := mm.Min()
		Expect(err).To(Equal(ErrEmptyWindow))
		_, err = mm.Max()
		Expect(err).To(Equal(ErrEmptyWindow))
		Expect(mm.State()).To(Equal(StateEmpty))
	})

	It("should track the trailing window of [5, 1, 4, 2, 8]", func() {
		mm, _ := NewSlidingMinMax[int](3)
		mins := []int{5, 1, 1, 1, 2}
		maxs := []int{5, 5, 5, 4, 8}
		for i, val := range []int{5, 1, 4, 2, 8} {
			mm.Push(val)
			Expect(mm.Min()).To(Equal(mins[i]))
			Expect(mm.Max()).To(Equal(maxs[i]))
		}
		Expect(mm.Len()).To(Equal(3))
		Expect(mm.State()).To(Equal(StateFull))
	})

	It("should behave as last value seen with capacity 1", func() {
		mm, _ := NewSlidingMinMax[float64](1)
		for _, val := range []float64{3, -1, 7.5, 7.5, 2} {
			mm.Push(val)
			Expect(mm.Min()).To(Equal(val))
			Expect(mm.Max()).To(Equal(val))
		}
	})

	It("should keep deques bounded under repeated equal inputs", func() {
		mm, _ := NewSlidingMinMax[int](8)
		for i := 0; i < 100; i++ {
			mm.Push(42)
		}
		Expect(mm.mins.Len()).To(Equal(1))
		Expect(mm.maxs.Len()).To(Equal(1))
		Expect(mm.mins.Front().seq).To(Equal(uint64(99)))
		Expect(mm.Min()).To(Equal(42))
		Expect(mm.Max()).To(Equal(42))
	})

	It("should match brute force on random streams", func() {
		rnd := rand.New(rand.NewSource(1))
		for _, capacity := range []int{1, 2, 5, 32} {
			mm, _ := NewSlidingMinMax[int](capacity)
			history := make([]int, 0, 1000)
			for i := 0; i < 1000; i++ {
				val := rnd.Intn(50) - 25
				mm.Push(val)
				history = append(history, val)

				min, max := bruteMinMax(history, capacity)
				gotMin, err := mm.Min()
				Expect(err).To(BeNil())
				gotMax, err := mm.Max()
				Expect(err).To(BeNil())
				Expect(gotMin).To(Equal(min))
				Expect(gotMax).To(Equal(max))
				Expect(gotMin).To(BeNumerically("<=", gotMax))
				Expect(mm.mins.Len()).To(BeNumerically("<=", capacity))
				Expect(mm.maxs.Len()).To(BeNumerically("<=", capacity))
			}
		}
	})

	It("should return identical results on repeated queries", func() {
		mm, _ := NewSlidingMinMax[int](4)
		for _, val := range []int{3, 9, 1, 7, 2} {
			mm.Push(val)
		}
		min1, _ := mm.Min()
		min2, _ := mm.Min()
		max1, _ := mm.Max()
		max2, _ := mm.Max()
		Expect(min1).To(Equal(min2))
		Expect(max1).To(Equal(max2))
	})

	It("should match a fresh instance after reset", func() {
		mm, _ := NewSlidingMinMax[int](3)
		for _, val := range []int{-10, 100, 50, 60} {
			mm.Push(val)
		}
		mm.Reset()
		_, err := mm.Min()
		Expect(err).To(Equal(ErrEmptyWindow))
		Expect(mm.Len()).To(Equal(0))

		fresh, _ := NewSlidingMinMax[int](3)
		for _, val := range []int{4, 6} {
			mm.Push(val)
			fresh.Push(val)
		}
		Expect(mm.Min()).To(Equal(4))
		Expect(mm.Max()).To(Equal(6))
		Expect(mm.Len()).To(Equal(fresh.Len()))
		freshMin, _ := fresh.Min()
		freshMax, _ := fresh.Max()
		Expect(mm.Min()).To(Equal(freshMin))
		Expect(mm.Max()).To(Equal(freshMax))
	})
})
