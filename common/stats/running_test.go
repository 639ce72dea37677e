package stats

import (
	"math"
	"math/rand"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

func directMeanVariance(values []float64) (float64, float64) {
	sum := 0.0
	for _, v := range values {
		sum += v
	}
	mean := sum / float64(len(values))
	m2 := 0.0
	for _, v := range values {
		m2 += (v - mean) * (v - mean)
	}
	return mean, m2 / float64(len(values))
}

var _ = Describe("RunningStatistician", func() {
	It("should fail while empty", func() {
		var r RunningStatistician[float64]
		Expect(r.State()).To(Equal(StateEmpty))
		_, err := r.Mean()
		Expect(err).To(Equal(ErrInsufficientSamples))
		_, err = r.PopulationVariance()
		Expect(err).To(Equal(ErrInsufficientSamples))
		_, err = r.SampleStdDev()
		Expect(err).To(Equal(ErrInsufficientSamples))
	})

	It("should compute the classic example", func() {
		r := NewRunningStatistician[int]()
		for _, val := range []int{2, 4, 4, 4, 5, 5, 7, 9} {
			r.Push(val)
		}
		Expect(r.Count()).To(Equal(uint64(8)))
		Expect(r.Mean()).To(BeNumerically("~", 5.0, 1e-12))
		Expect(r.PopulationVariance()).To(BeNumerically("~", 4.0, 1e-12))
		Expect(r.PopulationStdDev()).To(BeNumerically("~", 2.0, 1e-12))
		Expect(r.SampleVariance()).To(BeNumerically("~", 32.0/7, 1e-12))
		Expect(r.State()).To(Equal(StateAccumulating))
	})

	It("should match the 0..99 reference values", func() {
		r := NewRunningStatistician[float64]()
		for i := 0; i < 100; i++ {
			r.Push(float64(i))
		}
		Expect(r.Mean()).To(BeNumerically("~", 49.5, 1e-9))
		Expect(r.SampleVariance()).To(BeNumerically("~", 841.0+2.0/3.0, 1e-9))
		Expect(r.SampleStdDev()).To(BeNumerically("~", 29.011491975882016, 1e-9))
	})

	It("should reject sample variance after one push", func() {
		r := NewRunningStatistician[float64]()
		r.Push(3)
		_, err := r.SampleVariance()
		Expect(err).To(Equal(ErrInsufficientSamples))
		_, err = r.StdDev(Sample)
		Expect(err).To(Equal(ErrInsufficientSamples))
		Expect(r.PopulationVariance()).To(Equal(0.0))
		Expect(r.Mean()).To(Equal(3.0))
	})

	It("should stay stable on large offsets", func() {
		rnd := rand.New(rand.NewSource(3))
		r := NewRunningStatistician[float64]()
		values := make([]float64, 100000)
		for i := range values {
			values[i] = 1e9 + rnd.Float64()*10
			r.Push(values[i])
		}
		mean, variance := directMeanVariance(values)
		Expect(r.Count()).To(Equal(uint64(len(values))))
		Expect(r.Mean()).To(BeNumerically("~", mean, 1e-6))
		got, err := r.PopulationVariance()
		Expect(err).To(BeNil())
		Expect(math.Abs(got-variance) / variance).To(BeNumerically("<", 1e-6))
	})

	It("should answer repeated queries identically", func() {
		r := NewRunningStatistician[float64]()
		for _, val := range []float64{0.1, 0.7, 1.3, 2.9} {
			r.Push(val)
		}
		before := *r
		for _, form := range []VarianceForm{Population, Sample} {
			v1, err1 := r.Variance(form)
			v2, err2 := r.Variance(form)
			Expect(err1).To(BeNil())
			Expect(err2).To(BeNil())
			Expect(v2).To(Equal(v1))

			s1, _ := r.StdDev(form)
			s2, _ := r.StdDev(form)
			Expect(s2).To(Equal(s1))
		}
		m1, _ := r.Mean()
		m2, _ := r.Mean()
		Expect(m2).To(Equal(m1))
		Expect(r.Count()).To(Equal(uint64(4)))
		Expect(*r).To(Equal(before))
	})

	It("should name variance forms", func() {
		Expect(Population.String()).To(Equal("population"))
		Expect(Sample.String()).To(Equal("sample"))
		Expect(Sample.MinSamples()).To(Equal(uint64(2)))
	})

	It("should match a fresh instance after reset", func() {
		r := NewRunningStatistician[float64]()
		for _, val := range []float64{100, 200, 300} {
			r.Push(val)
		}
		r.Reset()
		Expect(r.Count()).To(Equal(uint64(0)))
		_, err := r.Mean()
		Expect(err).To(Equal(ErrInsufficientSamples))

		fresh := NewRunningStatistician[float64]()
		for _, val := range []float64{1, 2, 6} {
			r.Push(val)
			fresh.Push(val)
		}
		Expect(*r).To(Equal(*fresh))
	})
})
