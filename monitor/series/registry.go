package series

import (
	"sort"

	cmap "github.com/orcaman/concurrent-map"
)

// Factory creates the series of a name seen for the first time.
type Factory func(name string) (*Series, error)

// Registry holds one series per name.
type Registry struct {
	series  cmap.ConcurrentMap
	factory Factory
}

func NewRegistry(factory Factory) *Registry {
	return &Registry{
		series:  cmap.New(),
		factory: factory,
	}
}

// Get returns the series of the name, creating it if necessary.
func (r *Registry) Get(name string) (*Series, error) {
	if got, ok := r.series.Get(name); ok {
		return got.(*Series), nil
	}

	created, err := r.factory(name)
	if err != nil {
		return nil, err
	}
	// Someone may have created the series concurrently, keep the first one.
	r.series.SetIfAbsent(name, created)
	got, _ := r.series.Get(name)
	return got.(*Series), nil
}

func (r *Registry) Lookup(name string) (*Series, bool) {
	got, ok := r.series.Get(name)
	if !ok {
		return nil, false
	}
	return got.(*Series), true
}

// Names returns the names of all series, sorted.
func (r *Registry) Names() []string {
	names := r.series.Keys()
	sort.Strings(names)
	return names
}

func (r *Registry) Len() int {
	return r.series.Count()
}

// Samples returns the number of samples pushed over all series.
func (r *Registry) Samples() uint64 {
	var total uint64
	r.series.IterCb(func(_ string, v interface{}) {
		total += v.(*Series).Count()
	})
	return total
}

// Reset resets every series.
func (r *Registry) Reset() {
	r.series.IterCb(func(_ string, v interface{}) {
		v.(*Series).Reset()
	})
}
