package stats

// Window is a fixed-capacity ring buffer holding the most recent samples.
// Pushing into a full window evicts the oldest sample first.
type Window[T Number] struct {
	capacity int
	n        int
	values   []T
	last     int
}

// NewWindow creates an empty window holding at most capacity samples.
func NewWindow[T Number](capacity int) (*Window[T], error) {
	if err := validateCapacity(capacity); err != nil {
		return nil, err
	}
	return &Window[T]{
		capacity: capacity,
		values:   make([]T, capacity),
		last:     capacity - 1,
	}, nil
}

// Push appends val and returns the sample it evicted, if any.
func (w *Window[T]) Push(val T) (evicted T, ok bool) {
	// Move forward.
	w.last = (w.last + 1) % w.capacity

	if w.n == w.capacity {
		evicted, ok = w.values[w.last], true
	} else {
		w.n++
	}

	// Record history value
	w.values[w.last] = val
	return
}

func (w *Window[T]) Capacity() int {
	return w.capacity
}

// Len returns the number of samples held, min(pushes, capacity).
func (w *Window[T]) Len() int {
	return w.n
}

func (w *Window[T]) Full() bool {
	return w.n == w.capacity
}

func (w *Window[T]) State() State {
	return windowState(w.n, w.capacity)
}

// Last returns the most recent sample.
func (w *Window[T]) Last() (T, error) {
	return w.LastN(0)
}

// LastN returns the sample pushed n pushes before the most recent one.
// n is clamped to the oldest sample held.
func (w *Window[T]) LastN(n int) (T, error) {
	if w.n == 0 {
		var zero T
		return zero, ErrEmptyWindow
	}
	if n >= w.n {
		n = w.n - 1
	} else if n < 0 {
		n = 0
	}
	return w.values[(w.last+w.capacity-n)%w.capacity], nil
}

// At returns the i-th sample counting from the oldest. It panics if i is out of range.
func (w *Window[T]) At(i int) T {
	if i < 0 || i >= w.n {
		panic("stats: window index out of range")
	}
	return w.values[(w.oldest()+i)%w.capacity]
}

// Values returns a copy of the window contents, oldest first.
func (w *Window[T]) Values() []T {
	return w.appendTo(make([]T, 0, w.n))
}

// Sum adds up the current contents from scratch.
func (w *Window[T]) Sum() T {
	var sum T
	for i, start := 0, w.oldest(); i < w.n; i++ {
		sum += w.values[(start+i)%w.capacity]
	}
	return sum
}

// Iterator returns a traversal over the current contents. Pushes made after
// the call are not observed by the iterator.
func (w *Window[T]) Iterator() *WindowIterator[T] {
	return &WindowIterator[T]{values: w.Values(), i: -1}
}

// Reset empties the window. The capacity is kept.
func (w *Window[T]) Reset() {
	var zero T
	for i := range w.values {
		w.values[i] = zero
	}
	w.n = 0
	w.last = w.capacity - 1
}

func (w *Window[T]) oldest() int {
	return (w.last - w.n + 1 + w.capacity) % w.capacity
}

func (w *Window[T]) appendTo(dst []T) []T {
	for i, start := 0, w.oldest(); i < w.n; i++ {
		dst = append(dst, w.values[(start+i)%w.capacity])
	}
	return dst
}

// WindowIterator walks a snapshot of a window, oldest to newest.
type WindowIterator[T Number] struct {
	values []T
	i      int
}

func (iter *WindowIterator[T]) Len() int {
	return len(iter.values)
}

func (iter *WindowIterator[T]) Next() bool {
	if iter.i < len(iter.values) {
		iter.i++
	}
	return iter.i < len(iter.values)
}

func (iter *WindowIterator[T]) Value() (int, T) {
	return iter.i, iter.values[iter.i]
}

// Reset rewinds the iterator to before the oldest sample.
func (iter *WindowIterator[T]) Reset() {
	iter.i = -1
}
