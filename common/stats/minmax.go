package stats

import (
	"github.com/gammazero/deque"
)

type extremum[T Number] struct {
	value T
	seq   uint64
}

// SlidingMinMax reports the minimum and maximum of the last N samples.
//
// Two monotonic deques hold only the records that can still become the
// extremum of a future window: the min deque is non-decreasing in value, the
// max deque non-increasing, and both strictly increasing in sequence. A newer
// sample displaces older samples of equal value, which keeps the deques
// bounded under repeated inputs. Each record is pushed and popped at most
// once, so Push is amortized O(1) and queries are O(1).
type SlidingMinMax[T Number] struct {
	capacity int
	seq      uint64
	mins     *deque.Deque[extremum[T]]
	maxs     *deque.Deque[extremum[T]]
}

func NewSlidingMinMax[T Number](capacity int) (*SlidingMinMax[T], error) {
	if err := validateCapacity(capacity); err != nil {
		return nil, err
	}
	return &SlidingMinMax[T]{
		capacity: capacity,
		mins:     deque.New[extremum[T]](),
		maxs:     deque.New[extremum[T]](),
	}, nil
}

func (mm *SlidingMinMax[T]) Push(val T) {
	rec := extremum[T]{value: val, seq: mm.seq}
	mm.seq++

	for mm.mins.Len() > 0 && mm.mins.Back().value >= val {
		mm.mins.PopBack()
	}
	mm.mins.PushBack(rec)

	for mm.maxs.Len() > 0 && mm.maxs.Back().value <= val {
		mm.maxs.PopBack()
	}
	mm.maxs.PushBack(rec)

	// Expire records that slid out of the window.
	mm.expire(mm.mins, rec.seq)
	mm.expire(mm.maxs, rec.seq)
}

func (mm *SlidingMinMax[T]) expire(records *deque.Deque[extremum[T]], seq uint64) {
	for records.Len() > 0 && records.Front().seq+uint64(mm.capacity) <= seq {
		records.PopFront()
	}
}

// Min returns the smallest sample in the window.
func (mm *SlidingMinMax[T]) Min() (T, error) {
	if mm.mins.Len() == 0 {
		var zero T
		return zero, ErrEmptyWindow
	}
	return mm.mins.Front().value, nil
}

// Max returns the largest sample in the window.
func (mm *SlidingMinMax[T]) Max() (T, error) {
	if mm.maxs.Len() == 0 {
		var zero T
		return zero, ErrEmptyWindow
	}
	return mm.maxs.Front().value, nil
}

func (mm *SlidingMinMax[T]) Capacity() int {
	return mm.capacity
}

func (mm *SlidingMinMax[T]) Len() int {
	if mm.seq >= uint64(mm.capacity) {
		return mm.capacity
	}
	return int(mm.seq)
}

func (mm *SlidingMinMax[T]) State() State {
	return windowState(mm.Len(), mm.capacity)
}

// Reset forgets all samples.
func (mm *SlidingMinMax[T]) Reset() {
	mm.seq = 0
	mm.mins.Clear()
	mm.maxs.Clear()
}
