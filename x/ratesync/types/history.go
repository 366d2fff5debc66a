package types

import (
	"cmp"
	"slices"
)

// DefaultHistoryCapacity is the number of observations kept per denom.
const DefaultHistoryCapacity uint64 = 100

// Timestamped is implemented by observations that can be kept in a History.
// Time is the caller-supplied logical time, not the block time.
type Timestamped interface {
	Time() uint64
}

// History is a bounded sequence of observations kept in ascending time order
// with at most one entry per timestamp. When full, the entry with the
// earliest timestamp is evicted.
type History[T Timestamped] struct {
	Entries  []T    `json:"entries"`
	Capacity uint64 `json:"capacity"`
}

// NewHistory returns an empty history holding at most capacity entries.
func NewHistory[T Timestamped](capacity uint64) History[T] {
	return History[T]{
		Entries:  make([]T, 0),
		Capacity: capacity,
	}
}

// DefaultHistory returns an empty history with DefaultHistoryCapacity.
func DefaultHistory[T Timestamped]() History[T] {
	return NewHistory[T](DefaultHistoryCapacity)
}

// Add inserts item at its sorted position. An entry with the same timestamp
// is replaced in place and never triggers eviction.
func (h *History[T]) Add(item T) {
	idx, found := slices.BinarySearchFunc(h.Entries, item.Time(), func(e T, t uint64) int {
		return cmp.Compare(e.Time(), t)
	})
	if found {
		h.Entries[idx] = item
		return
	}

	h.Entries = slices.Insert(h.Entries, idx, item)
	if uint64(len(h.Entries)) > h.Capacity {
		h.Entries = slices.Delete(h.Entries, 0, 1)
	}
}

// Latest returns the entry with the greatest timestamp.
func (h History[T]) Latest() (T, bool) {
	if len(h.Entries) == 0 {
		var zero T
		return zero, false
	}
	return h.Entries[len(h.Entries)-1], true
}

// LatestRange returns up to n entries, most recent first.
func (h History[T]) LatestRange(n uint64) []T {
	count := min(n, uint64(len(h.Entries)))
	out := make([]T, 0, count)
	for i := len(h.Entries) - 1; uint64(len(out)) < count; i-- {
		out = append(out, h.Entries[i])
	}
	return out
}

// All returns every entry, most recent first.
func (h History[T]) All() []T {
	return h.LatestRange(uint64(len(h.Entries)))
}

// Len returns the number of stored entries.
func (h History[T]) Len() int {
	return len(h.Entries)
}

// Validate checks the ordering and capacity invariants, used on genesis import.
func (h History[T]) Validate() error {
	if h.Capacity == 0 {
		return ErrInvalidGenesis.Wrap("history capacity must be positive")
	}
	if uint64(len(h.Entries)) > h.Capacity {
		return ErrInvalidGenesis.Wrapf("history holds %d entries, capacity is %d", len(h.Entries), h.Capacity)
	}
	for i := 1; i < len(h.Entries); i++ {
		if h.Entries[i-1].Time() >= h.Entries[i].Time() {
			return ErrInvalidGenesis.Wrapf("history entries not strictly ascending at index %d", i)
		}
	}
	return nil
}
