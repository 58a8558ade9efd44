package harness

import (
	"sync"

	set3 "github.com/TomTonic/Set3"
)

// LengthBuckets is a multimap from word length to a set of distinct
// values, adapted from the comparison module's own generic array-based
// multimap: the same linear-scan-over-a-slice, Set3-backed-value
// discipline applies, keyed by word length instead of an arbitrary Key,
// and the length-range query method (ValuesBetweenInclusive) lets a sweep
// ask for the distinct vocabulary across a contiguous span of bucket
// lengths directly instead of re-deriving it by hand.
type LengthBuckets[T comparable] struct {
	mu   sync.RWMutex
	data []lengthEntry[T]
}

type lengthEntry[T comparable] struct {
	length int
	values *set3.Set3[T]
}

// NewLengthBuckets returns an empty LengthBuckets.
func NewLengthBuckets[T comparable]() *LengthBuckets[T] {
	return &LengthBuckets[T]{data: make([]lengthEntry[T], 0, 20)}
}

// Add records v under the given word length.
func (b *LengthBuckets[T]) Add(length int, v T) {
	b.mu.Lock()
	defer b.mu.Unlock()
	for i := range b.data {
		if b.data[i].length == length {
			b.data[i].values.Add(v)
			return
		}
	}
	entry := lengthEntry[T]{length: length, values: set3.Empty[T]()}
	entry.values.Add(v)
	b.data = append(b.data, entry)
}

// ValuesFor returns the values recorded under length, or an empty set.
func (b *LengthBuckets[T]) ValuesFor(length int) *set3.Set3[T] {
	b.mu.RLock()
	defer b.mu.RUnlock()
	for i := range b.data {
		if b.data[i].length == length {
			return b.data[i].values.Clone()
		}
	}
	return set3.Empty[T]()
}

// ValuesBetweenInclusive returns the union of every bucket whose length
// lies in [from, to].
func (b *LengthBuckets[T]) ValuesBetweenInclusive(from, to int) *set3.Set3[T] {
	b.mu.RLock()
	defer b.mu.RUnlock()
	result := set3.Empty[T]()
	for _, e := range b.data {
		if e.length >= from && e.length <= to {
			result.AddAll(e.values)
		}
	}
	return result
}

// Lengths returns every length that has at least one recorded value, in
// no particular order.
func (b *LengthBuckets[T]) Lengths() []int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	out := make([]int, 0, len(b.data))
	for _, e := range b.data {
		if e.values.Size() > 0 {
			out = append(out, e.length)
		}
	}
	return out
}

// DistinctCount returns the number of distinct values recorded under length.
func (b *LengthBuckets[T]) DistinctCount(length int) int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	for i := range b.data {
		if b.data[i].length == length {
			return int(b.data[i].values.Size())
		}
	}
	return 0
}
