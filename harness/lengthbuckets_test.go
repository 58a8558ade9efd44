package harness

import "testing"

func TestLengthBucketsAddAndValuesFor(t *testing.T) {
	b := NewLengthBuckets[string]()
	b.Add(3, "cat")
	b.Add(3, "dog")
	b.Add(3, "cat") // duplicate, must not inflate DistinctCount
	b.Add(5, "horse")

	if got := b.DistinctCount(3); got != 2 {
		t.Errorf("DistinctCount(3) = %d, want 2", got)
	}
	if got := b.DistinctCount(5); got != 1 {
		t.Errorf("DistinctCount(5) = %d, want 1", got)
	}
	if got := b.DistinctCount(4); got != 0 {
		t.Errorf("DistinctCount(4) = %d, want 0", got)
	}

	values := b.ValuesFor(3)
	if !values.Contains("cat") || !values.Contains("dog") {
		t.Errorf("ValuesFor(3) = %v, want {cat, dog}", values)
	}
}

func TestLengthBucketsValuesBetweenInclusive(t *testing.T) {
	b := NewLengthBuckets[string]()
	b.Add(1, "a")
	b.Add(2, "bb")
	b.Add(3, "ccc")
	b.Add(10, "faraway")

	union := b.ValuesBetweenInclusive(1, 3)
	if union.Size() != 3 {
		t.Errorf("ValuesBetweenInclusive(1,3).Size() = %d, want 3", union.Size())
	}
	if union.Contains("faraway") {
		t.Error("ValuesBetweenInclusive(1,3) should not include a length-10 value")
	}
}

func TestLengthBucketsLengths(t *testing.T) {
	b := NewLengthBuckets[string]()
	b.Add(2, "hi")
	b.Add(7, "example")
	lengths := b.Lengths()
	seen := map[int]bool{}
	for _, l := range lengths {
		seen[l] = true
	}
	if !seen[2] || !seen[7] || len(seen) != 2 {
		t.Errorf("Lengths() = %v, want {2, 7}", lengths)
	}
}

func TestLengthBucketsEmpty(t *testing.T) {
	b := NewLengthBuckets[string]()
	if got := b.DistinctCount(1); got != 0 {
		t.Errorf("DistinctCount on empty buckets = %d, want 0", got)
	}
	if got := b.ValuesFor(1).Size(); got != 0 {
		t.Errorf("ValuesFor on empty buckets has size %d, want 0", got)
	}
	if lengths := b.Lengths(); len(lengths) != 0 {
		t.Errorf("Lengths() on empty buckets = %v, want empty", lengths)
	}
}
