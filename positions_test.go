package strdict

import (
	"reflect"
	"testing"
)

func TestPositionMultisetAddAndCount(t *testing.T) {
	var p PositionMultiset
	p.Add(0, 3)
	p.Add(0, 7)
	p.Add(1, 9)

	if got := p.Count(0); got != 2 {
		t.Errorf("Count(0) = %d, want 2", got)
	}
	if got := p.Count(1); got != 1 {
		t.Errorf("Count(1) = %d, want 1", got)
	}
}

func TestPositionMultisetAllowsDuplicates(t *testing.T) {
	var p PositionMultiset
	p.Add(0, 5)
	p.Add(0, 5)
	if got := p.Count(0); got != 2 {
		t.Errorf("Count(0) = %d, want 2 (duplicates must not be deduplicated)", got)
	}
}

func TestPositionMultisetOccurrences(t *testing.T) {
	var p PositionMultiset
	p.Add(0, 1)
	p.Add(0, 2)
	p.Add(1, 3)
	c0, c1 := p.Occurrences()
	if c0 != 2 || c1 != 1 {
		t.Errorf("Occurrences() = (%d, %d), want (2, 1)", c0, c1)
	}
}

func TestPositionMultisetPositionsOrder(t *testing.T) {
	var p PositionMultiset
	p.Add(0, 10)
	p.Add(0, 3)
	p.Add(0, 10)
	if got := p.Positions(0); !reflect.DeepEqual(got, []uint64{10, 3, 10}) {
		t.Errorf("Positions(0) = %v, want insertion order [10 3 10]", got)
	}
}

func TestPositionMultisetNilReceiver(t *testing.T) {
	var p *PositionMultiset
	if c := p.Count(0); c != 0 {
		t.Errorf("Count on nil receiver = %d, want 0", c)
	}
	c0, c1 := p.Occurrences()
	if c0 != 0 || c1 != 0 {
		t.Errorf("Occurrences on nil receiver = (%d, %d), want (0, 0)", c0, c1)
	}
	if got := p.Positions(0); got != nil {
		t.Errorf("Positions on nil receiver = %v, want nil", got)
	}
}
