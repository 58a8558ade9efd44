package harness

import (
	"testing"
	"time"
)

func TestMeasurementTotals(t *testing.T) {
	m := Measurement{
		InsertTime:    10 * time.Millisecond,
		SearchTime:    20 * time.Millisecond,
		MissTime:      5 * time.Millisecond,
		AvgInsertTime: time.Millisecond,
		AvgSearchTime: 2 * time.Millisecond,
		AvgMissTime:   time.Millisecond,
	}
	if got, want := m.TotalTime(), 35*time.Millisecond; got != want {
		t.Errorf("TotalTime() = %v, want %v", got, want)
	}
	if got, want := m.AvgTotalTime(), 4*time.Millisecond; got != want {
		t.Errorf("AvgTotalTime() = %v, want %v", got, want)
	}
}

func TestByLengthAccumulatesPerLength(t *testing.T) {
	b := NewByLength()
	b.AddSearch(3, 10*time.Millisecond)
	b.AddSearch(3, 20*time.Millisecond)
	b.AddMiss(3, 5*time.Millisecond)
	b.AddSearch(5, 100*time.Millisecond)

	lengths := b.Lengths()
	if len(lengths) != 2 || lengths[0] != 3 || lengths[1] != 5 {
		t.Fatalf("Lengths() = %v, want [3 5]", lengths)
	}

	row3 := b.RowFor(3)
	if row3.SearchTime != 30*time.Millisecond {
		t.Errorf("row3.SearchTime = %v, want 30ms", row3.SearchTime)
	}
	if row3.AvgSearchTime != 15*time.Millisecond {
		t.Errorf("row3.AvgSearchTime = %v, want 15ms", row3.AvgSearchTime)
	}
	if row3.MissTime != 5*time.Millisecond {
		t.Errorf("row3.MissTime = %v, want 5ms", row3.MissTime)
	}

	row5 := b.RowFor(5)
	if row5.MissTime != 0 {
		t.Errorf("row5.MissTime = %v, want 0 (no miss samples recorded)", row5.MissTime)
	}
}

func TestByLengthEmptyHasNoLengths(t *testing.T) {
	b := NewByLength()
	if lengths := b.Lengths(); len(lengths) != 0 {
		t.Errorf("Lengths() on empty accumulator = %v, want empty", lengths)
	}
}
