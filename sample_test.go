package strdict

import (
	"math/rand"
	"testing"
)

func TestBinomialWordLengthsNeverZero(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	hist := BinomialWordLengths(r, 5.2, 500)
	if hist[0] != 0 {
		t.Fatalf("histogram[0] = %d, want 0 (zero-length draws must be rejected)", hist[0])
	}
	total := 0
	for _, c := range hist {
		total += c
	}
	if total != 500 {
		t.Fatalf("histogram sums to %d, want 500", total)
	}
}

func TestRandomWordUsesOnlyRequestedAlphabet(t *testing.T) {
	r := rand.New(rand.NewSource(2))
	w := RandomWord(r, 50, 3, 'a')
	if len(w) != 50 {
		t.Fatalf("len(word) = %d, want 50", len(w))
	}
	for _, b := range w {
		if b < 'a' || b > 'c' {
			t.Fatalf("word contains byte %q outside alphabet [a,c]", b)
		}
	}
}

func TestRandomWordsMatchesHistogram(t *testing.T) {
	r := rand.New(rand.NewSource(3))
	hist := []int{0, 2, 0, 3}
	words := RandomWords(r, hist, 5, 'a')
	if len(words) != 5 {
		t.Fatalf("len(words) = %d, want 5", len(words))
	}
	counts := map[int]int{}
	for _, w := range words {
		counts[len(w)]++
	}
	if counts[1] != 2 || counts[3] != 3 {
		t.Fatalf("length distribution = %v, want {1:2, 3:3}", counts)
	}
}

func TestOutOfCorpusSampleAvoidsCorpus(t *testing.T) {
	r := rand.New(rand.NewSource(4))
	corpus := []string{"ab", "ac", "ad"}
	out := OutOfCorpusSample(r, 20, 2, 'a', corpus, 2)
	inCorpus := map[string]bool{}
	for _, w := range corpus {
		inCorpus[w] = true
	}
	for _, w := range out {
		if inCorpus[w] {
			t.Fatalf("out-of-corpus sample contains corpus word %q", w)
		}
	}
	if len(out) != 20 {
		t.Fatalf("len(out) = %d, want 20", len(out))
	}
}

func TestOutOfCorpusSampleSortedByLengthThenLex(t *testing.T) {
	r := rand.New(rand.NewSource(5))
	out := OutOfCorpusSample(r, 30, 4, 'a', nil, 4)
	for i := 1; i < len(out); i++ {
		if len(out[i-1]) > len(out[i]) {
			t.Fatalf("not sorted by length at index %d: %q before %q", i, out[i-1], out[i])
		}
		if len(out[i-1]) == len(out[i]) && out[i-1] > out[i] {
			t.Fatalf("not lexicographically sorted within length at index %d: %q before %q", i, out[i-1], out[i])
		}
	}
}

func TestInCorpusSampleOnlyDrawsFromCorpus(t *testing.T) {
	r := rand.New(rand.NewSource(6))
	corpus := []string{"x", "yy", "zzz"}
	out := InCorpusSample(r, 15, corpus)
	valid := map[string]bool{"x": true, "yy": true, "zzz": true}
	for _, w := range out {
		if !valid[w] {
			t.Fatalf("in-corpus sample produced %q, not in corpus", w)
		}
	}
}
