package strdict

import (
	"math"
	"math/rand"
	"sort"

	set3 "github.com/TomTonic/Set3"
)

// BinomialWordLengths returns a histogram indexed by word length of how
// many of the requested words should have each length, drawn from a
// Binomial(n = ceil(avgLen/0.5), p = 0.5) distribution. A length of zero
// is rejected and redrawn, so histogram[0] is always zero.
func BinomialWordLengths(r *rand.Rand, avgLen float64, words int) []int {
	n := int(math.Ceil(avgLen / 0.5))
	histogram := make([]int, n+1)
	for i := 0; i < words; i++ {
		length := binomial(r, n, 0.5)
		for length == 0 {
			length = binomial(r, n, 0.5)
		}
		histogram[length]++
	}
	return histogram
}

func binomial(r *rand.Rand, n int, p float64) int {
	successes := 0
	for i := 0; i < n; i++ {
		if r.Float64() < p {
			successes++
		}
	}
	return successes
}

// RandomWord returns a word of the given size whose bytes are drawn
// uniformly from the half-open alphabet [start, start+alphabetSize).
func RandomWord(r *rand.Rand, size, alphabetSize int, start byte) []byte {
	word := make([]byte, size)
	for i := range word {
		word[i] = start + byte(r.Intn(alphabetSize))
	}
	return word
}

// RandomWords builds lengthHistogram[l] words of length l for every l >= 1,
// using RandomWord for every individual word.
func RandomWords(r *rand.Rand, lengthHistogram []int, alphabetSize int, start byte) [][]byte {
	words := make([][]byte, 0)
	for length := 1; length < len(lengthHistogram); length++ {
		for i := 0; i < lengthHistogram[length]; i++ {
			words = append(words, RandomWord(r, length, alphabetSize, start))
		}
	}
	return words
}

// OutOfCorpusSample draws n words, uniformly sized between 1 and maxLen,
// from the given alphabet, rejecting any draw that already appears in
// corpus. The result is sorted by length, then lexicographically, matching
// the ordering the harness' by-length CSV output expects.
func OutOfCorpusSample(r *rand.Rand, n, alphabetSize int, start byte, corpus []string, maxLen int) []string {
	present := set3.EmptyWithCapacity[string](uint32(len(corpus)))
	for _, w := range corpus {
		present.Add(w)
	}

	out := make([]string, 0, n)
	for len(out) < n {
		size := 1 + r.Intn(maxLen)
		word := string(RandomWord(r, size, alphabetSize, start))
		if !present.Contains(word) {
			out = append(out, word)
		}
	}
	sortByLengthThenLex(out)
	return out
}

// InCorpusSample draws n words uniformly by index from corpus (with
// replacement), sorted by length then lexicographically.
func InCorpusSample(r *rand.Rand, n int, corpus []string) []string {
	out := make([]string, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, corpus[r.Intn(len(corpus))])
	}
	sortByLengthThenLex(out)
	return out
}

func sortByLengthThenLex(words []string) {
	sort.Slice(words, func(i, j int) bool {
		if len(words[i]) != len(words[j]) {
			return len(words[i]) < len(words[j])
		}
		return words[i] < words[j]
	})
}
