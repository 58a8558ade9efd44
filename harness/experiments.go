package harness

import (
	"bytes"
	"sort"
	"time"

	"github.com/mrlz/String-dictionary/patricia"

	sd "github.com/mrlz/String-dictionary"
)

// NewStructures returns one fresh instance of each associative structure
// under comparison, in the fixed order the CSV sinks report them.
func NewStructures() []sd.Structure {
	return []sd.Structure{patricia.New(), sd.NewTST(), sd.NewHashTable()}
}

// RandomResult is one structure's outcome for a single random-words run:
// its overall Measurement plus the per-length breakdown used by the
// by-length sink.
type RandomResult struct {
	Measurement Measurement
	ByLength    *ByLength
}

// RandomExperiment inserts every word in words (stream 0) into s, then
// searches for every word in words (hits) and every word in misses
// (out-of-corpus), timing each phase as a whole and per word, and
// recording each search/miss sample under its word's length.
func RandomExperiment(s sd.Structure, words, misses [][]byte) RandomResult {
	by := NewByLength()

	insertStart := time.Now()
	for i, w := range words {
		s.Insert(w, uint64(i), 0)
	}
	insertTime := time.Since(insertStart)

	var searchTime time.Duration
	for _, w := range words {
		start := time.Now()
		s.SearchReport(w, 0, false)
		d := time.Since(start)
		searchTime += d
		by.AddSearch(len(w), d)
	}

	var missTime time.Duration
	for _, w := range misses {
		start := time.Now()
		s.SearchReport(w, 0, false)
		d := time.Since(start)
		missTime += d
		by.AddMiss(len(w), d)
	}

	n := time.Duration(len(words))
	m := time.Duration(len(misses))
	measurement := Measurement{
		Structure:        s.Name(),
		InsertTime:       insertTime,
		SearchTime:       searchTime,
		MissTime:         missTime,
		StructureSize:    s.StructureSize(),
		ExtraMeasurement: s.ExtraMeasurement(),
	}
	if n > 0 {
		measurement.AvgInsertTime = insertTime / n
		measurement.AvgSearchTime = searchTime / n
	}
	if m > 0 {
		measurement.AvgMissTime = missTime / m
	}
	return RandomResult{Measurement: measurement, ByLength: by}
}

// SingleTextExperiment is RandomExperiment specialized to a single book's
// word list: it inserts and searches the book's own words (stream 0) and
// measures misses against a separately supplied out-of-corpus sample. The
// mechanics are identical to RandomExperiment; this wrapper exists so
// callers reading the sweep code can tell the two kinds of run apart.
func SingleTextExperiment(s sd.Structure, bookWords, misses [][]byte) RandomResult {
	return RandomExperiment(s, bookWords, misses)
}

// similarity computes 1 - sum(|count0-count1|) / totalOccurrences over
// every distinct key inserted into s across both streams. keys must list
// every key that was inserted (stream 0, stream 1, or both) exactly once.
func similarity(s sd.Structure, keys [][]byte) float64 {
	var diffSum, total uint64
	for _, k := range keys {
		c0, c1 := s.Occurrences(k)
		if c0 > c1 {
			diffSum += c0 - c1
		} else {
			diffSum += c1 - c0
		}
		total += c0 + c1
	}
	if total == 0 {
		return 1
	}
	return 1 - float64(diffSum)/float64(total)
}

// SimilarityExperiment inserts text1's words into s under stream 0 and
// text2's words under stream 1, then reports the insert/search timings (run
// against the sorted, deduplicated union of both word lists) alongside the
// similarity score, matching the original comparison tool's similarity
// metric: 1 minus the normalized sum of absolute per-key occurrence
// differences between the two streams.
func SimilarityExperiment(s sd.Structure, text1, text2 [][]byte) SimilarityRow {
	insertStart := time.Now()
	for i, w := range text1 {
		s.Insert(w, uint64(i), 0)
	}
	for i, w := range text2 {
		s.Insert(w, uint64(i), 1)
	}
	insertTime := time.Since(insertStart)

	union := dedupeUnion(text1, text2)

	searchStart := time.Now()
	for _, w := range union {
		s.SearchReport(w, 0, false)
	}
	searchTime := time.Since(searchStart)

	n := time.Duration(len(union))
	row := SimilarityRow{
		Structure:  s.Name(),
		InsertTime: insertTime,
		SearchTime: searchTime,
		Size:       s.StructureSize(),
		Extra:      s.ExtraMeasurement(),
		Similarity: similarity(s, union),
	}
	row.TotalTime = insertTime + searchTime
	if n > 0 {
		row.AvgInsert = insertTime / time.Duration(len(text1)+len(text2))
		row.AvgSearch = searchTime / n
	}
	return row
}

func dedupeUnion(a, b [][]byte) [][]byte {
	seen := make(map[string]bool, len(a)+len(b))
	out := make([][]byte, 0, len(a)+len(b))
	for _, list := range [][][]byte{a, b} {
		for _, w := range list {
			k := string(w)
			if !seen[k] {
				seen[k] = true
				out = append(out, w)
			}
		}
	}
	sort.Slice(out, func(i, j int) bool { return bytes.Compare(out[i], out[j]) < 0 })
	return out
}
