package harness

import (
	"fmt"
	"log"
	"math/rand"
	"os"

	sd "github.com/mrlz/String-dictionary"
)

// logSparseLengths builds a LengthBuckets of the distinct words in words
// and warns about any length in [1, maxLen] that ended up with exactly one
// distinct word once duplicates are removed -- a permutation drawn
// from that length contributes little variety to the by-length timing
// breakdown. label identifies the sweep cell being reported on.
func logSparseLengths(label string, words []string, maxLen int) {
	buckets := NewLengthBuckets[string]()
	for _, w := range words {
		buckets.Add(len(w), w)
	}
	for length := 1; length <= maxLen; length++ {
		if n := buckets.DistinctCount(length); n == 1 {
			log.Printf("harness: %s: length %d has only one distinct word across this run", label, length)
		}
	}
}

// RandomSweepConfig fixes the parameters of a random-word sweep. The
// defaults in DefaultRandomSweepConfig reproduce the original comparison
// tool's own experiment grid.
type RandomSweepConfig struct {
	AlphabetSizes    []int
	AverageWordLen   float64
	MinWords         int
	MaxWords         int
	Repetitions      int
	Permutations     int
	OutOfCorpusCount int
}

// DefaultRandomSweepConfig returns the parameter grid used by the random
// experiment in the original tool: alphabet sizes from 2 to 94, an average
// word length of 5.2, word counts i in [10, 20) each repeated 4 times, 3
// permutations per repetition.
func DefaultRandomSweepConfig() RandomSweepConfig {
	return RandomSweepConfig{
		AlphabetSizes:    []int{2, 4, 6, 8, 10, 20, 26, 40, 60, 80, 94},
		AverageWordLen:   5.2,
		MinWords:         10,
		MaxWords:         20,
		Repetitions:      4,
		Permutations:     3,
		OutOfCorpusCount: 1000,
	}
}

// RunRandomSweep runs the random-word experiment across every (word count,
// alphabet size) cell of cfg's grid, for every repetition and permutation,
// against all three structures, writing results into dir/name(.csv,
// _by_m.csv).
func RunRandomSweep(dir, name string, cfg RandomSweepConfig, seed int64) error {
	om, err := NewOutputManager(dir, name, []string{"i", "|Σ|"}, false)
	if err != nil {
		return err
	}
	defer om.Close()

	r := rand.New(rand.NewSource(seed))

	for exponent := cfg.MinWords; exponent < cfg.MaxWords; exponent++ {
		wordCount := 1 << uint(exponent)
		for _, alphabetSize := range cfg.AlphabetSizes {
			for rep := 0; rep < cfg.Repetitions; rep++ {
				histogram := sd.BinomialWordLengths(r, cfg.AverageWordLen, wordCount)
				words := sd.RandomWords(r, histogram, alphabetSize, 'a')
				maxLen := len(histogram) - 1
				logSparseLengths(fmt.Sprintf("random |Σ|=%d words=%d rep=%d", alphabetSize, wordCount, rep), stringify(words), maxLen)

				for perm := 0; perm < cfg.Permutations; perm++ {
					r.Shuffle(len(words), func(i, j int) { words[i], words[j] = words[j], words[i] })
					misses := sd.OutOfCorpusSample(r, cfg.OutOfCorpusCount, alphabetSize, 'a', stringify(words), maxLen)
					missBytes := bytesify(misses)

					header := HeaderFields{fmt.Sprintf("%d", perm), fmt.Sprintf("%d", alphabetSize)}
					for _, s := range NewStructures() {
						result := RandomExperiment(s, words, missBytes)
						if err := om.WriteMainRow(header, result.Measurement); err != nil {
							return err
						}
						if err := om.WriteByLengthRows(header, s.Name(), result.ByLength); err != nil {
							return err
						}
					}
				}
			}
		}
	}
	return nil
}

// SingleTextSweepConfig fixes the parameters of a single-book sweep.
type SingleTextSweepConfig struct {
	Folder           string
	Extension        string
	BookNames        []string
	Permutations     int
	OutOfCorpusCount int
}

// DefaultSingleTextSweepConfig returns the 16-book grid used by the
// original comparison tool's single-text experiment.
func DefaultSingleTextSweepConfig() SingleTextSweepConfig {
	return SingleTextSweepConfig{
		Folder:    "./text/single_books/",
		Extension: ".txt",
		BookNames: []string{
			"book_1", "book_2", "book_3", "book_4", "book_5", "bible",
			"book_1_malazan", "book_2_malazan", "book_3_malazan", "book_4_malazan",
			"book_5_malazan", "book_6_malazan", "book_7_malazan", "book_8_malazan",
			"book_9_malazan", "book_10_malazan",
		},
		Permutations:     3,
		OutOfCorpusCount: 1000,
	}
}

// RunSingleTextSweep runs the random-experiment mechanics over each named
// book's own cleaned word list, writing results into
// dir/name(.csv, _by_m.csv).
func RunSingleTextSweep(dir, name string, cfg SingleTextSweepConfig, seed int64) error {
	om, err := NewOutputManager(dir, name, []string{"text", "i"}, false)
	if err != nil {
		return err
	}
	defer om.Close()

	r := rand.New(rand.NewSource(seed))

	for _, book := range cfg.BookNames {
		data, err := os.ReadFile(cfg.Folder + book + cfg.Extension)
		if err != nil {
			return fmt.Errorf("harness: reading %s: %w", book, err)
		}
		words := sd.Clean(data)
		if len(words) == 0 {
			return fmt.Errorf("harness: %s contains no words", book)
		}
		maxLen := 0
		for _, w := range words {
			if len(w) > maxLen {
				maxLen = len(w)
			}
		}
		wordBytes := bytesify(words)
		logSparseLengths(book, words, maxLen)

		for perm := 0; perm < cfg.Permutations; perm++ {
			r.Shuffle(len(wordBytes), func(i, j int) { wordBytes[i], wordBytes[j] = wordBytes[j], wordBytes[i] })
			misses := sd.OutOfCorpusSample(r, cfg.OutOfCorpusCount, 26, 'a', words, maxLen)
			missBytes := bytesify(misses)

			header := HeaderFields{book, fmt.Sprintf("%d", perm)}
			for _, s := range NewStructures() {
				result := SingleTextExperiment(s, wordBytes, missBytes)
				if err := om.WriteMainRow(header, result.Measurement); err != nil {
					return err
				}
				if err := om.WriteByLengthRows(header, s.Name(), result.ByLength); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

// SimilaritySweepConfig fixes the parameters of a pairwise-similarity
// sweep over the same book set as the single-text sweep.
type SimilaritySweepConfig struct {
	Folder       string
	Extension    string
	BookNames    []string
	Permutations int
}

// DefaultSimilaritySweepConfig mirrors DefaultSingleTextSweepConfig's book
// set, at the 3-permutation granularity the original tool uses for
// full-text similarity comparisons.
func DefaultSimilaritySweepConfig() SimilaritySweepConfig {
	d := DefaultSingleTextSweepConfig()
	return SimilaritySweepConfig{
		Folder:       d.Folder,
		Extension:    d.Extension,
		BookNames:    d.BookNames,
		Permutations: 3,
	}
}

// RunSimilaritySweep computes pairwise similarity across every distinct
// pair of books in cfg's set, for each of the three structures, writing
// results into dir/name_similarity.csv.
func RunSimilaritySweep(dir, name string, cfg SimilaritySweepConfig, seed int64) error {
	om, err := NewOutputManager(dir, name, nil, true)
	if err != nil {
		return err
	}
	defer om.Close()

	r := rand.New(rand.NewSource(seed))

	corpora := make(map[string][][]byte, len(cfg.BookNames))
	for _, book := range cfg.BookNames {
		data, err := os.ReadFile(cfg.Folder + book + cfg.Extension)
		if err != nil {
			return fmt.Errorf("harness: reading %s: %w", book, err)
		}
		words := sd.Clean(data)
		if len(words) == 0 {
			return fmt.Errorf("harness: %s contains no words", book)
		}
		corpora[book] = bytesify(words)
	}

	for i, book1 := range cfg.BookNames {
		for _, book2 := range cfg.BookNames[i+1:] {
			for perm := 0; perm < cfg.Permutations; perm++ {
				w1 := shuffledCopy(r, corpora[book1])
				w2 := shuffledCopy(r, corpora[book2])
				for _, s := range NewStructures() {
					row := SimilarityExperiment(s, w1, w2)
					row.Text1 = book1
					row.Text2 = book2
					row.Iteration = perm
					if err := om.WriteSimilarityRow(row); err != nil {
						return err
					}
				}
			}
		}
	}
	return nil
}

func shuffledCopy(r *rand.Rand, words [][]byte) [][]byte {
	out := make([][]byte, len(words))
	copy(out, words)
	r.Shuffle(len(out), func(i, j int) { out[i], out[j] = out[j], out[i] })
	return out
}

func stringify(words [][]byte) []string {
	out := make([]string, len(words))
	for i, w := range words {
		out[i] = string(w)
	}
	return out
}

func bytesify(words []string) [][]byte {
	out := make([][]byte, len(words))
	for i, w := range words {
		out[i] = []byte(w)
	}
	return out
}
