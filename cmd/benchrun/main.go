// Command benchrun drives the comparative experiment harness from the
// command line: choose an experiment type and it runs the matching sweep
// against the three associative structures, writing CSV results to the
// requested output directory.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/mrlz/String-dictionary/harness"
)

const (
	experimentRandom = iota
	experimentSingleText
	experimentSimilarity
)

func main() {
	experimentType := flag.Int("experiment", experimentRandom,
		"experiment to run: 0=random words, 1=single text, 2=similarity")
	outDir := flag.String("out", ".", "directory to write CSV results into")
	name := flag.String("name", "run", "base name for the CSV sink(s)")
	textFolder := flag.String("textdir", "./text/single_books/", "folder holding the single-text/similarity corpora")
	seed := flag.Int64("seed", 1, "PRNG seed")
	flag.Parse()

	logger := log.New(os.Stderr, "benchrun: ", log.LstdFlags)

	if err := os.MkdirAll(*outDir, 0o755); err != nil {
		logger.Fatalf("creating output directory: %v", err)
	}

	var err error
	switch *experimentType {
	case experimentRandom:
		err = harness.RunRandomSweep(*outDir, *name, harness.DefaultRandomSweepConfig(), *seed)
	case experimentSingleText:
		cfg := harness.DefaultSingleTextSweepConfig()
		cfg.Folder = *textFolder
		err = harness.RunSingleTextSweep(*outDir, *name, cfg, *seed)
	case experimentSimilarity:
		cfg := harness.DefaultSimilaritySweepConfig()
		cfg.Folder = *textFolder
		err = harness.RunSimilaritySweep(*outDir, *name, cfg, *seed)
	default:
		fmt.Fprintf(os.Stderr, "unknown experiment type %d\n", *experimentType)
		os.Exit(2)
	}

	if err != nil {
		logger.Fatalf("experiment failed: %v", err)
	}
}
