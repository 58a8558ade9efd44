package harness

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"time"
)

// HeaderFields are the experiment-specific column values that precede the
// timing columns in the main and by-length sinks, in the same order as the
// labels passed to NewOutputManager. Random runs report the permutation
// index and alphabet size; single-text runs report the book name and
// permutation index.
type HeaderFields []string

// OutputManager owns the three CSV sinks an experiment run writes to,
// adapted from the original comparison tool's own output manager: one row
// per structure per run in the main sink, one row per structure per word
// length in the by-length sink, and (for similarity runs only) one row per
// structure per book pair in the similarity sink.
type OutputManager struct {
	main       *csv.Writer
	byLength   *csv.Writer
	similarity *csv.Writer

	mainFile       io.Closer
	byLengthFile   io.Closer
	similarityFile io.Closer

	labels []string

	wroteMainHeader       bool
	wroteByLengthHeader   bool
	wroteSimilarityHeader bool
}

// NewOutputManager creates (or truncates) name.csv and name_by_m.csv under
// dir. labels names the run-identifying columns every WriteMainRow and
// WriteByLengthRows call's HeaderFields supplies values for, in order (for
// example {"i", "|Σ|"} for a random sweep, or {"text", "i"} for a
// single-text sweep). If withSimilarity is true it also creates
// name_similarity.csv.
func NewOutputManager(dir, name string, labels []string, withSimilarity bool) (*OutputManager, error) {
	mainF, err := os.Create(dir + "/" + name + ".csv")
	if err != nil {
		return nil, fmt.Errorf("harness: creating main sink: %w", err)
	}
	byLengthF, err := os.Create(dir + "/" + name + "_by_m.csv")
	if err != nil {
		mainF.Close()
		return nil, fmt.Errorf("harness: creating by-length sink: %w", err)
	}

	om := &OutputManager{
		main:         csv.NewWriter(mainF),
		byLength:     csv.NewWriter(byLengthF),
		mainFile:     mainF,
		byLengthFile: byLengthF,
		labels:       labels,
	}

	if withSimilarity {
		simF, err := os.Create(dir + "/" + name + "_similarity.csv")
		if err != nil {
			mainF.Close()
			byLengthF.Close()
			return nil, fmt.Errorf("harness: creating similarity sink: %w", err)
		}
		om.similarity = csv.NewWriter(simF)
		om.similarityFile = simF
	}

	return om, nil
}

func durSeconds(d time.Duration) string { return fmt.Sprintf("%.9f", d.Seconds()) }
func durMillis(d time.Duration) string  { return fmt.Sprintf("%.6f", float64(d.Microseconds())/1000.0) }

// WriteMainRow appends one structure's measurement for one run. header
// supplies the run-identifying columns (i, |Σ| for random runs; text, i for
// single-text runs) that precede the timing columns.
func (o *OutputManager) WriteMainRow(header HeaderFields, m Measurement) error {
	if !o.wroteMainHeader {
		cols := append([]string{"Alg"}, o.labels...)
		cols = append(cols,
			"insert_time_s", "avg_insert_ms",
			"search_time_s", "avg_search_ms",
			"miss_time_s", "avg_miss_ms",
			"size_bytes", "extra",
			"total_time_s", "avg_total_ms")
		if err := o.main.Write(cols); err != nil {
			return err
		}
		o.wroteMainHeader = true
	}

	row := append([]string{m.Structure}, header...)
	row = append(row,
		durSeconds(m.InsertTime), durMillis(m.AvgInsertTime),
		durSeconds(m.SearchTime), durMillis(m.AvgSearchTime),
		durSeconds(m.MissTime), durMillis(m.AvgMissTime),
		fmt.Sprintf("%d", m.StructureSize),
		fmt.Sprintf("%.6f", m.ExtraMeasurement),
		durSeconds(m.TotalTime()), durMillis(m.AvgTotalTime()))
	return o.main.Write(row)
}

// WriteByLengthRows appends one row per recorded length for one structure's
// run.
func (o *OutputManager) WriteByLengthRows(header HeaderFields, structureName string, by *ByLength) error {
	if !o.wroteByLengthHeader {
		cols := append([]string{"Alg"}, o.labels...)
		cols = append(cols, "search_time_ms", "avg_search_ms", "miss_time_ms", "avg_miss_ms", "m")
		if err := o.byLength.Write(cols); err != nil {
			return err
		}
		o.wroteByLengthHeader = true
	}

	for _, length := range by.Lengths() {
		r := by.RowFor(length)
		row := append([]string{structureName}, header...)
		row = append(row,
			durMillis(r.SearchTime), durMillis(r.AvgSearchTime),
			durMillis(r.MissTime), durMillis(r.AvgMissTime),
			fmt.Sprintf("%d", length))
		if err := o.byLength.Write(row); err != nil {
			return err
		}
	}
	return nil
}

// SimilarityRow is one structure's result for one pair of texts.
type SimilarityRow struct {
	Structure  string
	Text1      string
	Text2      string
	Iteration  int
	InsertTime time.Duration
	AvgInsert  time.Duration
	SearchTime time.Duration
	AvgSearch  time.Duration
	Size       uint64
	Extra      float64
	TotalTime  time.Duration
	Similarity float64
}

// WriteSimilarityRow appends one row to the similarity sink. It panics if
// the manager was not created with similarity support.
func (o *OutputManager) WriteSimilarityRow(r SimilarityRow) error {
	if o.similarity == nil {
		panic("harness: WriteSimilarityRow called on a manager without a similarity sink")
	}
	if !o.wroteSimilarityHeader {
		cols := []string{"Alg", "text1", "text2", "i",
			"insert_time_s", "avg_insert_ms",
			"search_time_s", "avg_search_ms",
			"size_bytes", "extra", "total_time", "similarity"}
		if err := o.similarity.Write(cols); err != nil {
			return err
		}
		o.wroteSimilarityHeader = true
	}
	row := []string{
		r.Structure, r.Text1, r.Text2, fmt.Sprintf("%d", r.Iteration),
		durSeconds(r.InsertTime), durMillis(r.AvgInsert),
		durSeconds(r.SearchTime), durMillis(r.AvgSearch),
		fmt.Sprintf("%d", r.Size),
		fmt.Sprintf("%.6f", r.Extra),
		durSeconds(r.TotalTime),
		fmt.Sprintf("%.6f", r.Similarity),
	}
	return o.similarity.Write(row)
}

// Close flushes and closes every sink the manager opened.
func (o *OutputManager) Close() error {
	o.main.Flush()
	o.byLength.Flush()
	var errs []error
	if err := o.main.Error(); err != nil {
		errs = append(errs, err)
	}
	if err := o.byLength.Error(); err != nil {
		errs = append(errs, err)
	}
	if o.similarity != nil {
		o.similarity.Flush()
		if err := o.similarity.Error(); err != nil {
			errs = append(errs, err)
		}
	}
	if err := o.mainFile.Close(); err != nil {
		errs = append(errs, err)
	}
	if err := o.byLengthFile.Close(); err != nil {
		errs = append(errs, err)
	}
	if o.similarityFile != nil {
		if err := o.similarityFile.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	if len(errs) > 0 {
		return fmt.Errorf("harness: closing output manager: %v", errs)
	}
	return nil
}
