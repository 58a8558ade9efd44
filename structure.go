// Package strdict holds the data model and the two simpler associative
// structures (ternary search tree, open-addressed hash table) shared by the
// comparative study engine. The harder PATRICIA tree lives in the patricia
// subpackage, which imports this package as sd.
package strdict

// Structure is the contract the experiment harness drives all three
// associative-array implementations through. Insert and SearchReport take
// a stream id in {0, 1}: the harness never merges positions across streams,
// and a structure never deduplicates positions within a stream.
type Structure interface {
	// Insert records pos as an occurrence of key in the given stream.
	Insert(key []byte, pos uint64, stream int)

	// SearchReport reports whether key is present. If verbose is true and
	// key is present, implementations may emit a diagnostic line listing
	// the recorded positions for the given stream; this has no effect on
	// the returned boolean.
	SearchReport(key []byte, stream int, verbose bool) bool

	// Occurrences returns the occurrence counts for key in both streams.
	// Calling Occurrences for a key that was never inserted is a contract
	// violation and may panic.
	Occurrences(key []byte) (count0, count1 uint64)

	// Name returns the short, fixed identifier for this structure
	// ("PATR", "TERN", or "HASH"), used as a CSV column/row label.
	Name() string

	// StructureSize estimates the structure's total memory footprint in
	// bytes, including its internal bookkeeping and all recorded positions.
	StructureSize() uint64

	// ExtraMeasurement returns a structure-specific secondary metric:
	// maximum tree depth for PATRICIA and the ternary search tree, current
	// load factor (stored keys over capacity) for the hash table.
	ExtraMeasurement() float64
}
