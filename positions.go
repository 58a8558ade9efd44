package strdict

// PositionMultiset holds the occurrence positions recorded for a single key
// in each of the two text streams tracked by this module. Streams are
// independent multisets: the same position may appear more than once (a
// structure never deduplicates positions on insertion) and the two streams
// are never merged.
type PositionMultiset struct {
	streams [2][]uint64
}

// Add records pos as an occurrence of the key in the given stream (0 or 1).
func (p *PositionMultiset) Add(stream int, pos uint64) {
	p.streams[stream] = append(p.streams[stream], pos)
}

// Count returns the number of recorded occurrences in the given stream.
func (p *PositionMultiset) Count(stream int) int {
	if p == nil {
		return 0
	}
	return len(p.streams[stream])
}

// Occurrences returns the occurrence counts for both streams, in order.
func (p *PositionMultiset) Occurrences() (count0, count1 uint64) {
	if p == nil {
		return 0, 0
	}
	return uint64(len(p.streams[0])), uint64(len(p.streams[1]))
}

// Positions returns the recorded positions for the given stream, in
// insertion order. The returned slice must not be mutated by the caller.
func (p *PositionMultiset) Positions(stream int) []uint64 {
	if p == nil {
		return nil
	}
	return p.streams[stream]
}

// Capacity returns the allocated (not just used) length of each stream's
// backing slice, mirroring the original implementation's use of vector
// capacity (rather than size) when accounting for a structure's memory
// footprint.
func (p *PositionMultiset) Capacity() (cap0, cap1 int) {
	if p == nil {
		return 0, 0
	}
	return cap(p.streams[0]), cap(p.streams[1])
}
