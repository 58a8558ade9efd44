package strdict

import (
	"fmt"

	"github.com/dolthub/maphash"
)

// HashTable is an open-addressed associative array using linear probing.
// It starts with a capacity of 100 slots and doubles (rehashing every
// occupied slot) whenever the load factor would exceed 0.4 after the next
// insertion.
type HashTable struct {
	slots    []hashSlot
	capacity int
	stored   int // number of distinct keys occupying a slot
	inserted int // total number of Insert calls
	hasher   maphash.Hasher[string]
}

type hashSlot struct {
	occupied  bool
	key       string
	positions PositionMultiset
}

// NewHashTable returns an empty HashTable with the starting capacity used
// throughout this module's experiments.
func NewHashTable() *HashTable {
	return &HashTable{
		slots:    make([]hashSlot, 101),
		capacity: 100,
		hasher:   maphash.NewHasher[string](),
	}
}

func (h *HashTable) hashValue(key string) int {
	return int(h.hasher.Hash(key) % uint64(h.capacity))
}

// checkFillRate doubles the table and rehashes every occupied slot when
// the load factor, accounting for the insertion about to happen, would
// exceed 0.4. It runs before probing for a free slot, matching the
// original implementation's ordering.
func (h *HashTable) checkFillRate() {
	if float64(h.stored+1)/float64(h.capacity) <= 0.4 {
		return
	}
	oldSlots := h.slots
	h.capacity *= 2
	h.slots = make([]hashSlot, h.capacity+1)
	for i := 0; i < len(oldSlots)-1; i++ {
		if oldSlots[i].occupied {
			slot := h.probeFreeSlot(h.hashValue(oldSlots[i].key), oldSlots[i].key)
			h.slots[slot] = oldSlots[i]
		}
	}
}

// probeFreeSlot scans linearly from start, wrapping at capacity, stopping
// at the first empty slot or at a slot already holding key.
func (h *HashTable) probeFreeSlot(start int, key string) int {
	slot := start
	for h.slots[slot].occupied {
		if h.slots[slot].key == key {
			break
		}
		slot = (slot + 1) % h.capacity
	}
	return slot
}

// Insert implements Structure.
func (h *HashTable) Insert(key []byte, pos uint64, stream int) {
	h.inserted++
	h.checkFillRate()
	k := string(key)
	slot := h.probeFreeSlot(h.hashValue(k), k)
	if !h.slots[slot].occupied {
		h.slots[slot].occupied = true
		h.slots[slot].key = k
		h.stored++
	}
	h.slots[slot].positions.Add(stream, pos)
}

// search returns the index of key's slot, or the sentinel index
// (h.capacity) if key is not present.
func (h *HashTable) search(key []byte) int {
	k := string(key)
	slot := h.hashValue(k)
	for h.slots[slot].occupied {
		if h.slots[slot].key == k {
			return slot
		}
		slot = (slot + 1) % h.capacity
	}
	return h.capacity
}

// SearchReport implements Structure.
func (h *HashTable) SearchReport(key []byte, stream int, verbose bool) bool {
	slot := h.search(key)
	found := slot != h.capacity
	if verbose && found {
		fmt.Printf("%s found in slot %d with %d occurrences: %v\n",
			key, slot, h.slots[slot].positions.Count(stream), h.slots[slot].positions.Positions(stream))
	}
	return found
}

// Occurrences implements Structure. Calling this for an absent key panics.
func (h *HashTable) Occurrences(key []byte) (count0, count1 uint64) {
	slot := h.search(key)
	if slot == h.capacity {
		panic(fmt.Sprintf("strdict: Occurrences called for absent key %q", key))
	}
	return h.slots[slot].positions.Occurrences()
}

// Name implements Structure.
func (h *HashTable) Name() string { return "HASH" }

// StructureSize implements Structure.
func (h *HashTable) StructureSize() uint64 {
	const slotOverhead = 32 // occupied bool + string header + PositionMultiset header, approximate
	var total uint64 = slotOverhead * uint64(len(h.slots))
	for i := 0; i < h.capacity; i++ {
		if !h.slots[i].occupied {
			continue
		}
		total += uint64(len(h.slots[i].key))
		c0, c1 := h.slots[i].positions.Capacity()
		total += uint64(c0+c1) * 8
	}
	return total
}

// ExtraMeasurement implements Structure, returning the table's current
// load factor (stored keys over capacity), matching the original's
// get_fill.
func (h *HashTable) ExtraMeasurement() float64 {
	return float64(h.stored) / float64(h.capacity)
}
