package openaddr

import "fmt"

const (
	slotEmpty    uint8 = iota // never been used, ends every probe sequence
	slotOccupied              // holds a live entry
	slotDeleted               // tombstone, skipped by lookups and reused by inserts
)

// Slot represents a single cell of the HashTable
type Slot[K comparable, V any] struct {
	state     uint8
	hashkey   int64
	Key       K
	Value     V
	Frequency int // times the key was inserted, starts at 1
	Probes    int // attempts it took to place the entry, 1 based
}

// checkHashAndKey checks if this slot holds a live entry matching the
// specified hashkey and key
func (s *Slot[K, V]) checkHashAndKey(hashkey int64, key K) bool {
	return s.state == slotOccupied && s.hashkey == hashkey && s.Key == key
}

// IsEmpty reports whether the slot has never held an entry
func (s Slot[K, V]) IsEmpty() bool {
	return s.state == slotEmpty
}

// IsDeleted reports whether the slot is a tombstone
func (s Slot[K, V]) IsDeleted() bool {
	return s.state == slotDeleted
}

// IsLive reports whether the slot holds a present entry
func (s Slot[K, V]) IsLive() bool {
	return s.state == slotOccupied
}

func (s Slot[K, V]) String() string {
	return fmt.Sprintf("key=%v frequency=%d probes=%d deleted=%t",
		s.Key, s.Frequency, s.Probes, s.IsDeleted())
}

// Status describes what an insert did
type Status uint8

const (
	Inserted  Status = iota // a new entry was placed
	Duplicate               // the key was already present, its frequency went up
	Full                    // every attempt was spent without finding room
)

func (s Status) String() string {
	switch s {
	case Inserted:
		return "inserted"
	case Duplicate:
		return "duplicate"
	case Full:
		return "full"
	default:
		return fmt.Sprintf("Status(%d)", uint8(s))
	}
}

// Result is the outcome of a single insert
type Result struct {
	Status Status
	Index  int // slot that was written or matched, -1 when full
	Probes int // attempts used, equal to the new slot's Probes when inserted
}

func (r Result) String() string {
	switch r.Status {
	case Inserted:
		return fmt.Sprintf("inserted at index %d with probe count %d", r.Index, r.Probes)
	case Duplicate:
		return fmt.Sprintf("duplicate found at index %d", r.Index)
	default:
		return fmt.Sprintf("table full after %d probes", r.Probes)
	}
}
