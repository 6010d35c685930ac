package openaddr

import "fmt"

// HashFunc returns the raw integer identity of a key. It must be
// deterministic, equal keys must produce equal hashes.
type HashFunc[K comparable] func(key K) int64

// Observer is handed the outcome of every insert
type Observer[K comparable] func(key K, r Result)

// HashTable represents a fixed capacity, closed hashing hashtable
// implementation. It is not safe for concurrent use.
type HashTable[K comparable, V any] struct {
	hash     HashFunc[K]
	strategy Strategy
	observer Observer[K]
	keys     int
	slots    []Slot[K, V]
}

// NewHashTable returns a new HashTable with exactly capacity slots, probed
// using the provided strategy. It panics if hash is nil or if the capacity is
// too small for the strategy (double hashing needs more than 2 slots).
func NewHashTable[K comparable, V any](capacity int, strategy Strategy, hash HashFunc[K]) *HashTable[K, V] {
	if hash == nil {
		panic("openaddr: nil hash function")
	}
	if least := strategy.minCapacity(); capacity < least {
		panic(fmt.Sprintf("openaddr: %s needs a capacity of at least %d, got %d", strategy, least, capacity))
	}
	return &HashTable[K, V]{
		hash:     hash,
		strategy: strategy,
		slots:    make([]Slot[K, V], capacity),
	}
}

// SetObserver registers fn to receive the outcome of every insert. Passing
// nil removes the observer.
func (m *HashTable[K, V]) SetObserver(fn Observer[K]) {
	m.observer = fn
}

// Insert places a key value entry and reports what happened. Inserting a key
// that is already present bumps its frequency and replaces its value. If no
// room is left the Result has a Full status and ErrTableFull is returned.
// Insert can be considered the exported version of the insert call
func (m *HashTable[K, V]) Insert(key K, value V) (Result, error) {
	r := m.insert(m.hash(key), key, value)
	if m.observer != nil {
		m.observer(key, r)
	}
	if r.Status == Full {
		return r, ErrTableFull
	}
	return r, nil
}

// Add inserts key with the zero value, for tables used as a set
func (m *HashTable[K, V]) Add(key K) (Result, error) {
	var zero V
	return m.Insert(key, zero)
}

// insert walks the probe sequence for hashkey
func (m *HashTable[K, V]) insert(hashkey int64, key K, value V) Result {
	capacity := len(m.slots)
	start, step := m.strategy.sequence(hashkey, capacity)
	// first tombstone seen, we keep going past it in case the key lives
	// further down the sequence
	reuse, reuseAttempt := -1, 0
	for attempt := 0; attempt < capacity; attempt++ {
		i := probeAt(start, step, uint64(attempt), uint64(capacity))
		switch m.slots[i].state {
		case slotEmpty:
			// never used, the key can not be further down
			if reuse < 0 {
				return m.place(i, attempt, hashkey, key, value)
			}
			return m.place(reuse, reuseAttempt, hashkey, key, value)
		case slotDeleted:
			if reuse < 0 {
				reuse, reuseAttempt = i, attempt
			}
		case slotOccupied:
			if m.slots[i].checkHashAndKey(hashkey, key) {
				// hashes and keys are a match, count the duplicate
				m.slots[i].Frequency++
				m.slots[i].Value = value
				return Result{Status: Duplicate, Index: i, Probes: attempt + 1}
			}
		}
	}
	if reuse >= 0 {
		return m.place(reuse, reuseAttempt, hashkey, key, value)
	}
	return Result{Status: Full, Index: -1, Probes: capacity}
}

// place writes a fresh entry into slot i, clearing any tombstone
func (m *HashTable[K, V]) place(i, attempt int, hashkey int64, key K, value V) Result {
	m.slots[i] = Slot[K, V]{
		state:     slotOccupied,
		hashkey:   hashkey,
		Key:       key,
		Value:     value,
		Frequency: 1,
		Probes:    attempt + 1,
	}
	m.keys++
	return Result{Status: Inserted, Index: i, Probes: attempt + 1}
}

// Search returns the value for a given key, or returns false if none could
// be found. Search never modifies the table.
func (m *HashTable[K, V]) Search(key K) (V, bool) {
	if i := m.lookup(m.hash(key), key); i >= 0 {
		return m.slots[i].Value, true
	}
	var zero V
	return zero, false
}

// Has reports whether key is present
func (m *HashTable[K, V]) Has(key K) bool {
	return m.lookup(m.hash(key), key) >= 0
}

// Lookup returns a copy of the slot holding key, counters included
func (m *HashTable[K, V]) Lookup(key K) (Slot[K, V], bool) {
	if i := m.lookup(m.hash(key), key); i >= 0 {
		return m.slots[i], true
	}
	return Slot[K, V]{}, false
}

// lookup returns the index of the live slot holding key, or -1
func (m *HashTable[K, V]) lookup(hashkey int64, key K) int {
	capacity := len(m.slots)
	start, step := m.strategy.sequence(hashkey, capacity)
	for attempt := 0; attempt < capacity; attempt++ {
		i := probeAt(start, step, uint64(attempt), uint64(capacity))
		// havent located anything
		if m.slots[i].state == slotEmpty {
			return -1
		}
		// tombstones fail this check, so we keep on probing past them
		if m.slots[i].checkHashAndKey(hashkey, key) {
			return i
		}
	}
	return -1
}

// Delete tombstones the entry for a given key and returns the deleted value,
// or false if the key was not present
func (m *HashTable[K, V]) Delete(key K) (V, bool) {
	var zero V
	i := m.lookup(m.hash(key), key)
	if i < 0 {
		return zero, false
	}
	val := m.slots[i].Value
	// keep the key and counters around for diagnostics, only the
	// state matters for probing
	m.slots[i].state = slotDeleted
	m.slots[i].Value = zero
	m.keys--
	return val, true
}

// Iterator is an iterator function type
type Iterator[K comparable, V any] func(index int, slot Slot[K, V]) bool

// Range takes an Iterator and ranges the live slots in index order as long
// as the iterator function continues to be true. Range is not safe to
// perform an insert or delete operation while ranging!
func (m *HashTable[K, V]) Range(it Iterator[K, V]) {
	for i := 0; i < len(m.slots); i++ {
		if m.slots[i].state != slotOccupied {
			continue
		}
		if !it(i, m.slots[i]) {
			return
		}
	}
}

// DuplicateCount returns the total number of duplicate inserts over all
// live entries
func (m *HashTable[K, V]) DuplicateCount() int {
	var n int
	for i := 0; i < len(m.slots); i++ {
		if m.slots[i].state == slotOccupied {
			n += m.slots[i].Frequency - 1
		}
	}
	return n
}

// ProbeCount returns the total number of probes spent placing the live
// entries. This measures probing cost, not the number of keys.
func (m *HashTable[K, V]) ProbeCount() int {
	var n int
	for i := 0; i < len(m.slots); i++ {
		if m.slots[i].state == slotOccupied {
			n += m.slots[i].Probes
		}
	}
	return n
}

// MaxProbes returns the highest probe count of any live entry
func (m *HashTable[K, V]) MaxProbes() int {
	var hp int
	for i := 0; i < len(m.slots); i++ {
		if m.slots[i].state == slotOccupied && m.slots[i].Probes > hp {
			hp = m.slots[i].Probes
		}
	}
	return hp
}

// PercentFull returns the current load factor of the HashTable
func (m *HashTable[K, V]) PercentFull() float64 {
	return float64(m.keys) / float64(len(m.slots))
}

// Len returns the number of live entries currently in the HashTable
func (m *HashTable[K, V]) Len() int {
	return m.keys
}

// Cap returns the fixed number of slots
func (m *HashTable[K, V]) Cap() int {
	return len(m.slots)
}

// Strategy returns the probing strategy the table was built with
func (m *HashTable[K, V]) Strategy() Strategy {
	return m.strategy
}
