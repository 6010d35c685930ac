package openaddr

import (
	"fmt"
	"math/bits"
	"strings"
)

// Strategy selects how the probe sequence for a key is computed
type Strategy uint8

const (
	LinearProbing Strategy = iota
	DoubleHashing
)

func (s Strategy) String() string {
	switch s {
	case LinearProbing:
		return "Linear Probing"
	case DoubleHashing:
		return "Double Hashing"
	default:
		return fmt.Sprintf("Strategy(%d)", uint8(s))
	}
}

// Short returns the lower case single word name, used for file names
// and metric labels
func (s Strategy) Short() string {
	switch s {
	case LinearProbing:
		return "linear"
	case DoubleHashing:
		return "double"
	default:
		return "unknown"
	}
}

// ParseStrategy turns "linear" or "double" (or the long names) into a Strategy
func ParseStrategy(name string) (Strategy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "linear", "linear probing", "linear-probing":
		return LinearProbing, nil
	case "double", "double hashing", "double-hashing":
		return DoubleHashing, nil
	}
	return 0, fmt.Errorf("openaddr: unknown probing strategy %q", name)
}

// Strategies lists every probing strategy, in a stable order
func Strategies() []Strategy {
	return []Strategy{LinearProbing, DoubleHashing}
}

// minCapacity is the smallest table this strategy can probe
func (s Strategy) minCapacity() int {
	switch s {
	case LinearProbing:
		return MinLinearCapacity
	case DoubleHashing:
		return MinDoubleHashCapacity
	default:
		panic(fmt.Sprintf("openaddr: unknown probing strategy %d", uint8(s)))
	}
}

// PrimaryHash is h1, the first slot tried for a key
func PrimaryHash(hash int64, capacity int) int {
	return int(posMod(hash, int64(capacity)))
}

// SecondaryHash is h2, the double hashing step. The +1 keeps the step off
// zero, which would pin every attempt to the same slot.
func SecondaryHash(hash int64, capacity int) int {
	return 1 + int(posMod(hash, int64(capacity-2)))
}

// sequence returns the first slot and the step between attempts
func (s Strategy) sequence(hash int64, capacity int) (uint64, uint64) {
	start := uint64(PrimaryHash(hash, capacity))
	switch s {
	case LinearProbing:
		return start, 1
	case DoubleHashing:
		return start, uint64(SecondaryHash(hash, capacity))
	default:
		panic(fmt.Sprintf("openaddr: unknown probing strategy %d", uint8(s)))
	}
}

// Probe returns the slot index for the given attempt, always in [0, capacity).
// Attempts are 0 based. Double hashing needs capacity > 2.
func (s Strategy) Probe(hash int64, attempt, capacity int) int {
	start, step := s.sequence(hash, capacity)
	return probeAt(start, step, uint64(attempt), uint64(capacity))
}

// probeAt computes (start + attempt*step) mod capacity without overflowing
func probeAt(start, step, attempt, capacity uint64) int {
	hi, lo := bits.Mul64(attempt, step)
	offset := bits.Rem64(hi, lo, capacity)
	// start and offset are both below capacity, so one subtraction is enough
	i := start + offset
	if i >= capacity || i < start {
		i -= capacity
	}
	return int(i)
}
