package openaddr

import (
	"bufio"
	"fmt"
	"io"
)

// Entry pairs a live slot with its index in the table
type Entry[K comparable, V any] struct {
	Index int
	Slot  Slot[K, V]
}

func (e Entry[K, V]) String() string {
	return fmt.Sprintf("table[%d]: %s", e.Index, e.Slot)
}

// Dump returns every live slot in ascending index order. Tombstones and
// empty slots are left out.
func (m *HashTable[K, V]) Dump() []Entry[K, V] {
	entries := make([]Entry[K, V], 0, m.keys)
	m.Range(func(index int, slot Slot[K, V]) bool {
		entries = append(entries, Entry[K, V]{Index: index, Slot: slot})
		return true
	})
	return entries
}

// WriteDump writes the dump to w, one line per live slot:
//
//	table[<index>]: key=<key> frequency=<n> probes=<n> deleted=false
//
// It returns the number of lines written.
func (m *HashTable[K, V]) WriteDump(w io.Writer) (int, error) {
	bw := bufio.NewWriter(w)
	var lines int
	var err error
	m.Range(func(index int, slot Slot[K, V]) bool {
		_, err = fmt.Fprintf(bw, "table[%d]: %s\n", index, slot)
		if err != nil {
			return false
		}
		lines++
		return true
	})
	if err != nil {
		return lines, err
	}
	return lines, bw.Flush()
}
