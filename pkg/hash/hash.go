// Package hash turns keys into the raw int64 identity the open addressing
// table probes with. Integers hash to themselves, strings and byte slices
// go through xxhash and dates hash to their epoch value.
package hash

import (
	"time"

	"github.com/cespare/xxhash/v2"
)

func Int64(k int64) int64 {
	return k
}

func Int(k int) int64 {
	return int64(k)
}

func Int32(k int32) int64 {
	return int64(k)
}

func Uint32(k uint32) int64 {
	return int64(k)
}

// String hashes the bytes of s. The 64 bit digest is reinterpreted as a
// signed value, so it may be negative.
func String(s string) int64 {
	return int64(xxhash.Sum64String(s))
}

func Bytes(b []byte) int64 {
	return int64(xxhash.Sum64(b))
}

// Time hashes a date to its unix time in milliseconds
func Time(t time.Time) int64 {
	return t.UnixMilli()
}
