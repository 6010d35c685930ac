package openaddr

import "errors"

var ErrTableFull = errors.New("openaddr: table is full")

const (
	// MinDoubleHashCapacity is the smallest capacity double hashing accepts,
	// the step divides by capacity-2
	MinDoubleHashCapacity = 3

	// MinLinearCapacity is the smallest capacity linear probing accepts
	MinLinearCapacity = 1
)

// posMod returns the non-negative remainder of dividend / divisor. If the
// native remainder is negative the divisor is added back.
func posMod(dividend, divisor int64) int64 {
	remainder := dividend % divisor
	if remainder < 0 {
		remainder += divisor
	}
	return remainder
}
