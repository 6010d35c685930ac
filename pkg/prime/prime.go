package prime

import "errors"

var ErrRangeExhausted = errors.New("prime: no twin primes found in the given range")

// GenerateTwinPrime scans the range [min, max] in increasing order and returns
// the larger member of the first twin prime pair it finds. Both members of the
// pair must fall inside the range. If there is no such pair, ErrRangeExhausted
// is returned.
func GenerateTwinPrime(min, max int) (int, error) {
	for i := min; i <= max-2; i++ {
		if IsPrime(i) && IsPrime(i+2) {
			return i + 2, nil
		}
	}
	return 0, ErrRangeExhausted
}

// IsPrime reports whether n is prime using trial division. Every divisor up
// to and including floor(sqrt(n)) is checked.
func IsPrime(n int) bool {
	if n <= 1 {
		return false
	}
	for d := 2; d <= n/d; d++ {
		if n%d == 0 {
			return false
		}
	}
	return true
}
