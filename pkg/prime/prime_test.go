package prime

import (
	"testing"

	"github.com/scottcagno/hashprobe/pkg/util"
)

func TestIsPrime(t *testing.T) {
	primes := []int{2, 3, 5, 7, 11, 13, 29, 31, 95789, 95791}
	for _, n := range primes {
		util.AssertTrue(t, IsPrime(n))
	}
	// squares of primes only fail when the sqrt boundary is checked
	composites := []int{-7, 0, 1, 4, 9, 25, 49, 121, 95787, 95793}
	for _, n := range composites {
		util.AssertFalse(t, IsPrime(n))
	}
}

func TestGenerateTwinPrime(t *testing.T) {
	got, err := GenerateTwinPrime(95500, 96000)
	util.AssertNoError(t, err)
	util.AssertExpected(t, 95791, got)
	util.AssertTrue(t, IsPrime(got) && IsPrime(got-2))
	// nothing smaller in the range
	for i := 95500; i < got-2; i++ {
		if IsPrime(i) && IsPrime(i+2) {
			t.Fatalf("found smaller twin pair (%d, %d)", i, i+2)
		}
	}
}

func TestGenerateTwinPrime_Small(t *testing.T) {
	got, err := GenerateTwinPrime(0, 100)
	util.AssertNoError(t, err)
	util.AssertExpected(t, 5, got)

	got, err = GenerateTwinPrime(14, 100)
	util.AssertNoError(t, err)
	util.AssertExpected(t, 19, got)

	// the pair has to fit, 29 alone is not enough
	got, err = GenerateTwinPrime(29, 31)
	util.AssertNoError(t, err)
	util.AssertExpected(t, 31, got)
}

func TestGenerateTwinPrime_RangeExhausted(t *testing.T) {
	_, err := GenerateTwinPrime(29, 30)
	util.AssertErrorIs(t, ErrRangeExhausted, err)

	_, err = GenerateTwinPrime(32, 40)
	util.AssertErrorIs(t, ErrRangeExhausted, err)

	_, err = GenerateTwinPrime(100, 50)
	util.AssertErrorIs(t, ErrRangeExhausted, err)
}
