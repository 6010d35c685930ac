package hash

import (
	"fmt"
	"testing"
	"time"

	"github.com/scottcagno/hashprobe/pkg/util"
)

var words = []string{
	"reproducibility",
	"eruct",
	"acids",
	"flyspecks",
	"driveshafts",
	"volcanically",
	"discouraging",
	"acapnia",
	"phenazines",
	"hoarser",
}

func TestIdentity(t *testing.T) {
	util.AssertExpected(t, int64(-42), Int64(-42))
	util.AssertExpected(t, int64(42), Int(42))
	util.AssertExpected(t, int64(-7), Int32(-7))
	util.AssertExpected(t, int64(4294967295), Uint32(4294967295))
}

func TestString(t *testing.T) {
	set := make(map[int64]string, len(words))
	var coll int
	for _, word := range words {
		h := String(word)
		util.AssertExpected(t, h, String(word))
		util.AssertExpected(t, h, Bytes([]byte(word)))
		if old, ok := set[h]; ok {
			coll++
			fmt.Printf("collision: current word: %s, old word: %s, hash: %d\n", word, old, h)
			continue
		}
		set[h] = word
	}
	util.AssertExpected(t, 0, coll)
}

func TestTime(t *testing.T) {
	d := time.Date(2024, 2, 29, 12, 0, 0, 0, time.UTC)
	util.AssertExpected(t, d.UnixMilli(), Time(d))
	util.AssertExpected(t, Time(d)+1000, Time(d.Add(time.Second)))
}
