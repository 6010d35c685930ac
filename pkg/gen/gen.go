// Package gen produces the key streams the experiment feeds into the tables.
// Every generator can be reset, and a reset generator replays exactly the
// same keys, so both probing strategies see identical input.
package gen

import (
	"bufio"
	"errors"
	"fmt"
	"math/rand"
	"os"
	"strings"
	"time"
)

var (
	ErrExhausted = errors.New("gen: generator exhausted")
	ErrClosed    = errors.New("gen: generator is closed")
)

// Generator is a resettable stream of keys
type Generator[T any] interface {
	Next() (T, error)
	Name() string
	Reset() error
	Close() error
}

// RandomInts yields pseudo random 32 bit integers (negative ones included)
// from a fixed seed
type RandomInts struct {
	seed int64
	rnd  *rand.Rand
}

func NewRandomInts(seed int64) *RandomInts {
	return &RandomInts{
		seed: seed,
		rnd:  rand.New(rand.NewSource(seed)),
	}
}

func (g *RandomInts) Next() (int64, error) {
	return int64(int32(g.rnd.Uint32())), nil
}

func (g *RandomInts) Name() string { return "Random-Numbers" }

func (g *RandomInts) Reset() error {
	g.rnd = rand.New(rand.NewSource(g.seed))
	return nil
}

func (g *RandomInts) Close() error { return nil }

// DateSequence yields dates one second apart, starting one second after start
type DateSequence struct {
	start   time.Time
	current time.Time
}

func NewDateSequence(start time.Time) *DateSequence {
	// drop the monotonic reading, keys are compared with ==
	start = start.Round(0)
	return &DateSequence{
		start:   start,
		current: start,
	}
}

func (g *DateSequence) Next() (time.Time, error) {
	g.current = g.current.Add(time.Second)
	return g.current, nil
}

func (g *DateSequence) Name() string { return "Random-Dates" }

func (g *DateSequence) Reset() error {
	g.current = g.start
	return nil
}

func (g *DateSequence) Close() error { return nil }

// WordFile yields one word per line of a text file, blank lines skipped
type WordFile struct {
	path string
	fd   *os.File
	scan *bufio.Scanner
}

// OpenWordFile opens path and returns a generator positioned on its
// first line
func OpenWordFile(path string) (*WordFile, error) {
	g := &WordFile{path: path}
	if err := g.Reset(); err != nil {
		return nil, err
	}
	return g, nil
}

func (g *WordFile) Next() (string, error) {
	if g.scan == nil {
		return "", ErrClosed
	}
	for g.scan.Scan() {
		word := strings.TrimSpace(g.scan.Text())
		if word != "" {
			return word, nil
		}
	}
	if err := g.scan.Err(); err != nil {
		return "", fmt.Errorf("gen: reading %s: %w", g.path, err)
	}
	return "", ErrExhausted
}

func (g *WordFile) Name() string { return "Word-List" }

// Reset reopens the file from the start
func (g *WordFile) Reset() error {
	if err := g.Close(); err != nil {
		return err
	}
	fd, err := os.Open(g.path)
	if err != nil {
		return fmt.Errorf("gen: %w", err)
	}
	g.fd = fd
	g.scan = bufio.NewScanner(fd)
	return nil
}

func (g *WordFile) Close() error {
	if g.fd == nil {
		return nil
	}
	err := g.fd.Close()
	g.fd, g.scan = nil, nil
	return err
}
