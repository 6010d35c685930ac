package util

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestFormatTime(t *testing.T) {
	t1 := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	t2 := t1.Add(1500 * time.Millisecond)
	AssertExpected(t, "load: 1.500000 sec", FormatTime("load", t1, t2))
	AssertExpected(t, "zero: 0.000000 sec", FormatDuration("zero", 0))
}

func TestAssertErrorIs(t *testing.T) {
	base := errors.New("base")
	wrapped := fmt.Errorf("wrapping: %w", base)
	AssertTrue(t, AssertErrorIs(t, base, wrapped))
	AssertTrue(t, AssertNoError(t, nil))
}

func TestTrace(t *testing.T) {
	s := Trace()
	AssertTrue(t, len(s) > 2 && s[0] == '[' && s[len(s)-1] == ']')
}

func TestCreateBaseDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "a", "b")
	base, err := CreateBaseDir(dir)
	AssertNoError(t, err)
	AssertExpected(t, filepath.ToSlash(dir), base)
	fi, err := os.Stat(dir)
	AssertNoError(t, err)
	AssertTrue(t, fi.IsDir())
	// existing directories are fine
	_, err = CreateBaseDir(dir)
	AssertNoError(t, err)
}
