package util

import (
	"errors"
	"fmt"
	"reflect"
	"runtime"
	"strings"
	"testing"
)

func Trace() string {
	pc := make([]uintptr, 10) // at least 1 entry needed
	runtime.Callers(3, pc)
	f := runtime.FuncForPC(pc[0])
	file, line := f.FileLine(pc[0])
	sfile := strings.Split(file, "/")
	sname := strings.Split(f.Name(), "/")
	return fmt.Sprintf("[%s:%d %s]", sfile[len(sfile)-1], line, sname[len(sname)-1])
}

func AssertExpected(t testing.TB, expected, got interface{}) bool {
	t.Helper()
	if !reflect.DeepEqual(expected, got) {
		t.Errorf("%s error, expected: %v, got: %v\n", Trace(), expected, got)
		return false
	}
	return true
}

func AssertLen(t testing.TB, expected, got interface{}) bool {
	t.Helper()
	return AssertExpected(t, expected, got)
}

func AssertEqual(t testing.TB, expected, got interface{}) bool {
	t.Helper()
	return AssertExpected(t, expected, got)
}

func AssertTrue(t testing.TB, got interface{}) bool {
	t.Helper()
	return AssertExpected(t, true, got)
}

func AssertFalse(t testing.TB, got interface{}) bool {
	t.Helper()
	return AssertExpected(t, false, got)
}

// AssertErrorIs checks the error chain of got for target
func AssertErrorIs(t testing.TB, target, got error) bool {
	t.Helper()
	if !errors.Is(got, target) {
		t.Errorf("%s error, expected error: %v, got: %v\n", Trace(), target, got)
		return false
	}
	return true
}

func AssertNoError(t testing.TB, got error) bool {
	t.Helper()
	if got != nil {
		t.Errorf("%s error, expected no error, got: %v\n", Trace(), got)
		return false
	}
	return true
}

func AssertNil(t testing.TB, got interface{}) bool {
	t.Helper()
	return AssertExpected(t, nil, got)
}
