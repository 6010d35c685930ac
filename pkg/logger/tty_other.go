//go:build !linux
// +build !linux

package logger

import "os"

// isTerminal always reports false off linux, so output stays uncolored
func isTerminal(f *os.File) bool {
	return false
}
