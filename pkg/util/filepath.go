package util

import (
	"os"
	"path/filepath"
)

// CreateBaseDir makes sure the base directory exists and returns its
// absolute, slash separated form.
func CreateBaseDir(base string) (string, error) {
	base, err := filepath.Abs(base)
	if err != nil {
		return "", err
	}
	base = filepath.ToSlash(base)
	err = os.MkdirAll(base, 0755)
	if err != nil {
		return "", err
	}
	return base, nil
}
