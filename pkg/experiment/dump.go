package experiment

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/golang/snappy"

	"github.com/scottcagno/hashprobe/pkg/hashmap/openaddr"
	"github.com/scottcagno/hashprobe/pkg/util"
)

// dumpName returns the dump file name for a strategy, linear-dump.txt
// or double-dump.txt, with a .sz suffix when compressed
func dumpName(s openaddr.Strategy, compress bool) string {
	name := s.Short() + "-dump.txt"
	if compress {
		name += ".sz"
	}
	return name
}

// dumper is satisfied by every HashTable instantiation
type dumper interface {
	WriteDump(w io.Writer) (int, error)
	Strategy() openaddr.Strategy
}

// saveDump writes the live slots of table into dir and returns the path
func saveDump(dir string, compress bool, table dumper) (string, error) {
	dir, err := util.CreateBaseDir(dir)
	if err != nil {
		return "", fmt.Errorf("experiment: creating dump dir: %w", err)
	}
	path := filepath.Join(dir, dumpName(table.Strategy(), compress))
	fd, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("experiment: creating dump: %w", err)
	}
	var w io.Writer = fd
	var sw *snappy.Writer
	if compress {
		sw = snappy.NewBufferedWriter(fd)
		w = sw
	}
	_, err = table.WriteDump(w)
	if err == nil && sw != nil {
		err = sw.Close()
	}
	if cerr := fd.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return "", fmt.Errorf("experiment: writing dump %s: %w", path, err)
	}
	return path, nil
}

// ReadDump returns the text of a dump file, decompressing .sz files
func ReadDump(path string) ([]byte, error) {
	fd, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer fd.Close()
	var r io.Reader = fd
	if filepath.Ext(path) == ".sz" {
		r = snappy.NewReader(fd)
	}
	return io.ReadAll(r)
}
