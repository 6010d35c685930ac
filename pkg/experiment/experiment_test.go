package experiment

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/scottcagno/hashprobe/pkg/gen"
	"github.com/scottcagno/hashprobe/pkg/logger"
	"github.com/scottcagno/hashprobe/pkg/util"
)

func quietLogger() *logger.Logger {
	l := logger.New(new(bytes.Buffer), false)
	l.SetLevel(logger.LevelError)
	return l
}

// small capacity range, 1021 is the larger half of the twin pair (1019, 1021)
func testConfig(source int, lf float64) *Config {
	return &Config{
		DataSource:  source,
		LoadFactor:  lf,
		MinCapacity: 1000,
		MaxCapacity: 1100,
		Seed:        42,
		Logger:      quietLogger(),
	}
}

func TestRun_RandomInts(t *testing.T) {
	sum, err := Run(context.Background(), testConfig(SourceRandomInts, 0.9))
	util.AssertNoError(t, err)
	util.AssertExpected(t, 1021, sum.Capacity)
	util.AssertExpected(t, 919, sum.NumObjects) // ceil(0.9 * 1021)
	util.AssertExpected(t, "Random-Numbers", sum.Input)
	util.AssertLen(t, 2, len(sum.Reports))
	util.AssertTrue(t, sum.RunID != "")
	for _, r := range sum.Reports {
		util.AssertExpected(t, sum.NumObjects, r.Inserted)
		util.AssertTrue(t, r.Probes >= r.Inserted)
		util.AssertTrue(t, r.AvgProbes() >= 1)
		util.AssertTrue(t, r.MaxProbes >= 1)
	}
	// same key stream, so both strategies see the same duplicates
	util.AssertExpected(t, sum.Reports[0].Duplicates, sum.Reports[1].Duplicates)
	util.AssertExpected(t, "Linear Probing", sum.Reports[0].Name)
	util.AssertExpected(t, "Double Hashing", sum.Reports[1].Name)
}

func TestRun_Dates(t *testing.T) {
	sum, err := Run(context.Background(), testConfig(SourceDates, 0.5))
	util.AssertNoError(t, err)
	for _, r := range sum.Reports {
		util.AssertExpected(t, 511, r.Inserted)
		util.AssertExpected(t, 0, r.Duplicates)
	}
}

// writeWords writes n distinct words, each one repeated on consecutive lines
func writeWords(t *testing.T, n, repeat int) string {
	t.Helper()
	var sb strings.Builder
	for i := 0; i < n; i++ {
		for j := 0; j < repeat; j++ {
			fmt.Fprintf(&sb, "word%d\n", i)
		}
	}
	path := filepath.Join(t.TempDir(), "word-list.txt")
	util.AssertNoError(t, os.WriteFile(path, []byte(sb.String()), 0644))
	return path
}

func TestRun_WordsWithDumps(t *testing.T) {
	conf := testConfig(SourceWords, 0.1)
	// 103 new words are needed, the first 102 of them are read twice
	conf.WordFile = writeWords(t, 150, 2)
	conf.DebugLevel = DebugDump
	conf.DumpDir = t.TempDir()
	conf.MetricsFile = filepath.Join(t.TempDir(), "metrics.prom")

	sum, err := Run(context.Background(), conf)
	util.AssertNoError(t, err)
	for _, r := range sum.Reports {
		util.AssertExpected(t, 103, r.Inserted)
		util.AssertExpected(t, 102, r.Duplicates)
		dat, err := ReadDump(r.DumpFile)
		util.AssertNoError(t, err)
		lines := strings.Split(strings.TrimSpace(string(dat)), "\n")
		util.AssertExpected(t, 103, len(lines))
		util.AssertTrue(t, strings.HasPrefix(lines[0], "table["))
	}
	util.AssertExpected(t, filepath.Join(conf.DumpDir, "linear-dump.txt"), sum.Reports[0].DumpFile)
	util.AssertExpected(t, filepath.Join(conf.DumpDir, "double-dump.txt"), sum.Reports[1].DumpFile)

	prom, err := os.ReadFile(conf.MetricsFile)
	util.AssertNoError(t, err)
	util.AssertTrue(t, bytes.Contains(prom, []byte(`hashprobe_inserts_total{status="duplicate",strategy="linear"} 102`)))
	util.AssertTrue(t, bytes.Contains(prom, []byte(`hashprobe_insert_probes_count{strategy="double"} 103`)))
}

func TestRun_CompressedDump(t *testing.T) {
	conf := testConfig(SourceRandomInts, 0.2)
	conf.DebugLevel = DebugDump
	conf.DumpDir = t.TempDir()
	conf.CompressDump = true
	sum, err := Run(context.Background(), conf)
	util.AssertNoError(t, err)
	for _, r := range sum.Reports {
		util.AssertTrue(t, strings.HasSuffix(r.DumpFile, ".txt.sz"))
		dat, err := ReadDump(r.DumpFile)
		util.AssertNoError(t, err)
		util.AssertExpected(t, r.Inserted, bytes.Count(dat, []byte("\n")))
	}
}

func TestRun_WordFileTooShort(t *testing.T) {
	conf := testConfig(SourceWords, 0.5)
	conf.WordFile = writeWords(t, 10, 1)
	_, err := Run(context.Background(), conf)
	util.AssertErrorIs(t, gen.ErrExhausted, err)
}

func TestRun_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := Run(ctx, testConfig(SourceRandomInts, 0.5))
	util.AssertErrorIs(t, context.Canceled, err)
}

func TestRun_BadConfig(t *testing.T) {
	_, err := Run(context.Background(), testConfig(4, 0.5))
	util.AssertErrorIs(t, ErrBadDataSource, err)
	_, err = Run(context.Background(), testConfig(SourceDates, 1.5))
	util.AssertErrorIs(t, ErrBadLoadFactor, err)
	conf := testConfig(SourceDates, 0.5)
	conf.DebugLevel = 3
	_, err = Run(context.Background(), conf)
	util.AssertErrorIs(t, ErrBadDebugLevel, err)
	conf = testConfig(SourceDates, 0.5)
	conf.MinCapacity, conf.MaxCapacity = 32, 40
	_, err = Run(context.Background(), conf)
	util.AssertTrue(t, err != nil)
	conf = testConfig(SourceDates, 0.5)
	conf.MinCapacity, conf.MaxCapacity = 50, 40
	_, err = Run(context.Background(), conf)
	util.AssertErrorIs(t, ErrBadCapacityRange, err)
}

func TestRun_DebugInsertsLogs(t *testing.T) {
	buf := new(bytes.Buffer)
	conf := testConfig(SourceDates, 0.01)
	conf.Logger = logger.New(buf, false)
	conf.DebugLevel = DebugInserts
	sum, err := Run(context.Background(), conf)
	util.AssertNoError(t, err)
	util.AssertTrue(t, conf.Sequential)
	util.AssertExpected(t, 2*sum.NumObjects, strings.Count(buf.String(), ": inserted: "))
}

func TestSummary_String(t *testing.T) {
	sum, err := Run(context.Background(), testConfig(SourceRandomInts, 0.5))
	util.AssertNoError(t, err)
	s := sum.String()
	util.AssertTrue(t, strings.Contains(s, "Found a twin prime table capacity: 1021"))
	util.AssertTrue(t, strings.Contains(s, "\tUsing Double Hashing"))
	js, err := sum.JSON()
	util.AssertNoError(t, err)
	util.AssertTrue(t, strings.Contains(js, `"strategy": "Linear Probing"`))
}
