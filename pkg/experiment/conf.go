package experiment

import (
	"strconv"
	"strings"

	"github.com/scottcagno/hashprobe/pkg/logger"
)

const (
	// data sources
	SourceRandomInts = 1
	SourceDates      = 2
	SourceWords      = 3

	// debug levels
	DebugSummary = 0 // print a summary of the experiment
	DebugDump    = 1 // also save both tables to a dump file
	DebugInserts = 2 // also log every insert

	// capacity search range, the twin prime found here sizes both tables
	defaultMinCapacity = 95500
	defaultMaxCapacity = 96000

	// paths
	defaultWordFile = "word-list.txt"
	defaultDumpDir  = "."

	defaultLoadFactor = 0.5
	defaultSeed       = 1
)

// default config
var defaultConfig = &Config{
	DataSource:  SourceRandomInts,
	LoadFactor:  defaultLoadFactor,
	DebugLevel:  DebugSummary,
	MinCapacity: defaultMinCapacity,
	MaxCapacity: defaultMaxCapacity,
	WordFile:    defaultWordFile,
	Seed:        defaultSeed,
	DumpDir:     defaultDumpDir,
	Logger:      logger.DefaultLogger,
}

// Config holds configuration settings for an experiment run
type Config struct {
	DataSource   int            // 1 random ints, 2 dates, 3 words
	LoadFactor   float64        // ratio of new keys to table capacity, in [0, 1]
	DebugLevel   int            // 0 summary, 1 dump files, 2 per insert logging
	MinCapacity  int            // lower bound of the twin prime search
	MaxCapacity  int            // upper bound of the twin prime search
	WordFile     string         // word list used by the word source
	Seed         int64          // seed of the random int source
	DumpDir      string         // directory dump files are written to
	CompressDump bool           // snappy compress dump files
	MetricsFile  string         // prometheus text file, empty disables it
	Sequential   bool           // run the strategies one after the other
	Logger       *logger.Logger // logger
}

func (conf *Config) String() string {
	var sb strings.Builder
	sb.WriteString("DataSource: ")
	sb.WriteString(SourceName(conf.DataSource))
	sb.WriteString("\n")
	sb.WriteString("LoadFactor: ")
	sb.WriteString(strconv.FormatFloat(conf.LoadFactor, 'f', 2, 64))
	sb.WriteString("\n")
	sb.WriteString("DebugLevel: ")
	sb.WriteString(strconv.Itoa(conf.DebugLevel))
	sb.WriteString("\n")
	sb.WriteString("CapacityRange: ")
	sb.WriteString(strconv.Itoa(conf.MinCapacity))
	sb.WriteString("-")
	sb.WriteString(strconv.Itoa(conf.MaxCapacity))
	sb.WriteString("\n")
	sb.WriteString("WordFile: ")
	sb.WriteString(conf.WordFile)
	sb.WriteString("\n")
	sb.WriteString("Seed: ")
	sb.WriteString(strconv.FormatInt(conf.Seed, 10))
	sb.WriteString("\n")
	sb.WriteString("DumpDir: ")
	sb.WriteString(conf.DumpDir)
	sb.WriteString("\n")
	sb.WriteString("CompressDump: ")
	sb.WriteString(strconv.FormatBool(conf.CompressDump))
	sb.WriteString("\n")
	sb.WriteString("MetricsFile: ")
	sb.WriteString(conf.MetricsFile)
	sb.WriteString("\n")
	sb.WriteString("Sequential: ")
	sb.WriteString(strconv.FormatBool(conf.Sequential))
	return sb.String()
}

// SourceName returns the name of a data source, as the generators report it
func SourceName(source int) string {
	switch source {
	case SourceRandomInts:
		return "Random-Numbers"
	case SourceDates:
		return "Random-Dates"
	case SourceWords:
		return "Word-List"
	default:
		return "Unknown"
	}
}

// checkConfig is a helper to make sure the configuration options are
// correct. Missing options are filled in with defaults, options that
// are out of range are rejected.
func checkConfig(conf *Config) (*Config, error) {
	if conf == nil {
		c := *defaultConfig
		return &c, nil
	}
	if conf.DataSource < SourceRandomInts || conf.DataSource > SourceWords {
		return nil, ErrBadDataSource
	}
	if conf.LoadFactor < 0 || conf.LoadFactor > 1 {
		return nil, ErrBadLoadFactor
	}
	if conf.DebugLevel < DebugSummary || conf.DebugLevel > DebugInserts {
		return nil, ErrBadDebugLevel
	}
	if conf.MinCapacity <= 0 {
		conf.MinCapacity = defaultMinCapacity
	}
	if conf.MaxCapacity <= 0 {
		conf.MaxCapacity = defaultMaxCapacity
	}
	if conf.MaxCapacity < conf.MinCapacity {
		return nil, ErrBadCapacityRange
	}
	if conf.WordFile == *new(string) {
		conf.WordFile = defaultWordFile
	}
	if conf.DumpDir == *new(string) {
		conf.DumpDir = defaultDumpDir
	}
	if conf.Logger == nil {
		conf.Logger = logger.DefaultLogger
	}
	if conf.DebugLevel == DebugInserts {
		// per insert lines are debug level, and would interleave
		if conf.Logger.GetLevel() > logger.LevelDebug {
			conf.Logger.SetLevel(logger.LevelDebug)
		}
		conf.Sequential = true
	}
	return conf, nil
}
