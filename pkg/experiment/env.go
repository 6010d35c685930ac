package experiment

import (
	"errors"
	"io/fs"

	"github.com/joho/godotenv"
	"github.com/xyproto/env/v2"
)

// environment variables read by LoadConfigFromEnv
const (
	EnvDataSource   = "HASHEXP_DATA_SOURCE"
	EnvLoadFactor   = "HASHEXP_LOAD_FACTOR"
	EnvDebugLevel   = "HASHEXP_DEBUG_LEVEL"
	EnvMinCapacity  = "HASHEXP_MIN_CAPACITY"
	EnvMaxCapacity  = "HASHEXP_MAX_CAPACITY"
	EnvWordFile     = "HASHEXP_WORD_FILE"
	EnvSeed         = "HASHEXP_SEED"
	EnvDumpDir      = "HASHEXP_DUMP_DIR"
	EnvCompressDump = "HASHEXP_COMPRESS_DUMP"
	EnvMetricsFile  = "HASHEXP_METRICS_FILE"
	EnvSequential   = "HASHEXP_SEQUENTIAL"
)

// LoadConfigFromEnv overlays conf with the HASHEXP_* environment variables.
// Values from the given dotenv files (or ./.env when none are given) are
// loaded first, without overriding variables that are already set. A
// missing dotenv file is not an error. Unset variables leave conf as is.
func LoadConfigFromEnv(conf *Config, dotenv ...string) error {
	if err := godotenv.Load(dotenv...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	// refresh the cached environment, godotenv may have just extended it
	env.Load()

	if env.Has(EnvDataSource) {
		conf.DataSource = env.Int(EnvDataSource, conf.DataSource)
	}
	if env.Has(EnvLoadFactor) {
		conf.LoadFactor = env.Float64(EnvLoadFactor, conf.LoadFactor)
	}
	if env.Has(EnvDebugLevel) {
		conf.DebugLevel = env.Int(EnvDebugLevel, conf.DebugLevel)
	}
	if env.Has(EnvMinCapacity) {
		conf.MinCapacity = env.Int(EnvMinCapacity, conf.MinCapacity)
	}
	if env.Has(EnvMaxCapacity) {
		conf.MaxCapacity = env.Int(EnvMaxCapacity, conf.MaxCapacity)
	}
	conf.WordFile = env.Str(EnvWordFile, conf.WordFile)
	if env.Has(EnvSeed) {
		conf.Seed = env.Int64(EnvSeed, conf.Seed)
	}
	conf.DumpDir = env.Str(EnvDumpDir, conf.DumpDir)
	if env.Has(EnvCompressDump) {
		conf.CompressDump = env.Bool(EnvCompressDump)
	}
	conf.MetricsFile = env.Str(EnvMetricsFile, conf.MetricsFile)
	if env.Has(EnvSequential) {
		conf.Sequential = env.Bool(EnvSequential)
	}
	return nil
}
