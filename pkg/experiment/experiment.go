// Package experiment drives the open addressing tables: it sizes them with a
// twin prime, loads both probing strategies with the same key stream up to a
// target load factor and reports how many probes each one spent.
package experiment

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/scottcagno/hashprobe/pkg/gen"
	"github.com/scottcagno/hashprobe/pkg/hash"
	"github.com/scottcagno/hashprobe/pkg/hashmap/openaddr"
	"github.com/scottcagno/hashprobe/pkg/logger"
	"github.com/scottcagno/hashprobe/pkg/prime"
)

// checkCtxEvery is how many keys are inserted between context checks
const checkCtxEvery = 1024

// Run executes one experiment as described by conf and returns its summary
func Run(ctx context.Context, conf *Config) (*Summary, error) {
	conf, err := checkConfig(conf)
	if err != nil {
		return nil, err
	}
	capacity, err := prime.GenerateTwinPrime(conf.MinCapacity, conf.MaxCapacity)
	if err != nil {
		return nil, err
	}
	if capacity < openaddr.MinDoubleHashCapacity {
		return nil, ErrTooSmall
	}
	conf.Logger.Infof("found a twin prime table capacity: %d", capacity)

	sum := &Summary{
		RunID:      uuid.NewString(),
		Input:      SourceName(conf.DataSource),
		LoadFactor: conf.LoadFactor,
		Capacity:   capacity,
		NumObjects: int(math.Ceil(conf.LoadFactor * float64(capacity))),
	}
	conf.Logger.Infof("run %s: input %s, load factor %.2f, %d keys",
		sum.RunID, sum.Input, sum.LoadFactor, sum.NumObjects)

	e := &experiment{
		conf:    conf,
		sum:     sum,
		metrics: newMetrics(),
	}
	switch conf.DataSource {
	case SourceRandomInts:
		sum.Reports, err = runAll[int64](ctx, e, hash.Int64, func() (gen.Generator[int64], error) {
			return gen.NewRandomInts(conf.Seed), nil
		})
	case SourceDates:
		// one start instant for both strategies, so they see the same dates
		start := time.Now()
		sum.Reports, err = runAll[time.Time](ctx, e, hash.Time, func() (gen.Generator[time.Time], error) {
			return gen.NewDateSequence(start), nil
		})
	case SourceWords:
		sum.Reports, err = runAll[string](ctx, e, hash.String, func() (gen.Generator[string], error) {
			return gen.OpenWordFile(conf.WordFile)
		})
	}
	if err != nil {
		return nil, err
	}
	if conf.MetricsFile != "" {
		if err := e.metrics.writeTo(conf.MetricsFile); err != nil {
			return nil, fmt.Errorf("experiment: writing metrics: %w", err)
		}
		conf.Logger.Infof("saved metrics to %s", conf.MetricsFile)
	}
	return sum, nil
}

// experiment is the state shared by the runs of one Run call
type experiment struct {
	conf    *Config
	sum     *Summary
	metrics *metrics
}

// runAll runs every strategy over its own generator from newGen. Each
// run owns its table, so the runs may execute concurrently.
func runAll[K comparable](ctx context.Context, e *experiment, fn openaddr.HashFunc[K], newGen func() (gen.Generator[K], error)) ([]*Report, error) {
	strategies := openaddr.Strategies()
	reports := make([]*Report, len(strategies))
	g, ctx := errgroup.WithContext(ctx)
	if e.conf.Sequential {
		g.SetLimit(1)
	}
	for i, s := range strategies {
		i, s := i, s
		g.Go(func() error {
			keys, err := newGen()
			if err != nil {
				return err
			}
			defer keys.Close()
			table := openaddr.NewHashTable[K, struct{}](e.sum.Capacity, s, fn)
			r, err := load(ctx, e, table, keys)
			if err != nil {
				return fmt.Errorf("experiment: %s: %w", s, err)
			}
			reports[i] = r
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return reports, nil
}

// load inserts keys until NumObjects of them were new to the table
func load[K comparable](ctx context.Context, e *experiment, table *openaddr.HashTable[K, struct{}], keys gen.Generator[K]) (*Report, error) {
	s := table.Strategy()
	lg := e.conf.Logger
	lg.Infof("using %s", s)
	table.SetObserver(func(key K, r openaddr.Result) {
		e.metrics.observe(s, r)
		if e.conf.DebugLevel == DebugInserts {
			logInsert(lg, s, key, r)
		}
	})
	start := time.Now()
	var inserted, duplicates int
	for n := 0; inserted < e.sum.NumObjects; n++ {
		if n%checkCtxEvery == 0 {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
		}
		key, err := keys.Next()
		if err != nil {
			return nil, err
		}
		r, err := table.Add(key)
		if err != nil {
			return nil, err
		}
		if r.Status == openaddr.Duplicate {
			duplicates++
			continue
		}
		inserted++
	}
	r := &Report{
		Strategy:   s,
		Name:       s.String(),
		Inserted:   inserted,
		Duplicates: table.DuplicateCount(),
		Probes:     table.ProbeCount(),
		MaxProbes:  table.MaxProbes(),
		Elapsed:    time.Since(start),
	}
	if r.Duplicates != duplicates {
		// the table never deletes here, so both counts must agree
		lg.Warnf("%s: counted %d duplicates, table holds %d", s, duplicates, r.Duplicates)
	}
	lg.Infof("%s: inserted %d keys, %d duplicates, %d probes", s, r.Inserted, r.Duplicates, r.Probes)
	if e.conf.DebugLevel == DebugDump {
		path, err := saveDump(e.conf.DumpDir, e.conf.CompressDump, table)
		if err != nil {
			return nil, err
		}
		r.DumpFile = path
		lg.Infof("saved dump of %s hash table to %s", s, path)
	}
	return r, nil
}

func logInsert[K comparable](lg *logger.Logger, s openaddr.Strategy, key K, r openaddr.Result) {
	switch r.Status {
	case openaddr.Inserted:
		lg.Debugf("%s: inserted: %v (index %d, probes %d)", s.Short(), key, r.Index, r.Probes)
	case openaddr.Duplicate:
		lg.Debugf("%s: duplicate: %v (index %d)", s.Short(), key, r.Index)
	default:
		lg.Warnf("%s: table full, could not insert: %v", s.Short(), key)
	}
}
