package main

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/scottcagno/hashprobe/pkg/experiment"
	"github.com/scottcagno/hashprobe/pkg/logger"
	"github.com/scottcagno/hashprobe/pkg/util"
)

const usage = `Usage: hashexp <dataSource> <loadFactor> [<debugLevel>]
  <dataSource>: 1 ==> random numbers
                2 ==> date value as a long
                3 ==> word list
  <loadFactor>: the ratio of objects to table size, between 0 and 1
  <debugLevel>: 0 ==> print summary of experiment
                1 ==> save the two hash tables to a file at the end
                2 ==> print debugging output for each insert

Environment: HASHEXP_* variables (or a .env file) override the defaults,
command line arguments override the environment.
`

func main() {
	lg := logger.DefaultLogger

	conf := &experiment.Config{Logger: lg}
	err := experiment.LoadConfigFromEnv(conf)
	errCheck(lg, err)

	args := os.Args[1:]
	if len(args) < 2 || len(args) > 3 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(1)
	}
	conf.DataSource, err = strconv.Atoi(args[0])
	usageCheck(err)
	conf.LoadFactor, err = strconv.ParseFloat(args[1], 64)
	usageCheck(err)
	if len(args) == 3 {
		conf.DebugLevel, err = strconv.Atoi(args[2])
		usageCheck(err)
	}

	ctx, cancel := util.ShutdownContext(context.Background())
	defer cancel()

	sum, err := experiment.Run(ctx, conf)
	errCheck(lg, err)
	fmt.Println(sum)
}

func usageCheck(err error) {
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n\n%s", err, usage)
		os.Exit(1)
	}
}

func errCheck(lg *logger.Logger, err error) {
	if err != nil {
		lg.Error(err.Error())
		os.Exit(1)
	}
}
