package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/1pkg/cmdargs"
	"github.com/1pkg/cmdargs/sinks"
)

const usage = `usage: %s [--color] [--json-log] [--verbose] command [; command ...]
commands:
  sum numbers...      sums the numbers up to the next separator
  repeat count word   prints word count times, count is at least 1
  port n              validates n as a tcp port
`

type options struct {
	// highlight diagnostics prefixes;
	color bool
	// write diagnostics and logs as json lines;
	json bool
	// log commands lifecycle;
	verbose bool
}

func main() {
	name := filepath.Base(os.Args[0])
	fs := pflag.NewFlagSet(name, pflag.ContinueOnError)
	fs.SetInterspersed(false)
	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, usage, name)
		fs.PrintDefaults()
	}
	var opts options
	fs.BoolVar(&opts.color, "color", true, "highlight diagnostics")
	fs.BoolVar(&opts.json, "json-log", false, "write diagnostics as json log entries")
	fs.BoolVar(&opts.verbose, "verbose", false, "log commands lifecycle")
	if err := fs.Parse(os.Args[1:]); err != nil {
		os.Exit(2)
	}
	logger, err := newLogger(opts)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer func() {
		_ = logger.Sync()
	}()
	a := cmdargs.New(append([]string{name}, fs.Args()...), cmdargs.WithLog(sink(opts, logger, os.Stderr)))
	if err := run(a, os.Stdout, logger); err != nil {
		logger.Error("command line can't be processed", zap.Error(err))
		fs.Usage()
		_ = logger.Sync()
		os.Exit(2)
	}
}

func newLogger(opts options) (*zap.Logger, error) {
	cfg := zap.NewDevelopmentConfig()
	if opts.json {
		cfg = zap.NewProductionConfig()
	}
	if !opts.verbose {
		cfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	}
	return cfg.Build()
}

func sink(opts options, logger *zap.Logger, w io.Writer) io.Writer {
	switch {
	case opts.json:
		return sinks.Zap(logger)
	case opts.color:
		return sinks.Color(w)
	default:
		return w
	}
}
