package main

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	flag "github.com/spf13/pflag"

	"github.com/zegl/fib/cmd/fib/run"
	"github.com/zegl/fib/internal/config"
)

func main() {
	cfg := config.Load()

	variant := flag.String("variant", cfg.Variant, "evaluator to use: naive, memo or table")
	seq := flag.Int("seq", 0, "print the first `k` Fibonacci numbers")
	mod := flag.Uint64("mod", 0, "print fib(n) modulo `m`")
	logLevel := flag.String("log-level", cfg.LogLevel, "log level")
	debug := flag.Bool("debug", false, "shorthand for --log-level=debug")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [flags] [n...]\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	log := logrus.New()
	log.SetOutput(os.Stderr)
	log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})

	level, err := logrus.ParseLevel(*logLevel)
	if err != nil {
		log.WithError(err).Warn("falling back to info level")
		level = logrus.InfoLevel
	}
	if *debug {
		level = logrus.DebugLevel
	}
	log.SetLevel(level)

	err = run.Run(run.Options{
		Variant: *variant,
		Args:    flag.Args(),
		Seq:     *seq,
		SeqSet:  flag.CommandLine.Changed("seq"),
		Mod:     *mod,
		ModSet:  flag.CommandLine.Changed("mod"),
	}, os.Stdout, log)
	if err != nil {
		log.Error(err)
		os.Exit(1)
	}

	os.Exit(0)
}
