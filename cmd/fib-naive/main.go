package main

import (
	"os"

	"github.com/sirupsen/logrus"

	"github.com/zegl/fib/cmd/fib/run"
)

// Prints fib(0), fib(1) and fib(6) using the naive evaluator.
func main() {
	err := run.Run(run.Options{Variant: "naive"}, os.Stdout, logrus.StandardLogger())
	if err != nil {
		logrus.Error(err)
		os.Exit(1)
	}
}
