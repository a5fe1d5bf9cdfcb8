package main

import (
	"os"

	"github.com/sirupsen/logrus"

	"github.com/zegl/fib/cmd/fib/run"
)

// Prints fib(10) and fib(35) using the memoized evaluator.
func main() {
	err := run.Run(run.Options{Variant: "memo"}, os.Stdout, logrus.StandardLogger())
	if err != nil {
		logrus.Error(err)
		os.Exit(1)
	}
}
