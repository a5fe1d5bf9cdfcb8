package run

import (
	"fmt"
	"io"
	"strconv"

	"github.com/sirupsen/logrus"

	"github.com/zegl/fib/fib"
)

// Options controls a single invocation of the fib commands.
type Options struct {
	Variant string
	Args    []string

	// Seq prints the first Seq values instead of Args when SeqSet.
	Seq    int
	SeqSet bool

	// Mod prints fib(n) mod Mod for each of Args when ModSet.
	Mod    uint64
	ModSet bool
}

// Defaults printed when no arguments are given.
var (
	NaiveDefaults = []string{"0", "1", "6"}
	MemoDefaults  = []string{"10", "35"}
)

type evaluator func(n int) (int64, error)

func newEvaluator(variant string) (evaluator, func() error, error) {
	switch variant {
	case "naive":
		return fib.Naive, nil, nil
	case "memo", "":
		return fib.Memoized, nil, nil
	case "table":
		t, err := fib.NewTable()
		if err != nil {
			return nil, nil, err
		}
		return t.Fib, t.Close, nil
	}
	return nil, nil, fmt.Errorf("unknown variant: %s", variant)
}

// Run writes one result per line to out.
func Run(opts Options, out io.Writer, log logrus.FieldLogger) error {
	if opts.SeqSet {
		seq, err := fib.Sequence(opts.Seq)
		if err != nil {
			return err
		}
		for _, v := range seq {
			fmt.Fprintln(out, v)
		}
		return nil
	}

	args := opts.Args
	if len(args) == 0 {
		args = MemoDefaults
		if opts.Variant == "naive" {
			args = NaiveDefaults
		}
	}

	if opts.ModSet {
		return runMod(args, opts.Mod, out, log)
	}

	eval, closer, err := newEvaluator(opts.Variant)
	if err != nil {
		return err
	}
	if closer != nil {
		defer closer()
	}

	for _, arg := range args {
		n, err := strconv.Atoi(arg)
		if err != nil {
			return fmt.Errorf("invalid index %q: %w", arg, err)
		}

		v, err := eval(n)
		if err != nil {
			return err
		}

		log.WithFields(logrus.Fields{
			"variant": opts.Variant,
			"n":       n,
			"value":   v,
		}).Debug("computed")

		fmt.Fprintln(out, v)
	}

	return nil
}

func runMod(args []string, m uint64, out io.Writer, log logrus.FieldLogger) error {
	for _, arg := range args {
		n, err := strconv.ParseUint(arg, 10, 64)
		if err != nil {
			return fmt.Errorf("invalid index %q: %w", arg, err)
		}

		v, err := fib.Mod(n, m)
		if err != nil {
			return err
		}

		log.WithFields(logrus.Fields{
			"n":   n,
			"mod": m,
		}).Debug("computed")

		fmt.Fprintln(out, v)
	}
	return nil
}
