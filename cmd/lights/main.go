// Command lights reads newline-delimited panel records and prints the sum of
// the minimum button presses needed to light every panel's target pattern.
//
// Usage:
//
//	lights -input day10.txt [-policy strict|skip] [-wide] [-decompose] [-max-free N] [-v]
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/lights/machine"
)

var log = logrus.New()

func main() {
	cfg, err := loadConfig(os.Args[1:], os.Getenv)
	if err != nil {
		log.WithError(err).Fatal("invalid configuration")
	}
	if cfg.verbose {
		log.SetLevel(logrus.DebugLevel)
	}

	in, closeIn, err := cfg.open()
	if err != nil {
		log.WithError(err).WithField("input", cfg.input).Fatal("cannot open input")
	}
	defer closeIn()

	rep, err := run(in, cfg)
	if err != nil {
		log.WithError(err).Fatal("aggregation failed")
	}
	if rep.Unsolved > 0 {
		log.WithField("unsolved", rep.Unsolved).Warn("records without a solution were skipped")
	}

	fmt.Printf("Part 1: %d\n", rep.Total)
}

// run aggregates every record of r, logging each under debug level.
func run(r io.Reader, cfg config) (machine.Report, error) {
	opts := cfg.solverOptions()
	agg := machine.NewAggregator(cfg.policy, opts...)
	err := machine.ForEach(r, func(line int, m machine.Machine) error {
		res, err := m.Solve(opts...)
		if err != nil {
			return fmt.Errorf("line %d: %w", line, err)
		}
		log.WithFields(logrus.Fields{
			"line":     line,
			"lights":   len(m.Lights),
			"buttons":  len(m.Buttons),
			"rank":     res.Rank,
			"free":     res.FreeVars,
			"presses":  res.Presses,
			"solvable": res.Solvable,
		}).Debug("record solved")

		if err = agg.AddCount(res.Presses); err != nil {
			return fmt.Errorf("line %d: %w", line, err)
		}
		return nil
	})
	if err != nil {
		return machine.Report{}, err
	}

	return agg.Report(), nil
}
