// SPDX-License-Identifier: MIT
// Package machine: aggregation of per-record minima.
//
// gf2.NoSolution is never summed. What happens to an unsolvable record is an
// explicit Policy:
//   - PolicyStrict (default) stops with ErrUnsolvable;
//   - PolicySkip   counts it in Report.Unsolved and leaves the total alone.
//
// Summation is overflow-checked and fails with ErrOverflow instead of wrapping.

package machine

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/exp/constraints"

	"github.com/katalvlaran/lights/gf2"
)

// Policy selects how unsolvable records affect the total.
type Policy int

const (
	// PolicyStrict fails on the first unsolvable record.
	PolicyStrict Policy = iota
	// PolicySkip excludes unsolvable records from the total and counts them.
	PolicySkip
)

// String returns the policy's flag name.
func (p Policy) String() string {
	switch p {
	case PolicyStrict:
		return "strict"
	case PolicySkip:
		return "skip"
	default:
		return fmt.Sprintf("Policy(%d)", int(p))
	}
}

// ParsePolicy maps "strict" or "skip" (case-insensitive) to a Policy.
func ParsePolicy(s string) (Policy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "strict", "":
		return PolicyStrict, nil
	case "skip":
		return PolicySkip, nil
	default:
		return PolicyStrict, fmt.Errorf("%w: %q", ErrUnknownPolicy, s)
	}
}

// Report summarises an aggregation.
type Report struct {
	Total     int   // sum of minima over solved records
	Solved    int   // records with a press plan
	Unsolved  int   // records without one (PolicySkip only)
	PerRecord []int // per-record minimum or gf2.NoSolution, in input order
}

// Aggregator accumulates per-record minima under a Policy.
// The zero value is not usable; call NewAggregator.
type Aggregator struct {
	policy Policy
	opts   []gf2.Option
	report Report
}

// NewAggregator returns an Aggregator that solves records with opts.
func NewAggregator(policy Policy, opts ...gf2.Option) *Aggregator {
	return &Aggregator{policy: policy, opts: opts}
}

// Add solves m and folds its minimum into the report.
// Solver errors (capacity, ceiling) are returned as-is.
func (a *Aggregator) Add(m Machine) error {
	n, err := m.MinPresses(a.opts...)
	if err != nil {
		return err
	}

	return a.AddCount(n)
}

// AddCount folds an already computed minimum (or gf2.NoSolution).
func (a *Aggregator) AddCount(n int) error {
	record := len(a.report.PerRecord) + 1
	if n == gf2.NoSolution {
		if a.policy == PolicyStrict {
			return fmt.Errorf("record %d: %w", record, ErrUnsolvable)
		}
		a.report.PerRecord = append(a.report.PerRecord, n)
		a.report.Unsolved++
		return nil
	}

	total, ok := checkedAdd(a.report.Total, n)
	if !ok {
		return fmt.Errorf("record %d: %w", record, ErrOverflow)
	}
	a.report.Total = total
	a.report.Solved++
	a.report.PerRecord = append(a.report.PerRecord, n)

	return nil
}

// Report returns a snapshot of the accumulated totals.
func (a *Aggregator) Report() Report {
	r := a.report
	r.PerRecord = append([]int(nil), a.report.PerRecord...)

	return r
}

// Total reads every record from r and aggregates it.
// Errors from parsing or solving are tagged with the record's line number.
func Total(r io.Reader, policy Policy, opts ...gf2.Option) (Report, error) {
	agg := NewAggregator(policy, opts...)
	err := ForEach(r, func(line int, m Machine) error {
		if err := agg.Add(m); err != nil {
			return lineErrorf(line, err)
		}
		return nil
	})
	if err != nil {
		return Report{}, err
	}

	return agg.Report(), nil
}

// checkedAdd returns a+b and false if the sum overflows T.
func checkedAdd[T constraints.Integer](a, b T) (T, bool) {
	var zero T
	c := a + b
	if (b > zero && c < a) || (b < zero && c > a) {
		return c, false
	}

	return c, true
}
