// SPDX-License-Identifier: MIT
// Package machine: sentinel error set.
// Parse and aggregation failures wrap these sentinels (or gf2's) with the
// record's line number; match them with errors.Is.

package machine

import (
	"errors"
	"fmt"
)

var (
	// ErrMalformed indicates a record that does not follow the
	// "[pattern] (i,j,...) ... {n,...}" notation.
	ErrMalformed = errors.New("machine: malformed record")

	// ErrUnsolvable is returned under PolicyStrict when a record has no
	// press plan reproducing its pattern.
	ErrUnsolvable = errors.New("machine: record has no solution")

	// ErrOverflow is returned when the running total would exceed the int range.
	ErrOverflow = errors.New("machine: total overflows int")

	// ErrUnknownPolicy is returned by ParsePolicy for an unrecognised name.
	ErrUnknownPolicy = errors.New("machine: unknown policy")
)

// lineErrorf tags err with a 1-based line (record) number.
func lineErrorf(line int, err error) error {
	return fmt.Errorf("line %d: %w", line, err)
}

// malformedf wraps ErrMalformed with a detail message.
func malformedf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrMalformed, fmt.Sprintf(format, args...))
}
