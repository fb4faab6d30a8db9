// SPDX-License-Identifier: MIT
// Package gf2: sentinel error set.
// Every exported operation returns one of these sentinels, wrapped with an
// operation tag via gf2Errorf, so callers match them with errors.Is.
// An inconsistent system is NOT an error: it is reported through
// Result.Solvable == false and Presses == NoSolution.

package gf2

import (
	"errors"
	"fmt"
)

var (
	// ErrCapacity is returned when a system has more buttons than the narrow
	// 64-bit row mask can hold. Buttons are never truncated; use WithWideMasks
	// or NewWideSystem for larger systems.
	ErrCapacity = errors.New("gf2: button count exceeds mask width")

	// ErrLightOutOfRange indicates that a button references a light index
	// outside [0, len(target)).
	ErrLightOutOfRange = errors.New("gf2: light index out of range")

	// ErrDimensionMismatch indicates incompatible lengths between operands,
	// e.g. an assignment whose length differs from the button count, or an
	// equation mask carrying bits at or above nButtons.
	ErrDimensionMismatch = errors.New("gf2: dimension mismatch")

	// ErrTooManyFreeVars is returned when the minimum-weight search would have
	// to enumerate more free variables than the configured ceiling.
	ErrTooManyFreeVars = errors.New("gf2: too many free variables")

	// ErrNotASolution is returned by Verify when an assignment does not
	// reproduce the target pattern.
	ErrNotASolution = errors.New("gf2: assignment does not reproduce target")

	// ErrNilSystem indicates that a nil *WideSystem receiver was used.
	ErrNilSystem = errors.New("gf2: nil system")
)

// Operation tags for uniform error wrapping.
const (
	opBuild   = "BuildEquations"
	opReduce  = "Reduce"
	opSolve   = "Solve"
	opSolveEq = "SolveEquations"
	opWide    = "NewWideSystem"
	opVerify  = "Verify"
)

// gf2Errorf wraps err with an operation tag, preserving it for errors.Is.
// Call only with a non-nil err.
func gf2Errorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
