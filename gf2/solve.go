// SPDX-License-Identifier: MIT
// Package gf2: public solve surface.
//
// Purpose:
//   - Thin entry points that validate, build rows, eliminate and search.
//   - An inconsistent system is a defined outcome, reported as
//     Result{Solvable: false, Presses: NoSolution} with a nil error.
//
// Error policy:
//   - Input errors (ErrLightOutOfRange, ErrCapacity, ErrDimensionMismatch)
//     and ErrTooManyFreeVars are returned wrapped with the operation tag.

package gf2

import (
	"math"

	"github.com/bits-and-blooms/bitset"
)

// NoSolution is the press count reported for an inconsistent system. It is
// larger than any valid count; aggregators must test for it before summing.
const NoSolution = math.MaxInt

// Result is the outcome of one solve.
type Result struct {
	// Presses is the minimum number of pressed buttons, or NoSolution.
	Presses int
	// Pressed is a minimum-weight assignment, one entry per button; nil when
	// the system is inconsistent.
	Pressed []bool
	// Solvable reports whether any assignment reproduces the target.
	Solvable bool
	// Rank is the number of pivot rows (summed over blocks).
	Rank int
	// FreeVars is the number of non-pivot button columns (summed over blocks).
	FreeVars int
	// Blocks is the number of independently searched subsystems.
	Blocks int
}

// Solve finds the minimum number of button presses that turns an all-off
// panel into target. buttons[j] lists the lights button j toggles.
//
// Options:
//   - WithWideMasks   lifts the 64-button limit (bitset rows).
//   - WithDecompose   searches independent button blocks separately.
//   - WithMaxFreeVars bounds the enumeration.
//
// Errors:
//   - ErrLightOutOfRange if a button references a light outside the target.
//   - ErrCapacity        if len(buttons) > NarrowWidth without WithWideMasks.
//   - ErrTooManyFreeVars if the search would exceed the enumeration ceiling.
//
// Complexity: O(nButtons · nLights) elimination + O(2^k · rank) search.
func Solve(target []bool, buttons [][]int, opts ...Option) (Result, error) {
	o := gatherOptions(opts...)
	if err := validateButtons(len(target), buttons); err != nil {
		return Result{}, gf2Errorf(opSolve, err)
	}

	var (
		res Result
		err error
	)
	if o.wide {
		res, err = solveWith(target, buttons, o, wideRows)
	} else {
		if err = validateNarrow(len(buttons)); err != nil {
			return Result{}, gf2Errorf(opSolve, err)
		}
		res, err = solveWith(target, buttons, o, narrowRows)
	}
	if err != nil {
		return Result{}, gf2Errorf(opSolve, err)
	}

	return res, nil
}

// MinPresses is Solve reduced to the scalar count (NoSolution if none).
func MinPresses(target []bool, buttons [][]int, opts ...Option) (int, error) {
	res, err := Solve(target, buttons, opts...)
	if err != nil {
		return 0, err
	}

	return res.Presses, nil
}

// SolveEquations solves a system already expressed as equations over
// nButtons columns. eqs is not modified. WithWideMasks has no effect here.
//
// Errors:
//   - ErrCapacity          if nButtons is outside [0, NarrowWidth].
//   - ErrDimensionMismatch if a mask has bits at or above nButtons.
//   - ErrTooManyFreeVars   as in Solve.
func SolveEquations(eqs []Equation, nButtons int, opts ...Option) (Result, error) {
	o := gatherOptions(opts...)
	if err := validateEquations(eqs, nButtons); err != nil {
		return Result{}, gf2Errorf(opSolveEq, err)
	}

	rows := fromEquations(eqs)
	var (
		res Result
		err error
	)
	if o.decompose {
		target, buttons := incidence(rows, nButtons)
		res, err = solveBlocks(target, buttons, o, narrowRows)
	} else {
		res, err = solveRows(rows, nButtons, o)
	}
	if err != nil {
		return Result{}, gf2Errorf(opSolveEq, err)
	}

	return res, nil
}

// ---------- WideSystem ----------

// WideSystem is a system stored as bitset rows, for panels with more than
// NarrowWidth buttons. It is immutable; Solve works on a copy.
type WideSystem struct {
	rows     []equation[wide]
	nButtons int
}

// NewWideSystem builds a bitset-backed system.
// Errors: ErrLightOutOfRange.
func NewWideSystem(target []bool, buttons [][]int) (*WideSystem, error) {
	if err := validateButtons(len(target), buttons); err != nil {
		return nil, gf2Errorf(opWide, err)
	}

	return &WideSystem{rows: wideRows(target, buttons), nButtons: len(buttons)}, nil
}

// Lights returns the number of equations.
func (s *WideSystem) Lights() int { return len(s.rows) }

// Buttons returns the number of columns.
func (s *WideSystem) Buttons() int { return s.nButtons }

// Row returns a copy of light i's button set and its target bit.
func (s *WideSystem) Row(i int) (*bitset.BitSet, bool, error) {
	if s == nil {
		return nil, false, ErrNilSystem
	}
	if i < 0 || i >= len(s.rows) {
		return nil, false, ErrLightOutOfRange
	}

	return s.rows[i].mask.bs.Clone(), s.rows[i].rhs, nil
}

// Solve runs elimination and the minimum-weight search on a copy of s.
// WithWideMasks has no effect here; the rows are already wide.
func (s *WideSystem) Solve(opts ...Option) (Result, error) {
	if s == nil {
		return Result{}, gf2Errorf(opSolve, ErrNilSystem)
	}
	o := gatherOptions(opts...)

	var (
		res Result
		err error
	)
	if o.decompose {
		target, buttons := incidence(s.rows, s.nButtons)
		res, err = solveBlocks(target, buttons, o, wideRows)
	} else {
		res, err = solveRows(cloneRows(s.rows), s.nButtons, o)
	}
	if err != nil {
		return Result{}, gf2Errorf(opSolve, err)
	}

	return res, nil
}

// ---------- kernels ----------

// solveWith dispatches between whole-system and per-block search.
func solveWith[M row[M]](target []bool, buttons [][]int, o Options, build func([]bool, [][]int) []equation[M]) (Result, error) {
	if o.decompose {
		return solveBlocks(target, buttons, o, build)
	}

	return solveRows(build(target, buttons), len(buttons), o)
}

// solveRows eliminates rows in place and searches the solution space.
func solveRows[M row[M]](rows []equation[M], nButtons int, o Options) (Result, error) {
	ech := eliminate(rows, nButtons)
	res := Result{Rank: ech.Rank, FreeVars: len(ech.Free), Blocks: 1}
	if !ech.Consistent {
		res.Presses = NoSolution
		return res, nil
	}

	pressed, w, err := minWeight(rows, ech, nButtons, o.maxFreeVars)
	if err != nil {
		return Result{}, err
	}
	res.Presses, res.Pressed, res.Solvable = w, pressed, true

	return res, nil
}

// reducedBlock holds one block between elimination and search.
type reducedBlock[M row[M]] struct {
	rows []equation[M]
	ech  Echelon
}

// solveBlocks eliminates every block first, so an inconsistent block yields
// NoSolution regardless of the enumeration ceiling, then searches each block
// and stitches the assignments back together.
func solveBlocks[M row[M]](target []bool, buttons [][]int, o Options, build func([]bool, [][]int) []equation[M]) (Result, error) {
	blocks, untouched := partition(len(target), buttons)
	res := Result{Blocks: len(blocks), Solvable: true}

	for _, l := range untouched {
		if target[l] {
			res.Solvable = false
		}
	}

	work := make([]reducedBlock[M], len(blocks))
	for i, b := range blocks {
		subTarget, subButtons := b.subsystem(target, buttons)
		rows := build(subTarget, subButtons)
		ech := eliminate(rows, len(subButtons))
		work[i] = reducedBlock[M]{rows: rows, ech: ech}
		res.Rank += ech.Rank
		res.FreeVars += len(ech.Free)
		if !ech.Consistent {
			res.Solvable = false
		}
	}
	if !res.Solvable {
		res.Presses = NoSolution
		return res, nil
	}

	res.Pressed = make([]bool, len(buttons))
	for i, b := range blocks {
		pressed, w, err := minWeight(work[i].rows, work[i].ech, len(b.buttons), o.maxFreeVars)
		if err != nil {
			return Result{}, err
		}
		res.Presses += w
		for j, p := range pressed {
			res.Pressed[b.buttons[j]] = p
		}
	}

	return res, nil
}

// ---------- verification ----------

// Verify applies pressed to an all-off panel and checks the result equals
// target: A·x = target over GF(2).
//
// Errors:
//   - ErrDimensionMismatch if len(pressed) != len(buttons).
//   - ErrLightOutOfRange   if a button references a light outside target.
//   - ErrNotASolution      if some light ends in the wrong state.
func Verify(target []bool, buttons [][]int, pressed []bool) error {
	if len(pressed) != len(buttons) {
		return gf2Errorf(opVerify, ErrDimensionMismatch)
	}
	if err := validateButtons(len(target), buttons); err != nil {
		return gf2Errorf(opVerify, err)
	}

	// A light listed twice by one button is toggled once, as in the builder.
	state := make([]bool, len(target))
	seen := make(map[int]int, len(target)) // light → last button that toggled it
	for j, lights := range buttons {
		if !pressed[j] {
			continue
		}
		for _, l := range lights {
			if last, ok := seen[l]; ok && last == j {
				continue
			}
			seen[l] = j
			state[l] = !state[l]
		}
	}
	for l := range target {
		if state[l] != target[l] {
			return gf2Errorf(opVerify, ErrNotASolution)
		}
	}

	return nil
}
