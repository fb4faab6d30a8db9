// SPDX-License-Identifier: MIT
// Package gf2: Equation Builder.
//
// Purpose:
//   - Convert a record (target pattern + button-to-light mappings) into one
//     equation per light: a bitmask over buttons plus the light's target bit.
//
// Contract:
//   - bit j of Equation.Mask is set iff buttons[j] contains the light index;
//   - Equation.RHS equals target[light];
//   - a button's light list is a set, so repeated indices set the same bit.
//
// The transformation is pure: inputs are never mutated.

package gf2

import "math/bits"

// Equation is one light of the system: the buttons that toggle it and the
// state it must end in.
type Equation struct {
	Mask uint64 // bit j set iff button j toggles this light
	RHS  bool   // target state of this light
}

// Buttons returns the button indices present in the mask, ascending.
func (e Equation) Buttons() []int {
	out := make([]int, 0, bits.OnesCount64(e.Mask))
	for m := e.Mask; m != 0; m &= m - 1 {
		out = append(out, bits.TrailingZeros64(m))
	}

	return out
}

// BuildEquations produces len(target) equations from the target pattern and
// the per-button light lists.
//
// Errors:
//   - ErrCapacity        if len(buttons) > NarrowWidth (no silent truncation).
//   - ErrLightOutOfRange if any light index is outside [0, len(target)).
//
// Complexity: O(n_lights + total indices).
func BuildEquations(target []bool, buttons [][]int) ([]Equation, error) {
	if err := validateNarrow(len(buttons)); err != nil {
		return nil, gf2Errorf(opBuild, err)
	}
	if err := validateButtons(len(target), buttons); err != nil {
		return nil, gf2Errorf(opBuild, err)
	}

	return toEquations(narrowRows(target, buttons)), nil
}

// toEquations exports narrow rows.
func toEquations(rows []equation[narrow]) []Equation {
	eqs := make([]Equation, len(rows))
	for i, r := range rows {
		eqs[i] = Equation{Mask: uint64(r.mask), RHS: r.rhs}
	}

	return eqs
}

// fromEquations imports validated equations as narrow rows.
func fromEquations(eqs []Equation) []equation[narrow] {
	rows := make([]equation[narrow], len(eqs))
	for i, eq := range eqs {
		rows[i] = equation[narrow]{mask: narrow(eq.Mask), rhs: eq.RHS}
	}

	return rows
}
