// Package gf2 solves toggle-light panels exactly, as linear systems over the
// two-element field GF(2).
//
// What & Why
//
//   - A panel has n lights and m buttons; button j flips a fixed set of
//     lights. Pressing a button twice cancels out and order never matters,
//     so a press plan is a 0/1 vector x over the buttons.
//
//   - The plan reproduces a target pattern t iff A·x = t (mod 2), where
//     A[i][j] = 1 iff button j flips light i. Among all such x we want the
//     one with the fewest ones (minimum Hamming weight).
//
// Algorithm
//
//   - BuildEquations turns (target, buttons) into one Equation per light: a
//     uint64 mask over buttons plus the target bit.
//
//   - Gauss–Jordan elimination (XOR row reduction) brings the system to
//     reduced row-echelon form, recording which column each row pivots on.
//     A zero row with target bit 1 means no plan exists.
//
//   - Columns without a pivot are free. Every solution is fixed by the free
//     values; the search enumerates all 2^k of them, back-substitutes the
//     pivots and keeps the lightest plan.
//
// Complexity
//
//   - Elimination: O(m · n) row operations.
//   - Search: O(2^k · rank), exponential in the free-variable count k. The
//     WithMaxFreeVars ceiling turns a runaway search into ErrTooManyFreeVars.
//   - WithDecompose splits the panel into independent button blocks, so the
//     cost becomes the sum of 2^k_i over blocks instead of 2^(Σ k_i).
//
// Representation
//
//   - Narrow rows are uint64 masks; more than 64 buttons is ErrCapacity,
//     never a silent truncation.
//   - Wide rows (WithWideMasks, NewWideSystem) use bits-and-blooms/bitset and
//     have no width limit.
//
// Outcomes
//
//   - A solvable panel returns Result{Solvable: true, Presses: k, Pressed: x}.
//   - An unsolvable panel is not an error: Result{Solvable: false,
//     Presses: NoSolution}.
//
// See example_test.go for usage.
package gf2
