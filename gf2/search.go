// SPDX-License-Identifier: MIT
// Package gf2: minimum-weight search over the solution space.
//
// After full elimination every solution is parametrised by the free
// columns: each pivot variable equals its row's RHS XOR the free variables
// set in that row. The search enumerates all 2^k free assignments and keeps
// the one with the fewest pressed buttons (pivots + free).
//
// A free column that appears in no pivot row never changes any light, so
// pressing it only adds weight; such columns are fixed to false and left out
// of the enumeration. This keeps the cost exponential only in the free
// columns that actually interact with the pivots.

package gf2

import "math/bits"

// pivotRow is a pivot row projected onto the enumerated free columns.
type pivotRow struct {
	col  int    // pivot column
	free uint64 // bit k set iff enumerated free column k is set in the row
	rhs  bool
}

// minWeight returns the minimum-weight assignment of a consistent, reduced
// system and its weight. Ties resolve to the first minimum in ascending
// free-mask order.
//
// Errors:
//   - ErrTooManyFreeVars if more than maxFree free columns interact with
//     pivot rows.
//
// Complexity: O(2^k · rank) for k enumerated free columns.
func minWeight[M row[M]](rows []equation[M], ech Echelon, nButtons, maxFree int) ([]bool, int, error) {
	// Stage 1: keep only the free columns that touch a pivot row.
	active := make([]int, 0, len(ech.Free))
	for _, c := range ech.Free {
		for r := 0; r < ech.Rank; r++ {
			if rows[r].mask.bit(c) {
				active = append(active, c)
				break
			}
		}
	}
	if len(active) > maxFree {
		return nil, 0, ErrTooManyFreeVars
	}

	// Stage 2: project pivot rows onto the active free columns.
	pivots := make([]pivotRow, ech.Rank)
	for r := 0; r < ech.Rank; r++ {
		pr := pivotRow{col: ech.PivotCol[r], rhs: rows[r].rhs}
		for k, c := range active {
			if rows[r].mask.bit(c) {
				pr.free |= 1 << uint(k)
			}
		}
		pivots[r] = pr
	}

	// Stage 3: enumerate free assignments, back-substituting the pivots.
	best, bestMask := ech.Rank+len(active)+1, uint64(0)
	for f := uint64(0); f < uint64(1)<<uint(len(active)); f++ {
		w := bits.OnesCount64(f)
		for _, pr := range pivots {
			if w >= best {
				break
			}
			if pivotValue(pr, f) {
				w++
			}
		}
		if w < best {
			best, bestMask = w, f
		}
	}

	// Stage 4: materialise the winning assignment.
	pressed := make([]bool, nButtons)
	for k, c := range active {
		pressed[c] = bestMask>>uint(k)&1 == 1
	}
	for _, pr := range pivots {
		pressed[pr.col] = pivotValue(pr, bestMask)
	}

	return pressed, best, nil
}

// pivotValue back-substitutes one pivot variable under free assignment f.
func pivotValue(pr pivotRow, f uint64) bool {
	return pr.rhs != (bits.OnesCount64(pr.free&f)&1 == 1)
}
