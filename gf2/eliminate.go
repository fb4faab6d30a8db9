// SPDX-License-Identifier: MIT
// Package gf2: Gauss–Jordan elimination over GF(2).
//
// Purpose:
//   - Bring a system to reduced row-echelon form where addition is XOR.
//   - Record the pivot map (row → column) and the free columns.
//   - Classify the system as consistent or inconsistent.
//
// Determinism:
//   - Columns are processed 0..nButtons-1 ascending; the pivot for a column
//     is the first row at or below the cursor with that bit set.
//   - The pivot row is XORed into every OTHER row with the bit set (above and
//     below), so each pivot column ends with exactly one set bit. The search
//     relies on this when back-substituting.

package gf2

// NoPivot marks a row of Echelon.PivotCol that pivots on no column.
const NoPivot = -1

// Echelon describes a system after elimination.
type Echelon struct {
	// Rank is the number of pivot rows; rows [0, Rank) are pivot rows.
	Rank int
	// PivotCol[r] is the column row r pivots on, or NoPivot.
	PivotCol []int
	// Free lists the non-pivot columns, ascending.
	Free []int
	// Consistent is false iff some row at index >= Rank has RHS set.
	Consistent bool
}

// IsFree reports whether column c has no pivot row.
func (e Echelon) IsFree(c int) bool {
	for _, f := range e.Free {
		if f == c {
			return true
		}
	}

	return false
}

// eliminate reduces rows in place and returns the echelon summary.
//
// Implementation:
//   - Stage 1: for each column, find a pivot row at or below the cursor.
//   - Stage 2: swap it into the cursor position and record the pivot.
//   - Stage 3: XOR it into every other row with the column bit set.
//   - Stage 4: advance the cursor; columns without a pivot become free.
//   - Stage 5: rows at or beyond the cursor have zero masks; any RHS=true
//     among them makes the system inconsistent.
//
// Complexity: O(nButtons · nLights · rowCost), rowCost = O(1) narrow,
// O(nButtons/64) wide.
func eliminate[M row[M]](rows []equation[M], nButtons int) Echelon {
	nLights := len(rows)
	pivotCol := make([]int, nLights)
	for r := range pivotCol {
		pivotCol[r] = NoPivot
	}
	free := make([]int, 0, nButtons)

	next := 0 // pivot-row cursor
	for col := 0; col < nButtons; col++ {
		p := NoPivot
		for r := next; r < nLights; r++ {
			if rows[r].mask.bit(col) {
				p = r
				break
			}
		}
		if p == NoPivot {
			free = append(free, col)
			continue
		}

		rows[next], rows[p] = rows[p], rows[next]
		pivotCol[next] = col

		for r := 0; r < nLights; r++ {
			if r != next && rows[r].mask.bit(col) {
				rows[r].mask = rows[r].mask.xor(rows[next].mask)
				rows[r].rhs = rows[r].rhs != rows[next].rhs
			}
		}
		next++
	}

	consistent := true
	for r := next; r < nLights; r++ {
		if rows[r].rhs {
			consistent = false
			break
		}
	}

	return Echelon{Rank: next, PivotCol: pivotCol, Free: free, Consistent: consistent}
}

// Reduce runs elimination on a copy of eqs and returns the echelon summary
// together with the reduced equations. eqs is not modified.
//
// Errors:
//   - ErrCapacity          if nButtons is outside [0, NarrowWidth].
//   - ErrDimensionMismatch if a mask has bits at or above nButtons.
func Reduce(eqs []Equation, nButtons int) (Echelon, []Equation, error) {
	if err := validateEquations(eqs, nButtons); err != nil {
		return Echelon{}, nil, gf2Errorf(opReduce, err)
	}
	rows := fromEquations(eqs)
	ech := eliminate(rows, nButtons)

	return ech, toEquations(rows), nil
}
