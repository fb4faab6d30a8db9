// SPDX-License-Identifier: MIT
// Package gf2: row representations.
//
// A row is a vector over GF(2) indexed by button column. Two encodings share
// one elimination kernel through the row constraint:
//   - narrow: a uint64 mask, bit j = column j (at most NarrowWidth columns);
//   - wide:   a *bitset.BitSet, unbounded width.
//
// The kernel only needs bit tests, in-place style XOR and cloning; addition
// in GF(2) is XOR, multiplication is AND and never appears explicitly.

package gf2

import "github.com/bits-and-blooms/bitset"

// NarrowWidth is the number of button columns a narrow (uint64) row holds.
const NarrowWidth = 64

// row is the constraint satisfied by both encodings.
type row[M any] interface {
	bit(j int) bool
	xor(o M) M
	clone() M
}

// equation is one light: the buttons that toggle it plus its target bit.
type equation[M row[M]] struct {
	mask M
	rhs  bool
}

// cloneRows deep-copies rows so a kernel may mutate them freely.
func cloneRows[M row[M]](rows []equation[M]) []equation[M] {
	out := make([]equation[M], len(rows))
	for i, r := range rows {
		out[i] = equation[M]{mask: r.mask.clone(), rhs: r.rhs}
	}

	return out
}

// ---------- narrow ----------

type narrow uint64

func (m narrow) bit(j int) bool      { return m>>uint(j)&1 == 1 }
func (m narrow) xor(o narrow) narrow { return m ^ o }
func (m narrow) clone() narrow       { return m }

// narrowRows builds one uint64 row per light. Inputs must be validated.
func narrowRows(target []bool, buttons [][]int) []equation[narrow] {
	rows := make([]equation[narrow], len(target))
	for i, on := range target {
		rows[i].rhs = on
	}
	for j, lights := range buttons {
		for _, l := range lights {
			rows[l].mask |= narrow(1) << uint(j)
		}
	}

	return rows
}

// ---------- wide ----------

// wide wraps a bitset; xor mutates the receiver's set and returns it.
type wide struct{ bs *bitset.BitSet }

func (w wide) bit(j int) bool { return w.bs.Test(uint(j)) }

func (w wide) xor(o wide) wide {
	w.bs.InPlaceSymmetricDifference(o.bs)
	return w
}

func (w wide) clone() wide { return wide{bs: w.bs.Clone()} }

// wideRows builds one bitset row per light. Inputs must be validated.
func wideRows(target []bool, buttons [][]int) []equation[wide] {
	rows := make([]equation[wide], len(target))
	for i, on := range target {
		rows[i] = equation[wide]{mask: wide{bs: bitset.New(uint(len(buttons)))}, rhs: on}
	}
	for j, lights := range buttons {
		for _, l := range lights {
			rows[l].mask.bs.Set(uint(j))
		}
	}

	return rows
}

// incidence recovers (target, buttons) from rows, the inverse of the row
// builders. Light lists come out in ascending order.
func incidence[M row[M]](rows []equation[M], nButtons int) ([]bool, [][]int) {
	target := make([]bool, len(rows))
	buttons := make([][]int, nButtons)
	for i, r := range rows {
		target[i] = r.rhs
		for j := 0; j < nButtons; j++ {
			if r.mask.bit(j) {
				buttons[j] = append(buttons[j], i)
			}
		}
	}

	return target, buttons
}
