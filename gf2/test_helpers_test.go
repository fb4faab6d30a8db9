// SPDX-License-Identifier: MIT
// Package gf2_test contains test helpers
//
// Purpose:
//   - Deterministic random panels for property tests.
//   - A brute-force oracle over all 2^m press plans.

package gf2_test

import (
	"math/bits"
	"math/rand"
	"testing"

	"github.com/katalvlaran/lights/gf2"
)

// pattern converts "#"/"." notation into a target vector.
func pattern(s string) []bool {
	out := make([]bool, len(s))
	for i, c := range s {
		out[i] = c == '#'
	}

	return out
}

// randomPanel builds a panel with nLights lights and nButtons buttons;
// each button flips up to nLights random lights (duplicates allowed).
func randomPanel(r *rand.Rand, nLights, nButtons int) ([]bool, [][]int) {
	target := make([]bool, nLights)
	for i := range target {
		target[i] = r.Intn(2) == 1
	}
	buttons := make([][]int, nButtons)
	for j := range buttons {
		if nLights == 0 {
			continue
		}
		k := r.Intn(nLights + 1)
		for ; k > 0; k-- {
			buttons[j] = append(buttons[j], r.Intn(nLights))
		}
	}

	return target, buttons
}

// bruteForceMin enumerates every press plan and returns the minimum weight
// among those reproducing target, or gf2.NoSolution. Only for small panels.
func bruteForceMin(t *testing.T, target []bool, buttons [][]int) int {
	t.Helper()
	if len(buttons) > 20 {
		t.Fatalf("bruteForceMin: %d buttons is too many", len(buttons))
	}

	effects := make([]uint64, len(buttons))
	for j, lights := range buttons {
		for _, l := range lights {
			effects[j] |= 1 << uint(l)
		}
	}
	var want uint64
	for i, on := range target {
		if on {
			want |= 1 << uint(i)
		}
	}

	best := gf2.NoSolution
	for x := uint64(0); x < 1<<uint(len(buttons)); x++ {
		var state uint64
		for j := range buttons {
			if x>>uint(j)&1 == 1 {
				state ^= effects[j]
			}
		}
		if state == want && bits.OnesCount64(x) < best {
			best = bits.OnesCount64(x)
		}
	}

	return best
}

// weight counts pressed buttons.
func weight(pressed []bool) int {
	n := 0
	for _, p := range pressed {
		if p {
			n++
		}
	}

	return n
}
