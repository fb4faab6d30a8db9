// SPDX-License-Identifier: MIT
// Package gf2_test contains unit tests for the minimum-press solver.
package gf2_test

import (
	"errors"
	"fmt"
	"math/rand"
	"testing"

	"github.com/katalvlaran/lights/gf2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// modes lists every solver configuration that must agree on the minimum.
var modes = []struct {
	name string
	opts []gf2.Option
}{
	{"narrow", nil},
	{"wide", []gf2.Option{gf2.WithWideMasks()}},
	{"narrow+decompose", []gf2.Option{gf2.WithDecompose()}},
	{"wide+decompose", []gf2.Option{gf2.WithWideMasks(), gf2.WithDecompose()}},
}

func TestSolve_Scenarios(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		target  []bool
		buttons [][]int
		want    int
	}{
		{"single combined button", pattern("##.."), [][]int{{0}, {0, 1}}, 1},
		{"example record 1", pattern(".##."), [][]int{{3}, {1, 3}, {2}, {2, 3}, {0, 2}, {0, 1}}, 2},
		{"example record 2", pattern("...#."), [][]int{{0, 2, 3, 4}, {2, 3}, {0, 4}, {0, 1, 2}, {1, 2, 3, 4}}, 3},
		{"example record 3", pattern(".###.#"), [][]int{{0, 1, 2, 3, 4}, {0, 3, 4}, {0, 1, 2, 4, 5}, {1, 2}}, 2},
		{"one light no buttons", pattern("#"), nil, gf2.NoSolution},
		{"all off no buttons", pattern("...."), nil, 0},
		{"no lights no buttons", nil, nil, 0},
		{"no lights empty buttons", nil, [][]int{{}, {}}, 0},
		{"already dark", pattern("..."), [][]int{{0, 1}, {2}}, 0},
		{"parity conflict", pattern("#."), [][]int{{0, 1}}, gf2.NoSolution},
	}

	for _, m := range modes {
		for _, tc := range tests {
			m, tc := m, tc
			t.Run(m.name+"/"+tc.name, func(t *testing.T) {
				t.Parallel()
				res, err := gf2.Solve(tc.target, tc.buttons, m.opts...)
				require.NoError(t, err)
				assert.Equal(t, tc.want, res.Presses)
				assert.Equal(t, tc.want != gf2.NoSolution, res.Solvable)
				if res.Solvable {
					require.Len(t, res.Pressed, len(tc.buttons))
					assert.Equal(t, tc.want, weight(res.Pressed))
					require.NoError(t, gf2.Verify(tc.target, tc.buttons, res.Pressed))
				} else {
					assert.Nil(t, res.Pressed)
				}
			})
		}
	}
}

// TestSolve_ExampleAggregate sums the three example records.
func TestSolve_ExampleAggregate(t *testing.T) {
	t.Parallel()

	records := []struct {
		target  []bool
		buttons [][]int
	}{
		{pattern(".##."), [][]int{{3}, {1, 3}, {2}, {2, 3}, {0, 2}, {0, 1}}},
		{pattern("...#."), [][]int{{0, 2, 3, 4}, {2, 3}, {0, 4}, {0, 1, 2}, {1, 2, 3, 4}}},
		{pattern(".###.#"), [][]int{{0, 1, 2, 3, 4}, {0, 3, 4}, {0, 1, 2, 4, 5}, {1, 2}}},
	}
	total := 0
	for _, rec := range records {
		n, err := gf2.MinPresses(rec.target, rec.buttons)
		require.NoError(t, err)
		total += n
	}
	assert.Equal(t, 7, total)
}

// TestSolve_MatchesBruteForce compares every mode with exhaustive search and
// checks the returned plan reproduces the target.
func TestSolve_MatchesBruteForce(t *testing.T) {
	t.Parallel()

	r := rand.New(rand.NewSource(42))
	for iter := 0; iter < 300; iter++ {
		target, buttons := randomPanel(r, r.Intn(9), r.Intn(11))
		want := bruteForceMin(t, target, buttons)

		for _, m := range modes {
			res, err := gf2.Solve(target, buttons, m.opts...)
			require.NoError(t, err)
			require.Equalf(t, want, res.Presses, "iter %d mode %s: target=%v buttons=%v", iter, m.name, target, buttons)
			if want == gf2.NoSolution {
				continue
			}
			require.NoErrorf(t, gf2.Verify(target, buttons, res.Pressed), "iter %d mode %s", iter, m.name)
			require.Equal(t, want, weight(res.Pressed))
		}
	}
}

func TestSolve_Idempotent(t *testing.T) {
	t.Parallel()

	target := pattern(".###.#")
	buttons := [][]int{{0, 1, 2, 3, 4}, {0, 3, 4}, {0, 1, 2, 4, 5}, {1, 2}}
	first, err := gf2.Solve(target, buttons)
	require.NoError(t, err)
	for i := 0; i < 3; i++ {
		again, err := gf2.Solve(target, buttons)
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}

func TestSolve_Stats(t *testing.T) {
	t.Parallel()

	// Two independent halves: {0,1} over lights 0..1 and {2} over light 2,
	// plus button 3 touching nothing.
	target := pattern("#.#")
	buttons := [][]int{{0}, {0, 1}, {2}, {}}

	res, err := gf2.Solve(target, buttons)
	require.NoError(t, err)
	assert.Equal(t, 3, res.Rank)
	assert.Equal(t, 1, res.FreeVars)
	assert.Equal(t, 1, res.Blocks)
	assert.Equal(t, 2, res.Presses)
	assert.Equal(t, []bool{true, false, true, false}, res.Pressed)

	res, err = gf2.Solve(target, buttons, gf2.WithDecompose())
	require.NoError(t, err)
	assert.Equal(t, 3, res.Rank)
	assert.Equal(t, 1, res.FreeVars)
	assert.Equal(t, 3, res.Blocks)
	assert.Equal(t, []bool{true, false, true, false}, res.Pressed)
}

func TestSolve_Capacity(t *testing.T) {
	t.Parallel()

	// 70 lights, button j toggles light j: the unique plan presses every lit light.
	const n = 70
	target := make([]bool, n)
	buttons := make([][]int, n)
	lit := 0
	for j := range buttons {
		buttons[j] = []int{j}
		if j%3 == 0 {
			target[j] = true
			lit++
		}
	}

	_, err := gf2.Solve(target, buttons)
	require.True(t, errors.Is(err, gf2.ErrCapacity), err)
	_, err = gf2.MinPresses(target, buttons)
	require.True(t, errors.Is(err, gf2.ErrCapacity), err)

	res, err := gf2.Solve(target, buttons, gf2.WithWideMasks())
	require.NoError(t, err)
	assert.Equal(t, lit, res.Presses)
	require.NoError(t, gf2.Verify(target, buttons, res.Pressed))
}

func TestSolve_LightOutOfRange(t *testing.T) {
	t.Parallel()

	for _, m := range modes {
		_, err := gf2.Solve(pattern("#."), [][]int{{0, 2}}, m.opts...)
		require.Truef(t, errors.Is(err, gf2.ErrLightOutOfRange), "%s: %v", m.name, err)
	}
}

func TestSolve_FreeVariableCeiling(t *testing.T) {
	t.Parallel()

	// One light, four buttons all toggling it: three free columns interact
	// with the single pivot row.
	target := pattern("#")
	buttons := [][]int{{0}, {0}, {0}, {0}}

	_, err := gf2.Solve(target, buttons, gf2.WithMaxFreeVars(2))
	require.True(t, errors.Is(err, gf2.ErrTooManyFreeVars), err)

	res, err := gf2.Solve(target, buttons, gf2.WithMaxFreeVars(3))
	require.NoError(t, err)
	assert.Equal(t, 1, res.Presses)
	assert.Equal(t, []bool{true, false, false, false}, res.Pressed)

	// An inconsistent system is reported before any enumeration.
	res, err = gf2.Solve(pattern("#."), [][]int{{}, {}, {}, {1}}, gf2.WithMaxFreeVars(0))
	require.NoError(t, err)
	assert.False(t, res.Solvable)

	// Free columns that touch no pivot row are not enumerated.
	res, err = gf2.Solve(nil, make([][]int, 40), gf2.WithMaxFreeVars(0))
	require.NoError(t, err)
	assert.Equal(t, 0, res.Presses)
	assert.Equal(t, 40, res.FreeVars)
}

// TestSolve_DecomposeLiftsCeiling shows the per-block ceiling: eight
// disjoint blocks with two free columns each exceed a global ceiling of 8
// but fit per block.
func TestSolve_DecomposeLiftsCeiling(t *testing.T) {
	t.Parallel()

	const blocks = 8
	target := make([]bool, blocks)
	var buttons [][]int
	for b := 0; b < blocks; b++ {
		target[b] = true
		for k := 0; k < 3; k++ {
			buttons = append(buttons, []int{b})
		}
	}

	_, err := gf2.Solve(target, buttons, gf2.WithMaxFreeVars(8))
	require.True(t, errors.Is(err, gf2.ErrTooManyFreeVars), err)

	res, err := gf2.Solve(target, buttons, gf2.WithMaxFreeVars(8), gf2.WithDecompose())
	require.NoError(t, err)
	assert.Equal(t, blocks, res.Presses)
	assert.Equal(t, blocks, res.Blocks)
	require.NoError(t, gf2.Verify(target, buttons, res.Pressed))
}

func TestSolveEquations(t *testing.T) {
	t.Parallel()

	target := pattern("...#.")
	buttons := [][]int{{0, 2, 3, 4}, {2, 3}, {0, 4}, {0, 1, 2}, {1, 2, 3, 4}}
	eqs, err := gf2.BuildEquations(target, buttons)
	require.NoError(t, err)
	orig := append([]gf2.Equation(nil), eqs...)

	for _, opts := range [][]gf2.Option{nil, {gf2.WithDecompose()}} {
		res, err := gf2.SolveEquations(eqs, len(buttons), opts...)
		require.NoError(t, err)
		assert.Equal(t, 3, res.Presses)
		require.NoError(t, gf2.Verify(target, buttons, res.Pressed))
	}
	assert.Equal(t, orig, eqs)

	_, err = gf2.SolveEquations([]gf2.Equation{{Mask: 0b10}}, 1)
	require.True(t, errors.Is(err, gf2.ErrDimensionMismatch), err)
}

func TestWideSystem(t *testing.T) {
	t.Parallel()

	target := pattern(".##.")
	buttons := [][]int{{3}, {1, 3}, {2}, {2, 3}, {0, 2}, {0, 1}}
	s, err := gf2.NewWideSystem(target, buttons)
	require.NoError(t, err)
	assert.Equal(t, 4, s.Lights())
	assert.Equal(t, 6, s.Buttons())

	row, rhs, err := s.Row(2)
	require.NoError(t, err)
	assert.True(t, rhs)
	assert.Equal(t, uint(3), row.Count())
	assert.True(t, row.Test(2) && row.Test(3) && row.Test(4))

	// Solving twice yields the same result: the system is not consumed.
	for i := 0; i < 2; i++ {
		res, err := s.Solve()
		require.NoError(t, err)
		assert.Equal(t, 2, res.Presses)
	}
	res, err := s.Solve(gf2.WithDecompose())
	require.NoError(t, err)
	assert.Equal(t, 2, res.Presses)

	_, _, err = s.Row(4)
	require.True(t, errors.Is(err, gf2.ErrLightOutOfRange))

	var nilSys *gf2.WideSystem
	_, err = nilSys.Solve()
	require.True(t, errors.Is(err, gf2.ErrNilSystem))

	_, err = gf2.NewWideSystem(target, [][]int{{9}})
	require.True(t, errors.Is(err, gf2.ErrLightOutOfRange))
}

func TestVerify(t *testing.T) {
	t.Parallel()

	target := pattern("##..")
	buttons := [][]int{{0}, {0, 1}}

	require.NoError(t, gf2.Verify(target, buttons, []bool{false, true}))

	err := gf2.Verify(target, buttons, []bool{true, false})
	require.True(t, errors.Is(err, gf2.ErrNotASolution), err)

	err = gf2.Verify(target, buttons, []bool{true})
	require.True(t, errors.Is(err, gf2.ErrDimensionMismatch), err)

	err = gf2.Verify(target, [][]int{{7}}, []bool{true})
	require.True(t, errors.Is(err, gf2.ErrLightOutOfRange), err)

	// A repeated light in one button toggles it once.
	require.NoError(t, gf2.Verify(pattern("#"), [][]int{{0, 0}}, []bool{true}))
}

func BenchmarkSolve(b *testing.B) {
	r := rand.New(rand.NewSource(1))
	for _, size := range []struct{ lights, buttons int }{{10, 13}, {10, 20}} {
		target, buttons := randomPanel(r, size.lights, size.buttons)
		b.Run(fmt.Sprintf("%dx%d", size.lights, size.buttons), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				_, _ = gf2.Solve(target, buttons)
			}
		})
	}
}
