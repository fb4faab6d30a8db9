// SPDX-License-Identifier: MIT

package gf2

// Test bridge: exposes unexported kernels to gf2_test only.

// Block is a test-visible copy of block.
type Block struct {
	Lights  []int
	Buttons []int
}

// PartitionForTest runs partition and converts its blocks.
func PartitionForTest(nLights int, buttons [][]int) ([]Block, []int) {
	blocks, untouched := partition(nLights, buttons)
	out := make([]Block, len(blocks))
	for i, b := range blocks {
		out[i] = Block{Lights: b.lights, Buttons: b.buttons}
	}

	return out, untouched
}

// UnionFindForTest exposes disjointSet as closures.
func UnionFindForTest(n int) (find func(int) int, union func(int, int)) {
	d := newDisjointSet(n)

	return d.find, d.union
}

// GatherOptionsForTest exposes gatherOptions.
var GatherOptionsForTest = gatherOptions
