// SPDX-License-Identifier: MIT
// Package gf2: block decomposition.
// Two buttons belong to the same block when some light is toggled by both
// (transitively). Blocks share no lights, so their minima add up and each
// can be searched on its own.

package gf2

// disjointSet is a union-find over dense indices [0, n), with path halving
// and union by rank.
type disjointSet struct {
	parent []int
	rank   []uint8
}

func newDisjointSet(n int) *disjointSet {
	d := &disjointSet{parent: make([]int, n), rank: make([]uint8, n)}
	for i := range d.parent {
		d.parent[i] = i
	}

	return d
}

// find returns the root of x, halving the path on the way up.
func (d *disjointSet) find(x int) int {
	for d.parent[x] != x {
		d.parent[x] = d.parent[d.parent[x]]
		x = d.parent[x]
	}

	return x
}

// union merges the sets of a and b; the higher-rank root wins.
func (d *disjointSet) union(a, b int) {
	ra, rb := d.find(a), d.find(b)
	if ra == rb {
		return
	}
	if d.rank[ra] < d.rank[rb] {
		ra, rb = rb, ra
	}
	d.parent[rb] = ra
	if d.rank[ra] == d.rank[rb] {
		d.rank[ra]++
	}
}

// block is an independent subsystem: global light and button indices,
// both ascending.
type block struct {
	lights  []int
	buttons []int
}

// subsystem remaps the block onto local indices.
func (b block) subsystem(target []bool, buttons [][]int) ([]bool, [][]int) {
	local := make(map[int]int, len(b.lights))
	subTarget := make([]bool, len(b.lights))
	for i, l := range b.lights {
		local[l] = i
		subTarget[i] = target[l]
	}
	subButtons := make([][]int, len(b.buttons))
	for j, btn := range b.buttons {
		mapped := make([]int, len(buttons[btn]))
		for k, l := range buttons[btn] {
			mapped[k] = local[l]
		}
		subButtons[j] = mapped
	}

	return subTarget, subButtons
}

// partition splits (nLights, buttons) into blocks ordered by their lowest
// button index. It also returns the lights no button touches; those are
// fixed and only their target bit matters.
func partition(nLights int, buttons [][]int) ([]block, []int) {
	ds := newDisjointSet(len(buttons))
	owner := make([]int, nLights) // first button touching each light
	for l := range owner {
		owner[l] = NoPivot
	}
	for j, lights := range buttons {
		for _, l := range lights {
			if owner[l] == NoPivot {
				owner[l] = j
			} else {
				ds.union(owner[l], j)
			}
		}
	}

	index := make(map[int]int) // root → position in blocks
	var blocks []block
	for j := range buttons {
		root := ds.find(j)
		pos, ok := index[root]
		if !ok {
			pos = len(blocks)
			index[root] = pos
			blocks = append(blocks, block{})
		}
		blocks[pos].buttons = append(blocks[pos].buttons, j)
	}

	var untouched []int
	for l, j := range owner {
		if j == NoPivot {
			untouched = append(untouched, l)
			continue
		}
		pos := index[ds.find(j)]
		blocks[pos].lights = append(blocks[pos].lights, l)
	}

	return blocks, untouched
}
