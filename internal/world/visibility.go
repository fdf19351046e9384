package world

import "voxel-world/internal/block"

var neighbours = [6][3]int{
	{1, 0, 0}, {-1, 0, 0},
	{0, 1, 0}, {0, -1, 0},
	{0, 0, 1}, {0, 0, -1},
}

// exposed is the visibility rule: a non-air voxel with at least one of its
// 6 face neighbours outside the grid, air, or transparent. Diagonal
// neighbours are never consulted.
func exposed(g *Grid, x, y, z int) bool {
	if g.Get(x, y, z) == block.Air {
		return false
	}
	for _, n := range neighbours {
		nx, ny, nz := x+n[0], y+n[1], z+n[2]
		if !g.InBounds(nx, ny, nz) || block.Transparent(g.Get(nx, ny, nz)) {
			return true
		}
	}
	return false
}

// visibilityIndex caches exposed() per voxel, same layout as the grid
type visibilityIndex struct {
	flags []bool
	count int
}

func newVisibilityIndex(volume int) *visibilityIndex {
	return &visibilityIndex{flags: make([]bool, volume)}
}

func (v *visibilityIndex) get(i int) bool {
	return v.flags[i]
}

func (v *visibilityIndex) set(i int, visible bool) {
	if v.flags[i] == visible {
		return
	}
	v.flags[i] = visible
	if visible {
		v.count++
	} else {
		v.count--
	}
}
