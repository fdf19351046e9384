package world

import "voxel-world/internal/block"

const (
	minTreeHeight = 5
	maxTreeHeight = 7
)

type canopyLayer struct {
	dy     int // above the trunk base
	radius int
	plus   bool // plus-shaped; otherwise a square without the trunk column
}

// canopy returns the leaf layers of a tree h blocks tall. Taller trees get a
// narrow ring under the top before the wide tiers.
func canopy(h int) []canopyLayer {
	if h >= 6 {
		return []canopyLayer{
			{dy: h - 1, radius: 1, plus: true},
			{dy: h - 2, radius: 1},
			{dy: h - 3, radius: 2},
			{dy: h - 4, radius: 2},
		}
	}
	return []canopyLayer{
		{dy: h - 1, radius: 1, plus: true},
		{dy: h - 2, radius: 2},
		{dy: h - 3, radius: 2},
	}
}

// canPlaceTree reports whether no log or leaf block exists in any column
// within Chebyshev distance spacing of (x,z), at any height.
func canPlaceTree(g *Grid, x, z, spacing int) bool {
	w, h, d := g.Dims()
	for cx := max(x-spacing, 0); cx <= min(x+spacing, w-1); cx++ {
		for cz := max(z-spacing, 0); cz <= min(z+spacing, d-1); cz++ {
			for y := 0; y < h; y++ {
				switch g.Get(cx, y, cz) {
				case block.Log, block.Leaves:
					return false
				}
			}
		}
	}
	return true
}

// placeTree grows a tree of height h whose trunk starts at (x,base,z). The
// trunk is h-1 logs; leaves only fill air cells.
func placeTree(g *Grid, x, base, z, h int) {
	for y := base; y < base+h-1; y++ {
		g.Set(x, y, z, block.Log)
	}
	for _, l := range canopy(h) {
		y := base + l.dy
		for dx := -l.radius; dx <= l.radius; dx++ {
			for dz := -l.radius; dz <= l.radius; dz++ {
				if l.plus && dx != 0 && dz != 0 {
					continue
				}
				if !l.plus && dx == 0 && dz == 0 {
					continue
				}
				if g.Get(x+dx, y, z+dz) == block.Air {
					g.Set(x+dx, y, z+dz, block.Leaves)
				}
			}
		}
	}
}
