package world

import "voxel-world/internal/block"

// Grid is a dense W×H×D array of block types stored flat, x-major:
// index = x*H*D + y*D + z.
type Grid struct {
	width, height, depth int
	cells                []block.Type
}

// NewGrid allocates an all-air grid
func NewGrid(width, height, depth int) *Grid {
	return &Grid{
		width:  width,
		height: height,
		depth:  depth,
		cells:  make([]block.Type, width*height*depth),
	}
}

// Dims returns width, height and depth
func (g *Grid) Dims() (int, int, int) {
	return g.width, g.height, g.depth
}

// Volume is the number of voxels
func (g *Grid) Volume() int {
	return len(g.cells)
}

func (g *Grid) InBounds(x, y, z int) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.height && z >= 0 && z < g.depth
}

// Index converts in-bounds coordinates to the flat index
func (g *Grid) Index(x, y, z int) int {
	return x*g.height*g.depth + y*g.depth + z
}

// Coords converts a flat index back to coordinates
func (g *Grid) Coords(i int) (x, y, z int) {
	hd := g.height * g.depth
	return i / hd, (i % hd) / g.depth, i % g.depth
}

// Get returns the block at (x,y,z); anything outside the grid is air
func (g *Grid) Get(x, y, z int) block.Type {
	if !g.InBounds(x, y, z) {
		return block.Air
	}
	return g.cells[g.Index(x, y, z)]
}

// Set stores t at (x,y,z); writes outside the grid are dropped
func (g *Grid) Set(x, y, z int, t block.Type) {
	if !g.InBounds(x, y, z) {
		return
	}
	g.cells[g.Index(x, y, z)] = t
}

// Reset fills the grid with air
func (g *Grid) Reset() {
	clear(g.cells)
}

// SurfaceAt returns the y and type of the topmost non-air voxel of a column,
// or (-1, Air) for an empty column.
func (g *Grid) SurfaceAt(x, z int) (int, block.Type) {
	for y := g.height - 1; y >= 0; y-- {
		if t := g.Get(x, y, z); t != block.Air {
			return y, t
		}
	}
	return -1, block.Air
}
