package world

import (
	"math/rand"

	"voxel-world/internal/config"
	"voxel-world/internal/profiling"

	"github.com/aquilax/go-perlin"
)

// Generator fills a grid with terrain and trees. All randomness comes from
// its own rng seeded once, so the same seed, dimensions and settings always
// produce the same grid.
type Generator struct {
	cfg  config.Generation
	seed int32
	rng  *rand.Rand

	height   *perlin.Perlin
	basin    *perlin.Perlin
	dirtSeed int64
}

// NewGenerator creates a generator for seed
func NewGenerator(seed int32, cfg config.Generation) *Generator {
	rng := rand.New(rand.NewSource(int64(seed)))
	return &Generator{
		cfg:      cfg,
		seed:     seed,
		rng:      rng,
		height:   perlin.NewPerlin(2, 2, 3, rng.Int63()),
		basin:    perlin.NewPerlin(2, 2, 2, rng.Int63()),
		dirtSeed: rng.Int63(),
	}
}

func (gen *Generator) Seed() int32 { return gen.seed }

// column is the per-(x,z) result of the height pass
type column struct {
	height int
	basin  bool
}

// Generate writes terrain into g. Cells above the terrain are left as they
// are, so callers start from a reset grid.
func (gen *Generator) Generate(g *Grid) {
	defer profiling.Track("world.generate")()

	cols := gen.heights(g)
	gen.smooth(g, cols)

	w, _, d := g.Dims()
	for x := 0; x < w; x++ {
		for z := 0; z < d; z++ {
			c := cols[x*d+z]
			biome := biomeFor(c.basin, c.height, gen.cfg.SandLevel)
			dirt := gen.dirtDepth(x, z)
			for y := 0; y < c.height; y++ {
				g.Set(x, y, z, biome.blockAt(c.height-1-y, dirt))
			}
		}
	}

	gen.plantTrees(g, cols)
}

// HeightAt returns the unsmoothed terrain height (filled cells) of a column
// in a world gridHeight cells tall.
func (gen *Generator) HeightAt(x, z, gridHeight int) (int, bool) {
	maxHeight := gridHeight - gen.cfg.MaxTreeHeight
	if maxHeight < 1 {
		maxHeight = 1
	}

	f := gen.cfg.HeightFrequency
	n := normalize(gen.height.Noise2D(float64(x)*f, float64(z)*f))
	h := int(n*float64(maxHeight-1)) + 1

	bf := gen.cfg.BasinFrequency
	basin := normalize(gen.basin.Noise2D(float64(x)*bf, float64(z)*bf)) < gen.cfg.BasinThreshold
	if basin {
		h = 1 + int(float64(h-1)*gen.cfg.BasinFlatten)
	}
	return min(max(h, 1), maxHeight, gridHeight), basin
}

func (gen *Generator) heights(g *Grid) []column {
	w, h, d := g.Dims()
	cols := make([]column, w*d)
	for x := 0; x < w; x++ {
		for z := 0; z < d; z++ {
			height, basin := gen.HeightAt(x, z, h)
			cols[x*d+z] = column{height: height, basin: basin}
		}
	}
	return cols
}

// smooth raises columns that sit more than SmoothMaxDelta below a 4-neighbour
// halfway toward it. Each pass reads the previous pass's heights.
func (gen *Generator) smooth(g *Grid, cols []column) {
	w, _, d := g.Dims()
	prev := make([]int, len(cols))
	for pass := 0; pass < gen.cfg.SmoothPasses; pass++ {
		for i := range cols {
			prev[i] = cols[i].height
		}
		for x := 0; x < w; x++ {
			for z := 0; z < d; z++ {
				h := prev[x*d+z]
				raised := h
				for _, n := range [4][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}} {
					nx, nz := x+n[0], z+n[1]
					if nx < 0 || nx >= w || nz < 0 || nz >= d {
						continue
					}
					nh := prev[nx*d+nz]
					if nh-h > gen.cfg.SmoothMaxDelta {
						raised = max(raised, h+(nh-h)/2)
					}
				}
				cols[x*d+z].height = raised
			}
		}
	}
}

// dirtDepth is the thickness of the filler band under the surface block
func (gen *Generator) dirtDepth(x, z int) int {
	span := gen.cfg.DirtMax - gen.cfg.DirtMin + 1
	f := gen.cfg.DirtFrequency
	n := octaveNoise2D(float64(x)*f, float64(z)*f, gen.dirtSeed, 2, 0.5, 2.0)
	return min(gen.cfg.DirtMin+int(n*float64(span)), gen.cfg.DirtMax)
}

// plantTrees rolls once per eligible column in x-major order
func (gen *Generator) plantTrees(g *Grid, cols []column) {
	w, gh, d := g.Dims()
	planted := 0
	for x := 0; x < w; x++ {
		for z := 0; z < d; z++ {
			c := cols[x*d+z]
			if c.height <= 1 || !biomeFor(c.basin, c.height, gen.cfg.SandLevel).Trees {
				continue
			}
			if gen.rng.Float64() >= gen.cfg.TreeDensity {
				continue
			}
			if !canPlaceTree(g, x, z, gen.cfg.TreeSpacing) {
				continue
			}
			th := minTreeHeight + gen.rng.Intn(maxTreeHeight-minTreeHeight+1)
			if c.height+th > gh {
				continue
			}
			placeTree(g, x, c.height, z, th)
			planted++
		}
	}
	profiling.Count("world.trees", int64(planted))
}

// normalize maps Perlin output to [0,1]
func normalize(n float64) float64 {
	return min(max((n+1)/2, 0), 1)
}
