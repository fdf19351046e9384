package physics

import (
	"math"

	"voxel-world/internal/block"
	"voxel-world/internal/profiling"

	"github.com/go-gl/mathgl/mgl32"
)

const (
	DefaultCollisionStep    = 0.3
	DefaultCollisionEpsilon = 0.0001
)

// Sweep samples points of the box [min,max] at a fixed step and reports
// whether hit returns true for any sampled voxel. Besides the interior
// lattice it sweeps the three max-face planes, so a box ending exactly on a
// voxel boundary still samples that voxel.
type Sweep struct {
	Step    float32
	Epsilon float32
}

// DefaultSweep is the sweep used by the collision helpers below
var DefaultSweep = Sweep{Step: DefaultCollisionStep, Epsilon: DefaultCollisionEpsilon}

// Bounds limits a sweep to the samples that can change its answer. Samples
// outside [Lo,Hi) are skipped.
type Bounds struct {
	Lo, Hi mgl32.Vec3
}

// gridBounds covers g plus one cell on every side; everything else reads as air
func gridBounds(g Grid) Bounds {
	w, h, d := g.Dims()
	return Bounds{
		Lo: mgl32.Vec3{-1, -1, -1},
		Hi: mgl32.Vec3{float32(w + 1), float32(h + 1), float32(d + 1)},
	}
}

func cellBounds(c [3]int) Bounds {
	return Bounds{
		Lo: mgl32.Vec3{float32(c[0] - 1), float32(c[1] - 1), float32(c[2] - 1)},
		Hi: mgl32.Vec3{float32(c[0] + 2), float32(c[1] + 2), float32(c[2] + 2)},
	}
}

// lattice walks one axis of a sweep by sample index, so it ends even where
// float32 addition no longer moves the coordinate
type lattice struct {
	min, max mgl32.Vec3
	step     float64
	b        Bounds
}

func (l lattice) each(axis int, closed bool, fn func(v float32) bool) bool {
	start := float64(l.min[axis])
	if d := float64(l.b.Lo[axis]) - start; d > 0 {
		start += math.Ceil(d/l.step) * l.step
	}
	limit, hi := l.max[axis], l.b.Hi[axis]
	for i := 0; ; i++ {
		v := float32(start + float64(i)*l.step)
		if !(v < hi) || !(v < limit || closed && v == limit) {
			return false
		}
		if fn(v) {
			return true
		}
	}
}

func (s Sweep) Any(min, max mgl32.Vec3, b Bounds, hit func(x, y, z int) bool) bool {
	if !(s.Step > 0) {
		return false
	}
	l := lattice{min: min, max: max, step: float64(s.Step), b: b}
	eps := s.Epsilon

	if max.X()-min.X() > eps {
		found := l.each(0, false, func(x float32) bool {
			return l.each(1, false, func(y float32) bool {
				return l.each(2, false, func(z float32) bool {
					return hit(floor(x), floor(y), floor(z))
				})
			})
		})
		if found {
			return true
		}
	}

	// top plane
	if max.Y()-min.Y() > eps {
		by := floor(max.Y())
		found := l.each(0, true, func(x float32) bool {
			return l.each(2, true, func(z float32) bool {
				return hit(floor(x), by, floor(z))
			})
		})
		if found {
			return true
		}
	}

	// depth plane
	if max.Z()-min.Z() > eps {
		bz := floor(max.Z())
		found := l.each(0, true, func(x float32) bool {
			return l.each(1, true, func(y float32) bool {
				return hit(floor(x), floor(y), bz)
			})
		})
		if found {
			return true
		}
	}

	// width plane
	if max.X()-min.X() > eps {
		bx := floor(max.X())
		return l.each(1, true, func(y float32) bool {
			return l.each(2, true, func(z float32) bool {
				return hit(bx, floor(y), floor(z))
			})
		})
	}

	return false
}

// IsColliding reports whether the box overlaps any non-air voxel
func (s Sweep) IsColliding(g Grid, min, max mgl32.Vec3) bool {
	defer profiling.Track("physics.IsColliding")()
	return s.Any(min, max, gridBounds(g), func(x, y, z int) bool {
		return g.Get(x, y, z) != block.Air
	})
}

// IsCollidingWith reports whether the box covers the target voxel
func (s Sweep) IsCollidingWith(min, max mgl32.Vec3, target [3]int) bool {
	return s.Any(min, max, cellBounds(target), func(x, y, z int) bool {
		return x == target[0] && y == target[1] && z == target[2]
	})
}

// IsColliding checks the box against g with the default sweep
func IsColliding(g Grid, min, max mgl32.Vec3) bool {
	return DefaultSweep.IsColliding(g, min, max)
}

// IsCollidingWith checks the box against one voxel with the default sweep
func IsCollidingWith(min, max mgl32.Vec3, target [3]int) bool {
	return DefaultSweep.IsCollidingWith(min, max, target)
}
