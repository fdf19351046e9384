package physics

import (
	"math"

	"voxel-world/internal/block"
	"voxel-world/internal/profiling"

	"github.com/go-gl/mathgl/mgl32"
)

const (
	DefaultRayStep        = 0.1
	DefaultRayMaxDistance = 7.0
)

// Grid is the read access queries need
type Grid interface {
	Get(x, y, z int) block.Type
	Dims() (int, int, int)
}

// RaycastResult stores the result of a raycast operation
type RaycastResult struct {
	HitPosition      [3]int // first non-air voxel
	AdjacentPosition [3]int // voxel one step back along the ray, for placement
	Distance         float32
	Hit              bool
}

// Raycast marches from start along direction in fixed steps up to maxDist
// and stops at the first sample whose voxel is not air.
func Raycast(g Grid, start, direction mgl32.Vec3, step, maxDist float32) RaycastResult {
	defer profiling.Track("physics.Raycast")()

	if !(step > 0) {
		return RaycastResult{}
	}

	// the sample before the first one lies behind the origin
	lastEmpty := voxelAt(start.Sub(direction.Mul(step)))
	for i := 0; ; i++ {
		dist := float32(i) * step
		if !(dist < maxDist) {
			break
		}
		pos := voxelAt(start.Add(direction.Mul(dist)))
		if g.Get(pos[0], pos[1], pos[2]) == block.Air {
			lastEmpty = pos
			continue
		}
		return RaycastResult{
			HitPosition:      pos,
			AdjacentPosition: lastEmpty,
			Distance:         dist,
			Hit:              true,
		}
	}
	return RaycastResult{}
}

// DetectSelectedBlock returns the first solid voxel along the ray
func DetectSelectedBlock(g Grid, start, direction mgl32.Vec3, step, maxDist float32) ([3]int, bool) {
	r := Raycast(g, start, direction, step, maxDist)
	return r.HitPosition, r.Hit
}

// FindLastAirBlock returns the voxel sampled one step before the first solid hit
func FindLastAirBlock(g Grid, start, direction mgl32.Vec3, step, maxDist float32) ([3]int, bool) {
	r := Raycast(g, start, direction, step, maxDist)
	return r.AdjacentPosition, r.Hit
}

func voxelAt(p mgl32.Vec3) [3]int {
	return [3]int{floor(p.X()), floor(p.Y()), floor(p.Z())}
}

func floor(f float32) int {
	return int(math.Floor(float64(f)))
}
