package physics_test

import (
	"math"
	"testing"

	"voxel-world/internal/block"
	"voxel-world/internal/physics"
	"voxel-world/internal/world"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
)

func TestIsCollidingAirColumn(t *testing.T) {
	g := world.NewGrid(8, 8, 8)
	g.Set(4, 2, 4, block.Stone)

	// body-sized box in the air column at x=1,z=1
	min := mgl32.Vec3{1.2, 1.1, 1.2}
	max := mgl32.Vec3{1.8, 2.9, 1.8}
	assert.False(t, physics.IsColliding(g, min, max))

	// shift it over the stone voxel
	shift := mgl32.Vec3{3, 0, 3}
	assert.True(t, physics.IsColliding(g, min.Add(shift), max.Add(shift)))
}

func TestIsCollidingMaxFacePlanes(t *testing.T) {
	g := world.NewGrid(8, 8, 8)
	g.Set(2, 1, 1, block.Stone)

	// interior samples stop short of x=2; only the width plane reaches it
	min := mgl32.Vec3{1.1, 1.1, 1.1}
	max := mgl32.Vec3{2.0, 1.9, 1.9}
	assert.True(t, physics.IsColliding(g, min, max))

	s := physics.Sweep{Step: 0.3, Epsilon: 0.0001}
	assert.False(t, s.IsColliding(g, min, mgl32.Vec3{1.95, 1.9, 1.9}))
}

func TestIsCollidingOutsideGrid(t *testing.T) {
	g := world.NewGrid(4, 4, 4)
	assert.False(t, physics.IsColliding(g, mgl32.Vec3{-5, -5, -5}, mgl32.Vec3{-3, -3, -3}))
}

func TestIsCollidingWith(t *testing.T) {
	min := mgl32.Vec3{0.7, 0, 0.7}
	max := mgl32.Vec3{1.3, 1.8, 1.3}

	assert.True(t, physics.IsCollidingWith(min, max, [3]int{1, 1, 1}))
	assert.True(t, physics.IsCollidingWith(min, max, [3]int{0, 0, 0}))
	assert.False(t, physics.IsCollidingWith(min, max, [3]int{2, 1, 1}))
	assert.False(t, physics.IsCollidingWith(min, max, [3]int{1, 2, 1}))
}

func TestIsCollidingFarFromOrigin(t *testing.T) {
	g := world.NewGrid(4, 4, 4)
	g.Set(1, 1, 1, block.Stone)

	// float32 spacing at 3e7 is 2.0, so adding the step alone never advances
	assert.False(t, physics.IsColliding(g, mgl32.Vec3{3e7, 0, 0}, mgl32.Vec3{3e7 + 4, 1, 1}))
	assert.False(t, physics.IsColliding(g, mgl32.Vec3{-3e7, 0, 0}, mgl32.Vec3{-3e7 + 4, 1, 1}))
	assert.False(t, physics.IsCollidingWith(mgl32.Vec3{3e7, 0, 0}, mgl32.Vec3{3e7 + 4, 1, 1}, [3]int{1, 1, 1}))
}

func TestIsCollidingHugeBoxIsClipped(t *testing.T) {
	g := world.NewGrid(4, 4, 4)
	g.Set(2, 3, 1, block.Stone)

	min := mgl32.Vec3{-1e6, -1e6, -1e6}
	max := mgl32.Vec3{1e6, 1e6, 1e6}
	assert.True(t, physics.IsColliding(g, min, max))
	assert.True(t, physics.IsCollidingWith(min, max, [3]int{500, -7, 20}))

	g.Set(2, 3, 1, block.Air)
	assert.False(t, physics.IsColliding(g, min, max))
}

func TestIsCollidingDegenerateInput(t *testing.T) {
	g := world.NewGrid(4, 4, 4)
	g.Set(1, 1, 1, block.Stone)
	nan := float32(math.NaN())

	assert.False(t, physics.IsColliding(g, mgl32.Vec3{nan, 0, 0}, mgl32.Vec3{2, 2, 2}))
	assert.False(t, physics.IsColliding(g, mgl32.Vec3{0, 0, 0}, mgl32.Vec3{nan, nan, nan}))

	stalled := physics.Sweep{Step: 0, Epsilon: 0.0001}
	assert.False(t, stalled.IsColliding(g, mgl32.Vec3{0.5, 0.5, 0.5}, mgl32.Vec3{1.5, 1.5, 1.5}))
}

func BenchmarkIsColliding(b *testing.B) {
	g := world.NewGrid(16, 16, 16)
	for x := 0; x < 16; x++ {
		for z := 0; z < 16; z++ {
			g.Set(x, 0, z, block.Stone)
		}
	}
	min := mgl32.Vec3{7.7, 1.0, 7.7}
	max := mgl32.Vec3{8.3, 2.8, 8.3}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = physics.IsColliding(g, min, max)
	}
}
