package main

import (
	"image/color"
	"testing"

	"voxel-world/internal/block"
	"voxel-world/internal/graphics"
	"voxel-world/internal/world"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlags(t *testing.T) {
	opts, err := parseFlags([]string{
		"-seed", "42", "-headless", "-verify",
		"-place", "1,2,3,stone", "-place", "4, 5, 6,glass",
		"-remove", "7,8,9",
	})
	require.NoError(t, err)
	assert.True(t, opts.seedSet)
	assert.Equal(t, int64(42), opts.seed)
	assert.True(t, opts.headless)
	assert.True(t, opts.verify)
	assert.Equal(t, placeList{{pos: [3]int{1, 2, 3}, typ: block.Stone}, {pos: [3]int{4, 5, 6}, typ: block.Glass}}, opts.places)
	assert.Equal(t, posList{{7, 8, 9}}, opts.removes)
	assert.Equal(t, "1,2,3,stone 4,5,6,glass", opts.places.String())
}

func TestParseFlagsSeedUnset(t *testing.T) {
	opts, err := parseFlags(nil)
	require.NoError(t, err)
	assert.False(t, opts.seedSet)
	assert.Equal(t, 4, opts.previewScale)
}

func TestParseFlagsRejects(t *testing.T) {
	for _, args := range [][]string{
		{"-seed", "4294967296"},
		{"-place", "1,2,stone"},
		{"-place", "1,2,3,unobtainium"},
		{"-place", "1,2,3,air"},
		{"-remove", "1,x,3"},
		{"-preview-scale", "0"},
	} {
		_, err := parseFlags(args)
		assert.Error(t, err, "%v", args)
	}
}

func TestApplyEdits(t *testing.T) {
	w := world.NewEmpty(4, 4, 4)
	require.NoError(t, w.AddBlock(0, 0, 0, block.Dirt))

	err := applyEdits(w,
		placeList{{pos: [3]int{1, 1, 1}, typ: block.Bricks}, {pos: [3]int{1, 1, 1}, typ: block.Stone}},
		posList{{0, 0, 0}},
	)
	assert.Error(t, err, "second placement hits an occupied voxel")
	assert.Equal(t, block.Air, w.GetBlock(0, 0, 0))
	assert.Equal(t, block.Bricks, w.GetBlock(1, 1, 1))
	require.NoError(t, w.CheckInvariants())
}

func floorWorld(t *testing.T) *world.World {
	t.Helper()
	w := world.NewEmpty(10, 4, 10)
	for x := 0; x < 10; x++ {
		for z := 0; z < 10; z++ {
			require.NoError(t, w.AddBlock(x, 0, z, block.Stone))
		}
	}
	return w
}

func TestPlaceAndRemoveAlongView(t *testing.T) {
	w := floorWorld(t)
	require.NoError(t, w.AddBlock(5, 1, 2, block.Stone))
	cam := graphics.NewCamera(100, 100, mgl32.Vec3{5.5, 1.5, 5.5})

	require.True(t, placeHeld(w, cam, block.Planks))
	assert.Equal(t, block.Planks, w.GetBlock(5, 1, 3))

	require.True(t, removeSelected(w, cam))
	assert.Equal(t, block.Air, w.GetBlock(5, 1, 3))
	assert.Equal(t, block.Stone, w.GetBlock(5, 1, 2))
	require.NoError(t, w.CheckInvariants())
}

func TestPlaceRefusesOwnBody(t *testing.T) {
	w := floorWorld(t)
	cam := graphics.NewCamera(100, 100, mgl32.Vec3{5.5, 2.5, 5.5})
	cam.Look(0, -90)

	assert.False(t, placeHeld(w, cam, block.Planks))
	assert.Equal(t, block.Air, w.GetBlock(5, 1, 5))
}

func TestNothingInReach(t *testing.T) {
	w := world.NewEmpty(10, 4, 10)
	cam := graphics.NewCamera(100, 100, mgl32.Vec3{5, 2, 5})
	assert.False(t, removeSelected(w, cam))
	assert.False(t, placeHeld(w, cam, block.Sand))
}

func TestRenderPreview(t *testing.T) {
	w := world.NewEmpty(8, 4, 6)
	require.NoError(t, w.AddBlock(2, 3, 1, block.Grass))

	img := renderPreview(w, 3)
	assert.Equal(t, 24, img.Bounds().Dx())
	assert.Equal(t, 18+captionHeight, img.Bounds().Dy())

	assert.Equal(t, color.RGBA{A: 255}, img.RGBAAt(0, 0), "empty column is black")
	c := block.Color(block.Grass)
	assert.Equal(t, color.RGBA{c[0], c[1], c[2], 255}, img.RGBAAt(2*3+1, 1*3+1), "top-height column is unshaded")
}
