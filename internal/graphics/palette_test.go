package graphics

import (
	"testing"

	"voxel-world/internal/block"
)

// world.frag declares palette[16]
const shaderPaletteSize = 16

func TestLayerPalette(t *testing.T) {
	p := LayerPalette()
	if len(p) != block.LayerCount*3 {
		t.Fatalf("len = %d, want %d", len(p), block.LayerCount*3)
	}
	if block.LayerCount > shaderPaletteSize {
		t.Errorf("%d layers do not fit the shader palette of %d", block.LayerCount, shaderPaletteSize)
	}
	for i, v := range p {
		if v < 0 || v > 1 {
			t.Errorf("component %d = %v outside [0,1]", i, v)
		}
	}
	c := block.LayerColor(block.LayerStone)
	if got := p[int(block.LayerStone)*3]; got != float32(c[0])/255 {
		t.Errorf("stone red = %v, want %v", got, float32(c[0])/255)
	}
}
