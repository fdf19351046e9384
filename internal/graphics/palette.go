package graphics

import "voxel-world/internal/block"

// LayerPalette flattens the material layer colors into vec3 uniform data
func LayerPalette() []float32 {
	out := make([]float32, 0, block.LayerCount*3)
	for l := 0; l < block.LayerCount; l++ {
		c := block.LayerColor(block.Layer(l))
		out = append(out, float32(c[0])/255, float32(c[1])/255, float32(c[2])/255)
	}
	return out
}
