package world

import "voxel-world/internal/block"

// Biome decides which blocks make up a column and whether trees grow on it
type Biome struct {
	Name    string
	Surface block.Type
	Filler  block.Type
	Base    block.Type
	Trees   bool
}

var (
	BiomeHighland = &Biome{
		Name:    "highland",
		Surface: block.Grass,
		Filler:  block.Dirt,
		Base:    block.Stone,
		Trees:   true,
	}
	// BiomeBasin is low-relief ground; columns at or below the sand level
	// become BiomeShore instead.
	BiomeBasin = &Biome{
		Name:    "basin",
		Surface: block.Grass,
		Filler:  block.Dirt,
		Base:    block.Stone,
		Trees:   true,
	}
	BiomeShore = &Biome{
		Name:    "shore",
		Surface: block.Sand,
		Filler:  block.Sand,
		Base:    block.Stone,
	}
)

// biomeFor picks the biome of a column from its basin flag and final height
func biomeFor(basin bool, height, sandLevel int) *Biome {
	switch {
	case !basin:
		return BiomeHighland
	case height <= sandLevel:
		return BiomeShore
	default:
		return BiomeBasin
	}
}

// blockAt returns the block depth cells below the surface (0 = surface)
func (b *Biome) blockAt(depth, dirt int) block.Type {
	switch {
	case depth == 0:
		return b.Surface
	case depth <= dirt:
		return b.Filler
	default:
		return b.Base
	}
}
