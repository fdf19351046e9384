package world

import (
	"math/rand"
	"testing"

	"voxel-world/internal/block"
)

func TestHash2DifferentInputs(t *testing.T) {
	seed := int64(42)
	if hash2(1, 0, seed) == hash2(2, 0, seed) {
		t.Errorf("hash2 should differ for different X")
	}
	if hash2(0, 1, seed) == hash2(0, 2, seed) {
		t.Errorf("hash2 should differ for different Z")
	}
	if hash2(1, 1, 100) == hash2(1, 1, 200) {
		t.Errorf("hash2 should differ for different seeds")
	}
}

// TestOctaveNoiseRange samples random points and checks the [0,1] contract
func TestOctaveNoiseRange(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 10000; i++ {
		x := rng.Float64()*2000 - 1000
		z := rng.Float64()*2000 - 1000
		v := octaveNoise2D(x, z, 7, 3, 0.5, 2.0)
		if v < 0 || v > 1 {
			t.Fatalf("octaveNoise2D(%v,%v) = %v outside [0,1]", x, z, v)
		}
	}
}

func TestValueNoiseHitsLatticeValues(t *testing.T) {
	for x := int64(-3); x <= 3; x++ {
		for z := int64(-3); z <= 3; z++ {
			if got, want := valueNoise2D(float64(x), float64(z), 9), latticeValue(x, z, 9); got != want {
				t.Errorf("valueNoise2D(%d,%d) = %v, want lattice value %v", x, z, got, want)
			}
		}
	}
}

func TestBiomeFor(t *testing.T) {
	if b := biomeFor(false, 2, 3); b != BiomeHighland {
		t.Errorf("non-basin column got %s", b.Name)
	}
	if b := biomeFor(true, 3, 3); b != BiomeShore {
		t.Errorf("low basin column got %s", b.Name)
	}
	if b := biomeFor(true, 4, 3); b != BiomeBasin {
		t.Errorf("high basin column got %s", b.Name)
	}
	if BiomeShore.Trees {
		t.Errorf("trees must not grow on sand")
	}
	if got := BiomeHighland.blockAt(0, 3); got != block.Grass {
		t.Errorf("surface = %v", got)
	}
	if got := BiomeHighland.blockAt(3, 3); got != block.Dirt {
		t.Errorf("depth 3 = %v, want dirt", got)
	}
	if got := BiomeHighland.blockAt(4, 3); got != block.Stone {
		t.Errorf("depth 4 = %v, want stone", got)
	}
}
