package world

import (
	"math/rand"
	"testing"

	"voxel-world/internal/block"
)

func randomGrid(seed int64, w, h, d int) *Grid {
	rng := rand.New(rand.NewSource(seed))
	g := NewGrid(w, h, d)
	types := []block.Type{block.Air, block.Stone, block.Dirt, block.Glass, block.Leaves}
	for i := range g.cells {
		g.cells[i] = types[rng.Intn(len(types))]
	}
	return g
}

func TestScanPoolMatchesSerialScan(t *testing.T) {
	g := randomGrid(5, 13, 7, 9)
	want, wantCount := make([]bool, g.Volume()), 0
	for i := range want {
		x, y, z := g.Coords(i)
		want[i] = exposed(g, x, y, z)
		if want[i] {
			wantCount++
		}
	}

	for _, workers := range []int{0, 1, 3, 16} {
		vis := newVisibilityIndex(g.Volume())
		// stale flags must be overwritten
		for i := range vis.flags {
			vis.flags[i] = true
		}
		p := newScanPool(g, vis, workers)
		got := p.scan()
		p.shutdown()

		if got != wantCount {
			t.Errorf("workers=%d: visible %d, want %d", workers, got, wantCount)
		}
		for i := range want {
			if vis.flags[i] != want[i] {
				x, y, z := g.Coords(i)
				t.Fatalf("workers=%d: (%d,%d,%d) = %v, want %v", workers, x, y, z, vis.flags[i], want[i])
			}
		}
	}
}

func TestScanPoolShutdownIdle(t *testing.T) {
	p := newScanPool(NewGrid(1, 1, 1), newVisibilityIndex(1), 4)
	p.shutdown()
}
