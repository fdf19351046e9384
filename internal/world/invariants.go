package world

import (
	"errors"
	"fmt"
	"slices"

	"voxel-world/internal/meshing"
)

// ErrInvariant is wrapped by every CheckInvariants failure
var ErrInvariant = errors.New("world: invariant violated")

// CheckInvariants recomputes visibility for every voxel from scratch and
// cross-checks it against the incremental index and the slot table. When
// the world writes into a MemoryBuffer, slot contents are checked too.
func (w *World) CheckInvariants() error {
	w.mu.RLock()
	defer w.mu.RUnlock()

	highWater := w.slots.HighWater()
	owner := make([]int, highWater)
	for i := range owner {
		owner[i] = -1
	}
	mem, _ := w.buf.(*meshing.MemoryBuffer)

	visible := 0
	for i := 0; i < w.grid.Volume(); i++ {
		x, y, z := w.grid.Coords(i)
		want := exposed(w.grid, x, y, z)
		if got := w.vis.get(i); got != want {
			return fmt.Errorf("%w: (%d,%d,%d) indexed visible=%v, expected %v", ErrInvariant, x, y, z, got, want)
		}
		slot := w.slots.Slot(i)
		if want != (slot != meshing.NoSlot) {
			return fmt.Errorf("%w: (%d,%d,%d) visible=%v but slot=%d", ErrInvariant, x, y, z, want, slot)
		}
		if !want {
			continue
		}
		visible++
		if int(slot) >= highWater {
			return fmt.Errorf("%w: (%d,%d,%d) slot %d past high-water mark %d", ErrInvariant, x, y, z, slot, highWater)
		}
		if prev := owner[slot]; prev >= 0 {
			px, py, pz := w.grid.Coords(prev)
			return fmt.Errorf("%w: slot %d shared by (%d,%d,%d) and (%d,%d,%d)", ErrInvariant, slot, px, py, pz, x, y, z)
		}
		owner[slot] = i
		if mem != nil {
			want := meshing.Payload(x, y, z, w.grid.cells[i])
			if !slices.Equal(mem.Region(meshing.Offset(slot), meshing.FloatsPerBlock), want) {
				return fmt.Errorf("%w: slot %d does not hold the geometry of (%d,%d,%d)", ErrInvariant, slot, x, y, z)
			}
		}
	}

	if visible != w.vis.count {
		return fmt.Errorf("%w: visible count %d, index says %d", ErrInvariant, visible, w.vis.count)
	}
	if visible != w.slots.Live() {
		return fmt.Errorf("%w: %d visible voxels but %d live slots", ErrInvariant, visible, w.slots.Live())
	}

	free := w.slots.FreeSlots()
	if visible+len(free) != highWater {
		return fmt.Errorf("%w: %d live + %d free slots != high-water mark %d", ErrInvariant, visible, len(free), highWater)
	}
	for _, s := range free {
		if s < 0 || int(s) >= highWater {
			return fmt.Errorf("%w: free slot %d outside [0,%d)", ErrInvariant, s, highWater)
		}
		if owner[s] == -2 {
			return fmt.Errorf("%w: slot %d is in the free pool twice", ErrInvariant, s)
		}
		if owner[s] >= 0 {
			x, y, z := w.grid.Coords(owner[s])
			return fmt.Errorf("%w: free slot %d still referenced by (%d,%d,%d)", ErrInvariant, s, x, y, z)
		}
		owner[s] = -2
		if mem != nil && slices.ContainsFunc(mem.Region(meshing.Offset(s), meshing.FloatsPerBlock), func(f float32) bool { return f != 0 }) {
			return fmt.Errorf("%w: free slot %d holds stale geometry", ErrInvariant, s)
		}
	}
	return nil
}
