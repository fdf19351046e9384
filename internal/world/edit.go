package world

import (
	"errors"
	"fmt"

	"voxel-world/internal/block"
	"voxel-world/internal/meshing"
	"voxel-world/internal/profiling"
)

// ErrUnsupportedTransition is returned for edits that do not cross the air
// boundary: adding onto a solid voxel, adding air, or solid→different-solid.
var ErrUnsupportedTransition = errors.New("world: unsupported block transition")

// ErrUnknownType is returned when an edit names a type outside the catalog
var ErrUnknownType = errors.New("world: unknown block type")

// AddBlock places t into an air voxel. Out-of-range coordinates are ignored.
func (w *World) AddBlock(x, y, z int, t block.Type) error {
	if !block.Valid(t) {
		return fmt.Errorf("%w: %d", ErrUnknownType, t)
	}
	if t == block.Air {
		return fmt.Errorf("%w: adding air at (%d,%d,%d)", ErrUnsupportedTransition, x, y, z)
	}
	w.mu.Lock()
	defer w.mu.Unlock()
	if !w.grid.InBounds(x, y, z) {
		return nil
	}
	if old := w.grid.Get(x, y, z); old != block.Air {
		return fmt.Errorf("%w: (%d,%d,%d) already holds %s", ErrUnsupportedTransition, x, y, z, old)
	}
	return w.edit(x, y, z, t)
}

// RemoveBlock turns a voxel into air. Removing air is a no-op.
func (w *World) RemoveBlock(x, y, z int) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.grid.Get(x, y, z) == block.Air {
		return nil
	}
	return w.edit(x, y, z, block.Air)
}

// UpdateBlock dispatches to add or remove depending on which side of the air
// boundary the voxel moves. Any other transition is rejected.
func (w *World) UpdateBlock(x, y, z int, t block.Type) error {
	if !block.Valid(t) {
		return fmt.Errorf("%w: %d", ErrUnknownType, t)
	}
	w.mu.Lock()
	defer w.mu.Unlock()
	if !w.grid.InBounds(x, y, z) {
		return nil
	}
	old := w.grid.Get(x, y, z)
	if (old == block.Air) == (t == block.Air) {
		return fmt.Errorf("%w: %s -> %s at (%d,%d,%d)", ErrUnsupportedTransition, old, t, x, y, z)
	}
	return w.edit(x, y, z, t)
}

type visibilityChange struct {
	index   int
	x, y, z int
	visible bool
}

// updateVisibility recomputes (x,y,z) against the current grid and reports
// whether its indexed visibility flips.
func (w *World) updateVisibility(x, y, z int) (visibilityChange, bool) {
	if !w.grid.InBounds(x, y, z) {
		return visibilityChange{}, false
	}
	i := w.grid.Index(x, y, z)
	now := exposed(w.grid, x, y, z)
	if now == w.vis.get(i) {
		return visibilityChange{}, false
	}
	return visibilityChange{index: i, x: x, y: y, z: z, visible: now}, true
}

// edit writes t at (x,y,z) and brings the voxel and its 6 neighbours'
// visibility and slots up to date. Slot capacity is checked before anything
// is applied, so a failed edit leaves the world unchanged.
func (w *World) edit(x, y, z int, t block.Type) error {
	defer profiling.Track("world.edit")()

	old := w.grid.Get(x, y, z)
	w.grid.Set(x, y, z, t)

	var changes [7]visibilityChange
	n, allocs, releases := 0, 0, 0
	plan := func(cx, cy, cz int) {
		c, ok := w.updateVisibility(cx, cy, cz)
		if !ok {
			return
		}
		changes[n] = c
		n++
		if c.visible {
			allocs++
		} else {
			releases++
		}
	}
	plan(x, y, z)
	for _, d := range neighbours {
		plan(x+d[0], y+d[1], z+d[2])
	}

	if allocs > w.slots.Available()+releases {
		w.grid.Set(x, y, z, old)
		return fmt.Errorf("%w: edit at (%d,%d,%d) needs %d more slots, %d available",
			meshing.ErrCapacityExceeded, x, y, z, allocs-releases, w.slots.Available())
	}

	// releases first so the freed slots are reused by the allocations
	for _, c := range changes[:n] {
		if c.visible {
			continue
		}
		w.vis.set(c.index, false)
		if err := w.slots.Release(c.index); err != nil {
			return fmt.Errorf("release (%d,%d,%d): %w", c.x, c.y, c.z, err)
		}
	}
	for _, c := range changes[:n] {
		if !c.visible {
			continue
		}
		w.vis.set(c.index, true)
		if err := w.allocate(c.index, c.x, c.y, c.z); err != nil {
			return fmt.Errorf("allocate (%d,%d,%d): %w", c.x, c.y, c.z, err)
		}
	}

	profiling.Count("world.slotAllocs", int64(allocs))
	profiling.Count("world.slotReleases", int64(releases))
	return nil
}
