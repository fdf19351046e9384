package meshing

import (
	"errors"
	"fmt"
)

// NoSlot marks a voxel without geometry in the buffer
const NoSlot int32 = -1

var (
	// ErrCapacityExceeded means more voxels are visible than the buffer has slots for.
	// This is a sizing error, not something an edit can recover from.
	ErrCapacityExceeded = errors.New("meshing: slot capacity exceeded")
	ErrPayloadSize      = errors.New("meshing: payload is not one block")
)

// SlotAllocator maps voxel indices to fixed-size slots of a VertexBuffer.
// Slots freed by release are reused before the high-water mark grows.
type SlotAllocator struct {
	buf      VertexBuffer
	table    []int32 // voxel index -> slot
	free     []int32 // LIFO
	next     int32   // first never-used slot
	capacity int32
	live     int
}

// NewSlotAllocator creates an allocator for cells voxels writing into buf.
// Capacity is however many whole block payloads buf can hold.
func NewSlotAllocator(cells int, buf VertexBuffer) *SlotAllocator {
	a := &SlotAllocator{
		buf:      buf,
		table:    make([]int32, cells),
		capacity: int32(buf.CapacityBytes() / BytesPerBlock),
	}
	for i := range a.table {
		a.table[i] = NoSlot
	}
	return a
}

// Offset is the byte offset of slot s
func Offset(s int32) int {
	return int(s) * BytesPerBlock
}

// Allocate gives voxel index a slot and writes payload into it.
// A voxel that already has a slot keeps it and nothing is written.
func (a *SlotAllocator) Allocate(index int, payload []float32) (int32, error) {
	if s := a.table[index]; s != NoSlot {
		return s, nil
	}
	if len(payload) != FloatsPerBlock {
		return NoSlot, fmt.Errorf("%w: %d floats", ErrPayloadSize, len(payload))
	}

	var s int32
	recycled := len(a.free) > 0
	if recycled {
		s = a.free[len(a.free)-1]
		a.free = a.free[:len(a.free)-1]
	} else {
		if a.next >= a.capacity {
			return NoSlot, fmt.Errorf("%w: %d slots in use", ErrCapacityExceeded, a.capacity)
		}
		s = a.next
		a.next++
	}

	if err := a.buf.WriteRegion(Offset(s), payload); err != nil {
		if recycled {
			a.free = append(a.free, s)
		} else {
			a.next--
		}
		return NoSlot, err
	}
	a.table[index] = s
	a.live++
	return s, nil
}

// Release zeroes the slot of voxel index and returns it to the free pool.
// Voxels without a slot are ignored.
func (a *SlotAllocator) Release(index int) error {
	s := a.table[index]
	if s == NoSlot {
		return nil
	}
	if err := a.buf.WriteRegion(Offset(s), zeroPayload[:]); err != nil {
		return err
	}
	a.free = append(a.free, s)
	a.table[index] = NoSlot
	a.live--
	return nil
}

// Slot returns the slot of voxel index, or NoSlot
func (a *SlotAllocator) Slot(index int) int32 {
	if index < 0 || index >= len(a.table) {
		return NoSlot
	}
	return a.table[index]
}

// Live is the number of voxels currently holding a slot
func (a *SlotAllocator) Live() int { return a.live }

// HighWater is the number of slots ever handed out; the buffer holds no
// geometry past HighWater()*BytesPerBlock.
func (a *SlotAllocator) HighWater() int { return int(a.next) }

// Capacity is the number of slots the buffer can hold
func (a *SlotAllocator) Capacity() int { return int(a.capacity) }

// FreeCount is the size of the free pool
func (a *SlotAllocator) FreeCount() int { return len(a.free) }

// Available is how many more voxels can receive a slot
func (a *SlotAllocator) Available() int {
	return len(a.free) + int(a.capacity-a.next)
}

// FreeSlots returns a copy of the free pool, most recently freed last
func (a *SlotAllocator) FreeSlots() []int32 {
	out := make([]int32, len(a.free))
	copy(out, a.free)
	return out
}

// Reset forgets every assignment. Buffer contents past the next high-water
// mark are never drawn, so they are left as they are.
func (a *SlotAllocator) Reset() {
	for i := range a.table {
		a.table[i] = NoSlot
	}
	a.free = a.free[:0]
	a.next = 0
	a.live = 0
}
