package meshing

import (
	"errors"
	"fmt"
)

// ErrOutOfRange is returned for writes that fall outside a buffer
var ErrOutOfRange = errors.New("meshing: write outside buffer")

// VertexBuffer is the flat vertex store slots are written into.
// Only the slot allocator writes to it.
type VertexBuffer interface {
	CapacityBytes() int
	WriteRegion(offsetBytes int, data []float32) error
}

// MemoryBuffer is a CPU-side VertexBuffer. Writes are tracked as one dirty
// range so a renderer can upload only what changed since the last Flush.
type MemoryBuffer struct {
	data       []float32
	dirtyStart int // in floats, -1 when clean
	dirtyEnd   int
}

// NewMemoryBuffer allocates a zeroed buffer of capacityBytes (rounded down to whole floats)
func NewMemoryBuffer(capacityBytes int) *MemoryBuffer {
	if capacityBytes < 0 {
		capacityBytes = 0
	}
	return &MemoryBuffer{
		data:       make([]float32, capacityBytes/4),
		dirtyStart: -1,
	}
}

func (b *MemoryBuffer) CapacityBytes() int {
	return len(b.data) * 4
}

func (b *MemoryBuffer) WriteRegion(offsetBytes int, data []float32) error {
	if offsetBytes < 0 || offsetBytes%4 != 0 {
		return fmt.Errorf("%w: unaligned offset %d", ErrOutOfRange, offsetBytes)
	}
	start := offsetBytes / 4
	end := start + len(data)
	if end > len(b.data) {
		return fmt.Errorf("%w: [%d,%d) past %d bytes", ErrOutOfRange, offsetBytes, end*4, b.CapacityBytes())
	}
	copy(b.data[start:end], data)
	b.markDirty(start, end)
	return nil
}

func (b *MemoryBuffer) markDirty(start, end int) {
	if start == end {
		return
	}
	if b.dirtyStart < 0 {
		b.dirtyStart, b.dirtyEnd = start, end
		return
	}
	b.dirtyStart = min(b.dirtyStart, start)
	b.dirtyEnd = max(b.dirtyEnd, end)
}

// Dirty reports whether there are writes not yet flushed
func (b *MemoryBuffer) Dirty() bool {
	return b.dirtyStart >= 0
}

// Flush hands the coalesced dirty range to upload and marks the buffer clean.
// The slice passed to upload aliases the buffer and must not be retained.
func (b *MemoryBuffer) Flush(upload func(offsetBytes int, data []float32)) {
	if b.dirtyStart < 0 {
		return
	}
	upload(b.dirtyStart*4, b.data[b.dirtyStart:b.dirtyEnd])
	b.dirtyStart, b.dirtyEnd = -1, 0
}

// Region returns a read-only view of n floats starting at offsetBytes
func (b *MemoryBuffer) Region(offsetBytes, n int) []float32 {
	start := offsetBytes / 4
	if start < 0 || start+n > len(b.data) {
		return nil
	}
	return b.data[start : start+n]
}

// Invalidate marks the whole buffer dirty, forcing a full upload on the next Flush
func (b *MemoryBuffer) Invalidate() {
	b.markDirty(0, len(b.data))
}
