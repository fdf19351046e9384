package world

import (
	"fmt"
	"log"
	"sync"

	"voxel-world/internal/block"
	"voxel-world/internal/config"
	"voxel-world/internal/meshing"
	"voxel-world/internal/physics"
	"voxel-world/internal/profiling"

	"github.com/go-gl/mathgl/mgl32"
)

// World owns the voxel grid, its visibility index and the slot table that
// maps visible voxels into the vertex buffer. Edits keep all three in step;
// queries only read the grid.
type World struct {
	mu sync.RWMutex

	cfg   config.World
	grid  *Grid
	vis   *visibilityIndex

	// generation and full rebuilds fill these first and swap them in only
	// once every visible voxel is known to fit
	spareGrid *Grid
	spareVis  *visibilityIndex

	slots *meshing.SlotAllocator
	buf   meshing.VertexBuffer
	sweep physics.Sweep
	seed  int32

	scratch []float32
}

// Stats describes mesh occupancy
type Stats struct {
	Visible   int
	LiveSlots int
	FreeSlots int
	HighWater int
	Capacity  int
}

// New creates an empty world. A nil buf gets a MemoryBuffer sized for
// cfg.Slots() block payloads.
func New(cfg config.World, buf meshing.VertexBuffer) (*World, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if buf == nil {
		buf = meshing.NewMemoryBuffer(cfg.Slots() * meshing.BytesPerBlock)
	}
	grid := NewGrid(cfg.Width, cfg.Height, cfg.Depth)
	return &World{
		cfg:     cfg,
		grid:    grid,
		vis:     newVisibilityIndex(grid.Volume()),

		spareGrid: NewGrid(cfg.Width, cfg.Height, cfg.Depth),
		spareVis:  newVisibilityIndex(grid.Volume()),

		slots:   meshing.NewSlotAllocator(grid.Volume(), buf),
		buf:     buf,
		sweep:   physics.Sweep{Step: cfg.Query.CollisionStep, Epsilon: cfg.Query.CollisionEpsilon},
		scratch: make([]float32, 0, meshing.FloatsPerBlock),
	}, nil
}

// NewEmpty creates an all-air world with default settings. It panics on
// non-positive dimensions and is meant for tests and tools.
func NewEmpty(width, height, depth int) *World {
	cfg := config.Default()
	cfg.Width, cfg.Height, cfg.Depth = width, height, depth
	w, err := New(cfg, nil)
	if err != nil {
		panic(err)
	}
	return w
}

// Generate replaces the world contents with terrain for seed and builds the
// visibility index and slot table from scratch. If the terrain has more
// visible voxels than the buffer has slots, the world keeps its previous
// contents and the error wraps meshing.ErrCapacityExceeded.
func (w *World) Generate(seed int32) error {
	defer profiling.Track("world.Generate")()
	w.mu.Lock()
	defer w.mu.Unlock()

	g := w.spareGrid
	g.Reset()
	NewGenerator(seed, w.cfg.Generation).Generate(g)
	prev := w.grid
	if err := w.rebuild(g); err != nil {
		return fmt.Errorf("generate seed %d: %w", seed, err)
	}
	w.spareGrid = prev
	w.seed = seed
	log.Printf("world generated: seed=%d size=%dx%dx%d visible=%d", seed, w.cfg.Width, w.cfg.Height, w.cfg.Depth, w.vis.count)
	return nil
}

// Rebuild recomputes visibility and slots for the whole grid. Use it after
// bulk SetBlock writes. On a capacity error the index and slots stay as
// they were before the call.
func (w *World) Rebuild() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.rebuild(w.grid)
}

// rebuild scans g into the spare index. Only if the visible count fits the
// slot capacity do g and that index become current, with slots assigned in
// index order.
func (w *World) rebuild(g *Grid) error {
	vis := w.spareVis
	scanVisibility(g, vis)
	if c := w.slots.Capacity(); vis.count > c {
		return fmt.Errorf("%w: %d visible voxels, %d slots", meshing.ErrCapacityExceeded, vis.count, c)
	}
	w.grid = g
	w.vis, w.spareVis = vis, w.vis

	w.slots.Reset()
	for i, visible := range vis.flags {
		if !visible {
			continue
		}
		x, y, z := g.Coords(i)
		if err := w.allocate(i, x, y, z); err != nil {
			return err
		}
	}
	return nil
}

func (w *World) allocate(i, x, y, z int) error {
	w.scratch = meshing.EmitBlock(w.scratch[:0], x, y, z, w.grid.cells[i])
	_, err := w.slots.Allocate(i, w.scratch)
	return err
}

// Seed returns the seed of the last Generate call
func (w *World) Seed() int32 {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.seed
}

func (w *World) Config() config.World {
	return w.cfg
}

// Dims returns width, height and depth
func (w *World) Dims() (int, int, int) {
	return w.grid.Dims()
}

// Buffer is the vertex buffer slots are written into
func (w *World) Buffer() meshing.VertexBuffer {
	return w.buf
}

// GetBlock returns the block at (x,y,z); outside the world is air
func (w *World) GetBlock(x, y, z int) block.Type {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.grid.Get(x, y, z)
}

// SetBlock writes the grid only. Visibility and slots are not touched;
// follow up with Rebuild, or use AddBlock/RemoveBlock/UpdateBlock instead.
func (w *World) SetBlock(x, y, z int, t block.Type) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.grid.Set(x, y, z, t)
}

// SurfaceAt returns the topmost non-air voxel of a column, or (-1, Air)
func (w *World) SurfaceAt(x, z int) (int, block.Type) {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.grid.SurfaceAt(x, z)
}

// IsVisible reports the indexed visibility of (x,y,z)
func (w *World) IsVisible(x, y, z int) bool {
	w.mu.RLock()
	defer w.mu.RUnlock()
	if !w.grid.InBounds(x, y, z) {
		return false
	}
	return w.vis.get(w.grid.Index(x, y, z))
}

// SlotOf returns the buffer slot of (x,y,z), or meshing.NoSlot
func (w *World) SlotOf(x, y, z int) int32 {
	w.mu.RLock()
	defer w.mu.RUnlock()
	if !w.grid.InBounds(x, y, z) {
		return meshing.NoSlot
	}
	return w.slots.Slot(w.grid.Index(x, y, z))
}

// VertexCount bounds the draw call: every vertex up to the slot high-water mark
func (w *World) VertexCount() int {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.slots.HighWater() * meshing.VerticesPerBlock
}

// FlushBuffer hands buffer writes not yet uploaded to upload and returns the
// vertex count to draw with them. The world lock is held throughout, so edits
// on other goroutines never change the buffer mid-upload. A buffer that is
// not a MemoryBuffer is written through directly and has nothing to flush.
func (w *World) FlushBuffer(upload func(offsetBytes int, data []float32)) int {
	w.mu.Lock()
	defer w.mu.Unlock()
	if mem, ok := w.buf.(*meshing.MemoryBuffer); ok {
		mem.Flush(upload)
	}
	return w.slots.HighWater() * meshing.VerticesPerBlock
}

// InvalidateBuffer schedules the whole buffer for the next FlushBuffer
func (w *World) InvalidateBuffer() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if mem, ok := w.buf.(*meshing.MemoryBuffer); ok {
		mem.Invalidate()
	}
}

func (w *World) Stats() Stats {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return Stats{
		Visible:   w.vis.count,
		LiveSlots: w.slots.Live(),
		FreeSlots: w.slots.FreeCount(),
		HighWater: w.slots.HighWater(),
		Capacity:  w.slots.Capacity(),
	}
}

// Raycast marches from origin along dir using the configured step and reach
func (w *World) Raycast(origin, dir mgl32.Vec3) physics.RaycastResult {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return physics.Raycast(w.grid, origin, dir, w.cfg.Query.RayStep, w.cfg.Query.RayMaxDistance)
}

// DetectSelectedBlock returns the first solid voxel along the ray
func (w *World) DetectSelectedBlock(origin, dir mgl32.Vec3) ([3]int, bool) {
	r := w.Raycast(origin, dir)
	return r.HitPosition, r.Hit
}

// FindLastAirBlock returns the voxel just before the first solid one along the ray
func (w *World) FindLastAirBlock(origin, dir mgl32.Vec3) ([3]int, bool) {
	r := w.Raycast(origin, dir)
	return r.AdjacentPosition, r.Hit
}

// IsColliding reports whether the box [min,max] overlaps a non-air voxel
func (w *World) IsColliding(min, max mgl32.Vec3) bool {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.sweep.IsColliding(w.grid, min, max)
}

// IsCollidingWith reports whether the box [min,max] covers target
func (w *World) IsCollidingWith(min, max mgl32.Vec3, target [3]int) bool {
	return w.sweep.IsCollidingWith(min, max, target)
}

// CanPlaceAt reports whether a block may go into target: the voxel is inside
// the world, holds air, and the body box [bodyMin,bodyMax] does not cover it.
func (w *World) CanPlaceAt(target [3]int, bodyMin, bodyMax mgl32.Vec3) bool {
	w.mu.RLock()
	defer w.mu.RUnlock()
	x, y, z := target[0], target[1], target[2]
	if !w.grid.InBounds(x, y, z) || w.grid.Get(x, y, z) != block.Air {
		return false
	}
	return !w.sweep.IsCollidingWith(bodyMin, bodyMax, target)
}
