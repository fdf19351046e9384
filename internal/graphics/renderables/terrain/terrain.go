package terrain

import (
	"path/filepath"

	"voxel-world/internal/graphics"
	renderer "voxel-world/internal/graphics/renderer"
	"voxel-world/internal/profiling"
	"voxel-world/internal/world"
)

const (
	ShadersDir = "assets/shaders/world"
)

var (
	VertShader = filepath.Join(ShadersDir, "world.vert")
	FragShader = filepath.Join(ShadersDir, "world.frag")
)

// Terrain draws the world's slot buffer in a single call bounded by the
// slot high-water mark.
type Terrain struct {
	shader  *graphics.Shader
	buffer  *graphics.BlockBuffer
	world   *world.World
	palette []float32
}

// NewTerrain creates a terrain renderable mirroring w's slot buffer on the GPU
func NewTerrain(w *world.World) *Terrain {
	return &Terrain{world: w}
}

func (t *Terrain) Init() error {
	var err error
	t.shader, err = graphics.NewShader(VertShader, FragShader)
	if err != nil {
		return err
	}
	t.buffer = graphics.NewBlockBuffer(t.world.Buffer().CapacityBytes())
	t.palette = graphics.LayerPalette()
	// the GPU buffer starts empty
	t.world.InvalidateBuffer()
	return nil
}

func (t *Terrain) Render(ctx renderer.RenderContext) {
	defer profiling.Track("renderer.terrain")()

	sent := 0
	vertices := t.world.FlushBuffer(func(offsetBytes int, data []float32) {
		sent += t.buffer.Upload(offsetBytes, data)
	})
	if sent > 0 {
		profiling.Count("renderer.uploadBytes", int64(sent))
	}

	t.shader.Use()
	t.shader.SetMatrix4("proj", &ctx.Proj[0])
	t.shader.SetMatrix4("view", &ctx.View[0])
	t.shader.SetVector3Array("palette", t.palette)
	t.buffer.Draw(vertices)
}

func (t *Terrain) Dispose() {
	if t.buffer != nil {
		t.buffer.Dispose()
	}
	if t.shader != nil {
		t.shader.Delete()
	}
}

func (t *Terrain) SetViewport(width, height int) {}
