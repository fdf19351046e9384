package renderer

import (
	"voxel-world/internal/graphics"
	"voxel-world/internal/world"

	"github.com/go-gl/mathgl/mgl32"
)

// RenderContext provides shared per-frame state to all renderables
type RenderContext struct {
	Camera *graphics.Camera
	World  *world.World
	DT     float64
	View   mgl32.Mat4
	Proj   mgl32.Mat4

	// Selected is the voxel under the crosshair, valid when HasSelection is set
	Selected     [3]int
	HasSelection bool
}

// Renderable interface defines the lifecycle for renderable features
type Renderable interface {
	Init() error
	Render(ctx RenderContext)
	Dispose()
	SetViewport(width, height int)
}
