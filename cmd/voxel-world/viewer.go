package main

import (
	"log"
	"time"

	"voxel-world/internal/block"
	"voxel-world/internal/graphics"
	"voxel-world/internal/graphics/renderables/crosshair"
	"voxel-world/internal/graphics/renderables/terrain"
	"voxel-world/internal/graphics/renderables/wireframe"
	renderer "voxel-world/internal/graphics/renderer"
	"voxel-world/internal/input"
	"voxel-world/internal/profiling"
	"voxel-world/internal/world"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"
)

const (
	windowWidth      = 900
	windowHeight     = 600
	moveSpeed        = 8.0 // blocks per second
	fastMultiplier   = 3.0
	mouseSensitivity = 0.1
	slowFrame        = 50 * time.Millisecond
)

func setupWindow() (*glfw.Window, error) {
	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)

	window, err := glfw.CreateWindow(windowWidth, windowHeight, "voxel-world", nil, nil)
	if err != nil {
		return nil, err
	}
	window.MakeContextCurrent()
	if err := gl.Init(); err != nil {
		return nil, err
	}
	glfw.SwapInterval(0)
	window.SetInputMode(glfw.CursorMode, glfw.CursorDisabled)
	return window, nil
}

// spawnPoint puts the eye above the center column
func spawnPoint(w *world.World) mgl32.Vec3 {
	width, _, depth := w.Dims()
	cx, cz := width/2, depth/2
	y, _ := w.SurfaceAt(cx, cz)
	return mgl32.Vec3{float32(cx) + 0.5, float32(y+1) + 1.7, float32(cz) + 0.5}
}

// viewer holds the state of one interactive session
type viewer struct {
	window   *glfw.Window
	world    *world.World
	renderer *renderer.Renderer
	camera   *graphics.Camera
	input    *input.InputManager
	limiter  frameLimiter

	held   block.Type
	paused bool

	lastX, lastY float64
	firstMouse   bool
}

func runViewer(w *world.World) error {
	if err := glfw.Init(); err != nil {
		return err
	}
	defer glfw.Terminate()

	window, err := setupWindow()
	if err != nil {
		return err
	}

	cam := graphics.NewCamera(windowWidth, windowHeight, spawnPoint(w))
	r, err := renderer.NewRenderer(cam,
		terrain.NewTerrain(w),
		wireframe.NewWireframe(),
		crosshair.NewCrosshair(),
	)
	if err != nil {
		return err
	}
	defer r.Dispose()

	v := &viewer{
		window:     window,
		world:      w,
		renderer:   r,
		camera:     cam,
		input:      input.NewInputManager(),
		held:       block.Grass,
		firstMouse: true,
	}
	v.setupCallbacks()
	v.run()
	return nil
}

func (v *viewer) setupCallbacks() {
	v.input.Attach(v.window)

	v.window.SetCursorPosCallback(func(_ *glfw.Window, x, y float64) {
		if v.paused {
			return
		}
		if v.firstMouse {
			v.lastX, v.lastY, v.firstMouse = x, y, false
			return
		}
		dx, dy := x-v.lastX, v.lastY-y
		v.lastX, v.lastY = x, y
		v.camera.Look(float32(dx)*mouseSensitivity, float32(dy)*mouseSensitivity)
	})

	v.window.SetFramebufferSizeCallback(func(w *glfw.Window, fbWidth, fbHeight int) {
		v.renderer.UpdateViewport(fbWidth, fbHeight)
	})
}

func (v *viewer) run() {
	lastTime := time.Now()
	for !v.window.ShouldClose() {
		profiling.ResetFrame()
		now := time.Now()
		dt := now.Sub(lastTime).Seconds()
		lastTime = now

		v.handleInput(float32(dt))
		func() { defer profiling.Track("renderer.Render")(); v.renderer.Render(v.world, dt) }()

		func() { defer profiling.Track("glfw.SwapBuffers")(); v.window.SwapBuffers() }()
		v.input.PostUpdate()
		func() { defer profiling.Track("glfw.PollEvents")(); glfw.PollEvents() }()

		if d := time.Since(now); d > slowFrame {
			log.Printf("slow frame %.1fms: %s [%s]", float64(d.Microseconds())/1000, profiling.TopN(5), profiling.Counters())
		}
		v.limiter.Wait()
	}
}

func (v *viewer) handleInput(dt float32) {
	im := v.input
	if im.JustPressed(input.ActionPause) {
		v.paused = !v.paused
		if v.paused {
			v.window.SetInputMode(glfw.CursorMode, glfw.CursorNormal)
		} else {
			v.window.SetInputMode(glfw.CursorMode, glfw.CursorDisabled)
			v.firstMouse = true
		}
	}
	if v.paused {
		return
	}

	step := moveSpeed * dt
	if im.IsActive(input.ActionFast) {
		step *= fastMultiplier
	}
	var forward, right, up float32
	if im.IsActive(input.ActionMoveForward) {
		forward += step
	}
	if im.IsActive(input.ActionMoveBackward) {
		forward -= step
	}
	if im.IsActive(input.ActionMoveRight) {
		right += step
	}
	if im.IsActive(input.ActionMoveLeft) {
		right -= step
	}
	if im.IsActive(input.ActionMoveUp) {
		up += step
	}
	if im.IsActive(input.ActionMoveDown) {
		up -= step
	}
	v.camera.Move(forward, right, up)

	placeable := block.Placeable()
	for i, a := range input.SelectActions {
		if i < len(placeable) && im.JustPressed(a) {
			v.held = placeable[i]
			log.Printf("holding %s", v.held)
		}
	}

	if im.JustPressed(input.ActionRemoveBlock) {
		removeSelected(v.world, v.camera)
	}
	if im.JustPressed(input.ActionPlaceBlock) {
		placeHeld(v.world, v.camera, v.held)
	}
	if im.JustPressed(input.ActionRegenerate) {
		seed := int32(time.Now().UnixNano())
		log.Printf("world seed: %d", seed)
		if err := v.world.Generate(seed); err != nil {
			log.Printf("regenerate: %v; keeping seed %d", err, v.world.Seed())
		} else {
			v.camera.Position = spawnPoint(v.world)
		}
	}
	if im.JustPressed(input.ActionVerify) {
		if err := v.world.CheckInvariants(); err != nil {
			log.Printf("verify: %v", err)
		} else {
			log.Printf("verify: ok, %+v", v.world.Stats())
		}
	}
}
