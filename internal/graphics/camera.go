package graphics

import (
	"math"

	"voxel-world/internal/config"

	"github.com/go-gl/mathgl/mgl32"
)

var worldUp = mgl32.Vec3{0, 1, 0}

// Body extents around the eye, used as the placement guard box
const (
	bodyHalfWidth = 0.3
	eyeHeight     = 1.6
	headroom      = 0.2
)

// Camera is a free-flying first-person camera. Yaw and pitch are degrees;
// yaw -90 looks down -Z.
type Camera struct {
	Position    mgl32.Vec3
	Yaw         float32
	Pitch       float32
	AspectRatio float32
	NearPlane   float32
}

func NewCamera(width, height int, position mgl32.Vec3) *Camera {
	c := &Camera{
		Position:  position,
		Yaw:       -90,
		NearPlane: 0.1,
	}
	c.SetViewport(width, height)
	return c
}

// SetViewport updates the aspect ratio; a zero height is ignored
func (c *Camera) SetViewport(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	c.AspectRatio = float32(width) / float32(height)
}

// Front is the unit view direction
func (c *Camera) Front() mgl32.Vec3 {
	yaw := float64(mgl32.DegToRad(c.Yaw))
	pitch := float64(mgl32.DegToRad(c.Pitch))
	return mgl32.Vec3{
		float32(math.Cos(yaw) * math.Cos(pitch)),
		float32(math.Sin(pitch)),
		float32(math.Sin(yaw) * math.Cos(pitch)),
	}.Normalize()
}

func (c *Camera) Right() mgl32.Vec3 {
	return c.Front().Cross(worldUp).Normalize()
}

// Look turns the camera; pitch stays within ±89°
func (c *Camera) Look(dyaw, dpitch float32) {
	c.Yaw += dyaw
	c.Pitch = mgl32.Clamp(c.Pitch+dpitch, -89, 89)
}

// Move translates along the horizontal view direction, the right vector and world up
func (c *Camera) Move(forward, right, up float32) {
	f := c.Front()
	flat := mgl32.Vec3{f.X(), 0, f.Z()}
	if flat.Len() > 0 {
		flat = flat.Normalize()
	}
	c.Position = c.Position.
		Add(flat.Mul(forward)).
		Add(c.Right().Mul(right)).
		Add(worldUp.Mul(up))
}

// Body returns the box occupied by the viewer standing at the camera position
func (c *Camera) Body() (mgl32.Vec3, mgl32.Vec3) {
	lo := c.Position.Sub(mgl32.Vec3{bodyHalfWidth, eyeHeight, bodyHalfWidth})
	hi := c.Position.Add(mgl32.Vec3{bodyHalfWidth, headroom, bodyHalfWidth})
	return lo, hi
}

func (c *Camera) ViewMatrix() mgl32.Mat4 {
	return mgl32.LookAtV(c.Position, c.Position.Add(c.Front()), worldUp)
}

// ProjectionMatrix uses the runtime FOV and view distance settings
func (c *Camera) ProjectionMatrix() mgl32.Mat4 {
	return mgl32.Perspective(mgl32.DegToRad(config.GetFOV()), c.AspectRatio, c.NearPlane, config.GetViewDistance())
}
