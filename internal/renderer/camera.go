// camera.go
package renderer

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Camera is a fixed perspective camera. The still-life scene has no input
// handling, so there is no keyboard or mouse processing here.
type Camera struct {
	Position mgl32.Vec3 // Camera position in world space
	Front    mgl32.Vec3 // Forward direction vector
	Up       mgl32.Vec3 // Up direction vector
	WorldUp  mgl32.Vec3 // World up vector (usually (0,1,0))

	Fov         float32 // Field of view in degrees
	Near        float32 // Near clipping plane
	Far         float32 // Far clipping plane
	AspectRatio float32 // Screen aspect ratio

	Projection mgl32.Mat4 // Projection matrix
}

// NewDefaultCamera places the camera above and in front of the tabletop,
// looking down at the board.
func NewDefaultCamera(width, height int32) *Camera {
	camera := Camera{
		Position:    mgl32.Vec3{0.0, 0.55, 1.1},
		Front:       mgl32.Vec3{0, 0, -1},
		Up:          mgl32.Vec3{0, 1, 0},
		WorldUp:     mgl32.Vec3{0, 1, 0},
		Fov:         45.0,
		Near:        0.1,
		Far:         100.0,
		AspectRatio: float32(width) / float32(height),
	}
	camera.LookAt(mgl32.Vec3{0.0, 0.05, 0.0})
	camera.UpdateProjection()
	return &camera
}

func (c *Camera) UpdateProjection() {
	c.Projection = mgl32.Perspective(mgl32.DegToRad(c.Fov), c.AspectRatio, c.Near, c.Far)
}

func (c *Camera) SetFov(fov float32) {
	c.Fov = fov
	c.UpdateProjection()
}

func (c *Camera) SetNear(near float32) {
	c.Near = near
	c.UpdateProjection()
}

func (c *Camera) SetFar(far float32) {
	c.Far = far
	c.UpdateProjection()
}

func (c *Camera) SetAspectRatio(aspectRatio float32) {
	c.AspectRatio = aspectRatio
	c.UpdateProjection()
}

// LookAt points the camera at a world-space target and rebuilds the
// orthonormal basis.
func (c *Camera) LookAt(target mgl32.Vec3) {
	c.Front = target.Sub(c.Position).Normalize()
	right := c.Front.Cross(c.WorldUp).Normalize()
	c.Up = right.Cross(c.Front).Normalize()
}

func (c *Camera) GetViewMatrix() mgl32.Mat4 {
	return mgl32.LookAtV(c.Position, c.Position.Add(c.Front), c.Up)
}

func (c *Camera) GetProjectionMatrix() mgl32.Mat4 {
	return c.Projection
}

func (c *Camera) GetViewProjection() mgl32.Mat4 {
	return c.Projection.Mul4(c.GetViewMatrix())
}
