package renderer

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestNewDefaultCamera(t *testing.T) {
	cam := NewDefaultCamera(800, 600)

	if cam == nil {
		t.Fatal("NewDefaultCamera returned nil")
	}

	if cam.Position == (mgl32.Vec3{0, 0, 0}) {
		t.Error("Camera position should not be at origin")
	}

	wantAspect := float32(800) / float32(600)
	if cam.AspectRatio != wantAspect {
		t.Errorf("AspectRatio = %f, want %f", cam.AspectRatio, wantAspect)
	}
}

func TestCameraLookAtNormalizesBasis(t *testing.T) {
	cam := NewDefaultCamera(800, 600)
	cam.LookAt(mgl32.Vec3{1, 2, 3})

	if math.Abs(float64(cam.Front.Len())-1.0) > 0.01 {
		t.Errorf("Front vector should be normalized, length=%f", cam.Front.Len())
	}
	if math.Abs(float64(cam.Up.Len())-1.0) > 0.01 {
		t.Errorf("Up vector should be normalized, length=%f", cam.Up.Len())
	}
	if dot := cam.Front.Dot(cam.Up); math.Abs(float64(dot)) > 0.01 {
		t.Errorf("Front and Up should be orthogonal, dot=%f", dot)
	}
}

func TestCameraGetViewMatrix(t *testing.T) {
	cam := NewDefaultCamera(800, 600)
	cam.Position = mgl32.Vec3{0, 0, 5}
	cam.Front = mgl32.Vec3{0, 0, -1}
	cam.Up = mgl32.Vec3{0, 1, 0}

	view := cam.GetViewMatrix()

	if view.At(3, 3) != 1.0 {
		t.Error("View matrix should be valid (w component = 1)")
	}
}

func TestCameraGetProjectionMatrix(t *testing.T) {
	cam := NewDefaultCamera(800, 600)

	proj := cam.GetProjectionMatrix()

	if proj.At(3, 3) != 0.0 {
		t.Error("Perspective projection should have w=0 at (3,3)")
	}
}

func TestCameraGetViewProjection(t *testing.T) {
	cam := NewDefaultCamera(800, 600)

	vp := cam.GetViewProjection()

	zero := mgl32.Mat4{}
	if vp == zero {
		t.Error("ViewProjection should not be zero matrix")
	}
}

func TestCameraSetAspectRatioRebuildsProjection(t *testing.T) {
	cam := NewDefaultCamera(800, 600)
	before := cam.Projection

	cam.SetAspectRatio(2.0)

	if cam.Projection == before {
		t.Error("SetAspectRatio should rebuild the projection matrix")
	}
}
