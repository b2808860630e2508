package renderer

import (
	"StillLife3D/internal/logger"
	"math"
)

// Tessellation settings for the curved primitives.
const (
	sphereStacks    = 16
	sphereSectors   = 32
	cylinderSectors = 36
)

// ShapeMeshes owns the four primitive meshes the scene script draws from.
// Each primitive is uploaded at most once no matter how many times it is
// drawn or how often the load methods are called.
type ShapeMeshes struct {
	plane    Mesh
	box      Mesh
	sphere   Mesh
	cylinder Mesh
}

func NewShapeMeshes() *ShapeMeshes {
	return &ShapeMeshes{}
}

// LoadPlaneMesh uploads a 2x2 quad in the XZ plane centered at the origin.
func (s *ShapeMeshes) LoadPlaneMesh() {
	vertices, indices := buildPlane()
	s.plane.Upload(vertices, indices)
}

// LoadBoxMesh uploads a unit cube centered at the origin.
func (s *ShapeMeshes) LoadBoxMesh() {
	vertices, indices := buildBox()
	s.box.Upload(vertices, indices)
}

// LoadSphereMesh uploads a unit-radius UV sphere centered at the origin.
func (s *ShapeMeshes) LoadSphereMesh() {
	vertices, indices := buildSphere(sphereStacks, sphereSectors)
	s.sphere.Upload(vertices, indices)
}

// LoadCylinderMesh uploads a capped unit-radius cylinder with its base on
// the XZ plane, extending one unit up.
func (s *ShapeMeshes) LoadCylinderMesh() {
	vertices, indices := buildCylinder(cylinderSectors)
	s.cylinder.Upload(vertices, indices)
}

func (s *ShapeMeshes) DrawPlaneMesh()    { s.plane.Draw() }
func (s *ShapeMeshes) DrawBoxMesh()      { s.box.Draw() }
func (s *ShapeMeshes) DrawSphereMesh()   { s.sphere.Draw() }
func (s *ShapeMeshes) DrawCylinderMesh() { s.cylinder.Draw() }

// Cleanup releases the GPU buffers for every uploaded primitive.
func (s *ShapeMeshes) Cleanup() {
	s.plane.Cleanup()
	s.box.Cleanup()
	s.sphere.Cleanup()
	s.cylinder.Cleanup()
	logger.Log.Info("Primitive meshes released")
}

func buildPlane() ([]float32, []uint32) {
	vertices := []float32{
		// x, y, z, u, v, nx, ny, nz
		-1, 0, 1, 0, 0, 0, 1, 0,
		1, 0, 1, 1, 0, 0, 1, 0,
		1, 0, -1, 1, 1, 0, 1, 0,
		-1, 0, -1, 0, 1, 0, 1, 0,
	}
	indices := []uint32{0, 1, 2, 0, 2, 3}
	return vertices, indices
}

type boxFace struct {
	corners [4][3]float32
	normal  [3]float32
}

func buildBox() ([]float32, []uint32) {
	const h = 0.5
	faces := []boxFace{
		{ // front (+Z)
			corners: [4][3]float32{{-h, -h, h}, {h, -h, h}, {h, h, h}, {-h, h, h}},
			normal:  [3]float32{0, 0, 1},
		},
		{ // back (-Z)
			corners: [4][3]float32{{h, -h, -h}, {-h, -h, -h}, {-h, h, -h}, {h, h, -h}},
			normal:  [3]float32{0, 0, -1},
		},
		{ // left (-X)
			corners: [4][3]float32{{-h, -h, -h}, {-h, -h, h}, {-h, h, h}, {-h, h, -h}},
			normal:  [3]float32{-1, 0, 0},
		},
		{ // right (+X)
			corners: [4][3]float32{{h, -h, h}, {h, -h, -h}, {h, h, -h}, {h, h, h}},
			normal:  [3]float32{1, 0, 0},
		},
		{ // top (+Y)
			corners: [4][3]float32{{-h, h, h}, {h, h, h}, {h, h, -h}, {-h, h, -h}},
			normal:  [3]float32{0, 1, 0},
		},
		{ // bottom (-Y)
			corners: [4][3]float32{{-h, -h, -h}, {h, -h, -h}, {h, -h, h}, {-h, -h, h}},
			normal:  [3]float32{0, -1, 0},
		},
	}
	uvs := [4][2]float32{{0, 0}, {1, 0}, {1, 1}, {0, 1}}

	vertices := make([]float32, 0, len(faces)*4*vertexStride)
	indices := make([]uint32, 0, len(faces)*6)
	for f, face := range faces {
		for i, corner := range face.corners {
			vertices = append(vertices,
				corner[0], corner[1], corner[2],
				uvs[i][0], uvs[i][1],
				face.normal[0], face.normal[1], face.normal[2])
		}
		base := uint32(f * 4)
		indices = append(indices, base, base+1, base+2, base, base+2, base+3)
	}
	return vertices, indices
}

func buildSphere(stacks, sectors int) ([]float32, []uint32) {
	vertices := make([]float32, 0, (stacks+1)*(sectors+1)*vertexStride)
	indices := make([]uint32, 0, stacks*sectors*6)

	for stack := 0; stack <= stacks; stack++ {
		v := float64(stack) / float64(stacks)
		phi := math.Pi/2 - math.Pi*v
		y := math.Sin(phi)
		r := math.Cos(phi)

		for sector := 0; sector <= sectors; sector++ {
			u := float64(sector) / float64(sectors)
			theta := 2 * math.Pi * u
			x := r * math.Cos(theta)
			z := r * math.Sin(theta)

			vertices = append(vertices,
				float32(x), float32(y), float32(z),
				float32(u), float32(1-v),
				float32(x), float32(y), float32(z))
		}
	}

	for stack := 0; stack < stacks; stack++ {
		k1 := uint32(stack * (sectors + 1))
		k2 := k1 + uint32(sectors) + 1
		for sector := 0; sector < sectors; sector++ {
			if stack != 0 {
				indices = append(indices, k1, k2, k1+1)
			}
			if stack != stacks-1 {
				indices = append(indices, k1+1, k2, k2+1)
			}
			k1++
			k2++
		}
	}
	return vertices, indices
}

func buildCylinder(sectors int) ([]float32, []uint32) {
	vertices := make([]float32, 0, ((sectors+1)*4+2)*vertexStride)
	indices := make([]uint32, 0, sectors*12)

	// Side wall: two rings sharing outward-facing normals.
	for sector := 0; sector <= sectors; sector++ {
		u := float64(sector) / float64(sectors)
		theta := 2 * math.Pi * u
		x := float32(math.Cos(theta))
		z := float32(math.Sin(theta))

		vertices = append(vertices,
			x, 0, z, float32(u), 0, x, 0, z,
			x, 1, z, float32(u), 1, x, 0, z)
	}
	for sector := 0; sector < sectors; sector++ {
		b0 := uint32(sector * 2)
		t0 := b0 + 1
		b1 := b0 + 2
		t1 := b0 + 3
		indices = append(indices, b0, t0, t1, b0, t1, b1)
	}

	// Top cap.
	topCenter := uint32(len(vertices) / vertexStride)
	vertices = append(vertices, 0, 1, 0, 0.5, 0.5, 0, 1, 0)
	topRing := topCenter + 1
	for sector := 0; sector <= sectors; sector++ {
		theta := 2 * math.Pi * float64(sector) / float64(sectors)
		x := float32(math.Cos(theta))
		z := float32(math.Sin(theta))
		vertices = append(vertices, x, 1, z, 0.5+x/2, 0.5+z/2, 0, 1, 0)
	}
	for sector := 0; sector < sectors; sector++ {
		indices = append(indices, topCenter, topRing+uint32(sector)+1, topRing+uint32(sector))
	}

	// Bottom cap.
	bottomCenter := uint32(len(vertices) / vertexStride)
	vertices = append(vertices, 0, 0, 0, 0.5, 0.5, 0, -1, 0)
	bottomRing := bottomCenter + 1
	for sector := 0; sector <= sectors; sector++ {
		theta := 2 * math.Pi * float64(sector) / float64(sectors)
		x := float32(math.Cos(theta))
		z := float32(math.Sin(theta))
		vertices = append(vertices, x, 0, z, 0.5+x/2, 0.5+z/2, 0, -1, 0)
	}
	for sector := 0; sector < sectors; sector++ {
		indices = append(indices, bottomCenter, bottomRing+uint32(sector), bottomRing+uint32(sector)+1)
	}

	return vertices, indices
}
