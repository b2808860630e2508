package scene

import (
	"StillLife3D/internal/renderer"

	"github.com/go-gl/mathgl/mgl32"
)

// sceneMaterials is the hand-tuned material table for the tabletop scene.
func sceneMaterials() []renderer.Material {
	return []renderer.Material{
		{
			Tag:           "cheese",
			DiffuseColor:  mgl32.Vec3{1.0, 0.85, 0.3},
			SpecularColor: mgl32.Vec3{0.9, 0.8, 0.4},
			Shininess:     32.0,
		},
		{
			Tag:           "grapes",
			DiffuseColor:  mgl32.Vec3{0.6, 0.1, 0.6},
			SpecularColor: mgl32.Vec3{0.8, 0.2, 0.8},
			Shininess:     32.0,
		},
		{
			Tag:           "cherries",
			DiffuseColor:  mgl32.Vec3{1.0, 0.0, 0.0},
			SpecularColor: mgl32.Vec3{0.9, 0.1, 0.1},
			Shininess:     32.0,
		},
		{
			Tag:           "crackers",
			DiffuseColor:  mgl32.Vec3{0.9, 0.75, 0.5},
			SpecularColor: mgl32.Vec3{0.7, 0.65, 0.5},
			Shininess:     8.0,
		},
		{
			Tag:           "glass",
			DiffuseColor:  mgl32.Vec3{1.0, 1.0, 1.0},
			SpecularColor: mgl32.Vec3{1.0, 1.0, 1.0},
			Shininess:     500.0,
		},
		{
			Tag:           "wood",
			DiffuseColor:  mgl32.Vec3{0.7, 0.45, 0.2},
			SpecularColor: mgl32.Vec3{0.3, 0.2, 0.1},
			Shininess:     16.0,
		},
	}
}

func (sm *SceneManager) defineObjectMaterials() {
	for _, material := range sceneMaterials() {
		sm.materials.Define(material)
	}
}
