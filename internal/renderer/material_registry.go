package renderer

import (
	"StillLife3D/internal/logger"

	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"
)

// Material holds the surface properties pushed into the shader's material
// struct uniforms.
type Material struct {
	Tag           string
	DiffuseColor  mgl32.Vec3
	SpecularColor mgl32.Vec3
	Shininess     float32
}

// MaterialRegistry is the literal material table for the scene, read-only
// after setup.
type MaterialRegistry struct {
	materials []Material
	index     map[string]int
}

func NewMaterialRegistry() *MaterialRegistry {
	return &MaterialRegistry{
		index: make(map[string]int),
	}
}

// Define registers a material. Redefining a tag replaces the earlier entry.
func (mr *MaterialRegistry) Define(material Material) {
	if i, exists := mr.index[material.Tag]; exists {
		logger.Log.Warn("Material redefined", zap.String("tag", material.Tag))
		mr.materials[i] = material
		return
	}
	mr.index[material.Tag] = len(mr.materials)
	mr.materials = append(mr.materials, material)
}

// Find returns the material registered under tag.
func (mr *MaterialRegistry) Find(tag string) (Material, bool) {
	i, ok := mr.index[tag]
	if !ok {
		return Material{}, false
	}
	return mr.materials[i], true
}

func (mr *MaterialRegistry) Count() int {
	return len(mr.materials)
}
