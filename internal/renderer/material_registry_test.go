package renderer

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestMaterialRegistryDefineAndFind(t *testing.T) {
	registry := NewMaterialRegistry()
	registry.Define(Material{
		Tag:           "wood",
		DiffuseColor:  mgl32.Vec3{0.7, 0.45, 0.2},
		SpecularColor: mgl32.Vec3{0.3, 0.2, 0.1},
		Shininess:     16.0,
	})

	material, ok := registry.Find("wood")
	if !ok {
		t.Fatal("Find should locate a defined material")
	}
	if material.DiffuseColor != (mgl32.Vec3{0.7, 0.45, 0.2}) {
		t.Errorf("wrong diffuse color: %v", material.DiffuseColor)
	}
	if material.Shininess != 16.0 {
		t.Errorf("wrong shininess: %f", material.Shininess)
	}
}

func TestMaterialRegistryFindMissing(t *testing.T) {
	registry := NewMaterialRegistry()

	if _, ok := registry.Find("nope"); ok {
		t.Error("Find should report not found for an undefined tag")
	}
}

func TestMaterialRegistryRedefineReplaces(t *testing.T) {
	registry := NewMaterialRegistry()
	registry.Define(Material{Tag: "glass", Shininess: 100})
	registry.Define(Material{Tag: "glass", Shininess: 500})

	if registry.Count() != 1 {
		t.Errorf("redefinition should not grow the table, got %d entries", registry.Count())
	}
	material, ok := registry.Find("glass")
	if !ok || material.Shininess != 500 {
		t.Errorf("Find = (%v, %v), want replaced entry with shininess 500", material, ok)
	}
}
