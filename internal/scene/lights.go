package scene

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
)

type directionalLight struct {
	Direction mgl32.Vec3
	Ambient   mgl32.Vec3
	Diffuse   mgl32.Vec3
	Specular  mgl32.Vec3
}

type pointLight struct {
	Position mgl32.Vec3
	Ambient  mgl32.Vec3
	Diffuse  mgl32.Vec3
	Specular mgl32.Vec3
}

// sceneDirectionalLight is the main warm sunlight.
func sceneDirectionalLight() directionalLight {
	return directionalLight{
		Direction: mgl32.Vec3{-0.5, -1.0, -0.3},
		Ambient:   mgl32.Vec3{0.35, 0.35, 0.35},
		Diffuse:   mgl32.Vec3{1.0, 0.92, 0.75},
		Specular:  mgl32.Vec3{1.0, 1.0, 1.0},
	}
}

// scenePointLights returns the soft colored accent lights.
func scenePointLights() []pointLight {
	return []pointLight{
		{
			Position: mgl32.Vec3{0.25, 0.25, 0.15},
			Ambient:  mgl32.Vec3{0.05, 0.02, 0.03},
			Diffuse:  mgl32.Vec3{1.0, 0.6, 0.45},
			Specular: mgl32.Vec3{1.0, 0.7, 0.5},
		},
	}
}

func (sm *SceneManager) setupSceneLights() {
	if sm.shader == nil {
		return
	}

	sm.shader.SetBoolValue(uniformUseLighting, true)

	sun := sceneDirectionalLight()
	sm.shader.SetVec3Value("directionalLight.direction", sun.Direction)
	sm.shader.SetVec3Value("directionalLight.ambient", sun.Ambient)
	sm.shader.SetVec3Value("directionalLight.diffuse", sun.Diffuse)
	sm.shader.SetVec3Value("directionalLight.specular", sun.Specular)
	sm.shader.SetBoolValue("directionalLight.bActive", true)

	for i, light := range scenePointLights() {
		prefix := fmt.Sprintf("pointLights[%d]", i)
		sm.shader.SetVec3Value(prefix+".position", light.Position)
		sm.shader.SetVec3Value(prefix+".ambient", light.Ambient)
		sm.shader.SetVec3Value(prefix+".diffuse", light.Diffuse)
		sm.shader.SetVec3Value(prefix+".specular", light.Specular)
		sm.shader.SetBoolValue(prefix+".bActive", true)
	}
}
