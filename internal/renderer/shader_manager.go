package renderer

import (
	"github.com/go-gl/mathgl/mgl32"
)

// ShaderManager is the uniform-setting collaborator the scene layer talks
// to. It owns the scene shader program and pushes named uniforms through a
// location cache, including dotted struct members such as
// "directionalLight.direction" or "pointLights[0].position".
type ShaderManager struct {
	shader   Shader
	uniforms *UniformCache
}

// NewSceneShader creates a shader manager around the still-life scene
// program. Compile must be called once a GL context is current.
func NewSceneShader() *ShaderManager {
	return &ShaderManager{shader: InitSceneShader()}
}

// Compile builds the program and prepares the uniform cache.
func (sm *ShaderManager) Compile() error {
	if err := sm.shader.Compile(); err != nil {
		return err
	}
	sm.uniforms = NewUniformCache(sm.shader.Program())
	return nil
}

// Use makes the scene program current. Uniform setters assume this has been
// called.
func (sm *ShaderManager) Use() {
	sm.shader.Use()
}

func (sm *ShaderManager) Delete() {
	sm.shader.Delete()
	sm.uniforms = nil
}

func (sm *ShaderManager) SetMat4Value(name string, value mgl32.Mat4) {
	if sm.uniforms != nil {
		sm.uniforms.SetMat4(name, value)
	}
}

func (sm *ShaderManager) SetVec4Value(name string, value mgl32.Vec4) {
	if sm.uniforms != nil {
		sm.uniforms.SetVec4(name, value)
	}
}

func (sm *ShaderManager) SetVec3Value(name string, value mgl32.Vec3) {
	if sm.uniforms != nil {
		sm.uniforms.SetVec3(name, value)
	}
}

func (sm *ShaderManager) SetVec2Value(name string, value mgl32.Vec2) {
	if sm.uniforms != nil {
		sm.uniforms.SetVec2(name, value)
	}
}

func (sm *ShaderManager) SetFloatValue(name string, value float32) {
	if sm.uniforms != nil {
		sm.uniforms.SetFloat(name, value)
	}
}

func (sm *ShaderManager) SetIntValue(name string, value int32) {
	if sm.uniforms != nil {
		sm.uniforms.SetInt(name, value)
	}
}

func (sm *ShaderManager) SetBoolValue(name string, value bool) {
	if sm.uniforms == nil {
		return
	}
	var v int32
	if value {
		v = 1
	}
	sm.uniforms.SetInt(name, v)
}

// SetSampler2DValue assigns a texture unit index to a sampler uniform.
func (sm *ShaderManager) SetSampler2DValue(name string, slot int32) {
	if sm.uniforms != nil {
		sm.uniforms.SetInt(name, slot)
	}
}
