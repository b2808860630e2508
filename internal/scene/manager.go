package scene

import (
	"StillLife3D/internal/logger"
	"StillLife3D/internal/renderer"
	"errors"
	"path/filepath"

	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"
)

// Uniform names the scene pushes into the shader.
const (
	uniformModel       = "model"
	uniformColor       = "objectColor"
	uniformTexture     = "objectTexture"
	uniformUseTexture  = "bUseTexture"
	uniformUseLighting = "bUseLighting"
	uniformUVScale     = "UVscale"
)

// ErrSceneNotPrepared is returned when RenderScene is called before
// PrepareScene has completed.
var ErrSceneNotPrepared = errors.New("scene: render called before prepare")

type sceneState int

const (
	stateUninitialized sceneState = iota
	stateReady
)

// SceneManager prepares and replays the still-life tabletop scene: it owns
// the texture and material registries, the primitive meshes and the shader
// state pushers the draw script is written against.
type SceneManager struct {
	shader     *renderer.ShaderManager
	meshes     *renderer.ShapeMeshes
	textures   *renderer.TextureRegistry
	materials  *renderer.MaterialRegistry
	textureDir string
	state      sceneState
}

// NewSceneManager wires a scene manager to the shader collaborator.
// textureDir is the directory holding the scene's image files.
func NewSceneManager(shader *renderer.ShaderManager, textureDir string) *SceneManager {
	return &SceneManager{
		shader:     shader,
		meshes:     renderer.NewShapeMeshes(),
		textures:   renderer.NewTextureRegistry(),
		materials:  renderer.NewMaterialRegistry(),
		textureDir: textureDir,
	}
}

// PrepareScene performs the one-time setup: define materials, configure
// lights, load and bind textures, upload the primitive meshes. Calling it
// again after it has succeeded is a no-op.
func (sm *SceneManager) PrepareScene() {
	if sm.state == stateReady {
		return
	}

	sm.defineObjectMaterials()
	sm.setupSceneLights()
	sm.loadSceneTextures()

	// One instance of each primitive serves every draw in the scene.
	sm.meshes.LoadPlaneMesh()
	sm.meshes.LoadCylinderMesh()
	sm.meshes.LoadSphereMesh()
	sm.meshes.LoadBoxMesh()

	sm.state = stateReady
	logger.Log.Info("Scene prepared",
		zap.Int("textures", sm.textures.Count()),
		zap.Int("materials", sm.materials.Count()))
}

// Cleanup releases the GPU resources the scene owns and returns the manager
// to its uninitialized state.
func (sm *SceneManager) Cleanup() {
	sm.textures.Destroy()
	sm.meshes.Cleanup()
	sm.state = stateUninitialized
}

// Textures exposes the texture registry.
func (sm *SceneManager) Textures() *renderer.TextureRegistry {
	return sm.textures
}

// Materials exposes the material registry.
func (sm *SceneManager) Materials() *renderer.MaterialRegistry {
	return sm.materials
}

func (sm *SceneManager) loadSceneTextures() {
	sceneTextures := []struct {
		file string
		tag  string
	}{
		{"tableWood.jpg", "woodTexture"},
		{"glassTop.jpg", "glassTexture"},
		{"glassBottom.jpg", "glassTexture2"},
	}

	for i, tex := range sceneTextures {
		path := filepath.Join(sm.textureDir, tex.file)
		if err := sm.textures.Load(path, tex.tag); err != nil {
			logger.Log.Warn("Falling back to placeholder texture",
				zap.String("tag", tex.tag),
				zap.Error(err))
			placeholder := renderer.PlaceholderImage(256, 256, int64(i)+1)
			if err := sm.textures.CreateFromImage(placeholder, tex.tag); err != nil {
				logger.Log.Error("Could not register placeholder texture",
					zap.String("tag", tex.tag),
					zap.Error(err))
			}
		}
	}

	sm.textures.BindAll()
}

// SetTransformations composes the model matrix from the passed scale,
// per-axis rotation angles in degrees and position, and uploads it.
func (sm *SceneManager) SetTransformations(scale mgl32.Vec3, xDegrees, yDegrees, zDegrees float32, position mgl32.Vec3) {
	if sm.shader == nil {
		return
	}
	sm.shader.SetMat4Value(uniformModel, renderer.ComposeTransform(scale, xDegrees, yDegrees, zDegrees, position))
}

// SetShaderColor disables texturing and uploads a flat color for the next
// draw command.
func (sm *SceneManager) SetShaderColor(red, green, blue, alpha float32) {
	if sm.shader == nil {
		return
	}
	sm.shader.SetBoolValue(uniformUseTexture, false)
	sm.shader.SetVec4Value(uniformColor, mgl32.Vec4{red, green, blue, alpha})
}

// SetShaderTexture enables texturing and uploads the texture-unit slot
// registered under tag. An unregistered tag logs and leaves the draw on the
// flat-color path rather than sampling an arbitrary unit.
func (sm *SceneManager) SetShaderTexture(tag string) {
	if sm.shader == nil {
		return
	}
	slot, ok := sm.textures.Slot(tag)
	if !ok {
		logger.Log.Warn("Texture tag not registered, drawing untextured", zap.String("tag", tag))
		sm.shader.SetBoolValue(uniformUseTexture, false)
		return
	}
	sm.shader.SetBoolValue(uniformUseTexture, true)
	sm.shader.SetSampler2DValue(uniformTexture, slot)
}

// SetTextureUVScale uploads the texture coordinate scale for the next draw.
func (sm *SceneManager) SetTextureUVScale(u, v float32) {
	if sm.shader == nil {
		return
	}
	sm.shader.SetVec2Value(uniformUVScale, mgl32.Vec2{u, v})
}

// SetShaderMaterial uploads the material struct uniforms for tag. An
// undefined tag logs and leaves the previous material in place.
func (sm *SceneManager) SetShaderMaterial(tag string) {
	if sm.shader == nil {
		return
	}
	material, ok := sm.materials.Find(tag)
	if !ok {
		logger.Log.Warn("Material tag not defined", zap.String("tag", tag))
		return
	}
	sm.shader.SetVec3Value("material.diffuseColor", material.DiffuseColor)
	sm.shader.SetVec3Value("material.specularColor", material.SpecularColor)
	sm.shader.SetFloatValue("material.shininess", material.Shininess)
}
