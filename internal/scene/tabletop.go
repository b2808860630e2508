package scene

import (
	"github.com/go-gl/mathgl/mgl32"
)

// RenderScene replays the tabletop draw script in fixed order: the wood
// board, the cheese slices, the grapes, the cherries, the crackers and the
// wine glass. Each object is a transform, material/texture/color and draw
// triple against a shared primitive mesh.
func (sm *SceneManager) RenderScene() error {
	if sm.state != stateReady {
		return ErrSceneNotPrepared
	}

	sm.drawBoard()
	sm.drawCheeseSlices()
	sm.drawGrapes()
	sm.drawCherries()
	sm.drawCrackers()
	sm.drawWineGlass()
	return nil
}

func (sm *SceneManager) drawBoard() {
	sm.SetTransformations(
		mgl32.Vec3{0.5, 0.02, 0.65},
		0.0, 0.0, 0.0,
		mgl32.Vec3{0.0, 0.0, 0.0})

	sm.SetShaderTexture("woodTexture")
	sm.SetTextureUVScale(1.0, 1.0)
	sm.SetShaderMaterial("wood")

	sm.meshes.DrawPlaneMesh()
}

func (sm *SceneManager) drawCheeseSlices() {
	positions := []mgl32.Vec3{
		{0.2, 0.02, 0.15},
		{0.25, 0.02, 0.18},
		{0.28, 0.02, 0.12},
	}
	rotations := []mgl32.Vec3{
		{0.0, 0.0, 5.0},
		{0.0, 10.0, 0.0},
		{0.0, 15.0, -5.0},
	}

	for i := range positions {
		sm.SetTransformations(
			mgl32.Vec3{0.1, 0.01, 0.05},
			rotations[i].X(), rotations[i].Y(), rotations[i].Z(),
			positions[i])
		sm.SetShaderMaterial("cheese")
		sm.meshes.DrawBoxMesh()
	}
}

func (sm *SceneManager) drawGrapes() {
	positions := []mgl32.Vec3{
		{0.0, 0.03, 0.2},
		{0.025, 0.03, 0.215},
		{-0.02, 0.03, 0.185},
		{0.015, 0.03, 0.18},
	}

	for _, position := range positions {
		sm.SetTransformations(
			mgl32.Vec3{0.02, 0.02, 0.02},
			0.0, 0.0, 0.0,
			position)
		sm.SetShaderMaterial("grapes")
		sm.meshes.DrawSphereMesh()
	}
}

func (sm *SceneManager) drawCherries() {
	positions := []mgl32.Vec3{
		{-0.1, 0.03, -0.05},
		{-0.08, 0.03, -0.07},
		{-0.115, 0.03, -0.045},
	}

	for _, position := range positions {
		sm.SetTransformations(
			mgl32.Vec3{0.02, 0.02, 0.02},
			0.0, 0.0, 0.0,
			position)
		sm.SetShaderMaterial("cherries")
		sm.meshes.DrawSphereMesh()
	}
}

func (sm *SceneManager) drawCrackers() {
	positions := []mgl32.Vec3{
		{-0.2, 0.025, 0.1},
		{-0.23, 0.025, 0.14},
		{-0.18, 0.025, 0.07},
	}
	rotations := []mgl32.Vec3{
		{0.0, 0.0, 10.0},
		{0.0, 5.0, -5.0},
		{0.0, -10.0, 15.0},
	}

	for i := range positions {
		sm.SetTransformations(
			mgl32.Vec3{0.05, 0.01, 0.05},
			rotations[i].X(), rotations[i].Y(), rotations[i].Z(),
			positions[i])
		sm.SetShaderMaterial("crackers")
		sm.meshes.DrawCylinderMesh()
	}
}

func (sm *SceneManager) drawWineGlass() {
	// Base.
	sm.SetTransformations(
		mgl32.Vec3{0.08, 0.02, 0.08},
		0.0, 0.0, 0.0,
		mgl32.Vec3{0.3, 0.02, -0.15})
	sm.SetShaderColor(0.7, 0.85, 0.9, 0.4)
	sm.SetShaderMaterial("glass")
	sm.SetShaderTexture("glassTexture")
	sm.SetTextureUVScale(1.0, 1.0)
	sm.meshes.DrawCylinderMesh()

	// Stem.
	sm.SetTransformations(
		mgl32.Vec3{0.03, 0.15, 0.03},
		0.0, 0.0, 0.0,
		mgl32.Vec3{0.3, 0.05, -0.15})
	sm.SetShaderColor(0.7, 0.85, 0.9, 0.4)
	sm.SetShaderMaterial("glass")
	sm.meshes.DrawCylinderMesh()

	// Cup.
	sm.SetTransformations(
		mgl32.Vec3{0.08, 0.12, 0.08},
		0.0, 0.0, 0.0,
		mgl32.Vec3{0.3, 0.2, -0.15})
	sm.SetShaderColor(0.7, 0.85, 0.9, 0.4)
	sm.SetShaderTexture("glassTexture2")
	sm.SetTextureUVScale(1.0, 1.0)
	sm.SetShaderMaterial("glass")
	sm.meshes.DrawCylinderMesh()
}
