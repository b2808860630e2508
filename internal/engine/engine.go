package engine

import (
	"StillLife3D/internal/logger"
	"StillLife3D/internal/renderer"
	"StillLife3D/internal/scene"
	"fmt"
	"runtime"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"go.uber.org/zap"
)

// App owns the window, the GL context and the still-life scene.
type App struct {
	config Config
	window *glfw.Window
	shader *renderer.ShaderManager
	scene  *scene.SceneManager
	camera *renderer.Camera
}

func New(config Config) *App {
	logger.Init()
	logger.Log.Info("StillLife3D initializing",
		zap.Int32("width", config.Width),
		zap.Int32("height", config.Height))
	return &App{config: config}
}

// Run creates the window and GL context, prepares the scene and drives the
// render loop until the window closes. Must be called from the main
// goroutine.
func (app *App) Run() error {
	runtime.LockOSThread()

	if err := glfw.Init(); err != nil {
		return fmt.Errorf("initialize glfw: %w", err)
	}
	defer glfw.Terminate()

	glfw.WindowHint(glfw.Decorated, glfw.True)
	glfw.WindowHint(glfw.Resizable, glfw.True)
	glfw.WindowHint(glfw.DepthBits, 32)
	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)

	window, err := glfw.CreateWindow(int(app.config.Width), int(app.config.Height), app.config.Title, nil, nil)
	if err != nil {
		return fmt.Errorf("create window: %w", err)
	}
	app.window = window
	window.MakeContextCurrent()

	if app.config.VSync {
		glfw.SwapInterval(1)
	}

	if err := gl.Init(); err != nil {
		return fmt.Errorf("initialize OpenGL: %w", err)
	}
	logger.Log.Info("OpenGL context ready",
		zap.String("version", gl.GoStr(gl.GetString(gl.VERSION))))

	app.shader = renderer.NewSceneShader()
	if err := app.shader.Compile(); err != nil {
		return err
	}
	app.shader.Use()

	app.camera = renderer.NewDefaultCamera(app.config.Width, app.config.Height)
	app.scene = scene.NewSceneManager(app.shader, app.config.TextureDir)
	app.scene.PrepareScene()

	gl.Enable(gl.DEPTH_TEST)
	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	gl.ClearColor(app.config.ClearColorR, app.config.ClearColorG, app.config.ClearColorB, 1.0)

	err = app.renderLoop()

	app.scene.Cleanup()
	app.shader.Delete()
	return err
}

func (app *App) renderLoop() error {
	lastWidth, lastHeight := app.config.Width, app.config.Height

	for !app.window.ShouldClose() {
		width, height := app.window.GetSize()
		if int32(width) != lastWidth || int32(height) != lastHeight {
			lastWidth, lastHeight = int32(width), int32(height)
			gl.Viewport(0, 0, int32(width), int32(height))
			app.camera.SetAspectRatio(float32(width) / float32(height))
		}

		gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

		app.shader.SetMat4Value("view", app.camera.GetViewMatrix())
		app.shader.SetMat4Value("projection", app.camera.GetProjectionMatrix())
		app.shader.SetVec3Value("viewPosition", app.camera.Position)

		if err := app.scene.RenderScene(); err != nil {
			return err
		}

		app.window.SwapBuffers()
		glfw.PollEvents()
	}
	return nil
}
