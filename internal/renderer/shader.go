package renderer

import (
	"StillLife3D/internal/logger"
	"fmt"
	"strings"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"
)

// =============================================================
//
//	Shaders
//
// =============================================================
type Shader struct {
	vertexSource   string
	fragmentSource string
	program        uint32
	isCompiled     bool
}

func (shader *Shader) Use() {
	gl.UseProgram(shader.program)
}

func (shader *Shader) Program() uint32 {
	return shader.program
}

func (shader *Shader) IsCompiled() bool {
	return shader.isCompiled
}

// Compile builds and links the shader program. Requires a current OpenGL
// context.
func (shader *Shader) Compile() error {
	vertex, err := compileShader(shader.vertexSource, gl.VERTEX_SHADER)
	if err != nil {
		return err
	}
	fragment, err := compileShader(shader.fragmentSource, gl.FRAGMENT_SHADER)
	if err != nil {
		gl.DeleteShader(vertex)
		return err
	}

	program, err := linkProgram(vertex, fragment)
	if err != nil {
		return err
	}

	shader.program = program
	shader.isCompiled = true
	logger.Log.Info("Shader program linked", zap.Uint32("program", program))
	return nil
}

func (shader *Shader) Delete() {
	if shader.isCompiled {
		gl.DeleteProgram(shader.program)
		shader.isCompiled = false
	}
}

func compileShader(source string, shaderType uint32) (uint32, error) {
	handle := gl.CreateShader(shaderType)
	cSources, free := gl.Strs(source)
	gl.ShaderSource(handle, 1, cSources, nil)
	free()
	gl.CompileShader(handle)

	var status int32
	gl.GetShaderiv(handle, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetShaderiv(handle, gl.INFO_LOG_LENGTH, &logLength)

		infoLog := strings.Repeat("\x00", int(logLength+1))
		gl.GetShaderInfoLog(handle, logLength, nil, gl.Str(infoLog))
		gl.DeleteShader(handle)

		logger.Log.Error("Failed to compile shader",
			zap.Uint32("shaderType", shaderType),
			zap.String("log", infoLog))
		return 0, fmt.Errorf("compile shader type %d: %s", shaderType, strings.TrimRight(infoLog, "\x00"))
	}

	return handle, nil
}

func linkProgram(vertexShader, fragmentShader uint32) (uint32, error) {
	program := gl.CreateProgram()
	gl.AttachShader(program, vertexShader)
	gl.AttachShader(program, fragmentShader)
	gl.LinkProgram(program)

	defer func() {
		gl.DetachShader(program, vertexShader)
		gl.DeleteShader(vertexShader)
		gl.DetachShader(program, fragmentShader)
		gl.DeleteShader(fragmentShader)
	}()

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLength)

		infoLog := strings.Repeat("\x00", int(logLength+1))
		gl.GetProgramInfoLog(program, logLength, nil, gl.Str(infoLog))
		gl.DeleteProgram(program)

		logger.Log.Error("Failed to link program", zap.String("log", infoLog))
		return 0, fmt.Errorf("link shader program: %s", strings.TrimRight(infoLog, "\x00"))
	}

	return program, nil
}
