package shaders

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/xes-gl/xes/lib/metrics"
	"github.com/xes-gl/xes/lib/shaderfile"
)

// Assemble compiles both stages of src and links them into a program.
// Compile and link failures are logged and joined into err, but the program
// handle is always returned and may be bound regardless.
func Assemble(src shaderfile.Source) (uint32, error) {
	var errs []error

	program := gl.CreateProgram()

	vertexShader, err := compileShader(src.Vertex, gl.VERTEX_SHADER)
	if err != nil {
		logFailure(err)
		errs = append(errs, err)
	}
	fragmentShader, err := compileShader(src.Fragment, gl.FRAGMENT_SHADER)
	if err != nil {
		logFailure(err)
		errs = append(errs, err)
	}

	gl.AttachShader(program, vertexShader)
	gl.AttachShader(program, fragmentShader)
	gl.LinkProgram(program)

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLength)

		logmsg := strings.Repeat("\x00", int(logLength+1))
		gl.GetProgramInfoLog(program, logLength, nil, gl.Str(logmsg))

		err := fmt.Errorf("failed to link program: %s", strings.TrimRight(logmsg, "\x00"))
		logFailure(err)
		errs = append(errs, err)
	}

	// flagged for deletion, freed with the program
	gl.DeleteShader(vertexShader)
	gl.DeleteShader(fragmentShader)

	err = errors.Join(errs...)
	metrics.ShaderBuilt(err)
	return program, err
}

// Delete releases a program built by Assemble. Zero is ignored.
func Delete(program uint32) {
	if program != 0 {
		gl.DeleteProgram(program)
	}
}

func compileShader(source string, shaderType uint32) (uint32, error) {
	shader := gl.CreateShader(shaderType)

	csources, free := gl.Strs(source + "\x00")
	gl.ShaderSource(shader, 1, csources, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLength)

		clog := strings.Repeat("\x00", int(logLength+1))
		gl.GetShaderInfoLog(shader, logLength, nil, gl.Str(clog))

		return shader, fmt.Errorf("failed to compile %s shader: %s", stageName(shaderType), strings.TrimRight(clog, "\x00"))
	}

	return shader, nil
}

func stageName(shaderType uint32) string {
	switch shaderType {
	case gl.VERTEX_SHADER:
		return "vertex"
	case gl.FRAGMENT_SHADER:
		return "fragment"
	}
	return fmt.Sprintf("0x%x", shaderType)
}

func logFailure(err error) {
	slog.Error(err.Error(), slog.String("module", "shaders"))
}
