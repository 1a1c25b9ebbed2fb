package shaders

import (
	"errors"
	"strings"

	"github.com/go-gl/gl/v4.1-core/gl"
	qlog "github.com/modernopengl/quadview/lib/log"
	"github.com/modernopengl/quadview/lib/metrics"
)

// BuildGLProgram compiles both stages and links them. A stage that fails
// to compile is logged and linking is still attempted; only a failed link
// is returned as an error.
func BuildGLProgram(src *Sources) (uint32, error) {
	logger := qlog.Module("shaders")

	var compileErrs []error
	compile := func(source string, stage Stage) uint32 {
		shader, err := compileShader(source, stage)
		if err != nil {
			logger.Error("could not compile shader", "err", err)
			compileErrs = append(compileErrs, err)
		} else {
			logger.Info(stage.Title() + " shader compiled successfully")
		}
		return shader
	}
	vertexShader := compile(src.Vertex, VertexStage)
	fragmentShader := compile(src.Fragment, FragmentStage)

	program, err := linkProgram(glLinker{}, vertexShader, fragmentShader)
	if err != nil {
		metrics.ProgramLinks.WithLabelValues("failed").Inc()
		return 0, errors.Join(append([]error{err}, compileErrs...)...)
	}

	metrics.ProgramLinks.WithLabelValues("ok").Inc()
	logger.Info("Shaders linked successfully")
	return program, nil
}

type linker interface {
	CreateProgram() uint32
	AttachShader(program, shader uint32)
	LinkProgram(program uint32)
	LinkStatus(program uint32) (bool, string)
	DeleteShader(shader uint32)
	DeleteProgram(program uint32)
}

// linkProgram links the two stages. The shader objects are only deleted
// once the link status is known. A failed program is deleted together
// with its shaders.
func linkProgram(l linker, vertexShader, fragmentShader uint32) (uint32, error) {
	program := l.CreateProgram()

	l.AttachShader(program, vertexShader)
	l.AttachShader(program, fragmentShader)
	l.LinkProgram(program)

	ok, logmsg := l.LinkStatus(program)

	l.DeleteShader(vertexShader)
	l.DeleteShader(fragmentShader)

	if !ok {
		l.DeleteProgram(program)
		return 0, &LinkError{Log: logmsg}
	}
	return program, nil
}

type glLinker struct{}

func (glLinker) CreateProgram() uint32 {
	return gl.CreateProgram()
}

func (glLinker) AttachShader(program, shader uint32) {
	gl.AttachShader(program, shader)
}

func (glLinker) LinkProgram(program uint32) {
	gl.LinkProgram(program)
}

func (glLinker) LinkStatus(program uint32) (bool, string) {
	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status != gl.FALSE {
		return true, ""
	}

	var logLength int32
	gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLength)

	logmsg := strings.Repeat("\x00", int(logLength+1))
	gl.GetProgramInfoLog(program, logLength, nil, gl.Str(logmsg))
	return false, logmsg
}

func (glLinker) DeleteShader(shader uint32) {
	gl.DeleteShader(shader)
}

func (glLinker) DeleteProgram(program uint32) {
	gl.DeleteProgram(program)
}

// compileShader always returns the shader object, even on failure, so it
// can still be attached and produce a meaningful link log.
func compileShader(source string, stage Stage) (uint32, error) {
	shader := gl.CreateShader(uint32(stage))

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

		metrics.ShaderCompileFailures.WithLabelValues(stage.String()).Inc()
		return shader, &CompileError{Stage: stage, Log: clog}
	}

	return shader, nil
}
