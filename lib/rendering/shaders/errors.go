package shaders

import (
	"fmt"
	"strings"

	"github.com/go-gl/gl/v4.1-core/gl"
)

type Stage uint32

const (
	VertexStage   Stage = gl.VERTEX_SHADER
	FragmentStage Stage = gl.FRAGMENT_SHADER
)

// String gives the upper-case stage name used in diagnostics.
func (s Stage) String() string {
	switch s {
	case VertexStage:
		return "VERTEX"
	case FragmentStage:
		return "FRAGMENT"
	default:
		return fmt.Sprintf("Stage(%d)", uint32(s))
	}
}

// Title is the stage name as it reads at the start of a sentence.
func (s Stage) Title() string {
	name := strings.ToLower(s.String())
	return strings.ToUpper(name[:1]) + name[1:]
}

type CompileError struct {
	Stage Stage
	Log   string
}

func (e *CompileError) Error() string {
	return fmt.Sprintf("%s shader compilation failed: %s", e.Stage, strings.TrimRight(e.Log, "\x00\n "))
}

type LinkError struct {
	Log string
}

func (e *LinkError) Error() string {
	return fmt.Sprintf("shader linking error: %s", strings.TrimRight(e.Log, "\x00\n "))
}
