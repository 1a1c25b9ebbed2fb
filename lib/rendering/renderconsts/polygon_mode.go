package renderconsts

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// PolygonMode is the rasterisation mode applied to both faces.
type PolygonMode uint32

const (
	Line PolygonMode = gl.LINE
	Fill PolygonMode = gl.FILL
)

func ParsePolygonMode(s string) (PolygonMode, error) {
	switch s {
	case "line", "wireframe":
		return Line, nil
	case "fill":
		return Fill, nil
	default:
		return 0, fmt.Errorf("unknown polygon mode %q (use line or fill)", s)
	}
}

func (m PolygonMode) String() string {
	switch m {
	case Line:
		return "line"
	case Fill:
		return "fill"
	default:
		return fmt.Sprintf("PolygonMode(%d)", uint32(m))
	}
}

// Toggle flips between wireframe and filled drawing.
func (m PolygonMode) Toggle() PolygonMode {
	if m == Line {
		return Fill
	}
	return Line
}
