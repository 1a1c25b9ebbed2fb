package rendering

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
	qlog "github.com/modernopengl/quadview/lib/log"
)

// Init loads the GL entry points for the current context. A window must
// have been made current before calling it.
func Init() error {
	logger := qlog.Module("rendering")

	err := gl.Init()
	if err != nil {
		return fmt.Errorf("could not initialise OpenGL function loader: %w", err)
	}
	logger.Info("GL loader initialized successfully")

	vendor := gl.GoStr(gl.GetString(gl.VENDOR))
	renderer := gl.GoStr(gl.GetString(gl.RENDERER))
	version := gl.GoStr(gl.GetString(gl.VERSION))
	logger.Info(fmt.Sprintf("OpenGL version %s / %s / %s", vendor, renderer, version))

	return nil
}

func SetViewport(width, height int) {
	gl.Viewport(0, 0, int32(width), int32(height))
}
