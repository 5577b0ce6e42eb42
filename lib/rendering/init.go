package rendering

import (
	"fmt"
	"log/slog"

	"github.com/go-gl/gl/v3.3-core/gl"
)

// Init loads the GL function pointers for the context that is current on
// the calling thread.
func Init() error {
	err := gl.Init()
	if err != nil {
		return fmt.Errorf("could not initialise OpenGL context: %w", err)
	}

	vendor := gl.GoStr(gl.GetString(gl.VENDOR))
	renderer := gl.GoStr(gl.GetString(gl.RENDERER))
	version := gl.GoStr(gl.GetString(gl.VERSION))
	slog.Info(fmt.Sprintf("OpenGL version %s / %s / %s", vendor, renderer, version), slog.String("module", "rendering"))

	return nil
}
