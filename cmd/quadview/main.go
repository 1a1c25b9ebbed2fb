package main

import (
	"log"
	"log/slog"
	"os"
	"runtime"

	"github.com/modernopengl/quadview/lib/config"
	qlog "github.com/modernopengl/quadview/lib/log"
	"github.com/modernopengl/quadview/lib/viewer"
)

func init() {
	// The OpenGL stuff must be in one thread
	runtime.LockOSThread()
}

//	@title			quadview API
//	@version		1.0
//	@description	Remote control for the quadview OpenGL viewer
//	@BasePath		/
func main() {
	slog.SetDefault(slog.New(qlog.NewHandler(os.Stdout, nil)))

	if len(os.Args) > 2 {
		log.Fatalf("Usage: %s [config file]", os.Args[0])
	}

	cfg := config.Default()
	if len(os.Args) == 2 {
		var err error
		cfg, err = config.Parse(os.Args[1])
		if err != nil {
			slog.Error("could not load config", "err", err)
			os.Exit(viewer.ExitFailure)
		}
	}

	os.Exit(viewer.MakeWindowAndRender(cfg))
}
