package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"runtime"
	"time"

	"github.com/xes-gl/xes/lib/api"
	"github.com/xes-gl/xes/lib/config"
	"github.com/xes-gl/xes/lib/events"
	"github.com/xes-gl/xes/lib/frameloop"
	"github.com/xes-gl/xes/lib/kbdctl"
	xeslog "github.com/xes-gl/xes/lib/log"
	"github.com/xes-gl/xes/lib/mesh"
	"github.com/xes-gl/xes/lib/rendering"
	"github.com/xes-gl/xes/lib/shaderfile"
	"github.com/xes-gl/xes/lib/stats"
	"github.com/xes-gl/xes/lib/utils"
	"github.com/xes-gl/xes/lib/window"
	"golang.org/x/sys/unix"
)

//go:generate go tool swag init -d ../../ -g cmd/xes/main.go -o ../../lib/api/docs

//	@title			xes API
//	@version		1.0
//	@description	Control and status for the xes demo window.
//	@BasePath		/

func init() {
	// The OpenGL stuff must be in one thread
	runtime.LockOSThread()
}

func main() {
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage: %s [config file]\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	cfg, err := config.Parse(flag.Arg(0))
	if err != nil {
		log.Fatal(err)
	}

	level, _ := xeslog.ParseLevel(cfg.LogLevel)
	xeslog.Setup(level)

	run(cfg)
}

// run never reports failure through the exit code: problems are logged and
// the demo either carries on or returns.
func run(cfg *config.Config) {
	logger := xeslog.Module("main")

	ctx, stop := signal.NotifyContext(context.Background(), unix.SIGINT, unix.SIGTERM)
	defer stop()

	queue := events.NewQueue()
	win, err := window.New(cfg, queue)
	if err != nil {
		logger.Error("bootstrap failed, not starting the frame loop")
		return
	}
	defer win.Destroy()
	kbdctl.SetupShortcutKeys(win)

	m, err := mesh.ByName(cfg.Mesh)
	if err != nil {
		logger.Error(err.Error())
		return
	}
	bg, err := utils.ColourParse(cfg.ClearColour)
	if err != nil {
		logger.Warn(err.Error())
	}

	st := stats.New()
	glvars := rendering.NewGLVars(cfg, m, bg)
	err = glvars.Start()
	if !errors.Is(err, shaderfile.ErrNoShader) {
		st.ShaderBuilt(err)
	}
	defer glvars.Delete()

	loop := frameloop.New(win, glvars, queue, st)

	if cfg.Shader.Watch {
		err := shaderfile.Watch(ctx, string(cfg.Shader.Path), loop.RequestReload)
		if err != nil {
			logger.Warn(fmt.Sprintf("not watching shader: %s", err))
		}
	}

	theApi := api.ServeInBackground(cfg, loop, st)
	if theApi != nil {
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()
			if err := theApi.Shutdown(shutdownCtx); err != nil {
				logger.Warn(fmt.Sprintf("api shutdown: %s", err))
			}
		}()
	}

	logger.Info("starting frame loop", slog.String("mesh", m.Name))
	loop.Run(ctx)
	logger.Info("frame loop stopped")
}
