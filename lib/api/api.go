package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"runtime/pprof"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	httpSwagger "github.com/swaggo/http-swagger"
	_ "github.com/xes-gl/xes/lib/api/docs"
	"github.com/xes-gl/xes/lib/config"
	"github.com/xes-gl/xes/lib/frameloop"
	"github.com/xes-gl/xes/lib/metrics"
	"github.com/xes-gl/xes/lib/stats"
)

// Controller is the part of the frame loop the API may poke at. Every
// method must be safe to call from an HTTP handler goroutine.
type Controller interface {
	RequestShutdown()
	RequestReload()
	AddEventListener(event string, callback frameloop.EventListener)
}

type Api struct {
	srv  http.Server
	mux  *http.ServeMux
	cfg  *config.Config
	loop Controller

	Stats *stats.Stats

	wsMu      sync.Mutex
	wsClients map[*websocket.Conn]bool

	log *slog.Logger
}

func New(cfg *config.Config, loop Controller, st *stats.Stats) *Api {
	a := &Api{}
	a.cfg = cfg
	a.mux = http.NewServeMux()
	a.loop = loop
	a.Stats = st
	a.wsClients = make(map[*websocket.Conn]bool)
	a.log = slog.Default().With(slog.String("module", "api"))
	if cfg.Api != nil {
		a.srv.Addr = cfg.Api.Bind
	}
	a.srv.Handler = a.mux

	for _, event := range []string{frameloop.EventShaderReload, frameloop.EventResize} {
		loop.AddEventListener(event, func(_ *frameloop.Loop, data interface{}) {
			a.broadcast(data)
		})
	}

	a.routes()
	return a
}

func (a *Api) routes() {
	if a.cfg.Api != nil && a.cfg.Api.EnableProfiler {
		a.mux.HandleFunc("/prof", a.profileCPU)
	}
	a.mux.HandleFunc("POST /api/quit", a.handleQuit)
	a.mux.HandleFunc("POST /api/reload", a.handleReload)
	a.mux.HandleFunc("GET /api/stats", a.getStats)
	a.mux.HandleFunc("GET /api/config", a.handleConfig)
	a.mux.HandleFunc("/api/ws", a.handleWebsocket)
	a.mux.Handle("/metrics", metrics.Handler())
	a.mux.Handle("/swagger/", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))
}

func (a *Api) Handler() http.Handler {
	return a.mux
}

func (a *Api) Serve() error {
	err := a.srv.ListenAndServe()
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}

func (a *Api) Shutdown(ctx context.Context) error {
	return a.srv.Shutdown(ctx)
}

// @Summary	Close the window and exit
// @Router		/api/quit [post]
// @Tags		control
// @Success	200
func (a *Api) handleQuit(w http.ResponseWriter, _ *http.Request) {
	a.log.Info("shutting down as per api request")
	a.loop.RequestShutdown()
	a.ok(w)
}

// @Summary	Re-read the shader file and rebuild the program
// @Router		/api/reload [post]
// @Tags		control
// @Success	200
func (a *Api) handleReload(w http.ResponseWriter, _ *http.Request) {
	a.log.Info("reloading shader as per api request")
	a.loop.RequestReload()
	a.ok(w)
}

// @Summary	Get runtime statistics
// @Router		/api/stats [get]
// @Tags		status
// @Produce	json
// @Success	200	{object}	stats.Report
func (a *Api) getStats(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	encoder := json.NewEncoder(w)
	err := encoder.Encode(a.Stats.Snapshot())
	if err != nil {
		http.Error(w, fmt.Sprintf("could not encode stats: %s", err), http.StatusInternalServerError)
		return
	}
}

// @Summary	Get the effective configuration
// @Router		/api/config [get]
// @Tags		status
// @Produce	json
// @Success	200	{object}	config.Config
func (a *Api) handleConfig(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	encoder := json.NewEncoder(w)
	err := encoder.Encode(a.cfg)
	if err != nil {
		http.Error(w, fmt.Sprintf("couldn't encode config: %s", err), http.StatusInternalServerError)
		return
	}
}

func (a *Api) profileCPU(w http.ResponseWriter, _ *http.Request) {
	err := pprof.StartCPUProfile(w)
	if err != nil {
		http.Error(w, fmt.Sprintf("Could not start CPU profile: %s", err), http.StatusInternalServerError)
		return
	}
	time.Sleep(10 * time.Second)
	pprof.StopCPUProfile()
}

func (a *Api) ok(w http.ResponseWriter) {
	_, err := fmt.Fprintf(w, "\"ok\"\n")
	if err != nil {
		a.log.Warn(fmt.Sprintf("could not write response: %s", err))
	}
}

// ServeInBackground starts the API if the config asks for one. It returns
// nil otherwise.
func ServeInBackground(cfg *config.Config, loop Controller, st *stats.Stats) *Api {
	if cfg.Api == nil {
		return nil
	}
	theApi := New(cfg, loop, st)

	theApi.log.Info(fmt.Sprintf("starting web server on %s", cfg.Api.Bind))
	go func() {
		err := theApi.Serve()
		if err != nil {
			theApi.log.Error(fmt.Sprintf("could not start web server: %s", err))
		}
	}()
	return theApi
}
