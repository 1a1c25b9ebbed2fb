package api

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"runtime/pprof"
	"sync"
	"time"

	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/modernopengl/quadview/lib/api/docs"
	"github.com/modernopengl/quadview/lib/config"
	qlog "github.com/modernopengl/quadview/lib/log"
	"github.com/modernopengl/quadview/lib/metrics"
	"github.com/modernopengl/quadview/lib/scene"
	"github.com/modernopengl/quadview/lib/stats"
)

type Api struct {
	srv    http.Server
	mux    *http.ServeMux
	cfg    *config.ApiCfg
	scene  *scene.Scene
	logger *slog.Logger

	Stats *stats.Stats

	wsMutex   sync.Mutex
	wsClients map[*wsClient]bool
}

func New(cfg *config.ApiCfg, s *scene.Scene, st *stats.Stats) *Api {
	a := &Api{}
	a.cfg = cfg
	a.mux = http.NewServeMux()
	a.scene = s
	a.srv.Addr = cfg.Bind
	a.srv.Handler = a.mux
	a.wsClients = make(map[*wsClient]bool)
	a.logger = qlog.Module("api")
	a.Stats = st

	for _, event := range []string{scene.EventPolygonMode, scene.EventResize, scene.EventShutdown, scene.EventShadersReloaded} {
		s.AddEventListener(event, func(_ *scene.Scene, data interface{}) {
			a.broadcast(data)
		})
	}

	a.routes()
	return a
}

func (a *Api) routes() {
	if a.cfg.EnableProfiler {
		a.mux.HandleFunc("/prof", a.profileCPU)
	}
	a.mux.HandleFunc("/api/kill", a.suicide)
	a.mux.HandleFunc("/api/stats", a.getStats)
	a.mux.HandleFunc("GET /api/viewport", a.getViewport)
	a.mux.HandleFunc("GET /api/polygon-mode", a.getPolygonMode)
	a.mux.HandleFunc("POST /api/polygon-mode", a.handlePolygonModeJson)
	a.mux.HandleFunc("POST /api/polygon-mode/{mode}", a.handlePolygonMode)
	a.mux.HandleFunc("/api/ws", a.handleWebsocket)
	a.mux.Handle("/metrics", metrics.Handler())
	a.mux.Handle("/swagger/", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))
}

func (a *Api) Handler() http.Handler {
	return a.mux
}

func (a *Api) Serve() error {
	return a.srv.ListenAndServe()
}

func (a *Api) Shutdown(ctx context.Context) error {
	return a.srv.Shutdown(ctx)
}

// @Summary	Profile the CPU for 10 seconds
// @Router		/prof [get]
// @Tags		debug
// @Produce	octet-stream
// @Success	200
func (a *Api) profileCPU(w http.ResponseWriter, _ *http.Request) {
	err := pprof.StartCPUProfile(w)
	if err != nil {
		http.Error(w, fmt.Sprintf("Could not start CPU profile: %s", err), http.StatusInternalServerError)
		return
	}
	time.Sleep(10 * time.Second)
	pprof.StopCPUProfile()
}

// @Summary	Close the window and exit
// @Router		/api/kill [post]
// @Tags		base
// @Success	200
func (a *Api) suicide(w http.ResponseWriter, _ *http.Request) {
	a.logger.Info("shutting down as per api request")
	a.scene.RequestShutdown("api request")
	a.writeOk(w)
}

// @Summary	Get render statistics
// @Router		/api/stats [get]
// @Tags		base
// @Produce	json
// @Success	200	{object}	stats.Stats
func (a *Api) getStats(w http.ResponseWriter, _ *http.Request) {
	a.writeJson(w, a.Stats.Snapshot())
}

type ViewportResp struct {
	Width  int `json:"width" example:"800"`
	Height int `json:"height" example:"600"`
}

// @Summary	Get the current viewport size in pixels
// @Router		/api/viewport [get]
// @Tags		render
// @Produce	json
// @Success	200	{object}	ViewportResp
func (a *Api) getViewport(w http.ResponseWriter, _ *http.Request) {
	width, height := a.scene.Viewport()
	a.writeJson(w, ViewportResp{Width: width, Height: height})
}

func (a *Api) writeOk(w http.ResponseWriter) {
	_, err := fmt.Fprintf(w, "\"ok\"\n")
	if err != nil {
		a.logger.Error("could not write response", "err", err)
		return
	}
}

func (a *Api) writeJson(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	encoder := json.NewEncoder(w)
	err := encoder.Encode(v)
	if err != nil {
		http.Error(w, fmt.Sprintf("could not encode response: %s", err), http.StatusInternalServerError)
		return
	}
}

// ServeInBackground starts the API when it is configured. It returns nil
// otherwise, in which case quadview does no network I/O at all.
func ServeInBackground(s *scene.Scene, st *stats.Stats, cfg *config.ApiCfg) *Api {
	var theApi *Api
	if cfg != nil {
		theApi = New(cfg, s, st)

		theApi.logger.Info(fmt.Sprintf("starting web server on %s", cfg.Bind))
		go func() {
			err := theApi.Serve()
			if err != nil && err != http.ErrServerClosed {
				theApi.logger.Error("could not start web server", "err", err)
			}
		}()
	}
	return theApi
}
