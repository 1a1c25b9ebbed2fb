package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	FramesRendered = promauto.NewCounter(prometheus.CounterOpts{
		Name: "quadview_frames_rendered_total",
		Help: "Total number of frames drawn and swapped",
	})
	FrameTime = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "quadview_frame_time_seconds",
		Help:    "Time between consecutive frames",
		Buckets: []float64{0.001, 0.004, 0.008, 0.0167, 0.033, 0.066, 0.1, 0.25, 1},
	})
	ViewportResizes = promauto.NewCounter(prometheus.CounterOpts{
		Name: "quadview_viewport_resizes_total",
		Help: "Total number of framebuffer resize events",
	})
	ShaderCompileFailures = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "quadview_shader_compile_failures_total",
		Help: "Total number of failed shader compilations",
	}, []string{"stage"})
	ProgramLinks = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "quadview_program_links_total",
		Help: "Total number of shader program link attempts",
	}, []string{"result"})
)

func init() {
	for _, stage := range []string{"VERTEX", "FRAGMENT"} {
		ShaderCompileFailures.WithLabelValues(stage).Add(0)
	}
	for _, result := range []string{"ok", "failed"} {
		ProgramLinks.WithLabelValues(result).Add(0)
	}
}

// Handler should usually be mounted at /metrics
func Handler() http.Handler {
	return promhttp.Handler()
}
