package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	FramesRendered = promauto.NewCounter(prometheus.CounterOpts{
		Name: "xes_frames_rendered_total",
		Help: "Total number of frames drawn and presented",
	})
	Events = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "xes_events_total",
		Help: "Total number of events queued for the frame loop",
	}, []string{"kind"})
	ShaderBuilds = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "xes_shader_builds_total",
		Help: "Total number of shader program builds, by result",
	}, []string{"result"})
	FPS = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "xes_fps",
		Help: "Frames presented during the last full second",
	})
)

const (
	ResultOK     = "ok"
	ResultFailed = "failed"
)

func init() {
	for _, r := range []string{ResultOK, ResultFailed} {
		ShaderBuilds.WithLabelValues(r).Add(0)
	}
}

// ShaderBuilt records the outcome of one program assembly.
func ShaderBuilt(err error) {
	if err != nil {
		ShaderBuilds.WithLabelValues(ResultFailed).Inc()
		return
	}
	ShaderBuilds.WithLabelValues(ResultOK).Inc()
}

// Handler should usually be mounted at /metrics
func Handler() http.Handler {
	return promhttp.Handler()
}
