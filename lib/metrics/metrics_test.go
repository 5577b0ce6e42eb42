package metrics

import (
	"errors"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
)

func counterValue(t *testing.T, c prometheus.Counter) float64 {
	t.Helper()
	var m dto.Metric
	if err := c.Write(&m); err != nil {
		t.Fatal(err)
	}
	return m.GetCounter().GetValue()
}

func TestShaderBuilt(t *testing.T) {
	okBefore := counterValue(t, ShaderBuilds.WithLabelValues(ResultOK))
	failedBefore := counterValue(t, ShaderBuilds.WithLabelValues(ResultFailed))

	ShaderBuilt(nil)
	ShaderBuilt(errors.New("link failed"))
	ShaderBuilt(errors.New("compile failed"))

	if got := counterValue(t, ShaderBuilds.WithLabelValues(ResultOK)) - okBefore; got != 1 {
		t.Errorf("ok builds increased by %v, want 1", got)
	}
	if got := counterValue(t, ShaderBuilds.WithLabelValues(ResultFailed)) - failedBefore; got != 2 {
		t.Errorf("failed builds increased by %v, want 2", got)
	}
}

func TestHandlerExposesMetrics(t *testing.T) {
	FramesRendered.Inc()

	rec := httptest.NewRecorder()
	Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))

	body, _ := io.ReadAll(rec.Body)
	for _, name := range []string{"xes_frames_rendered_total", "xes_shader_builds_total", "xes_fps"} {
		if !strings.Contains(string(body), name) {
			t.Errorf("metrics output does not contain %s", name)
		}
	}
}
