package stats

import (
	"sync"
	"time"

	"github.com/xes-gl/xes/lib/metrics"
)

// Report is what the API hands out.
type Report struct {
	Uptime         float64 `json:"uptime"`
	FPS            uint64  `json:"fps"`
	Frames         uint64  `json:"frames"`
	FrameTimeMs    float64 `json:"frame_time_ms"`
	ShaderBuilds   uint64  `json:"shader_builds"`
	ShaderFailures uint64  `json:"shader_failures"`
	Width          int     `json:"width"`
	Height         int     `json:"height"`
	WsClients      int     `json:"ws_clients"`
}

type Stats struct {
	report Report

	frameCounter uint64
	frameTimer   time.Time
	start        time.Time

	mu sync.Mutex
}

func New() *Stats {
	s := &Stats{}
	s.start = time.Now()
	s.frameTimer = s.start
	return s
}

// Update is called once per presented frame with the time since the
// previous one.
func (s *Stats) Update(dt time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.report.Frames++
	s.report.FrameTimeMs = float64(dt.Microseconds()) / 1e3
	s.frameCounter++
	if time.Since(s.frameTimer) > 1*time.Second {
		s.report.FPS = s.frameCounter
		s.frameCounter = 0
		s.frameTimer = time.Now()
		metrics.FPS.Set(float64(s.report.FPS))
	}

	s.report.Uptime = float64(time.Since(s.start).Nanoseconds()) / 1e9
	metrics.FramesRendered.Inc()
}

func (s *Stats) ShaderBuilt(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.report.ShaderBuilds++
	if err != nil {
		s.report.ShaderFailures++
	}
}

func (s *Stats) Resized(width, height int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.report.Width = width
	s.report.Height = height
}

func (s *Stats) SetWsClients(n int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.report.WsClients = n
}

// Snapshot returns a copy that is safe to encode while the loop runs.
func (s *Stats) Snapshot() Report {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.report
}
