package api

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/xes-gl/xes/lib/config"
	"github.com/xes-gl/xes/lib/frameloop"
	"github.com/xes-gl/xes/lib/stats"
)

type fakeLoop struct {
	mu        sync.Mutex
	shutdowns int
	reloads   int
	listener  map[string][]frameloop.EventListener
}

func (f *fakeLoop) RequestShutdown() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.shutdowns++
}

func (f *fakeLoop) RequestReload() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.reloads++
}

func (f *fakeLoop) AddEventListener(event string, callback frameloop.EventListener) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.listener == nil {
		f.listener = make(map[string][]frameloop.EventListener)
	}
	f.listener[event] = append(f.listener[event], callback)
}

func (f *fakeLoop) fire(event string, data interface{}) {
	f.mu.Lock()
	listeners := f.listener[event]
	f.mu.Unlock()
	for _, l := range listeners {
		l(nil, data)
	}
}

func newTestApi(t *testing.T) (*Api, *fakeLoop) {
	t.Helper()
	cfg := config.Default()
	cfg.Api = &config.ApiCfg{Bind: "127.0.0.1:0"}
	loop := &fakeLoop{}
	return New(cfg, loop, stats.New()), loop
}

func do(t *testing.T, a *Api, method, path string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	a.Handler().ServeHTTP(rec, httptest.NewRequest(method, path, nil))
	return rec
}

func TestQuitAndReload(t *testing.T) {
	a, loop := newTestApi(t)

	if rec := do(t, a, "POST", "/api/quit"); rec.Code != http.StatusOK || strings.TrimSpace(rec.Body.String()) != `"ok"` {
		t.Fatalf("quit: %d %q", rec.Code, rec.Body.String())
	}
	if rec := do(t, a, "POST", "/api/reload"); rec.Code != http.StatusOK {
		t.Fatalf("reload: %d", rec.Code)
	}
	if loop.shutdowns != 1 || loop.reloads != 1 {
		t.Fatalf("shutdowns=%d reloads=%d, want 1 each", loop.shutdowns, loop.reloads)
	}
}

func TestControlNeedsPost(t *testing.T) {
	a, loop := newTestApi(t)
	if rec := do(t, a, "GET", "/api/quit"); rec.Code != http.StatusMethodNotAllowed {
		t.Fatalf("GET /api/quit = %d, want 405", rec.Code)
	}
	if loop.shutdowns != 0 {
		t.Fatal("GET must not shut down")
	}
}

func TestStats(t *testing.T) {
	a, _ := newTestApi(t)
	a.Stats.Update(0)
	a.Stats.Resized(800, 450)

	rec := do(t, a, "GET", "/api/stats")
	if rec.Code != http.StatusOK {
		t.Fatalf("status %d", rec.Code)
	}
	var got stats.Report
	if err := json.NewDecoder(rec.Body).Decode(&got); err != nil {
		t.Fatal(err)
	}
	if got.Frames != 1 || got.Width != 800 || got.Height != 450 {
		t.Fatalf("unexpected stats %+v", got)
	}
}

func TestConfig(t *testing.T) {
	a, _ := newTestApi(t)
	rec := do(t, a, "GET", "/api/config")
	var got config.Config
	if err := json.NewDecoder(rec.Body).Decode(&got); err != nil {
		t.Fatal(err)
	}
	if got.Window.Title != "Xes" || got.Mesh != config.MeshQuad {
		t.Fatalf("unexpected config %+v", got)
	}
}

func TestMetricsAndSwagger(t *testing.T) {
	a, _ := newTestApi(t)

	rec := do(t, a, "GET", "/metrics")
	body, _ := io.ReadAll(rec.Body)
	if rec.Code != http.StatusOK || !strings.Contains(string(body), "xes_frames_rendered_total") {
		t.Fatalf("metrics: %d", rec.Code)
	}

	rec = do(t, a, "GET", "/swagger/doc.json")
	if rec.Code != http.StatusOK || !strings.Contains(rec.Body.String(), "/api/reload") {
		t.Fatalf("swagger doc: %d %q", rec.Code, rec.Body.String())
	}
}

func TestProfilerDisabledByDefault(t *testing.T) {
	a, _ := newTestApi(t)
	if rec := do(t, a, "GET", "/prof"); rec.Code != http.StatusNotFound {
		t.Fatalf("/prof = %d, want 404", rec.Code)
	}
}

func TestWebsocketStatsAndEvents(t *testing.T) {
	a, loop := newTestApi(t)
	srv := httptest.NewServer(a.Handler())
	defer srv.Close()

	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/api/ws"
	ws, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatal(err)
	}
	defer ws.Close()
	_ = ws.SetReadDeadline(time.Now().Add(5 * time.Second))

	var first stats.Report
	if err := ws.ReadJSON(&first); err != nil {
		t.Fatalf("reading initial stats: %v", err)
	}
	if first.WsClients != 1 {
		t.Errorf("ws_clients = %d, want 1", first.WsClients)
	}

	loop.fire(frameloop.EventShaderReload, frameloop.EventDataReload{Event: frameloop.EventShaderReload, OK: true})

	var ev map[string]any
	if err := ws.ReadJSON(&ev); err != nil {
		t.Fatalf("reading event: %v", err)
	}
	if ev["event"] != frameloop.EventShaderReload || ev["ok"] != true {
		t.Fatalf("unexpected event %v", ev)
	}
}
