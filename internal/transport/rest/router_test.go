package rest

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

func TestRouter_Endpoints(t *testing.T) {
	t.Parallel()

	reg := prometheus.NewRegistry()
	promauto.With(reg).NewCounter(prometheus.CounterOpts{
		Name: "feedbackbot_test_total",
		Help: "test counter",
	}).Inc()

	srv := httptest.NewServer(NewRouter(NewHealthHandler("v1", sinkCheck(nil)), reg, slog.Default()))
	defer srv.Close()

	for _, path := range []string{"/live", "/ready", "/health", "/metrics"} {
		resp, err := http.Get(srv.URL + path)
		if err != nil {
			t.Fatalf("GET %s: %v", path, err)
		}
		body, _ := io.ReadAll(resp.Body)
		resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			t.Errorf("GET %s: status %d", path, resp.StatusCode)
		}
		if path == "/metrics" && !strings.Contains(string(body), "feedbackbot_test_total 1") {
			t.Errorf("metrics output missing counter: %s", body)
		}
	}
}

func TestRouter_MethodNotAllowed(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(NewRouter(NewHealthHandler("v1"), prometheus.NewRegistry(), slog.Default()))
	defer srv.Close()

	resp, err := http.Post(srv.URL+"/live", "text/plain", nil)
	if err != nil {
		t.Fatalf("POST /live: %v", err)
	}
	resp.Body.Close()

	if resp.StatusCode != http.StatusMethodNotAllowed {
		t.Errorf("expected 405, got %d", resp.StatusCode)
	}
}
