package controllers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rdmartins/drilltrack-backend/pkg/config"
)

func TestHealthEndpoints(t *testing.T) {
	cfg := &config.Config{}
	cfg.App.Env = "dev"

	for path, handler := range map[string]http.HandlerFunc{
		"/health/live":  HealthLive(cfg),
		"/health/ready": HealthReady(cfg),
	} {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		resp := httptest.NewRecorder()
		handler.ServeHTTP(resp, req)

		if resp.Code != http.StatusOK {
			t.Fatalf("%s: expected 200 got %d", path, resp.Code)
		}
		if got := resp.Header().Get("X-DrillTrack-Env"); got != "dev" {
			t.Fatalf("%s: unexpected env header %q", path, got)
		}
	}
}
