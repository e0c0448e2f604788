package app

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/payoutpulse/config"
)

func TestInitializeApp(t *testing.T) {
	gin.SetMode(gin.TestMode)
	config.AppConfig = config.Config{
		Server: config.ServerConfig{Port: "8080"},
		Analysis: config.AnalysisConfig{
			Timezone:         "UTC",
			Location:         time.UTC,
			MartingaleWindow: time.Minute,
			IntervalCeilings: []float64{1, 5, 60},
		},
	}

	router, cleanup, err := InitializeApp()
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if router == nil || cleanup == nil {
		t.Fatalf("router and cleanup must be returned")
	}
	defer cleanup()

	for _, path := range []string{"/healthz", "/readyz"} {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		if w.Code != http.StatusOK {
			t.Fatalf("%s: expected 200, got %d", path, w.Code)
		}
	}
}

func TestInitializeApp_UnresolvedTimezone(t *testing.T) {
	config.AppConfig = config.Config{
		Server:   config.ServerConfig{Port: "8080"},
		Analysis: config.AnalysisConfig{Timezone: "UTC"},
	}
	if _, _, err := InitializeApp(); err == nil {
		t.Fatalf("expected error when the timezone was never resolved")
	}
}
