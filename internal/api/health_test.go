package api

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func TestHealthEndpoints(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cases := []struct {
		name   string
		ready  func() error
		path   string
		status int
	}{
		{name: "liveness always ok", ready: nil, path: "/healthz", status: http.StatusOK},
		{name: "ready", ready: func() error { return nil }, path: "/readyz", status: http.StatusOK},
		{name: "degraded", ready: func() error { return errors.New("tz missing") }, path: "/readyz", status: http.StatusServiceUnavailable},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := gin.New()
			NewHealthHandler(tc.ready).Register(r)

			req := httptest.NewRequest(http.MethodGet, tc.path, nil)
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)
			if w.Code != tc.status {
				t.Fatalf("expected %d, got %d", tc.status, w.Code)
			}
		})
	}
}
