package controller

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func TestHealthController_Check(t *testing.T) {
	gin.SetMode(gin.TestMode)
	up := func() bool { return true }
	down := func() bool { return false }

	tests := []struct {
		name       string
		deps       []Dependency
		wantCode   int
		wantStatus string
		wantRedis  string
	}{
		{
			name:       "all connected",
			deps:       []Dependency{{Name: "database", Check: up}, {Name: "redis", Check: up, Optional: true}},
			wantCode:   http.StatusOK,
			wantStatus: "ok",
			wantRedis:  "connected",
		},
		{
			name:       "optional redis disabled",
			deps:       []Dependency{{Name: "database", Check: up}, {Name: "redis", Optional: true}},
			wantCode:   http.StatusOK,
			wantStatus: "ok",
			wantRedis:  "disabled",
		},
		{
			name:       "optional redis down",
			deps:       []Dependency{{Name: "database", Check: up}, {Name: "redis", Check: down, Optional: true}},
			wantCode:   http.StatusOK,
			wantStatus: "degraded",
			wantRedis:  "disconnected",
		},
		{
			name:       "database down",
			deps:       []Dependency{{Name: "database", Check: down}, {Name: "redis", Check: up, Optional: true}},
			wantCode:   http.StatusServiceUnavailable,
			wantStatus: "degraded",
			wantRedis:  "connected",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := gin.New()
			r.GET("/health", NewHealthController(tt.deps...).Check)

			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))

			if w.Code != tt.wantCode {
				t.Errorf("status code = %d, want %d", w.Code, tt.wantCode)
			}
			var body HealthResponse
			if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
				t.Fatalf("decode: %v", err)
			}
			if body.Status != tt.wantStatus {
				t.Errorf("status = %q, want %q", body.Status, tt.wantStatus)
			}
			if body.Dependencies["redis"] != tt.wantRedis {
				t.Errorf("redis = %q, want %q", body.Dependencies["redis"], tt.wantRedis)
			}
		})
	}
}
