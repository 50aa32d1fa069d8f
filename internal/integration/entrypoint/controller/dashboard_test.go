package controller

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/wealth-planner/backend/internal/application/adapter"
	domainerror "github.com/wealth-planner/backend/internal/domain/error"
	"github.com/wealth-planner/backend/internal/integration/entrypoint/dto"
	"github.com/wealth-planner/backend/internal/integration/entrypoint/middleware"
)

type staticTokens struct {
	adapter.TokenService
	userID uuid.UUID
}

func (s staticTokens) ValidateAccessToken(context.Context, string) (*adapter.TokenClaims, error) {
	return &adapter.TokenClaims{UserID: s.userID}, nil
}

func TestDashboardController_RejectsBadQuery(t *testing.T) {
	gin.SetMode(gin.TestMode)

	// Use cases stay nil: every case must be answered before reaching them.
	c := NewDashboardController(nil, nil)
	auth := middleware.NewAuthMiddleware(staticTokens{userID: uuid.New()})

	r := gin.New()
	r.GET("/dashboard", auth.Authenticate(), c.GetDashboard)
	r.GET("/analytics", auth.Authenticate(), c.GetAnalytics)

	tests := []struct {
		name     string
		target   string
		wantCode string
	}{
		{"malformed date", "/dashboard?date=16-10-2026", string(domainerror.ErrCodeInvalidDateFormat)},
		{"non numeric year", "/analytics?year=abc", string(domainerror.ErrCodeInvalidYear)},
		{"fractional year", "/analytics?year=2024.5", string(domainerror.ErrCodeInvalidYear)},
		{"zero year", "/analytics?year=0", string(domainerror.ErrCodeInvalidYear)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tt.target, nil)
			req.Header.Set("Authorization", "Bearer token")
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			if w.Code != http.StatusBadRequest {
				t.Fatalf("status = %d, want %d (body %s)", w.Code, http.StatusBadRequest, w.Body.String())
			}
			var body dto.ErrorResponse
			if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
				t.Fatalf("decode body: %v", err)
			}
			if body.Code != tt.wantCode {
				t.Errorf("code = %q, want %q", body.Code, tt.wantCode)
			}
		})
	}
}
