package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/wealth-planner/backend/internal/application/adapter"
	domainerror "github.com/wealth-planner/backend/internal/domain/error"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newLimitedRouter(rl *RateLimiter) *gin.Engine {
	r := gin.New()
	r.POST("/login", rl.Middleware(), func(c *gin.Context) { c.Status(http.StatusOK) })
	return r
}

func hit(r *gin.Engine) int {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/login", nil)
	req.RemoteAddr = "10.0.0.1:1234"
	r.ServeHTTP(w, req)
	return w.Code
}

func TestRateLimiter(t *testing.T) {
	server := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: server.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	tests := []struct {
		name   string
		client redis.UniversalClient
	}{
		{name: "in memory"},
		{name: "redis", client: client},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rl := NewRateLimiter(3, time.Minute, tt.client)
			r := newLimitedRouter(rl)

			for i := 0; i < 3; i++ {
				if code := hit(r); code != http.StatusOK {
					t.Fatalf("attempt %d = %d, want 200", i+1, code)
				}
			}
			if code := hit(r); code != http.StatusTooManyRequests {
				t.Errorf("attempt 4 = %d, want 429", code)
			}
		})
	}
}

func TestRateLimiter_RedisWindowExpires(t *testing.T) {
	server := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: server.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	r := newLimitedRouter(NewRateLimiter(1, time.Minute, client))
	if code := hit(r); code != http.StatusOK {
		t.Fatalf("first attempt = %d", code)
	}
	if code := hit(r); code != http.StatusTooManyRequests {
		t.Fatalf("second attempt = %d", code)
	}
	server.FastForward(2 * time.Minute)
	if code := hit(r); code != http.StatusOK {
		t.Errorf("attempt after window = %d", code)
	}
}

type fakeTokens struct {
	claims *adapter.TokenClaims
	err    error
}

func (f fakeTokens) GenerateAccessToken(context.Context, uuid.UUID, string) (*adapter.AccessToken, error) {
	return nil, nil
}

func (f fakeTokens) ValidateAccessToken(context.Context, string) (*adapter.TokenClaims, error) {
	return f.claims, f.err
}

func TestAuthMiddleware(t *testing.T) {
	userID := uuid.New()

	tests := []struct {
		name     string
		header   string
		tokens   fakeTokens
		wantCode int
	}{
		{name: "missing header", wantCode: http.StatusUnauthorized},
		{name: "not bearer", header: "Basic abc", wantCode: http.StatusUnauthorized},
		{name: "expired", header: "Bearer t", tokens: fakeTokens{err: domainerror.ErrExpiredToken}, wantCode: http.StatusUnauthorized},
		{name: "valid", header: "Bearer t", tokens: fakeTokens{claims: &adapter.TokenClaims{UserID: userID}}, wantCode: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := gin.New()
			r.GET("/me", NewAuthMiddleware(tt.tokens).Authenticate(), func(c *gin.Context) {
				id, ok := GetUserIDFromContext(c)
				if !ok || id != userID {
					c.Status(http.StatusInternalServerError)
					return
				}
				c.Status(http.StatusOK)
			})

			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/me", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			r.ServeHTTP(w, req)

			if w.Code != tt.wantCode {
				t.Errorf("status = %d, want %d", w.Code, tt.wantCode)
			}
		})
	}
}
