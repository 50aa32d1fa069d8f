package controller

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/sync/errgroup"
)

// HealthChecker reports whether a dependency is reachable.
type HealthChecker func() bool

// Dependency is one named health check. A failing required dependency turns
// the response into a 503; optional ones only mark the service degraded.
type Dependency struct {
	Name     string
	Check    HealthChecker
	Optional bool
}

// HealthResponse is the body of GET /health.
type HealthResponse struct {
	Status       string            `json:"status"`
	Dependencies map[string]string `json:"dependencies"`
	Timestamp    string            `json:"timestamp"`
}

// HealthController serves the liveness endpoint.
type HealthController struct {
	deps []Dependency
	now  func() time.Time
}

// NewHealthController creates a new health controller instance. Dependencies
// with a nil Check are reported as disabled.
func NewHealthController(deps ...Dependency) *HealthController {
	return &HealthController{deps: deps, now: time.Now}
}

// Check handles GET /health. Every dependency is checked concurrently.
func (h *HealthController) Check(c *gin.Context) {
	results := make([]string, len(h.deps))
	var g errgroup.Group
	for i, dep := range h.deps {
		if dep.Check == nil {
			results[i] = "disabled"
			continue
		}
		i, dep := i, dep
		g.Go(func() error {
			results[i] = "disconnected"
			if dep.Check() {
				results[i] = "connected"
			}
			return nil
		})
	}
	_ = g.Wait()

	resp := HealthResponse{
		Status:       "ok",
		Dependencies: make(map[string]string, len(h.deps)),
		Timestamp:    h.now().UTC().Format(time.RFC3339),
	}
	code := http.StatusOK
	for i, dep := range h.deps {
		resp.Dependencies[dep.Name] = results[i]
		if results[i] != "disconnected" {
			continue
		}
		resp.Status = "degraded"
		if !dep.Optional {
			code = http.StatusServiceUnavailable
		}
	}
	c.JSON(code, resp)
}
