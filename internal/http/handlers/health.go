package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/sync/errgroup"

	"github.com/yungbote/professionals-backend/internal/platform/logger"
)

// HealthProbe pings one backing store.
type HealthProbe func(ctx context.Context) error

type HealthHandler struct {
	log     *logger.Logger
	probes  map[string]HealthProbe
	timeout time.Duration
}

func NewHealthHandler(log *logger.Logger, probes map[string]HealthProbe) *HealthHandler {
	return &HealthHandler{log: log.With("handler", "HealthHandler"), probes: probes, timeout: 2 * time.Second}
}

// GET /healthcheck
// Probes run concurrently; any failure reports 503 with per-probe status.
func (h *HealthHandler) HealthCheck(c *gin.Context) {
	if len(h.probes) == 0 {
		c.String(http.StatusOK, "ok")
		return
	}
	ctx, cancel := context.WithTimeout(c.Request.Context(), h.timeout)
	defer cancel()

	names := make([]string, 0, len(h.probes))
	for name := range h.probes {
		names = append(names, name)
	}
	results := make([]error, len(names))
	var g errgroup.Group
	for i, name := range names {
		probe := h.probes[name]
		g.Go(func() error {
			results[i] = probe(ctx)
			return nil
		})
	}
	_ = g.Wait()

	status := gin.H{}
	healthy := true
	for i, name := range names {
		if results[i] != nil {
			healthy = false
			status[name] = results[i].Error()
			h.log.Warn("health probe failed", "probe", name, "error", results[i])
			continue
		}
		status[name] = "ok"
	}
	if !healthy {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable", "checks": status})
		return
	}
	c.String(http.StatusOK, "ok")
}
