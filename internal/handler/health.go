package handler

import (
	"context"
	"errors"
	"net/http"
	"sync/atomic"

	"github.com/gin-gonic/gin"
)

// Pinger is the minimal contract readiness needs from whatever gates traffic.
type Pinger interface {
	Ping(ctx context.Context) error
}

// ErrNotReady is reported by ReadinessGate before startup completes and while draining.
var ErrNotReady = errors.New("not ready")

// ReadinessGate is a Pinger flipped by the server lifecycle: ready once the
// listener is up, not ready again as soon as shutdown begins.
type ReadinessGate struct {
	ready atomic.Bool
}

func NewReadinessGate() *ReadinessGate { return &ReadinessGate{} }

func (g *ReadinessGate) MarkReady()    { g.ready.Store(true) }
func (g *ReadinessGate) MarkDraining() { g.ready.Store(false) }

func (g *ReadinessGate) Ping(context.Context) error {
	if !g.ready.Load() {
		return ErrNotReady
	}
	return nil
}

// HealthHandler exposes liveness and readiness endpoints.
type HealthHandler struct {
	ready Pinger
}

func NewHealthHandler(ready Pinger) *HealthHandler {
	return &HealthHandler{ready: ready}
}

// Liveness responds OK if the process is up; it doesn't check dependencies.
func (h *HealthHandler) Liveness(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "alive"})
}

// Readiness reports whether the instance should receive traffic.
func (h *HealthHandler) Readiness(c *gin.Context) {
	if err := h.ready.Ping(c.Request.Context()); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status": "unavailable",
			"error":  err.Error(),
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ready"})
}
