package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
)

// Pinger reports whether the backing store is reachable.
type Pinger interface {
	HealthCheck(ctx context.Context) error
}

// HealthHandler serves the storage liveness probe.
type HealthHandler struct {
	pinger Pinger
}

// NewHealthHandler constructs HealthHandler.
func NewHealthHandler(pinger Pinger) *HealthHandler {
	return &HealthHandler{pinger: pinger}
}

// Ping handles GET /ping.
func (h *HealthHandler) Ping(c *gin.Context) {
	if err := h.pinger.HealthCheck(c.Request.Context()); err != nil {
		c.Status(http.StatusInternalServerError)
		return
	}
	c.Status(http.StatusOK)
}
