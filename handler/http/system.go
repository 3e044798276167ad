package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ComponentStatus represents the status of system components
type ComponentStatus string

const (
	StatusUp   ComponentStatus = "up"
	StatusDown ComponentStatus = "down"
)

// HealthStatus represents system health status
type HealthStatus struct {
	Status     string `json:"status"`
	Components struct {
		Storage ComponentStatus `json:"storage"`
	} `json:"components"`
}

// CheckHealth godoc
// @Summary Check system health status
// @Tags system
// @Produce json
// @Success 200 {object} HealthStatus
// @Failure 503 {object} HealthStatus
// @Router /health [get]
func (h *Handler) CheckHealth(c *gin.Context) {
	status := &HealthStatus{
		Status: "healthy",
	}
	status.Components.Storage = StatusDown

	// Check storage
	if ok, err := h.minioService.BucketExists(c.Request.Context(), h.bucket); err == nil && ok {
		status.Components.Storage = StatusUp
	}

	code := http.StatusOK
	if status.Components.Storage == StatusDown {
		status.Status = "unhealthy"
		code = http.StatusServiceUnavailable
	}

	sendJSON(c, code, status)
}
