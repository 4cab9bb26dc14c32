package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// HealthResponse represents the health check response
type HealthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
	Generator string `json:"generator"`
}

// HandleHealth returns the health status of the service
func HandleHealth(c *gin.Context) {
	generatorMu.RLock()
	genStatus := "unavailable"
	if deckGenerator != nil {
		genStatus = "ready"
	}
	generatorMu.RUnlock()

	status := "healthy"
	if genStatus == "unavailable" {
		status = "degraded"
	}

	c.JSON(http.StatusOK, HealthResponse{
		Status:    status,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Generator: genStatus,
	})
}

// HandleReadiness returns whether the service is ready to accept traffic.
// Stricter than health: fails until the generator is initialized.
func HandleReadiness(c *gin.Context) {
	generatorMu.RLock()
	ready := deckGenerator != nil
	generatorMu.RUnlock()

	if !ready {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status": "not_ready",
			"reason": "generator_not_initialized",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ready"})
}
