package handlers

import (
	"net/http"

	"palmcove/utils"

	"github.com/gin-gonic/gin"
)

type HealthHandler struct {
	Monitor *utils.HealthMonitor
}

func NewHealthHandler(monitor *utils.HealthMonitor) *HealthHandler {
	return &HealthHandler{Monitor: monitor}
}

// Health handles GET /health with a fresh check of every dependency.
func (h *HealthHandler) Health(c *gin.Context) {
	status := h.Monitor.Check(c.Request.Context())
	code := http.StatusOK
	if !status.Healthy {
		code = http.StatusServiceUnavailable
	}
	c.JSON(code, gin.H{"status": status, "message": "Hi, I'm Palm Cove"})
}
