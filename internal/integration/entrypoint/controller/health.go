// Package controller implements the HTTP handlers of the API.
package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// HealthController handles health check requests.
type HealthController struct{}

// NewHealthController creates a new HealthController.
func NewHealthController() *HealthController {
	return &HealthController{}
}

// Check handles GET /health.
func (hc *HealthController) Check(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
