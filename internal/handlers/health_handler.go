package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/WynstelleID/finance-bot/internal/database"
)

const version = "1.0"

// HealthHandler answers liveness and readiness probes.
type HealthHandler struct {
	manager *database.Manager
}

// NewHealthHandler creates a new HealthHandler.
func NewHealthHandler(manager *database.Manager) *HealthHandler {
	return &HealthHandler{manager: manager}
}

// Home returns the plain-text readiness string.
func (h *HealthHandler) Home(c *gin.Context) {
	c.String(http.StatusOK, "Personal Finance Bot Backend is Running!")
}

// Health reports service status including a database connection check.
func (h *HealthHandler) Health(c *gin.Context) {
	dbStatus := "connected"
	if err := h.manager.Ping(); err != nil {
		dbStatus = "error: " + err.Error()
	}

	c.JSON(http.StatusOK, gin.H{
		"status":   "healthy",
		"message":  "Finance Bot is running",
		"database": dbStatus,
		"version":  version,
	})
}
