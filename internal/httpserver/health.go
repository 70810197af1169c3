package httpserver

import (
	"github.com/gin-gonic/gin"

	"stockguard/pkg/response"
)

// Health response constants (single source for version and service identity).
const (
	WelcomeMessage = "Welcome to StockGuard API - System is running"
	HealthVersion  = "1.1.0"
	ServiceName    = "stockguard"
)

// welcome handles the root health message
// @Summary Welcome
// @Description Static health message confirming the API is running
// @Tags Health
// @Produce json
// @Success 200 {object} response.Msg
// @Router / [get]
func (srv *HTTPServer) welcome(c *gin.Context) {
	response.Message(c, WelcomeMessage)
}

// healthCheck handles health check requests
// @Summary Health Check
// @Description Check if the API is healthy
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]interface{} "API is healthy"
// @Router /health [get]
func (srv *HTTPServer) healthCheck(c *gin.Context) {
	response.OK(c, gin.H{
		"status":  "healthy",
		"version": HealthVersion,
		"service": ServiceName,
	})
}
