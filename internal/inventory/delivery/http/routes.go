package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods. Routes live
// at the root of the API: /items and /reports/low-stock.
func RegisterRoutes(rg *gin.RouterGroup, h *handler) {
	items := rg.Group("/items")
	{
		items.POST("", h.Create)
		items.GET("", h.List)
		items.GET("/:id", h.Detail)
		items.DELETE("/:id", h.Delete)
	}

	reports := rg.Group("/reports")
	{
		reports.GET("/low-stock", h.LowStock)
	}
}
