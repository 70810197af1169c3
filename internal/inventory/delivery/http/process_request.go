package http

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"stockguard/internal/inventory"
)

// processCreateReq binds and validates the create item request body.
func (h *handler) processCreateReq(c *gin.Context) (createReq, error) {
	var req createReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}

// processLowStockReq reads the optional threshold query parameter. An
// absent or unparseable value falls back to the default threshold.
func (h *handler) processLowStockReq(c *gin.Context) lowStockReq {
	raw := c.Query("threshold")
	if raw == "" {
		return lowStockReq{Threshold: inventory.DefaultLowStockThreshold}
	}

	threshold, err := strconv.Atoi(raw)
	if err != nil {
		return lowStockReq{Threshold: inventory.DefaultLowStockThreshold}
	}
	return lowStockReq{Threshold: threshold}
}

// parseItemID reads the id path parameter. A non-numeric id names no
// resource, so callers treat a parse failure as not-found.
func parseItemID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return 0, false
	}
	return id, true
}
