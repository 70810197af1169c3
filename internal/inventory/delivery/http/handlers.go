package http

import (
	"github.com/gin-gonic/gin"

	"stockguard/pkg/response"
)

// Create godoc
// @Summary     Create a new item
// @Description Creates a new inventory item. The storage engine assigns the id.
// @Tags        Items
// @Accept      json
// @Produce     json
// @Param       body body createReq true "Item data"
// @Success     200 {object} itemResp
// @Failure     422 {object} response.ErrResp "Validation failed"
// @Failure     500 {object} response.ErrResp "Internal Server Error"
// @Router      /items [POST]
func (h *handler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processCreateReq(c)
	if err != nil {
		response.UnprocessableEntity(c, "validation failed", bindingDetails(err))
		return
	}

	output, err := h.uc.Create(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Create: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, newItemResp(output.Item))
}

// List godoc
// @Summary     List items
// @Description Returns every inventory item, possibly an empty array.
// @Tags        Items
// @Produce     json
// @Success     200 {array}  itemResp
// @Failure     500 {object} response.ErrResp "Internal Server Error"
// @Router      /items [GET]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.List(ctx)
	if err != nil {
		h.l.Errorf(ctx, "uc.List: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, newItemListResp(output))
}

// Detail godoc
// @Summary     Get item detail
// @Description Returns a single item by its ID.
// @Tags        Items
// @Produce     json
// @Param       id path int true "Item ID"
// @Success     200 {object} itemResp
// @Failure     404 {object} response.ErrResp "Not Found"
// @Failure     500 {object} response.ErrResp "Internal Server Error"
// @Router      /items/{id} [GET]
func (h *handler) Detail(c *gin.Context) {
	ctx := c.Request.Context()

	id, ok := parseItemID(c)
	if !ok {
		response.NotFound(c, "Item not found")
		return
	}

	output, err := h.uc.Detail(ctx, id)
	if err != nil {
		h.l.Errorf(ctx, "uc.Detail: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, newItemResp(output.Item))
}

// Delete godoc
// @Summary     Delete an item
// @Description Permanently removes an item by ID.
// @Tags        Items
// @Produce     json
// @Param       id path int true "Item ID"
// @Success     200 {object} response.Msg "Deleted"
// @Failure     404 {object} response.ErrResp "Not Found"
// @Failure     500 {object} response.ErrResp "Internal Server Error"
// @Router      /items/{id} [DELETE]
func (h *handler) Delete(c *gin.Context) {
	ctx := c.Request.Context()

	id, ok := parseItemID(c)
	if !ok {
		response.NotFound(c, "Item not found")
		return
	}

	if err := h.uc.Delete(ctx, id); err != nil {
		h.l.Errorf(ctx, "uc.Delete: %v", err)
		h.respondError(c, err)
		return
	}

	response.Message(c, "Item deleted successfully")
}

// LowStock godoc
// @Summary     Low-stock report
// @Description Returns items whose quantity is strictly below the threshold (default 10).
// @Tags        Reports
// @Produce     json
// @Param       threshold query int false "Restocking threshold (default: 10)"
// @Success     200 {array}  itemResp
// @Failure     500 {object} response.ErrResp "Internal Server Error"
// @Router      /reports/low-stock [GET]
func (h *handler) LowStock(c *gin.Context) {
	ctx := c.Request.Context()

	req := h.processLowStockReq(c)

	output, err := h.uc.LowStock(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.LowStock: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, newItemListResp(output))
}
