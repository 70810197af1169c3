package http

import (
	"github.com/gin-gonic/gin"

	"stockguard/internal/inventory"
	"stockguard/pkg/log"
)

// Handler is the public interface for the inventory HTTP delivery layer.
type Handler interface {
	Create(c *gin.Context)
	List(c *gin.Context)
	Detail(c *gin.Context)
	Delete(c *gin.Context)
	LowStock(c *gin.Context)
}

type handler struct {
	l  log.Logger
	uc inventory.UseCase
}

// New creates a new HTTP handler for the inventory domain.
func New(l log.Logger, uc inventory.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
