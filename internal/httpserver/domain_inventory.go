package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	inventoryHTTP "stockguard/internal/inventory/delivery/http"
	inventoryRepo "stockguard/internal/inventory/repository/sqlite"
	inventoryUC "stockguard/internal/inventory/usecase"
)

// setupInventoryDomain initializes the inventory domain and registers its routes.
//
// Pattern to follow when adding a new domain:
//  1. Create Repository:   repo := mydomainRepo.New(srv.db, srv.l)
//  2. Create UseCase:      uc := mydomainUC.New(repo, srv.l)
//  3. Create HTTP Handler: h := mydomainHTTP.New(srv.l, uc)
//  4. Register Routes:     mydomainHTTP.RegisterRoutes(rg, h)
func (srv *HTTPServer) setupInventoryDomain(ctx context.Context, rg *gin.RouterGroup) error {
	// 1. Repository
	repo := inventoryRepo.New(srv.db, srv.l)

	// 2. UseCase
	uc := inventoryUC.New(repo, srv.l)

	// 3. HTTP Handler
	h := inventoryHTTP.New(srv.l, uc)

	// 4. Routes: registers /items and /reports/low-stock
	inventoryHTTP.RegisterRoutes(rg, h)

	srv.l.Infof(ctx, "Inventory domain registered")
	return nil
}
