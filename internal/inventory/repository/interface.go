package repository

import (
	"context"

	"stockguard/internal/inventory"
)

// Repository is the composed interface for the inventory data store.
type Repository interface {
	ItemRepository
}

// ItemRepository defines all data access methods for the Item entity.
type ItemRepository interface {
	CreateItem(ctx context.Context, opt CreateItemOptions) (inventory.Item, error)
	GetOneItem(ctx context.Context, opt GetOneItemOptions) (inventory.Item, error)
	ListItems(ctx context.Context, opt ListItemsOptions) ([]inventory.Item, error)
	DeleteItem(ctx context.Context, id int64) error
}
