package inventory

import "context"

// DefaultLowStockThreshold is applied when the caller supplies no (or an
// unparseable) threshold.
const DefaultLowStockThreshold = 10

type UseCase interface {
	// Item CRUD
	Create(ctx context.Context, input CreateItemInput) (CreateItemOutput, error)
	List(ctx context.Context) (ListItemsOutput, error)
	Detail(ctx context.Context, id int64) (DetailItemOutput, error)
	Delete(ctx context.Context, id int64) error

	// Reports
	LowStock(ctx context.Context, input LowStockInput) (ListItemsOutput, error)
}
