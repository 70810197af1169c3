package http

import (
	"stockguard/internal/inventory"
)

// --- Request DTOs ---

// createReq uses pointer fields so that "field absent" is distinguishable
// from a legitimate zero value (quantity 0 is valid stock).
type createReq struct {
	Name        *string  `json:"name"     binding:"required"`
	Quantity    *int     `json:"quantity" binding:"required"`
	Price       *float64 `json:"price"    binding:"required"`
	Description *string  `json:"description"`
}

func (r createReq) toInput() inventory.CreateItemInput {
	return inventory.CreateItemInput{
		Name:        *r.Name,
		Quantity:    *r.Quantity,
		Price:       *r.Price,
		Description: r.Description,
	}
}

// ---

type lowStockReq struct {
	Threshold int
}

func (r lowStockReq) toInput() inventory.LowStockInput {
	return inventory.LowStockInput{Threshold: r.Threshold}
}

// --- Response DTOs ---

// itemResp is the external shape of an Item: the creation input fields plus
// the generated id. Description serializes as null when absent.
type itemResp struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Quantity    int     `json:"quantity"`
	Price       float64 `json:"price"`
	Description *string `json:"description"`
}

func newItemResp(item inventory.Item) itemResp {
	return itemResp{
		ID:          item.ID,
		Name:        item.Name,
		Quantity:    item.Quantity,
		Price:       item.Price,
		Description: item.Description,
	}
}

// newItemListResp always yields a non-nil slice so an empty store
// serializes as [] rather than null.
func newItemListResp(out inventory.ListItemsOutput) []itemResp {
	items := make([]itemResp, len(out.Items))
	for i, item := range out.Items {
		items[i] = newItemResp(item)
	}
	return items
}
