package repository

// CreateItemOptions holds parameters for inserting a new Item.
// The storage engine assigns the ID.
type CreateItemOptions struct {
	Name        string
	Quantity    int
	Price       float64
	Description *string
}

// GetOneItemOptions holds filter parameters for fetching a single Item.
type GetOneItemOptions struct {
	ID int64
}

// ListItemsOptions holds filter parameters for listing Items.
// QuantityBelow, when set, restricts the result to items with
// quantity strictly less than the given value.
type ListItemsOptions struct {
	QuantityBelow *int
	OrderBy       string
}
