package inventory

// --- Item Domain Model ---

// Item is the core domain entity managed by this module. An Item is
// immutable between creation and deletion — there is no update operation.
type Item struct {
	ID          int64
	Name        string
	Quantity    int
	Price       float64
	Description *string
}

// --- UseCase Inputs ---

type CreateItemInput struct {
	Name        string
	Quantity    int
	Price       float64
	Description *string
}

// LowStockInput carries the restocking threshold. Items with
// Quantity strictly below Threshold are reported.
type LowStockInput struct {
	Threshold int
}

// --- UseCase Outputs ---

type CreateItemOutput struct {
	Item Item
}

type ListItemsOutput struct {
	Items []Item
}

type DetailItemOutput struct {
	Item Item
}
