package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"stockguard/internal/inventory"
	repo "stockguard/internal/inventory/repository"
)

// CreateItem inserts a new Item row and returns the created entity with the
// storage-assigned ID.
func (r *implRepository) CreateItem(ctx context.Context, opt repo.CreateItemOptions) (inventory.Item, error) {
	const query = `
		INSERT INTO items (name, quantity, price, description)
		VALUES (?, ?, ?, ?)`

	res, err := r.db.ExecContext(ctx, query, opt.Name, opt.Quantity, opt.Price, opt.Description)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateItem"), err)
		return inventory.Item{}, repo.ErrFailedToInsert
	}

	id, err := res.LastInsertId()
	if err != nil {
		r.l.Errorf(ctx, "%s last insert id: %v", r.dsn("CreateItem"), err)
		return inventory.Item{}, repo.ErrFailedToInsert
	}

	return inventory.Item{
		ID:          id,
		Name:        opt.Name,
		Quantity:    opt.Quantity,
		Price:       opt.Price,
		Description: opt.Description,
	}, nil
}

// GetOneItem retrieves a single Item by the provided filters.
// Returns zero-value Item (ID == 0) when not found — do NOT return error for not-found.
func (r *implRepository) GetOneItem(ctx context.Context, opt repo.GetOneItemOptions) (inventory.Item, error) {
	mods, args := r.buildGetOneQuery(opt)
	query := fmt.Sprintf(
		`SELECT id, name, quantity, price, description FROM items WHERE %s LIMIT 1`,
		mods,
	)

	var item inventory.Item
	err := r.db.QueryRowContext(ctx, query, args...).Scan(
		&item.ID, &item.Name, &item.Quantity, &item.Price, &item.Description,
	)
	if err == sql.ErrNoRows {
		return inventory.Item{}, nil // not found → zero value, no error
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetOneItem"), err)
		return inventory.Item{}, repo.ErrFailedToGet
	}
	return item, nil
}

// ListItems returns all Items matching the filters in insertion order.
func (r *implRepository) ListItems(ctx context.Context, opt repo.ListItemsOptions) ([]inventory.Item, error) {
	mods, args := r.buildListQuery(opt)
	query := fmt.Sprintf(
		`SELECT id, name, quantity, price, description FROM items %s`,
		mods,
	)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListItems"), err)
		return nil, repo.ErrFailedToList
	}
	defer rows.Close()

	var items []inventory.Item
	for rows.Next() {
		var item inventory.Item
		if err := rows.Scan(&item.ID, &item.Name, &item.Quantity, &item.Price, &item.Description); err != nil {
			r.l.Errorf(ctx, "%s scan: %v", r.dsn("ListItems"), err)
			return nil, repo.ErrFailedToList
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		r.l.Errorf(ctx, "%s rows: %v", r.dsn("ListItems"), err)
		return nil, repo.ErrFailedToList
	}
	return items, nil
}

// DeleteItem removes an Item by ID.
func (r *implRepository) DeleteItem(ctx context.Context, id int64) error {
	const query = `DELETE FROM items WHERE id = ?`
	_, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("DeleteItem"), err)
		return repo.ErrFailedToDelete
	}
	return nil
}
