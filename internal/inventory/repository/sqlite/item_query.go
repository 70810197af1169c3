package sqlite

import (
	"fmt"
	"strings"

	repo "stockguard/internal/inventory/repository"
)

// buildGetOneQuery builds the WHERE clause + args for GetOneItem.
// The id condition is always applied: 0 is a client-reachable id that must
// match nothing, never a wildcard.
func (r *implRepository) buildGetOneQuery(opt repo.GetOneItemOptions) (string, []any) {
	conditions := []string{"id = ?"}
	args := []any{opt.ID}

	return strings.Join(conditions, " AND "), args
}

// buildListQuery builds the full WHERE + ORDER clause for ListItems.
func (r *implRepository) buildListQuery(opt repo.ListItemsOptions) (string, []any) {
	var parts []string
	var conditions []string
	var args []any

	// Filters
	if opt.QuantityBelow != nil {
		conditions = append(conditions, "quantity < ?")
		args = append(args, *opt.QuantityBelow)
	}

	if len(conditions) > 0 {
		parts = append(parts, "WHERE "+strings.Join(conditions, " AND "))
	}

	// Sorting: default to insertion order
	orderBy := opt.OrderBy
	if orderBy == "" {
		orderBy = "id ASC"
	}
	parts = append(parts, fmt.Sprintf("ORDER BY %s", orderBy))

	return strings.Join(parts, " "), args
}
