package usecase

import (
	"context"

	"stockguard/internal/inventory"
	repo "stockguard/internal/inventory/repository"
)

// LowStock returns every Item whose quantity is strictly below the
// threshold, for restocking alerts.
func (uc *implUseCase) LowStock(ctx context.Context, input inventory.LowStockInput) (inventory.ListItemsOutput, error) {
	threshold := input.Threshold

	items, err := uc.repo.ListItems(ctx, repo.ListItemsOptions{
		QuantityBelow: &threshold,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.LowStock ListItems: %v", err)
		return inventory.ListItemsOutput{}, err
	}

	return inventory.ListItemsOutput{Items: items}, nil
}
