package usecase

import (
	"context"

	"stockguard/internal/inventory"
	repo "stockguard/internal/inventory/repository"
)

// List returns every Item in the store.
func (uc *implUseCase) List(ctx context.Context) (inventory.ListItemsOutput, error) {
	items, err := uc.repo.ListItems(ctx, repo.ListItemsOptions{})
	if err != nil {
		uc.l.Errorf(ctx, "uc.List ListItems: %v", err)
		return inventory.ListItemsOutput{}, err
	}

	return inventory.ListItemsOutput{Items: items}, nil
}
