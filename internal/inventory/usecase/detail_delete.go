package usecase

import (
	"context"

	"stockguard/internal/inventory"
	repo "stockguard/internal/inventory/repository"
)

// Detail retrieves a single Item by ID. Returns ErrItemNotFound when not found.
func (uc *implUseCase) Detail(ctx context.Context, id int64) (inventory.DetailItemOutput, error) {
	item, err := uc.repo.GetOneItem(ctx, repo.GetOneItemOptions{ID: id})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Detail GetOneItem: %v", err)
		return inventory.DetailItemOutput{}, err
	}
	if item.ID == 0 {
		return inventory.DetailItemOutput{}, inventory.ErrItemNotFound
	}
	return inventory.DetailItemOutput{Item: item}, nil
}

// Delete removes an Item by ID. Returns ErrItemNotFound when not found, so
// deleting the same id twice reports not-found on the second call.
func (uc *implUseCase) Delete(ctx context.Context, id int64) error {
	existing, err := uc.repo.GetOneItem(ctx, repo.GetOneItemOptions{ID: id})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Delete GetOneItem: %v", err)
		return err
	}
	if existing.ID == 0 {
		return inventory.ErrItemNotFound
	}
	if err := uc.repo.DeleteItem(ctx, id); err != nil {
		uc.l.Errorf(ctx, "uc.Delete DeleteItem: %v", err)
		return err
	}
	return nil
}
