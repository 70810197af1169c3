package usecase

import (
	"context"

	"stockguard/internal/inventory"
	repo "stockguard/internal/inventory/repository"
)

// Create persists a new Item. Names are not unique; no business rules
// beyond the delivery-layer field validation apply (negative quantity and
// price are stored as-is).
func (uc *implUseCase) Create(ctx context.Context, input inventory.CreateItemInput) (inventory.CreateItemOutput, error) {
	item, err := uc.repo.CreateItem(ctx, repo.CreateItemOptions{
		Name:        input.Name,
		Quantity:    input.Quantity,
		Price:       input.Price,
		Description: input.Description,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Create CreateItem: %v", err)
		return inventory.CreateItemOutput{}, err
	}

	return inventory.CreateItemOutput{Item: item}, nil
}
