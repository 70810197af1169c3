package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"stockguard/internal/inventory"
	repo "stockguard/internal/inventory/repository"
	"stockguard/pkg/log"
)

// MockItemRepository is a testify/mock implementation of the repository,
// so the use case can be exercised without a database.
type MockItemRepository struct {
	mock.Mock
}

func (m *MockItemRepository) CreateItem(ctx context.Context, opt repo.CreateItemOptions) (inventory.Item, error) {
	args := m.Called(ctx, opt)
	return args.Get(0).(inventory.Item), args.Error(1)
}

func (m *MockItemRepository) GetOneItem(ctx context.Context, opt repo.GetOneItemOptions) (inventory.Item, error) {
	args := m.Called(ctx, opt)
	return args.Get(0).(inventory.Item), args.Error(1)
}

func (m *MockItemRepository) ListItems(ctx context.Context, opt repo.ListItemsOptions) ([]inventory.Item, error) {
	args := m.Called(ctx, opt)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]inventory.Item), args.Error(1)
}

func (m *MockItemRepository) DeleteItem(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func strPtr(s string) *string { return &s }

func TestNew(t *testing.T) {
	mockRepo := new(MockItemRepository)
	uc := New(mockRepo, log.NewNoop())

	assert.NotNil(t, uc)
}

func TestCreate(t *testing.T) {
	ctx := context.Background()

	t.Run("persists and returns the stored item with id", func(t *testing.T) {
		mockRepo := new(MockItemRepository)
		input := inventory.CreateItemInput{
			Name:        "Test Laptop",
			Quantity:    10,
			Price:       1500.00,
			Description: strPtr("Test description"),
		}
		stored := inventory.Item{
			ID:          1,
			Name:        input.Name,
			Quantity:    input.Quantity,
			Price:       input.Price,
			Description: input.Description,
		}
		mockRepo.On("CreateItem", mock.Anything, repo.CreateItemOptions{
			Name:        input.Name,
			Quantity:    input.Quantity,
			Price:       input.Price,
			Description: input.Description,
		}).Return(stored, nil)

		uc := New(mockRepo, log.NewNoop())
		out, err := uc.Create(ctx, input)

		require.NoError(t, err)
		assert.Equal(t, stored, out.Item)
		mockRepo.AssertExpectations(t)
	})

	t.Run("negative quantity and price are accepted as-is", func(t *testing.T) {
		mockRepo := new(MockItemRepository)
		input := inventory.CreateItemInput{Name: "Broken Scale", Quantity: -3, Price: -1.50}
		mockRepo.On("CreateItem", mock.Anything, mock.Anything).
			Return(inventory.Item{ID: 2, Name: input.Name, Quantity: -3, Price: -1.50}, nil)

		uc := New(mockRepo, log.NewNoop())
		out, err := uc.Create(ctx, input)

		require.NoError(t, err)
		assert.Equal(t, -3, out.Item.Quantity)
	})

	t.Run("storage fault propagates", func(t *testing.T) {
		mockRepo := new(MockItemRepository)
		mockRepo.On("CreateItem", mock.Anything, mock.Anything).
			Return(inventory.Item{}, repo.ErrFailedToInsert)

		uc := New(mockRepo, log.NewNoop())
		_, err := uc.Create(ctx, inventory.CreateItemInput{Name: "x"})

		assert.ErrorIs(t, err, repo.ErrFailedToInsert)
	})
}

func TestList(t *testing.T) {
	ctx := context.Background()

	t.Run("returns all items", func(t *testing.T) {
		mockRepo := new(MockItemRepository)
		items := []inventory.Item{
			{ID: 1, Name: "Laptop", Quantity: 10, Price: 1500},
			{ID: 2, Name: "Scanner", Quantity: 1, Price: 99.99},
		}
		mockRepo.On("ListItems", mock.Anything, repo.ListItemsOptions{}).Return(items, nil)

		uc := New(mockRepo, log.NewNoop())
		out, err := uc.List(ctx)

		require.NoError(t, err)
		assert.Len(t, out.Items, 2)
	})

	t.Run("empty store yields empty list", func(t *testing.T) {
		mockRepo := new(MockItemRepository)
		mockRepo.On("ListItems", mock.Anything, repo.ListItemsOptions{}).
			Return([]inventory.Item{}, nil)

		uc := New(mockRepo, log.NewNoop())
		out, err := uc.List(ctx)

		require.NoError(t, err)
		assert.Empty(t, out.Items)
	})
}

func TestDetail(t *testing.T) {
	ctx := context.Background()

	t.Run("found", func(t *testing.T) {
		mockRepo := new(MockItemRepository)
		mockRepo.On("GetOneItem", mock.Anything, repo.GetOneItemOptions{ID: 7}).
			Return(inventory.Item{ID: 7, Name: "Laptop"}, nil)

		uc := New(mockRepo, log.NewNoop())
		out, err := uc.Detail(ctx, 7)

		require.NoError(t, err)
		assert.Equal(t, int64(7), out.Item.ID)
	})

	t.Run("zero-value repo result maps to ErrItemNotFound", func(t *testing.T) {
		mockRepo := new(MockItemRepository)
		mockRepo.On("GetOneItem", mock.Anything, repo.GetOneItemOptions{ID: 404}).
			Return(inventory.Item{}, nil)

		uc := New(mockRepo, log.NewNoop())
		_, err := uc.Detail(ctx, 404)

		assert.ErrorIs(t, err, inventory.ErrItemNotFound)
	})
}

func TestDelete(t *testing.T) {
	ctx := context.Background()

	t.Run("existing item is removed", func(t *testing.T) {
		mockRepo := new(MockItemRepository)
		mockRepo.On("GetOneItem", mock.Anything, repo.GetOneItemOptions{ID: 3}).
			Return(inventory.Item{ID: 3}, nil)
		mockRepo.On("DeleteItem", mock.Anything, int64(3)).Return(nil)

		uc := New(mockRepo, log.NewNoop())
		err := uc.Delete(ctx, 3)

		require.NoError(t, err)
		mockRepo.AssertExpectations(t)
	})

	t.Run("absent item yields ErrItemNotFound", func(t *testing.T) {
		mockRepo := new(MockItemRepository)
		mockRepo.On("GetOneItem", mock.Anything, repo.GetOneItemOptions{ID: 3}).
			Return(inventory.Item{}, nil)

		uc := New(mockRepo, log.NewNoop())
		err := uc.Delete(ctx, 3)

		assert.ErrorIs(t, err, inventory.ErrItemNotFound)
		mockRepo.AssertNotCalled(t, "DeleteItem", mock.Anything, mock.Anything)
	})
}

func TestLowStock(t *testing.T) {
	ctx := context.Background()

	t.Run("threshold is passed to the repository filter", func(t *testing.T) {
		mockRepo := new(MockItemRepository)
		mockRepo.On("ListItems", mock.Anything, mock.MatchedBy(func(opt repo.ListItemsOptions) bool {
			return opt.QuantityBelow != nil && *opt.QuantityBelow == 5
		})).Return([]inventory.Item{{ID: 1, Name: "Scanner", Quantity: 1}}, nil)

		uc := New(mockRepo, log.NewNoop())
		out, err := uc.LowStock(ctx, inventory.LowStockInput{Threshold: 5})

		require.NoError(t, err)
		assert.Len(t, out.Items, 1)
	})

	t.Run("storage fault propagates", func(t *testing.T) {
		mockRepo := new(MockItemRepository)
		mockRepo.On("ListItems", mock.Anything, mock.Anything).
			Return(nil, repo.ErrFailedToList)

		uc := New(mockRepo, log.NewNoop())
		_, err := uc.LowStock(ctx, inventory.LowStockInput{Threshold: 10})

		assert.ErrorIs(t, err, repo.ErrFailedToList)
	})
}
