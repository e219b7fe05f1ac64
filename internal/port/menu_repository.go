package port

import (
	"context"

	"github.com/rl1809/kiosk-checkout/internal/core/domain"
)

type MenuRepository interface {
	GetCategories(ctx context.Context) ([]domain.Category, error)

	// GetItems lists all items, or only those in categoryID when it is
	// non-zero.
	GetItems(ctx context.Context, categoryID int64) ([]domain.Item, error)

	// GetItem retrieves a single item by id, or (nil, nil) when absent.
	GetItem(ctx context.Context, itemID int64) (*domain.Item, error)

	CreateCategory(ctx context.Context, category domain.Category) (*domain.Category, error)
	CreateItem(ctx context.Context, item domain.Item) (*domain.Item, error)
}
