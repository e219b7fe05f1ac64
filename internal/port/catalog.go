package port

import (
	"context"

	"github.com/rl1809/kiosk-checkout/internal/core/domain"
)

type Catalog interface {
	// FindItem returns the item's price and name frozen at call time, or
	// (nil, nil) when no such item exists.
	FindItem(ctx context.Context, itemID int64) (*domain.ItemSnapshot, error)
}
