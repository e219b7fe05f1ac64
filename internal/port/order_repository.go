package port

import (
	"context"

	"github.com/rl1809/kiosk-checkout/internal/core/domain"
)

type OrderRepository interface {
	// CreateOrder persists the order header and all lines atomically,
	// assigning the identifier and timestamp at commit time. On any
	// mid-write failure nothing is persisted.
	CreateOrder(ctx context.Context, order domain.ValidatedOrder) (*domain.StoredOrder, error)

	// GetOrder retrieves a stored order by id, or (nil, nil) when absent.
	GetOrder(ctx context.Context, orderID int64) (*domain.StoredOrder, error)
}
