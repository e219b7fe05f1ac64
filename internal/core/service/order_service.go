package service

import (
	"context"
	"fmt"
	"log/slog"
	"math"

	"github.com/rl1809/kiosk-checkout/internal/core/domain"
	"github.com/rl1809/kiosk-checkout/internal/port"
)

// totalTolerance is the maximum allowed absolute deviation between the
// client-declared total and the recomputed one. It absorbs floating-point
// rounding on the client while still catching tampered or stale prices.
const totalTolerance = 0.01

// OrderService runs the order pricing and validation pipeline. It holds no
// mutable state; concurrent validations share nothing but the injected
// collaborators.
type OrderService struct {
	catalog    port.Catalog
	authorizer port.PaymentAuthorizer
	orders     port.OrderRepository
}

func NewOrderService(catalog port.Catalog, authorizer port.PaymentAuthorizer, orders port.OrderRepository) *OrderService {
	return &OrderService{
		catalog:    catalog,
		authorizer: authorizer,
		orders:     orders,
	}
}

// CreateOrder validates, prices, authorizes, and persists a proposed order,
// short-circuiting on the first failure. The stored total is always the
// recomputed one. On any error nothing has been persisted.
func (s *OrderService) CreateOrder(ctx context.Context, proposed domain.ProposedOrder) (*domain.StoredOrder, error) {
	lines := make([]domain.ValidatedLine, 0, len(proposed.Lines))
	var computedTotal float64

	for _, line := range proposed.Lines {
		snap, err := s.catalog.FindItem(ctx, line.ItemID)
		if err != nil {
			return nil, fmt.Errorf("catalog lookup for item %d: %w", line.ItemID, err)
		}
		if snap == nil {
			return nil, &ItemNotFoundError{ItemID: line.ItemID}
		}

		subtotal := snap.Price * float64(line.Quantity)
		computedTotal += subtotal
		lines = append(lines, domain.ValidatedLine{
			ItemID:    snap.ID,
			Name:      snap.Name,
			Quantity:  line.Quantity,
			UnitPrice: snap.Price,
			Subtotal:  subtotal,
		})
	}

	if math.Abs(computedTotal-proposed.Total) > totalTolerance {
		return nil, &TotalMismatchError{Expected: computedTotal, Received: proposed.Total}
	}

	approved, err := s.authorizer.Authorize(ctx, computedTotal, proposed.Payment)
	if err != nil {
		return nil, fmt.Errorf("payment authorization: %w", err)
	}
	if !approved {
		return nil, ErrPaymentDenied
	}

	validated := domain.ValidatedOrder{
		Lines:      lines,
		Total:      computedTotal,
		PaymentKey: proposed.Payment.ReferenceKey(),
		Payment:    proposed.Payment.Masked(),
	}

	stored, err := s.orders.CreateOrder(ctx, validated)
	if err != nil {
		return nil, fmt.Errorf("persist order: %w", err)
	}

	slog.InfoContext(ctx, "order created",
		"order_id", stored.ID,
		"total", stored.Total,
		"lines", len(stored.Lines),
	)
	return stored, nil
}

// GetOrder retrieves a stored order by id.
func (s *OrderService) GetOrder(ctx context.Context, orderID int64) (*domain.StoredOrder, error) {
	stored, err := s.orders.GetOrder(ctx, orderID)
	if err != nil {
		return nil, fmt.Errorf("load order %d: %w", orderID, err)
	}
	if stored == nil {
		return nil, ErrOrderNotFound
	}
	return stored, nil
}
