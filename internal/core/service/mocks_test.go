package service

import (
	"context"
	"time"

	"github.com/rl1809/kiosk-checkout/internal/core/domain"
)

// Hand-written fakes for the ports the services depend on.

type fakeCatalog struct {
	items map[int64]domain.ItemSnapshot
	err   error
	calls int
}

func (f *fakeCatalog) FindItem(ctx context.Context, itemID int64) (*domain.ItemSnapshot, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	snap, ok := f.items[itemID]
	if !ok {
		return nil, nil
	}
	return &snap, nil
}

type fakeAuthorizer struct {
	approve    bool
	err        error
	calls      int
	lastAmount float64
}

func (f *fakeAuthorizer) Authorize(ctx context.Context, amount float64, card domain.PaymentCard) (bool, error) {
	f.calls++
	f.lastAmount = amount
	return f.approve, f.err
}

type fakeOrderRepo struct {
	createErr error
	created   *domain.ValidatedOrder
	stored    map[int64]domain.StoredOrder
	nextID    int64
}

func (f *fakeOrderRepo) CreateOrder(ctx context.Context, order domain.ValidatedOrder) (*domain.StoredOrder, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	f.created = &order
	f.nextID++

	lines := make([]domain.StoredLine, 0, len(order.Lines))
	for i, line := range order.Lines {
		lines = append(lines, domain.StoredLine{
			ID:       f.nextID*100 + int64(i),
			ItemID:   line.ItemID,
			Quantity: line.Quantity,
		})
	}
	return &domain.StoredOrder{
		ID:         f.nextID,
		Timestamp:  time.Date(2026, 1, 2, 15, 4, 5, 0, time.UTC),
		Total:      order.Total,
		PaymentKey: order.PaymentKey,
		Lines:      lines,
	}, nil
}

func (f *fakeOrderRepo) GetOrder(ctx context.Context, orderID int64) (*domain.StoredOrder, error) {
	order, ok := f.stored[orderID]
	if !ok {
		return nil, nil
	}
	return &order, nil
}

type fakeMenuRepo struct {
	categories []domain.Category
	items      []domain.Item
	err        error
	nextID     int64
}

func (f *fakeMenuRepo) GetCategories(ctx context.Context) ([]domain.Category, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.categories, nil
}

func (f *fakeMenuRepo) GetItems(ctx context.Context, categoryID int64) ([]domain.Item, error) {
	if f.err != nil {
		return nil, f.err
	}
	if categoryID == 0 {
		return f.items, nil
	}
	var filtered []domain.Item
	for _, item := range f.items {
		if item.CategoryID == categoryID {
			filtered = append(filtered, item)
		}
	}
	return filtered, nil
}

func (f *fakeMenuRepo) GetItem(ctx context.Context, itemID int64) (*domain.Item, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, item := range f.items {
		if item.ID == itemID {
			return &item, nil
		}
	}
	return nil, nil
}

func (f *fakeMenuRepo) CreateCategory(ctx context.Context, category domain.Category) (*domain.Category, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.nextID++
	category.ID = f.nextID
	f.categories = append(f.categories, category)
	return &category, nil
}

func (f *fakeMenuRepo) CreateItem(ctx context.Context, item domain.Item) (*domain.Item, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.nextID++
	item.ID = f.nextID
	f.items = append(f.items, item)
	return &item, nil
}
