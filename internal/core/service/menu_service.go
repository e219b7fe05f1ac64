package service

import (
	"context"
	"fmt"

	"github.com/rl1809/kiosk-checkout/internal/core/domain"
	"github.com/rl1809/kiosk-checkout/internal/port"
)

// Menu bundles categories with their items for the kiosk start screen.
type Menu struct {
	Categories []domain.Category
	Items      []domain.Item
}

type MenuService struct {
	menu port.MenuRepository
}

func NewMenuService(menu port.MenuRepository) *MenuService {
	return &MenuService{menu: menu}
}

func (s *MenuService) GetCategories(ctx context.Context) ([]domain.Category, error) {
	categories, err := s.menu.GetCategories(ctx)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	return categories, nil
}

func (s *MenuService) GetMenu(ctx context.Context) (*Menu, error) {
	categories, err := s.menu.GetCategories(ctx)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	items, err := s.menu.GetItems(ctx, 0)
	if err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}
	return &Menu{Categories: categories, Items: items}, nil
}

// GetItems lists all items, or only those in categoryID when it is non-zero.
func (s *MenuService) GetItems(ctx context.Context, categoryID int64) ([]domain.Item, error) {
	items, err := s.menu.GetItems(ctx, categoryID)
	if err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}
	return items, nil
}

func (s *MenuService) GetItem(ctx context.Context, itemID int64) (*domain.Item, error) {
	item, err := s.menu.GetItem(ctx, itemID)
	if err != nil {
		return nil, fmt.Errorf("load item %d: %w", itemID, err)
	}
	if item == nil {
		return nil, ErrItemNotFound
	}
	return item, nil
}
