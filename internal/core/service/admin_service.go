package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/rl1809/kiosk-checkout/internal/core/domain"
	"github.com/rl1809/kiosk-checkout/internal/port"
)

const (
	maxCategoryNameLen = 100
	maxItemNameLen     = 200
	maxImageLen        = 255
)

// AdminService creates menu data. Orders never go through it.
type AdminService struct {
	menu port.MenuRepository
}

func NewAdminService(menu port.MenuRepository) *AdminService {
	return &AdminService{menu: menu}
}

func (s *AdminService) CreateCategory(ctx context.Context, category domain.Category) (*domain.Category, error) {
	name := strings.TrimSpace(category.Name)
	if name == "" {
		return nil, &ValidationError{Field: "name", Message: "category name is required and cannot be empty"}
	}
	if len(name) > maxCategoryNameLen {
		return nil, &ValidationError{Field: "name", Message: fmt.Sprintf("category name cannot exceed %d characters", maxCategoryNameLen)}
	}
	if len(category.Image) > maxImageLen {
		return nil, &ValidationError{Field: "image", Message: fmt.Sprintf("image filename cannot exceed %d characters", maxImageLen)}
	}

	existing, err := s.menu.GetCategories(ctx)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	for _, cat := range existing {
		if strings.EqualFold(cat.Name, name) {
			return nil, &ValidationError{Field: "name", Message: "a category with this name already exists"}
		}
	}

	category.Name = name
	created, err := s.menu.CreateCategory(ctx, category)
	if err != nil {
		return nil, fmt.Errorf("create category: %w", err)
	}

	slog.InfoContext(ctx, "category created", "category_id", created.ID, "name", created.Name)
	return created, nil
}

func (s *AdminService) CreateItem(ctx context.Context, item domain.Item) (*domain.Item, error) {
	name := strings.TrimSpace(item.Name)
	if name == "" {
		return nil, &ValidationError{Field: "name", Message: "item name is required and cannot be empty"}
	}
	if len(name) > maxItemNameLen {
		return nil, &ValidationError{Field: "name", Message: fmt.Sprintf("item name cannot exceed %d characters", maxItemNameLen)}
	}
	if item.Price <= 0 {
		return nil, &ValidationError{Field: "price", Message: "price must be greater than 0"}
	}
	if len(item.ImageID) > maxImageLen {
		return nil, &ValidationError{Field: "image_id", Message: fmt.Sprintf("image ID cannot exceed %d characters", maxImageLen)}
	}

	categories, err := s.menu.GetCategories(ctx)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	found := false
	for _, cat := range categories {
		if cat.ID == item.CategoryID {
			found = true
			break
		}
	}
	if !found {
		return nil, &ValidationError{Field: "category_id", Message: fmt.Sprintf("category with ID %d does not exist", item.CategoryID)}
	}

	siblings, err := s.menu.GetItems(ctx, item.CategoryID)
	if err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}
	for _, sibling := range siblings {
		if strings.EqualFold(sibling.Name, name) {
			return nil, &ValidationError{Field: "name", Message: "an item with this name already exists in this category"}
		}
	}

	item.Name = name
	created, err := s.menu.CreateItem(ctx, item)
	if err != nil {
		return nil, fmt.Errorf("create item: %w", err)
	}

	slog.InfoContext(ctx, "item created", "item_id", created.ID, "name", created.Name, "price", created.Price)
	return created, nil
}
