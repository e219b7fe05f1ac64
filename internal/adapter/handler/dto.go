package handler

import (
	"fmt"
	"time"

	"github.com/rl1809/kiosk-checkout/internal/core/domain"
	"github.com/rl1809/kiosk-checkout/internal/core/service"
)

type CategoryRequest struct {
	Name  string `json:"name"`
	Image string `json:"image,omitempty"`
}

type CategoryResponse struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Image string `json:"image,omitempty"`
}

type ItemRequest struct {
	Name       string  `json:"name"`
	Price      float64 `json:"price"`
	ImageID    string  `json:"image_id,omitempty"`
	CategoryID int64   `json:"category_id"`
}

type ItemResponse struct {
	ID         int64   `json:"id"`
	Name       string  `json:"name"`
	Price      float64 `json:"price"`
	ImageID    string  `json:"image_id,omitempty"`
	CategoryID int64   `json:"category_id"`
}

type MenuResponse struct {
	Categories []CategoryResponse `json:"categories"`
	Items      []ItemResponse     `json:"items"`
}

type PaymentDTO struct {
	CardNumber     string         `json:"card_number"`
	CardHolderName string         `json:"card_holder_name"`
	ExpiryMonth    int            `json:"expiry_month"`
	ExpiryYear     int            `json:"expiry_year"`
	CVV            string         `json:"cvv"`
	BillingAddress map[string]any `json:"billing_address,omitempty"`
}

type OrderLineDTO struct {
	ItemID   int64 `json:"item_id"`
	Quantity int   `json:"quantity"`
}

type CreateOrderRequest struct {
	Items   []OrderLineDTO `json:"items"`
	Total   float64        `json:"total"`
	Payment PaymentDTO     `json:"payment"`
}

// Validate applies schema-level checks before the pricing pipeline runs.
// Zero-line orders are rejected here by policy; the engine itself does not
// re-check.
func (r *CreateOrderRequest) Validate() error {
	if len(r.Items) == 0 {
		return &service.ValidationError{Field: "items", Message: "items cannot be empty"}
	}
	for i, line := range r.Items {
		if line.ItemID <= 0 {
			return &service.ValidationError{Field: fmt.Sprintf("items[%d].item_id", i), Message: "item id must be greater than 0"}
		}
		if line.Quantity <= 0 {
			return &service.ValidationError{Field: fmt.Sprintf("items[%d].quantity", i), Message: "quantity must be greater than 0"}
		}
	}
	if r.Total <= 0 {
		return &service.ValidationError{Field: "total", Message: "total must be greater than 0"}
	}
	if r.Payment.CardNumber == "" {
		return &service.ValidationError{Field: "payment.card_number", Message: "card number is required"}
	}
	if r.Payment.CardHolderName == "" {
		return &service.ValidationError{Field: "payment.card_holder_name", Message: "card holder name is required"}
	}
	if r.Payment.ExpiryMonth < 1 || r.Payment.ExpiryMonth > 12 {
		return &service.ValidationError{Field: "payment.expiry_month", Message: "expiry month must be between 1 and 12"}
	}
	if r.Payment.CVV == "" {
		return &service.ValidationError{Field: "payment.cvv", Message: "cvv is required"}
	}
	return nil
}

func (r *CreateOrderRequest) toDomain() domain.ProposedOrder {
	lines := make([]domain.ProposedLine, 0, len(r.Items))
	for _, line := range r.Items {
		lines = append(lines, domain.ProposedLine{ItemID: line.ItemID, Quantity: line.Quantity})
	}
	return domain.ProposedOrder{
		Lines: lines,
		Total: r.Total,
		Payment: domain.PaymentCard{
			CardNumber:     r.Payment.CardNumber,
			CardHolderName: r.Payment.CardHolderName,
			ExpiryMonth:    r.Payment.ExpiryMonth,
			ExpiryYear:     r.Payment.ExpiryYear,
			CVV:            r.Payment.CVV,
			BillingAddress: r.Payment.BillingAddress,
		},
	}
}

type OrderLineResponse struct {
	ID       int64 `json:"id"`
	ItemID   int64 `json:"item_id"`
	Quantity int   `json:"quantity"`
}

// OrderResponse deliberately has no field that could carry the card number,
// CVV, or billing address.
type OrderResponse struct {
	ID         int64               `json:"id"`
	Timestamp  string              `json:"timestamp"`
	Total      float64             `json:"total"`
	PaymentKey string              `json:"payment_key"`
	OrderItems []OrderLineResponse `json:"order_items"`
}

type ErrorResponse struct {
	Detail string `json:"detail"`
}

func mapCategory(cat domain.Category) CategoryResponse {
	return CategoryResponse{ID: cat.ID, Name: cat.Name, Image: cat.Image}
}

func mapItem(item domain.Item) ItemResponse {
	return ItemResponse{
		ID:         item.ID,
		Name:       item.Name,
		Price:      item.Price,
		ImageID:    item.ImageID,
		CategoryID: item.CategoryID,
	}
}

func mapCategories(cats []domain.Category) []CategoryResponse {
	out := make([]CategoryResponse, 0, len(cats))
	for _, cat := range cats {
		out = append(out, mapCategory(cat))
	}
	return out
}

func mapItems(items []domain.Item) []ItemResponse {
	out := make([]ItemResponse, 0, len(items))
	for _, item := range items {
		out = append(out, mapItem(item))
	}
	return out
}

func mapOrder(order *domain.StoredOrder) OrderResponse {
	lines := make([]OrderLineResponse, 0, len(order.Lines))
	for _, line := range order.Lines {
		lines = append(lines, OrderLineResponse{ID: line.ID, ItemID: line.ItemID, Quantity: line.Quantity})
	}
	return OrderResponse{
		ID:         order.ID,
		Timestamp:  order.Timestamp.UTC().Format(time.RFC3339),
		Total:      order.Total,
		PaymentKey: order.PaymentKey,
		OrderItems: lines,
	}
}
