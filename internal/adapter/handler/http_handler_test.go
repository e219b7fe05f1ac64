package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/rl1809/kiosk-checkout/internal/core/domain"
	"github.com/rl1809/kiosk-checkout/internal/core/service"
)

// In-memory fakes behind the real services, so requests exercise the full
// router -> handler -> service path.

type fakeCatalog struct {
	items map[int64]domain.ItemSnapshot
}

func (f *fakeCatalog) FindItem(ctx context.Context, itemID int64) (*domain.ItemSnapshot, error) {
	snap, ok := f.items[itemID]
	if !ok {
		return nil, nil
	}
	return &snap, nil
}

type fakeAuthorizer struct {
	approve bool
}

func (f *fakeAuthorizer) Authorize(ctx context.Context, amount float64, card domain.PaymentCard) (bool, error) {
	return f.approve, nil
}

type fakeOrderRepo struct {
	orders map[int64]domain.StoredOrder
	nextID int64
}

func (f *fakeOrderRepo) CreateOrder(ctx context.Context, order domain.ValidatedOrder) (*domain.StoredOrder, error) {
	f.nextID++
	lines := make([]domain.StoredLine, 0, len(order.Lines))
	for i, line := range order.Lines {
		lines = append(lines, domain.StoredLine{ID: int64(i + 1), ItemID: line.ItemID, Quantity: line.Quantity})
	}
	stored := domain.StoredOrder{
		ID:         f.nextID,
		Timestamp:  time.Date(2026, 1, 2, 15, 4, 5, 0, time.UTC),
		Total:      order.Total,
		PaymentKey: order.PaymentKey,
		Lines:      lines,
	}
	if f.orders == nil {
		f.orders = make(map[int64]domain.StoredOrder)
	}
	f.orders[stored.ID] = stored
	return &stored, nil
}

func (f *fakeOrderRepo) GetOrder(ctx context.Context, orderID int64) (*domain.StoredOrder, error) {
	stored, ok := f.orders[orderID]
	if !ok {
		return nil, nil
	}
	return &stored, nil
}

type fakeMenuRepo struct {
	categories []domain.Category
	items      []domain.Item
	nextID     int64
}

func (f *fakeMenuRepo) GetCategories(ctx context.Context) ([]domain.Category, error) {
	return f.categories, nil
}

func (f *fakeMenuRepo) GetItems(ctx context.Context, categoryID int64) ([]domain.Item, error) {
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
	for _, item := range f.items {
		if item.ID == itemID {
			return &item, nil
		}
	}
	return nil, nil
}

func (f *fakeMenuRepo) CreateCategory(ctx context.Context, category domain.Category) (*domain.Category, error) {
	f.nextID++
	category.ID = f.nextID
	f.categories = append(f.categories, category)
	return &category, nil
}

func (f *fakeMenuRepo) CreateItem(ctx context.Context, item domain.Item) (*domain.Item, error) {
	f.nextID++
	item.ID = f.nextID
	f.items = append(f.items, item)
	return &item, nil
}

func newTestServer(approve bool) http.Handler {
	catalog := &fakeCatalog{items: map[int64]domain.ItemSnapshot{
		1: {ID: 1, Name: "Classic Burger", Price: 10.99},
		2: {ID: 2, Name: "Milkshake Deluxe", Price: 15.99},
	}}
	menuRepo := &fakeMenuRepo{
		categories: []domain.Category{{ID: 1, Name: "Burgers"}},
		items: []domain.Item{
			{ID: 1, CategoryID: 1, Name: "Classic Burger", Price: 10.99},
			{ID: 2, CategoryID: 1, Name: "Milkshake Deluxe", Price: 15.99},
		},
		nextID: 2,
	}

	orders := service.NewOrderService(catalog, &fakeAuthorizer{approve: approve}, &fakeOrderRepo{})
	menu := service.NewMenuService(menuRepo)
	admin := service.NewAdminService(menuRepo)
	return NewRouter(NewHTTPHandler(orders, menu, admin, nil))
}

func doRequest(t *testing.T, srv http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)
	return rec
}

const validOrderBody = `{
	"items": [{"item_id": 1, "quantity": 2}, {"item_id": 2, "quantity": 1}],
	"total": 37.97,
	"payment": {
		"card_number": "1234567890123456",
		"card_holder_name": "John Doe",
		"expiry_month": 12,
		"expiry_year": 2030,
		"cvv": "123"
	}
}`

func TestCreateOrder_HTTP_Success(t *testing.T) {
	srv := newTestServer(true)

	rec := doRequest(t, srv, http.MethodPost, "/api/v1/orders", validOrderBody)
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp OrderResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if resp.Total != 37.97 {
		t.Errorf("expected total 37.97, got %v", resp.Total)
	}
	if resp.ID == 0 {
		t.Error("expected assigned order id")
	}
	if len(resp.OrderItems) != 2 {
		t.Errorf("expected 2 order items, got %d", len(resp.OrderItems))
	}
	if len(resp.PaymentKey) != 16 {
		t.Errorf("expected 16-character payment key, got %q", resp.PaymentKey)
	}

	body := rec.Body.String()
	if strings.Contains(body, "1234567890123456") {
		t.Error("response leaks the card number")
	}
	if strings.Contains(body, "cvv") || strings.Contains(body, "123\"") {
		t.Error("response leaks the cvv")
	}
}

func TestCreateOrder_HTTP_TotalMismatch(t *testing.T) {
	srv := newTestServer(true)
	body := strings.Replace(validOrderBody, "37.97", "99.99", 1)

	rec := doRequest(t, srv, http.MethodPost, "/api/v1/orders", body)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "total mismatch") {
		t.Errorf("expected mismatch detail, got: %s", rec.Body.String())
	}
	if !strings.Contains(rec.Body.String(), "37.97") || !strings.Contains(rec.Body.String(), "99.99") {
		t.Errorf("expected both totals in detail, got: %s", rec.Body.String())
	}
}

func TestCreateOrder_HTTP_ItemNotFound(t *testing.T) {
	srv := newTestServer(true)
	body := `{
		"items": [{"item_id": 999, "quantity": 1}],
		"total": 10.99,
		"payment": {"card_number": "1234567890123456", "card_holder_name": "John Doe", "expiry_month": 1, "expiry_year": 2030, "cvv": "123"}
	}`

	rec := doRequest(t, srv, http.MethodPost, "/api/v1/orders", body)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "999") {
		t.Errorf("expected detail to name item 999, got: %s", rec.Body.String())
	}
}

func TestCreateOrder_HTTP_PaymentDenied(t *testing.T) {
	srv := newTestServer(false)

	rec := doRequest(t, srv, http.MethodPost, "/api/v1/orders", validOrderBody)
	if rec.Code != http.StatusPaymentRequired {
		t.Fatalf("expected 402, got %d", rec.Code)
	}
}

func TestCreateOrder_HTTP_EmptyItems(t *testing.T) {
	srv := newTestServer(true)
	body := `{
		"items": [],
		"total": 10.99,
		"payment": {"card_number": "1234567890123456", "card_holder_name": "John Doe", "expiry_month": 1, "expiry_year": 2030, "cvv": "123"}
	}`

	rec := doRequest(t, srv, http.MethodPost, "/api/v1/orders", body)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for zero-line order, got %d", rec.Code)
	}
}

func TestCreateOrder_HTTP_InvalidExpiryMonth(t *testing.T) {
	srv := newTestServer(true)
	body := strings.Replace(validOrderBody, `"expiry_month": 12`, `"expiry_month": 13`, 1)

	rec := doRequest(t, srv, http.MethodPost, "/api/v1/orders", body)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestCreateOrder_HTTP_MalformedJSON(t *testing.T) {
	srv := newTestServer(true)

	rec := doRequest(t, srv, http.MethodPost, "/api/v1/orders", "{not json")
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestGetOrder_HTTP(t *testing.T) {
	srv := newTestServer(true)

	created := doRequest(t, srv, http.MethodPost, "/api/v1/orders", validOrderBody)
	if created.Code != http.StatusCreated {
		t.Fatalf("setup failed: %d", created.Code)
	}
	var resp OrderResponse
	json.Unmarshal(created.Body.Bytes(), &resp)

	rec := doRequest(t, srv, http.MethodGet, "/api/v1/orders/1", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	missing := doRequest(t, srv, http.MethodGet, "/api/v1/orders/999", "")
	if missing.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for unknown order, got %d", missing.Code)
	}

	bad := doRequest(t, srv, http.MethodGet, "/api/v1/orders/abc", "")
	if bad.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for non-numeric id, got %d", bad.Code)
	}
}

func TestMenuEndpoints(t *testing.T) {
	srv := newTestServer(true)

	rec := doRequest(t, srv, http.MethodGet, "/api/v1/menu", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var menu MenuResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &menu); err != nil {
		t.Fatalf("invalid menu body: %v", err)
	}
	if len(menu.Categories) != 1 || len(menu.Items) != 2 {
		t.Errorf("unexpected menu: %+v", menu)
	}

	rec = doRequest(t, srv, http.MethodGet, "/api/v1/items?category_id=1", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	rec = doRequest(t, srv, http.MethodGet, "/api/v1/items?category_id=abc", "")
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for non-numeric category filter, got %d", rec.Code)
	}

	rec = doRequest(t, srv, http.MethodGet, "/api/v1/items/999", "")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for unknown item, got %d", rec.Code)
	}
}

func TestAdminEndpoints(t *testing.T) {
	srv := newTestServer(true)

	rec := doRequest(t, srv, http.MethodPost, "/api/v1/admin/categories", `{"name": "Sides"}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}

	rec = doRequest(t, srv, http.MethodPost, "/api/v1/admin/categories", `{"name": ""}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for empty name, got %d", rec.Code)
	}

	rec = doRequest(t, srv, http.MethodPost, "/api/v1/admin/items", `{"name": "Fries", "price": 3.99, "category_id": 1}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}

	rec = doRequest(t, srv, http.MethodPost, "/api/v1/admin/items", `{"name": "Ghost", "price": 3.99, "category_id": 999}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for missing category, got %d", rec.Code)
	}
}

func TestRequestIDHeader(t *testing.T) {
	srv := newTestServer(true)

	rec := doRequest(t, srv, http.MethodGet, "/health", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if rec.Header().Get("X-Request-Id") == "" {
		t.Error("expected X-Request-Id header on every response")
	}
}
