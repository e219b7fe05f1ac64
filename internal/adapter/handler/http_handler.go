package handler

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/rl1809/kiosk-checkout/internal/core/domain"
	"github.com/rl1809/kiosk-checkout/internal/core/service"
)

// Pinger reports whether a backing dependency is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

type HTTPHandler struct {
	orders *service.OrderService
	menu   *service.MenuService
	admin  *service.AdminService
	pinger Pinger
}

func NewHTTPHandler(orders *service.OrderService, menu *service.MenuService, admin *service.AdminService, pinger Pinger) *HTTPHandler {
	return &HTTPHandler{
		orders: orders,
		menu:   menu,
		admin:  admin,
		pinger: pinger,
	}
}

func (h *HTTPHandler) Root(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"message": "Kiosk Checkout API",
		"version": "1.0.0",
	})
}

func (h *HTTPHandler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	if h.pinger != nil {
		if err := h.pinger.Ping(ctx); err != nil {
			writeJSON(w, http.StatusServiceUnavailable, map[string]string{"status": "unhealthy"})
			return
		}
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *HTTPHandler) ListCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.menu.GetCategories(r.Context())
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, mapCategories(categories))
}

func (h *HTTPHandler) GetMenu(w http.ResponseWriter, r *http.Request) {
	menu, err := h.menu.GetMenu(r.Context())
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, MenuResponse{
		Categories: mapCategories(menu.Categories),
		Items:      mapItems(menu.Items),
	})
}

func (h *HTTPHandler) ListItems(w http.ResponseWriter, r *http.Request) {
	var categoryID int64
	if raw := r.URL.Query().Get("category_id"); raw != "" {
		parsed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			writeError(w, http.StatusBadRequest, "category_id must be an integer")
			return
		}
		categoryID = parsed
	}

	items, err := h.menu.GetItems(r.Context(), categoryID)
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, mapItems(items))
}

func (h *HTTPHandler) GetItem(w http.ResponseWriter, r *http.Request) {
	itemID, err := pathID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "item id must be an integer")
		return
	}

	item, err := h.menu.GetItem(r.Context(), itemID)
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, mapItem(*item))
}

func (h *HTTPHandler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	var req CreateOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON format")
		return
	}
	if err := req.Validate(); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	slog.InfoContext(r.Context(), "order submitted",
		"lines", len(req.Items),
		"declared_total", req.Total,
	)

	ctx, cancel := context.WithTimeout(r.Context(), 30*time.Second)
	defer cancel()

	stored, err := h.orders.CreateOrder(ctx, req.toDomain())
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, mapOrder(stored))
}

func (h *HTTPHandler) GetOrder(w http.ResponseWriter, r *http.Request) {
	orderID, err := pathID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "order id must be an integer")
		return
	}

	stored, err := h.orders.GetOrder(r.Context(), orderID)
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, mapOrder(stored))
}

func (h *HTTPHandler) CreateCategory(w http.ResponseWriter, r *http.Request) {
	var req CategoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON format")
		return
	}

	created, err := h.admin.CreateCategory(r.Context(), toCategory(req))
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, mapCategory(*created))
}

func (h *HTTPHandler) CreateItem(w http.ResponseWriter, r *http.Request) {
	var req ItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON format")
		return
	}

	created, err := h.admin.CreateItem(r.Context(), toItem(req))
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, mapItem(*created))
}

// writeServiceError maps the service error taxonomy onto HTTP statuses:
// rejected input is the client's fault, declined payment is 402, anything
// unexpected is a 500 with the detail kept out of the response.
func (h *HTTPHandler) writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	var (
		itemNotFound  *service.ItemNotFoundError
		totalMismatch *service.TotalMismatchError
		validation    *service.ValidationError
	)

	switch {
	case errors.As(err, &itemNotFound):
		writeError(w, http.StatusBadRequest, itemNotFound.Error())
	case errors.As(err, &totalMismatch):
		writeError(w, http.StatusBadRequest, totalMismatch.Error())
	case errors.As(err, &validation):
		writeError(w, http.StatusBadRequest, validation.Error())
	case errors.Is(err, service.ErrPaymentDenied):
		writeError(w, http.StatusPaymentRequired, "payment processing failed")
	case errors.Is(err, service.ErrOrderNotFound):
		writeError(w, http.StatusNotFound, "order not found")
	case errors.Is(err, service.ErrItemNotFound):
		writeError(w, http.StatusNotFound, "item not found")
	default:
		slog.ErrorContext(r.Context(), "request failed", "error", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
	}
}

func toCategory(req CategoryRequest) domain.Category {
	return domain.Category{Name: req.Name, Image: req.Image}
}

func toItem(req ItemRequest) domain.Item {
	return domain.Item{
		Name:       req.Name,
		Price:      req.Price,
		ImageID:    req.ImageID,
		CategoryID: req.CategoryID,
	}
}

func pathID(r *http.Request) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, detail string) {
	writeJSON(w, status, ErrorResponse{Detail: detail})
}
