package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/guiklos/lcpc-v2/internal/order"
	"github.com/guiklos/lcpc-v2/internal/service"
)

// OrderHandler handles order-related HTTP requests
type OrderHandler struct {
	orders *service.OrderService
	log    *slog.Logger
}

// NewOrderHandler creates a new order handler
func NewOrderHandler(orders *service.OrderService, log *slog.Logger) *OrderHandler {
	return &OrderHandler{
		orders: orders,
		log:    log,
	}
}

// ListOrders handles GET /api/orders
// Optional query params: status, client, sort (orderDate|totalValue)
func (h *OrderHandler) ListOrders(w http.ResponseWriter, r *http.Request) {
	filter := service.ListFilter{
		Status:   r.URL.Query().Get("status"),
		ClientID: r.URL.Query().Get("client"),
		SortBy:   r.URL.Query().Get("sort"),
	}

	views, err := h.orders.ListOrders(r.Context(), filter)
	if err != nil {
		h.log.Error("failed to list orders", "error", err)
		writeError(w, http.StatusBadGateway, "Failed to load orders")
		return
	}

	writeJSON(w, http.StatusOK, views)
}

// PreviewOrder handles POST /api/orders/preview
// The form posts the draft after every edit and renders the returned
// total and field errors.
func (h *OrderHandler) PreviewOrder(w http.ResponseWriter, r *http.Request) {
	var draft order.Draft
	if err := json.NewDecoder(r.Body).Decode(&draft); err != nil {
		h.log.Warn("failed to decode draft", "error", err)
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	preview := h.orders.PreviewDraft(&draft)
	writeJSON(w, http.StatusOK, preview)
}

// CreateOrder handles POST /api/orders
func (h *OrderHandler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	var draft order.Draft
	if err := json.NewDecoder(r.Body).Decode(&draft); err != nil {
		h.log.Warn("failed to decode draft", "error", err)
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	created, fieldErrs, err := h.orders.CreateOrder(r.Context(), &draft)
	if err != nil {
		h.log.Error("failed to create order", "error", err)
		writeError(w, http.StatusBadGateway, "Failed to save order")
		return
	}
	if fieldErrs != nil {
		writeFieldErrors(w, fieldErrs)
		return
	}

	h.log.Info("order created", "order_id", created.ID, "total", created.TotalValue)
	writeJSON(w, http.StatusCreated, created)
}

// UpdateOrder handles PUT /api/orders/{orderId}
func (h *OrderHandler) UpdateOrder(w http.ResponseWriter, r *http.Request) {
	orderID := chi.URLParam(r, "orderId")
	if orderID == "" {
		writeError(w, http.StatusBadRequest, "Invalid ID supplied")
		return
	}

	var draft order.Draft
	if err := json.NewDecoder(r.Body).Decode(&draft); err != nil {
		h.log.Warn("failed to decode draft", "error", err)
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	fieldErrs, err := h.orders.UpdateOrder(r.Context(), orderID, &draft)
	if err != nil {
		h.log.Error("failed to update order", "order_id", orderID, "error", err)
		writeError(w, http.StatusBadGateway, "Failed to save order")
		return
	}
	if fieldErrs != nil {
		writeFieldErrors(w, fieldErrs)
		return
	}

	h.log.Info("order updated", "order_id", orderID)
	w.WriteHeader(http.StatusNoContent)
}

// DeleteOrder handles DELETE /api/orders/{orderId}
func (h *OrderHandler) DeleteOrder(w http.ResponseWriter, r *http.Request) {
	orderID := chi.URLParam(r, "orderId")
	if orderID == "" {
		writeError(w, http.StatusBadRequest, "Invalid ID supplied")
		return
	}

	if err := h.orders.DeleteOrder(r.Context(), orderID); err != nil {
		h.log.Error("failed to delete order", "order_id", orderID, "error", err)
		writeError(w, http.StatusBadGateway, "Failed to delete order")
		return
	}

	h.log.Info("order deleted", "order_id", orderID)
	w.WriteHeader(http.StatusNoContent)
}

// ShipOrder handles POST /api/orders/{orderId}/ship
// Only orders awaiting shipment can be shipped.
func (h *OrderHandler) ShipOrder(w http.ResponseWriter, r *http.Request) {
	orderID := chi.URLParam(r, "orderId")
	if orderID == "" {
		writeError(w, http.StatusBadRequest, "Invalid ID supplied")
		return
	}

	shipped, err := h.orders.ShipOrder(r.Context(), orderID)
	if err != nil {
		if errors.Is(err, order.ErrNotAwaitingShipment) {
			writeError(w, http.StatusConflict, "Order is not awaiting shipment")
			return
		}
		h.log.Error("failed to ship order", "order_id", orderID, "error", err)
		writeError(w, http.StatusBadGateway, "Failed to save order")
		return
	}

	h.log.Info("order shipped", "order_id", orderID)
	writeJSON(w, http.StatusOK, shipped)
}
