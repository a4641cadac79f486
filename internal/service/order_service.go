package service

import (
	"context"
	"fmt"
	"sort"

	"github.com/guiklos/lcpc-v2/internal/catalog"
	"github.com/guiklos/lcpc-v2/internal/models"
	"github.com/guiklos/lcpc-v2/internal/order"
)

// API is the upstream surface the order service depends on. The
// production implementation is api.Client.
type API interface {
	order.API
	order.Shipper
	ListOrders(ctx context.Context) ([]models.Order, error)
	GetOrder(ctx context.Context, id string) (models.Order, error)
	DeleteOrder(ctx context.Context, id string) error
}

// OrderService handles order business logic for the dashboard: listing
// with name resolution, draft preview, create/update/delete, and the
// ship transition.
type OrderService struct {
	api     API
	catalog *catalog.Snapshot
}

// NewOrderService creates a new order service.
func NewOrderService(api API, cat *catalog.Snapshot) *OrderService {
	return &OrderService{
		api:     api,
		catalog: cat,
	}
}

// OrderView is an order enriched with the display names the table
// shows. Unknown references fall back to the catalog's unknown label.
type OrderView struct {
	models.Order
	ClientName string `json:"clientName"`
	UserName   string `json:"userName"`
}

// Sort keys accepted by ListOrders.
const (
	SortByOrderDate  = "orderDate"
	SortByTotalValue = "totalValue"
)

// ListFilter narrows and orders the in-memory order list.
type ListFilter struct {
	Status   string
	ClientID string
	SortBy   string
}

// ListOrders fetches all orders and applies the dashboard's
// client-side filtering and sorting.
func (s *OrderService) ListOrders(ctx context.Context, f ListFilter) ([]OrderView, error) {
	orders, err := s.api.ListOrders(ctx)
	if err != nil {
		return nil, err
	}

	views := make([]OrderView, 0, len(orders))
	for _, o := range orders {
		if f.Status != "" && o.Status != f.Status {
			continue
		}
		if f.ClientID != "" && o.ClientID != f.ClientID {
			continue
		}
		views = append(views, OrderView{
			Order:      o,
			ClientName: s.catalog.ClientName(o.ClientID),
			UserName:   s.catalog.UserName(o.UserID),
		})
	}

	switch f.SortBy {
	case SortByOrderDate:
		sort.Slice(views, func(i, j int) bool {
			return views[i].OrderDate.Before(views[j].OrderDate)
		})
	case SortByTotalValue:
		sort.Slice(views, func(i, j int) bool {
			return views[i].TotalValue < views[j].TotalValue
		})
	}

	return views, nil
}

// Preview is what the form shows after every field edit: the
// recomputed total plus any field errors the draft would fail on.
type Preview struct {
	TotalValue  float64           `json:"totalValue"`
	FieldErrors order.FieldErrors `json:"fieldErrors,omitempty"`
}

// PreviewDraft recomputes the draft's total and reports its current
// validation state without touching the upstream API.
func (s *OrderService) PreviewDraft(d *order.Draft) Preview {
	d.Recompute()
	return Preview{
		TotalValue:  d.TotalValue,
		FieldErrors: order.Validate(d),
	}
}

// CreateOrder validates the draft and persists it along with one item
// record per line. Field errors block the upstream calls entirely.
func (s *OrderService) CreateOrder(ctx context.Context, d *order.Draft) (models.Order, order.FieldErrors, error) {
	d.OrderID = "" // create always mints a new order upstream
	if errs := order.Validate(d); errs != nil {
		return models.Order{}, errs, nil
	}

	created, err := order.SubmitDraft(ctx, s.api, d)
	if err != nil {
		return models.Order{}, nil, err
	}
	return created, nil, nil
}

// UpdateOrder validates the draft and updates the existing order.
func (s *OrderService) UpdateOrder(ctx context.Context, id string, d *order.Draft) (order.FieldErrors, error) {
	d.OrderID = id
	if errs := order.Validate(d); errs != nil {
		return errs, nil
	}

	if _, err := order.SubmitDraft(ctx, s.api, d); err != nil {
		return nil, err
	}
	return nil, nil
}

// DeleteOrder removes an order upstream.
func (s *OrderService) DeleteOrder(ctx context.Context, id string) error {
	return s.api.DeleteOrder(ctx, id)
}

// ShipOrder marks an awaiting-shipment order as shipped.
func (s *OrderService) ShipOrder(ctx context.Context, id string) (models.Order, error) {
	o, err := s.api.GetOrder(ctx, id)
	if err != nil {
		return models.Order{}, fmt.Errorf("load order: %w", err)
	}
	return order.Ship(ctx, s.api, o)
}
