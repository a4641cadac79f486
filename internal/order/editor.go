package order

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/guiklos/lcpc-v2/internal/models"
)

var (
	ErrNoDraft    = errors.New("no draft is open")
	ErrDraftOpen  = errors.New("a draft is already open")
	ErrValidation = errors.New("draft failed validation")
)

// API is the slice of the upstream persistence surface the editor
// needs to open and submit drafts.
type API interface {
	ListOrderItems(ctx context.Context) ([]models.ItemOrder, error)
	CreateOrder(ctx context.Context, o models.Order) (models.Order, error)
	UpdateOrder(ctx context.Context, id string, o models.Order) error
	CreateOrderItem(ctx context.Context, item models.ItemOrder) error
	UpdateOrderItem(ctx context.Context, id string, item models.ItemOrder) error
	DeleteOrderItem(ctx context.Context, id string) error
}

// State is the editor lifecycle state.
type State int

const (
	StateClosed State = iota
	StateCreating
	StateEditing
)

func (s State) String() string {
	switch s {
	case StateCreating:
		return "creating"
	case StateEditing:
		return "editing"
	default:
		return "closed"
	}
}

// NoticeDuration is how long a success notification stays visible.
const NoticeDuration = 3 * time.Second

// Notice is a transient UI message emitted after a successful submit.
type Notice struct {
	Message  string
	Duration time.Duration
}

// Editor drives the order form lifecycle: closed, creating a new
// draft, or editing an existing order. The draft it owns is only
// touched from the form's event handlers, so no locking is needed even
// while a submit is in flight.
type Editor struct {
	api      API
	products ProductLookup
	notify   func(Notice)

	state State
	draft *Draft
}

// NewEditor wires an editor to the persistence API and product
// catalog. notify may be nil if the caller does not surface
// notifications.
func NewEditor(api API, products ProductLookup, notify func(Notice)) *Editor {
	return &Editor{api: api, products: products, notify: notify}
}

func (e *Editor) State() State { return e.state }

// Draft returns the draft being edited, or nil when closed.
func (e *Editor) Draft() *Draft { return e.draft }

// OpenCreate starts a fresh draft with form defaults.
func (e *Editor) OpenCreate() (*Draft, error) {
	if e.state != StateClosed {
		return nil, ErrDraftOpen
	}
	e.draft = NewDraft()
	e.state = StateCreating
	return e.draft, nil
}

// OpenEdit seeds a draft from an existing order, loading its line
// items from the upstream API and keeping only the ones that belong to
// the order.
func (e *Editor) OpenEdit(ctx context.Context, o models.Order) (*Draft, error) {
	if e.state != StateClosed {
		return nil, ErrDraftOpen
	}

	all, err := e.api.ListOrderItems(ctx)
	if err != nil {
		return nil, fmt.Errorf("load order items: %w", err)
	}
	var items []models.ItemOrder
	for _, it := range all {
		if it.OrderID == o.ID {
			items = append(items, it)
		}
	}

	e.draft = FromOrder(o, items)
	e.state = StateEditing
	return e.draft, nil
}

// Cancel discards the draft without touching the upstream API.
func (e *Editor) Cancel() {
	e.draft = nil
	e.state = StateClosed
}

// Submit validates the draft and forwards it to the upstream API. On
// validation failure the field errors are returned and the form stays
// open. On a network failure the draft is left untouched so the user
// can simply submit again. On success the editor closes and a notice
// is emitted.
func (e *Editor) Submit(ctx context.Context) (FieldErrors, error) {
	if e.state == StateClosed || e.draft == nil {
		return nil, ErrNoDraft
	}

	if errs := Validate(e.draft); errs != nil {
		return errs, nil
	}

	if _, err := SubmitDraft(ctx, e.api, e.draft); err != nil {
		return nil, err
	}

	e.draft = nil
	e.state = StateClosed
	if e.notify != nil {
		e.notify(Notice{Message: "order saved", Duration: NoticeDuration})
	}
	return nil, nil
}

// SubmitDraft persists a validated draft: a draft without an order id
// is created along with one item record per line; a draft seeded from
// an existing order is updated in place and its item records are
// synced against the draft's lines. The caller is responsible for
// running Validate first.
func SubmitDraft(ctx context.Context, api API, d *Draft) (models.Order, error) {
	d.Recompute()
	rec := d.Order()

	if d.OrderID != "" {
		if err := api.UpdateOrder(ctx, d.OrderID, rec); err != nil {
			return models.Order{}, fmt.Errorf("update order: %w", err)
		}
		if err := syncItems(ctx, api, d); err != nil {
			return models.Order{}, err
		}
		return rec, nil
	}

	rec.OrderDate = time.Now()
	created, err := api.CreateOrder(ctx, rec)
	if err != nil {
		return models.Order{}, fmt.Errorf("create order: %w", err)
	}

	for _, it := range d.Items {
		rec := models.ItemOrder{
			Quantity:  it.Quantity,
			ItemValue: it.UnitValue,
			ProductID: it.ProductID,
			OrderID:   created.ID,
		}
		if err := api.CreateOrderItem(ctx, rec); err != nil {
			return models.Order{}, fmt.Errorf("create order item: %w", err)
		}
	}

	return created, nil
}

// syncItems reconciles the order's persisted item records with the
// draft's lines: lines carrying a record id are updated, lines without
// one are created, and records no longer present in the draft are
// deleted. The persisted totalValue always equals the sum of the
// persisted item records afterward.
func syncItems(ctx context.Context, api API, d *Draft) error {
	all, err := api.ListOrderItems(ctx)
	if err != nil {
		return fmt.Errorf("load order items: %w", err)
	}
	existing := make(map[string]models.ItemOrder)
	for _, it := range all {
		if it.OrderID == d.OrderID {
			existing[it.ID] = it
		}
	}

	for _, it := range d.Items {
		rec := models.ItemOrder{
			ID:        it.ID,
			Quantity:  it.Quantity,
			ItemValue: it.UnitValue,
			ProductID: it.ProductID,
			OrderID:   d.OrderID,
		}
		if _, ok := existing[it.ID]; it.ID != "" && ok {
			delete(existing, it.ID)
			if err := api.UpdateOrderItem(ctx, it.ID, rec); err != nil {
				return fmt.Errorf("update order item: %w", err)
			}
			continue
		}
		rec.ID = ""
		if err := api.CreateOrderItem(ctx, rec); err != nil {
			return fmt.Errorf("create order item: %w", err)
		}
	}

	for id := range existing {
		if err := api.DeleteOrderItem(ctx, id); err != nil {
			return fmt.Errorf("delete order item: %w", err)
		}
	}
	return nil
}
