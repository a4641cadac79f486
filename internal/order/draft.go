package order

import (
	"time"

	"github.com/google/uuid"

	"github.com/guiklos/lcpc-v2/internal/models"
)

// Item is a single line in a draft. UnitValue is captured from the
// product catalog at selection time; quantity stays editable afterward.
// ID is the upstream item record id; it stays empty on lines added in
// the form and is what the edit-mode submit diffs against.
type Item struct {
	ID        string  `json:"id,omitempty"`
	ProductID string  `json:"fkProductId"`
	Quantity  int     `json:"quantity"`
	UnitValue float64 `json:"itemValue"`
}

// Draft holds the order being edited in the form. It is owned
// exclusively by the editing form and discarded on cancel or after a
// successful submit. TotalValue is derived; callers must mutate items
// and discount only through the methods below so it never goes stale.
type Draft struct {
	ID                   string    `json:"id"`
	OrderID              string    `json:"orderId,omitempty"`
	Description          string    `json:"description"`
	DiscountPercent      float64   `json:"discount"`
	ShippingDate         time.Time `json:"shippingDate"`
	ExpectedDeliveryDate time.Time `json:"expectedDeliveryDate"`
	Installments         int       `json:"nInstallments"`
	ClientID             string    `json:"fkClientId"`
	UserID               string    `json:"fkUserId,omitempty"`
	Status               string    `json:"status"`
	Items                []Item    `json:"items"`
	TotalValue           float64   `json:"totalValue"`
}

// ProductLookup resolves a product id to its current price.
type ProductLookup interface {
	ProductPrice(id string) (float64, bool)
}

// NewDraft returns a fresh draft with form defaults.
func NewDraft() *Draft {
	d := &Draft{
		ID:           uuid.New().String(),
		Installments: 1,
		Status:       models.StatusAwaitingShipment,
	}
	d.Recompute()
	return d
}

// AddItem appends an empty line: no product selected, quantity 1.
func (d *Draft) AddItem() {
	d.Items = append(d.Items, Item{Quantity: 1})
	d.Recompute()
}

// SetItemProduct selects a product for the line at index and captures
// its current price. An unknown product id leaves the unit value
// unchanged; the miss is not an error.
func (d *Draft) SetItemProduct(index int, productID string, products ProductLookup) {
	d.Items[index].ProductID = productID
	if price, ok := products.ProductPrice(productID); ok {
		d.Items[index].UnitValue = price
	}
	d.Recompute()
}

// SetItemQuantity sets the quantity for the line at index. No clamping
// here; the submit-time validator owns range checks.
func (d *Draft) SetItemQuantity(index, quantity int) {
	d.Items[index].Quantity = quantity
	d.Recompute()
}

// SetItemUnitValue overrides the captured price for the line at index.
func (d *Draft) SetItemUnitValue(index int, value float64) {
	d.Items[index].UnitValue = value
	d.Recompute()
}

// RemoveItem drops the line at index. Index out of range is a caller
// error.
func (d *Draft) RemoveItem(index int) {
	d.Items = append(d.Items[:index], d.Items[index+1:]...)
	d.Recompute()
}

// SetDiscount sets the discount percentage.
func (d *Draft) SetDiscount(percent float64) {
	d.DiscountPercent = percent
	d.Recompute()
}

// Recompute re-derives TotalValue from the current items and discount.
// Every mutating method calls this as its final step.
func (d *Draft) Recompute() {
	d.TotalValue = Total(d.Items, d.DiscountPercent)
}

// Order converts the draft into the upstream order record.
func (d *Draft) Order() models.Order {
	status := d.Status
	if status == "" {
		status = models.StatusAwaitingShipment
	}
	return models.Order{
		ID:                   d.OrderID,
		Description:          d.Description,
		ShippingDate:         d.ShippingDate,
		ExpectedDeliveryDate: d.ExpectedDeliveryDate,
		Discount:             d.DiscountPercent,
		Installments:         d.Installments,
		TotalValue:           d.TotalValue,
		Status:               status,
		ClientID:             d.ClientID,
		UserID:               d.UserID,
	}
}

// FromOrder seeds a draft from an already-persisted order and its
// line items.
func FromOrder(o models.Order, items []models.ItemOrder) *Draft {
	d := &Draft{
		ID:                   uuid.New().String(),
		OrderID:              o.ID,
		Description:          o.Description,
		DiscountPercent:      o.Discount,
		ShippingDate:         o.ShippingDate,
		ExpectedDeliveryDate: o.ExpectedDeliveryDate,
		Installments:         o.Installments,
		ClientID:             o.ClientID,
		UserID:               o.UserID,
		Status:               o.Status,
	}
	for _, it := range items {
		d.Items = append(d.Items, Item{
			ID:        it.ID,
			ProductID: it.ProductID,
			Quantity:  it.Quantity,
			UnitValue: it.ItemValue,
		})
	}
	d.Recompute()
	return d
}
