package order

import (
	"context"
	"errors"
	"time"

	"github.com/guiklos/lcpc-v2/internal/models"
)

var ErrNotAwaitingShipment = errors.New("order is not awaiting shipment")

// Shipper is the upstream operation used to mark an order shipped.
type Shipper interface {
	UpdateOrderShipping(ctx context.Context, id string, shippedAt time.Time, status string) error
}

// Ship marks an order awaiting shipment as shipped, stamping the
// shipping date with the current time. This is the only domain
// transition applied outside the editor form.
func Ship(ctx context.Context, api Shipper, o models.Order) (models.Order, error) {
	if o.Status != models.StatusAwaitingShipment {
		return models.Order{}, ErrNotAwaitingShipment
	}

	now := time.Now()
	if err := api.UpdateOrderShipping(ctx, o.ID, now, models.StatusShipped); err != nil {
		return models.Order{}, err
	}

	o.ShippingDate = now
	o.Status = models.StatusShipped
	return o, nil
}
