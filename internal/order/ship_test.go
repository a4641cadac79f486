package order

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/guiklos/lcpc-v2/internal/models"
)

type fakeShipper struct {
	id        string
	shippedAt time.Time
	status    string
	err       error
}

func (f *fakeShipper) UpdateOrderShipping(ctx context.Context, id string, shippedAt time.Time, status string) error {
	if f.err != nil {
		return f.err
	}
	f.id = id
	f.shippedAt = shippedAt
	f.status = status
	return nil
}

func TestShip(t *testing.T) {
	api := &fakeShipper{}
	o := models.Order{ID: "42", Status: models.StatusAwaitingShipment}

	shipped, err := Ship(context.Background(), api, o)
	if err != nil {
		t.Fatalf("Ship() error = %v", err)
	}

	if api.id != "42" {
		t.Errorf("expected upstream call for order 42, got %q", api.id)
	}
	if api.status != models.StatusShipped {
		t.Errorf("expected status %q, got %q", models.StatusShipped, api.status)
	}
	if api.shippedAt.IsZero() {
		t.Error("expected shipping date to be stamped")
	}
	if shipped.Status != models.StatusShipped {
		t.Errorf("expected returned order shipped, got %q", shipped.Status)
	}
	if shipped.ShippingDate.IsZero() {
		t.Error("expected returned order to carry the shipping date")
	}
}

func TestShip_WrongStatus(t *testing.T) {
	for _, status := range []string{models.StatusShipped, models.StatusCompleted, ""} {
		o := models.Order{ID: "42", Status: status}
		if _, err := Ship(context.Background(), &fakeShipper{}, o); !errors.Is(err, ErrNotAwaitingShipment) {
			t.Errorf("status %q: Ship() error = %v, want ErrNotAwaitingShipment", status, err)
		}
	}
}

func TestShip_UpstreamFailure(t *testing.T) {
	api := &fakeShipper{err: errors.New("upstream down")}
	o := models.Order{ID: "42", Status: models.StatusAwaitingShipment}

	if _, err := Ship(context.Background(), api, o); err == nil {
		t.Fatal("expected error from upstream failure")
	}
}
