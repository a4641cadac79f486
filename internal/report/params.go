// Package report holds the parameters and summaries for the three
// dashboard report screens: orders, per-client billing, and top sold
// products.
package report

import (
	"errors"
	"fmt"
	"net/url"
	"time"

	"github.com/guiklos/lcpc-v2/internal/models"
)

var (
	ErrDateRange     = errors.New("end date must not precede start date")
	ErrUnknownStatus = errors.New("unknown order status")
	ErrUnknownType   = errors.New("unknown product type")
)

// Params are the filter criteria shared by the report endpoints.
// Zero dates mean "no bound". Status, ClientID and ProductType each
// apply to one report kind and are empty otherwise.
type Params struct {
	StartDate   time.Time
	EndDate     time.Time
	Status      string
	ClientID    string
	ProductType string
}

// Validate checks the date range and the enum filters.
func (p Params) Validate() error {
	if !p.StartDate.IsZero() && !p.EndDate.IsZero() && p.EndDate.Before(p.StartDate) {
		return ErrDateRange
	}
	if p.Status != "" {
		switch p.Status {
		case models.StatusAwaitingShipment, models.StatusShipped, models.StatusCompleted:
		default:
			return fmt.Errorf("%w: %q", ErrUnknownStatus, p.Status)
		}
	}
	if p.ProductType != "" {
		switch p.ProductType {
		case models.ProductTypeStandard, models.ProductTypePainted, models.ProductTypeNaval:
		default:
			return fmt.Errorf("%w: %q", ErrUnknownType, p.ProductType)
		}
	}
	return nil
}

// Query renders the params as upstream query parameters. Empty values
// are sent as empty strings only when the bound exists upstream, so
// the encoded form mirrors what the dashboard sends.
func (p Params) Query() url.Values {
	q := url.Values{}
	if !p.StartDate.IsZero() {
		q.Set("startDate", p.StartDate.UTC().Format(time.RFC3339))
	}
	if !p.EndDate.IsZero() {
		q.Set("endDate", p.EndDate.UTC().Format(time.RFC3339))
	}
	if p.Status != "" {
		q.Set("status", p.Status)
	}
	if p.ClientID != "" {
		q.Set("clientId", p.ClientID)
	}
	if p.ProductType != "" {
		q.Set("productType", p.ProductType)
	}
	return q
}
