package order

import "strings"

// Installment bounds accepted by the business.
const (
	MinInstallments = 1
	MaxInstallments = 36
)

// FieldErrors maps a form field name to a human-readable message.
// A nil map means the draft is valid.
type FieldErrors map[string]string

// Validate checks a draft immediately before submission. All rules are
// evaluated independently so the form can surface every failing field
// at once. Pure; calling it twice on the same draft yields the same
// result.
func Validate(d *Draft) FieldErrors {
	errs := FieldErrors{}

	if strings.TrimSpace(d.Description) == "" {
		errs["description"] = "description is required"
	}
	if d.ClientID == "" {
		errs["fkClientId"] = "client is required"
	}
	if d.ShippingDate.IsZero() {
		errs["shippingDate"] = "shipping date is required"
	}
	if d.ExpectedDeliveryDate.IsZero() {
		errs["expectedDeliveryDate"] = "expected delivery date is required"
	} else if !d.ShippingDate.IsZero() && d.ExpectedDeliveryDate.Before(d.ShippingDate) {
		errs["expectedDeliveryDate"] = "expected delivery date must not precede shipping date"
	}
	if d.Installments < MinInstallments || d.Installments > MaxInstallments {
		errs["nInstallments"] = "installments must be between 1 and 36"
	}

	if len(errs) == 0 {
		return nil
	}
	return errs
}
