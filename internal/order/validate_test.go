package order

import (
	"testing"
	"time"
)

func validDraft() *Draft {
	d := NewDraft()
	d.Description = "Test"
	d.ClientID = "C1"
	d.ShippingDate = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	d.ExpectedDeliveryDate = time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC)
	d.Installments = 3
	return d
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name       string
		mutate     func(d *Draft)
		wantFields []string
	}{
		{
			name:       "valid draft",
			mutate:     func(d *Draft) {},
			wantFields: nil,
		},
		{
			name:       "missing description",
			mutate:     func(d *Draft) { d.Description = "" },
			wantFields: []string{"description"},
		},
		{
			name:       "whitespace description",
			mutate:     func(d *Draft) { d.Description = "   " },
			wantFields: []string{"description"},
		},
		{
			name:       "missing client",
			mutate:     func(d *Draft) { d.ClientID = "" },
			wantFields: []string{"fkClientId"},
		},
		{
			name: "missing description and client",
			mutate: func(d *Draft) {
				d.Description = ""
				d.ClientID = ""
			},
			wantFields: []string{"description", "fkClientId"},
		},
		{
			name:       "missing shipping date",
			mutate:     func(d *Draft) { d.ShippingDate = time.Time{} },
			wantFields: []string{"shippingDate"},
		},
		{
			name:       "missing expected delivery date",
			mutate:     func(d *Draft) { d.ExpectedDeliveryDate = time.Time{} },
			wantFields: []string{"expectedDeliveryDate"},
		},
		{
			name: "delivery before shipping",
			mutate: func(d *Draft) {
				d.ExpectedDeliveryDate = d.ShippingDate.AddDate(0, 0, -1)
			},
			wantFields: []string{"expectedDeliveryDate"},
		},
		{
			name: "delivery equals shipping is valid",
			mutate: func(d *Draft) {
				d.ExpectedDeliveryDate = d.ShippingDate
			},
			wantFields: nil,
		},
		{
			name:       "installments below range",
			mutate:     func(d *Draft) { d.Installments = 0 },
			wantFields: []string{"nInstallments"},
		},
		{
			name:       "installments above range",
			mutate:     func(d *Draft) { d.Installments = 37 },
			wantFields: []string{"nInstallments"},
		},
		{
			name:       "installments at upper bound",
			mutate:     func(d *Draft) { d.Installments = 36 },
			wantFields: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := validDraft()
			tt.mutate(d)

			errs := Validate(d)

			if len(errs) != len(tt.wantFields) {
				t.Fatalf("Validate() returned %d errors (%v), want %d", len(errs), errs, len(tt.wantFields))
			}
			for _, field := range tt.wantFields {
				if _, ok := errs[field]; !ok {
					t.Errorf("Validate() missing error for field %q, got %v", field, errs)
				}
			}
		})
	}
}

func TestValidate_Idempotent(t *testing.T) {
	d := validDraft()
	d.Description = ""
	d.Installments = 0

	first := Validate(d)
	second := Validate(d)

	if len(first) != len(second) {
		t.Fatalf("error counts differ: %d vs %d", len(first), len(second))
	}
	for field, msg := range first {
		if second[field] != msg {
			t.Errorf("field %q: first %q, second %q", field, msg, second[field])
		}
	}
}

func TestValidate_DoesNotMutateDraft(t *testing.T) {
	d := validDraft()
	d.AddItem()
	before := *d

	Validate(d)

	if d.Description != before.Description || d.TotalValue != before.TotalValue ||
		d.Installments != before.Installments || len(d.Items) != len(before.Items) {
		t.Error("Validate() mutated the draft")
	}
}
