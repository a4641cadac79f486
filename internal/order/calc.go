package order

import "math"

// Total computes the monetary total for a set of order lines after
// applying a percentage discount. The discount is clamped to [0,100]
// because the form can pass out-of-range values while a field is
// half-typed. Negative or NaN quantities and unit values are treated
// as zero instead of propagating into the total.
//
// The result is rounded to cents. Called on every field edit, so it
// stays O(len(items)) with no allocation.
func Total(items []Item, discountPercent float64) float64 {
	discount := clampDiscount(discountPercent)

	subtotal := 0.0
	for _, it := range items {
		qty := it.Quantity
		if qty < 0 {
			qty = 0
		}
		unit := it.UnitValue
		if unit < 0 || math.IsNaN(unit) {
			unit = 0
		}
		subtotal += float64(qty) * unit
	}

	total := subtotal * (1 - discount/100)
	return math.Round(total*100) / 100
}

func clampDiscount(d float64) float64 {
	if math.IsNaN(d) || d < 0 {
		return 0
	}
	if d > 100 {
		return 100
	}
	return d
}
