package report

import (
	"math"

	"github.com/guiklos/lcpc-v2/internal/models"
)

// BillingSummary is the grand-total line shown under the billing
// report table.
type BillingSummary struct {
	TotalOrders       int     `json:"totalOrders"`
	TotalOrderValue   float64 `json:"totalOrderValue"`
	AverageOrderValue float64 `json:"averageOrderValue"`
}

// SummarizeBilling folds the per-client rows into one summary line.
func SummarizeBilling(rows []models.BillingReportRow) BillingSummary {
	var s BillingSummary
	for _, r := range rows {
		s.TotalOrders += r.TotalOrders
		s.TotalOrderValue += r.TotalOrderValue
	}
	if s.TotalOrders > 0 {
		s.AverageOrderValue = round2(s.TotalOrderValue / float64(s.TotalOrders))
	}
	s.TotalOrderValue = round2(s.TotalOrderValue)
	return s
}

// ProductSummary is the grand-total line for the top-products report.
type ProductSummary struct {
	QuantitySold    int     `json:"quantitySold"`
	TotalSalesValue float64 `json:"totalSalesValue"`
}

// SummarizeProducts folds the per-product rows into one summary line.
func SummarizeProducts(rows []models.TopProductRow) ProductSummary {
	var s ProductSummary
	for _, r := range rows {
		s.QuantitySold += r.QuantitySold
		s.TotalSalesValue += r.TotalSalesValue
	}
	s.TotalSalesValue = round2(s.TotalSalesValue)
	return s
}

// OrdersTotal sums the order report rows.
func OrdersTotal(rows []models.OrderReportRow) float64 {
	total := 0.0
	for _, r := range rows {
		total += r.TotalValue
	}
	return round2(total)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
