package service

import (
	"context"
	"net/url"

	"github.com/guiklos/lcpc-v2/internal/models"
	"github.com/guiklos/lcpc-v2/internal/report"
)

// ReportsAPI is the upstream slice the report service consumes.
type ReportsAPI interface {
	OrderReport(ctx context.Context, q url.Values) ([]models.OrderReportRow, error)
	BillingReport(ctx context.Context, q url.Values) ([]models.BillingReportRow, error)
	TopSoldProducts(ctx context.Context, q url.Values) ([]models.TopProductRow, error)
}

// ReportService fetches the upstream aggregates and attaches the
// summary lines the dashboard renders under each table.
type ReportService struct {
	api ReportsAPI
}

// NewReportService creates a new report service.
func NewReportService(api ReportsAPI) *ReportService {
	return &ReportService{api: api}
}

// OrdersReport is the orders report plus its grand total.
type OrdersReport struct {
	Rows       []models.OrderReportRow `json:"rows"`
	TotalValue float64                 `json:"totalValue"`
}

// BillingReport is the per-client billing report plus its summary.
type BillingReport struct {
	Rows    []models.BillingReportRow `json:"rows"`
	Summary report.BillingSummary     `json:"summary"`
}

// ProductsReport is the top-sold-products report plus its summary.
type ProductsReport struct {
	Rows    []models.TopProductRow `json:"rows"`
	Summary report.ProductSummary  `json:"summary"`
}

// Orders runs the orders report for the given criteria.
func (s *ReportService) Orders(ctx context.Context, p report.Params) (OrdersReport, error) {
	if err := p.Validate(); err != nil {
		return OrdersReport{}, err
	}
	rows, err := s.api.OrderReport(ctx, p.Query())
	if err != nil {
		return OrdersReport{}, err
	}
	return OrdersReport{Rows: rows, TotalValue: report.OrdersTotal(rows)}, nil
}

// Billing runs the per-client billing report.
func (s *ReportService) Billing(ctx context.Context, p report.Params) (BillingReport, error) {
	if err := p.Validate(); err != nil {
		return BillingReport{}, err
	}
	rows, err := s.api.BillingReport(ctx, p.Query())
	if err != nil {
		return BillingReport{}, err
	}
	return BillingReport{Rows: rows, Summary: report.SummarizeBilling(rows)}, nil
}

// TopProducts runs the top-sold-products report.
func (s *ReportService) TopProducts(ctx context.Context, p report.Params) (ProductsReport, error) {
	if err := p.Validate(); err != nil {
		return ProductsReport{}, err
	}
	rows, err := s.api.TopSoldProducts(ctx, p.Query())
	if err != nil {
		return ProductsReport{}, err
	}
	return ProductsReport{Rows: rows, Summary: report.SummarizeProducts(rows)}, nil
}
