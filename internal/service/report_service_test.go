package service

import (
	"context"
	"errors"
	"net/url"
	"testing"
	"time"

	"github.com/guiklos/lcpc-v2/internal/models"
	"github.com/guiklos/lcpc-v2/internal/report"
)

type fakeReports struct {
	orderRows   []models.OrderReportRow
	billingRows []models.BillingReportRow
	productRows []models.TopProductRow
	lastQuery   url.Values
	err         error
}

func (f *fakeReports) OrderReport(ctx context.Context, q url.Values) ([]models.OrderReportRow, error) {
	f.lastQuery = q
	return f.orderRows, f.err
}

func (f *fakeReports) BillingReport(ctx context.Context, q url.Values) ([]models.BillingReportRow, error) {
	f.lastQuery = q
	return f.billingRows, f.err
}

func (f *fakeReports) TopSoldProducts(ctx context.Context, q url.Values) ([]models.TopProductRow, error) {
	f.lastQuery = q
	return f.productRows, f.err
}

func TestReportService_Orders(t *testing.T) {
	fake := &fakeReports{
		orderRows: []models.OrderReportRow{
			{ClientName: "Aurora SA", TotalValue: 100},
			{ClientName: "Zenith Ltda", TotalValue: 50.5},
		},
	}
	svc := NewReportService(fake)

	p := report.Params{
		StartDate: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		Status:    models.StatusShipped,
	}
	got, err := svc.Orders(context.Background(), p)
	if err != nil {
		t.Fatalf("Orders() error = %v", err)
	}

	if got.TotalValue != 150.5 {
		t.Errorf("TotalValue = %v, want 150.5", got.TotalValue)
	}
	if fake.lastQuery.Get("status") != models.StatusShipped {
		t.Errorf("status not forwarded upstream: %v", fake.lastQuery)
	}
}

func TestReportService_Orders_InvalidParams(t *testing.T) {
	fake := &fakeReports{}
	svc := NewReportService(fake)

	p := report.Params{
		StartDate: time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
	}
	if _, err := svc.Orders(context.Background(), p); !errors.Is(err, report.ErrDateRange) {
		t.Errorf("Orders() error = %v, want ErrDateRange", err)
	}
	if fake.lastQuery != nil {
		t.Error("invalid params must not reach the upstream API")
	}
}

func TestReportService_Billing(t *testing.T) {
	fake := &fakeReports{
		billingRows: []models.BillingReportRow{
			{ClientName: "Aurora SA", TotalOrders: 2, TotalOrderValue: 100},
			{ClientName: "Zenith Ltda", TotalOrders: 2, TotalOrderValue: 60},
		},
	}
	svc := NewReportService(fake)

	got, err := svc.Billing(context.Background(), report.Params{ClientID: "C1"})
	if err != nil {
		t.Fatalf("Billing() error = %v", err)
	}

	if got.Summary.TotalOrders != 4 {
		t.Errorf("summary total orders = %d, want 4", got.Summary.TotalOrders)
	}
	if got.Summary.AverageOrderValue != 40 {
		t.Errorf("summary average = %v, want 40", got.Summary.AverageOrderValue)
	}
	if fake.lastQuery.Get("clientId") != "C1" {
		t.Errorf("clientId not forwarded: %v", fake.lastQuery)
	}
}

func TestReportService_TopProducts(t *testing.T) {
	fake := &fakeReports{
		productRows: []models.TopProductRow{
			{ProductName: "Standard sheet", QuantitySold: 7, TotalSalesValue: 350},
		},
	}
	svc := NewReportService(fake)

	got, err := svc.TopProducts(context.Background(), report.Params{ProductType: models.ProductTypeStandard})
	if err != nil {
		t.Fatalf("TopProducts() error = %v", err)
	}
	if got.Summary.QuantitySold != 7 {
		t.Errorf("summary quantity = %d, want 7", got.Summary.QuantitySold)
	}
}

func TestReportService_UpstreamFailure(t *testing.T) {
	fake := &fakeReports{err: errors.New("upstream down")}
	svc := NewReportService(fake)

	if _, err := svc.Billing(context.Background(), report.Params{}); err == nil {
		t.Fatal("expected error from upstream failure")
	}
}
