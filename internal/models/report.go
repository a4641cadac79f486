package models

import "time"

// OrderReportRow is one row of the orders report aggregate
type OrderReportRow struct {
	OrderID    string    `json:"orderId"`
	ClientName string    `json:"clientName"`
	OrderDate  time.Time `json:"orderDate"`
	Status     string    `json:"status"`
	TotalValue float64   `json:"totalValue"`
	Products   []string  `json:"products"`
}

// BillingReportRow is one row of the per-client billing aggregate
type BillingReportRow struct {
	ClientName        string  `json:"clientName"`
	TotalOrders       int     `json:"totalOrders"`
	TotalOrderValue   float64 `json:"totalOrderValue"`
	AverageOrderValue float64 `json:"averageOrderValue"`
}

// TopProductRow is one row of the top-sold-products aggregate
type TopProductRow struct {
	ProductName       string  `json:"productName"`
	ProductType       string  `json:"productType"`
	QuantitySold      int     `json:"quantitySold"`
	TotalSalesValue   float64 `json:"totalSalesValue"`
	AverageSalesValue float64 `json:"averageSalesValue"`
}
