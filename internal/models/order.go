package models

import "time"

// Order statuses as stored by the upstream API.
const (
	StatusAwaitingShipment = "awaiting shipment"
	StatusShipped          = "shipped"
	StatusCompleted        = "completed"
)

// Order represents a persisted order record
// Field names follow the upstream API schema
type Order struct {
	ID                   string    `json:"id,omitempty"`
	Description          string    `json:"description"`
	OrderDate            time.Time `json:"orderDate"`
	ShippingDate         time.Time `json:"shippingDate"`
	ExpectedDeliveryDate time.Time `json:"expectedDeliveryDate"`
	Discount             float64   `json:"discount"`
	Installments         int       `json:"nInstallments"`
	TotalValue           float64   `json:"totalValue"`
	Status               string    `json:"status"`
	ClientID             string    `json:"fkClientId"`
	UserID               string    `json:"fkUserId,omitempty"`
}

// ItemOrder represents a single order line record
type ItemOrder struct {
	ID        string  `json:"id,omitempty"`
	Quantity  int     `json:"quantity"`
	ItemValue float64 `json:"itemValue"`
	ProductID string  `json:"fkProductId"`
	OrderID   string  `json:"fkOrderId"`
}
