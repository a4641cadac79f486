// Package api is the HTTP client for the upstream order-management
// API. One method per endpoint the dashboard consumes; each failure is
// wrapped in a per-category sentinel so callers can surface the
// matching banner message without inspecting transport details.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/guiklos/lcpc-v2/internal/models"
)

// Error categories, one per dashboard banner. No structured codes are
// retained beyond these.
var (
	ErrLoadClients    = errors.New("failed to load clients")
	ErrLoadCities     = errors.New("failed to load cities")
	ErrLoadProducts   = errors.New("failed to load products")
	ErrLoadUsers      = errors.New("failed to load users")
	ErrLoadOrders     = errors.New("failed to load orders")
	ErrLoadOrderItems = errors.New("failed to load order items")
	ErrSaveOrder      = errors.New("failed to save order")
	ErrDeleteOrder    = errors.New("failed to delete order")
	ErrLoadReport     = errors.New("failed to generate report")
)

// Client calls the upstream API with a bearer token. No retries and no
// backoff; a failed call is reported once and the user retries
// manually.
type Client struct {
	baseURL string
	token   string
	http    *http.Client
}

// New creates a client for the given base URL. The token is attached
// to every request as an Authorization bearer header.
func New(baseURL, token string, timeout time.Duration) *Client {
	return &Client{
		baseURL: baseURL,
		token:   token,
		http:    &http.Client{Timeout: timeout},
	}
}

func (c *Client) ListClients(ctx context.Context) ([]models.Client, error) {
	var out []models.Client
	if err := c.get(ctx, "/Client", nil, &out, ErrLoadClients); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) ListCities(ctx context.Context) ([]models.City, error) {
	var out []models.City
	if err := c.get(ctx, "/City", nil, &out, ErrLoadCities); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) ListProducts(ctx context.Context) ([]models.Product, error) {
	var out []models.Product
	if err := c.get(ctx, "/Product", nil, &out, ErrLoadProducts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) ListUsers(ctx context.Context) ([]models.User, error) {
	var out []models.User
	if err := c.get(ctx, "/User", nil, &out, ErrLoadUsers); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) ListOrders(ctx context.Context) ([]models.Order, error) {
	var out []models.Order
	if err := c.get(ctx, "/Order", nil, &out, ErrLoadOrders); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) GetOrder(ctx context.Context, id string) (models.Order, error) {
	var out models.Order
	if err := c.get(ctx, "/Order/"+url.PathEscape(id), nil, &out, ErrLoadOrders); err != nil {
		return models.Order{}, err
	}
	return out, nil
}

func (c *Client) ListOrderItems(ctx context.Context) ([]models.ItemOrder, error) {
	var out []models.ItemOrder
	if err := c.get(ctx, "/ItemOrder", nil, &out, ErrLoadOrderItems); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) CreateOrder(ctx context.Context, o models.Order) (models.Order, error) {
	var out models.Order
	if err := c.send(ctx, http.MethodPost, "/Order", o, &out, ErrSaveOrder); err != nil {
		return models.Order{}, err
	}
	return out, nil
}

func (c *Client) UpdateOrder(ctx context.Context, id string, o models.Order) error {
	return c.send(ctx, http.MethodPut, "/Order/"+url.PathEscape(id), o, nil, ErrSaveOrder)
}

func (c *Client) DeleteOrder(ctx context.Context, id string) error {
	return c.send(ctx, http.MethodDelete, "/Order/"+url.PathEscape(id), nil, nil, ErrDeleteOrder)
}

func (c *Client) CreateOrderItem(ctx context.Context, item models.ItemOrder) error {
	return c.send(ctx, http.MethodPost, "/ItemOrder", item, nil, ErrSaveOrder)
}

func (c *Client) UpdateOrderItem(ctx context.Context, id string, item models.ItemOrder) error {
	return c.send(ctx, http.MethodPut, "/ItemOrder/"+url.PathEscape(id), item, nil, ErrSaveOrder)
}

func (c *Client) DeleteOrderItem(ctx context.Context, id string) error {
	return c.send(ctx, http.MethodDelete, "/ItemOrder/"+url.PathEscape(id), nil, nil, ErrDeleteOrder)
}

// UpdateOrderShipping advances an order to the given status and stamps
// its shipping date.
func (c *Client) UpdateOrderShipping(ctx context.Context, id string, shippedAt time.Time, status string) error {
	body := struct {
		ShippingDate time.Time `json:"shippingDate"`
		Status       string    `json:"status"`
	}{ShippingDate: shippedAt, Status: status}
	return c.send(ctx, http.MethodPut, "/Order/"+url.PathEscape(id)+"/shipping", body, nil, ErrSaveOrder)
}

func (c *Client) OrderReport(ctx context.Context, q url.Values) ([]models.OrderReportRow, error) {
	var out []models.OrderReportRow
	if err := c.get(ctx, "/Order/report", q, &out, ErrLoadReport); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) BillingReport(ctx context.Context, q url.Values) ([]models.BillingReportRow, error) {
	var out []models.BillingReportRow
	if err := c.get(ctx, "/Order/billing-report", q, &out, ErrLoadReport); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) TopSoldProducts(ctx context.Context, q url.Values) ([]models.TopProductRow, error) {
	var out []models.TopProductRow
	if err := c.get(ctx, "/Order/top-sold-products", q, &out, ErrLoadReport); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) get(ctx context.Context, path string, query url.Values, out interface{}, category error) error {
	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("%w: create request: %v", category, err)
	}

	return c.do(req, out, category)
}

func (c *Client) send(ctx context.Context, method, path string, body, out interface{}, category error) error {
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			return fmt.Errorf("%w: encode request: %v", category, err)
		}
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, &buf)
	if err != nil {
		return fmt.Errorf("%w: create request: %v", category, err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	return c.do(req, out, category)
}

func (c *Client) do(req *http.Request, out interface{}, category error) error {
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", category, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("%w: unexpected status %d", category, resp.StatusCode)
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("%w: decode response: %v", category, err)
		}
	}
	return nil
}
