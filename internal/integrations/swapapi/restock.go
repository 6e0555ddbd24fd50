package swapapi

import (
	"context"
	"net/http"

	"github.com/m04kA/SMC-SwapPortal/internal/domain"
)

// ListBatteryRequests заявки админа станциям (admin -> staff)
func (c *Client) ListBatteryRequests(ctx context.Context) ([]domain.BatteryRequest, error) {
	var resp []batteryRequestResponse
	if err := c.call(ctx, "ListBatteryRequests", http.MethodGet, "/api/v1/battery-requests", nil, nil, &resp); err != nil {
		return nil, err
	}
	rows := make([]domain.BatteryRequest, 0, len(resp))
	for _, r := range resp {
		rows = append(rows, r.toBatteryRequest())
	}
	return rows, nil
}

// CreateBatteryRequest одна строка заявки admin -> staff
func (c *Client) CreateBatteryRequest(ctx context.Context, req RestockLineRequest) (*domain.BatteryRequest, error) {
	var resp batteryRequestResponse
	if err := c.call(ctx, "CreateBatteryRequest", http.MethodPost, "/api/v1/battery-requests", nil, req, &resp); err != nil {
		return nil, err
	}
	row := resp.toBatteryRequest()
	return &row, nil
}

// ListStockRequests заявки станций админу (staff -> admin)
func (c *Client) ListStockRequests(ctx context.Context) ([]domain.StockRequest, error) {
	var resp []batteryRequestResponse
	if err := c.call(ctx, "ListStockRequests", http.MethodGet, "/api/v1/stock-requests", nil, nil, &resp); err != nil {
		return nil, err
	}
	rows := make([]domain.StockRequest, 0, len(resp))
	for _, r := range resp {
		rows = append(rows, r.toStockRequest())
	}
	return rows, nil
}

// CreateStockRequest одна строка заявки staff -> admin
func (c *Client) CreateStockRequest(ctx context.Context, req RestockLineRequest) (*domain.StockRequest, error) {
	var resp batteryRequestResponse
	if err := c.call(ctx, "CreateStockRequest", http.MethodPost, "/api/v1/stock-requests", nil, req, &resp); err != nil {
		return nil, err
	}
	row := resp.toStockRequest()
	return &row, nil
}
