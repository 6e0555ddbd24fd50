package swapapi

import (
	"context"
	"net/http"
	"net/url"

	"github.com/m04kA/SMC-SwapPortal/internal/domain"
)

// ListComplaints жалобы текущего водителя
func (c *Client) ListComplaints(ctx context.Context) ([]domain.Complaint, error) {
	var resp []complaintResponse
	if err := c.call(ctx, "ListComplaints", http.MethodGet, "/api/driver/complaints", nil, nil, &resp); err != nil {
		return nil, err
	}
	complaints := make([]domain.Complaint, 0, len(resp))
	for _, item := range resp {
		complaints = append(complaints, item.toDomain())
	}
	return complaints, nil
}

// GetComplaint жалоба по id
func (c *Client) GetComplaint(ctx context.Context, id string) (*domain.Complaint, error) {
	var resp complaintResponse
	if err := c.call(ctx, "GetComplaint", http.MethodGet, complaintPath(id), nil, nil, &resp); err != nil {
		return nil, err
	}
	complaint := resp.toDomain()
	return &complaint, nil
}

// CreateComplaint создание жалобы
func (c *Client) CreateComplaint(ctx context.Context, req ComplaintRequest) (*domain.Complaint, error) {
	var resp complaintResponse
	if err := c.call(ctx, "CreateComplaint", http.MethodPost, "/api/driver/complaints", nil, req, &resp); err != nil {
		return nil, err
	}
	complaint := resp.toDomain()
	return &complaint, nil
}

// ScheduleInspection запись на осмотр батареи по жалобе
func (c *Client) ScheduleInspection(ctx context.Context, complaintID string, req InspectionRequest) error {
	return c.call(ctx, "ScheduleInspection", http.MethodPost, complaintPath(complaintID)+"/schedule-inspection", nil, req, nil)
}

func complaintPath(id string) string {
	return "/api/driver/complaints/" + url.PathEscape(id)
}
