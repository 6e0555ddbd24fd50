package complaints

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/SMC-SwapPortal/internal/integrations/swapapi"
)

// UseCase жалобы водителя
type UseCase struct {
	client ComplaintClient
	logger Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(client ComplaintClient, logger Logger) *UseCase {
	return &UseCase{
		client: client,
		logger: logger,
	}
}

// Create отправляет жалобу
func (uc *UseCase) Create(ctx context.Context, req *CreateRequest) (*Details, error) {
	// 1. Валидация входных данных
	if err := validateCreate(req); err != nil {
		return nil, err
	}

	// 2. Запрос в backend
	complaint, err := uc.client.CreateComplaint(ctx, swapapi.ComplaintRequest{
		ReservationID: strings.TrimSpace(req.ReservationID),
		Title:         strings.TrimSpace(req.Title),
		Description:   strings.TrimSpace(req.Description),
	})
	if err != nil {
		uc.logger.Warn("Complaints.Create: %v", err)
		if errors.Is(err, swapapi.ErrUnauthorized) {
			return nil, err
		}
		if apiErr, ok := swapapi.AsAPIError(err); ok && len(apiErr.FieldErrors) > 0 {
			return nil, &ValidationError{Fields: apiErr.FieldErrors}
		}
		return nil, fmt.Errorf("%w: %w", ErrSubmitFailed, err)
	}

	uc.logger.Info("Complaints.Create: complaint=%s created", complaint.ID)
	return &Details{Complaint: *complaint, CanScheduleInspection: complaint.CanScheduleInspection()}, nil
}

// Get жалоба по id
func (uc *UseCase) Get(ctx context.Context, id string) (*Details, error) {
	if id == "" {
		return nil, &ValidationError{Fields: map[string]string{"id": "Complaint id is required"}}
	}
	complaint, err := uc.client.GetComplaint(ctx, id)
	if err != nil {
		if errors.Is(err, swapapi.ErrNotFound) {
			return nil, fmt.Errorf("%w: %s", ErrComplaintNotFound, id)
		}
		uc.logger.Error("Complaints.Get: complaint=%s: %v", id, err)
		return nil, err
	}
	return &Details{Complaint: *complaint, CanScheduleInspection: complaint.CanScheduleInspection()}, nil
}
