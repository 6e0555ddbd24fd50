package inspection_wizard

import (
	"context"
	"time"

	inspectionWizard "github.com/m04kA/SMC-SwapPortal/internal/usecase/inspection_wizard"
)

type InspectionWizardUseCase interface {
	Open(ctx context.Context, req *inspectionWizard.OpenRequest) (*inspectionWizard.View, error)
	Get(ctx context.Context, ref inspectionWizard.Ref) (*inspectionWizard.View, error)
	SelectStation(ctx context.Context, ref inspectionWizard.Ref, stationID string) (*inspectionWizard.View, error)
	SelectDate(ctx context.Context, ref inspectionWizard.Ref, date time.Time) (*inspectionWizard.View, error)
	SelectSlot(ctx context.Context, ref inspectionWizard.Ref, slotKey string) (*inspectionWizard.View, error)
	Next(ctx context.Context, ref inspectionWizard.Ref) (*inspectionWizard.View, error)
	Back(ctx context.Context, ref inspectionWizard.Ref) (*inspectionWizard.View, error)
	Confirm(ctx context.Context, ref inspectionWizard.Ref) (*inspectionWizard.View, error)
	Close(ctx context.Context, ref inspectionWizard.Ref) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
