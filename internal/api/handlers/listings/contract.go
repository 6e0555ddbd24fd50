package listings

import (
	"context"

	"github.com/m04kA/SMC-SwapPortal/internal/domain"
	listingsUC "github.com/m04kA/SMC-SwapPortal/internal/usecase/listings"
)

type ListingsUseCase interface {
	Stations(ctx context.Context, f listingsUC.StationFilter) (*listingsUC.Result[domain.Station], error)
	Payments(ctx context.Context, f listingsUC.PaymentFilter) (*listingsUC.Result[domain.Payment], error)
	Complaints(ctx context.Context, f listingsUC.ComplaintFilter) (*listingsUC.Result[domain.Complaint], error)
	Customers(ctx context.Context, f listingsUC.AccountFilter) (*listingsUC.Result[domain.User], error)
	Staff(ctx context.Context, f listingsUC.AccountFilter) (*listingsUC.Result[domain.User], error)
	Plans(ctx context.Context, f listingsUC.PlanFilter) (*listingsUC.Result[domain.SubscriptionPlan], error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
