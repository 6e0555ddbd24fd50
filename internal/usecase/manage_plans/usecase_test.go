package manage_plans

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SwapPortal/internal/domain"
	"github.com/m04kA/SMC-SwapPortal/internal/integrations/swapapi"
	"github.com/m04kA/SMC-SwapPortal/pkg/ptr"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakePlanClient struct {
	err     error
	created []swapapi.PlanRequest
	deleted []string
}

func (f *fakePlanClient) GetPlan(_ context.Context, id string) (*domain.SubscriptionPlan, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &domain.SubscriptionPlan{ID: id}, nil
}

func (f *fakePlanClient) CreatePlan(_ context.Context, req swapapi.PlanRequest) (*domain.SubscriptionPlan, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.created = append(f.created, req)
	return &domain.SubscriptionPlan{ID: "plan-1", Name: req.Name, Price: req.Price}, nil
}

func (f *fakePlanClient) UpdatePlan(_ context.Context, id string, req swapapi.PlanRequest) (*domain.SubscriptionPlan, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &domain.SubscriptionPlan{ID: id, Name: req.Name}, nil
}

func (f *fakePlanClient) DeletePlan(_ context.Context, id string) error {
	if f.err != nil {
		return f.err
	}
	f.deleted = append(f.deleted, id)
	return nil
}

func validPlan() *PlanRequest {
	return &PlanRequest{Name: "  Basic  ", Price: 299000, DurationDays: 30, SwapsLimit: ptr.Ptr(20), IsActive: true}
}

func TestCreate(t *testing.T) {
	client := &fakePlanClient{}
	plan, err := NewUseCase(client, nopLogger{}).Create(context.Background(), validPlan())
	require.NoError(t, err)

	assert.Equal(t, "plan-1", plan.ID)
	require.Len(t, client.created, 1)
	assert.Equal(t, "Basic", client.created[0].Name)
}

func TestCreate_Validation(t *testing.T) {
	req := &PlanRequest{Price: 0, DurationDays: 0, SwapsLimit: ptr.Ptr(0)}

	_, err := NewUseCase(&fakePlanClient{}, nopLogger{}).Create(context.Background(), req)

	var vErr *ValidationError
	require.True(t, errors.As(err, &vErr))
	assert.Len(t, vErr.Fields, 4)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestUpdate_NotFound(t *testing.T) {
	client := &fakePlanClient{err: &swapapi.APIError{Kind: swapapi.KindNotFound, Status: 404}}

	_, err := NewUseCase(client, nopLogger{}).Update(context.Background(), "plan-9", validPlan())
	assert.ErrorIs(t, err, ErrPlanNotFound)
}

func TestDelete(t *testing.T) {
	client := &fakePlanClient{}
	uc := NewUseCase(client, nopLogger{})

	require.NoError(t, uc.Delete(context.Background(), "plan-1"))
	assert.Equal(t, []string{"plan-1"}, client.deleted)

	client.err = &swapapi.APIError{Kind: swapapi.KindConflict, Status: 409, Message: "Plan has active subscribers"}
	err := uc.Delete(context.Background(), "plan-1")
	assert.ErrorIs(t, err, ErrPlanInUse)
	assert.Equal(t, "Plan has active subscribers", swapapi.UserMessage(err, ""))
}

func TestForbiddenPassesThrough(t *testing.T) {
	client := &fakePlanClient{err: &swapapi.APIError{Kind: swapapi.KindForbidden, Status: 403}}

	_, err := NewUseCase(client, nopLogger{}).Get(context.Background(), "plan-1")
	assert.ErrorIs(t, err, swapapi.ErrForbidden)
}
