package plans

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SwapPortal/internal/api/handlers"
	"github.com/m04kA/SMC-SwapPortal/internal/domain"
	"github.com/m04kA/SMC-SwapPortal/internal/integrations/swapapi"
	managePlans "github.com/m04kA/SMC-SwapPortal/internal/usecase/manage_plans"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakePlanClient struct {
	plans map[string]domain.SubscriptionPlan
	err   error
}

func (f *fakePlanClient) GetPlan(_ context.Context, id string) (*domain.SubscriptionPlan, error) {
	plan, ok := f.plans[id]
	if !ok {
		return nil, &swapapi.APIError{Kind: swapapi.KindNotFound, Status: 404}
	}
	return &plan, nil
}

func (f *fakePlanClient) CreatePlan(_ context.Context, req swapapi.PlanRequest) (*domain.SubscriptionPlan, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &domain.SubscriptionPlan{ID: "plan-new", Name: req.Name, Price: req.Price, DurationDays: req.DurationDays, SwapsLimit: req.SwapsLimit, IsActive: req.IsActive}, nil
}

func (f *fakePlanClient) UpdatePlan(_ context.Context, id string, req swapapi.PlanRequest) (*domain.SubscriptionPlan, error) {
	if _, ok := f.plans[id]; !ok {
		return nil, &swapapi.APIError{Kind: swapapi.KindNotFound, Status: 404}
	}
	return &domain.SubscriptionPlan{ID: id, Name: req.Name, Price: req.Price, DurationDays: req.DurationDays}, nil
}

func (f *fakePlanClient) DeletePlan(context.Context, string) error {
	return f.err
}

func newRouter(client *fakePlanClient) *mux.Router {
	h := NewHandler(managePlans.NewUseCase(client, nopLogger{}), nopLogger{})
	r := mux.NewRouter()
	r.HandleFunc("/admin/plans", h.Create).Methods(http.MethodPost)
	r.HandleFunc("/admin/plans/{id}", h.Get).Methods(http.MethodGet)
	r.HandleFunc("/admin/plans/{id}", h.Update).Methods(http.MethodPut)
	r.HandleFunc("/admin/plans/{id}", h.Delete).Methods(http.MethodDelete)
	return r
}

func do(r http.Handler, method, path, body string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(method, path, strings.NewReader(body)))
	return rec
}

func TestCreate(t *testing.T) {
	r := newRouter(&fakePlanClient{})

	rec := do(r, http.MethodPost, "/admin/plans", `{"name":"Premium","price":300,"durationDays":30,"swapsLimit":20,"isActive":true}`)

	require.Equal(t, http.StatusCreated, rec.Code)
	var resp PlanResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "plan-new", resp.ID)
	require.NotNil(t, resp.SwapsLimit)
	assert.Equal(t, 20, *resp.SwapsLimit)
}

func TestCreate_Validation(t *testing.T) {
	r := newRouter(&fakePlanClient{})

	rec := do(r, http.MethodPost, "/admin/plans", `{"name":"","price":0,"durationDays":30}`)

	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	var body handlers.ErrorBody
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	fields, ok := body.Error.Details.(map[string]interface{})
	require.True(t, ok)
	assert.Contains(t, fields, "name")
	assert.Contains(t, fields, "price")

	assert.Equal(t, http.StatusBadRequest, do(r, http.MethodPost, "/admin/plans", `{"name":`).Code)
}

func TestGetAndUpdate_NotFound(t *testing.T) {
	r := newRouter(&fakePlanClient{plans: map[string]domain.SubscriptionPlan{"plan-1": {ID: "plan-1", Name: "Basic"}}})

	assert.Equal(t, http.StatusOK, do(r, http.MethodGet, "/admin/plans/plan-1", "").Code)
	assert.Equal(t, http.StatusNotFound, do(r, http.MethodGet, "/admin/plans/plan-9", "").Code)
	assert.Equal(t, http.StatusNotFound, do(r, http.MethodPut, "/admin/plans/plan-9", `{"name":"X","price":1,"durationDays":1}`).Code)
}

func TestDelete(t *testing.T) {
	assert.Equal(t, http.StatusNoContent, do(newRouter(&fakePlanClient{}), http.MethodDelete, "/admin/plans/plan-1", "").Code)

	inUse := &fakePlanClient{err: &swapapi.APIError{Kind: swapapi.KindConflict, Status: 409}}
	assert.Equal(t, http.StatusConflict, do(newRouter(inUse), http.MethodDelete, "/admin/plans/plan-1", "").Code)
}
