package restock

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SwapPortal/internal/api/handlers"
	"github.com/m04kA/SMC-SwapPortal/internal/domain"
	"github.com/m04kA/SMC-SwapPortal/internal/service/session"
	groupRequests "github.com/m04kA/SMC-SwapPortal/internal/usecase/group_requests"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeRestock struct {
	stock     []groupRequests.Batch[domain.StockRequest]
	submitted *groupRequests.SubmitRequest
	result    *groupRequests.SubmitResult
	err       error
}

func (f *fakeRestock) BatteryBatches(context.Context) ([]groupRequests.Batch[domain.BatteryRequest], error) {
	return nil, f.err
}

func (f *fakeRestock) StockBatches(context.Context) ([]groupRequests.Batch[domain.StockRequest], error) {
	return f.stock, f.err
}

func (f *fakeRestock) SubmitBatteryBatch(_ context.Context, req *groupRequests.SubmitRequest) (*groupRequests.SubmitResult, error) {
	f.submitted = req
	return f.result, f.err
}

func (f *fakeRestock) SubmitStockBatch(_ context.Context, req *groupRequests.SubmitRequest) (*groupRequests.SubmitResult, error) {
	f.submitted = req
	return f.result, f.err
}

func staffRequest(t *testing.T, method, path string, body interface{}) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	user := &domain.User{ID: "s-1", Role: domain.RoleStaff, StationID: "st-7"}
	return req.WithContext(session.WithState(req.Context(), session.Authenticated(user)))
}

func TestStockBatches(t *testing.T) {
	key := time.Date(2026, 10, 15, 9, 0, 0, 0, time.UTC)
	uc := &fakeRestock{stock: []groupRequests.Batch[domain.StockRequest]{{
		Key:           key,
		RequestedBy:   "s-1",
		StationName:   "Central",
		TotalQuantity: 7,
		Status:        domain.RequestStatusPending,
		Items: []domain.StockRequest{
			{ID: "1", BatteryModelID: "bm-1", Quantity: 3, CreatedAt: key},
			{ID: "2", BatteryModelID: "bm-2", Quantity: 4, CreatedAt: key.Add(time.Second)},
		},
	}}}
	rec := httptest.NewRecorder()

	NewHandler(uc, nopLogger{}).StockBatches(rec, staffRequest(t, http.MethodGet, "/staff/stock-requests/batches", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var resp []BatchResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp, 1)
	assert.Equal(t, "Pending", resp[0].Status)
	assert.Equal(t, 7, resp[0].TotalQuantity)
	assert.Len(t, resp[0].Items, 2)
}

func TestSubmitStockBatch_DefaultsToOwnStation(t *testing.T) {
	uc := &fakeRestock{result: &groupRequests.SubmitResult{Created: 2, Total: 2}}
	rec := httptest.NewRecorder()
	body := SubmitBatchRequest{Lines: []LineRequest{{BatteryModelID: "bm-1", Quantity: 1}, {BatteryModelID: "bm-2", Quantity: 2}}}

	NewHandler(uc, nopLogger{}).SubmitStockBatch(rec, staffRequest(t, http.MethodPost, "/staff/stock-requests/batches", body))

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "st-7", uc.submitted.StationID)
	assert.Len(t, uc.submitted.Lines, 2)
}

func TestSubmit_Errors(t *testing.T) {
	tests := []struct {
		name   string
		uc     *fakeRestock
		status int
	}{
		{
			name:   "invalid",
			uc:     &fakeRestock{err: fmt.Errorf("%w: line 1: quantity must be positive", groupRequests.ErrInvalidRequest)},
			status: http.StatusBadRequest,
		},
		{
			name: "partial",
			uc: &fakeRestock{
				result: &groupRequests.SubmitResult{Created: 1, Total: 2},
				err:    fmt.Errorf("%w: 1 of 2 lines created", groupRequests.ErrPartiallySubmitted),
			},
			status: http.StatusBadGateway,
		},
		{
			name:   "unexpected",
			uc:     &fakeRestock{err: errors.New("boom")},
			status: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			body := SubmitBatchRequest{StationID: "st-1", Lines: []LineRequest{{BatteryModelID: "bm-1", Quantity: 1}}}

			NewHandler(tt.uc, nopLogger{}).SubmitBatteryBatch(rec, staffRequest(t, http.MethodPost, "/admin/battery-requests/batches", body))

			assert.Equal(t, tt.status, rec.Code)
			var errBody handlers.ErrorBody
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &errBody))
			assert.NotEmpty(t, errBody.Error.Message)
		})
	}
}
