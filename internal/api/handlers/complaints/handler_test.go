package complaints

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SwapPortal/internal/domain"
	"github.com/m04kA/SMC-SwapPortal/internal/integrations/swapapi"
	complaintsUC "github.com/m04kA/SMC-SwapPortal/internal/usecase/complaints"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeComplaintClient struct {
	created   []swapapi.ComplaintRequest
	createErr error
}

func (f *fakeComplaintClient) GetComplaint(_ context.Context, id string) (*domain.Complaint, error) {
	if id != "c-1" {
		return nil, &swapapi.APIError{Kind: swapapi.KindNotFound, Status: 404}
	}
	return &domain.Complaint{
		ID:        "c-1",
		Title:     "Battery overheats",
		Status:    domain.ComplaintStatusPending,
		CreatedAt: time.Date(2026, 10, 2, 8, 0, 0, 0, time.UTC),
	}, nil
}

func (f *fakeComplaintClient) CreateComplaint(_ context.Context, req swapapi.ComplaintRequest) (*domain.Complaint, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	f.created = append(f.created, req)
	return &domain.Complaint{ID: "c-2", Title: req.Title, Description: req.Description, Status: domain.ComplaintStatusPending}, nil
}

func newRouter(client *fakeComplaintClient) *mux.Router {
	h := NewHandler(complaintsUC.NewUseCase(client, nopLogger{}), nopLogger{})
	r := mux.NewRouter()
	r.HandleFunc("/complaints", h.Create).Methods(http.MethodPost)
	r.HandleFunc("/complaints/{id}", h.Get).Methods(http.MethodGet)
	return r
}

func do(r http.Handler, method, path, body string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(method, path, strings.NewReader(body)))
	return rec
}

func TestCreate(t *testing.T) {
	client := &fakeComplaintClient{}

	rec := do(newRouter(client), http.MethodPost, "/complaints", `{"reservationId":"r-1","title":" Slow swap ","description":"Waited 40 minutes"}`)

	require.Equal(t, http.StatusCreated, rec.Code)
	require.Len(t, client.created, 1)
	assert.Equal(t, "Slow swap", client.created[0].Title)

	var resp ComplaintResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "c-2", resp.ID)
	assert.True(t, resp.CanScheduleInspection)
}

func TestCreate_Errors(t *testing.T) {
	assert.Equal(t, http.StatusUnprocessableEntity,
		do(newRouter(&fakeComplaintClient{}), http.MethodPost, "/complaints", `{"title":"","description":""}`).Code)

	assert.Equal(t, http.StatusBadRequest,
		do(newRouter(&fakeComplaintClient{}), http.MethodPost, "/complaints", `{"unknown":1}`).Code)

	down := &fakeComplaintClient{createErr: &swapapi.APIError{Kind: swapapi.KindNetwork}}
	assert.Equal(t, http.StatusBadGateway,
		do(newRouter(down), http.MethodPost, "/complaints", `{"title":"T","description":"D"}`).Code)
}

func TestGet(t *testing.T) {
	r := newRouter(&fakeComplaintClient{})

	rec := do(r, http.MethodGet, "/complaints/c-1", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var resp ComplaintResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "2026-10-02T08:00:00Z", resp.CreatedAt)

	assert.Equal(t, http.StatusNotFound, do(r, http.MethodGet, "/complaints/c-9", "").Code)
}
