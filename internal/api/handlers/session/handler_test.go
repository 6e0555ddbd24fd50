package session

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SwapPortal/internal/domain"
	sessionService "github.com/m04kA/SMC-SwapPortal/internal/service/session"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeService struct {
	state sessionService.State
}

func (f fakeService) Bootstrap(context.Context) sessionService.State {
	return f.state
}

func get(svc SessionService) (*httptest.ResponseRecorder, SessionResponse) {
	rec := httptest.NewRecorder()
	NewHandler(svc, nopLogger{}).Handle(rec, httptest.NewRequest(http.MethodGet, "/session", nil))

	var resp SessionResponse
	_ = json.Unmarshal(rec.Body.Bytes(), &resp)
	return rec, resp
}

func TestHandle(t *testing.T) {
	rec, resp := get(fakeService{state: sessionService.Anonymous()})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "anonymous", resp.Status)
	assert.Nil(t, resp.User)

	rec, resp = get(fakeService{state: sessionService.Authenticated(&domain.User{
		ID: "s-1", Email: "staff@example.com", Role: domain.RoleStaff, StationID: "st-7",
	})})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "authenticated", resp.Status)
	require.NotNil(t, resp.User)
	assert.Equal(t, "Staff", resp.User.Role)
	assert.Equal(t, "st-7", resp.User.StationID)
}
