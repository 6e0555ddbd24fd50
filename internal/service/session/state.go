package session

import (
	"context"

	"github.com/m04kA/SMC-SwapPortal/internal/domain"
)

// Status of the session as seen by the portal
type Status string

const (
	StatusLoading       Status = "loading"
	StatusAuthenticated Status = "authenticated"
	StatusAnonymous     Status = "anonymous"
)

// State is the typed session: User is set only when Status is authenticated
type State struct {
	Status Status
	User   *domain.User
}

// Anonymous returns the logged-out state
func Anonymous() State {
	return State{Status: StatusAnonymous}
}

// Authenticated returns the logged-in state for user
func Authenticated(user *domain.User) State {
	return State{Status: StatusAuthenticated, User: user}
}

// IsAuthenticated reports whether a user is attached
func (s State) IsAuthenticated() bool {
	return s.Status == StatusAuthenticated && s.User != nil
}

// HasRole reports whether the session user has one of roles
func (s State) HasRole(roles ...domain.Role) bool {
	if !s.IsAuthenticated() {
		return false
	}
	for _, r := range roles {
		if s.User.Role == r {
			return true
		}
	}
	return false
}

type stateKey struct{}

// WithState attaches the session state to ctx
func WithState(ctx context.Context, s State) context.Context {
	return context.WithValue(ctx, stateKey{}, s)
}

// FromContext returns the session attached to ctx.
// A context without one is still loading.
func FromContext(ctx context.Context) State {
	if s, ok := ctx.Value(stateKey{}).(State); ok {
		return s
	}
	return State{Status: StatusLoading}
}

// UserFrom returns the authenticated user or ErrNotAuthenticated
func UserFrom(ctx context.Context) (*domain.User, error) {
	s := FromContext(ctx)
	if !s.IsAuthenticated() {
		return nil, ErrNotAuthenticated
	}
	return s.User, nil
}
