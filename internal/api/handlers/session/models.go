package session

import (
	"github.com/m04kA/SMC-SwapPortal/internal/domain"
	sessionService "github.com/m04kA/SMC-SwapPortal/internal/service/session"
)

// SessionResponse HTTP response model
type SessionResponse struct {
	Status string        `json:"status"`
	User   *UserResponse `json:"user,omitempty"`
}

// UserResponse пользователь сессии
type UserResponse struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	FullName  string `json:"fullName"`
	Phone     string `json:"phone,omitempty"`
	Role      string `json:"role"`
	StationID string `json:"stationId,omitempty"`
}

// FromState конвертирует состояние сессии в HTTP response
func FromState(s sessionService.State) *SessionResponse {
	resp := &SessionResponse{Status: string(s.Status)}
	if s.IsAuthenticated() {
		resp.User = FromUser(s.User)
	}
	return resp
}

// FromUser конвертирует пользователя в HTTP response
func FromUser(u *domain.User) *UserResponse {
	return &UserResponse{
		ID:        u.ID,
		Email:     u.Email,
		FullName:  u.FullName,
		Phone:     u.Phone,
		Role:      string(u.Role),
		StationID: u.StationID,
	}
}
