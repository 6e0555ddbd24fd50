package domain

import "time"

// Role of an account
type Role string

const (
	RoleDriver Role = "Driver"
	RoleStaff  Role = "Staff"
	RoleAdmin  Role = "Admin"
)

// User is the authenticated account as reported by the backend
type User struct {
	ID        string
	Email     string
	FullName  string
	Phone     string
	Role      Role
	StationID string // set for staff only
	IsActive  bool
	CreatedAt time.Time
}

// IsAdmin returns true for admin accounts
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// IsStaff returns true for staff accounts
func (u *User) IsStaff() bool {
	return u.Role == RoleStaff
}
