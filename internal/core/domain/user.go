package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// UserRole is the system-wide role of a user.
type UserRole string

const (
	RoleEmployee       UserRole = "employee"
	RoleAdmin          UserRole = "admin"
	RoleProjectManager UserRole = "project_manager"
	RoleTeamLeader     UserRole = "team_leader"
)

// Valid reports whether r is one of the known roles.
func (r UserRole) Valid() bool {
	switch r {
	case RoleEmployee, RoleAdmin, RoleProjectManager, RoleTeamLeader:
		return true
	}
	return false
}

// User represents an employee account.
type User struct {
	UserID           string          `json:"userID"`
	FullName         string          `json:"fullName"`
	Email            string          `json:"email"`
	PasswordHash     string          `json:"-"`
	Phone            string          `json:"phone,omitempty"`
	Role             UserRole        `json:"role"`
	BaseSalaryPerDay decimal.Decimal `json:"baseSalaryPerDay"`
	IsActivated      bool            `json:"isActivated"`
	IsBlocked        bool            `json:"isBlocked"`
	// RefreshTokenHash is the sha256 of the single active refresh token.
	RefreshTokenHash       string     `json:"-"`
	RefreshTokenExpiryTime *time.Time `json:"-"`
	AuditFields
	Lifecycle
}

// IsAdmin reports whether the user holds the admin role.
func (u *User) IsAdmin() bool {
	return u != nil && u.Role == RoleAdmin
}

// CanLead reports whether the user's role allows leading work inside a project.
func (u *User) CanLead() bool {
	return u != nil && (u.Role == RoleProjectManager || u.Role == RoleTeamLeader)
}

// CanSignIn reports whether the account may obtain or use a session.
func (u *User) CanSignIn() bool {
	return u != nil && u.IsActivated && !u.IsBlocked && !u.IsDeleted
}

// UserFilter narrows user listings. Nil flags are ignored.
type UserFilter struct {
	Keyword     string
	Role        UserRole
	IsActivated *bool
	IsBlocked   *bool
}
