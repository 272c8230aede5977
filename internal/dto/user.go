package dto

import (
	"time"

	"github.com/SscSPs/hrops_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateUserRequest is used by admins to provision an activated account.
type CreateUserRequest struct {
	FullName         string          `json:"full_name" binding:"required,max=100"`
	Email            string          `json:"email" binding:"required,email"`
	Password         string          `json:"password" binding:"required,min=6,max=72"`
	Phone            string          `json:"phone" binding:"omitempty,max=20"`
	Role             domain.UserRole `json:"role" binding:"omitempty,oneof=employee admin project_manager team_leader"`
	BaseSalaryPerDay decimal.Decimal `json:"base_salary_per_day"`
}

// UpdateUserRequest defines the data allowed for updating a user.
// Using pointers to differentiate between omitted fields and zero-value fields.
// Role, BaseSalaryPerDay and IsActivated are admin-only.
type UpdateUserRequest struct {
	FullName         *string          `json:"full_name" binding:"omitempty,min=1,max=100"`
	Phone            *string          `json:"phone" binding:"omitempty,max=20"`
	Role             *domain.UserRole `json:"role" binding:"omitempty,oneof=employee admin project_manager team_leader"`
	BaseSalaryPerDay *decimal.Decimal `json:"base_salary_per_day"`
	IsActivated      *bool            `json:"is_activated"`
}

// AdminOnly reports whether the request touches fields only admins may change.
func (r UpdateUserRequest) AdminOnly() bool {
	return r.Role != nil || r.BaseSalaryPerDay != nil || r.IsActivated != nil
}

// UserSearchCondition filters the user list.
type UserSearchCondition struct {
	Keyword     string          `json:"keyword"`
	Role        domain.UserRole `json:"role" binding:"omitempty,oneof=employee admin project_manager team_leader"`
	IsActivated *bool           `json:"is_activated"`
	IsBlocked   *bool           `json:"is_blocked"`
}

// ToDomain converts the search condition into a repository filter.
func (c UserSearchCondition) ToDomain() domain.UserFilter {
	return domain.UserFilter{
		Keyword:     c.Keyword,
		Role:        c.Role,
		IsActivated: c.IsActivated,
		IsBlocked:   c.IsBlocked,
	}
}

// UserResponse is the sanitized view of a user. Password and session data never leave the server.
type UserResponse struct {
	UserID           string          `json:"_id"`
	FullName         string          `json:"full_name"`
	Email            string          `json:"email"`
	Phone            string          `json:"phone,omitempty"`
	Role             domain.UserRole `json:"role"`
	BaseSalaryPerDay decimal.Decimal `json:"base_salary_per_day"`
	IsActivated      bool            `json:"is_activated"`
	IsBlocked        bool            `json:"is_blocked"`
	CreatedAt        time.Time       `json:"created_at"`
	LastUpdatedAt    time.Time       `json:"updated_at"`
}

// ToUserResponse converts a domain.User to a UserResponse DTO.
func ToUserResponse(u *domain.User) UserResponse {
	return UserResponse{
		UserID:           u.UserID,
		FullName:         u.FullName,
		Email:            u.Email,
		Phone:            u.Phone,
		Role:             u.Role,
		BaseSalaryPerDay: u.BaseSalaryPerDay,
		IsActivated:      u.IsActivated,
		IsBlocked:        u.IsBlocked,
		CreatedAt:        u.CreatedAt,
		LastUpdatedAt:    u.LastUpdatedAt,
	}
}

// ToUserResponses converts a slice of domain users.
func ToUserResponses(users []domain.User) []UserResponse {
	out := make([]UserResponse, len(users))
	for i := range users {
		out[i] = ToUserResponse(&users[i])
	}
	return out
}
