package mapping

import (
	"github.com/SscSPs/hrops_backend/internal/core/domain"
	"github.com/SscSPs/hrops_backend/internal/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ToModelUser converts a domain User to a model User
func ToModelUser(d domain.User) (models.User, error) {
	id := primitive.NilObjectID
	if d.UserID != "" {
		oid, err := ToObjectID(d.UserID)
		if err != nil {
			return models.User{}, err
		}
		id = oid
	}
	return models.User{
		ID:                     id,
		FullName:               d.FullName,
		Email:                  d.Email,
		Password:               d.PasswordHash,
		Phone:                  d.Phone,
		Role:                   string(d.Role),
		BaseSalaryPerDay:       ToDecimal128(d.BaseSalaryPerDay),
		IsActivated:            d.IsActivated,
		IsBlocked:              d.IsBlocked,
		RefreshToken:           d.RefreshTokenHash,
		RefreshTokenExpiryTime: d.RefreshTokenExpiryTime,
		AuditFields:            ToModelAuditFields(d.AuditFields),
		Lifecycle:              ToModelLifecycle(d.Lifecycle),
	}, nil
}

// ToDomainUser converts a model User to a domain User
func ToDomainUser(m models.User) domain.User {
	return domain.User{
		UserID:                 m.ID.Hex(),
		FullName:               m.FullName,
		Email:                  m.Email,
		PasswordHash:           m.Password,
		Phone:                  m.Phone,
		Role:                   domain.UserRole(m.Role),
		BaseSalaryPerDay:       FromDecimal128(m.BaseSalaryPerDay),
		IsActivated:            m.IsActivated,
		IsBlocked:              m.IsBlocked,
		RefreshTokenHash:       m.RefreshToken,
		RefreshTokenExpiryTime: m.RefreshTokenExpiryTime,
		AuditFields:            ToDomainAuditFields(m.AuditFields),
		Lifecycle:              ToDomainLifecycle(m.Lifecycle),
	}
}

// ToDomainUserSlice converts a slice of model Users to a slice of domain Users
func ToDomainUserSlice(ms []models.User) []domain.User {
	ds := make([]domain.User, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainUser(m)
	}
	return ds
}
