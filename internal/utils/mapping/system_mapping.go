package mapping

import (
	"github.com/SscSPs/hrops_backend/internal/core/domain"
	"github.com/SscSPs/hrops_backend/internal/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func ToDomainSetting(m models.Setting) domain.Setting {
	return domain.Setting{
		SettingID:          m.ID.Hex(),
		IsMaintenanceMode:  m.IsMaintenanceMode,
		MaintenanceMessage: m.MaintenanceMessage,
		MinAppVersion:      m.MinAppVersion,
		LastUpdatedAt:      m.LastUpdatedAt,
		LastUpdatedBy:      m.LastUpdatedBy,
	}
}

func ToDomainToken(m models.Token) domain.Token {
	return domain.Token{
		TokenID:   m.ID.Hex(),
		UserID:    m.UserID.Hex(),
		Token:     m.Token,
		Purpose:   domain.TokenPurpose(m.Purpose),
		CreatedAt: m.CreatedAt,
	}
}

func ToModelWorkplace(d domain.Workplace) (models.Workplace, error) {
	id := primitive.NilObjectID
	if d.WorkplaceID != "" {
		oid, err := ToObjectID(d.WorkplaceID)
		if err != nil {
			return models.Workplace{}, err
		}
		id = oid
	}
	return models.Workplace{
		ID:           id,
		Name:         d.Name,
		Address:      d.Address,
		Latitude:     d.Latitude,
		Longitude:    d.Longitude,
		RadiusMeters: d.RadiusMeters,
		AuditFields:  ToModelAuditFields(d.AuditFields),
		Lifecycle:    ToModelLifecycle(d.Lifecycle),
	}, nil
}

func ToDomainWorkplace(m models.Workplace) domain.Workplace {
	return domain.Workplace{
		WorkplaceID:  m.ID.Hex(),
		Name:         m.Name,
		Address:      m.Address,
		Latitude:     m.Latitude,
		Longitude:    m.Longitude,
		RadiusMeters: m.RadiusMeters,
		AuditFields:  ToDomainAuditFields(m.AuditFields),
		Lifecycle:    ToDomainLifecycle(m.Lifecycle),
	}
}

func ToDomainWorkplaceSlice(ms []models.Workplace) []domain.Workplace {
	ds := make([]domain.Workplace, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainWorkplace(m)
	}
	return ds
}
