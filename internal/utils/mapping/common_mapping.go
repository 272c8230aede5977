package mapping

import (
	"github.com/SscSPs/hrops_backend/internal/apperrors"
	"github.com/SscSPs/hrops_backend/internal/core/domain"
	"github.com/SscSPs/hrops_backend/internal/models"
	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ToObjectID parses a hex document ID, reporting a validation error for malformed input.
func ToObjectID(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, apperrors.Wrap(apperrors.ErrValidation, "Invalid ID format", err)
	}
	return oid, nil
}

// ToObjectIDs parses a slice of hex document IDs.
func ToObjectIDs(ids []string) ([]primitive.ObjectID, error) {
	oids := make([]primitive.ObjectID, 0, len(ids))
	for _, id := range ids {
		oid, err := ToObjectID(id)
		if err != nil {
			return nil, err
		}
		oids = append(oids, oid)
	}
	return oids, nil
}

// ToOptionalObjectID parses a nullable reference.
func ToOptionalObjectID(id *string) (*primitive.ObjectID, error) {
	if id == nil || *id == "" {
		return nil, nil
	}
	oid, err := ToObjectID(*id)
	if err != nil {
		return nil, err
	}
	return &oid, nil
}

// FromOptionalObjectID renders a nullable reference as a hex string pointer.
func FromOptionalObjectID(oid *primitive.ObjectID) *string {
	if oid == nil || oid.IsZero() {
		return nil
	}
	hex := oid.Hex()
	return &hex
}

// FromObjectIDs renders object IDs as hex strings.
func FromObjectIDs(oids []primitive.ObjectID) []string {
	ids := make([]string, len(oids))
	for i, oid := range oids {
		ids[i] = oid.Hex()
	}
	return ids
}

// ToDecimal128 stores a decimal amount losslessly.
func ToDecimal128(d decimal.Decimal) primitive.Decimal128 {
	v, err := primitive.ParseDecimal128(d.String())
	if err != nil {
		return primitive.NewDecimal128(0, 0)
	}
	return v
}

// FromDecimal128 reads a stored amount; unset values read as zero.
func FromDecimal128(v primitive.Decimal128) decimal.Decimal {
	if v == (primitive.Decimal128{}) {
		return decimal.Zero
	}
	d, err := decimal.NewFromString(v.String())
	if err != nil {
		return decimal.Zero
	}
	return d
}

// ToModelAuditFields converts a domain AuditFields to a model AuditFields
func ToModelAuditFields(d domain.AuditFields) models.AuditFields {
	return models.AuditFields{
		CreatedAt:     d.CreatedAt,
		CreatedBy:     d.CreatedBy,
		LastUpdatedAt: d.LastUpdatedAt,
		LastUpdatedBy: d.LastUpdatedBy,
	}
}

// ToDomainAuditFields converts a model AuditFields to a domain AuditFields
func ToDomainAuditFields(m models.AuditFields) domain.AuditFields {
	return domain.AuditFields{
		CreatedAt:     m.CreatedAt,
		CreatedBy:     m.CreatedBy,
		LastUpdatedAt: m.LastUpdatedAt,
		LastUpdatedBy: m.LastUpdatedBy,
	}
}

func ToModelLifecycle(d domain.Lifecycle) models.Lifecycle {
	return models.Lifecycle{IsDeleted: d.IsDeleted, DeletedAt: d.DeletedAt, DeletedBy: d.DeletedBy}
}

func ToDomainLifecycle(m models.Lifecycle) domain.Lifecycle {
	return domain.Lifecycle{IsDeleted: m.IsDeleted, DeletedAt: m.DeletedAt, DeletedBy: m.DeletedBy}
}
