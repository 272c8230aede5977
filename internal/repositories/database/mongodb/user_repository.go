package mongodb

import (
	"context"
	"strings"
	"time"

	"github.com/SscSPs/hrops_backend/internal/core/domain"
	portsrepo "github.com/SscSPs/hrops_backend/internal/core/ports/repositories"
	"github.com/SscSPs/hrops_backend/internal/models"
	"github.com/SscSPs/hrops_backend/internal/utils/mapping"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type MongoUserRepository struct {
	BaseRepository
}

func newMongoUserRepository(db *mongo.Database) portsrepo.UserRepositoryFacade {
	return &MongoUserRepository{BaseRepository: newBase(db, usersCollection)}
}

// Ensure MongoUserRepository implements portsrepo.UserRepositoryFacade
var _ portsrepo.UserRepositoryFacade = (*MongoUserRepository)(nil)

var endSession = bson.E{Key: "$unset", Value: bson.D{
	{Key: "refresh_token", Value: ""},
	{Key: "refresh_token_expires_at", Value: ""},
}}

func (r *MongoUserRepository) SaveUser(ctx context.Context, user *domain.User) error {
	m, err := mapping.ToModelUser(*user)
	if err != nil {
		return err
	}
	m.ID = primitive.NewObjectID()
	m.Email = strings.ToLower(m.Email)
	if err := r.insert(ctx, m); err != nil {
		return err
	}
	user.UserID = m.ID.Hex()
	return nil
}

func (r *MongoUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	oid, err := parseID(userID)
	if err != nil {
		return nil, err
	}
	m, err := findOne[models.User](ctx, r.coll, activeByID(oid))
	if err != nil {
		return nil, err
	}
	u := mapping.ToDomainUser(*m)
	return &u, nil
}

func (r *MongoUserRepository) FindUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	filter := bson.D{{Key: "email", Value: strings.ToLower(strings.TrimSpace(email))}, notDeleted}
	m, err := findOne[models.User](ctx, r.coll, filter)
	if err != nil {
		return nil, err
	}
	u := mapping.ToDomainUser(*m)
	return &u, nil
}

// FindUsersByIDs skips malformed ids, so callers comparing counts see them as missing.
func (r *MongoUserRepository) FindUsersByIDs(ctx context.Context, userIDs []string) ([]domain.User, error) {
	oids := make([]primitive.ObjectID, 0, len(userIDs))
	for _, id := range userIDs {
		if oid, err := parseID(id); err == nil {
			oids = append(oids, oid)
		}
	}
	if len(oids) == 0 {
		return []domain.User{}, nil
	}
	docs, err := findAll[models.User](ctx, r.coll, bson.D{{Key: "_id", Value: bson.D{{Key: "$in", Value: oids}}}, notDeleted})
	if err != nil {
		return nil, err
	}
	return mapping.ToDomainUserSlice(docs), nil
}

func userFilter(f domain.UserFilter) bson.D {
	filter := bson.D{notDeleted}
	if f.Keyword != "" {
		filter = append(filter, bson.E{Key: "$or", Value: bson.A{
			bson.D{{Key: "full_name", Value: keyword(f.Keyword)}},
			bson.D{{Key: "email", Value: keyword(f.Keyword)}},
		}})
	}
	if f.Role != "" {
		filter = append(filter, bson.E{Key: "role", Value: string(f.Role)})
	}
	if f.IsActivated != nil {
		filter = append(filter, bson.E{Key: "is_activated", Value: *f.IsActivated})
	}
	if f.IsBlocked != nil {
		filter = append(filter, bson.E{Key: "is_blocked", Value: *f.IsBlocked})
	}
	return filter
}

func (r *MongoUserRepository) ListUsers(ctx context.Context, filter domain.UserFilter, page domain.PageInfo) (domain.Page[domain.User], error) {
	sort := bson.D{{Key: "created_at", Value: -1}}
	return findPage(ctx, r.coll, userFilter(filter), sort, page, mapping.ToDomainUserSlice)
}

func (r *MongoUserRepository) ListPayableUsers(ctx context.Context) ([]domain.User, error) {
	filter := bson.D{
		{Key: "is_activated", Value: true},
		{Key: "is_blocked", Value: false},
		notDeleted,
	}
	docs, err := findAll[models.User](ctx, r.coll, filter, options.Find().SetSort(bson.D{{Key: "full_name", Value: 1}}))
	if err != nil {
		return nil, err
	}
	return mapping.ToDomainUserSlice(docs), nil
}

func (r *MongoUserRepository) UpdateUser(ctx context.Context, user domain.User) error {
	m, err := mapping.ToModelUser(user)
	if err != nil {
		return err
	}
	return r.updateOne(ctx, activeByID(m.ID), bson.D{{Key: "$set", Value: bson.D{
		{Key: "full_name", Value: m.FullName},
		{Key: "phone", Value: m.Phone},
		{Key: "role", Value: m.Role},
		{Key: "base_salary_per_day", Value: m.BaseSalaryPerDay},
		{Key: "is_activated", Value: m.IsActivated},
		{Key: "last_updated_at", Value: m.LastUpdatedAt},
		{Key: "last_updated_by", Value: m.LastUpdatedBy},
	}}})
}

func (r *MongoUserRepository) UpdateRefreshToken(ctx context.Context, userID string, refreshTokenHash string, expiresAt *time.Time) error {
	oid, err := parseID(userID)
	if err != nil {
		return err
	}
	update := bson.D{endSession}
	if refreshTokenHash != "" {
		update = bson.D{{Key: "$set", Value: bson.D{
			{Key: "refresh_token", Value: refreshTokenHash},
			{Key: "refresh_token_expires_at", Value: expiresAt},
		}}}
	}
	return r.updateOne(ctx, activeByID(oid), update)
}

func (r *MongoUserRepository) UpdatePassword(ctx context.Context, userID string, passwordHash string, updatedAt time.Time) error {
	oid, err := parseID(userID)
	if err != nil {
		return err
	}
	return r.updateOne(ctx, activeByID(oid), bson.D{
		{Key: "$set", Value: bson.D{
			{Key: "password", Value: passwordHash},
			{Key: "last_updated_at", Value: updatedAt},
			{Key: "last_updated_by", Value: userID},
		}},
		endSession,
	})
}

func (r *MongoUserRepository) ActivateUser(ctx context.Context, userID string, activatedAt time.Time) error {
	oid, err := parseID(userID)
	if err != nil {
		return err
	}
	return r.updateOne(ctx, activeByID(oid), bson.D{{Key: "$set", Value: bson.D{
		{Key: "is_activated", Value: true},
		{Key: "last_updated_at", Value: activatedAt},
		{Key: "last_updated_by", Value: userID},
	}}})
}

func (r *MongoUserRepository) SetUserBlocked(ctx context.Context, userID string, blocked bool, updatedBy string, updatedAt time.Time) error {
	oid, err := parseID(userID)
	if err != nil {
		return err
	}
	update := bson.D{{Key: "$set", Value: bson.D{
		{Key: "is_blocked", Value: blocked},
		{Key: "last_updated_at", Value: updatedAt},
		{Key: "last_updated_by", Value: updatedBy},
	}}}
	if blocked {
		update = append(update, endSession)
	}
	return r.updateOne(ctx, activeByID(oid), update)
}

func (r *MongoUserRepository) MarkUserDeleted(ctx context.Context, userID string, deletedAt time.Time, deletedBy string) error {
	return r.markDeleted(ctx, userID, deletedAt, deletedBy)
}
