package mongodb

import (
	"context"
	"fmt"

	"github.com/SscSPs/hrops_backend/internal/core/domain"
	portsrepo "github.com/SscSPs/hrops_backend/internal/core/ports/repositories"
	"github.com/SscSPs/hrops_backend/internal/models"
	"github.com/SscSPs/hrops_backend/internal/utils/mapping"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// MongoTokenRepository stores one-time tokens. A TTL index on created_at removes them.
type MongoTokenRepository struct {
	BaseRepository
}

func newMongoTokenRepository(db *mongo.Database) portsrepo.TokenRepository {
	return &MongoTokenRepository{BaseRepository: newBase(db, tokensCollection)}
}

var _ portsrepo.TokenRepository = (*MongoTokenRepository)(nil)

func (r *MongoTokenRepository) SaveToken(ctx context.Context, token *domain.Token) error {
	userID, err := mapping.ToObjectID(token.UserID)
	if err != nil {
		return err
	}
	m := models.Token{
		ID:        primitive.NewObjectID(),
		UserID:    userID,
		Token:     token.Token,
		Purpose:   string(token.Purpose),
		CreatedAt: token.CreatedAt,
	}
	if err := r.insert(ctx, m); err != nil {
		return err
	}
	token.TokenID = m.ID.Hex()
	return nil
}

func (r *MongoTokenRepository) FindToken(ctx context.Context, userID, token string, purpose domain.TokenPurpose) (*domain.Token, error) {
	oid, err := parseID(userID)
	if err != nil {
		return nil, err
	}
	filter := bson.D{{Key: "user_id", Value: oid}, {Key: "token", Value: token}, {Key: "purpose", Value: string(purpose)}}
	m, err := findOne[models.Token](ctx, r.coll, filter)
	if err != nil {
		return nil, err
	}
	t := mapping.ToDomainToken(*m)
	return &t, nil
}

func (r *MongoTokenRepository) DeleteToken(ctx context.Context, tokenID string) error {
	oid, err := parseID(tokenID)
	if err != nil {
		return err
	}
	if _, err := r.coll.DeleteOne(ctx, bson.D{{Key: "_id", Value: oid}}); err != nil {
		return fmt.Errorf("failed to delete token: %w", err)
	}
	return nil
}

func (r *MongoTokenRepository) DeleteUserTokens(ctx context.Context, userID string, purpose domain.TokenPurpose) error {
	oid, err := parseID(userID)
	if err != nil {
		return err
	}
	if _, err := r.coll.DeleteMany(ctx, bson.D{{Key: "user_id", Value: oid}, {Key: "purpose", Value: string(purpose)}}); err != nil {
		return fmt.Errorf("failed to delete user tokens: %w", err)
	}
	return nil
}
