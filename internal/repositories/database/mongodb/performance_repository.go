package mongodb

import (
	"context"

	"github.com/SscSPs/hrops_backend/internal/core/domain"
	portsrepo "github.com/SscSPs/hrops_backend/internal/core/ports/repositories"
	"github.com/SscSPs/hrops_backend/internal/models"
	"github.com/SscSPs/hrops_backend/internal/utils/mapping"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type MongoReviewRepository struct {
	BaseRepository
}

func newMongoReviewRepository(db *mongo.Database) portsrepo.PerformanceReviewRepositoryFacade {
	return &MongoReviewRepository{BaseRepository: newBase(db, reviewsCollection)}
}

var _ portsrepo.PerformanceReviewRepositoryFacade = (*MongoReviewRepository)(nil)

var newestPeriodFirst = bson.D{{Key: "year", Value: -1}, {Key: "month", Value: -1}}

func (r *MongoReviewRepository) SaveReview(ctx context.Context, review *domain.PerformanceReview) error {
	m, err := mapping.ToModelReview(*review)
	if err != nil {
		return err
	}
	m.ID = primitive.NewObjectID()
	if err := r.insert(ctx, m); err != nil {
		return err
	}
	review.ReviewID = m.ID.Hex()
	return nil
}

func (r *MongoReviewRepository) FindReviewByID(ctx context.Context, reviewID string) (*domain.PerformanceReview, error) {
	oid, err := parseID(reviewID)
	if err != nil {
		return nil, err
	}
	m, err := findOne[models.PerformanceReview](ctx, r.coll, bson.D{{Key: "_id", Value: oid}})
	if err != nil {
		return nil, err
	}
	review := mapping.ToDomainReview(*m)
	return &review, nil
}

func (r *MongoReviewRepository) FindReviewByPeriod(ctx context.Context, userID string, month, year int) (*domain.PerformanceReview, error) {
	oid, err := parseID(userID)
	if err != nil {
		return nil, err
	}
	filter := bson.D{{Key: "user_id", Value: oid}, {Key: "month", Value: month}, {Key: "year", Value: year}}
	m, err := findOne[models.PerformanceReview](ctx, r.coll, filter)
	if err != nil {
		return nil, err
	}
	review := mapping.ToDomainReview(*m)
	return &review, nil
}

func (r *MongoReviewRepository) ListReviews(ctx context.Context, filter domain.ReviewFilter, page domain.PageInfo) (domain.Page[domain.PerformanceReview], error) {
	f := bson.D{}
	if filter.UserID != "" {
		oid, err := mapping.ToObjectID(filter.UserID)
		if err != nil {
			return domain.Page[domain.PerformanceReview]{}, err
		}
		f = append(f, bson.E{Key: "user_id", Value: oid})
	}
	f = periodFilter(f, filter.Month, filter.Year)
	if filter.Grade != "" {
		f = append(f, bson.E{Key: "grade", Value: string(filter.Grade)})
	}
	return findPage(ctx, r.coll, f, newestPeriodFirst, page, mapping.ToDomainReviewSlice)
}

func (r *MongoReviewRepository) UpdateReview(ctx context.Context, review domain.PerformanceReview) error {
	oid, err := parseID(review.ReviewID)
	if err != nil {
		return err
	}
	return r.updateOne(ctx, bson.D{{Key: "_id", Value: oid}}, bson.D{{Key: "$set", Value: bson.D{
		{Key: "grade", Value: string(review.Grade)},
		{Key: "notes", Value: review.Notes},
		{Key: "reviewer_id", Value: review.ReviewerID},
		{Key: "last_updated_at", Value: review.LastUpdatedAt},
		{Key: "last_updated_by", Value: review.LastUpdatedBy},
	}}})
}

func periodFilter(f bson.D, month, year int) bson.D {
	if month > 0 {
		f = append(f, bson.E{Key: "month", Value: month})
	}
	if year > 0 {
		f = append(f, bson.E{Key: "year", Value: year})
	}
	return f
}

type MongoBonusRepository struct {
	BaseRepository
}

func newMongoBonusRepository(db *mongo.Database) portsrepo.PerformanceBonusRepositoryFacade {
	return &MongoBonusRepository{BaseRepository: newBase(db, bonusesCollection)}
}

var _ portsrepo.PerformanceBonusRepositoryFacade = (*MongoBonusRepository)(nil)

func (r *MongoBonusRepository) SaveBonus(ctx context.Context, bonus *domain.PerformanceBonus) error {
	m, err := mapping.ToModelBonus(*bonus)
	if err != nil {
		return err
	}
	m.ID = primitive.NewObjectID()
	if err := r.insert(ctx, m); err != nil {
		return err
	}
	bonus.BonusID = m.ID.Hex()
	return nil
}

func (r *MongoBonusRepository) FindBonusByID(ctx context.Context, bonusID string) (*domain.PerformanceBonus, error) {
	oid, err := parseID(bonusID)
	if err != nil {
		return nil, err
	}
	m, err := findOne[models.PerformanceBonus](ctx, r.coll, bson.D{{Key: "_id", Value: oid}})
	if err != nil {
		return nil, err
	}
	bonus := mapping.ToDomainBonus(*m)
	return &bonus, nil
}

func (r *MongoBonusRepository) ListBonuses(ctx context.Context, activeOnly bool) ([]domain.PerformanceBonus, error) {
	filter := bson.D{}
	if activeOnly {
		filter = append(filter, bson.E{Key: "is_active", Value: true})
	}
	docs, err := findAll[models.PerformanceBonus](ctx, r.coll, filter, options.Find().SetSort(bson.D{{Key: "grade", Value: 1}}))
	if err != nil {
		return nil, err
	}
	return mapping.ToDomainBonusSlice(docs), nil
}

func (r *MongoBonusRepository) UpdateBonus(ctx context.Context, bonus domain.PerformanceBonus) error {
	oid, err := parseID(bonus.BonusID)
	if err != nil {
		return err
	}
	return r.updateOne(ctx, bson.D{{Key: "_id", Value: oid}}, bson.D{{Key: "$set", Value: bson.D{
		{Key: "bonus_amount", Value: mapping.ToDecimal128(bonus.BonusAmount)},
		{Key: "is_active", Value: bonus.IsActive},
		{Key: "last_updated_at", Value: bonus.LastUpdatedAt},
		{Key: "last_updated_by", Value: bonus.LastUpdatedBy},
	}}})
}
