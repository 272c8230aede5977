package mongodb

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"time"

	"github.com/SscSPs/hrops_backend/internal/apperrors"
	"github.com/SscSPs/hrops_backend/internal/core/domain"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Collection names.
const (
	usersCollection       = "users"
	projectsCollection    = "projects"
	tasksCollection       = "tasks"
	attendancesCollection = "attendances"
	workReportsCollection = "work_reports"
	reviewsCollection     = "performance_reviews"
	bonusesCollection     = "performance_bonuses"
	payrollsCollection    = "payrolls"
	settingsCollection    = "settings"
	tokensCollection      = "tokens"
	workplacesCollection  = "workplaces"
)

// BaseRepository provides common functionality for all repositories
type BaseRepository struct {
	coll *mongo.Collection
}

func newBase(db *mongo.Database, name string) BaseRepository {
	return BaseRepository{coll: db.Collection(name)}
}

// notDeleted is part of every read predicate on soft-deletable collections.
var notDeleted = bson.E{Key: "is_deleted", Value: false}

// parseID converts a hex id. Malformed ids cannot match any document.
func parseID(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, apperrors.ErrNotFound
	}
	return oid, nil
}

func activeByID(oid primitive.ObjectID) bson.D {
	return bson.D{{Key: "_id", Value: oid}, notDeleted}
}

// keyword builds a case-insensitive substring match.
func keyword(k string) primitive.Regex {
	return primitive.Regex{Pattern: regexp.QuoteMeta(k), Options: "i"}
}

// dateRange adds a work_date bound for whichever ends are set.
func dateRange(filter bson.D, from, to string) bson.D {
	bounds := bson.D{}
	if from != "" {
		bounds = append(bounds, bson.E{Key: "$gte", Value: from})
	}
	if to != "" {
		bounds = append(bounds, bson.E{Key: "$lte", Value: to})
	}
	if len(bounds) > 0 {
		filter = append(filter, bson.E{Key: "work_date", Value: bounds})
	}
	return filter
}

// insert maps duplicate-key violations to apperrors.ErrDuplicate.
func (r *BaseRepository) insert(ctx context.Context, doc any) error {
	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return fmt.Errorf("duplicate %s document: %w", r.coll.Name(), apperrors.ErrDuplicate)
		}
		return fmt.Errorf("failed to insert into %s: %w", r.coll.Name(), err)
	}
	return nil
}

// updateOne applies update and reports apperrors.ErrNotFound when nothing matched.
func (r *BaseRepository) updateOne(ctx context.Context, filter bson.D, update bson.D) error {
	res, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return fmt.Errorf("duplicate %s document: %w", r.coll.Name(), apperrors.ErrDuplicate)
		}
		return fmt.Errorf("failed to update %s: %w", r.coll.Name(), err)
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("%s document not found or already deleted: %w", r.coll.Name(), apperrors.ErrNotFound)
	}
	return nil
}

// markDeleted soft-deletes the document with the given id.
func (r *BaseRepository) markDeleted(ctx context.Context, id string, deletedAt time.Time, deletedBy string) error {
	oid, err := parseID(id)
	if err != nil {
		return err
	}
	return r.updateOne(ctx, activeByID(oid), bson.D{{Key: "$set", Value: bson.D{
		{Key: "is_deleted", Value: true},
		{Key: "deleted_at", Value: deletedAt},
		{Key: "deleted_by", Value: deletedBy},
		{Key: "last_updated_at", Value: deletedAt},
		{Key: "last_updated_by", Value: deletedBy},
	}}})
}

func (r *BaseRepository) count(ctx context.Context, filter bson.D) (int64, error) {
	n, err := r.coll.CountDocuments(ctx, filter)
	if err != nil {
		return 0, fmt.Errorf("failed to count %s: %w", r.coll.Name(), err)
	}
	return n, nil
}

func findOne[M any](ctx context.Context, coll *mongo.Collection, filter bson.D) (*M, error) {
	var m M
	err := coll.FindOne(ctx, filter).Decode(&m)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, apperrors.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find %s document: %w", coll.Name(), err)
	}
	return &m, nil
}

func findAll[M any](ctx context.Context, coll *mongo.Collection, filter bson.D, opts ...*options.FindOptions) ([]M, error) {
	cursor, err := coll.Find(ctx, filter, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to query %s: %w", coll.Name(), err)
	}
	docs := []M{}
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("error iterating %s: %w", coll.Name(), err)
	}
	return docs, nil
}

// findPage counts the matches, then loads one page in the given order.
func findPage[M any, D any](ctx context.Context, coll *mongo.Collection, filter bson.D, sort bson.D, page domain.PageInfo, toDomain func([]M) []D) (domain.Page[D], error) {
	page = page.Normalize()
	total, err := coll.CountDocuments(ctx, filter)
	if err != nil {
		return domain.Page[D]{}, fmt.Errorf("failed to count %s: %w", coll.Name(), err)
	}
	opts := options.Find().
		SetSort(sort).
		SetSkip(int64(page.Offset())).
		SetLimit(int64(page.PageSize))
	docs, err := findAll[M](ctx, coll, filter, opts)
	if err != nil {
		return domain.Page[D]{}, err
	}
	return domain.Page[D]{Records: toDomain(docs), TotalRecords: total, PageInfo: page}, nil
}

func aggregate[R any](ctx context.Context, coll *mongo.Collection, pipeline mongo.Pipeline) ([]R, error) {
	cursor, err := coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate %s: %w", coll.Name(), err)
	}
	rows := []R{}
	if err := cursor.All(ctx, &rows); err != nil {
		return nil, fmt.Errorf("error iterating %s aggregation: %w", coll.Name(), err)
	}
	return rows, nil
}
