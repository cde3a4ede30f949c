package reports

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	apperrors "github.com/xyz-asif/campusfix/pkg/errors"
)

type Repository struct {
	collection *mongo.Collection
}

func NewRepository(db *mongo.Database) *Repository {
	collection := db.Collection("reports")

	// Create indexes
	collection.Indexes().CreateMany(context.Background(), []mongo.IndexModel{
		{Keys: bson.D{{Key: "timestamp", Value: -1}}},
		{Keys: bson.D{{Key: "status", Value: 1}}},
		{Keys: bson.D{{Key: "assignedTo", Value: 1}}},
	})

	return &Repository{collection: collection}
}

// ListFilter narrows the report listing. Empty or "all" values are no-ops.
type ListFilter struct {
	Category string
	Type     string
	Status   string
}

func (f ListFilter) toBSON() bson.M {
	filter := bson.M{}
	if f.Category != "" && f.Category != "all" {
		filter["category"] = f.Category
	}
	if f.Type != "" && f.Type != "all" {
		filter["type"] = f.Type
	}
	if f.Status != "" && f.Status != "all" {
		filter["status"] = f.Status
	}
	return filter
}

// List returns a page of reports, newest first.
func (r *Repository) List(ctx context.Context, filter ListFilter, limit, offset int) ([]Report, error) {
	opts := options.Find().SetSort(bson.D{{Key: "timestamp", Value: -1}})
	if limit > 0 {
		opts.SetLimit(int64(limit)).SetSkip(int64(offset))
	}

	cursor, err := r.collection.Find(ctx, filter.toBSON(), opts)
	if err != nil {
		return nil, apperrors.Store(err)
	}
	defer cursor.Close(ctx)

	var results []Report
	if err := cursor.All(ctx, &results); err != nil {
		return nil, apperrors.Store(err)
	}

	if results == nil {
		results = []Report{}
	}

	return results, nil
}

// ListAll returns the full collection, newest first. The aggregator and the
// snapshot stream work on complete snapshots, not pages.
func (r *Repository) ListAll(ctx context.Context) ([]Report, error) {
	return r.List(ctx, ListFilter{}, 0, 0)
}

// ListPendingReview returns reports awaiting an admin review decision. Only
// reports whose staff resolution carries an image are surfaced; a
// pendingReview flag without one is malformed and stays hidden.
func (r *Repository) ListPendingReview(ctx context.Context) ([]Report, error) {
	filter := bson.M{
		"status":          StatusPendingReview,
		"resolutionImage": bson.M{"$ne": nil},
	}

	opts := options.Find().SetSort(bson.D{{Key: "resolutionTimestamp", Value: -1}})

	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, apperrors.Store(err)
	}
	defer cursor.Close(ctx)

	var results []Report
	if err := cursor.All(ctx, &results); err != nil {
		return nil, apperrors.Store(err)
	}

	if results == nil {
		results = []Report{}
	}

	return results, nil
}

func (r *Repository) Count(ctx context.Context, filter ListFilter) (int64, error) {
	count, err := r.collection.CountDocuments(ctx, filter.toBSON())
	if err != nil {
		return 0, apperrors.Store(err)
	}
	return count, nil
}

func (r *Repository) GetByID(ctx context.Context, id string) (*Report, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, apperrors.NotFound("report")
	}

	var report Report
	err = r.collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&report)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, apperrors.NotFound("report")
		}
		return nil, apperrors.Store(err)
	}

	return &report, nil
}

// Update applies a lifecycle field update as a single-document write. There
// is no optimistic concurrency check; concurrent admin writes race and the
// last one wins, matching the original client behavior.
func (r *Repository) Update(ctx context.Context, id string, fields bson.M) error {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return apperrors.NotFound("report")
	}

	result, err := r.collection.UpdateOne(
		ctx,
		bson.M{"_id": objectID},
		bson.M{"$set": fields},
	)

	if err != nil {
		return apperrors.Store(err)
	}

	if result.MatchedCount == 0 {
		return apperrors.NotFound("report")
	}

	return nil
}
