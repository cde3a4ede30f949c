package tickets

import (
	"context"
	"time"

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
	collection := db.Collection("support_tickets")

	collection.Indexes().CreateMany(context.Background(), []mongo.IndexModel{
		{Keys: bson.D{{Key: "status", Value: 1}}},
		{Keys: bson.D{{Key: "createdAt", Value: -1}}},
		{Keys: bson.D{{Key: "reportId", Value: 1}}},
	})

	return &Repository{collection: collection}
}

// List returns a page of tickets, newest first, optionally filtered by
// status. "all" or empty status is a no-op.
func (r *Repository) List(ctx context.Context, status string, limit, offset int) ([]Ticket, error) {
	filter := bson.M{}
	if status != "" && status != "all" {
		filter["status"] = status
	}

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	if limit > 0 {
		opts.SetLimit(int64(limit)).SetSkip(int64(offset))
	}

	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, apperrors.Store(err)
	}
	defer cursor.Close(ctx)

	var tickets []Ticket
	if err := cursor.All(ctx, &tickets); err != nil {
		return nil, apperrors.Store(err)
	}

	if tickets == nil {
		tickets = []Ticket{}
	}

	return tickets, nil
}

// ListAll returns the full collection for the snapshot stream.
func (r *Repository) ListAll(ctx context.Context) ([]Ticket, error) {
	return r.List(ctx, "", 0, 0)
}

func (r *Repository) Count(ctx context.Context, status string) (int64, error) {
	filter := bson.M{}
	if status != "" && status != "all" {
		filter["status"] = status
	}

	count, err := r.collection.CountDocuments(ctx, filter)
	if err != nil {
		return 0, apperrors.Store(err)
	}
	return count, nil
}

// CountByStatus builds the KPI counters. Tickets without a status count as
// Open, matching how the dashboard renders them.
func (r *Repository) CountByStatus(ctx context.Context) (*Stats, error) {
	tickets, err := r.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	stats := &Stats{Total: int64(len(tickets))}
	for i := range tickets {
		switch tickets[i].CurrentStatus() {
		case StatusOpen:
			stats.Open++
		case StatusInProgress:
			stats.InProgress++
		case StatusResolved:
			stats.Resolved++
		}
	}

	return stats, nil
}

func (r *Repository) GetByID(ctx context.Context, id string) (*Ticket, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, apperrors.NotFound("ticket")
	}

	var ticket Ticket
	err = r.collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&ticket)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, apperrors.NotFound("ticket")
		}
		return nil, apperrors.Store(err)
	}

	return &ticket, nil
}

// AppendResponse pushes one response onto the thread and applies the status
// and timestamp side effects in the same single-document write.
func (r *Repository) AppendResponse(ctx context.Context, id string, resp Response, now time.Time) error {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return apperrors.NotFound("ticket")
	}

	result, err := r.collection.UpdateOne(
		ctx,
		bson.M{"_id": objectID},
		bson.M{
			"$push": bson.M{"responses": resp},
			"$set":  responseSideEffects(now),
		},
	)

	if err != nil {
		return apperrors.Store(err)
	}

	if result.MatchedCount == 0 {
		return apperrors.NotFound("ticket")
	}

	return nil
}

func (r *Repository) Update(ctx context.Context, id string, fields bson.M) error {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return apperrors.NotFound("ticket")
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
		return apperrors.NotFound("ticket")
	}

	return nil
}
