package staff

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
	collection := db.Collection("users")

	collection.Indexes().CreateMany(context.Background(), []mongo.IndexModel{
		{Keys: bson.D{{Key: "role", Value: 1}}},
		{Keys: bson.D{{Key: "email", Value: 1}}},
	})

	return &Repository{collection: collection}
}

// List returns every user with role "staff", sorted by display name.
func (r *Repository) List(ctx context.Context) ([]Member, error) {
	opts := options.Find().SetSort(bson.D{{Key: "displayName", Value: 1}})

	cursor, err := r.collection.Find(ctx, bson.M{"role": "staff"}, opts)
	if err != nil {
		return nil, apperrors.Store(err)
	}
	defer cursor.Close(ctx)

	var members []Member
	if err := cursor.All(ctx, &members); err != nil {
		return nil, apperrors.Store(err)
	}

	if members == nil {
		members = []Member{}
	}

	return members, nil
}

// GetByID resolves a staff member by id. Returns ErrNotFound when the id
// does not resolve to a user with role "staff".
func (r *Repository) GetByID(ctx context.Context, id string) (*Member, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, apperrors.NotFound("staff member")
	}

	var member Member
	err = r.collection.FindOne(ctx, bson.M{
		"_id":  objectID,
		"role": "staff",
	}).Decode(&member)

	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, apperrors.NotFound("staff member")
		}
		return nil, apperrors.Store(err)
	}

	return &member, nil
}
