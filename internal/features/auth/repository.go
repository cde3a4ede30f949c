// ================== internal/features/auth/repository.go ==================
package auth

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	apperrors "github.com/xyz-asif/campusfix/pkg/errors"
)

type Repository struct {
	collection *mongo.Collection
}

func NewRepository(db *mongo.Database) *Repository {
	return &Repository{collection: db.Collection("users")}
}

// GetAdminByEmail resolves an admin account by email.
func (r *Repository) GetAdminByEmail(ctx context.Context, email string) (*Admin, error) {
	var admin Admin
	err := r.collection.FindOne(ctx, bson.M{
		"email": email,
		"role":  "admin",
	}).Decode(&admin)

	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, apperrors.NotFound("admin")
		}
		return nil, apperrors.Store(err)
	}

	return &admin, nil
}

// GetAdminByID resolves an admin account by id.
func (r *Repository) GetAdminByID(ctx context.Context, id string) (*Admin, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, apperrors.NotFound("admin")
	}

	var admin Admin
	err = r.collection.FindOne(ctx, bson.M{
		"_id":  objectID,
		"role": "admin",
	}).Decode(&admin)

	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, apperrors.NotFound("admin")
		}
		return nil, apperrors.Store(err)
	}

	return &admin, nil
}

// TouchLogin stamps lastLoginAt. Failures are not fatal to login.
func (r *Repository) TouchLogin(ctx context.Context, id primitive.ObjectID, now time.Time) error {
	_, err := r.collection.UpdateOne(ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"lastLoginAt": now}},
	)
	if err != nil {
		return apperrors.Store(err)
	}
	return nil
}
