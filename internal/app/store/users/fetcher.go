// internal/app/store/users/fetcher.go
package userstore

import (
	"context"
	"errors"

	"github.com/ceitm/platform/internal/app/system/auth"
	"github.com/ceitm/platform/internal/app/system/timeouts"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Fetcher implements auth.UserFetcher so LoadSessionUser refreshes role and
// area from the database on each request.
type Fetcher struct {
	users *mongo.Collection
}

// NewFetcher creates a UserFetcher that queries the given database.
func NewFetcher(db *mongo.Database) *Fetcher {
	return &Fetcher{users: db.Collection("users")}
}

// FetchSessionUser retrieves a user by ID. A (nil, nil) return means the
// user no longer exists or is inactive; a non-nil error means the lookup
// itself failed and the caller should fall back to cached session data.
func (f *Fetcher) FetchSessionUser(ctx context.Context, userID string) (*auth.SessionUser, error) {
	oid, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		// Malformed cookie data, treat as signed out.
		return nil, nil
	}

	ctx, cancel := context.WithTimeout(ctx, timeouts.Short())
	defer cancel()

	var u struct {
		ID       primitive.ObjectID `bson:"_id"`
		Email    string             `bson:"email"`
		FullName string             `bson:"full_name"`
		Role     string             `bson:"role"`
		AreaID   string             `bson:"area_id"`
		Active   bool               `bson:"active"`
	}
	proj := options.FindOne().SetProjection(bson.M{
		"_id":       1,
		"email":     1,
		"full_name": 1,
		"role":      1,
		"area_id":   1,
		"active":    1,
	})

	err = f.users.FindOne(ctx, bson.M{"_id": oid}, proj).Decode(&u)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if !u.Active {
		return nil, nil
	}

	return &auth.SessionUser{
		ID:     u.ID.Hex(),
		Name:   u.FullName,
		Email:  u.Email,
		Role:   u.Role,
		AreaID: u.AreaID,
	}, nil
}
