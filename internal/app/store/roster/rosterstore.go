// internal/app/store/roster/rosterstore.go
package rosterstore

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/ceitm/platform/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/text"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type Store struct {
	c *mongo.Collection
}

var ErrNotFound = errors.New("council member not found")

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("council_members")}
}

// Filter narrows List results.
type Filter struct {
	Role            string
	AreaID          string
	IncludeInactive bool
}

// Create inserts a council member, setting FullNameCI and timestamps.
func (s *Store) Create(ctx context.Context, m models.CouncilMember) (models.CouncilMember, error) {
	now := time.Now().UTC()

	m.ID = primitive.NewObjectID()
	m.FullName = strings.TrimSpace(m.FullName)
	m.FullNameCI = text.Fold(m.FullName)
	m.CreatedAt = now
	m.UpdatedAt = now

	if m.FullName == "" {
		return models.CouncilMember{}, mongo.CommandError{Message: "full_name is required"}
	}
	if m.Role == "" {
		return models.CouncilMember{}, mongo.CommandError{Message: "role is required"}
	}

	if _, err := s.c.InsertOne(ctx, m); err != nil {
		return models.CouncilMember{}, err
	}
	return m, nil
}

// Update modifies mutable fields and refreshes UpdatedAt.
func (s *Store) Update(ctx context.Context, id primitive.ObjectID, mut models.CouncilMember) error {
	set := bson.M{}

	if name := strings.TrimSpace(mut.FullName); name != "" {
		set["full_name"] = name
		set["full_name_ci"] = text.Fold(name)
	}
	if mut.Role != "" {
		set["role"] = mut.Role
	}

	// Area, career, image and contact fields can be cleared.
	set["area_id"] = mut.AreaID
	set["area_label"] = mut.AreaLabel
	set["career"] = mut.Career
	set["image_url"] = mut.ImageURL
	set["instagram"] = mut.Instagram
	set["phone"] = mut.Phone

	now := time.Now().UTC()
	set["updated_at"] = now

	res, err := s.c.UpdateByID(ctx, id, bson.M{"$set": set})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// GetByID returns a council member by ID.
func (s *Store) GetByID(ctx context.Context, id primitive.ObjectID) (models.CouncilMember, error) {
	var m models.CouncilMember
	err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&m)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.CouncilMember{}, ErrNotFound
	}
	if err != nil {
		return models.CouncilMember{}, err
	}
	return m, nil
}

// SetActive toggles a member in or out of the public roster.
func (s *Store) SetActive(ctx context.Context, id primitive.ObjectID, active bool) error {
	now := time.Now().UTC()
	res, err := s.c.UpdateByID(ctx, id, bson.M{"$set": bson.M{
		"active":     active,
		"updated_at": now,
	}})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes a council member by ID. Returns the number of documents
// deleted (0 or 1).
func (s *Store) Delete(ctx context.Context, id primitive.ObjectID) (int64, error) {
	res, err := s.c.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}

// List returns council members matching the filter in roster order.
// Roster order is insertion order (by _id), so coordinator resolution is
// deterministic when an area has more than one eligible member.
func (s *Store) List(ctx context.Context, f Filter) ([]models.CouncilMember, error) {
	q := bson.M{}
	if !f.IncludeInactive {
		q["active"] = true
	}
	if f.Role != "" {
		q["role"] = f.Role
	}
	if f.AreaID != "" {
		q["area_id"] = f.AreaID
	}

	find := options.Find().SetSort(bson.D{{Key: "_id", Value: 1}})
	cur, err := s.c.Find(ctx, q, find)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []models.CouncilMember
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}
