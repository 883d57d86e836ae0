// internal/app/store/convenios/conveniostore.go
package conveniostore

import (
	"context"
	"errors"
	"regexp"
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

var ErrNotFound = errors.New("convenio not found")

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("convenios")}
}

// Filter narrows List results. Zero value lists all active convenios.
type Filter struct {
	Category        string // exact category ID; empty or "all" matches every category
	Search          string // case-insensitive substring of the name
	IncludeInactive bool
}

// Create inserts a new convenio, setting NameCI and timestamps.
func (s *Store) Create(ctx context.Context, c models.Convenio) (models.Convenio, error) {
	now := time.Now().UTC()

	c.ID = primitive.NewObjectID()
	c.Name = strings.TrimSpace(c.Name)
	c.NameCI = text.Fold(c.Name)
	c.CreatedAt = now
	c.UpdatedAt = &now

	if c.Name == "" {
		return models.Convenio{}, mongo.CommandError{Message: "name is required"}
	}
	if !models.IsConvenioCategory(c.Category) {
		return models.Convenio{}, mongo.CommandError{Message: "unknown convenio category"}
	}
	if strings.TrimSpace(c.ShortText) == "" {
		return models.Convenio{}, mongo.CommandError{Message: "short_text is required"}
	}

	if _, err := s.c.InsertOne(ctx, c); err != nil {
		return models.Convenio{}, err
	}
	return c, nil
}

// Update modifies mutable fields and refreshes UpdatedAt.
func (s *Store) Update(ctx context.Context, id primitive.ObjectID, mut models.Convenio) error {
	set := bson.M{}

	if name := strings.TrimSpace(mut.Name); name != "" {
		set["name"] = name
		set["name_ci"] = text.Fold(name)
	}
	if mut.Category != "" {
		if !models.IsConvenioCategory(mut.Category) {
			return mongo.CommandError{Message: "unknown convenio category"}
		}
		set["category"] = mut.Category
	}
	if strings.TrimSpace(mut.ShortText) != "" {
		set["short_text"] = mut.ShortText
	}

	// Long text, image, address, benefits and social links can be cleared.
	set["long_text"] = mut.LongText
	set["image_url"] = mut.ImageURL
	set["address"] = mut.Address
	set["benefits"] = mut.Benefits
	set["social"] = mut.Social

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

// GetByID returns a convenio by its ID.
func (s *Store) GetByID(ctx context.Context, id primitive.ObjectID) (models.Convenio, error) {
	var c models.Convenio
	err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&c)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.Convenio{}, ErrNotFound
	}
	if err != nil {
		return models.Convenio{}, err
	}
	return c, nil
}

// SetActive toggles a convenio in or out of the public listing without
// deleting it.
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

// Delete removes a convenio by ID. Returns the number of documents deleted (0 or 1).
func (s *Store) Delete(ctx context.Context, id primitive.ObjectID) (int64, error) {
	res, err := s.c.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}

// List returns convenios matching the filter, sorted by folded name.
func (s *Store) List(ctx context.Context, f Filter) ([]models.Convenio, error) {
	q := bson.M{}
	if !f.IncludeInactive {
		q["active"] = true
	}
	if f.Category != "" && f.Category != models.CategoryAll {
		q["category"] = f.Category
	}
	if term := strings.TrimSpace(f.Search); term != "" {
		q["name_ci"] = bson.M{"$regex": regexp.QuoteMeta(text.Fold(term))}
	}

	find := options.Find().SetSort(bson.D{{Key: "name_ci", Value: 1}})
	cur, err := s.c.Find(ctx, q, find)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []models.Convenio
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Count returns the number of convenios matching the filter.
func (s *Store) Count(ctx context.Context, f Filter) (int64, error) {
	q := bson.M{}
	if !f.IncludeInactive {
		q["active"] = true
	}
	if f.Category != "" && f.Category != models.CategoryAll {
		q["category"] = f.Category
	}
	return s.c.CountDocuments(ctx, q)
}
