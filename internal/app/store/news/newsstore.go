// internal/app/store/news/newsstore.go
package newsstore

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/ceitm/platform/internal/domain/models"
	wafflemongo "github.com/dalemusser/waffle/pantry/mongo"
	"github.com/dalemusser/waffle/pantry/text"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type Store struct {
	c *mongo.Collection
}

var ErrNotFound = errors.New("news item not found")

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("noticias")}
}

// Filter narrows List results.
type Filter struct {
	Category        string // exact category ID; empty or "all" matches every category
	IncludeUnlisted bool   // include drafts (published=false)
}

// slugTranslit maps accented letters onto their ASCII slug form.
var slugTranslit = map[rune]rune{
	'á': 'a', 'é': 'e', 'í': 'i', 'ó': 'o', 'ú': 'u', 'ü': 'u', 'ñ': 'n',
}

// Slugify converts a title into a URL slug: lowercased, accents stripped,
// with non-alphanumeric runs collapsed to single hyphens.
func Slugify(title string) string {
	lower := strings.ToLower(title)
	var b strings.Builder
	b.Grow(len(lower))
	lastHyphen := true
	for _, r := range lower {
		if t, ok := slugTranslit[r]; ok {
			r = t
		}
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastHyphen = false
		default:
			if !lastHyphen {
				b.WriteByte('-')
				lastHyphen = true
			}
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}

// Create inserts a news item, generating a unique slug from the title.
// When the base slug is taken, a numeric suffix is appended (titulo,
// titulo-1, titulo-2, ...). The unique index on slug backstops races.
func (s *Store) Create(ctx context.Context, n models.NewsItem) (models.NewsItem, error) {
	now := time.Now().UTC()

	n.ID = primitive.NewObjectID()
	n.Title = strings.TrimSpace(n.Title)
	n.TitleCI = text.Fold(n.Title)
	n.CreatedAt = now
	n.UpdatedAt = now

	if n.Title == "" {
		return models.NewsItem{}, mongo.CommandError{Message: "title is required"}
	}
	if !models.IsNewsCategory(n.Category) {
		return models.NewsItem{}, mongo.CommandError{Message: "unknown news category"}
	}
	if strings.TrimSpace(n.Content) == "" {
		return models.NewsItem{}, mongo.CommandError{Message: "content is required"}
	}

	base := Slugify(n.Title)
	if base == "" {
		base = n.ID.Hex()
	}

	n.Slug = base
	for attempt := 1; ; attempt++ {
		_, err := s.c.InsertOne(ctx, n)
		if err == nil {
			return n, nil
		}
		if !wafflemongo.IsDup(err) {
			return models.NewsItem{}, err
		}
		if attempt > 50 {
			return models.NewsItem{}, fmt.Errorf("could not find a free slug for %q", base)
		}
		n.Slug = fmt.Sprintf("%s-%d", base, attempt)
	}
}

// Update modifies mutable fields and refreshes UpdatedAt. The slug is
// intentionally stable across edits so shared links keep working.
func (s *Store) Update(ctx context.Context, id primitive.ObjectID, mut models.NewsItem) error {
	set := bson.M{}

	if title := strings.TrimSpace(mut.Title); title != "" {
		set["title"] = title
		set["title_ci"] = text.Fold(title)
	}
	if mut.Category != "" {
		if !models.IsNewsCategory(mut.Category) {
			return mongo.CommandError{Message: "unknown news category"}
		}
		set["category"] = mut.Category
	}
	if strings.TrimSpace(mut.Content) != "" {
		set["content"] = mut.Content
	}

	// Excerpt and media URLs can be cleared.
	set["excerpt"] = mut.Excerpt
	set["image_url"] = mut.ImageURL
	set["video_url"] = mut.VideoURL

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

// SetPublished toggles a news item in or out of the public listing.
func (s *Store) SetPublished(ctx context.Context, id primitive.ObjectID, published bool) error {
	now := time.Now().UTC()
	res, err := s.c.UpdateByID(ctx, id, bson.M{"$set": bson.M{
		"published":  published,
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

// GetByID returns a news item by its ID.
func (s *Store) GetByID(ctx context.Context, id primitive.ObjectID) (models.NewsItem, error) {
	var n models.NewsItem
	err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&n)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.NewsItem{}, ErrNotFound
	}
	if err != nil {
		return models.NewsItem{}, err
	}
	return n, nil
}

// GetBySlug returns a published news item by its slug.
func (s *Store) GetBySlug(ctx context.Context, slug string) (models.NewsItem, error) {
	var n models.NewsItem
	err := s.c.FindOne(ctx, bson.M{"slug": slug, "published": true}).Decode(&n)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.NewsItem{}, ErrNotFound
	}
	if err != nil {
		return models.NewsItem{}, err
	}
	return n, nil
}

// List returns news items matching the filter, newest first, applying the
// given skip and limit.
func (s *Store) List(ctx context.Context, f Filter, skip, limit int64) ([]models.NewsItem, error) {
	q := bson.M{}
	if !f.IncludeUnlisted {
		q["published"] = true
	}
	if f.Category != "" && f.Category != models.CategoryAll {
		q["category"] = f.Category
	}

	find := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetSkip(skip)
	if limit > 0 {
		find.SetLimit(limit)
	}

	cur, err := s.c.Find(ctx, q, find)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []models.NewsItem
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Delete removes a news item by ID. Returns the number of documents deleted (0 or 1).
func (s *Store) Delete(ctx context.Context, id primitive.ObjectID) (int64, error) {
	res, err := s.c.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}
