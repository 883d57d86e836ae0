// internal/domain/models/news.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// NewsItem is a council announcement shown on the noticias pages.
// Content is HTML, sanitized before storage.
type NewsItem struct {
	ID      primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title   string             `bson:"title" json:"title"`
	TitleCI string             `bson:"title_ci" json:"title_ci"`

	// Slug is the unique URL key, derived from the title at creation time.
	Slug string `bson:"slug" json:"slug"`

	Category string `bson:"category" json:"category"`
	Excerpt  string `bson:"excerpt" json:"excerpt"`
	Content  string `bson:"content" json:"content"`

	ImageURL string `bson:"image_url,omitempty" json:"image_url,omitempty"`
	VideoURL string `bson:"video_url,omitempty" json:"video_url,omitempty"`

	Published bool                `bson:"published" json:"published"`
	AuthorID  *primitive.ObjectID `bson:"author_id,omitempty" json:"author_id,omitempty"`

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}

// EntityName implements listing.Entity.
func (n NewsItem) EntityName() string { return n.Title }

// EntityCategory implements listing.Entity.
func (n NewsItem) EntityCategory() string { return n.Category }

// DisplayImageURL returns the image URL or the placeholder when absent.
func (n NewsItem) DisplayImageURL() string {
	if n.ImageURL == "" {
		return PlaceholderImageURL
	}
	return n.ImageURL
}
