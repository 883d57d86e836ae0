// internal/domain/models/convenio.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// PlaceholderImageURL is substituted whenever a record has no image or the
// browser fails to load the one it has. Purely presentational.
const PlaceholderImageURL = "/static/images/placeholder.png"

// SocialLinks holds the optional external channels of a partner business.
// An absent entry means the corresponding affordance is not rendered.
type SocialLinks struct {
	Web       string `bson:"web,omitempty" json:"web,omitempty"`
	Facebook  string `bson:"facebook,omitempty" json:"facebook,omitempty"`
	Instagram string `bson:"instagram,omitempty" json:"instagram,omitempty"`
}

// Convenio is a partner-business discount/benefit agreement shown in the
// public directory.
type Convenio struct {
	ID     primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name   string             `bson:"name" json:"name"`
	NameCI string             `bson:"name_ci" json:"name_ci"` // lowercase, diacritics-stripped

	// Category SHOULD be one of the known convenio category identifiers.
	// Unknown values are kept as-is: they show under "all" but never match
	// a specific-category filter.
	Category string `bson:"category" json:"category"`

	ShortText string `bson:"short_text" json:"short_text"`
	LongText  string `bson:"long_text,omitempty" json:"long_text,omitempty"`
	ImageURL  string `bson:"image_url,omitempty" json:"image_url,omitempty"`
	Address   string `bson:"address,omitempty" json:"address,omitempty"`

	// Benefits is the ordered list of concrete perks the agreement grants.
	// May be empty in storage; the editing surface always presents at least
	// one editable slot.
	Benefits []string `bson:"benefits,omitempty" json:"benefits,omitempty"`

	Social SocialLinks `bson:"social,omitempty" json:"social,omitempty"`

	Active    bool       `bson:"active" json:"active"`
	CreatedAt time.Time  `bson:"created_at" json:"created_at"`
	UpdatedAt *time.Time `bson:"updated_at,omitempty" json:"updated_at,omitempty"`
}

// EntityName implements listing.Entity.
func (c Convenio) EntityName() string { return c.Name }

// EntityCategory implements listing.Entity.
func (c Convenio) EntityCategory() string { return c.Category }

// DisplayImageURL returns the image URL or the placeholder when absent.
func (c Convenio) DisplayImageURL() string {
	if c.ImageURL == "" {
		return PlaceholderImageURL
	}
	return c.ImageURL
}
