// internal/domain/models/user.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// DefaultSiteName is used when no site settings are configured.
const DefaultSiteName = "CEITM"

// User is an account that can sign in to the admin surface. Public pages
// never require a User; the roster is modeled separately as CouncilMember.
type User struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Email      string             `bson:"email" json:"email"`
	FullName   string             `bson:"full_name" json:"full_name"`
	FullNameCI string             `bson:"full_name_ci" json:"full_name_ci"`

	// HashedPassword is a bcrypt hash. Never serialized to JSON.
	HashedPassword string `bson:"hashed_password" json:"-"`

	Role   string `bson:"role" json:"role"`
	AreaID string `bson:"area_id,omitempty" json:"area_id,omitempty"`

	Active    bool      `bson:"active" json:"active"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}
