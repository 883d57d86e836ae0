// internal/domain/models/member.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Council role identifiers, ordered by hierarchy.
const (
	RoleAdminSys    = "admin_sys"   // superuser / platform maintainer
	RoleEstructura  = "estructura"  // mesa directiva seat holder
	RoleCoordinador = "coordinador" // head of an operative coordination
	RoleConcejal    = "concejal"    // career representative (voice and vote)
	RoleVocal       = "vocal"       // operational support
)

// RepresentativeRoles are the roles eligible to represent an area in the
// structure modal. First eligible member in roster order wins.
var RepresentativeRoles = []string{RoleCoordinador, RoleEstructura, RoleVocal}

// IsRepresentativeRole reports whether role may represent an area.
func IsRepresentativeRole(role string) bool {
	for _, r := range RepresentativeRoles {
		if r == role {
			return true
		}
	}
	return false
}

// CouncilMember is a roster entry: a person serving on the student council.
// Created and updated from the admin subsystem; read-only from the public
// pages and the area resolver.
type CouncilMember struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	FullName   string             `bson:"full_name" json:"full_name"`
	FullNameCI string             `bson:"full_name_ci" json:"full_name_ci"`

	Role string `bson:"role" json:"role"`

	// AreaID references a Coordination by identifier and is the primary
	// join key for area resolution. AreaLabel is kept for records imported
	// from the legacy data, where the join was an exact, case-sensitive
	// label match; it is only consulted when AreaID is empty.
	AreaID    string `bson:"area_id,omitempty" json:"area_id,omitempty"`
	AreaLabel string `bson:"area_label,omitempty" json:"area_label,omitempty"`

	Career    string `bson:"career,omitempty" json:"career,omitempty"`
	ImageURL  string `bson:"image_url,omitempty" json:"image_url,omitempty"`
	Instagram string `bson:"instagram,omitempty" json:"instagram,omitempty"`
	Phone     string `bson:"phone,omitempty" json:"phone,omitempty"`

	Active    bool      `bson:"active" json:"active"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}

// DisplayImageURL returns the portrait URL or the placeholder when absent.
func (m CouncilMember) DisplayImageURL() string {
	if m.ImageURL == "" {
		return PlaceholderImageURL
	}
	return m.ImageURL
}
