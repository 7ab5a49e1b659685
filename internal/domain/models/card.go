// internal/domain/models/card.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Card is a single student's portfolio record.
//
// Email is the dedupe key: one card per email address, enforced by a
// unique index on email_ci. The client may send a timestamp in "id"
// (ClientID here); it is a display hint only. The ObjectID assigned by
// the store is the authoritative identifier.
type Card struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	ClientID int64              `bson:"client_id,omitempty" json:"id,omitempty"`

	Email    string `bson:"email" json:"email"`
	EmailCI  string `bson:"email_ci" json:"-"` // folded dedupe key (case/diacritic insensitive)
	FullName string `bson:"full_name" json:"fullName"`
	Initials string `bson:"initials" json:"initials"`

	University string `bson:"university" json:"university"`
	Program    string `bson:"program" json:"program"`
	Year       string `bson:"year" json:"year"`
	Bio        string `bson:"bio,omitempty" json:"bio,omitempty"`
	Skills     string `bson:"skills,omitempty" json:"skills,omitempty"` // comma-separated

	ProjectTitle       string `bson:"project_title,omitempty" json:"projectTitle,omitempty"`
	ProjectDescription string `bson:"project_description,omitempty" json:"projectDescription,omitempty"`

	LinkedIn  string `bson:"linkedin,omitempty" json:"linkedin,omitempty"`
	GitHub    string `bson:"github,omitempty" json:"github,omitempty"`
	Instagram string `bson:"instagram,omitempty" json:"instagram,omitempty"`
	Twitter   string `bson:"twitter,omitempty" json:"twitter,omitempty"`

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
}
