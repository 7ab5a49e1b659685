// internal/domain/models/userprofile.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// UserProfile links a verified identity-provider subject to a university.
// It is distinct from Card: a profile is created once at signup, before
// the student has submitted any portfolio card.
type UserProfile struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	SubjectID  string             `bson:"subject_id" json:"subject_id"`
	Email      string             `bson:"email" json:"email"`
	University string             `bson:"university" json:"university"`
	CreatedAt  time.Time          `bson:"created_at" json:"created_at"`
}
