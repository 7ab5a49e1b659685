// internal/app/store/profiles/profilestore.go
package profilestore

import (
	"context"
	"errors"
	"time"

	"github.com/bmitrev/campusfolio/internal/app/system/normalize"
	"github.com/bmitrev/campusfolio/internal/domain/models"
	wafflemongo "github.com/dalemusser/waffle/pantry/mongo"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type Store struct {
	c *mongo.Collection
}

var (
	ErrDuplicateProfile = errors.New("a profile already exists for this user")
	ErrNotFound         = errors.New("profile not found")
)

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("user_profiles")}
}

// Create inserts a profile for a verified subject. The unique index on
// subject_id rejects a second profile for the same identity.
func (s *Store) Create(ctx context.Context, p models.UserProfile) (models.UserProfile, error) {
	p.ID = primitive.NewObjectID()
	p.Email = normalize.Email(p.Email)
	p.CreatedAt = time.Now().UTC()
	_, err := s.c.InsertOne(ctx, p)
	if err != nil {
		if wafflemongo.IsDup(err) {
			return models.UserProfile{}, ErrDuplicateProfile
		}
		return models.UserProfile{}, err
	}
	return p, nil
}

// GetBySubject loads the profile for an identity-provider subject id.
func (s *Store) GetBySubject(ctx context.Context, subjectID string) (models.UserProfile, error) {
	var p models.UserProfile
	err := s.c.FindOne(ctx, bson.M{"subject_id": subjectID}).Decode(&p)
	if err == mongo.ErrNoDocuments {
		return models.UserProfile{}, ErrNotFound
	}
	if err != nil {
		return models.UserProfile{}, err
	}
	return p, nil
}

// ExistsBySubject reports whether the subject already has a profile.
func (s *Store) ExistsBySubject(ctx context.Context, subjectID string) (bool, error) {
	err := s.c.FindOne(ctx, bson.M{"subject_id": subjectID}).Err()
	if err == mongo.ErrNoDocuments {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}
