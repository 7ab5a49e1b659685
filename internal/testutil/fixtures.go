package testutil

import (
	"context"
	"testing"
	"time"

	"github.com/bmitrev/campusfolio/internal/app/system/normalize"
	"github.com/bmitrev/campusfolio/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/text"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// Fixtures provides helper methods for creating test data.
type Fixtures struct {
	db *mongo.Database
	t  *testing.T
}

// NewFixtures creates a new Fixtures instance for the given test database.
func NewFixtures(t *testing.T, db *mongo.Database) *Fixtures {
	t.Helper()
	return &Fixtures{db: db, t: t}
}

// DB returns the underlying database for direct access in tests.
func (f *Fixtures) DB() *mongo.Database {
	return f.db
}

// CreateCard inserts a card with sensible defaults. createdAt lets
// tests control feed ordering.
func (f *Fixtures) CreateCard(ctx context.Context, fullName, email, university, program, year string, createdAt time.Time) models.Card {
	f.t.Helper()

	card := models.Card{
		ID:         primitive.NewObjectID(),
		Email:      email,
		EmailCI:    text.Fold(normalize.Email(email)),
		FullName:   fullName,
		Initials:   normalize.Initials(fullName),
		University: university,
		Program:    program,
		Year:       year,
		Bio:        "Test bio",
		Skills:     "Go, MongoDB",
		CreatedAt:  createdAt.UTC(),
	}

	_, err := f.db.Collection("cards").InsertOne(ctx, card)
	if err != nil {
		f.t.Fatalf("failed to create test card: %v", err)
	}

	return card
}

// CreateProfile inserts a user profile for a verified subject.
func (f *Fixtures) CreateProfile(ctx context.Context, subjectID, email, university string) models.UserProfile {
	f.t.Helper()

	p := models.UserProfile{
		ID:         primitive.NewObjectID(),
		SubjectID:  subjectID,
		Email:      normalize.Email(email),
		University: university,
		CreatedAt:  time.Now().UTC(),
	}

	_, err := f.db.Collection("user_profiles").InsertOne(ctx, p)
	if err != nil {
		f.t.Fatalf("failed to create test profile: %v", err)
	}

	return p
}
