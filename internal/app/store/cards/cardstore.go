// internal/app/store/cards/cardstore.go
package cardstore

import (
	"context"
	"errors"
	"time"

	"github.com/bmitrev/campusfolio/internal/app/system/normalize"
	"github.com/bmitrev/campusfolio/internal/domain/models"
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

var (
	ErrDuplicateCard = errors.New("a card with this email already exists")
	ErrNotFound      = errors.New("card not found")
)

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("cards")}
}

// Create inserts a new card, assigning its ObjectID, CreatedAt and the
// folded email key. The unique index on email_ci makes the insert the
// atomic duplicate guard: concurrent creates for the same email cannot
// both succeed.
func (s *Store) Create(ctx context.Context, card models.Card) (models.Card, error) {
	card.ID = primitive.NewObjectID()
	card.EmailCI = text.Fold(normalize.Email(card.Email))
	card.CreatedAt = time.Now().UTC()
	_, err := s.c.InsertOne(ctx, card)
	if err != nil {
		if wafflemongo.IsDup(err) {
			return models.Card{}, ErrDuplicateCard
		}
		return models.Card{}, err
	}
	return card, nil
}

// List returns all cards newest-first.
func (s *Store) List(ctx context.Context) ([]models.Card, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}, {Key: "_id", Value: -1}})
	cur, err := s.c.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	cards := []models.Card{}
	if err := cur.All(ctx, &cards); err != nil {
		return nil, err
	}
	return cards, nil
}

// GetByEmail looks up a card by its folded email key, so lookups are
// case and diacritic insensitive.
func (s *Store) GetByEmail(ctx context.Context, email string) (models.Card, error) {
	var card models.Card
	err := s.c.FindOne(ctx, bson.M{"email_ci": text.Fold(normalize.Email(email))}).Decode(&card)
	if err == mongo.ErrNoDocuments {
		return models.Card{}, ErrNotFound
	}
	if err != nil {
		return models.Card{}, err
	}
	return card, nil
}

// ExistsByEmail reports whether a card exists for the email. Used as
// the pre-insert check that turns duplicates into a 409 before the
// sanitize/persist work runs.
func (s *Store) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	err := s.c.FindOne(ctx, bson.M{"email_ci": text.Fold(normalize.Email(email))}).Err()
	if err == mongo.ErrNoDocuments {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// Count returns the number of cards matching the given filter.
func (s *Store) Count(ctx context.Context, filter bson.M) (int64, error) {
	return s.c.CountDocuments(ctx, filter)
}
