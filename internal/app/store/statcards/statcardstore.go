// internal/app/store/statcards/statcardstore.go
package statcardstore

import (
	"context"
	"errors"
	"time"

	"github.com/dalemusser/stratacard/internal/app/store/storeutil"
	"github.com/dalemusser/stratacard/internal/domain/models"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// CollectionName is the Mongo collection holding saved cards.
const CollectionName = "stat_cards"

// ErrNotFound is returned when no card has the requested key.
var ErrNotFound = errors.New("stat card not found")

// Store provides access to the stat_cards collection.
type Store struct {
	c *mongo.Collection
}

// New creates a new stat card store.
func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection(CollectionName)}
}

// Create inserts card with a fresh key, appending it after the last position.
// Any ID, Key, Position or timestamps on the argument are ignored.
func (s *Store) Create(ctx context.Context, card models.StatCard) (models.StatCard, error) {
	pos, err := s.nextPosition(ctx)
	if err != nil {
		return models.StatCard{}, err
	}

	now := time.Now().UTC()
	card.ID = primitive.NewObjectID()
	card.Key = uuid.NewString()
	card.Position = pos
	card.CreatedAt = now
	card.UpdatedAt = now

	if _, err := s.c.InsertOne(ctx, card); err != nil {
		return models.StatCard{}, err
	}
	return card, nil
}

func (s *Store) nextPosition(ctx context.Context) (int, error) {
	var last models.StatCard
	opts := options.FindOne().
		SetSort(bson.D{{Key: "position", Value: -1}}).
		SetProjection(bson.M{"position": 1})
	err := s.c.FindOne(ctx, bson.M{}, opts).Decode(&last)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return 1, nil
	}
	if err != nil {
		return 0, err
	}
	return last.Position + 1, nil
}

// GetByKey returns the card with the given key.
func (s *Store) GetByKey(ctx context.Context, key string) (models.StatCard, error) {
	var card models.StatCard
	err := s.c.FindOne(ctx, bson.M{"key": key}).Decode(&card)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.StatCard{}, ErrNotFound
	}
	if err != nil {
		return models.StatCard{}, err
	}
	return card, nil
}

// List returns every card in dashboard order.
func (s *Store) List(ctx context.Context) ([]models.StatCard, error) {
	return s.ListPage(ctx, storeutil.Page{})
}

// ListPage returns one page of cards in dashboard order.
func (s *Store) ListPage(ctx context.Context, page storeutil.Page) ([]models.StatCard, error) {
	opts := options.Find().SetSort(bson.D{{Key: "position", Value: 1}, {Key: "_id", Value: 1}})
	cur, err := s.c.Find(ctx, bson.M{}, page.Apply(opts))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	cards := []models.StatCard{}
	if err := cur.All(ctx, &cards); err != nil {
		return nil, err
	}
	return cards, nil
}

// Update replaces the display fields of the card with the given key.
// Key, position and creation time are preserved.
func (s *Store) Update(ctx context.Context, key string, card models.StatCard) error {
	set := bson.M{
		"title":       card.Title,
		"value":       card.Value,
		"subtitle":    card.Subtitle,
		"icon":        card.Icon,
		"icon_svg":    card.IconSVG,
		"trend":       card.Trend,
		"trend_value": card.TrendValue,
		"variant":     card.Variant,
		"updated_at":  time.Now().UTC(),
	}

	res, err := s.c.UpdateOne(ctx, bson.M{"key": key}, bson.M{"$set": set})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes the card with the given key.
func (s *Store) Delete(ctx context.Context, key string) error {
	res, err := s.c.DeleteOne(ctx, bson.M{"key": key})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// Count returns the number of saved cards.
func (s *Store) Count(ctx context.Context) (int64, error) {
	return s.c.CountDocuments(ctx, bson.M{})
}
