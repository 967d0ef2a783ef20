package mongoRepo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ensureIndexes creates indexes for fields frequently used in queries.
func (s *MongoStore) ensureIndexes(ctx context.Context) error {
	ctx, cancel := newContext(ctx, 10*time.Second)
	defer cancel()

	bookingIndexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "email_lower", Value: 1}, {Key: "check_in", Value: 1}}},
	}
	if _, err := s.bookings.Indexes().CreateMany(ctx, bookingIndexes); err != nil {
		return fmt.Errorf("failed to create booking indexes: %w", err)
	}

	uniqueID := mongo.IndexModel{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)}
	if _, err := s.contacts.Indexes().CreateOne(ctx, uniqueID); err != nil {
		return fmt.Errorf("failed to create contact indexes: %w", err)
	}
	if _, err := s.rooms.Indexes().CreateOne(ctx, uniqueID); err != nil {
		return fmt.Errorf("failed to create room indexes: %w", err)
	}
	return nil
}
