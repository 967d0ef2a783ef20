package mongoRepo

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"palmcove/database/repository"
	"palmcove/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoStore implements repository.Store using MongoDB.
type MongoStore struct {
	db       *mongo.Database
	bookings *mongo.Collection
	contacts *mongo.Collection
	rooms    *mongo.Collection
}

var _ repository.Store = (*MongoStore)(nil)

// NewMongoStore ensures indexes and seeds the room catalog when it is empty.
func NewMongoStore(ctx context.Context, db *mongo.Database, rooms []models.Room) (*MongoStore, error) {
	s := &MongoStore{
		db:       db,
		bookings: db.Collection("bookings"),
		contacts: db.Collection("contacts"),
		rooms:    db.Collection("rooms"),
	}
	if err := s.ensureIndexes(ctx); err != nil {
		return nil, err
	}
	if err := s.seedRooms(ctx, rooms); err != nil {
		return nil, err
	}
	return s, nil
}

// newContext derives a context with the given timeout.
func newContext(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, timeout)
}

func (s *MongoStore) seedRooms(ctx context.Context, rooms []models.Room) error {
	ctx, cancel := newContext(ctx, 10*time.Second)
	defer cancel()

	count, err := s.rooms.CountDocuments(ctx, bson.M{})
	if err != nil {
		return fmt.Errorf("failed to count rooms: %w", err)
	}
	if count > 0 || len(rooms) == 0 {
		return nil
	}

	docs := make([]interface{}, len(rooms))
	for i, r := range rooms {
		docs[i] = r
	}
	if _, err := s.rooms.InsertMany(ctx, docs); err != nil {
		return fmt.Errorf("failed to seed rooms: %w", err)
	}
	return nil
}

func (s *MongoStore) CreateBooking(ctx context.Context, b *models.Booking) error {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	doc := *b
	doc.EmailLower = strings.ToLower(b.Email)
	if _, err := s.bookings.InsertOne(ctx, doc); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return fmt.Errorf("booking %s: %w", b.ID, repository.ErrDuplicateID)
		}
		return fmt.Errorf("failed to create booking: %w", err)
	}
	return nil
}

func (s *MongoStore) GetBookings(ctx context.Context) ([]models.Booking, error) {
	return s.findBookings(ctx, bson.M{})
}

func (s *MongoStore) GetBookingsByEmail(ctx context.Context, email string) ([]models.Booking, error) {
	return s.findBookings(ctx, bson.M{"email_lower": strings.ToLower(email)})
}

func (s *MongoStore) findBookings(ctx context.Context, filter bson.M) ([]models.Booking, error) {
	ctx, cancel := newContext(ctx, 10*time.Second)
	defer cancel()

	// _id is an ObjectID, so sorting on it follows insertion order.
	opts := options.Find().SetSort(bson.D{{Key: "_id", Value: 1}})
	cursor, err := s.bookings.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve bookings: %w", err)
	}
	defer cursor.Close(ctx)

	bookings := make([]models.Booking, 0)
	for cursor.Next(ctx) {
		var b models.Booking
		if err := cursor.Decode(&b); err != nil {
			return nil, fmt.Errorf("failed to decode booking: %w", err)
		}
		bookings = append(bookings, b)
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate bookings: %w", err)
	}
	return bookings, nil
}

func (s *MongoStore) GetBooking(ctx context.Context, id string) (*models.Booking, error) {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	var b models.Booking
	if err := s.bookings.FindOne(ctx, bson.M{"id": id}).Decode(&b); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("booking %s: %w", id, repository.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to fetch booking with id %s: %w", id, err)
	}
	return &b, nil
}

func (s *MongoStore) CancelBooking(ctx context.Context, id string, c models.Cancellation) (*models.Booking, error) {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"id": id, "status": models.StatusConfirmed}
	update := bson.M{"$set": bson.M{"status": models.StatusCancelled, "cancellation": c}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var b models.Booking
	err := s.bookings.FindOneAndUpdate(ctx, filter, update, opts).Decode(&b)
	if err == nil {
		return &b, nil
	}
	if !errors.Is(err, mongo.ErrNoDocuments) {
		return nil, fmt.Errorf("failed to cancel booking with id %s: %w", id, err)
	}

	// Nothing matched: either the booking is missing or it is no longer confirmed.
	current, getErr := s.GetBooking(ctx, id)
	if getErr != nil {
		return nil, getErr
	}
	return nil, fmt.Errorf("booking %s is %s: %w", id, current.Status, repository.ErrStatusConflict)
}

func (s *MongoStore) CreateContact(ctx context.Context, c *models.Contact) error {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	if _, err := s.contacts.InsertOne(ctx, c); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return fmt.Errorf("contact %s: %w", c.ID, repository.ErrDuplicateID)
		}
		return fmt.Errorf("failed to create contact: %w", err)
	}
	return nil
}

func (s *MongoStore) GetContacts(ctx context.Context) ([]models.Contact, error) {
	ctx, cancel := newContext(ctx, 10*time.Second)
	defer cancel()

	cursor, err := s.contacts.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "_id", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve contacts: %w", err)
	}
	defer cursor.Close(ctx)

	contacts := make([]models.Contact, 0)
	if err := cursor.All(ctx, &contacts); err != nil {
		return nil, fmt.Errorf("failed to decode contacts: %w", err)
	}
	return contacts, nil
}

func (s *MongoStore) GetRooms(ctx context.Context) ([]models.Room, error) {
	ctx, cancel := newContext(ctx, 10*time.Second)
	defer cancel()

	cursor, err := s.rooms.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "id", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve rooms: %w", err)
	}
	defer cursor.Close(ctx)

	rooms := make([]models.Room, 0)
	if err := cursor.All(ctx, &rooms); err != nil {
		return nil, fmt.Errorf("failed to decode rooms: %w", err)
	}
	return rooms, nil
}

func (s *MongoStore) GetRoom(ctx context.Context, id int) (*models.Room, error) {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	var r models.Room
	if err := s.rooms.FindOne(ctx, bson.M{"id": id}).Decode(&r); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("room %d: %w", id, repository.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to fetch room with id %d: %w", id, err)
	}
	return &r, nil
}

func (s *MongoStore) Ping(ctx context.Context) error {
	ctx, cancel := newContext(ctx, 2*time.Second)
	defer cancel()
	return s.db.Client().Ping(ctx, nil)
}
