package memoryRepo

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"palmcove/database/repository"
	"palmcove/models"
)

// MemoryStore implements repository.Store with in-process maps.
// Contents are lost when the process exits.
type MemoryStore struct {
	mu       sync.RWMutex
	bookings map[string]*models.Booking
	order    []string // booking ids in insertion order
	contacts []models.Contact
	rooms    []models.Room
}

// NewMemoryStore creates a store seeded with the given room catalog.
func NewMemoryStore(rooms []models.Room) *MemoryStore {
	seeded := make([]models.Room, len(rooms))
	for i, r := range rooms {
		seeded[i] = copyRoom(r)
	}
	return &MemoryStore{
		bookings: make(map[string]*models.Booking),
		rooms:    seeded,
	}
}

var _ repository.Store = (*MemoryStore)(nil)

func (s *MemoryStore) CreateBooking(_ context.Context, b *models.Booking) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.bookings[b.ID]; exists {
		return fmt.Errorf("booking %s: %w", b.ID, repository.ErrDuplicateID)
	}
	stored := copyBooking(*b)
	stored.EmailLower = strings.ToLower(stored.Email)
	s.bookings[b.ID] = &stored
	s.order = append(s.order, b.ID)
	return nil
}

func (s *MemoryStore) GetBookings(_ context.Context) ([]models.Booking, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Booking, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, copyBooking(*s.bookings[id]))
	}
	return out, nil
}

func (s *MemoryStore) GetBookingsByEmail(_ context.Context, email string) ([]models.Booking, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	needle := strings.ToLower(email)
	out := make([]models.Booking, 0)
	for _, id := range s.order {
		b := s.bookings[id]
		if b.EmailLower == needle {
			out = append(out, copyBooking(*b))
		}
	}
	return out, nil
}

func (s *MemoryStore) GetBooking(_ context.Context, id string) (*models.Booking, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	b, ok := s.bookings[id]
	if !ok {
		return nil, fmt.Errorf("booking %s: %w", id, repository.ErrNotFound)
	}
	out := copyBooking(*b)
	return &out, nil
}

func (s *MemoryStore) CancelBooking(_ context.Context, id string, c models.Cancellation) (*models.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	b, ok := s.bookings[id]
	if !ok {
		return nil, fmt.Errorf("booking %s: %w", id, repository.ErrNotFound)
	}
	if b.Status != models.StatusConfirmed {
		return nil, fmt.Errorf("booking %s is %s: %w", id, b.Status, repository.ErrStatusConflict)
	}
	b.Status = models.StatusCancelled
	b.Cancellation = &c

	out := copyBooking(*b)
	return &out, nil
}

func (s *MemoryStore) CreateContact(_ context.Context, c *models.Contact) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.contacts {
		if existing.ID == c.ID {
			return fmt.Errorf("contact %s: %w", c.ID, repository.ErrDuplicateID)
		}
	}
	s.contacts = append(s.contacts, *c)
	return nil
}

func (s *MemoryStore) GetContacts(_ context.Context) ([]models.Contact, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Contact, len(s.contacts))
	copy(out, s.contacts)
	return out, nil
}

func (s *MemoryStore) GetRooms(_ context.Context) ([]models.Room, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Room, len(s.rooms))
	for i, r := range s.rooms {
		out[i] = copyRoom(r)
	}
	return out, nil
}

func (s *MemoryStore) GetRoom(_ context.Context, id int) (*models.Room, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, r := range s.rooms {
		if r.ID == id {
			out := copyRoom(r)
			return &out, nil
		}
	}
	return nil, fmt.Errorf("room %d: %w", id, repository.ErrNotFound)
}

func (s *MemoryStore) Ping(_ context.Context) error {
	return nil
}

func copyBooking(b models.Booking) models.Booking {
	if b.Cancellation != nil {
		c := *b.Cancellation
		b.Cancellation = &c
	}
	return b
}

func copyRoom(r models.Room) models.Room {
	r.Amenities = append([]string(nil), r.Amenities...)
	return r
}
