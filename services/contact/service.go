package contact

import (
	"context"
	"fmt"
	"strings"
	"time"

	"palmcove/database/repository"
	"palmcove/models"
	"palmcove/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type ContactService interface {
	Submit(ctx context.Context, input models.ContactInput) (*models.Contact, error)
	List(ctx context.Context) ([]models.Contact, error)
}

// DefaultContactService stores contact form messages.
type DefaultContactService struct {
	Store  repository.Store
	Logger *zap.Logger
	Clock  func() time.Time
}

func NewContactService(store repository.Store, logger *zap.Logger) *DefaultContactService {
	return &DefaultContactService{Store: store, Logger: logger, Clock: time.Now}
}

// Submit validates and stores a message. Validation failures are *utils.ValidationError.
func (s *DefaultContactService) Submit(ctx context.Context, input models.ContactInput) (*models.Contact, error) {
	input.Name = strings.TrimSpace(input.Name)
	input.Email = strings.TrimSpace(input.Email)
	input.Subject = strings.TrimSpace(input.Subject)
	input.Message = strings.TrimSpace(input.Message)

	if err := utils.ValidateStruct(input); err != nil {
		return nil, err
	}

	c := &models.Contact{
		ID:        uuid.NewString(),
		Name:      input.Name,
		Email:     input.Email,
		Subject:   input.Subject,
		Message:   input.Message,
		CreatedAt: s.Clock(),
	}
	if err := s.Store.CreateContact(ctx, c); err != nil {
		return nil, fmt.Errorf("failed to save contact: %w", err)
	}

	s.Logger.Info("Contact message received", zap.String("id", c.ID), zap.String("subject", c.Subject))
	return c, nil
}

func (s *DefaultContactService) List(ctx context.Context) ([]models.Contact, error) {
	contacts, err := s.Store.GetContacts(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list contacts: %w", err)
	}
	return contacts, nil
}
