package contact

import (
	"context"
	"testing"
	"time"

	memoryRepo "palmcove/database/repository/memory"
	"palmcove/models"
	"palmcove/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestSubmitAndList(t *testing.T) {
	svc := NewContactService(memoryRepo.NewMemoryStore(nil), zap.NewNop())
	created := time.Date(2026, 10, 14, 9, 30, 0, 0, time.UTC)
	svc.Clock = func() time.Time { return created }

	c, err := svc.Submit(context.Background(), models.ContactInput{
		Name:    " Ana Ruiz ",
		Email:   "ana@example.com",
		Subject: "Airport transfer",
		Message: "Can you arrange a pickup on arrival?",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, c.ID)
	assert.Equal(t, "Ana Ruiz", c.Name)
	assert.Equal(t, created, c.CreatedAt)

	all, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, c.ID, all[0].ID)
}

func TestSubmitValidation(t *testing.T) {
	svc := NewContactService(memoryRepo.NewMemoryStore(nil), zap.NewNop())
	base := models.ContactInput{Name: "Ana", Email: "ana@example.com", Subject: "Hi", Message: "Is the spa open daily?"}

	tests := []struct {
		name    string
		mutate  func(*models.ContactInput)
		field   string
		message string
	}{
		{"missing name", func(in *models.ContactInput) { in.Name = "" }, "name", "name is required"},
		{"bad email", func(in *models.ContactInput) { in.Email = "ana" }, "email", "email must be a valid email address"},
		{"missing subject", func(in *models.ContactInput) { in.Subject = "  " }, "subject", "subject is required"},
		{"short message", func(in *models.ContactInput) { in.Message = "hello" }, "message", "message must be at least 10 characters"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			input := base
			tc.mutate(&input)

			_, err := svc.Submit(context.Background(), input)
			var verr *utils.ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, tc.field, verr.Field)
			assert.Equal(t, tc.message, verr.Message)
		})
	}

	all, err := svc.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, all)
}
