package utils

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Name   string `json:"fullName" validate:"required"`
	Email  string `json:"email,omitempty" validate:"required,email"`
	Guests int    `json:"guests" validate:"min=1"`
}

func TestValidateStructUsesJSONNames(t *testing.T) {
	err := ValidateStruct(sample{Email: "a@b.com", Guests: 1})
	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, "fullName", verr.Field)
	assert.Equal(t, "fullName is required", verr.Error())
}

func TestValidateStructMessages(t *testing.T) {
	err := ValidateStruct(sample{Name: "x", Email: "nope", Guests: 1})
	assert.EqualError(t, err, "email must be a valid email address")

	err = ValidateStruct(sample{Name: "x", Email: "a@b.com", Guests: 0})
	assert.EqualError(t, err, "guests must be at least 1")

	assert.NoError(t, ValidateStruct(sample{Name: "x", Email: "a@b.com", Guests: 2}))
}
