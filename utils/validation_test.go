package utils

import (
	"errors"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
)

func TestFormatValidationError(t *testing.T) {
	type input struct {
		Name      string  `validate:"required"`
		Price     float64 `validate:"gt=0"`
		ServiceID string  `validate:"uuid"`
	}

	err := validator.New().Struct(input{Price: -1, ServiceID: "not-a-uuid"})
	assert.Error(t, err)

	message := FormatValidationError(err)
	assert.Contains(t, message, "name: is required")
	assert.Contains(t, message, "price: must be a positive number")
	assert.Contains(t, message, "service_id: must be a valid identifier")
}

func TestFormatValidationErrorNonValidator(t *testing.T) {
	assert.Equal(t, "Invalid request body", FormatValidationError(errors.New("boom")))
}
