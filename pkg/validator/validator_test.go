package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Email  string  `json:"email" validate:"required,email"`
	Status *string `json:"status" validate:"omitempty,oneof=active paused"`
	Score  *int    `json:"score" validate:"omitempty,gte=0,lte=100"`
}

func TestValidate_ReportsJSONFieldNames(t *testing.T) {
	v := NewValidator()
	status := "archived"
	score := 101

	err := v.Validate(&sample{Email: "nope", Status: &status, Score: &score})
	require.Error(t, err)

	errs := v.FormatValidationErrors(err)
	assert.Equal(t, "email must be a valid email address", errs["email"])
	assert.Equal(t, "status must be one of: active paused", errs["status"])
	assert.Equal(t, "score must be less than or equal to 100", errs["score"])
}

func TestValidate_OptionalPointersSkipped(t *testing.T) {
	v := NewValidator()
	assert.NoError(t, v.Validate(&sample{Email: "jane@example.com"}))
}
