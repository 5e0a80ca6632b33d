package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sampleRequest struct {
	FullName string `json:"fullname" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Role     string `json:"role" validate:"omitempty,oneof=student admin"`
}

func TestValidate_OK(t *testing.T) {
	v := New()

	err := v.Validate(&sampleRequest{
		FullName: "Test User",
		Email:    "user@test.com",
		Role:     "student",
	})
	assert.NoError(t, err)
}

func TestValidate_ReportsJSONFieldNames(t *testing.T) {
	v := New()

	err := v.Validate(&sampleRequest{Email: "not-an-email"})
	require.Error(t, err)

	vErr, ok := err.(*ValidationError)
	require.True(t, ok, "expected *ValidationError, got %T", err)

	// Keys come from the json tags, not the Go field names.
	assert.Contains(t, vErr.Errors, "fullname")
	assert.Contains(t, vErr.Errors, "email")
	assert.NotContains(t, vErr.Errors, "FullName")

	assert.Equal(t, "This field is required", vErr.Errors["fullname"])
	assert.Equal(t, "Must be a valid email address", vErr.Errors["email"])
}

func TestValidate_OneOf(t *testing.T) {
	v := New()

	err := v.Validate(&sampleRequest{
		FullName: "Test User",
		Email:    "user@test.com",
		Role:     "recruiter",
	})
	require.Error(t, err)

	vErr, ok := err.(*ValidationError)
	require.True(t, ok)
	assert.Equal(t, "Must be one of: student, admin", vErr.Errors["role"])
}

func TestValidationError_Message(t *testing.T) {
	vErr := &ValidationError{Errors: map[string]string{"email": "Must be a valid email address"}}
	assert.Contains(t, vErr.Error(), "Validation failed")
	assert.Contains(t, vErr.Error(), "field 'email'")
}
