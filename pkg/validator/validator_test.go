package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sampleRequest struct {
	Email    string `validate:"required,email"`
	Password string `validate:"required,min=8"`
	Name     string `validate:"required,max=10"`
}

func TestValidatePasses(t *testing.T) {
	cv := NewValidator()

	err := cv.Validate(&sampleRequest{
		Email:    "owner@example.com",
		Password: "supersecret",
		Name:     "Jane",
	})
	assert.NoError(t, err)
}

func TestFormatValidationErrors(t *testing.T) {
	cv := NewValidator()

	err := cv.Validate(&sampleRequest{
		Email:    "not-an-email",
		Password: "short",
		Name:     "",
	})
	require.Error(t, err)

	formatted := cv.FormatValidationErrors(err)
	assert.Equal(t, "Email must be a valid email address", formatted["Email"])
	assert.Equal(t, "Password must be at least 8", formatted["Password"])
	assert.Equal(t, "Name is required", formatted["Name"])
}
