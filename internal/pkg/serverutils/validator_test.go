package serverutils

import (
	"errors"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
)

type sampleRequest struct {
	Email  string `validate:"required,email"`
	Mobile string `validate:"required,len=10,numeric"`
}

func TestValidateRequestPasses(t *testing.T) {
	err := ValidateRequest(&sampleRequest{
		Email:  "user@example.com",
		Mobile: "9876543210",
	})
	assert.NoError(t, err)
}

func TestValidateRequestCollectsAllFailures(t *testing.T) {
	err := ValidateRequest(&sampleRequest{
		Email:  "not-an-email",
		Mobile: "123",
	})
	assert.Error(t, err)

	var fiberErr *fiber.Error
	assert.True(t, errors.As(err, &fiberErr))
	assert.Equal(t, fiber.StatusBadRequest, fiberErr.Code)
	assert.Contains(t, fiberErr.Message, "Email")
	assert.Contains(t, fiberErr.Message, "Mobile")
}
