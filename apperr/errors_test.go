package apperr

import (
	"errors"
	"fmt"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
)

func TestStatusCodePerKind(t *testing.T) {
	assert.Equal(t, fiber.StatusNotFound, StatusCode(NotFound("missing")))
	assert.Equal(t, fiber.StatusConflict, StatusCode(Conflict("dup")))
	assert.Equal(t, fiber.StatusUnauthorized, StatusCode(Unauthorized("nope")))
	assert.Equal(t, fiber.StatusForbidden, StatusCode(Forbidden("nope")))
	assert.Equal(t, fiber.StatusBadGateway, StatusCode(UploadFailure(errors.New("disk full"))))
	assert.Equal(t, fiber.StatusInternalServerError, StatusCode(Internal(errors.New("boom"))))
	assert.Equal(t, fiber.StatusInternalServerError, StatusCode(errors.New("raw")))
}

func TestUserMessageHidesInternalDetail(t *testing.T) {
	assert.Equal(t, "missing", UserMessage(NotFound("missing")))
	assert.Equal(t, "Something Went Wrong", UserMessage(Internal(errors.New("pq: connection refused"))))
	assert.Equal(t, "Something Went Wrong", UserMessage(errors.New("raw")))
}

func TestIsKindUnwrapsWrappedErrors(t *testing.T) {
	wrapped := fmt.Errorf("handler: %w", Conflict("dup"))
	assert.True(t, IsKind(wrapped, KindConflict))
	assert.False(t, IsKind(wrapped, KindNotFound))
	assert.False(t, IsKind(errors.New("raw"), KindConflict))
}

func TestInternalPreservesCause(t *testing.T) {
	cause := errors.New("boom")
	err := Internal(cause)
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "boom")
}
