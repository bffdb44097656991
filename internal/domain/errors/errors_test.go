package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNotFoundError_Messages(t *testing.T) {
	assert.Equal(t, "user not found", UserNotFound().Error())
	assert.Equal(t, "product not found", ProductNotFound().Error())
}

func TestIsNotFound(t *testing.T) {
	wrapped := fmt.Errorf("load product: %w", ProductNotFound())

	assert.True(t, IsNotFound(ProductNotFound()))
	assert.True(t, IsNotFound(wrapped))
	assert.False(t, IsNotFound(errors.New("product not found")))
	assert.False(t, IsNotFound(nil))
}

func TestValidationError(t *testing.T) {
	err := NewValidationError("invalid product", ValidationDetail{Field: "name", Message: "required"})

	ve, ok := IsValidationError(fmt.Errorf("create: %w", err))
	assert.True(t, ok)
	assert.Equal(t, "invalid product", ve.Error())
	assert.Len(t, ve.Details, 1)

	_, ok = IsValidationError(errors.New("other"))
	assert.False(t, ok)
}

func TestConflictError(t *testing.T) {
	err := NewConflictError("user with email %s already exists", "coco@liso.com")

	assert.Equal(t, "user with email coco@liso.com already exists", err.Error())
	assert.True(t, IsConflict(err))
	assert.False(t, IsConflict(UserNotFound()))
}

func TestInternalError_Unwrap(t *testing.T) {
	cause := errors.New("connection reset")
	err := NewInternalError("failed to save product", cause)

	assert.Equal(t, "failed to save product: connection reset", err.Error())
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "no cause", NewInternalError("no cause", nil).Error())
}
