package apperror

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetAppError(t *testing.T) {
	wrapped := fmt.Errorf("create billing: %w", NewFieldError("qty", "invalid quantity"))

	appErr := GetAppError(wrapped)
	assert.Equal(t, http.StatusUnprocessableEntity, appErr.Code)
	assert.Equal(t, "qty", appErr.Errors[0].Field)

	internal := GetAppError(errors.New("connection refused"))
	assert.Equal(t, http.StatusInternalServerError, internal.Code)
	assert.Equal(t, "Internal server error", internal.Message)
}

func TestAppError_Error(t *testing.T) {
	assert.Equal(t, "Pooja not found", NewNotFoundError("Pooja").Error())
	assert.Equal(t, "Validation failed: pooja_name invalid pooja", NewFieldError("pooja_name", "invalid pooja").Error())
	assert.True(t, IsAppError(fmt.Errorf("x: %w", ErrForbidden)))
	assert.False(t, IsAppError(errors.New("plain")))
}
