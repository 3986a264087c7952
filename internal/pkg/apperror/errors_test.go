package apperror_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/marcos-nsantos/quadtree-backend/internal/pkg/apperror"
)

func TestAppError(t *testing.T) {
	cause := errors.New("capacity 0")

	t.Run("wraps cause", func(t *testing.T) {
		err := apperror.Invalid("INVALID_CAPACITY", "capacity must be positive", cause)

		assert.Equal(t, "capacity must be positive: capacity 0", err.Error())
		assert.ErrorIs(t, err, cause)
		assert.Equal(t, http.StatusBadRequest, apperror.StatusCode(err))
	})

	t.Run("status code survives wrapping", func(t *testing.T) {
		err := fmt.Errorf("handler: %w", apperror.NotFound("index"))

		assert.Equal(t, http.StatusNotFound, apperror.StatusCode(err))
	})

	t.Run("plain errors map to internal", func(t *testing.T) {
		assert.Equal(t, http.StatusInternalServerError, apperror.StatusCode(cause))
		assert.Equal(t, "an internal error occurred: capacity 0", apperror.Internal(cause).Error())
	})

	t.Run("constructors set status", func(t *testing.T) {
		assert.Equal(t, http.StatusConflict, apperror.Conflict("taken").StatusCode)
		assert.Equal(t, http.StatusRequestEntityTooLarge, apperror.TooLarge("BIG", "too big", nil).StatusCode)
		assert.Equal(t, "index not found", apperror.NotFound("index").Error())
	})
}
