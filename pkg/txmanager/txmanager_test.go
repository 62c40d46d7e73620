package txmanager

import (
	"errors"
	"fmt"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
)

func TestIsSerializationFailure(t *testing.T) {
	serErr := &pq.Error{Code: "40001"}

	t.Run("bare driver error", func(t *testing.T) {
		assert.True(t, isSerializationFailure(serErr))
	})

	t.Run("error wrapped by repository and usecase layers", func(t *testing.T) {
		wrapped := fmt.Errorf("%w: Create - execute insert: %w",
			errors.New("storage.bookings: failed to execute query"), serErr)
		wrapped = fmt.Errorf("%w: Execute - insert booking: %w",
			errors.New("create_booking: internal error"), wrapped)

		assert.True(t, isSerializationFailure(wrapped))
	})

	t.Run("other driver error", func(t *testing.T) {
		assert.False(t, isSerializationFailure(&pq.Error{Code: "23505"}))
	})

	t.Run("non-driver error", func(t *testing.T) {
		assert.False(t, isSerializationFailure(errors.New("connection refused")))
	})
}
