package generation

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTransportError(t *testing.T) {
	t.Parallel()

	t.Run("with status", func(t *testing.T) {
		err := &TransportError{StatusCode: 503, Body: "overloaded"}
		assert.ErrorIs(t, err, ErrTransportFailure)
		assert.Contains(t, err.Error(), "status 503")
		assert.Contains(t, err.Error(), "overloaded")
	})

	t.Run("without response", func(t *testing.T) {
		cause := errors.New("connection refused")
		err := fmt.Errorf("calling model: %w", &TransportError{Err: cause})
		assert.ErrorIs(t, err, ErrTransportFailure)
		assert.ErrorIs(t, err, cause)

		var te *TransportError
		assert.True(t, errors.As(err, &te))
		assert.Equal(t, 0, te.StatusCode)
	})

	t.Run("does not match other failures", func(t *testing.T) {
		err := &TransportError{StatusCode: 500}
		assert.False(t, errors.Is(err, ErrMalformedContent))
		assert.False(t, errors.Is(err, ErrEmptyGeneration))
	})
}
