package usecase

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorKind_String(t *testing.T) {
	assert.Equal(t, "BadRequest", BadRequest.String())
	assert.Equal(t, "InternalError", ErrorKind("").String())
	assert.Equal(t, "PaymentDeclined", ErrorKind("PaymentDeclined").String())
}

func TestError(t *testing.T) {
	e := NewError(NotFound, "note not found")

	assert.Equal(t, Error{Kind: NotFound, Message: "note not found"}, e)
	assert.True(t, e == NewError(NotFound, "note not found"))
	assert.False(t, e == NewError(BadRequest, "note not found"))
	assert.EqualError(t, e, "NotFound: note not found")
}

func TestBusinessError(t *testing.T) {
	t.Run("New", func(t *testing.T) {
		err := NewBusinessError(BadRequest, "invalid %s", "title")

		assert.EqualError(t, err, "BadRequest: invalid title")
		assert.Equal(t, NewError(BadRequest, "invalid title"), err.Record())
		assert.Nil(t, errors.Unwrap(err))
	})

	t.Run("Wrap", func(t *testing.T) {
		cause := errors.New("constraint violation")

		err := WrapBusinessError(cause, Conflict, "note already exists")

		assert.EqualError(t, err, "Conflict: note already exists: constraint violation")
		assert.ErrorIs(t, err, cause)
		assert.Equal(t, NewError(Conflict, "note already exists"), err.Record())
	})

	t.Run("EmptyKind", func(t *testing.T) {
		err := NewBusinessError("", "unclassified")

		assert.Equal(t, NewError(InternalError, "unclassified"), err.Record())
		assert.EqualError(t, err, "InternalError: unclassified")
	})

	t.Run("Nil", func(t *testing.T) {
		var err *BusinessError

		assert.Equal(t, "<nil>", err.Error())
		assert.Nil(t, err.Unwrap())
	})
}

func TestAsBusinessError(t *testing.T) {
	t.Run("Direct", func(t *testing.T) {
		be, ok := AsBusinessError(NewBusinessError(NotFound, "missing"))
		require.True(t, ok)

		assert.Equal(t, NotFound, be.Kind)
	})

	t.Run("Wrapped", func(t *testing.T) {
		err := fmt.Errorf("handler: %w", NewBusinessError(Forbidden, "denied"))

		be, ok := AsBusinessError(err)
		require.True(t, ok)

		assert.Equal(t, Forbidden, be.Kind)
		assert.Equal(t, "denied", be.Message)
	})

	t.Run("Other", func(t *testing.T) {
		_, ok := AsBusinessError(errors.New("boom"))

		assert.False(t, ok)
	})

	t.Run("Nil", func(t *testing.T) {
		_, ok := AsBusinessError(nil)

		assert.False(t, ok)
	})
}
