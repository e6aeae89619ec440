package errs_test

import (
	"errors"
	"fmt"
	"testing"

	"booking/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObjectNotFoundError(t *testing.T) {
	t.Run("NewObjectNotFoundError", func(t *testing.T) {
		err := errs.NewObjectNotFoundError("trackingID", "ABC123")

		assert.Equal(t, "trackingID", err.ParamName)
		assert.Equal(t, "ABC123", err.ID)
		require.NoError(t, err.Cause)
		assert.Equal(t, "object not found: ABC123", err.Error())
		assert.Equal(t, errs.ErrObjectNotFound, err.Unwrap())
	})

	t.Run("NewObjectNotFoundErrorWithCause", func(t *testing.T) {
		cause := errors.New("store is closed")
		err := errs.NewObjectNotFoundErrorWithCause("trackingID", "ABC123", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t,
			"object not found: param is: trackingID, ID is: ABC123 (cause: store is closed)",
			err.Error())
		assert.Equal(t, errs.ErrObjectNotFound, err.Unwrap())
	})

	t.Run("Error with Stringer ID", func(t *testing.T) {
		err := errs.NewObjectNotFoundError("voyage", stringer("V100"))
		assert.Equal(t, "object not found: V100", err.Error())
	})

	t.Run("Error with non string ID", func(t *testing.T) {
		err := errs.NewObjectNotFoundError("cargo", 456)
		assert.Equal(t, "object not found: %!s(int=456)", err.Error())
	})
}

func TestValueIsInvalidError(t *testing.T) {
	t.Run("NewValueIsInvalidError", func(t *testing.T) {
		err := errs.NewValueIsInvalidError("code")

		assert.Equal(t, "code", err.ParamName)
		require.NoError(t, err.Cause)
		assert.Equal(t, "value is invalid: code", err.Error())
		assert.Equal(t, errs.ErrValueIsInvalid, err.Unwrap())
	})

	t.Run("NewValueIsInvalidErrorWithCause", func(t *testing.T) {
		cause := errors.New("does not match pattern")
		err := errs.NewValueIsInvalidErrorWithCause("code", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "value is invalid: code (cause: does not match pattern)", err.Error())
		assert.Equal(t, errs.ErrValueIsInvalid, err.Unwrap())
	})

	t.Run("newlines are removed from the param name", func(t *testing.T) {
		err := errs.NewValueIsInvalidError("line one\nline two")
		assert.Equal(t, "value is invalid: line one line two", err.Error())
		assert.NotContains(t, err.Error(), "\n")
	})
}

func TestValueIsRequiredError(t *testing.T) {
	t.Run("NewValueIsRequiredError", func(t *testing.T) {
		err := errs.NewValueIsRequiredError("routeSpecification")

		assert.Equal(t, "routeSpecification", err.ParamName)
		require.NoError(t, err.Cause)
		assert.Equal(t, "value is required: routeSpecification", err.Error())
		assert.Equal(t, errs.ErrValueIsRequired, err.Unwrap())
	})

	t.Run("NewValueIsRequiredErrorWithCause", func(t *testing.T) {
		cause := errors.New("nil history")
		err := errs.NewValueIsRequiredErrorWithCause("handlingHistory", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "value is required: handlingHistory (cause: nil history)", err.Error())
		assert.Equal(t, errs.ErrValueIsRequired, err.Unwrap())
	})
}

func TestSentinelErrors(t *testing.T) {
	t.Run("error messages match expectations", func(t *testing.T) {
		assert.Equal(t, "object not found", errs.ErrObjectNotFound.Error())
		assert.Equal(t, "value is invalid", errs.ErrValueIsInvalid.Error())
		assert.Equal(t, "value is required", errs.ErrValueIsRequired.Error())
	})
}

func TestErrorsCanBeUnwrapped(t *testing.T) {
	t.Run("errors.Is works with custom errors", func(t *testing.T) {
		require.ErrorIs(t, errs.NewObjectNotFoundError("cargo", "X"), errs.ErrObjectNotFound)
		require.ErrorIs(t, errs.NewValueIsInvalidError("code"), errs.ErrValueIsInvalid)
		require.ErrorIs(t, errs.NewValueIsRequiredError("voyage"), errs.ErrValueIsRequired)
	})

	t.Run("errors.Is works through wrapping and joining", func(t *testing.T) {
		joined := errors.Join(errs.NewValueIsRequiredError("origin"), errs.NewValueIsInvalidError("deadline"))
		wrapped := fmt.Errorf("book cargo: %w", joined)

		require.ErrorIs(t, wrapped, errs.ErrValueIsRequired)
		require.ErrorIs(t, wrapped, errs.ErrValueIsInvalid)
		require.NotErrorIs(t, wrapped, errs.ErrObjectNotFound)
	})

	t.Run("errors.As extracts the typed error", func(t *testing.T) {
		err := fmt.Errorf("lookup: %w", errs.NewObjectNotFoundError("cargo", "ABC"))

		var notFound *errs.ObjectNotFoundError
		require.ErrorAs(t, err, &notFound)
		assert.Equal(t, "cargo", notFound.ParamName)
	})
}

type stringer string

func (s stringer) String() string { return string(s) }
