package serrors_test

import (
	"errors"
	"ledger/pkg/serrors"
	"testing"

	"github.com/stretchr/testify/require"
)

type customError struct{ msg string }

func (e customError) Error() string { return e.msg }

func TestDefaultKindsDistinct(t *testing.T) {
	kinds := []serrors.Kind{
		serrors.ErrNotFound,
		serrors.ErrUnauthorized,
		serrors.ErrForbidden,
		serrors.ErrBadRequest,
		serrors.ErrConflict,
		serrors.ErrInternal,
	}
	seen := map[serrors.Kind]bool{}
	for i, k := range kinds {
		require.NotNil(t, k, "kind at index %d is nil", i)
		require.False(t, seen[k], "kind at index %d is duplicate: %v", i, k)
		seen[k] = true
	}
}

func TestErrorFormatting(t *testing.T) {
	base := errors.New("db down")

	e1 := serrors.With(serrors.ErrNotFound, "expense %d not found", 42)
	require.Equal(t, "expense 42 not found", e1.Error())

	e2 := serrors.Wrap(serrors.ErrNotFound, base, "getting expense")
	require.Equal(t, "getting expense: db down", e2.Error())

	e3 := serrors.KindOnly(serrors.ErrNotFound)
	require.Equal(t, "NOT_FOUND", e3.Error())
}

func TestErrorIsMatchesKindAndCause(t *testing.T) {
	cause := customError{msg: "boom"}

	err := serrors.Wrap(serrors.ErrBadRequest, cause, "validating input")
	require.ErrorIs(t, err, serrors.ErrBadRequest)
	require.NotErrorIs(t, err, serrors.ErrNotFound)

	var got customError
	require.ErrorAs(t, err, &got)
	require.Equal(t, "boom", got.msg)
}

func TestErrorUnwrap(t *testing.T) {
	cause := errors.New("inner")
	err := serrors.Wrap(serrors.ErrInternal, cause, "outer")
	require.Equal(t, cause, errors.Unwrap(err))

	require.Nil(t, errors.Unwrap(serrors.KindOnly(serrors.ErrInternal)))
}

func TestKindAccessors(t *testing.T) {
	err := serrors.With(serrors.ErrConflict, "already exists")
	require.Equal(t, serrors.ErrConflict, err.Kind())
	require.Equal(t, "already exists", err.Message())
	require.Nil(t, err.Cause())
}
