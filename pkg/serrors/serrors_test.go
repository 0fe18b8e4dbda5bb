package serrors_test

import (
	"errors"
	"fmt"
	"testing"

	"enricher/pkg/serrors"

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
		serrors.ErrTimeout,
		serrors.ErrUnavailable,
		serrors.ErrRateLimited,
		serrors.ErrUnprocessable,
	}
	seen := map[serrors.Kind]bool{}
	for i, k := range kinds {
		require.NotNil(t, k, "kind at index %d is nil", i)
		require.False(t, seen[k], "kind at index %d is duplicate: %v", i, k)
		seen[k] = true
	}

	// Ensure some expected inequalities
	require.NotEqual(t, serrors.ErrNotFound, serrors.ErrUnauthorized, "NotFound should not equal Unauthorized")
}

func TestErrorFormatting(t *testing.T) {
	base := errors.New("db down")

	e1 := serrors.With(serrors.ErrNotFound, "run %d not found", 42)
	require.Equal(t, "run 42 not found", e1.Error(), "With() Error() mismatch")

	e2 := serrors.Wrap(serrors.ErrNotFound, base, "getting run")
	require.Equal(t, "getting run: db down", e2.Error(), "Wrap() Error() mismatch")

	e3 := serrors.KindOnly(serrors.ErrNotFound)
	require.Equal(t, "NOT_FOUND", e3.Error(), "KindOnly Error() mismatch")
}

func TestIsMatchesKindAndWrapped(t *testing.T) {
	base := customError{"root cause"}
	e := serrors.Wrap(serrors.ErrNotFound, base, "reading")

	require.ErrorIs(t, e, serrors.ErrNotFound)
	require.ErrorIs(t, e, base)
	require.NotErrorIs(t, e, serrors.ErrUnauthorized, "errors.Is should not match a different kind")
}

func TestAsMatchesKindAndWrapped(t *testing.T) {
	base := &customError{"root cause"}
	e := serrors.Wrap(serrors.ErrNotFound, base, "reading")

	var k serrors.Kind
	require.ErrorAs(t, e, &k, "errors.As should extract Kind")
	require.Equal(t, serrors.ErrNotFound, k)

	var ce *customError
	require.ErrorAs(t, e, &ce, "errors.As should extract wrapped error type")
	require.Equal(t, base, ce, "extracted cause pointer mismatch")
}

func TestAccessors(t *testing.T) {
	base := errors.New("boom")
	e := serrors.Wrap(serrors.ErrUnauthorized, base, "no token")
	require.Equal(t, serrors.ErrUnauthorized, e.Kind())
	require.Equal(t, "no token", e.Message())
	require.Equal(t, base, e.Cause())
}

func TestKindOf(t *testing.T) {
	require.Nil(t, serrors.KindOf(nil))
	require.Nil(t, serrors.KindOf(errors.New("plain")))

	e := serrors.With(serrors.ErrUnprocessable, "empty csv")
	require.Equal(t, serrors.ErrUnprocessable, serrors.KindOf(e))

	wrapped := fmt.Errorf("could not scan: %w", e)
	require.Equal(t, serrors.ErrUnprocessable, serrors.KindOf(wrapped))

	// the outermost kind wins
	outer := serrors.Wrap(serrors.ErrUnavailable, serrors.KindOnly(serrors.ErrNotFound), "lookup")
	require.Equal(t, serrors.ErrUnavailable, serrors.KindOf(outer))

	// bare sentinels are recognized as well
	require.Equal(t, serrors.ErrTimeout, serrors.KindOf(fmt.Errorf("x: %w", serrors.ErrTimeout)))
}

func TestIsRetryable(t *testing.T) {
	require.True(t, serrors.IsRetryable(errors.New("connection reset")))
	require.True(t, serrors.IsRetryable(serrors.With(serrors.ErrUnavailable, "doh down")))
	require.False(t, serrors.IsRetryable(serrors.With(serrors.ErrBadRequest, "bad url")))
	require.False(t, serrors.IsRetryable(fmt.Errorf("scan: %w", serrors.KindOnly(serrors.ErrUnprocessable))))
}
