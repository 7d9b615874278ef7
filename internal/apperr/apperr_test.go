package apperr_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/rpggio/stowage/internal/apperr"
	"github.com/stretchr/testify/require"
)

var errSentinel = errors.New("sentinel")

func TestValidationError_MatchesKindAndCause(t *testing.T) {
	err := fmt.Errorf("creating item: %w", apperr.Validation("name", "Name is required").Wrap(errSentinel))

	require.ErrorIs(t, err, apperr.ErrValidation)
	require.ErrorIs(t, err, errSentinel)
	require.NotErrorIs(t, err, apperr.ErrNotFound)
	require.Equal(t, map[string]string{"name": "Name is required"}, apperr.FieldErrors(err))
	require.Contains(t, err.Error(), "name: Name is required")
}

func TestValidationError_MessageIsSortedByField(t *testing.T) {
	err := apperr.ValidationFields(map[string]string{"b": "second", "a": "first"})
	require.Equal(t, "validation failed: a: first; b: second", err.Error())
}

func TestNotFoundError(t *testing.T) {
	err := apperr.NotFound(errSentinel, "item", "abc")

	require.ErrorIs(t, err, apperr.ErrNotFound)
	require.ErrorIs(t, err, errSentinel)
	require.Equal(t, "item not found: abc", err.Error())
	require.Nil(t, apperr.FieldErrors(err))
}
