package testutil

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

// RequireErrorAs verifies that err is, or wraps, an error of type T and
// returns it.
func RequireErrorAs[T error](t *testing.T, err error) T {
	require.Error(t, err)

	var target T
	require.True(t, errors.As(err, &target), "unexpected error type: %T", err)
	return target
}
