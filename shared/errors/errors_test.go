package errorsx

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCodeFor(t *testing.T) {
	cases := []struct {
		name string
		err  error
		code string
	}{
		{"not authenticated", ErrNotAuthenticated, CodeUnauthenticated},
		{"not authorized", ErrNotAuthorized, CodeForbidden},
		{"not found", fmt.Errorf("%w: post", ErrNotFound), CodeNotFound},
		{"bad input", fmt.Errorf("%w: invalid email or password", ErrBadInput), CodeBadInput},
		{"deadline exceeded", fmt.Errorf("load feed: %w", context.DeadlineExceeded), CodeTimeout},
		{"unknown error", errors.New("pq: connection refused"), CodeInternal},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.code, CodeFor(tc.err))
		})
	}
}

func TestPresenter(t *testing.T) {
	ctx := context.Background()

	t.Run("business error keeps message and carries code", func(t *testing.T) {
		err := fmt.Errorf("%w: you cannot follow yourself", ErrBadInput)
		gqlErr := Presenter(ctx, err)

		require.NotNil(t, gqlErr)
		assert.Equal(t, CodeBadInput, gqlErr.Extensions["code"])
		assert.Contains(t, gqlErr.Message, "you cannot follow yourself")
	})

	t.Run("every sentinel maps to its code", func(t *testing.T) {
		assert.Equal(t, CodeUnauthenticated, Presenter(ctx, ErrNotAuthenticated).Extensions["code"])
		assert.Equal(t, CodeForbidden, Presenter(ctx, ErrNotAuthorized).Extensions["code"])
		assert.Equal(t, CodeNotFound, Presenter(ctx, fmt.Errorf("%w: user", ErrNotFound)).Extensions["code"])
	})

	t.Run("internal error is masked", func(t *testing.T) {
		gqlErr := Presenter(ctx, errors.New("pq: password authentication failed"))

		assert.Equal(t, CodeInternal, gqlErr.Extensions["code"])
		assert.Equal(t, "internal server error", gqlErr.Message)
		assert.NotContains(t, gqlErr.Message, "pq")
	})

	t.Run("deadline surfaces as distinguishable timeout", func(t *testing.T) {
		gqlErr := Presenter(ctx, fmt.Errorf("resolve feed: %w", context.DeadlineExceeded))

		assert.Equal(t, CodeTimeout, gqlErr.Extensions["code"])
		assert.Equal(t, "request timed out", gqlErr.Message)
	})
}
