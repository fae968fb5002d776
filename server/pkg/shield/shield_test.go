package shield

import (
	"context"
	"strconv"
	"testing"

	"feedline/server/ent"
	"feedline/server/ent/enttest"
	sharedauth "feedline/shared/auth"
	errorsx "feedline/shared/errors"
	"feedline/tests/fixtures"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestClient(t *testing.T) *ent.Client {
	client := enttest.Open(t, "sqlite3", "file:ent?mode=memory&cache=shared&_fk=1")
	return client
}

func TestShield_PolicyTable(t *testing.T) {
	client := setupTestClient(t)
	defer client.Close()

	s := New(client)

	t.Run("public fields allow anonymous", func(t *testing.T) {
		ctx := sharedauth.WithUserID(context.Background(), 0)
		for _, field := range []string{"post", "user", "users", "userPosts"} {
			assert.NoError(t, s.Check(ctx, "Query", field, nil), field)
		}
		assert.NoError(t, s.Check(ctx, "Mutation", "register", nil))
		assert.NoError(t, s.Check(ctx, "Mutation", "login", nil))
	})

	t.Run("authenticated-only fields reject anonymous", func(t *testing.T) {
		ctx := sharedauth.WithUserID(context.Background(), 0)
		for _, field := range []string{"me", "feed", "userSuggestions"} {
			err := s.Check(ctx, "Query", field, nil)
			assert.ErrorIs(t, err, errorsx.ErrNotAuthenticated, field)
		}
		for _, field := range []string{"createPost", "likePost", "followUser", "updateProfile"} {
			err := s.Check(ctx, "Mutation", field, nil)
			assert.ErrorIs(t, err, errorsx.ErrNotAuthenticated, field)
		}
	})

	t.Run("unknown field falls back to allow", func(t *testing.T) {
		ctx := sharedauth.WithUserID(context.Background(), 0)
		assert.NoError(t, s.Check(ctx, "Query", "health", nil))
	})
}

func TestShield_Ownership(t *testing.T) {
	client := setupTestClient(t)
	defer client.Close()

	ctx := context.Background()
	alice, err := fixtures.CreateTestUser(ctx, client, fixtures.TestUser1)
	require.NoError(t, err)
	bob, err := fixtures.CreateTestUser(ctx, client, fixtures.TestUser2)
	require.NoError(t, err)
	post, err := fixtures.CreateTestPost(ctx, client, alice.ID, "owned by alice")
	require.NoError(t, err)
	comment, err := fixtures.CreateTestComment(ctx, client, bob.ID, post.ID, "bob's comment")
	require.NoError(t, err)

	s := New(client)

	t.Run("owner may mutate own post", func(t *testing.T) {
		aliceCtx := sharedauth.WithUserID(ctx, alice.ID)
		args := map[string]interface{}{"id": post.ID}
		assert.NoError(t, s.Check(aliceCtx, "Mutation", "updatePost", args))
		assert.NoError(t, s.Check(aliceCtx, "Mutation", "deletePost", args))
	})

	t.Run("non-owner is rejected", func(t *testing.T) {
		bobCtx := sharedauth.WithUserID(ctx, bob.ID)
		err := s.Check(bobCtx, "Mutation", "updatePost", map[string]interface{}{"id": post.ID})
		assert.ErrorIs(t, err, errorsx.ErrNotAuthorized)
	})

	t.Run("missing resource is indistinguishable from foreign", func(t *testing.T) {
		bobCtx := sharedauth.WithUserID(ctx, bob.ID)
		foreign := s.Check(bobCtx, "Mutation", "deletePost", map[string]interface{}{"id": post.ID})
		missing := s.Check(bobCtx, "Mutation", "deletePost", map[string]interface{}{"id": 99999})
		assert.ErrorIs(t, foreign, errorsx.ErrNotAuthorized)
		assert.ErrorIs(t, missing, errorsx.ErrNotAuthorized)
		assert.Equal(t, foreign.Error(), missing.Error())
	})

	t.Run("anonymous fails before ownership lookup", func(t *testing.T) {
		anonCtx := sharedauth.WithUserID(ctx, 0)
		err := s.Check(anonCtx, "Mutation", "updatePost", map[string]interface{}{"id": post.ID})
		assert.ErrorIs(t, err, errorsx.ErrNotAuthenticated)
	})

	t.Run("comment ownership", func(t *testing.T) {
		bobCtx := sharedauth.WithUserID(ctx, bob.ID)
		aliceCtx := sharedauth.WithUserID(ctx, alice.ID)
		args := map[string]interface{}{"id": comment.ID}
		assert.NoError(t, s.Check(bobCtx, "Mutation", "deleteComment", args))
		assert.ErrorIs(t, s.Check(aliceCtx, "Mutation", "deleteComment", args), errorsx.ErrNotAuthorized)
	})

	t.Run("id argument as string", func(t *testing.T) {
		aliceCtx := sharedauth.WithUserID(ctx, alice.ID)
		args := map[string]interface{}{"id": strconv.Itoa(post.ID)}
		assert.NoError(t, s.Check(aliceCtx, "Mutation", "updatePost", args))
	})
}

func TestShield_RuleCache(t *testing.T) {
	client := setupTestClient(t)
	defer client.Close()

	ctx := context.Background()
	alice, err := fixtures.CreateTestUser(ctx, client, fixtures.TestUser1)
	require.NoError(t, err)
	post1, err := fixtures.CreateTestPost(ctx, client, alice.ID, "first")
	require.NoError(t, err)

	bob, err := fixtures.CreateTestUser(ctx, client, fixtures.TestUser2)
	require.NoError(t, err)
	post2, err := fixtures.CreateTestPost(ctx, client, bob.ID, "second")
	require.NoError(t, err)

	s := New(client)
	cachedCtx := withCache(sharedauth.WithUserID(ctx, alice.ID))

	// Разные id не должны делить закэшированный результат ownership-правила
	assert.NoError(t, s.Check(cachedCtx, "Mutation", "updatePost", map[string]interface{}{"id": post1.ID}))
	err = s.Check(cachedCtx, "Mutation", "updatePost", map[string]interface{}{"id": post2.ID})
	assert.ErrorIs(t, err, errorsx.ErrNotAuthorized)

	// Повторная проверка того же поля берется из кэша
	assert.NoError(t, s.Check(cachedCtx, "Query", "me", nil))
	assert.NoError(t, s.Check(cachedCtx, "Query", "me", nil))
}
