package comment

import (
	"context"
	"testing"

	"feedline/server/ent"
	"feedline/server/ent/enttest"
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

func TestCommentUsecase(t *testing.T) {
	client := setupTestClient(t)
	defer client.Close()

	uc := NewCommentUsecase(client)
	ctx := context.Background()

	alice, err := fixtures.CreateTestUser(ctx, client, fixtures.TestUser1)
	require.NoError(t, err)
	bob, err := fixtures.CreateTestUser(ctx, client, fixtures.TestUser2)
	require.NoError(t, err)
	post, err := fixtures.CreateTestPost(ctx, client, alice.ID, "discuss")
	require.NoError(t, err)

	t.Run("create", func(t *testing.T) {
		c, err := uc.Create(ctx, bob.ID, post.ID, "interesting")

		assert.NoError(t, err)
		require.NotNil(t, c)
		assert.Equal(t, "interesting", c.Content)
		assert.Equal(t, bob.ID, c.AuthorID)
		assert.Equal(t, post.ID, c.PostID)
	})

	t.Run("create on missing post", func(t *testing.T) {
		_, err := uc.Create(ctx, bob.ID, 99999, "void")
		assert.ErrorIs(t, err, errorsx.ErrNotFound)
	})

	t.Run("create with empty content", func(t *testing.T) {
		_, err := uc.Create(ctx, bob.ID, post.ID, "")
		assert.ErrorIs(t, err, errorsx.ErrBadInput)
	})

	t.Run("author updates own comment", func(t *testing.T) {
		c, err := uc.Create(ctx, bob.ID, post.ID, "typo")
		require.NoError(t, err)

		updated, err := uc.Update(ctx, bob.ID, c.ID, "fixed")
		assert.NoError(t, err)
		assert.Equal(t, "fixed", updated.Content)
	})

	t.Run("non-author update rejected", func(t *testing.T) {
		c, err := uc.Create(ctx, bob.ID, post.ID, "bob's words")
		require.NoError(t, err)

		_, err = uc.Update(ctx, alice.ID, c.ID, "alice's words")
		assert.ErrorIs(t, err, errorsx.ErrNotAuthorized)
	})

	t.Run("update missing comment", func(t *testing.T) {
		_, err := uc.Update(ctx, bob.ID, 99999, "ghost")
		assert.ErrorIs(t, err, errorsx.ErrNotFound)
	})

	t.Run("author deletes own comment", func(t *testing.T) {
		c, err := uc.Create(ctx, bob.ID, post.ID, "temporary")
		require.NoError(t, err)

		require.NoError(t, uc.Delete(ctx, bob.ID, c.ID))

		_, err = uc.CommentByID(ctx, c.ID)
		assert.True(t, ent.IsNotFound(err))
	})

	t.Run("non-author delete rejected", func(t *testing.T) {
		c, err := uc.Create(ctx, bob.ID, post.ID, "stays")
		require.NoError(t, err)

		err = uc.Delete(ctx, alice.ID, c.ID)
		assert.ErrorIs(t, err, errorsx.ErrNotAuthorized)

		_, err = uc.CommentByID(ctx, c.ID)
		assert.NoError(t, err)
	})

	t.Run("delete missing comment", func(t *testing.T) {
		err := uc.Delete(ctx, bob.ID, 99999)
		assert.ErrorIs(t, err, errorsx.ErrNotFound)
	})
}
