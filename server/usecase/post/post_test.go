package post

import (
	"context"
	"testing"
	"time"

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

func seedFeedUsers(t *testing.T, client *ent.Client) (alice, bob, carol *ent.User) {
	ctx := context.Background()
	var err error
	alice, err = fixtures.CreateTestUser(ctx, client, fixtures.TestUser1)
	require.NoError(t, err)
	bob, err = fixtures.CreateTestUser(ctx, client, fixtures.TestUser2)
	require.NoError(t, err)
	carol, err = fixtures.CreateTestUser(ctx, client, fixtures.TestUser3)
	require.NoError(t, err)
	return alice, bob, carol
}

func createPostAt(t *testing.T, client *ent.Client, authorID int, content string, at time.Time) *ent.Post {
	p, err := client.Post.Create().
		SetContent(content).
		SetAuthorID(authorID).
		SetCreatedAt(at).
		Save(context.Background())
	require.NoError(t, err)
	return p
}

func TestPostUsecase_Feed(t *testing.T) {
	client := setupTestClient(t)
	defer client.Close()

	uc := NewPostUsecase(client)
	ctx := context.Background()

	alice, bob, carol := seedFeedUsers(t, client)
	now := time.Now()

	// alice подписана на bob, carol вне ленты
	_, err := fixtures.CreateTestFollow(ctx, client, alice.ID, bob.ID)
	require.NoError(t, err)

	createPostAt(t, client, bob.ID, "bob old", now.Add(-3*time.Hour))
	createPostAt(t, client, alice.ID, "alice own", now.Add(-2*time.Hour))
	createPostAt(t, client, carol.ID, "carol hidden", now.Add(-90*time.Minute))
	createPostAt(t, client, bob.ID, "bob new", now.Add(-1*time.Hour))

	t.Run("followed plus own, newest first", func(t *testing.T) {
		posts, err := uc.Feed(ctx, alice.ID, nil, nil)

		assert.NoError(t, err)
		require.Len(t, posts, 3)
		assert.Equal(t, "bob new", posts[0].Content)
		assert.Equal(t, "alice own", posts[1].Content)
		assert.Equal(t, "bob old", posts[2].Content)
	})

	t.Run("pagination window", func(t *testing.T) {
		first, skip := 2, 1
		posts, err := uc.Feed(ctx, alice.ID, &first, &skip)

		assert.NoError(t, err)
		require.Len(t, posts, 2)
		assert.Equal(t, "alice own", posts[0].Content)
		assert.Equal(t, "bob old", posts[1].Content)
	})

	t.Run("no follows yields own posts only", func(t *testing.T) {
		posts, err := uc.Feed(ctx, carol.ID, nil, nil)

		assert.NoError(t, err)
		require.Len(t, posts, 1)
		assert.Equal(t, "carol hidden", posts[0].Content)
	})
}

func TestPostUsecase_CreateUpdateDelete(t *testing.T) {
	client := setupTestClient(t)
	defer client.Close()

	uc := NewPostUsecase(client)
	ctx := context.Background()

	alice, bob, _ := seedFeedUsers(t, client)

	t.Run("create", func(t *testing.T) {
		p, err := uc.Create(ctx, alice.ID, "hello world")

		assert.NoError(t, err)
		require.NotNil(t, p)
		assert.Equal(t, "hello world", p.Content)
		assert.Equal(t, alice.ID, p.AuthorID)
	})

	t.Run("author updates own post", func(t *testing.T) {
		p, err := uc.Create(ctx, alice.ID, "draft")
		require.NoError(t, err)

		updated, err := uc.Update(ctx, alice.ID, p.ID, "final")
		assert.NoError(t, err)
		assert.Equal(t, "final", updated.Content)
	})

	t.Run("non-author update rejected", func(t *testing.T) {
		p, err := uc.Create(ctx, alice.ID, "mine")
		require.NoError(t, err)

		_, err = uc.Update(ctx, bob.ID, p.ID, "stolen")
		assert.ErrorIs(t, err, errorsx.ErrNotAuthorized)
	})

	t.Run("update missing post", func(t *testing.T) {
		_, err := uc.Update(ctx, alice.ID, 99999, "ghost")
		assert.ErrorIs(t, err, errorsx.ErrNotFound)
	})

	t.Run("delete cascades likes and comments", func(t *testing.T) {
		p, err := uc.Create(ctx, alice.ID, "to be removed")
		require.NoError(t, err)
		_, err = fixtures.CreateTestLike(ctx, client, bob.ID, p.ID)
		require.NoError(t, err)
		_, err = fixtures.CreateTestComment(ctx, client, bob.ID, p.ID, "bye")
		require.NoError(t, err)

		require.NoError(t, uc.Delete(ctx, alice.ID, p.ID))

		_, err = client.Post.Get(ctx, p.ID)
		assert.True(t, ent.IsNotFound(err))

		likes, err := uc.LikesFor(ctx, p.ID)
		assert.NoError(t, err)
		assert.Empty(t, likes)

		comments, err := uc.CommentsFor(ctx, p.ID)
		assert.NoError(t, err)
		assert.Empty(t, comments)
	})

	t.Run("non-author delete rejected", func(t *testing.T) {
		p, err := uc.Create(ctx, alice.ID, "keep")
		require.NoError(t, err)

		err = uc.Delete(ctx, bob.ID, p.ID)
		assert.ErrorIs(t, err, errorsx.ErrNotAuthorized)

		_, err = client.Post.Get(ctx, p.ID)
		assert.NoError(t, err)
	})
}

func TestPostUsecase_Likes(t *testing.T) {
	client := setupTestClient(t)
	defer client.Close()

	uc := NewPostUsecase(client)
	ctx := context.Background()

	alice, bob, _ := seedFeedUsers(t, client)
	p, err := uc.Create(ctx, alice.ID, "likeable")
	require.NoError(t, err)

	t.Run("like and idempotent re-like", func(t *testing.T) {
		first, err := uc.LikePost(ctx, bob.ID, p.ID)
		require.NoError(t, err)
		require.NotNil(t, first)

		second, err := uc.LikePost(ctx, bob.ID, p.ID)
		require.NoError(t, err)
		require.NotNil(t, second)
		assert.Equal(t, first.ID, second.ID)

		count, err := client.Like.Query().Count(ctx)
		assert.NoError(t, err)
		assert.Equal(t, 1, count)
	})

	t.Run("like missing post", func(t *testing.T) {
		_, err := uc.LikePost(ctx, bob.ID, 99999)
		assert.ErrorIs(t, err, errorsx.ErrNotFound)
	})

	t.Run("liked flag per viewer", func(t *testing.T) {
		liked, err := uc.Liked(ctx, bob.ID, p.ID)
		assert.NoError(t, err)
		assert.True(t, liked)

		liked, err = uc.Liked(ctx, alice.ID, p.ID)
		assert.NoError(t, err)
		assert.False(t, liked)

		// Аноним ничего не лайкал
		liked, err = uc.Liked(ctx, 0, p.ID)
		assert.NoError(t, err)
		assert.False(t, liked)
	})

	t.Run("unlike and unlike of absent like", func(t *testing.T) {
		require.NoError(t, uc.UnlikePost(ctx, bob.ID, p.ID))

		liked, err := uc.Liked(ctx, bob.ID, p.ID)
		assert.NoError(t, err)
		assert.False(t, liked)

		assert.NoError(t, uc.UnlikePost(ctx, bob.ID, p.ID))
	})
}

func TestPostUsecase_CountsFor(t *testing.T) {
	client := setupTestClient(t)
	defer client.Close()

	uc := NewPostUsecase(client)
	ctx := context.Background()

	alice, bob, carol := seedFeedUsers(t, client)
	p, err := uc.Create(ctx, alice.ID, "counted")
	require.NoError(t, err)

	_, err = fixtures.CreateTestLike(ctx, client, bob.ID, p.ID)
	require.NoError(t, err)
	_, err = fixtures.CreateTestLike(ctx, client, carol.ID, p.ID)
	require.NoError(t, err)
	_, err = fixtures.CreateTestComment(ctx, client, bob.ID, p.ID, "first")
	require.NoError(t, err)

	counts, err := uc.CountsFor(ctx, p.ID)

	assert.NoError(t, err)
	require.NotNil(t, counts)
	assert.Equal(t, 2, counts.Likes)
	assert.Equal(t, 1, counts.Comments)
}
