package user

import (
	"context"
	"testing"
	"time"

	"feedline/server/ent"
	"feedline/server/ent/enttest"
	"feedline/server/graphql/models"
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

func TestUserUsecase_UserByUsername(t *testing.T) {
	client := setupTestClient(t)
	defer client.Close()

	uc := NewUserUsecase(client)
	ctx := context.Background()

	alice, err := fixtures.CreateTestUser(ctx, client, fixtures.TestUser1)
	require.NoError(t, err)

	t.Run("exact match", func(t *testing.T) {
		u, err := uc.UserByUsername(ctx, "alice")

		assert.NoError(t, err)
		require.NotNil(t, u)
		assert.Equal(t, alice.ID, u.ID)
	})

	t.Run("case-insensitive fallback", func(t *testing.T) {
		u, err := uc.UserByUsername(ctx, "ALICE")

		assert.NoError(t, err)
		require.NotNil(t, u)
		assert.Equal(t, alice.ID, u.ID)
	})

	t.Run("exact match wins over fold", func(t *testing.T) {
		upper, err := client.User.Create().
			SetUsername("Alice").
			SetEmail("alice-upper@example.com").
			SetPasswordHash("hash").
			Save(ctx)
		require.NoError(t, err)

		u, err := uc.UserByUsername(ctx, "Alice")
		assert.NoError(t, err)
		require.NotNil(t, u)
		assert.Equal(t, upper.ID, u.ID)

		u, err = uc.UserByUsername(ctx, "alice")
		assert.NoError(t, err)
		require.NotNil(t, u)
		assert.Equal(t, alice.ID, u.ID)
	})

	t.Run("missing user is nil without error", func(t *testing.T) {
		u, err := uc.UserByUsername(ctx, "nobody")

		assert.NoError(t, err)
		assert.Nil(t, u)
	})
}

func TestUserUsecase_SearchUsers(t *testing.T) {
	client := setupTestClient(t)
	defer client.Close()

	uc := NewUserUsecase(client)
	ctx := context.Background()

	require.NoError(t, fixtures.SeedBasicData(ctx, client))

	t.Run("matches username and name case-insensitively", func(t *testing.T) {
		query := "ALI"
		users, err := uc.SearchUsers(ctx, &query, nil, nil)

		assert.NoError(t, err)
		require.Len(t, users, 1)
		assert.Equal(t, "alice", users[0].Username)
	})

	t.Run("nil query returns everyone", func(t *testing.T) {
		users, err := uc.SearchUsers(ctx, nil, nil, nil)

		assert.NoError(t, err)
		assert.Len(t, users, 3)
	})

	t.Run("pagination", func(t *testing.T) {
		first, skip := 1, 1
		users, err := uc.SearchUsers(ctx, nil, &first, &skip)

		assert.NoError(t, err)
		assert.Len(t, users, 1)
	})
}

func TestUserUsecase_Suggestions(t *testing.T) {
	client := setupTestClient(t)
	defer client.Close()

	uc := NewUserUsecase(client)
	ctx := context.Background()

	now := time.Now()
	var ids []int
	for i, username := range []string{"u1", "u2", "u3", "u4"} {
		u, err := fixtures.CreateTestUser(ctx, client, fixtures.UserFixture{
			Username:  username,
			Email:     username + "@example.com",
			Password:  "password123",
			CreatedAt: now.Add(time.Duration(i) * time.Minute),
		})
		require.NoError(t, err)
		ids = append(ids, u.ID)
	}
	// u1 подписан на u2
	_, err := fixtures.CreateTestFollow(ctx, client, ids[0], ids[1])
	require.NoError(t, err)

	t.Run("excludes caller and already-followed", func(t *testing.T) {
		users, err := uc.Suggestions(ctx, ids[0], nil)

		assert.NoError(t, err)
		require.Len(t, users, 2)
		for _, u := range users {
			assert.NotEqual(t, ids[0], u.ID)
			assert.NotEqual(t, ids[1], u.ID)
		}
	})

	t.Run("newest accounts first", func(t *testing.T) {
		users, err := uc.Suggestions(ctx, ids[0], nil)

		assert.NoError(t, err)
		require.Len(t, users, 2)
		assert.Equal(t, "u4", users[0].Username)
		assert.Equal(t, "u3", users[1].Username)
	})

	t.Run("respects first", func(t *testing.T) {
		first := 1
		users, err := uc.Suggestions(ctx, ids[0], &first)

		assert.NoError(t, err)
		assert.Len(t, users, 1)
	})
}

func TestUserUsecase_Follow(t *testing.T) {
	client := setupTestClient(t)
	defer client.Close()

	uc := NewUserUsecase(client)
	ctx := context.Background()

	alice, err := fixtures.CreateTestUser(ctx, client, fixtures.TestUser1)
	require.NoError(t, err)
	bob, err := fixtures.CreateTestUser(ctx, client, fixtures.TestUser2)
	require.NoError(t, err)

	t.Run("follow and idempotent re-follow", func(t *testing.T) {
		require.NoError(t, uc.Follow(ctx, alice.ID, bob.ID))
		require.NoError(t, uc.Follow(ctx, alice.ID, bob.ID))

		count, err := client.Follow.Query().Count(ctx)
		assert.NoError(t, err)
		assert.Equal(t, 1, count)

		ok, err := uc.IsFollowing(ctx, alice.ID, bob.ID)
		assert.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("self-follow always rejected", func(t *testing.T) {
		err := uc.Follow(ctx, alice.ID, alice.ID)
		assert.ErrorIs(t, err, errorsx.ErrBadInput)
	})

	t.Run("missing followee", func(t *testing.T) {
		err := uc.Follow(ctx, alice.ID, 99999)
		assert.ErrorIs(t, err, errorsx.ErrNotFound)
	})

	t.Run("unfollow and unfollow of absent edge", func(t *testing.T) {
		require.NoError(t, uc.Unfollow(ctx, alice.ID, bob.ID))

		ok, err := uc.IsFollowing(ctx, alice.ID, bob.ID)
		assert.NoError(t, err)
		assert.False(t, ok)

		// Повторный unfollow — тоже успех
		assert.NoError(t, uc.Unfollow(ctx, alice.ID, bob.ID))
	})
}

func TestUserUsecase_UpdateProfile(t *testing.T) {
	client := setupTestClient(t)
	defer client.Close()

	uc := NewUserUsecase(client)
	ctx := context.Background()

	alice, err := fixtures.CreateTestUser(ctx, client, fixtures.TestUser1)
	require.NoError(t, err)

	t.Run("partial update keeps other fields", func(t *testing.T) {
		name := "Alice Updated"
		u, err := uc.UpdateProfile(ctx, alice.ID, models.UpdateProfileInput{Name: &name})

		assert.NoError(t, err)
		require.NotNil(t, u)
		require.NotNil(t, u.Name)
		assert.Equal(t, "Alice Updated", *u.Name)
		require.NotNil(t, u.Bio)
		assert.Equal(t, fixtures.TestUser1.Bio, *u.Bio)
	})

	t.Run("missing user", func(t *testing.T) {
		name := "Ghost"
		_, err := uc.UpdateProfile(ctx, 99999, models.UpdateProfileInput{Name: &name})
		assert.ErrorIs(t, err, errorsx.ErrNotFound)
	})
}

func TestUserUsecase_CountsFor(t *testing.T) {
	client := setupTestClient(t)
	defer client.Close()

	uc := NewUserUsecase(client)
	ctx := context.Background()

	require.NoError(t, fixtures.SeedBasicData(ctx, client))
	alice, err := uc.UserByUsername(ctx, "alice")
	require.NoError(t, err)
	require.NotNil(t, alice)

	counts, err := uc.CountsFor(ctx, alice.ID)

	assert.NoError(t, err)
	require.NotNil(t, counts)
	assert.Equal(t, 1, counts.Followers)
	assert.Equal(t, 0, counts.Following)
	assert.Equal(t, 1, counts.Posts)
}
