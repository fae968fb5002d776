package graphql

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"feedline/server/ent"
	"feedline/server/ent/enttest"
	"feedline/server/graphql/models"
	"feedline/server/pkg/loader"
	sharedauth "feedline/shared/auth"
	errorsx "feedline/shared/errors"
	"feedline/tests/fixtures"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupResolver(t *testing.T) (*Resolver, *ent.Client) {
	t.Setenv("JWT_SECRET", "test-secret")
	client := enttest.Open(t, "sqlite3", "file:ent?mode=memory&cache=shared&_fk=1")
	return NewResolver(client), client
}

func TestQueryResolver_Me(t *testing.T) {
	r, client := setupResolver(t)
	defer client.Close()

	q := &queryResolver{r}
	ctx := context.Background()

	alice, err := fixtures.CreateTestUser(ctx, client, fixtures.TestUser1)
	require.NoError(t, err)

	t.Run("anonymous viewer gets null", func(t *testing.T) {
		u, err := q.Me(sharedauth.WithUserID(ctx, 0))

		assert.NoError(t, err)
		assert.Nil(t, u)
	})

	t.Run("authenticated viewer gets own profile", func(t *testing.T) {
		u, err := q.Me(sharedauth.WithUserID(ctx, alice.ID))

		assert.NoError(t, err)
		require.NotNil(t, u)
		assert.Equal(t, alice.ID, u.ID)
	})

	t.Run("stale token for deleted account gets null", func(t *testing.T) {
		u, err := q.Me(sharedauth.WithUserID(ctx, 99999))

		assert.NoError(t, err)
		assert.Nil(t, u)
	})
}

func TestQueryResolver_User(t *testing.T) {
	r, client := setupResolver(t)
	defer client.Close()

	q := &queryResolver{r}
	ctx := context.Background()

	alice, err := fixtures.CreateTestUser(ctx, client, fixtures.TestUser1)
	require.NoError(t, err)

	t.Run("by id", func(t *testing.T) {
		u, err := q.User(ctx, &alice.ID, nil)

		assert.NoError(t, err)
		require.NotNil(t, u)
		assert.Equal(t, "alice", u.Username)
	})

	t.Run("by username", func(t *testing.T) {
		username := "alice"
		u, err := q.User(ctx, nil, &username)

		assert.NoError(t, err)
		require.NotNil(t, u)
		assert.Equal(t, alice.ID, u.ID)
	})

	t.Run("id takes precedence over username", func(t *testing.T) {
		username := "nobody"
		u, err := q.User(ctx, &alice.ID, &username)

		assert.NoError(t, err)
		require.NotNil(t, u)
		assert.Equal(t, alice.ID, u.ID)
	})

	t.Run("missing user is null", func(t *testing.T) {
		missing := 99999
		u, err := q.User(ctx, &missing, nil)

		assert.NoError(t, err)
		assert.Nil(t, u)
	})

	t.Run("no arguments is an error", func(t *testing.T) {
		_, err := q.User(ctx, nil, nil)
		assert.ErrorIs(t, err, errorsx.ErrBadInput)
	})
}

func TestQueryResolver_Feed(t *testing.T) {
	r, client := setupResolver(t)
	defer client.Close()

	q := &queryResolver{r}
	ctx := context.Background()

	require.NoError(t, fixtures.SeedBasicData(ctx, client))
	bob, err := r.UserUC.UserByUsername(ctx, "bob")
	require.NoError(t, err)
	require.NotNil(t, bob)

	t.Run("anonymous feed is empty", func(t *testing.T) {
		posts, err := q.Feed(sharedauth.WithUserID(ctx, 0), nil, nil)

		assert.NoError(t, err)
		assert.Empty(t, posts)
	})

	t.Run("bob sees alice and himself", func(t *testing.T) {
		posts, err := q.Feed(sharedauth.WithUserID(ctx, bob.ID), nil, nil)

		assert.NoError(t, err)
		assert.Len(t, posts, 2)
	})
}

func TestUserResolver_Posts(t *testing.T) {
	r, client := setupResolver(t)
	defer client.Close()

	u := &userResolver{r}
	ctx := context.Background()

	alice, err := fixtures.CreateTestUser(ctx, client, fixtures.TestUser1)
	require.NoError(t, err)

	now := time.Now()
	for i := 0; i < 12; i++ {
		_, err := client.Post.Create().
			SetContent(fmt.Sprintf("post %d", i)).
			SetAuthorID(alice.ID).
			SetCreatedAt(now.Add(time.Duration(i) * time.Minute)).
			Save(ctx)
		require.NoError(t, err)
	}

	t.Run("all posts, no pagination", func(t *testing.T) {
		posts, err := u.Posts(ctx, alice)

		assert.NoError(t, err)
		require.Len(t, posts, 12)
		assert.Equal(t, "post 11", posts[0].Content)
		assert.Equal(t, "post 0", posts[11].Content)
	})

	t.Run("length agrees with _count", func(t *testing.T) {
		posts, err := u.Posts(ctx, alice)
		require.NoError(t, err)

		counts, err := u.Count(ctx, alice)
		require.NoError(t, err)
		assert.Equal(t, counts.Posts, len(posts))
	})
}

func TestQueryResolver_FeedPrimesLoader(t *testing.T) {
	r, client := setupResolver(t)
	defer client.Close()

	q := &queryResolver{r}
	ctx := context.Background()

	alice, err := fixtures.CreateTestUser(ctx, client, fixtures.TestUser1)
	require.NoError(t, err)
	post, err := fixtures.CreateTestPost(ctx, client, alice.ID, "primed")
	require.NoError(t, err)

	// Контекст с загрузчиками, как его собирает HTTP-цепочка
	var lctx context.Context
	h := loader.Middleware(client, http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		lctx = req.Context()
	}))
	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/query", nil))
	require.NotNil(t, lctx)
	lctx = sharedauth.WithUserID(lctx, alice.ID)

	posts, err := q.Feed(lctx, nil, nil)
	require.NoError(t, err)
	require.Len(t, posts, 1)

	// Лента положила пост в loader: повторное разрешение поля не ходит в базу
	_, err = client.Post.Delete().Exec(ctx)
	require.NoError(t, err)

	got, err := r.postByID(lctx, post.ID)
	assert.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "primed", got.Content)
}

func TestMutationResolver_Scenario(t *testing.T) {
	r, client := setupResolver(t)
	defer client.Close()

	q := &queryResolver{r}
	m := &mutationResolver{r}
	ctx := context.Background()

	// Регистрация двух пользователей через мутации
	alicePayload, err := m.Register(ctx, models.RegisterInput{
		Username: "alice",
		Email:    "alice@example.com",
		Password: "password123",
	})
	require.NoError(t, err)
	bobPayload, err := m.Register(ctx, models.RegisterInput{
		Username: "bob",
		Email:    "bob@example.com",
		Password: "password123",
	})
	require.NoError(t, err)

	aliceCtx := sharedauth.WithUserID(ctx, alicePayload.User.ID)
	bobCtx := sharedauth.WithUserID(ctx, bobPayload.User.ID)

	post, err := m.CreatePost(aliceCtx, "hello feed")
	require.NoError(t, err)

	ok, err := m.FollowUser(bobCtx, alicePayload.User.ID)
	require.NoError(t, err)
	assert.True(t, ok)

	like, err := m.LikePost(bobCtx, post.ID)
	require.NoError(t, err)
	assert.Equal(t, post.ID, like.PostID)

	comment, err := m.CreateComment(bobCtx, post.ID, "nice one")
	require.NoError(t, err)
	assert.Equal(t, "nice one", comment.Content)

	// Лента боба содержит пост алисы
	posts, err := q.Feed(bobCtx, nil, nil)
	require.NoError(t, err)
	require.Len(t, posts, 1)
	assert.Equal(t, post.ID, posts[0].ID)

	// Счетчики и флаг liked со стороны поля Post
	p := &postResolver{r}
	counts, err := p.Count(ctx, post)
	require.NoError(t, err)
	assert.Equal(t, 1, counts.Likes)
	assert.Equal(t, 1, counts.Comments)

	liked, err := p.Liked(bobCtx, post)
	require.NoError(t, err)
	require.NotNil(t, liked)
	assert.True(t, *liked)

	liked, err = p.Liked(sharedauth.WithUserID(ctx, 0), post)
	require.NoError(t, err)
	require.NotNil(t, liked)
	assert.False(t, *liked)

	// Удаление поста каскадом убирает лайки и комментарии
	okDel, err := m.DeletePost(aliceCtx, post.ID)
	require.NoError(t, err)
	assert.True(t, okDel)

	likes, err := client.Like.Query().Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, likes)
	comments, err := client.Comment.Query().Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, comments)
}
