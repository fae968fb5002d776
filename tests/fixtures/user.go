package fixtures

import (
	"context"
	"time"

	"feedline/server/ent"
	"feedline/shared/jwt"
)

// UserFixture represents a test user with all associated data
type UserFixture struct {
	Username  string
	Email     string
	Password  string
	Name      string
	Bio       string
	CreatedAt time.Time
}

// Default test users
var (
	TestUser1 = UserFixture{
		Username:  "alice",
		Email:     "alice@example.com",
		Password:  "password123",
		Name:      "Alice",
		Bio:       "First test user",
		CreatedAt: time.Now().Add(-24 * time.Hour),
	}

	TestUser2 = UserFixture{
		Username:  "bob",
		Email:     "bob@example.com",
		Password:  "password456",
		Name:      "Bob",
		CreatedAt: time.Now().Add(-12 * time.Hour),
	}

	TestUser3 = UserFixture{
		Username:  "carol",
		Email:     "carol@example.com",
		Password:  "password789",
		Name:      "Carol",
		CreatedAt: time.Now().Add(-6 * time.Hour),
	}
)

// CreateTestUser creates a user record in the database
func CreateTestUser(ctx context.Context, client *ent.Client, fixture UserFixture) (*ent.User, error) {
	hash, err := jwt.HashPassword(fixture.Password)
	if err != nil {
		return nil, err
	}
	create := client.User.Create().
		SetUsername(fixture.Username).
		SetEmail(fixture.Email).
		SetPasswordHash(hash).
		SetName(fixture.Name)
	if fixture.Bio != "" {
		create = create.SetBio(fixture.Bio)
	}
	if !fixture.CreatedAt.IsZero() {
		create = create.SetCreatedAt(fixture.CreatedAt)
	}
	return create.Save(ctx)
}

// CreateTestPost creates a post record in the database
func CreateTestPost(ctx context.Context, client *ent.Client, authorID int, content string) (*ent.Post, error) {
	return client.Post.Create().
		SetContent(content).
		SetAuthorID(authorID).
		Save(ctx)
}

// CreateTestComment creates a comment record in the database
func CreateTestComment(ctx context.Context, client *ent.Client, authorID, postID int, content string) (*ent.Comment, error) {
	return client.Comment.Create().
		SetContent(content).
		SetAuthorID(authorID).
		SetPostID(postID).
		Save(ctx)
}

// CreateTestFollow links follower to followee
func CreateTestFollow(ctx context.Context, client *ent.Client, followerID, followeeID int) (*ent.Follow, error) {
	return client.Follow.Create().
		SetFollowerID(followerID).
		SetFolloweeID(followeeID).
		Save(ctx)
}

// CreateTestLike adds a like from user to post
func CreateTestLike(ctx context.Context, client *ent.Client, userID, postID int) (*ent.Like, error) {
	return client.Like.Create().
		SetUserID(userID).
		SetPostID(postID).
		Save(ctx)
}

// SeedBasicData creates the default users with a few posts and relations
func SeedBasicData(ctx context.Context, client *ent.Client) error {
	alice, err := CreateTestUser(ctx, client, TestUser1)
	if err != nil {
		return err
	}
	bob, err := CreateTestUser(ctx, client, TestUser2)
	if err != nil {
		return err
	}
	if _, err := CreateTestUser(ctx, client, TestUser3); err != nil {
		return err
	}
	post, err := CreateTestPost(ctx, client, alice.ID, "Hello from alice")
	if err != nil {
		return err
	}
	if _, err := CreateTestPost(ctx, client, bob.ID, "Hello from bob"); err != nil {
		return err
	}
	if _, err := CreateTestFollow(ctx, client, bob.ID, alice.ID); err != nil {
		return err
	}
	if _, err := CreateTestLike(ctx, client, bob.ID, post.ID); err != nil {
		return err
	}
	if _, err := CreateTestComment(ctx, client, bob.ID, post.ID, "Nice post"); err != nil {
		return err
	}
	return nil
}
