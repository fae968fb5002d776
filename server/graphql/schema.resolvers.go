package graphql

// This file will be automatically regenerated based on the schema, any resolver implementations
// will be copied through when generating and any unknown code will be moved to the end.
// Code generated by github.com/99designs/gqlgen version v0.17.75

import (
	"context"
	"feedline/server/ent"
	"feedline/server/graphql/generated"
	"feedline/server/graphql/models"
	sharedauth "feedline/shared/auth"
	errorsx "feedline/shared/errors"
	"fmt"
)

// Author is the resolver for the author field.
func (r *commentResolver) Author(ctx context.Context, obj *ent.Comment) (*ent.User, error) {
	return r.userByID(ctx, obj.AuthorID)
}

// Post is the resolver for the post field.
func (r *commentResolver) Post(ctx context.Context, obj *ent.Comment) (*ent.Post, error) {
	return r.postByID(ctx, obj.PostID)
}

// User is the resolver for the user field.
func (r *likeResolver) User(ctx context.Context, obj *ent.Like) (*ent.User, error) {
	return r.userByID(ctx, obj.UserID)
}

// Post is the resolver for the post field.
func (r *likeResolver) Post(ctx context.Context, obj *ent.Like) (*ent.Post, error) {
	return r.postByID(ctx, obj.PostID)
}

// Register is the resolver for the register field.
func (r *mutationResolver) Register(ctx context.Context, input models.RegisterInput) (*models.AuthPayload, error) {
	return r.AuthUC.Register(ctx, input)
}

// Login is the resolver for the login field.
func (r *mutationResolver) Login(ctx context.Context, input models.LoginInput) (*models.AuthPayload, error) {
	return r.AuthUC.Login(ctx, input)
}

// CreatePost is the resolver for the createPost field.
func (r *mutationResolver) CreatePost(ctx context.Context, content string) (*ent.Post, error) {
	userID, err := sharedauth.UserIDFromContext(ctx)
	if err != nil {
		return nil, errorsx.ErrNotAuthenticated
	}
	return r.PostUC.Create(ctx, userID, content)
}

// UpdatePost is the resolver for the updatePost field.
func (r *mutationResolver) UpdatePost(ctx context.Context, id int, content string) (*ent.Post, error) {
	userID, err := sharedauth.UserIDFromContext(ctx)
	if err != nil {
		return nil, errorsx.ErrNotAuthenticated
	}
	return r.PostUC.Update(ctx, userID, id, content)
}

// DeletePost is the resolver for the deletePost field.
func (r *mutationResolver) DeletePost(ctx context.Context, id int) (bool, error) {
	userID, err := sharedauth.UserIDFromContext(ctx)
	if err != nil {
		return false, errorsx.ErrNotAuthenticated
	}
	if err := r.PostUC.Delete(ctx, userID, id); err != nil {
		return false, err
	}
	return true, nil
}

// LikePost is the resolver for the likePost field.
func (r *mutationResolver) LikePost(ctx context.Context, postID int) (*ent.Like, error) {
	userID, err := sharedauth.UserIDFromContext(ctx)
	if err != nil {
		return nil, errorsx.ErrNotAuthenticated
	}
	return r.PostUC.LikePost(ctx, userID, postID)
}

// UnlikePost всегда успешен: отсутствие лайка — не ошибка
func (r *mutationResolver) UnlikePost(ctx context.Context, postID int) (bool, error) {
	userID, err := sharedauth.UserIDFromContext(ctx)
	if err != nil {
		return false, errorsx.ErrNotAuthenticated
	}
	if err := r.PostUC.UnlikePost(ctx, userID, postID); err != nil {
		return false, err
	}
	return true, nil
}

// CreateComment is the resolver for the createComment field.
func (r *mutationResolver) CreateComment(ctx context.Context, postID int, content string) (*ent.Comment, error) {
	userID, err := sharedauth.UserIDFromContext(ctx)
	if err != nil {
		return nil, errorsx.ErrNotAuthenticated
	}
	return r.CommentUC.Create(ctx, userID, postID, content)
}

// UpdateComment is the resolver for the updateComment field.
func (r *mutationResolver) UpdateComment(ctx context.Context, id int, content string) (*ent.Comment, error) {
	userID, err := sharedauth.UserIDFromContext(ctx)
	if err != nil {
		return nil, errorsx.ErrNotAuthenticated
	}
	return r.CommentUC.Update(ctx, userID, id, content)
}

// DeleteComment is the resolver for the deleteComment field.
func (r *mutationResolver) DeleteComment(ctx context.Context, id int) (bool, error) {
	userID, err := sharedauth.UserIDFromContext(ctx)
	if err != nil {
		return false, errorsx.ErrNotAuthenticated
	}
	if err := r.CommentUC.Delete(ctx, userID, id); err != nil {
		return false, err
	}
	return true, nil
}

// FollowUser is the resolver for the followUser field.
func (r *mutationResolver) FollowUser(ctx context.Context, userID int) (bool, error) {
	followerID, err := sharedauth.UserIDFromContext(ctx)
	if err != nil {
		return false, errorsx.ErrNotAuthenticated
	}
	if err := r.UserUC.Follow(ctx, followerID, userID); err != nil {
		return false, err
	}
	return true, nil
}

// UnfollowUser is the resolver for the unfollowUser field.
func (r *mutationResolver) UnfollowUser(ctx context.Context, userID int) (bool, error) {
	followerID, err := sharedauth.UserIDFromContext(ctx)
	if err != nil {
		return false, errorsx.ErrNotAuthenticated
	}
	if err := r.UserUC.Unfollow(ctx, followerID, userID); err != nil {
		return false, err
	}
	return true, nil
}

// UpdateProfile is the resolver for the updateProfile field.
func (r *mutationResolver) UpdateProfile(ctx context.Context, input models.UpdateProfileInput) (*ent.User, error) {
	userID, err := sharedauth.UserIDFromContext(ctx)
	if err != nil {
		return nil, errorsx.ErrNotAuthenticated
	}
	return r.UserUC.UpdateProfile(ctx, userID, input)
}

// Author is the resolver for the author field.
func (r *postResolver) Author(ctx context.Context, obj *ent.Post) (*ent.User, error) {
	return r.userByID(ctx, obj.AuthorID)
}

// Likes is the resolver for the likes field.
func (r *postResolver) Likes(ctx context.Context, obj *ent.Post) ([]*ent.Like, error) {
	return r.PostUC.LikesFor(ctx, obj.ID)
}

// Comments is the resolver for the comments field.
func (r *postResolver) Comments(ctx context.Context, obj *ent.Post) ([]*ent.Comment, error) {
	return r.PostUC.CommentsFor(ctx, obj.ID)
}

// Liked: лайкнул ли зритель пост. Для анонима false, из кэша не берется.
func (r *postResolver) Liked(ctx context.Context, obj *ent.Post) (*bool, error) {
	viewerID := sharedauth.ViewerID(ctx)
	liked, err := r.PostUC.Liked(ctx, viewerID, obj.ID)
	if err != nil {
		return nil, err
	}
	return &liked, nil
}

// Count is the resolver for the _count field.
func (r *postResolver) Count(ctx context.Context, obj *ent.Post) (*models.PostCount, error) {
	return r.PostUC.CountsFor(ctx, obj.ID)
}

// Me возвращает текущего пользователя, null для анонима
func (r *queryResolver) Me(ctx context.Context) (*ent.User, error) {
	userID, err := sharedauth.UserIDFromContext(ctx)
	if err != nil {
		return nil, nil
	}
	u, err := r.UserUC.GetUserByID(ctx, userID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, err
	}
	return u, nil
}

// User ищет по id или по username. Нужен хотя бы один аргумент.
func (r *queryResolver) User(ctx context.Context, id *int, username *string) (*ent.User, error) {
	if id != nil {
		u, err := r.UserUC.GetUserByID(ctx, *id)
		if err != nil {
			if ent.IsNotFound(err) {
				return nil, nil
			}
			return nil, err
		}
		return u, nil
	}
	if username != nil {
		return r.UserUC.UserByUsername(ctx, *username)
	}
	return nil, fmt.Errorf("%w: you must provide either an id or a username", errorsx.ErrBadInput)
}

// Users is the resolver for the users field.
func (r *queryResolver) Users(ctx context.Context, query *string, first *int, skip *int) ([]*ent.User, error) {
	return r.UserUC.SearchUsers(ctx, query, first, skip)
}

// UserSuggestions: кого почитать. Для анонима — пустой список, не ошибка.
func (r *queryResolver) UserSuggestions(ctx context.Context, first *int) ([]*ent.User, error) {
	userID := sharedauth.ViewerID(ctx)
	if userID == 0 {
		return []*ent.User{}, nil
	}
	return r.UserUC.Suggestions(ctx, userID, first)
}

// Post is the resolver for the post field.
func (r *queryResolver) Post(ctx context.Context, id int) (*ent.Post, error) {
	p, err := r.PostUC.GetPostByID(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, err
	}
	return p, nil
}

// Feed: подписки плюс собственные посты. Для анонима — пустой список.
func (r *queryResolver) Feed(ctx context.Context, first *int, skip *int) ([]*ent.Post, error) {
	userID := sharedauth.ViewerID(ctx)
	if userID == 0 {
		return []*ent.Post{}, nil
	}
	posts, err := r.PostUC.Feed(ctx, userID, first, skip)
	if err != nil {
		return nil, err
	}
	r.primePosts(ctx, posts)
	return posts, nil
}

// UserPosts is the resolver for the userPosts field.
func (r *queryResolver) UserPosts(ctx context.Context, userID int, first *int, skip *int) ([]*ent.Post, error) {
	posts, err := r.PostUC.UserPosts(ctx, userID, first, skip)
	if err != nil {
		return nil, err
	}
	r.primePosts(ctx, posts)
	return posts, nil
}

// Followers is the resolver for the followers field.
func (r *userResolver) Followers(ctx context.Context, obj *ent.User) ([]*ent.User, error) {
	ids, err := r.UserUC.FollowerIDs(ctx, obj.ID)
	if err != nil {
		return nil, err
	}
	return r.usersByIDs(ctx, ids)
}

// Following is the resolver for the following field.
func (r *userResolver) Following(ctx context.Context, obj *ent.User) ([]*ent.User, error) {
	ids, err := r.UserUC.FollowingIDs(ctx, obj.ID)
	if err != nil {
		return nil, err
	}
	return r.usersByIDs(ctx, ids)
}

// Posts отдает все посты пользователя без пагинации; срез — в userPosts
func (r *userResolver) Posts(ctx context.Context, obj *ent.User) ([]*ent.Post, error) {
	return r.PostUC.AllUserPosts(ctx, obj.ID)
}

// IsFollowing: подписан ли зритель на пользователя. Для анонима false.
func (r *userResolver) IsFollowing(ctx context.Context, obj *ent.User) (*bool, error) {
	viewerID := sharedauth.ViewerID(ctx)
	if viewerID == 0 {
		v := false
		return &v, nil
	}
	following, err := r.UserUC.IsFollowing(ctx, viewerID, obj.ID)
	if err != nil {
		return nil, err
	}
	return &following, nil
}

// Count is the resolver for the _count field.
func (r *userResolver) Count(ctx context.Context, obj *ent.User) (*models.UserCount, error) {
	return r.UserUC.CountsFor(ctx, obj.ID)
}

// Comment returns generated.CommentResolver implementation.
func (r *Resolver) Comment() generated.CommentResolver { return &commentResolver{r} }

// Like returns generated.LikeResolver implementation.
func (r *Resolver) Like() generated.LikeResolver { return &likeResolver{r} }

// Mutation returns generated.MutationResolver implementation.
func (r *Resolver) Mutation() generated.MutationResolver { return &mutationResolver{r} }

// Post returns generated.PostResolver implementation.
func (r *Resolver) Post() generated.PostResolver { return &postResolver{r} }

// Query returns generated.QueryResolver implementation.
func (r *Resolver) Query() generated.QueryResolver { return &queryResolver{r} }

// User returns generated.UserResolver implementation.
func (r *Resolver) User() generated.UserResolver { return &userResolver{r} }

type commentResolver struct{ *Resolver }
type likeResolver struct{ *Resolver }
type mutationResolver struct{ *Resolver }
type postResolver struct{ *Resolver }
type queryResolver struct{ *Resolver }
type userResolver struct{ *Resolver }
