// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"github.com/99designs/gqlgen/graphql"
)

func (c *Comment) Author(ctx context.Context) (*User, error) {
	result, err := c.Edges.AuthorOrErr()
	if IsNotLoaded(err) {
		result, err = c.QueryAuthor().Only(ctx)
	}
	return result, err
}

func (c *Comment) Post(ctx context.Context) (*Post, error) {
	result, err := c.Edges.PostOrErr()
	if IsNotLoaded(err) {
		result, err = c.QueryPost().Only(ctx)
	}
	return result, err
}

func (f *Follow) Follower(ctx context.Context) (*User, error) {
	result, err := f.Edges.FollowerOrErr()
	if IsNotLoaded(err) {
		result, err = f.QueryFollower().Only(ctx)
	}
	return result, err
}

func (f *Follow) Followee(ctx context.Context) (*User, error) {
	result, err := f.Edges.FolloweeOrErr()
	if IsNotLoaded(err) {
		result, err = f.QueryFollowee().Only(ctx)
	}
	return result, err
}

func (l *Like) User(ctx context.Context) (*User, error) {
	result, err := l.Edges.UserOrErr()
	if IsNotLoaded(err) {
		result, err = l.QueryUser().Only(ctx)
	}
	return result, err
}

func (l *Like) Post(ctx context.Context) (*Post, error) {
	result, err := l.Edges.PostOrErr()
	if IsNotLoaded(err) {
		result, err = l.QueryPost().Only(ctx)
	}
	return result, err
}

func (po *Post) Author(ctx context.Context) (*User, error) {
	result, err := po.Edges.AuthorOrErr()
	if IsNotLoaded(err) {
		result, err = po.QueryAuthor().Only(ctx)
	}
	return result, err
}

func (po *Post) Comments(ctx context.Context) (result []*Comment, err error) {
	if fc := graphql.GetFieldContext(ctx); fc != nil && fc.Field.Alias != "" {
		result, err = po.NamedComments(graphql.GetFieldContext(ctx).Field.Alias)
	} else {
		result, err = po.Edges.CommentsOrErr()
	}
	if IsNotLoaded(err) {
		result, err = po.QueryComments().All(ctx)
	}
	return result, err
}

func (po *Post) Likes(ctx context.Context) (result []*Like, err error) {
	if fc := graphql.GetFieldContext(ctx); fc != nil && fc.Field.Alias != "" {
		result, err = po.NamedLikes(graphql.GetFieldContext(ctx).Field.Alias)
	} else {
		result, err = po.Edges.LikesOrErr()
	}
	if IsNotLoaded(err) {
		result, err = po.QueryLikes().All(ctx)
	}
	return result, err
}

func (u *User) Posts(ctx context.Context) (result []*Post, err error) {
	if fc := graphql.GetFieldContext(ctx); fc != nil && fc.Field.Alias != "" {
		result, err = u.NamedPosts(graphql.GetFieldContext(ctx).Field.Alias)
	} else {
		result, err = u.Edges.PostsOrErr()
	}
	if IsNotLoaded(err) {
		result, err = u.QueryPosts().All(ctx)
	}
	return result, err
}

func (u *User) Comments(ctx context.Context) (result []*Comment, err error) {
	if fc := graphql.GetFieldContext(ctx); fc != nil && fc.Field.Alias != "" {
		result, err = u.NamedComments(graphql.GetFieldContext(ctx).Field.Alias)
	} else {
		result, err = u.Edges.CommentsOrErr()
	}
	if IsNotLoaded(err) {
		result, err = u.QueryComments().All(ctx)
	}
	return result, err
}

func (u *User) Likes(ctx context.Context) (result []*Like, err error) {
	if fc := graphql.GetFieldContext(ctx); fc != nil && fc.Field.Alias != "" {
		result, err = u.NamedLikes(graphql.GetFieldContext(ctx).Field.Alias)
	} else {
		result, err = u.Edges.LikesOrErr()
	}
	if IsNotLoaded(err) {
		result, err = u.QueryLikes().All(ctx)
	}
	return result, err
}

func (u *User) Following(ctx context.Context) (result []*Follow, err error) {
	if fc := graphql.GetFieldContext(ctx); fc != nil && fc.Field.Alias != "" {
		result, err = u.NamedFollowing(graphql.GetFieldContext(ctx).Field.Alias)
	} else {
		result, err = u.Edges.FollowingOrErr()
	}
	if IsNotLoaded(err) {
		result, err = u.QueryFollowing().All(ctx)
	}
	return result, err
}

func (u *User) Followers(ctx context.Context) (result []*Follow, err error) {
	if fc := graphql.GetFieldContext(ctx); fc != nil && fc.Field.Alias != "" {
		result, err = u.NamedFollowers(graphql.GetFieldContext(ctx).Field.Alias)
	} else {
		result, err = u.Edges.FollowersOrErr()
	}
	if IsNotLoaded(err) {
		result, err = u.QueryFollowers().All(ctx)
	}
	return result, err
}
