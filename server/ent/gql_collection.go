// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"feedline/server/ent/comment"
	"feedline/server/ent/follow"
	"feedline/server/ent/like"
	"feedline/server/ent/post"
	"feedline/server/ent/user"

	"github.com/99designs/gqlgen/graphql"
)

// CollectFields tells the query-builder to eagerly load connected nodes by resolver context.
func (c *CommentQuery) CollectFields(ctx context.Context, satisfies ...string) (*CommentQuery, error) {
	fc := graphql.GetFieldContext(ctx)
	if fc == nil {
		return c, nil
	}
	if err := c.collectField(ctx, false, graphql.GetOperationContext(ctx), fc.Field, nil, satisfies...); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *CommentQuery) collectField(ctx context.Context, oneNode bool, opCtx *graphql.OperationContext, collected graphql.CollectedField, path []string, satisfies ...string) error {
	path = append([]string(nil), path...)
	var (
		unknownSeen    bool
		fieldSeen      = make(map[string]struct{}, len(comment.Columns))
		selectedFields = []string{comment.FieldID}
	)
	for _, field := range graphql.CollectFields(opCtx, collected.Selections, satisfies) {
		switch field.Name {

		case "author":
			var (
				alias = field.Alias
				path  = append(path, alias)
				query = (&UserClient{config: c.config}).Query()
			)
			if err := query.collectField(ctx, oneNode, opCtx, field, path, mayAddCondition(satisfies, userImplementors)...); err != nil {
				return err
			}
			c.withAuthor = query
			if _, ok := fieldSeen[comment.FieldAuthorID]; !ok {
				selectedFields = append(selectedFields, comment.FieldAuthorID)
				fieldSeen[comment.FieldAuthorID] = struct{}{}
			}

		case "post":
			var (
				alias = field.Alias
				path  = append(path, alias)
				query = (&PostClient{config: c.config}).Query()
			)
			if err := query.collectField(ctx, oneNode, opCtx, field, path, mayAddCondition(satisfies, postImplementors)...); err != nil {
				return err
			}
			c.withPost = query
			if _, ok := fieldSeen[comment.FieldPostID]; !ok {
				selectedFields = append(selectedFields, comment.FieldPostID)
				fieldSeen[comment.FieldPostID] = struct{}{}
			}
		case "content":
			if _, ok := fieldSeen[comment.FieldContent]; !ok {
				selectedFields = append(selectedFields, comment.FieldContent)
				fieldSeen[comment.FieldContent] = struct{}{}
			}
		case "authorID":
			if _, ok := fieldSeen[comment.FieldAuthorID]; !ok {
				selectedFields = append(selectedFields, comment.FieldAuthorID)
				fieldSeen[comment.FieldAuthorID] = struct{}{}
			}
		case "postID":
			if _, ok := fieldSeen[comment.FieldPostID]; !ok {
				selectedFields = append(selectedFields, comment.FieldPostID)
				fieldSeen[comment.FieldPostID] = struct{}{}
			}
		case "createdAt":
			if _, ok := fieldSeen[comment.FieldCreatedAt]; !ok {
				selectedFields = append(selectedFields, comment.FieldCreatedAt)
				fieldSeen[comment.FieldCreatedAt] = struct{}{}
			}
		case "updatedAt":
			if _, ok := fieldSeen[comment.FieldUpdatedAt]; !ok {
				selectedFields = append(selectedFields, comment.FieldUpdatedAt)
				fieldSeen[comment.FieldUpdatedAt] = struct{}{}
			}
		case "id":
		case "__typename":
		default:
			unknownSeen = true
		}
	}
	if !unknownSeen {
		c.Select(selectedFields...)
	}
	return nil
}

type commentPaginateArgs struct {
	first, last   *int
	after, before *Cursor
	opts          []CommentPaginateOption
}

func newCommentPaginateArgs(rv map[string]any) *commentPaginateArgs {
	args := &commentPaginateArgs{}
	if rv == nil {
		return args
	}
	if v := rv[firstField]; v != nil {
		args.first = v.(*int)
	}
	if v := rv[lastField]; v != nil {
		args.last = v.(*int)
	}
	if v := rv[afterField]; v != nil {
		args.after = v.(*Cursor)
	}
	if v := rv[beforeField]; v != nil {
		args.before = v.(*Cursor)
	}
	return args
}

// CollectFields tells the query-builder to eagerly load connected nodes by resolver context.
func (f *FollowQuery) CollectFields(ctx context.Context, satisfies ...string) (*FollowQuery, error) {
	fc := graphql.GetFieldContext(ctx)
	if fc == nil {
		return f, nil
	}
	if err := f.collectField(ctx, false, graphql.GetOperationContext(ctx), fc.Field, nil, satisfies...); err != nil {
		return nil, err
	}
	return f, nil
}

func (f *FollowQuery) collectField(ctx context.Context, oneNode bool, opCtx *graphql.OperationContext, collected graphql.CollectedField, path []string, satisfies ...string) error {
	path = append([]string(nil), path...)
	var (
		unknownSeen    bool
		fieldSeen      = make(map[string]struct{}, len(follow.Columns))
		selectedFields = []string{follow.FieldID}
	)
	for _, field := range graphql.CollectFields(opCtx, collected.Selections, satisfies) {
		switch field.Name {

		case "follower":
			var (
				alias = field.Alias
				path  = append(path, alias)
				query = (&UserClient{config: f.config}).Query()
			)
			if err := query.collectField(ctx, oneNode, opCtx, field, path, mayAddCondition(satisfies, userImplementors)...); err != nil {
				return err
			}
			f.withFollower = query
			if _, ok := fieldSeen[follow.FieldFollowerID]; !ok {
				selectedFields = append(selectedFields, follow.FieldFollowerID)
				fieldSeen[follow.FieldFollowerID] = struct{}{}
			}

		case "followee":
			var (
				alias = field.Alias
				path  = append(path, alias)
				query = (&UserClient{config: f.config}).Query()
			)
			if err := query.collectField(ctx, oneNode, opCtx, field, path, mayAddCondition(satisfies, userImplementors)...); err != nil {
				return err
			}
			f.withFollowee = query
			if _, ok := fieldSeen[follow.FieldFolloweeID]; !ok {
				selectedFields = append(selectedFields, follow.FieldFolloweeID)
				fieldSeen[follow.FieldFolloweeID] = struct{}{}
			}
		case "followerID":
			if _, ok := fieldSeen[follow.FieldFollowerID]; !ok {
				selectedFields = append(selectedFields, follow.FieldFollowerID)
				fieldSeen[follow.FieldFollowerID] = struct{}{}
			}
		case "followeeID":
			if _, ok := fieldSeen[follow.FieldFolloweeID]; !ok {
				selectedFields = append(selectedFields, follow.FieldFolloweeID)
				fieldSeen[follow.FieldFolloweeID] = struct{}{}
			}
		case "createdAt":
			if _, ok := fieldSeen[follow.FieldCreatedAt]; !ok {
				selectedFields = append(selectedFields, follow.FieldCreatedAt)
				fieldSeen[follow.FieldCreatedAt] = struct{}{}
			}
		case "id":
		case "__typename":
		default:
			unknownSeen = true
		}
	}
	if !unknownSeen {
		f.Select(selectedFields...)
	}
	return nil
}

type followPaginateArgs struct {
	first, last   *int
	after, before *Cursor
	opts          []FollowPaginateOption
}

func newFollowPaginateArgs(rv map[string]any) *followPaginateArgs {
	args := &followPaginateArgs{}
	if rv == nil {
		return args
	}
	if v := rv[firstField]; v != nil {
		args.first = v.(*int)
	}
	if v := rv[lastField]; v != nil {
		args.last = v.(*int)
	}
	if v := rv[afterField]; v != nil {
		args.after = v.(*Cursor)
	}
	if v := rv[beforeField]; v != nil {
		args.before = v.(*Cursor)
	}
	return args
}

// CollectFields tells the query-builder to eagerly load connected nodes by resolver context.
func (l *LikeQuery) CollectFields(ctx context.Context, satisfies ...string) (*LikeQuery, error) {
	fc := graphql.GetFieldContext(ctx)
	if fc == nil {
		return l, nil
	}
	if err := l.collectField(ctx, false, graphql.GetOperationContext(ctx), fc.Field, nil, satisfies...); err != nil {
		return nil, err
	}
	return l, nil
}

func (l *LikeQuery) collectField(ctx context.Context, oneNode bool, opCtx *graphql.OperationContext, collected graphql.CollectedField, path []string, satisfies ...string) error {
	path = append([]string(nil), path...)
	var (
		unknownSeen    bool
		fieldSeen      = make(map[string]struct{}, len(like.Columns))
		selectedFields = []string{like.FieldID}
	)
	for _, field := range graphql.CollectFields(opCtx, collected.Selections, satisfies) {
		switch field.Name {

		case "user":
			var (
				alias = field.Alias
				path  = append(path, alias)
				query = (&UserClient{config: l.config}).Query()
			)
			if err := query.collectField(ctx, oneNode, opCtx, field, path, mayAddCondition(satisfies, userImplementors)...); err != nil {
				return err
			}
			l.withUser = query
			if _, ok := fieldSeen[like.FieldUserID]; !ok {
				selectedFields = append(selectedFields, like.FieldUserID)
				fieldSeen[like.FieldUserID] = struct{}{}
			}

		case "post":
			var (
				alias = field.Alias
				path  = append(path, alias)
				query = (&PostClient{config: l.config}).Query()
			)
			if err := query.collectField(ctx, oneNode, opCtx, field, path, mayAddCondition(satisfies, postImplementors)...); err != nil {
				return err
			}
			l.withPost = query
			if _, ok := fieldSeen[like.FieldPostID]; !ok {
				selectedFields = append(selectedFields, like.FieldPostID)
				fieldSeen[like.FieldPostID] = struct{}{}
			}
		case "userID":
			if _, ok := fieldSeen[like.FieldUserID]; !ok {
				selectedFields = append(selectedFields, like.FieldUserID)
				fieldSeen[like.FieldUserID] = struct{}{}
			}
		case "postID":
			if _, ok := fieldSeen[like.FieldPostID]; !ok {
				selectedFields = append(selectedFields, like.FieldPostID)
				fieldSeen[like.FieldPostID] = struct{}{}
			}
		case "createdAt":
			if _, ok := fieldSeen[like.FieldCreatedAt]; !ok {
				selectedFields = append(selectedFields, like.FieldCreatedAt)
				fieldSeen[like.FieldCreatedAt] = struct{}{}
			}
		case "id":
		case "__typename":
		default:
			unknownSeen = true
		}
	}
	if !unknownSeen {
		l.Select(selectedFields...)
	}
	return nil
}

type likePaginateArgs struct {
	first, last   *int
	after, before *Cursor
	opts          []LikePaginateOption
}

func newLikePaginateArgs(rv map[string]any) *likePaginateArgs {
	args := &likePaginateArgs{}
	if rv == nil {
		return args
	}
	if v := rv[firstField]; v != nil {
		args.first = v.(*int)
	}
	if v := rv[lastField]; v != nil {
		args.last = v.(*int)
	}
	if v := rv[afterField]; v != nil {
		args.after = v.(*Cursor)
	}
	if v := rv[beforeField]; v != nil {
		args.before = v.(*Cursor)
	}
	return args
}

// CollectFields tells the query-builder to eagerly load connected nodes by resolver context.
func (po *PostQuery) CollectFields(ctx context.Context, satisfies ...string) (*PostQuery, error) {
	fc := graphql.GetFieldContext(ctx)
	if fc == nil {
		return po, nil
	}
	if err := po.collectField(ctx, false, graphql.GetOperationContext(ctx), fc.Field, nil, satisfies...); err != nil {
		return nil, err
	}
	return po, nil
}

func (po *PostQuery) collectField(ctx context.Context, oneNode bool, opCtx *graphql.OperationContext, collected graphql.CollectedField, path []string, satisfies ...string) error {
	path = append([]string(nil), path...)
	var (
		unknownSeen    bool
		fieldSeen      = make(map[string]struct{}, len(post.Columns))
		selectedFields = []string{post.FieldID}
	)
	for _, field := range graphql.CollectFields(opCtx, collected.Selections, satisfies) {
		switch field.Name {

		case "author":
			var (
				alias = field.Alias
				path  = append(path, alias)
				query = (&UserClient{config: po.config}).Query()
			)
			if err := query.collectField(ctx, oneNode, opCtx, field, path, mayAddCondition(satisfies, userImplementors)...); err != nil {
				return err
			}
			po.withAuthor = query
			if _, ok := fieldSeen[post.FieldAuthorID]; !ok {
				selectedFields = append(selectedFields, post.FieldAuthorID)
				fieldSeen[post.FieldAuthorID] = struct{}{}
			}

		case "comments":
			var (
				alias = field.Alias
				path  = append(path, alias)
				query = (&CommentClient{config: po.config}).Query()
			)
			if err := query.collectField(ctx, false, opCtx, field, path, mayAddCondition(satisfies, commentImplementors)...); err != nil {
				return err
			}
			po.WithNamedComments(alias, func(wq *CommentQuery) {
				*wq = *query
			})

		case "likes":
			var (
				alias = field.Alias
				path  = append(path, alias)
				query = (&LikeClient{config: po.config}).Query()
			)
			if err := query.collectField(ctx, false, opCtx, field, path, mayAddCondition(satisfies, likeImplementors)...); err != nil {
				return err
			}
			po.WithNamedLikes(alias, func(wq *LikeQuery) {
				*wq = *query
			})
		case "content":
			if _, ok := fieldSeen[post.FieldContent]; !ok {
				selectedFields = append(selectedFields, post.FieldContent)
				fieldSeen[post.FieldContent] = struct{}{}
			}
		case "authorID":
			if _, ok := fieldSeen[post.FieldAuthorID]; !ok {
				selectedFields = append(selectedFields, post.FieldAuthorID)
				fieldSeen[post.FieldAuthorID] = struct{}{}
			}
		case "createdAt":
			if _, ok := fieldSeen[post.FieldCreatedAt]; !ok {
				selectedFields = append(selectedFields, post.FieldCreatedAt)
				fieldSeen[post.FieldCreatedAt] = struct{}{}
			}
		case "updatedAt":
			if _, ok := fieldSeen[post.FieldUpdatedAt]; !ok {
				selectedFields = append(selectedFields, post.FieldUpdatedAt)
				fieldSeen[post.FieldUpdatedAt] = struct{}{}
			}
		case "id":
		case "__typename":
		default:
			unknownSeen = true
		}
	}
	if !unknownSeen {
		po.Select(selectedFields...)
	}
	return nil
}

type postPaginateArgs struct {
	first, last   *int
	after, before *Cursor
	opts          []PostPaginateOption
}

func newPostPaginateArgs(rv map[string]any) *postPaginateArgs {
	args := &postPaginateArgs{}
	if rv == nil {
		return args
	}
	if v := rv[firstField]; v != nil {
		args.first = v.(*int)
	}
	if v := rv[lastField]; v != nil {
		args.last = v.(*int)
	}
	if v := rv[afterField]; v != nil {
		args.after = v.(*Cursor)
	}
	if v := rv[beforeField]; v != nil {
		args.before = v.(*Cursor)
	}
	return args
}

// CollectFields tells the query-builder to eagerly load connected nodes by resolver context.
func (u *UserQuery) CollectFields(ctx context.Context, satisfies ...string) (*UserQuery, error) {
	fc := graphql.GetFieldContext(ctx)
	if fc == nil {
		return u, nil
	}
	if err := u.collectField(ctx, false, graphql.GetOperationContext(ctx), fc.Field, nil, satisfies...); err != nil {
		return nil, err
	}
	return u, nil
}

func (u *UserQuery) collectField(ctx context.Context, oneNode bool, opCtx *graphql.OperationContext, collected graphql.CollectedField, path []string, satisfies ...string) error {
	path = append([]string(nil), path...)
	var (
		unknownSeen    bool
		fieldSeen      = make(map[string]struct{}, len(user.Columns))
		selectedFields = []string{user.FieldID}
	)
	for _, field := range graphql.CollectFields(opCtx, collected.Selections, satisfies) {
		switch field.Name {

		case "posts":
			var (
				alias = field.Alias
				path  = append(path, alias)
				query = (&PostClient{config: u.config}).Query()
			)
			if err := query.collectField(ctx, false, opCtx, field, path, mayAddCondition(satisfies, postImplementors)...); err != nil {
				return err
			}
			u.WithNamedPosts(alias, func(wq *PostQuery) {
				*wq = *query
			})

		case "comments":
			var (
				alias = field.Alias
				path  = append(path, alias)
				query = (&CommentClient{config: u.config}).Query()
			)
			if err := query.collectField(ctx, false, opCtx, field, path, mayAddCondition(satisfies, commentImplementors)...); err != nil {
				return err
			}
			u.WithNamedComments(alias, func(wq *CommentQuery) {
				*wq = *query
			})

		case "likes":
			var (
				alias = field.Alias
				path  = append(path, alias)
				query = (&LikeClient{config: u.config}).Query()
			)
			if err := query.collectField(ctx, false, opCtx, field, path, mayAddCondition(satisfies, likeImplementors)...); err != nil {
				return err
			}
			u.WithNamedLikes(alias, func(wq *LikeQuery) {
				*wq = *query
			})

		case "following":
			var (
				alias = field.Alias
				path  = append(path, alias)
				query = (&FollowClient{config: u.config}).Query()
			)
			if err := query.collectField(ctx, false, opCtx, field, path, mayAddCondition(satisfies, followImplementors)...); err != nil {
				return err
			}
			u.WithNamedFollowing(alias, func(wq *FollowQuery) {
				*wq = *query
			})

		case "followers":
			var (
				alias = field.Alias
				path  = append(path, alias)
				query = (&FollowClient{config: u.config}).Query()
			)
			if err := query.collectField(ctx, false, opCtx, field, path, mayAddCondition(satisfies, followImplementors)...); err != nil {
				return err
			}
			u.WithNamedFollowers(alias, func(wq *FollowQuery) {
				*wq = *query
			})
		case "username":
			if _, ok := fieldSeen[user.FieldUsername]; !ok {
				selectedFields = append(selectedFields, user.FieldUsername)
				fieldSeen[user.FieldUsername] = struct{}{}
			}
		case "email":
			if _, ok := fieldSeen[user.FieldEmail]; !ok {
				selectedFields = append(selectedFields, user.FieldEmail)
				fieldSeen[user.FieldEmail] = struct{}{}
			}
		case "passwordHash":
			if _, ok := fieldSeen[user.FieldPasswordHash]; !ok {
				selectedFields = append(selectedFields, user.FieldPasswordHash)
				fieldSeen[user.FieldPasswordHash] = struct{}{}
			}
		case "name":
			if _, ok := fieldSeen[user.FieldName]; !ok {
				selectedFields = append(selectedFields, user.FieldName)
				fieldSeen[user.FieldName] = struct{}{}
			}
		case "bio":
			if _, ok := fieldSeen[user.FieldBio]; !ok {
				selectedFields = append(selectedFields, user.FieldBio)
				fieldSeen[user.FieldBio] = struct{}{}
			}
		case "avatar":
			if _, ok := fieldSeen[user.FieldAvatar]; !ok {
				selectedFields = append(selectedFields, user.FieldAvatar)
				fieldSeen[user.FieldAvatar] = struct{}{}
			}
		case "createdAt":
			if _, ok := fieldSeen[user.FieldCreatedAt]; !ok {
				selectedFields = append(selectedFields, user.FieldCreatedAt)
				fieldSeen[user.FieldCreatedAt] = struct{}{}
			}
		case "updatedAt":
			if _, ok := fieldSeen[user.FieldUpdatedAt]; !ok {
				selectedFields = append(selectedFields, user.FieldUpdatedAt)
				fieldSeen[user.FieldUpdatedAt] = struct{}{}
			}
		case "id":
		case "__typename":
		default:
			unknownSeen = true
		}
	}
	if !unknownSeen {
		u.Select(selectedFields...)
	}
	return nil
}

type userPaginateArgs struct {
	first, last   *int
	after, before *Cursor
	opts          []UserPaginateOption
}

func newUserPaginateArgs(rv map[string]any) *userPaginateArgs {
	args := &userPaginateArgs{}
	if rv == nil {
		return args
	}
	if v := rv[firstField]; v != nil {
		args.first = v.(*int)
	}
	if v := rv[lastField]; v != nil {
		args.last = v.(*int)
	}
	if v := rv[afterField]; v != nil {
		args.after = v.(*Cursor)
	}
	if v := rv[beforeField]; v != nil {
		args.before = v.(*Cursor)
	}
	return args
}

const (
	afterField     = "after"
	firstField     = "first"
	beforeField    = "before"
	lastField      = "last"
	orderByField   = "orderBy"
	directionField = "direction"
	fieldField     = "field"
	whereField     = "where"
)

func fieldArgs(ctx context.Context, whereInput any, path ...string) map[string]any {
	field := collectedField(ctx, path...)
	if field == nil || field.Arguments == nil {
		return nil
	}
	oc := graphql.GetOperationContext(ctx)
	args := field.ArgumentMap(oc.Variables)
	return unmarshalArgs(ctx, whereInput, args)
}

// unmarshalArgs allows extracting the field arguments from their raw representation.
func unmarshalArgs(ctx context.Context, whereInput any, args map[string]any) map[string]any {
	for _, k := range []string{firstField, lastField} {
		v, ok := args[k]
		if !ok {
			continue
		}
		i, err := graphql.UnmarshalInt(v)
		if err == nil {
			args[k] = &i
		}
	}
	for _, k := range []string{beforeField, afterField} {
		v, ok := args[k]
		if !ok {
			continue
		}
		c := &Cursor{}
		if c.UnmarshalGQL(v) == nil {
			args[k] = c
		}
	}
	if v, ok := args[whereField]; ok && whereInput != nil {
		if err := graphql.UnmarshalInputFromContext(ctx, v, whereInput); err == nil {
			args[whereField] = whereInput
		}
	}

	return args
}

// mayAddCondition appends another type condition to the satisfies list
// if it does not exist in the list.
func mayAddCondition(satisfies []string, typeCond []string) []string {
Cond:
	for _, c := range typeCond {
		for _, s := range satisfies {
			if c == s {
				continue Cond
			}
		}
		satisfies = append(satisfies, c)
	}
	return satisfies
}
