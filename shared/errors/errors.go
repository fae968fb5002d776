package errorsx

import (
	"context"
	"errors"
	"log"

	entruntime "entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/99designs/gqlgen/graphql"
	"github.com/vektah/gqlparser/v2/gqlerror"
)

// Sentinels бизнес-ошибок. Резолверы оборачивают их через fmt.Errorf("%w"),
// презентер мапит на GraphQL extensions.code.
var (
	ErrNotAuthenticated = errors.New("not authenticated")
	ErrNotAuthorized    = errors.New("not authorized")
	ErrNotFound         = errors.New("not found")
	ErrBadInput         = errors.New("bad input")
)

// Code значения для extensions.code в GraphQL ответе
const (
	CodeUnauthenticated = "UNAUTHENTICATED"
	CodeForbidden       = "FORBIDDEN"
	CodeNotFound        = "NOT_FOUND"
	CodeBadInput        = "BAD_USER_INPUT"
	CodeTimeout         = "TIMEOUT"
	CodeInternal        = "INTERNAL_SERVER_ERROR"
)

// CodeFor классифицирует ошибку по таксономии
func CodeFor(err error) string {
	switch {
	case errors.Is(err, ErrNotAuthenticated):
		return CodeUnauthenticated
	case errors.Is(err, ErrNotAuthorized):
		return CodeForbidden
	case errors.Is(err, ErrNotFound) || isEntNotFound(err):
		return CodeNotFound
	case errors.Is(err, ErrBadInput):
		return CodeBadInput
	case errors.Is(err, context.DeadlineExceeded):
		return CodeTimeout
	default:
		return CodeInternal
	}
}

// Presenter нормализует ошибки резолверов для клиента.
// Внутренние ошибки (БД, constraint) логируются и не уходят наружу verbatim.
func Presenter(ctx context.Context, err error) *gqlerror.Error {
	gqlErr := graphql.DefaultErrorPresenter(ctx, err)
	code := CodeFor(err)

	switch code {
	case CodeInternal:
		log.Printf("❌ [GraphQL] internal error: %v", err)
		gqlErr.Message = "internal server error"
	case CodeTimeout:
		gqlErr.Message = "request timed out"
	}

	if gqlErr.Extensions == nil {
		gqlErr.Extensions = map[string]interface{}{}
	}
	gqlErr.Extensions["code"] = code
	return gqlErr
}

// isEntNotFound распознает not found от ent без импорта сгенерированных пакетов
func isEntNotFound(err error) bool {
	var nf *entruntime.NotFoundError
	return errors.As(err, &nf)
}
