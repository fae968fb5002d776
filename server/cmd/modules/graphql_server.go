package modules

import (
	"github.com/99designs/gqlgen/graphql/handler"

	"feedline/server/ent"
	"feedline/server/graphql"
	"feedline/server/graphql/generated"
	"feedline/server/pkg/shield"

	errorsx "feedline/shared/errors"
)

// NewGraphQLServer собирает gqlgen-сервер: резолверы, shield перед каждым
// корневым полем и презентер ошибок с таксономией кодов.
func NewGraphQLServer(client *ent.Client) *handler.Server {
	resolver := graphql.NewResolver(client)

	srv := handler.NewDefaultServer(generated.NewExecutableSchema(generated.Config{
		Resolvers: resolver,
	}))

	sh := shield.New(client)
	srv.AroundOperations(sh.OperationMiddleware)
	srv.AroundFields(sh.FieldMiddleware)
	srv.SetErrorPresenter(errorsx.Presenter)

	return srv
}
