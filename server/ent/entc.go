//go:build ignore
// +build ignore

package main

import (
	"log"

	"entgo.io/contrib/entgql"
	"entgo.io/ent/entc"
	"entgo.io/ent/entc/gen"
)

func main() {
	// ent.graphql — справочный снимок SDL по ent-схемам. gqlgen читает
	// только *.graphqls: рабочая схема пишется руками в schema.graphqls,
	// снимок нужен для сверки полей после изменения ent-схем.
	ex, err := entgql.NewExtension(
		entgql.WithSchemaGenerator(),
		entgql.WithSchemaPath("../graphql/ent.graphql"),
	)
	if err != nil {
		log.Fatalf("failed creating entgql extension: %v", err)
	}
	if err := entc.Generate("./schema", &gen.Config{},
		entc.Extensions(ex),
	); err != nil {
		log.Fatalf("ent codegen failed: %v", err)
	}
}
