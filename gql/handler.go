package gql

import (
	"net/http"

	"github.com/graphql-go/graphql"
	"github.com/graphql-go/handler"
)

// NewHandler serves the schema over HTTP. POST executes queries; a browser GET
// gets the GraphQL playground when playground is enabled.
func NewHandler(schema graphql.Schema, playground bool) http.Handler {
	return handler.New(&handler.Config{
		Schema:     &schema,
		Pretty:     true,
		Playground: playground,
	})
}
