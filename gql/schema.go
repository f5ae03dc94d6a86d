// Package gql exposes the movie catalog as a GraphQL schema.
//
// Every query field is nullable: a failed resolver yields a null field plus a
// GraphQL error whose extensions carry code, message and reason.
package gql

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/graphql-go/graphql"
	"github.com/rs/zerolog"

	"github.com/s0up4200/reloop/apierror"
	"github.com/s0up4200/reloop/catalog"
	"github.com/s0up4200/reloop/tmdb"
)

// Catalog is the resolver backend. *catalog.Service satisfies it.
type Catalog interface {
	Fetch(ctx context.Context, category catalog.Category, page int) (*tmdb.Page[tmdb.Movie], error)
	Home(ctx context.Context) (*catalog.Home, error)
}

var _ Catalog = (*catalog.Service)(nil)

var (
	fetchFailed  = apierror.Translator(http.StatusInternalServerError, apierror.MessageFetchFailed)
	invalidInput = apierror.Translator(http.StatusBadRequest, apierror.MessageInvalidInput)
)

type resolver struct {
	catalog Catalog
	logger  zerolog.Logger
}

// NewSchema builds the query schema on top of a catalog backend
func NewSchema(backend Catalog, logger zerolog.Logger) (graphql.Schema, error) {
	r := &resolver{
		catalog: backend,
		logger:  logger.With().Str("component", "graphql").Logger(),
	}

	fields := graphql.Fields{}
	for _, category := range catalog.Categories() {
		fields["movies"+pascal(category)] = &graphql.Field{
			Type:        paginationType,
			Description: fmt.Sprintf("%s movies, one page at a time", category.Title()),
			Args: graphql.FieldConfigArgument{
				"page": &graphql.ArgumentConfig{
					Type:        graphql.Int,
					Description: "Page number starting at 1; the first page when omitted",
				},
			},
			Resolve: r.page(category),
		}
	}
	fields["moviesHome"] = &graphql.Field{
		Type:        moviesHomeType,
		Description: "The first page of every movie list, fetched concurrently",
		Resolve:     r.home,
	}

	schema, err := graphql.NewSchema(graphql.SchemaConfig{
		Query: graphql.NewObject(graphql.ObjectConfig{
			Name:   "Query",
			Fields: fields,
		}),
	})
	if err != nil {
		return graphql.Schema{}, fmt.Errorf("failed to build schema: %w", err)
	}
	return schema, nil
}

func (r *resolver) page(category catalog.Category) graphql.FieldResolveFn {
	return func(p graphql.ResolveParams) (any, error) {
		page := 0
		if v, ok := p.Args["page"].(int); ok {
			if v < 1 {
				return nil, invalidInput(fmt.Errorf("%w: got %d", catalog.ErrInvalidPage, v))
			}
			page = v
		}

		result, err := r.catalog.Fetch(p.Context, category, page)
		if err != nil {
			return nil, r.translate(err, p.Info.FieldName)
		}
		return result, nil
	}
}

func (r *resolver) home(p graphql.ResolveParams) (any, error) {
	home, err := r.catalog.Home(p.Context)
	if err != nil {
		return nil, r.translate(err, p.Info.FieldName)
	}
	return home, nil
}

func (r *resolver) translate(err error, field string) *apierror.ClientError {
	if errors.Is(err, catalog.ErrInvalidPage) {
		return invalidInput(err)
	}

	r.logger.Error().
		Err(err).
		Str("field", field).
		Msg("Query failed")
	return fetchFailed(err)
}

// pascal turns a category into its field suffix, e.g. NowPlaying
func pascal(c catalog.Category) string {
	return strings.ReplaceAll(c.Title(), " ", "")
}

func lowerFirst(s string) string {
	if s == "" {
		return s
	}
	return strings.ToLower(s[:1]) + s[1:]
}
