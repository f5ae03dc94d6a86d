package gql

import (
	"github.com/graphql-go/graphql"

	"github.com/s0up4200/reloop/catalog"
	"github.com/s0up4200/reloop/tmdb"
)

var movieType = graphql.NewObject(graphql.ObjectConfig{
	Name:        "Movie",
	Description: "A movie as listed by TMDB",
	Fields: graphql.Fields{
		"id": &graphql.Field{
			Type:    graphql.NewNonNull(graphql.Int),
			Resolve: movieField(func(m tmdb.Movie) any { return m.ID }),
		},
		"title": &graphql.Field{
			Type:    graphql.NewNonNull(graphql.String),
			Resolve: movieField(func(m tmdb.Movie) any { return m.Title }),
		},
		"overview": &graphql.Field{
			Type:    graphql.NewNonNull(graphql.String),
			Resolve: movieField(func(m tmdb.Movie) any { return m.Overview }),
		},
		"releaseDate": &graphql.Field{
			Type:    graphql.NewNonNull(graphql.String),
			Resolve: movieField(func(m tmdb.Movie) any { return m.ReleaseDate }),
		},
		"posterPath": &graphql.Field{
			Type:    graphql.String,
			Resolve: movieField(func(m tmdb.Movie) any { return optional(m.PosterPath) }),
		},
		"backdropPath": &graphql.Field{
			Type:    graphql.String,
			Resolve: movieField(func(m tmdb.Movie) any { return optional(m.BackdropPath) }),
		},
		"voteAverage": &graphql.Field{
			Type:    graphql.NewNonNull(graphql.Float),
			Resolve: movieField(func(m tmdb.Movie) any { return m.VoteAverage }),
		},
	},
})

var movieListType = graphql.NewNonNull(graphql.NewList(graphql.NewNonNull(movieType)))

var paginationType = graphql.NewObject(graphql.ObjectConfig{
	Name:        "Pagination",
	Description: "One page of a movie list",
	Fields: graphql.Fields{
		"page": &graphql.Field{
			Type:    graphql.NewNonNull(graphql.Int),
			Resolve: pageField(func(p *tmdb.Page[tmdb.Movie]) any { return p.Page }),
		},
		"results": &graphql.Field{
			Type:    movieListType,
			Resolve: pageField(func(p *tmdb.Page[tmdb.Movie]) any { return nonNil(p.Results) }),
		},
		"totalResults": &graphql.Field{
			Type:    graphql.NewNonNull(graphql.Int),
			Resolve: pageField(func(p *tmdb.Page[tmdb.Movie]) any { return p.TotalResults }),
		},
		"totalPages": &graphql.Field{
			Type:    graphql.NewNonNull(graphql.Int),
			Resolve: pageField(func(p *tmdb.Page[tmdb.Movie]) any { return p.TotalPages }),
		},
	},
})

var moviesHomeType = graphql.NewObject(graphql.ObjectConfig{
	Name:        "MoviesHome",
	Description: "The first page of every movie list",
	Fields:      homeFields(),
})

func homeFields() graphql.Fields {
	fields := graphql.Fields{}
	for _, category := range catalog.Categories() {
		fields[lowerFirst(pascal(category))] = &graphql.Field{
			Type: movieListType,
			Resolve: func(p graphql.ResolveParams) (any, error) {
				home, ok := p.Source.(*catalog.Home)
				if !ok || home == nil {
					return nil, nil
				}
				return nonNil(home.Movies(category)), nil
			},
		}
	}
	return fields
}

func movieField(get func(tmdb.Movie) any) graphql.FieldResolveFn {
	return func(p graphql.ResolveParams) (any, error) {
		switch m := p.Source.(type) {
		case tmdb.Movie:
			return get(m), nil
		case *tmdb.Movie:
			return get(*m), nil
		}
		return nil, nil
	}
}

func pageField(get func(*tmdb.Page[tmdb.Movie]) any) graphql.FieldResolveFn {
	return func(p graphql.ResolveParams) (any, error) {
		page, ok := p.Source.(*tmdb.Page[tmdb.Movie])
		if !ok || page == nil {
			return nil, nil
		}
		return get(page), nil
	}
}

// optional maps a nil pointer to a GraphQL null
func optional(s *string) any {
	if s == nil {
		return nil
	}
	return *s
}

// nonNil keeps non-null list fields from resolving to null on an empty upstream list
func nonNil(movies []tmdb.Movie) []tmdb.Movie {
	if movies == nil {
		return []tmdb.Movie{}
	}
	return movies
}
