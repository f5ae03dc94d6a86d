// Package filter selects movies with expr-lang expressions such as
//
//	Rating >= 7.5 and releasedAfter("2020-01-01") and hasPoster()
//
// Movie fields are exposed as ID, Title, Overview, ReleaseDate, Year, Rating,
// PosterPath and BackdropPath.
package filter

import (
	"github.com/s0up4200/reloop/catalog"
	"github.com/s0up4200/reloop/tmdb"
)

// defaultCompiler is shared by CompileFilter
var defaultCompiler = NewExprCompiler(WithCache(64))

// CompileFilter compiles an expression with the shared caching compiler
func CompileFilter(expression string) (CompiledFilter, error) {
	return defaultCompiler.Compile(expression)
}

// Apply returns the movies matching f, preserving order. A nil filter matches everything.
func Apply(f Filter, movies []tmdb.Movie) []tmdb.Movie {
	if f == nil {
		return movies
	}

	matches := make([]tmdb.Movie, 0, len(movies))
	for _, movie := range movies {
		if f.Evaluate(movie) {
			matches = append(matches, movie)
		}
	}
	return matches
}

// ApplyPage returns a copy of page with only the matching results.
// Page counters are left as the upstream reported them.
func ApplyPage(f Filter, page *tmdb.Page[tmdb.Movie]) *tmdb.Page[tmdb.Movie] {
	if page == nil {
		return nil
	}
	out := *page
	out.Results = Apply(f, page.Results)
	return &out
}

// ApplyHome returns a new home view with every list filtered
func ApplyHome(f Filter, home *catalog.Home) *catalog.Home {
	if home == nil {
		return nil
	}
	return &catalog.Home{
		NowPlaying: Apply(f, home.NowPlaying),
		Popular:    Apply(f, home.Popular),
		TopRated:   Apply(f, home.TopRated),
		Upcoming:   Apply(f, home.Upcoming),
	}
}
