package catalog

import (
	"github.com/s0up4200/reloop/tmdb"
)

// Getter defines the upstream transport the resolvers run on.
// *tmdb.Client satisfies it.
type Getter = tmdb.JSONGetter

// MovieFormatter defines the interface for formatting movie output
type MovieFormatter interface {
	FormatPage(category Category, page *tmdb.Page[tmdb.Movie], options FormatOptions) string
	FormatHome(home *Home, options FormatOptions) string
}

// FormatOptions contains options for formatting output
type FormatOptions struct {
	ShowOverview bool
	ShowImages   bool
}
