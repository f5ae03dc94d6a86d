package catalog

import (
	"fmt"
	"strings"
)

// Category identifies one of the TMDB movie lists served by the facade
type Category int

const (
	// CategoryNowPlaying lists movies currently in theatres
	CategoryNowPlaying Category = iota
	// CategoryPopular lists movies ordered by popularity
	CategoryPopular
	// CategoryTopRated lists movies ordered by rating
	CategoryTopRated
	// CategoryUpcoming lists movies about to be released
	CategoryUpcoming
)

// homeCategories is the fixed field order of the home view
var homeCategories = []Category{
	CategoryNowPlaying,
	CategoryPopular,
	CategoryTopRated,
	CategoryUpcoming,
}

// Categories returns all categories in home view order
func Categories() []Category {
	out := make([]Category, len(homeCategories))
	copy(out, homeCategories)
	return out
}

// String returns the snake_case name of a Category
func (c Category) String() string {
	switch c {
	case CategoryNowPlaying:
		return "now_playing"
	case CategoryPopular:
		return "popular"
	case CategoryTopRated:
		return "top_rated"
	case CategoryUpcoming:
		return "upcoming"
	default:
		return "unknown"
	}
}

// Path returns the upstream resource path of a Category
func (c Category) Path() string {
	return "/movie/" + c.String()
}

// Title returns a human readable name
func (c Category) Title() string {
	switch c {
	case CategoryNowPlaying:
		return "Now Playing"
	case CategoryPopular:
		return "Popular"
	case CategoryTopRated:
		return "Top Rated"
	case CategoryUpcoming:
		return "Upcoming"
	default:
		return "Unknown"
	}
}

// ParseCategory parses a category name. Dashes and underscores are interchangeable.
func ParseCategory(name string) (Category, error) {
	normalized := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), "-", "_")
	for _, c := range homeCategories {
		if c.String() == normalized {
			return c, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownCategory, name)
}
