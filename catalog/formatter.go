package catalog

import (
	"fmt"
	"strings"

	"github.com/s0up4200/reloop/tmdb"
)

// overviewWidth is where long overviews get cut in console output
const overviewWidth = 100

// ConsoleFormatter provides console output formatting for movies
type ConsoleFormatter struct{}

// NewConsoleFormatter creates a new console formatter
func NewConsoleFormatter() *ConsoleFormatter {
	return &ConsoleFormatter{}
}

// FormatPage formats one page of a category for console display
func (f *ConsoleFormatter) FormatPage(category Category, page *tmdb.Page[tmdb.Movie], options FormatOptions) string {
	if page == nil || len(page.Results) == 0 {
		return fmt.Sprintf("No %s movies found\n", strings.ToLower(category.Title()))
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "\n%s movies (page %d of %d, %d total):\n\n",
		category.Title(), page.Page, page.TotalPages, page.TotalResults)
	f.formatMovies(&sb, page.Results, options)
	sb.WriteString("\n")
	return sb.String()
}

// FormatHome formats the home view, one section per category
func (f *ConsoleFormatter) FormatHome(home *Home, options FormatOptions) string {
	if home == nil {
		return "No movies found\n"
	}

	var sb strings.Builder
	for _, category := range homeCategories {
		movies := home.Movies(category)

		fmt.Fprintf(&sb, "\n%s (%d):\n\n", category.Title(), len(movies))
		if len(movies) == 0 {
			sb.WriteString("  none\n")
			continue
		}
		f.formatMovies(&sb, movies, options)
	}
	sb.WriteString("\n")
	return sb.String()
}

// formatMovies writes a tree of movies
func (f *ConsoleFormatter) formatMovies(sb *strings.Builder, movies []tmdb.Movie, options FormatOptions) {
	for i, movie := range movies {
		isLast := i == len(movies)-1
		f.formatMovie(sb, movie, isLast, options)
	}
}

// formatMovie formats a single movie entry
func (f *ConsoleFormatter) formatMovie(sb *strings.Builder, movie tmdb.Movie, isLast bool, options FormatOptions) {
	prefix := "├"
	indent := "│   "
	if isLast {
		prefix = "╰"
		indent = "    "
	}

	fmt.Fprintf(sb, "%s── %s", prefix, movie.Title)
	if year := releaseYear(movie.ReleaseDate); year != "" {
		fmt.Fprintf(sb, " (%s)", year)
	}
	fmt.Fprintf(sb, " ★ %.1f [id %d]\n", movie.VoteAverage, movie.ID)

	if options.ShowOverview && movie.Overview != "" {
		fmt.Fprintf(sb, "%s%s\n", indent, truncate(movie.Overview, overviewWidth))
	}

	if options.ShowImages {
		if poster := movie.Poster(); poster != "" {
			fmt.Fprintf(sb, "%sPoster: %s\n", indent, poster)
		}
		if backdrop := movie.Backdrop(); backdrop != "" {
			fmt.Fprintf(sb, "%sBackdrop: %s\n", indent, backdrop)
		}
	}
}

// releaseYear extracts the year from a YYYY-MM-DD release date
func releaseYear(date string) string {
	if len(date) < 4 {
		return ""
	}
	return date[:4]
}

func truncate(s string, width int) string {
	runes := []rune(s)
	if len(runes) <= width {
		return s
	}
	return string(runes[:width-3]) + "..."
}
