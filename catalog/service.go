package catalog

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/rs/zerolog"

	"github.com/s0up4200/reloop/tmdb"
)

// Service resolves the movie lists. It holds no per-request state and can be
// shared by concurrent requests.
type Service struct {
	api    Getter
	logger zerolog.Logger
}

// NewService creates a new Service on top of an upstream transport
func NewService(api Getter, logger zerolog.Logger) *Service {
	return &Service{
		api:    api,
		logger: logger.With().Str("component", "catalog").Logger(),
	}
}

// Fetch retrieves one page of a category. A zero page sends no page parameter
// so the upstream default (the first page) applies.
func (s *Service) Fetch(ctx context.Context, category Category, page int) (*tmdb.Page[tmdb.Movie], error) {
	if page < 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidPage, page)
	}

	params := url.Values{}
	if page > 0 {
		params.Set("page", strconv.Itoa(page))
	}

	result, err := tmdb.Get[tmdb.Page[tmdb.Movie]](ctx, s.api, category.Path(), params)
	if err != nil {
		return nil, fmt.Errorf("failed to get %s movies: %w", category, err)
	}

	s.logger.Debug().
		Str("category", category.String()).
		Int("page", result.Page).
		Int("count", len(result.Results)).
		Msg("Retrieved movies from TMDB")

	return &result, nil
}

// NowPlaying retrieves a page of movies currently in theatres
func (s *Service) NowPlaying(ctx context.Context, page int) (*tmdb.Page[tmdb.Movie], error) {
	return s.Fetch(ctx, CategoryNowPlaying, page)
}

// Popular retrieves a page of popular movies
func (s *Service) Popular(ctx context.Context, page int) (*tmdb.Page[tmdb.Movie], error) {
	return s.Fetch(ctx, CategoryPopular, page)
}

// TopRated retrieves a page of top rated movies
func (s *Service) TopRated(ctx context.Context, page int) (*tmdb.Page[tmdb.Movie], error) {
	return s.Fetch(ctx, CategoryTopRated, page)
}

// Upcoming retrieves a page of upcoming movies
func (s *Service) Upcoming(ctx context.Context, page int) (*tmdb.Page[tmdb.Movie], error) {
	return s.Fetch(ctx, CategoryUpcoming, page)
}
