package catalog

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/s0up4200/reloop/tmdb"
)

// Home is the combined landing view: the first page of every category
type Home struct {
	NowPlaying []tmdb.Movie `json:"now_playing" yaml:"now_playing"`
	Popular    []tmdb.Movie `json:"popular" yaml:"popular"`
	TopRated   []tmdb.Movie `json:"top_rated" yaml:"top_rated"`
	Upcoming   []tmdb.Movie `json:"upcoming" yaml:"upcoming"`
}

// Movies returns the list of a category
func (h *Home) Movies(category Category) []tmdb.Movie {
	switch category {
	case CategoryNowPlaying:
		return h.NowPlaying
	case CategoryPopular:
		return h.Popular
	case CategoryTopRated:
		return h.TopRated
	case CategoryUpcoming:
		return h.Upcoming
	default:
		return nil
	}
}

// Home fetches the first page of all categories concurrently. It succeeds only
// if every fetch succeeds; otherwise the first observed failure is returned as
// an *AggregateError and no Home is built. Remaining fetches are cancelled.
func (s *Service) Home(ctx context.Context) (*Home, error) {
	g, ctx := errgroup.WithContext(ctx)

	// One slot per category; each goroutine writes only its own index
	pages := make([]*tmdb.Page[tmdb.Movie], len(homeCategories))

	for i, category := range homeCategories {
		g.Go(func() error {
			page, err := s.Fetch(ctx, category, 0)
			if err != nil {
				return &AggregateError{Category: category, Err: err}
			}
			pages[i] = page
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		aggregateJoinsTotal.WithLabelValues("failure").Inc()
		s.logger.Warn().
			Err(err).
			Msg("Failed to build home view")
		return nil, err
	}

	aggregateJoinsTotal.WithLabelValues("success").Inc()

	home := &Home{
		NowPlaying: pages[0].Results,
		Popular:    pages[1].Results,
		TopRated:   pages[2].Results,
		Upcoming:   pages[3].Results,
	}

	s.logger.Debug().
		Int("now_playing", len(home.NowPlaying)).
		Int("popular", len(home.Popular)).
		Int("top_rated", len(home.TopRated)).
		Int("upcoming", len(home.Upcoming)).
		Msg("Built home view")

	return home, nil
}
