package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/s0up4200/reloop/catalog"
	"github.com/s0up4200/reloop/config"
	"github.com/s0up4200/reloop/tmdb"
)

func newTestService(t *testing.T) {
	t.Helper()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		page := map[string]any{
			"page":          1,
			"total_results": 2,
			"total_pages":   1,
			"results": []map[string]any{
				{"id": 1, "title": "Alien", "release_date": "1979-05-25", "vote_average": 8.1, "poster_path": "/alien.jpg"},
				{"id": 2, "title": "Jaws", "release_date": "1975-06-20", "vote_average": 7.7},
			},
		}
		if r.URL.Path == "/movie/upcoming" {
			page["results"] = []map[string]any{}
		}
		json.NewEncoder(w).Encode(page)
	}))
	t.Cleanup(server.Close)

	client, err := tmdb.NewClient(tmdb.Config{BaseURL: server.URL, APIKey: "test-key"}, zerolog.Nop())
	require.NoError(t, err)

	prev := service
	service = catalog.NewService(client, zerolog.Nop())
	t.Cleanup(func() { service = prev })
}

// withFlags sets the package level flags for one test
func withFlags(t *testing.T, filter, output string) {
	t.Helper()
	prevFilter, prevOutput, prevPage := filterExpr, outputFormat, page
	filterExpr, outputFormat, page = filter, output, 0
	t.Cleanup(func() { filterExpr, outputFormat, page = prevFilter, prevOutput, prevPage })
}

func testCommand() (*cobra.Command, *bytes.Buffer) {
	var out bytes.Buffer
	c := &cobra.Command{}
	c.SetOut(&out)
	c.SetContext(context.Background())
	return c, &out
}

func TestRunMoviesJSON(t *testing.T) {
	newTestService(t)
	withFlags(t, `Rating > 8`, "json")

	c, out := testCommand()
	require.NoError(t, runMovies(c, []string{"top-rated"}))

	var got tmdb.Page[tmdb.Movie]
	require.NoError(t, json.Unmarshal(out.Bytes(), &got))
	require.Len(t, got.Results, 1)
	assert.Equal(t, "Alien", got.Results[0].Title)
	assert.Equal(t, 2, got.TotalResults)
}

func TestRunMoviesText(t *testing.T) {
	newTestService(t)
	withFlags(t, "", "text")

	c, out := testCommand()
	require.NoError(t, runMovies(c, []string{"popular"}))

	assert.Contains(t, out.String(), "Popular movies (page 1 of 1, 2 total)")
	assert.Contains(t, out.String(), "Alien (1979)")
	assert.Contains(t, out.String(), "Jaws (1975)")
}

func TestRunMoviesErrors(t *testing.T) {
	newTestService(t)

	t.Run("unknown category", func(t *testing.T) {
		withFlags(t, "", "text")
		c, _ := testCommand()
		err := runMovies(c, []string{"trending"})
		assert.ErrorIs(t, err, catalog.ErrUnknownCategory)
	})

	t.Run("bad filter", func(t *testing.T) {
		withFlags(t, `Rating >`, "text")
		c, _ := testCommand()
		err := runMovies(c, []string{"popular"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid filter expression")
	})

	t.Run("bad output", func(t *testing.T) {
		withFlags(t, "", "xml")
		c, _ := testCommand()
		err := runMovies(c, []string{"popular"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid output format")
	})

	t.Run("negative page", func(t *testing.T) {
		withFlags(t, "", "text")
		page = -1
		c, _ := testCommand()
		err := runMovies(c, []string{"popular"})
		assert.ErrorIs(t, err, catalog.ErrInvalidPage)
	})
}

func TestRunHomeYAML(t *testing.T) {
	newTestService(t)
	withFlags(t, `hasPoster()`, "yaml")

	c, out := testCommand()
	require.NoError(t, runHome(c, nil))

	var got catalog.Home
	require.NoError(t, yaml.Unmarshal(out.Bytes(), &got))
	require.Len(t, got.NowPlaying, 1)
	assert.Equal(t, 1, got.NowPlaying[0].ID)
	assert.Len(t, got.Popular, 1)
	assert.Empty(t, got.Upcoming)
	assert.Contains(t, out.String(), "now_playing:")
}

func TestSetupLogger(t *testing.T) {
	t.Run("json", func(t *testing.T) {
		var buf bytes.Buffer
		l := setupLogger(config.LoggingConfig{Level: "warn", Format: "json"}, &buf)
		l.Warn().Msg("visible")

		assert.Contains(t, buf.String(), `"message":"visible"`)
		assert.Equal(t, zerolog.WarnLevel, zerolog.GlobalLevel())
	})

	t.Run("console without terminal has no color", func(t *testing.T) {
		var buf bytes.Buffer
		l := setupLogger(config.LoggingConfig{Level: "info", Format: "console", Color: true}, &buf)
		l.Info().Msg("plain")

		assert.Contains(t, buf.String(), "plain")
		assert.NotContains(t, buf.String(), "\x1b[")
	})

	zerolog.SetGlobalLevel(zerolog.TraceLevel)
}

func TestCategoryNames(t *testing.T) {
	assert.Equal(t, []string{"now_playing", "popular", "top_rated", "upcoming"}, categoryNames())
}

func TestUpstreamHint(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantHint string
	}{
		{
			name:     "unauthorized",
			err:      &tmdb.TransportError{Op: "get", Path: "/movie/popular", StatusCode: http.StatusUnauthorized, Err: tmdb.ErrUnexpectedStatus},
			wantHint: "check tmdb.api_key",
		},
		{
			name:     "not found",
			err:      &tmdb.TransportError{Op: "get", Path: "/movie/popular", StatusCode: http.StatusNotFound, Err: tmdb.ErrUnexpectedStatus},
			wantHint: "check tmdb.base_url",
		},
		{
			name: "server error",
			err:  &tmdb.TransportError{Op: "get", Path: "/movie/popular", StatusCode: http.StatusBadGateway, Err: tmdb.ErrUnexpectedStatus},
		},
		{
			name: "not a transport error",
			err:  errors.New("boom"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := upstreamHint(tt.err)
			assert.ErrorIs(t, got, tt.err)
			if tt.wantHint == "" {
				assert.Equal(t, tt.err.Error(), got.Error())
				return
			}
			assert.Contains(t, got.Error(), tt.wantHint)
		})
	}
}

func TestRunMoviesNotFoundHint(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	t.Cleanup(server.Close)

	client, err := tmdb.NewClient(tmdb.Config{BaseURL: server.URL + "/wrong", APIKey: "test-key"}, zerolog.Nop())
	require.NoError(t, err)
	prev := service
	service = catalog.NewService(client, zerolog.Nop())
	t.Cleanup(func() { service = prev })
	withFlags(t, "", "text")

	c, _ := testCommand()
	err = runMovies(c, []string{"popular"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "check tmdb.base_url")
}
