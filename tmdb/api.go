package tmdb

import (
	"context"
	"net/url"
)

// JSONGetter defines the transport the typed Get helper runs on
type JSONGetter interface {
	// GetJSON fetches path with extra query parameters and decodes into out
	GetJSON(ctx context.Context, path string, extra url.Values, out any) error
}

var _ JSONGetter = (*Client)(nil)
