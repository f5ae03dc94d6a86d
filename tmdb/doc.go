// Package tmdb provides a minimal client for The Movie Database (TMDB) API v3.
//
// The client is bound to a base URL and a fixed set of default query
// parameters (the API key and, optionally, a language). Every call adds its
// own parameters on top of those defaults and decodes the JSON body into a
// caller-chosen type.
//
// # Usage
//
//	logger := zerolog.New(os.Stderr)
//	client, err := tmdb.NewClient(tmdb.Config{
//		BaseURL: tmdb.DefaultBaseURL,
//		APIKey:  "your-api-key",
//	}, logger, tmdb.WithTimeout(10*time.Second))
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	page, err := tmdb.Get[tmdb.Page[tmdb.Movie]](ctx, client, "/movie/popular", url.Values{"page": {"2"}})
//
// # Query parameters
//
// Defaults are sent first. A call-site parameter whose key matches a default
// is dropped, so the API key can never be replaced by a caller.
//
// # Error Handling
//
// Every failure is returned as a *TransportError, whether the request could
// not be built, the network failed, the upstream answered with a non-2xx
// status or the body could not be decoded:
//
//	var terr *tmdb.TransportError
//	if errors.As(err, &terr) && terr.IsUnauthorized() {
//		// Handle a rejected API key
//	}
//
// The client never retries and never caches.
package tmdb
