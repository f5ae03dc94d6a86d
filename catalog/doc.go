// Package catalog resolves the four TMDB movie lists (now playing, popular,
// top rated and upcoming) and the combined home view.
//
// Each list resolver issues exactly one upstream request. Home runs the four
// resolvers concurrently and fails as a whole when any of them fails.
package catalog
