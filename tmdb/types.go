package tmdb

// Movie represents a movie list entry as returned by TMDB
type Movie struct {
	ID           int     `json:"id" yaml:"id"`
	Title        string  `json:"title" yaml:"title"`
	Overview     string  `json:"overview" yaml:"overview"`
	ReleaseDate  string  `json:"release_date" yaml:"release_date"`
	PosterPath   *string `json:"poster_path" yaml:"poster_path"`
	BackdropPath *string `json:"backdrop_path" yaml:"backdrop_path"`
	VoteAverage  float64 `json:"vote_average" yaml:"vote_average"`
}

// Poster returns the poster path or an empty string when TMDB has none
func (m *Movie) Poster() string {
	if m.PosterPath == nil {
		return ""
	}
	return *m.PosterPath
}

// Backdrop returns the backdrop path or an empty string when TMDB has none
func (m *Movie) Backdrop() string {
	if m.BackdropPath == nil {
		return ""
	}
	return *m.BackdropPath
}

// Page represents one page of a paginated TMDB list endpoint
type Page[T any] struct {
	Page         int `json:"page" yaml:"page"`
	Results      []T `json:"results" yaml:"results"`
	TotalResults int `json:"total_results" yaml:"total_results"`
	TotalPages   int `json:"total_pages" yaml:"total_pages"`
}

// HasMorePages checks if there are more pages after this one
func (p *Page[T]) HasMorePages() bool {
	return p.Page < p.TotalPages
}
