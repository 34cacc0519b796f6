// Package catalog defines the boundary to the external music catalog:
// a normalized Track record and the Client interface every backend
// implements. Backends live in subpackages.
package catalog

import "context"

// Track is one normalized song record from the catalog. String fields
// are always non-nil: a backend that cannot fill a field leaves the
// empty string so downstream string operations never have to guard.
type Track struct {
	ID     string `json:"itunes_id"`
	Title  string `json:"title"`
	Artist string `json:"artist"`
	Album  string `json:"album"`

	Genre       string `json:"genre"`
	ReleaseDate string `json:"release_date"`
	DurationMs  int    `json:"duration_ms"`
	Explicit    bool   `json:"explicit"`
	TrackNumber int    `json:"track_number"`

	// CollectionPrice is the parent album price, used as an indirect
	// popularity signal by ranking. Zero when the backend has no price.
	CollectionPrice float64 `json:"collection_price"`

	ImageURL      string `json:"image"`
	PreviewURL    string `json:"preview_url"`
	CatalogURL    string `json:"itunes_url"`
	AppleMusicURL string `json:"apple_music_url"`
}

// SearchOptions parameterize one catalog search. Only song records are
// ever requested; the media filter is fixed inside each backend.
type SearchOptions struct {
	Term     string
	Limit    int
	Country  string
	Language string
}

// Client is the single I/O boundary of the pipeline. Implementations
// must return an error (not panic) on transport or decode failures; the
// caller recovers a failed search as zero results.
type Client interface {
	Search(ctx context.Context, opts SearchOptions) ([]Track, error)
}
