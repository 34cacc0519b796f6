// Package itunes implements the catalog boundary against the iTunes
// Search API. It is the default backend: no credentials, generous rate
// limits, and the records carry the price/preview/artwork metadata the
// ranker feeds on.
package itunes

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	sentry "github.com/getsentry/sentry-go"
	log "github.com/sirupsen/logrus"

	"songscout/catalog"
)

const DefaultBaseURL = "https://itunes.apple.com/search"

type Client struct {
	baseURL    string
	httpClient *http.Client
}

func New(baseURL string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// searchResponse mirrors the wire shape of the iTunes Search API.
type searchResponse struct {
	ResultCount int         `json:"resultCount"`
	Results     []rawResult `json:"results"`
}

type rawResult struct {
	TrackID           int64   `json:"trackId"`
	TrackName         string  `json:"trackName"`
	ArtistName        string  `json:"artistName"`
	CollectionName    string  `json:"collectionName"`
	PrimaryGenreName  string  `json:"primaryGenreName"`
	ReleaseDate       string  `json:"releaseDate"`
	TrackTimeMillis   int     `json:"trackTimeMillis"`
	TrackExplicitness string  `json:"trackExplicitness"`
	TrackNumber       int     `json:"trackNumber"`
	CollectionPrice   float64 `json:"collectionPrice"`
	ArtworkURL60      string  `json:"artworkUrl60"`
	ArtworkURL100     string  `json:"artworkUrl100"`
	PreviewURL        string  `json:"previewUrl"`
	TrackViewURL      string  `json:"trackViewUrl"`
}

// Search runs one read-only query against the iTunes Search API and
// maps the raw records into normalized tracks.
func (c *Client) Search(ctx context.Context, opts catalog.SearchOptions) ([]catalog.Track, error) {
	logger := log.WithFields(log.Fields{"module": "itunes", "term": opts.Term})

	span := sentry.StartSpan(ctx, "itunes.search")
	span.Description = "Search iTunes catalog"
	span.SetTag("term", opts.Term)
	defer span.Finish()

	req, err := http.NewRequestWithContext(ctx, "GET", c.searchURL(opts), nil)
	if err != nil {
		span.Status = sentry.SpanStatusInternalError
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		logger.Errorf("iTunes request failed: %v", err)
		sentry.CaptureException(err)
		span.Status = sentry.SpanStatusInternalError
		return nil, fmt.Errorf("itunes request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		err := fmt.Errorf("itunes API returned status %d", resp.StatusCode)
		logger.Error(err)
		sentry.CaptureException(err)
		span.Status = sentry.SpanStatusInternalError
		return nil, err
	}

	var payload searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		logger.Errorf("failed to decode iTunes response: %v", err)
		sentry.CaptureException(err)
		span.Status = sentry.SpanStatusInternalError
		return nil, fmt.Errorf("failed to decode itunes response: %w", err)
	}

	tracks := make([]catalog.Track, 0, len(payload.Results))
	for _, raw := range payload.Results {
		tracks = append(tracks, mapTrack(raw))
	}

	span.Status = sentry.SpanStatusOK
	span.SetData("results_count", len(tracks))
	logger.Debugf("iTunes returned %d tracks", len(tracks))
	return tracks, nil
}

func (c *Client) searchURL(opts catalog.SearchOptions) string {
	params := url.Values{}
	params.Set("term", opts.Term)
	params.Set("media", "music")
	params.Set("entity", "song")
	if opts.Limit > 0 {
		params.Set("limit", strconv.Itoa(opts.Limit))
	}
	if opts.Country != "" {
		params.Set("country", opts.Country)
	}
	if opts.Language != "" {
		params.Set("lang", opts.Language)
	}
	return c.baseURL + "?" + params.Encode()
}

func mapTrack(raw rawResult) catalog.Track {
	id := ""
	if raw.TrackID != 0 {
		id = strconv.FormatInt(raw.TrackID, 10)
	}

	image := raw.ArtworkURL100
	if image == "" {
		image = raw.ArtworkURL60
	}

	return catalog.Track{
		ID:              id,
		Title:           raw.TrackName,
		Artist:          raw.ArtistName,
		Album:           raw.CollectionName,
		Genre:           raw.PrimaryGenreName,
		ReleaseDate:     raw.ReleaseDate,
		DurationMs:      raw.TrackTimeMillis,
		Explicit:        raw.TrackExplicitness == "explicit",
		TrackNumber:     raw.TrackNumber,
		CollectionPrice: raw.CollectionPrice,
		ImageURL:        image,
		PreviewURL:      raw.PreviewURL,
		CatalogURL:      raw.TrackViewURL,
		AppleMusicURL:   appleMusicURL(raw.TrackViewURL),
	}
}

// appleMusicURL rewrites a store link to its Apple Music equivalent.
func appleMusicURL(trackViewURL string) string {
	if trackViewURL == "" {
		return ""
	}
	return strings.Replace(trackViewURL, "itunes.apple.com", "music.apple.com", 1)
}
