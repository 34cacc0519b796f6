// Package spotify implements the catalog boundary against the Spotify
// Web API. It is an alternate backend: track objects there carry no
// genre or price, so those ranking signals stay at their zero values.
package spotify

import (
	"context"
	"strings"

	sentry "github.com/getsentry/sentry-go"
	log "github.com/sirupsen/logrus"
	spotifyclient "github.com/zmb3/spotify/v2"
	spotifyauth "github.com/zmb3/spotify/v2/auth"
	"golang.org/x/oauth2/clientcredentials"

	"songscout/catalog"
)

type Client struct {
	api *spotifyclient.Client
}

// New authenticates with the client-credentials flow; search is
// read-only and needs no user scope.
func New(ctx context.Context, clientID, clientSecret string) (*Client, error) {
	config := &clientcredentials.Config{
		ClientID:     clientID,
		ClientSecret: clientSecret,
		TokenURL:     spotifyauth.TokenURL,
	}
	token, err := config.Token(ctx)
	if err != nil {
		sentry.CaptureException(err)
		return nil, err
	}

	httpClient := spotifyauth.New().Client(ctx, token)
	return &Client{api: spotifyclient.New(httpClient)}, nil
}

func (c *Client) Search(ctx context.Context, opts catalog.SearchOptions) ([]catalog.Track, error) {
	logger := log.WithFields(log.Fields{"module": "spotify", "term": opts.Term})

	span := sentry.StartSpan(ctx, "spotify.search")
	span.Description = "Search Spotify catalog"
	span.SetTag("term", opts.Term)
	defer span.Finish()

	reqOpts := []spotifyclient.RequestOption{}
	if opts.Limit > 0 {
		reqOpts = append(reqOpts, spotifyclient.Limit(opts.Limit))
	}
	if opts.Country != "" {
		reqOpts = append(reqOpts, spotifyclient.Market(opts.Country))
	}

	results, err := c.api.Search(ctx, opts.Term, spotifyclient.SearchTypeTrack, reqOpts...)
	if err != nil {
		logger.Errorf("Spotify search failed: %v", err)
		sentry.CaptureException(err)
		span.Status = sentry.SpanStatusInternalError
		return nil, err
	}

	if results.Tracks == nil {
		span.Status = sentry.SpanStatusOK
		return []catalog.Track{}, nil
	}

	tracks := make([]catalog.Track, 0, len(results.Tracks.Tracks))
	for _, full := range results.Tracks.Tracks {
		tracks = append(tracks, mapTrack(full))
	}

	span.Status = sentry.SpanStatusOK
	span.SetData("results_count", len(tracks))
	logger.Debugf("Spotify returned %d tracks", len(tracks))
	return tracks, nil
}

func mapTrack(full spotifyclient.FullTrack) catalog.Track {
	artists := make([]string, 0, len(full.Artists))
	for _, artist := range full.Artists {
		artists = append(artists, artist.Name)
	}

	image := ""
	if len(full.Album.Images) > 0 {
		image = full.Album.Images[0].URL
	}

	return catalog.Track{
		ID:          string(full.ID),
		Title:       full.Name,
		Artist:      strings.Join(artists, ", "),
		Album:       full.Album.Name,
		ReleaseDate: full.Album.ReleaseDate,
		DurationMs:  int(full.Duration),
		Explicit:    full.Explicit,
		TrackNumber: int(full.TrackNumber),
		ImageURL:    image,
		PreviewURL:  full.PreviewURL,
		CatalogURL:  full.ExternalURLs["spotify"],
	}
}
