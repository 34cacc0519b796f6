// Package search orchestrates one query end to end: analyze, hit the
// catalog, dedupe, rank, truncate. Every value created here lives for
// exactly one request; there is no cross-request state.
package search

import (
	"context"
	"strings"
	"time"

	sentry "github.com/getsentry/sentry-go"
	log "github.com/sirupsen/logrus"

	"songscout/analyzer"
	"songscout/catalog"
	"songscout/ranking"
)

// emptyResultMessage is shown when the catalog had nothing (or was
// unreachable); the product copy is Spanish like the rest of the UX.
const emptyResultMessage = "No se encontraron canciones. Intenta con otros términos."

// Options configure one Service. Zero values fall back to sane
// defaults in NewService.
type Options struct {
	TopN          int
	Limit         int
	Country       string
	Language      string
	EnrichQuery   bool
	AllowExplicit bool
	Source        string
}

// Response is the envelope handed to the HTTP layer for serialization.
type Response struct {
	Success  bool                  `json:"success"`
	Results  []ranking.ScoredTrack `json:"results"`
	Analysis *analyzer.Analysis    `json:"analysis,omitempty"`
	Metadata Metadata              `json:"metadata"`
	Error    string                `json:"error,omitempty"`
}

type Metadata struct {
	TotalFound   int    `json:"total_found"`
	SearchTimeMs int64  `json:"search_time_ms"`
	Source       string `json:"source,omitempty"`
	Message      string `json:"message,omitempty"`
}

type Service struct {
	client catalog.Client
	opts   Options
}

func NewService(client catalog.Client, opts Options) *Service {
	if opts.TopN <= 0 {
		opts.TopN = 15
	}
	if opts.Limit <= 0 {
		opts.Limit = 50
	}
	if opts.Source == "" {
		opts.Source = "itunes"
	}
	return &Service{client: client, opts: opts}
}

// Search runs the full pipeline for one query. The query must already
// be validated non-empty by the caller. A failed catalog call is
// recovered as zero results; Search itself only errors on a nil client.
func (s *Service) Search(ctx context.Context, query string) *Response {
	start := time.Now()
	logger := log.WithFields(log.Fields{"module": "search", "query": query})

	span := sentry.StartSpan(ctx, "search.pipeline")
	span.Description = "Analyze, search and rank one query"
	span.SetTag("query", query)
	defer span.Finish()

	analysis := analyzer.Analyze(query)
	if !s.opts.AllowExplicit {
		analysis.ExplicitOK = false
	}

	tracks := s.fetch(span.Context(), query, analysis)

	unique := ranking.Dedupe(tracks)
	logger.Debugf("%d unique of %d fetched", len(unique), len(tracks))

	scored := ranking.Rank(unique, analysis)
	results := scored
	if len(results) > s.opts.TopN {
		results = results[:s.opts.TopN]
	}

	elapsed := time.Since(start).Milliseconds()
	metadata := Metadata{
		TotalFound:   len(scored),
		SearchTimeMs: elapsed,
		Source:       s.opts.Source,
	}
	if len(scored) == 0 {
		metadata.Message = emptyResultMessage
	}

	span.Status = sentry.SpanStatusOK
	span.SetData("total_found", len(scored))
	logger.Infof("search done in %dms: %d found, returning %d", elapsed, len(scored), len(results))

	return &Response{
		Success:  true,
		Results:  results,
		Analysis: &analysis,
		Metadata: metadata,
	}
}

// fetch runs the single outbound catalog call. Remote failure is
// absorbed here: the pipeline continues with an empty track list.
func (s *Service) fetch(ctx context.Context, query string, analysis analyzer.Analysis) []catalog.Track {
	term := strings.TrimSpace(query)
	if s.opts.EnrichQuery {
		term = enrichedTerm(query, analysis)
	}

	tracks, err := s.client.Search(ctx, catalog.SearchOptions{
		Term:     term,
		Limit:    s.opts.Limit,
		Country:  s.opts.Country,
		Language: s.opts.Language,
	})
	if err != nil {
		log.Errorf("catalog search failed, continuing with zero results: %v", err)
		sentry.CaptureException(err)
		return nil
	}
	return tracks
}

// enrichedTerm builds the catalog term from analyzer output instead of
// the raw query: keywords plus any detected artist and genre.
func enrichedTerm(query string, analysis analyzer.Analysis) string {
	parts := make([]string, 0, len(analysis.Keywords)+2)
	parts = append(parts, analysis.Keywords...)
	if analysis.PossibleArtist != "" && !containsFold(parts, analysis.PossibleArtist) {
		parts = append(parts, analysis.PossibleArtist)
	}
	if analysis.Genre != "" && !containsFold(parts, analysis.Genre) {
		parts = append(parts, analysis.Genre)
	}
	if len(parts) == 0 {
		return strings.TrimSpace(query)
	}
	return strings.Join(parts, " ")
}

func containsFold(parts []string, s string) bool {
	joined := strings.ToLower(strings.Join(parts, " "))
	return strings.Contains(joined, strings.ToLower(s))
}
