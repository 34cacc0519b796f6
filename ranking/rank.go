// Package ranking orders catalog tracks by how well they serve the
// analyzed query. Scoring is additive: each factor contributes
// independently, so individual weights can be tuned without touching
// the rest.
package ranking

import (
	"math"
	"sort"
	"strconv"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"

	"songscout/analyzer"
	"songscout/catalog"
)

// ScoredTrack is a catalog track plus its relevance score. It lives for
// one request only.
type ScoredTrack struct {
	catalog.Track
	Score int `json:"score"`
}

// Scoring weights. Preview availability and artist match dominate: they
// most directly serve intent (hearing the song, finding that artist's
// version). eraDecadePenalty is deliberately soft to keep recall.
const (
	priceWeight       = 2
	priceCap          = 20
	previewBonus      = 30
	artistMatchBonus  = 60
	titleKeywordBonus = 25
	albumKeywordBonus = 10
	genreMatchBonus   = 25
	eraExactBonus     = 40
	eraDecadePenalty  = 10
	explicitPenalty   = 15
	earlyTrackBonus   = 5
	regionalBonus     = 15
)

// Rank scores every track against the analysis and returns new scored
// copies sorted by score descending. Ties keep their input order. The
// input slice is never mutated; empty input yields empty output.
func Rank(tracks []catalog.Track, analysis analyzer.Analysis) []ScoredTrack {
	return rankAt(tracks, analysis, time.Now())
}

// rankAt fixes the reference time for the recency factor, keeping the
// scoring itself deterministic for a given (tracks, analysis, now).
func rankAt(tracks []catalog.Track, analysis analyzer.Analysis, now time.Time) []ScoredTrack {
	scored := make([]ScoredTrack, 0, len(tracks))
	for _, track := range tracks {
		scored = append(scored, ScoredTrack{
			Track: track,
			Score: score(track, analysis, now),
		})
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})

	if len(scored) > 0 {
		log.Debugf("ranked %d tracks, top: %q by %q (score %d)",
			len(scored), scored[0].Title, scored[0].Artist, scored[0].Score)
	}
	return scored
}

func score(track catalog.Track, analysis analyzer.Analysis, now time.Time) int {
	total := 0.0

	// Album price as an indirect popularity signal.
	if track.CollectionPrice > 0 {
		total += math.Min(track.CollectionPrice*priceWeight, priceCap)
	}

	if track.PreviewURL != "" {
		total += previewBonus
	}

	if analysis.PossibleArtist != "" && track.Artist != "" {
		wanted := strings.ToLower(analysis.PossibleArtist)
		got := strings.ToLower(track.Artist)
		if strings.Contains(got, wanted) || strings.Contains(wanted, got) {
			total += artistMatchBonus
		}
	}

	titleLower := strings.ToLower(track.Title)
	albumLower := strings.ToLower(track.Album)
	for _, keyword := range analysis.Keywords {
		if strings.Contains(titleLower, keyword) {
			total += titleKeywordBonus
		}
		if strings.Contains(albumLower, keyword) {
			total += albumKeywordBonus
		}
	}

	if analysis.Genre != "" && track.Genre != "" &&
		strings.Contains(strings.ToLower(track.Genre), strings.ToLower(analysis.Genre)) {
		total += genreMatchBonus
	}

	if year, ok := releaseYear(track.ReleaseDate); ok {
		if analysis.Era != "" {
			if target, ok := eraDecade(analysis.Era); ok {
				songDecade := year / 10 * 10
				if songDecade == target {
					total += eraExactBonus
				} else {
					decades := math.Abs(float64(songDecade-target)) / 10
					total -= decades * eraDecadePenalty
				}
			}
		} else {
			// No era asked for: nudge recent releases up without
			// burying the back catalog.
			switch yearsAgo := now.Year() - year; {
			case yearsAgo <= 2:
				total += 20
			case yearsAgo <= 5:
				total += 15
			case yearsAgo <= 10:
				total += 10
			}
		}
	}

	if track.Explicit && !analysis.ExplicitOK {
		total -= explicitPenalty
	}

	// Hits cluster at the front of an album.
	if track.TrackNumber > 0 && track.TrackNumber <= 3 {
		total += earlyTrackBonus
	}

	if analysis.Language == "es" && analyzer.IsRegionalArtist(track.Artist) {
		total += regionalBonus
	}

	return int(math.Round(total))
}

// releaseYear pulls the year out of an ISO-ish release date ("2007",
// "2007-05-29", "2007-05-29T12:00:00Z").
func releaseYear(releaseDate string) (int, bool) {
	if len(releaseDate) < 4 {
		return 0, false
	}
	year, err := strconv.Atoi(releaseDate[:4])
	if err != nil || year == 0 {
		return 0, false
	}
	return year, true
}

// eraDecade maps a decade label like "1980s" to 1980.
func eraDecade(era string) (int, bool) {
	decade, err := strconv.Atoi(strings.TrimSuffix(era, "s"))
	if err != nil {
		return 0, false
	}
	return decade, true
}
