// Package analyzer turns a free-text music query into structured search
// signals. Everything here is heuristic: substring checks against small
// curated tables, no remote calls, no learned models.
package analyzer

import (
	"regexp"
	"strings"
	"unicode/utf8"

	log "github.com/sirupsen/logrus"
)

// DefaultLanguage biases downstream scoring toward the Spanish-language
// market the product targets.
const DefaultLanguage = "es"

// maxKeywords caps the keyword list; queries are short and anything past
// the first few tokens adds noise to the catalog term.
const maxKeywords = 5

// Analysis is the structured reading of one query. It is derived once
// per request and never mutated afterwards.
type Analysis struct {
	Keywords       []string `json:"keywords"`
	PossibleArtist string   `json:"possible_artist,omitempty"`
	Genre          string   `json:"genre,omitempty"`
	Era            string   `json:"era,omitempty"`
	IsLyricsQuery  bool     `json:"is_lyrics"`
	Language       string   `json:"language"`
	ExplicitOK     bool     `json:"explicit_ok"`
}

var punctPattern = regexp.MustCompile(`[^\p{L}\p{N}\s]`)

// Analyze is a pure function of the query string: same input, same
// Analysis. It never fails; queries of pure punctuation or whitespace
// produce an Analysis with empty optional fields.
func Analyze(query string) Analysis {
	queryLower := strings.ToLower(query)

	analysis := Analysis{
		Keywords:       extractKeywords(queryLower),
		PossibleArtist: detectArtist(queryLower),
		Genre:          detectGenre(queryLower),
		Era:            detectEra(queryLower),
		IsLyricsQuery:  detectLyricIntent(queryLower),
		Language:       DefaultLanguage,
		ExplicitOK:     true,
	}

	log.Tracef("analyzed query %q: keywords=%v artist=%q genre=%q era=%q lyrics=%v",
		query, analysis.Keywords, analysis.PossibleArtist, analysis.Genre,
		analysis.Era, analysis.IsLyricsQuery)

	return analysis
}

// extractKeywords keeps the meaningful tokens of the query in their
// original order: punctuation becomes whitespace, short tokens and
// stopwords are dropped, and the list is capped at maxKeywords.
func extractKeywords(queryLower string) []string {
	cleaned := punctPattern.ReplaceAllString(queryLower, " ")

	keywords := []string{}
	for _, token := range strings.Fields(cleaned) {
		if utf8.RuneCountInString(token) <= 2 {
			continue
		}
		if _, isStopword := stopwords[token]; isStopword {
			continue
		}
		keywords = append(keywords, token)
		if len(keywords) == maxKeywords {
			break
		}
	}
	return keywords
}

// detectArtist returns the first curated artist name appearing as a
// substring of the query. List order defines priority; there is no
// fuzzy matching.
func detectArtist(queryLower string) string {
	for _, artist := range knownArtists {
		if strings.Contains(queryLower, artist) {
			return artist
		}
	}
	return ""
}

// detectGenre resolves the first canonical genre whose surface forms
// substring-hit the query.
func detectGenre(queryLower string) string {
	for _, entry := range genreTable {
		for _, keyword := range entry.Keywords {
			if strings.Contains(queryLower, keyword) {
				return entry.Canonical
			}
		}
	}
	return ""
}

func detectLyricIntent(queryLower string) bool {
	for _, phrase := range lyricPhrases {
		if strings.Contains(queryLower, phrase) {
			return true
		}
	}
	return false
}

// IsRegionalArtist reports whether the artist string matches the curated
// regional-artist list. Used by ranking for the language-region bonus.
func IsRegionalArtist(artist string) bool {
	artistLower := strings.ToLower(artist)
	for _, regional := range regionalArtists {
		if strings.Contains(artistLower, regional) {
			return true
		}
	}
	return false
}
