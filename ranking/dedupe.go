package ranking

import (
	"strings"
	"unicode"

	log "github.com/sirupsen/logrus"

	"songscout/catalog"
)

// Dedupe collapses catalog entries that are the same song released
// under near-identical title/artist strings. Only the first occurrence
// survives; survivor order matches input order. Punctuation-only
// differences collapse ("umbrella!" vs "Umbrella"); titles that differ
// in words (remixes, live cuts) do not.
func Dedupe(tracks []catalog.Track) []catalog.Track {
	seen := make(map[string]struct{}, len(tracks))
	unique := make([]catalog.Track, 0, len(tracks))

	for _, track := range tracks {
		key := identityKey(track)
		if _, dup := seen[key]; dup {
			log.Tracef("duplicate skipped: %q by %q", track.Title, track.Artist)
			continue
		}
		seen[key] = struct{}{}
		unique = append(unique, track)
	}
	return unique
}

func identityKey(track catalog.Track) string {
	return normalize(track.Title) + "|" + normalize(track.Artist)
}

// normalize lowercases, strips everything that is not a letter, digit
// or space, and collapses the remaining whitespace.
func normalize(s string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(s) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.IsSpace(r) {
			b.WriteRune(r)
		}
	}
	return strings.Join(strings.Fields(b.String()), " ")
}
