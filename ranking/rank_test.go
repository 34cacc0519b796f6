package ranking

import (
	"reflect"
	"testing"
	"time"

	"songscout/analyzer"
	"songscout/catalog"
)

var fixedNow = time.Date(2026, time.August, 1, 0, 0, 0, 0, time.UTC)

func rankFixed(tracks []catalog.Track, analysis analyzer.Analysis) []ScoredTrack {
	return rankAt(tracks, analysis, fixedNow)
}

func TestRankEmpty(t *testing.T) {
	if got := rankFixed(nil, analyzer.Analysis{ExplicitOK: true}); len(got) != 0 {
		t.Errorf("rank(nil) = %+v, want empty", got)
	}
	if got := rankFixed([]catalog.Track{}, analyzer.Analysis{ExplicitOK: true}); len(got) != 0 {
		t.Errorf("rank(empty) = %+v, want empty", got)
	}
}

func TestRankDeterministic(t *testing.T) {
	tracks := []catalog.Track{
		{Title: "Umbrella", Artist: "Rihanna", PreviewURL: "https://x/p.m4a", ReleaseDate: "2007-05-29T12:00:00Z"},
		{Title: "Tití Me Preguntó", Artist: "Bad Bunny", CollectionPrice: 9.99},
	}
	analysis := analyzer.Analysis{
		Keywords:   []string{"umbrella"},
		Language:   "es",
		ExplicitOK: true,
	}

	first := rankFixed(tracks, analysis)
	second := rankFixed(tracks, analysis)
	if !reflect.DeepEqual(first, second) {
		t.Errorf("rank not deterministic: %+v vs %+v", first, second)
	}
}

func TestRankDoesNotMutateInput(t *testing.T) {
	tracks := []catalog.Track{
		{Title: "B", Artist: "x"},
		{Title: "A", Artist: "y", PreviewURL: "https://x/p.m4a"},
	}
	before := make([]catalog.Track, len(tracks))
	copy(before, tracks)

	rankFixed(tracks, analyzer.Analysis{ExplicitOK: true})

	if !reflect.DeepEqual(tracks, before) {
		t.Errorf("input mutated: %+v", tracks)
	}
}

func TestPreviewBonusDelta(t *testing.T) {
	analysis := analyzer.Analysis{ExplicitOK: true}
	withPreview := catalog.Track{Title: "Same", Artist: "Same", PreviewURL: "https://x/p.m4a"}
	withoutPreview := catalog.Track{Title: "Same", Artist: "Same"}

	scored := rankFixed([]catalog.Track{withoutPreview, withPreview}, analysis)

	if scored[0].PreviewURL == "" {
		t.Fatal("track with preview should rank first")
	}
	if delta := scored[0].Score - scored[1].Score; delta != 30 {
		t.Errorf("preview delta = %d, want 30", delta)
	}
}

func TestArtistMatchDelta(t *testing.T) {
	analysis := analyzer.Analysis{PossibleArtist: "bad bunny", ExplicitOK: true}
	matching := catalog.Track{Title: "Same", Artist: "Bad Bunny"}
	other := catalog.Track{Title: "Same", Artist: "Quevedo"}

	scored := rankFixed([]catalog.Track{other, matching}, analysis)

	if scored[0].Artist != "Bad Bunny" {
		t.Fatal("matching artist should rank first")
	}
	// +60 artist match, +15 regional would differ — language unset here,
	// so the whole gap is the artist bonus.
	if delta := scored[0].Score - scored[1].Score; delta != 60 {
		t.Errorf("artist delta = %d, want 60", delta)
	}
}

func TestArtistMatchEitherDirection(t *testing.T) {
	// Query names more than the catalog string: containment must work
	// both ways.
	analysis := analyzer.Analysis{PossibleArtist: "gustavo cerati", ExplicitOK: true}
	short := catalog.Track{Title: "Crimen", Artist: "Cerati"}

	scored := rankFixed([]catalog.Track{short}, analysis)
	if scored[0].Score < 60 {
		t.Errorf("score = %d, want artist bonus applied", scored[0].Score)
	}
}

func TestKeywordScoring(t *testing.T) {
	analysis := analyzer.Analysis{Keywords: []string{"umbrella", "remix"}, ExplicitOK: true}
	track := catalog.Track{
		Title: "Umbrella (Remix)",
		Album: "Umbrella Singles",
	}

	scored := rankFixed([]catalog.Track{track}, analysis)
	// umbrella: title +25, album +10; remix: title +25. Total 60.
	if scored[0].Score != 60 {
		t.Errorf("score = %d, want 60", scored[0].Score)
	}
}

func TestGenreMatch(t *testing.T) {
	analysis := analyzer.Analysis{Genre: "pop", ExplicitOK: true}
	match := catalog.Track{Title: "A", Artist: "x", Genre: "Latin Pop"}
	miss := catalog.Track{Title: "A", Artist: "x", Genre: "Rock"}

	scored := rankFixed([]catalog.Track{miss, match}, analysis)
	if delta := scored[0].Score - scored[1].Score; delta != 25 {
		t.Errorf("genre delta = %d, want 25", delta)
	}
}

func TestEraExactAndPenalty(t *testing.T) {
	analysis := analyzer.Analysis{Era: "1980s", ExplicitOK: true}
	exact := catalog.Track{Title: "A", Artist: "x", ReleaseDate: "1985-02-01T00:00:00Z"}
	oneOff := catalog.Track{Title: "A", Artist: "x", ReleaseDate: "1994-02-01T00:00:00Z"}
	farOff := catalog.Track{Title: "A", Artist: "x", ReleaseDate: "2015-02-01T00:00:00Z"}

	scored := rankFixed([]catalog.Track{farOff, oneOff, exact}, analysis)

	if scored[0].ReleaseDate != exact.ReleaseDate {
		t.Fatalf("exact decade should rank first: %+v", scored)
	}
	if scored[0].Score != 40 {
		t.Errorf("exact score = %d, want 40", scored[0].Score)
	}
	if scored[1].Score != -10 {
		t.Errorf("one decade off = %d, want -10", scored[1].Score)
	}
	if scored[2].Score != -30 {
		t.Errorf("three decades off = %d, want -30", scored[2].Score)
	}
}

func TestRecencyTiersWhenNoEra(t *testing.T) {
	analysis := analyzer.Analysis{ExplicitOK: true}
	tests := []struct {
		name string
		date string
		want int
	}{
		{"very recent", "2025-01-01", 20},
		{"recent", "2022-01-01", 15},
		{"mid", "2017-01-01", 10},
		{"old", "1990-01-01", 0},
		{"no date", "", 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			track := catalog.Track{Title: "A", Artist: "x", ReleaseDate: tt.date}
			scored := rankFixed([]catalog.Track{track}, analysis)
			if scored[0].Score != tt.want {
				t.Errorf("score = %d, want %d", scored[0].Score, tt.want)
			}
		})
	}
}

func TestExplicitPenaltyOnlyWhenForbidden(t *testing.T) {
	track := catalog.Track{Title: "A", Artist: "x", Explicit: true}

	allowed := rankFixed([]catalog.Track{track}, analyzer.Analysis{ExplicitOK: true})
	if allowed[0].Score != 0 {
		t.Errorf("allowed explicit score = %d, want 0", allowed[0].Score)
	}

	forbidden := rankFixed([]catalog.Track{track}, analyzer.Analysis{ExplicitOK: false})
	if forbidden[0].Score != -15 {
		t.Errorf("forbidden explicit score = %d, want -15", forbidden[0].Score)
	}
}

func TestPriceCapAndEarlyTrackBonus(t *testing.T) {
	analysis := analyzer.Analysis{ExplicitOK: true}
	expensive := catalog.Track{Title: "A", Artist: "x", CollectionPrice: 49.99, TrackNumber: 1}

	scored := rankFixed([]catalog.Track{expensive}, analysis)
	// price capped at 20, +5 early-track bonus
	if scored[0].Score != 25 {
		t.Errorf("score = %d, want 25", scored[0].Score)
	}

	late := catalog.Track{Title: "A", Artist: "x", CollectionPrice: 5, TrackNumber: 11}
	scored = rankFixed([]catalog.Track{late}, analysis)
	if scored[0].Score != 10 {
		t.Errorf("late track score = %d, want 10 (price only)", scored[0].Score)
	}
}

func TestRegionalArtistBonus(t *testing.T) {
	regional := catalog.Track{Title: "A", Artist: "Karol G"}
	other := catalog.Track{Title: "A", Artist: "Adele"}

	spanish := analyzer.Analysis{Language: "es", ExplicitOK: true}
	scored := rankFixed([]catalog.Track{other, regional}, spanish)
	if delta := scored[0].Score - scored[1].Score; delta != 15 {
		t.Errorf("regional delta = %d, want 15", delta)
	}

	english := analyzer.Analysis{Language: "en", ExplicitOK: true}
	scored = rankFixed([]catalog.Track{other, regional}, english)
	if scored[0].Score != scored[1].Score {
		t.Errorf("no regional bonus expected for language=en: %+v", scored)
	}
}

func TestStableOrderOnTies(t *testing.T) {
	analysis := analyzer.Analysis{ExplicitOK: true}
	tracks := []catalog.Track{
		{Title: "First", Artist: "x"},
		{Title: "Second", Artist: "y"},
		{Title: "Third", Artist: "z"},
	}

	scored := rankFixed(tracks, analysis)

	want := []string{"First", "Second", "Third"}
	for i, title := range want {
		if scored[i].Title != title {
			t.Errorf("scored[%d].Title = %q, want %q (stable tie order)", i, scored[i].Title, title)
		}
	}
}

func TestEndToEndOrdering(t *testing.T) {
	analysis := analyzer.Analyze("bad bunny reggaeton")
	if analysis.PossibleArtist != "bad bunny" {
		t.Fatalf("PossibleArtist = %q", analysis.PossibleArtist)
	}
	if analysis.Genre != "reggaeton" {
		t.Fatalf("Genre = %q", analysis.Genre)
	}

	tracks := []catalog.Track{
		{Title: "Me Porto Bonito", Artist: "Quevedo", Genre: "Reggaeton"},
		{Title: "Tití Me Preguntó", Artist: "Bad Bunny", Genre: "Reggaeton"},
	}

	scored := rankFixed(tracks, analysis)
	if scored[0].Artist != "Bad Bunny" {
		t.Errorf("matching artist should rank first, got %+v", scored)
	}
}
