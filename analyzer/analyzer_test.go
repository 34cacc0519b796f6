package analyzer

import (
	"reflect"
	"testing"
)

func TestAnalyzeDeterministic(t *testing.T) {
	queries := []string{
		"",
		"!!! ...  ???",
		"una canción triste de los 80",
		"bad bunny reggaeton",
		"the one that goes la la la",
	}
	for _, q := range queries {
		first := Analyze(q)
		second := Analyze(q)
		if !reflect.DeepEqual(first, second) {
			t.Errorf("Analyze(%q) not deterministic: %+v vs %+v", q, first, second)
		}
	}
}

func TestAnalyzeEmptyAndPunctuation(t *testing.T) {
	for _, q := range []string{"", "   ", "!?!.,;:()[]"} {
		got := Analyze(q)
		if len(got.Keywords) != 0 {
			t.Errorf("Analyze(%q).Keywords = %v, want empty", q, got.Keywords)
		}
		if got.PossibleArtist != "" || got.Genre != "" || got.Era != "" {
			t.Errorf("Analyze(%q) detected signals in noise: %+v", q, got)
		}
		if got.IsLyricsQuery {
			t.Errorf("Analyze(%q).IsLyricsQuery = true, want false", q)
		}
		if got.Language != DefaultLanguage {
			t.Errorf("Analyze(%q).Language = %q", q, got.Language)
		}
		if !got.ExplicitOK {
			t.Errorf("Analyze(%q).ExplicitOK = false, want true", q)
		}
	}
}

func TestExtractKeywords(t *testing.T) {
	tests := []struct {
		name  string
		query string
		want  []string
	}{
		{
			name:  "drops stopwords and short tokens",
			query: "una canción triste de los 80",
			want:  []string{"triste"},
		},
		{
			name:  "keeps original order",
			query: "umbrella rihanna remix",
			want:  []string{"umbrella", "rihanna", "remix"},
		},
		{
			name:  "punctuation becomes whitespace",
			query: "don't stop me now!",
			want:  []string{"don", "stop", "now"},
		},
		{
			name:  "capped at five",
			query: "amarillo verde azul rojo negro blanco violeta",
			want:  []string{"amarillo", "verde", "azul", "rojo", "negro"},
		},
		{
			name:  "mixed spanish stopwords",
			query: "quiero buscar música para bailar cumbia",
			want:  []string{"bailar", "cumbia"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Analyze(tt.query).Keywords
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("keywords = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestDetectArtist(t *testing.T) {
	tests := []struct {
		name  string
		query string
		want  string
	}{
		{"simple match", "algo de bad bunny", "bad bunny"},
		{"case folded", "BAD BUNNY perreo", "bad bunny"},
		{"earlier entry wins", "shakira y maluma juntos", "shakira"},
		{"substring of longer name", "temas de gustavo cerati", "gustavo cerati"},
		{"no match", "a sad song from the 80s", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Analyze(tt.query).PossibleArtist; got != tt.want {
				t.Errorf("PossibleArtist = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestDetectGenre(t *testing.T) {
	tests := []struct {
		name  string
		query string
		want  string
	}{
		{"canonical surface form", "reggaeton viejo", "reggaeton"},
		{"alias perreo", "algo de perreo intenso", "reggaeton"},
		{"misspelling", "reggeaton 2010", "reggaeton"},
		{"rock", "80s rock", "rock"},
		{"rap maps to hip hop", "rap argentino", "hip hop"},
		{"accented alias", "electrónica para correr", "electronic"},
		{"no genre", "canciones tristes", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Analyze(tt.query).Genre; got != tt.want {
				t.Errorf("Genre = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestDetectLyricIntent(t *testing.T) {
	tests := []struct {
		query string
		want  bool
	}{
		{"la canción que dice te quiero", true},
		{"el tema que canta la sirenita", true},
		{"letra de despacito", true},
		{"the one that goes dun dun dun", true},
		{"bad bunny reggaeton", false},
	}
	for _, tt := range tests {
		if got := Analyze(tt.query).IsLyricsQuery; got != tt.want {
			t.Errorf("IsLyricsQuery(%q) = %v, want %v", tt.query, got, tt.want)
		}
	}
}

func TestIsRegionalArtist(t *testing.T) {
	tests := []struct {
		artist string
		want   bool
	}{
		{"Bad Bunny", true},
		{"Shakira", true},
		{"Gustavo Cerati", true}, // matches "cerati"
		{"Queen", false},
		{"", false},
	}
	for _, tt := range tests {
		if got := IsRegionalArtist(tt.artist); got != tt.want {
			t.Errorf("IsRegionalArtist(%q) = %v, want %v", tt.artist, got, tt.want)
		}
	}
}
