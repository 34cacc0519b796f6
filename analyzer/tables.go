package analyzer

// Curated lookup tables. All entries are lowercase; matching is done
// against the case-folded query. These are read-only after init and are
// shared across concurrent requests without locking.

// knownArtists is ordered: when a query could match more than one name,
// the earliest entry wins.
var knownArtists = []string{
	"bad bunny", "j balvin", "shakira", "maluma", "ozuna", "karol g",
	"soda stereo", "gustavo cerati", "cerati", "charly garcía", "luis miguel",
	"ricky martin", "enrique iglesias", "juanes", "manu chao",
	"andrés calamaro", "calamaro", "fito páez", "los fabulosos",
	"luis alberto spinetta", "spinetta",
}

// regionalArtists backs the regional bonus in ranking: artists from the
// Spanish-language market the product is tuned for.
var regionalArtists = []string{
	"shakira", "maluma", "ozuna", "bad bunny", "karol g", "j balvin",
	"soda stereo", "cerati", "chayanne", "juanes",
}

type genreEntry struct {
	Canonical string
	Keywords  []string
}

// genreTable is ordered: the first canonical genre with a surface-form
// substring hit wins.
var genreTable = []genreEntry{
	{"reggaeton", []string{"reggaeton", "reggeaton", "perreo"}},
	{"rock", []string{"rock", "rock and roll", "rock&roll"}},
	{"pop", []string{"pop"}},
	{"jazz", []string{"jazz"}},
	{"blues", []string{"blues"}},
	{"country", []string{"country"}},
	{"electronic", []string{"electrónica", "electronic", "edm", "house", "techno"}},
	{"hip hop", []string{"hip hop", "hip-hop", "rap"}},
	{"r&b", []string{"r&b", "rnb", "rhythm and blues"}},
	{"salsa", []string{"salsa"}},
	{"bachata", []string{"bachata"}},
	{"cumbia", []string{"cumbia"}},
	{"tango", []string{"tango"}},
	{"folklore", []string{"folklore", "folclore"}},
}

// lyricPhrases mark queries that describe or quote lyrics instead of
// naming a title or artist.
var lyricPhrases = []string{
	"dice", "canta", "letra", "la que va",
	"the one that goes", "sings", "lyrics",
}

// stopwords are function words dropped during keyword extraction.
// Spanish first (the default language hint), common English second.
var stopwords = map[string]struct{}{
	// Spanish
	"una": {}, "uno": {}, "unos": {}, "unas": {}, "los": {}, "las": {},
	"del": {}, "con": {}, "por": {}, "para": {}, "que": {}, "como": {},
	"más": {}, "mas": {}, "muy": {}, "esta": {}, "este": {}, "esa": {},
	"ese": {}, "canción": {}, "cancion": {}, "canciones": {}, "música": {},
	"musica": {}, "tema": {}, "busca": {}, "buscar": {}, "quiero": {},
	"años": {}, "año": {},
	// English
	"the": {}, "and": {}, "for": {}, "with": {}, "from": {}, "that": {},
	"this": {}, "song": {}, "songs": {}, "music": {}, "some": {},
}
