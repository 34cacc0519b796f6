package config

import (
	"os"
	"strconv"
)

type ConfigStruct struct {
	Catalog CatalogConfig
	Spotify SpotifyConfig
	Search  SearchConfig
	Options Options
}

type CatalogConfig struct {
	Provider string // "itunes" (default) or "spotify"
	BaseURL  string
	Country  string
	Language string
	Limit    int
}

type SpotifyConfig struct {
	ClientID     string
	ClientSecret string
}

type SearchConfig struct {
	TopN          int
	EnrichQuery   bool
	AllowExplicit bool
}

type Options struct {
	Port     string
	LogLevel string
}

func (c *CatalogConfig) IsSpotify() bool {
	return c.Provider == "spotify"
}

var Config *ConfigStruct

func NewConfig() {
	config := &ConfigStruct{
		Catalog: CatalogConfig{
			Provider: getCatalogProvider(),
			BaseURL:  getEnvDefault("CATALOG_BASE_URL", "https://itunes.apple.com/search"),
			Country:  getEnvDefault("CATALOG_COUNTRY", "US"),
			Language: getEnvDefault("CATALOG_LANG", "es_us"),
			Limit:    getCatalogLimit(),
		},
		Spotify: SpotifyConfig{
			ClientID:     os.Getenv("SPOTIFY_CLIENT_ID"),
			ClientSecret: os.Getenv("SPOTIFY_CLIENT_SECRET"),
		},
		Search: SearchConfig{
			TopN:          getTopN(),
			EnrichQuery:   os.Getenv("SEARCH_ENRICH_QUERY") == "true",
			AllowExplicit: os.Getenv("SEARCH_ALLOW_EXPLICIT") != "false",
		},
		Options: Options{
			Port:     os.Getenv("PORT"),
			LogLevel: os.Getenv("LOG_LEVEL"),
		},
	}

	Config = config
}

func getEnvDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getCatalogProvider() string {
	provider := os.Getenv("CATALOG_PROVIDER")
	if provider != "spotify" {
		return "itunes"
	}
	return provider
}

func getCatalogLimit() int {
	limitStr := os.Getenv("CATALOG_LIMIT")
	if limitStr == "" {
		return 50
	}
	limit, err := strconv.Atoi(limitStr)
	if err != nil || limit <= 0 {
		return 50
	}
	if limit > 200 {
		return 200 // iTunes Search API maximum
	}
	return limit
}

func getTopN() int {
	nStr := os.Getenv("SEARCH_TOP_N")
	if nStr == "" {
		return 15
	}
	n, err := strconv.Atoi(nStr)
	if err != nil || n <= 0 {
		return 15
	}
	if n > 50 {
		return 50
	}
	return n
}
