package main

import (
	"context"
	"net/http"

	nested "github.com/antonfisher/nested-logrus-formatter"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"

	appConfig "songscout/config"

	"songscout/catalog"
	"songscout/catalog/itunes"
	"songscout/catalog/spotify"
	"songscout/handlers"
	"songscout/search"
	appSentry "songscout/sentry"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Warnf("Error loading .env file: %v", err)
	}
	appConfig.NewConfig()
	setupLogging()
	appSentry.Init()

	if err := run(context.Background()); err != nil {
		log.Fatal(err)
	}
}

func setupLogging() {
	log.SetFormatter(&nested.Formatter{
		HideKeys:    true,
		FieldsOrder: []string{"module"},
	})
	if level, err := log.ParseLevel(appConfig.Config.Options.LogLevel); err == nil {
		log.SetLevel(level)
	}
}

func run(ctx context.Context) error {
	client, err := newCatalogClient(ctx)
	if err != nil {
		log.Errorf("Error creating catalog client: %v", err)
		return err
	}

	cfg := appConfig.Config
	service := search.NewService(client, search.Options{
		TopN:          cfg.Search.TopN,
		Limit:         cfg.Catalog.Limit,
		Country:       cfg.Catalog.Country,
		Language:      cfg.Catalog.Language,
		EnrichQuery:   cfg.Search.EnrichQuery,
		AllowExplicit: cfg.Search.AllowExplicit,
		Source:        cfg.Catalog.Provider,
	})

	router := gin.Default()
	router.Use(appSentry.GetSentryGin())
	handlers.NewManager(service).RegisterRoutes(router)

	port := cfg.Options.Port
	if port == "" {
		port = "8080"
	}
	log.Infof("Starting server on :%s (catalog: %s)", port, cfg.Catalog.Provider)
	return http.ListenAndServe(":"+port, router)
}

func newCatalogClient(ctx context.Context) (catalog.Client, error) {
	cfg := appConfig.Config
	if cfg.Catalog.IsSpotify() {
		return spotify.New(ctx, cfg.Spotify.ClientID, cfg.Spotify.ClientSecret)
	}
	return itunes.New(cfg.Catalog.BaseURL), nil
}
