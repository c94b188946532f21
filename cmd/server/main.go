package main

import (
	"net/http"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/givihub/givix-routing/internal/adapters/geocode"
	"github.com/givihub/givix-routing/internal/adapters/routing"
	"github.com/givihub/givix-routing/internal/api"
	"github.com/givihub/givix-routing/internal/config"
	"github.com/givihub/givix-routing/internal/services"
)

// main is the application composition root.
// It wires concrete adapters (Yandex geocoder, 2GIS routing) behind
// ports and starts the HTTP server.
func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()
	zap.ReplaceGlobals(logger)
	sugar := logger.Sugar()

	if err := godotenv.Load(); err != nil {
		sugar.Info("no .env file found (using environment variables)")
	}

	cfg := config.FromEnv()
	if strings.TrimSpace(cfg.RoutingAPIKey) == "" {
		sugar.Fatal("DGIS_API_KEY is required")
	}
	if strings.TrimSpace(cfg.GeocoderAPIKey) == "" {
		// Reverse geocoding degrades without a key; forward lookups will fail.
		sugar.Warn("YANDEX_API_KEY is not set, address resolution is unavailable")
	}

	geocoder := geocode.NewYandexGeocoder(cfg.GeocoderAPIKey, cfg.GeocoderURL, cfg.GeocoderTimeout)
	provider := routing.NewDGISRouteProvider(cfg.RoutingAPIKey, cfg.RoutingURL, cfg.RoutingTimeout, cfg.Locale)
	resolver := services.NewResolver(geocoder, sugar)

	router := api.NewRouter(resolver, provider)

	// Write timeout leaves room for two geocode calls plus a routing call.
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	sugar.Infow("server listening", "addr", srv.Addr)
	sugar.Fatal(srv.ListenAndServe())
}
