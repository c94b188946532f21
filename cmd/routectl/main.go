package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/givihub/givix-routing/internal/adapters/geocode"
	"github.com/givihub/givix-routing/internal/adapters/routing"
	"github.com/givihub/givix-routing/internal/config"
	"github.com/givihub/givix-routing/internal/ports"
	"github.com/givihub/givix-routing/internal/services"
)

// routectl reads a JSON route document, resolves coordinates, computes
// driving routes, and writes the result document. A top-level "routes"
// array selects batch mode; otherwise the document is a single
// from/to request.
func main() {
	inPath := flag.String("in", "input.json", "path to the input JSON document")
	outPath := flag.String("out", "output.json", "path to the output JSON document")
	flag.Parse()

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
	geocoder := geocode.NewYandexGeocoder(cfg.GeocoderAPIKey, cfg.GeocoderURL, cfg.GeocoderTimeout)
	provider := routing.NewDGISRouteProvider(cfg.RoutingAPIKey, cfg.RoutingURL, cfg.RoutingTimeout, cfg.Locale)
	resolver := services.NewResolver(geocoder, sugar)

	if err := run(context.Background(), *inPath, *outPath, resolver, provider, sugar); err != nil {
		sugar.Fatalw("run failed", "err", err)
	}

	sugar.Infow("done", "out", *outPath)
}

func run(
	ctx context.Context,
	inPath, outPath string,
	resolver *services.Resolver,
	provider ports.RouteProvider,
	log *zap.SugaredLogger,
) error {
	raw, err := os.ReadFile(inPath)
	if err != nil {
		return fmt.Errorf("read input: %w", err)
	}

	var probe struct {
		Routes json.RawMessage `json:"routes"`
	}
	if err := json.Unmarshal(raw, &probe); err != nil {
		return fmt.Errorf("parse input: %w", err)
	}

	var out any
	if probe.Routes != nil {
		var req services.BatchRequest
		if err := json.Unmarshal(raw, &req); err != nil {
			return fmt.Errorf("parse batch input: %w", err)
		}
		// Batch mode never aborts on a single bad route; errors end up
		// in the output document.
		out = services.ProcessBatch(ctx, req, resolver, provider, log)
	} else {
		var req services.SingleRequest
		if err := json.Unmarshal(raw, &req); err != nil {
			return fmt.Errorf("parse route input: %w", err)
		}
		res, err := services.ComputeRoute(ctx, req, resolver, provider)
		if err != nil {
			return err
		}
		out = res
	}

	return writeJSONFile(outPath, out)
}

func writeJSONFile(path string, v any) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create output: %w", err)
	}

	enc := json.NewEncoder(f)
	enc.SetIndent("", "    ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		f.Close()
		return fmt.Errorf("write output: %w", err)
	}

	return f.Close()
}
