package api

import (
	"net/http"

	"github.com/givihub/givix-routing/internal/api/handlers"
	"github.com/givihub/givix-routing/internal/ports"
	"github.com/givihub/givix-routing/internal/services"
)

// NewRouter wires HTTP handlers with their dependencies and returns an
// http.Handler. This is the API composition root (handlers stay
// unaware of concrete adapters).
func NewRouter(resolver *services.Resolver, provider ports.RouteProvider) http.Handler {
	mux := http.NewServeMux()

	routeHandler := &handlers.RouteHandler{
		Resolver: resolver,
		Provider: provider,
	}

	mux.HandleFunc("/health", handlers.Health)
	mux.HandleFunc("/route", routeHandler.Single)
	mux.HandleFunc("/routes", routeHandler.Batch)

	return loggingMiddleware(mux)
}
