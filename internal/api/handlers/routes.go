package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"go.uber.org/zap"

	"github.com/givihub/givix-routing/internal/domain"
	"github.com/givihub/givix-routing/internal/ports"
	"github.com/givihub/givix-routing/internal/services"
)

// RouteHandler exposes the single-route and batch computation endpoints.
type RouteHandler struct {
	Resolver *services.Resolver
	Provider ports.RouteProvider
}

// Single computes one route from a single-mode input document.
// A fatal error on either endpoint or the routing call fails the
// whole request.
func (h *RouteHandler) Single(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req services.SingleRequest

	dec := json.NewDecoder(r.Body)
	defer r.Body.Close()

	if err := dec.Decode(&req); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid json body")
		return
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		writeError(w, r, http.StatusBadRequest, "body must contain only one JSON object")
		return
	}

	res, err := services.ComputeRoute(r.Context(), req, h.Resolver, h.Provider)
	if err != nil {
		writeRouteError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, res)
}

// Batch computes every leg of a batch document. Per-leg failures are
// recorded inside the document, so this endpoint itself only fails on
// malformed input.
func (h *RouteHandler) Batch(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req services.BatchRequest

	dec := json.NewDecoder(r.Body)
	defer r.Body.Close()

	if err := dec.Decode(&req); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid json body")
		return
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		writeError(w, r, http.StatusBadRequest, "body must contain only one JSON object")
		return
	}

	res := services.ProcessBatch(r.Context(), req, h.Resolver, h.Provider, zap.S())

	writeJSON(w, r, http.StatusOK, res)
}

// writeRouteError maps the error taxonomy onto HTTP statuses: input
// problems are the caller's fault, missing configuration is ours, and
// everything else came from upstream.
func writeRouteError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, domain.ErrPointUnderspecified):
		writeError(w, r, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrNoResults):
		writeError(w, r, http.StatusUnprocessableEntity, err.Error())
	case errors.Is(err, domain.ErrMissingAPIKey):
		zap.S().Errorw("route failed", "err", err)
		writeError(w, r, http.StatusInternalServerError, "service is not configured")
	default:
		zap.S().Errorw("route failed", "err", err)
		writeError(w, r, http.StatusBadGateway, err.Error())
	}
}
