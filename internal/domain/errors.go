package domain

import "errors"

// ErrMissingAPIKey signals that an operation requiring an API key was
// attempted without one configured.
var ErrMissingAPIKey = errors.New("api key is not configured")

// ErrNoResults signals that the geocoder found nothing for the query.
var ErrNoResults = errors.New("geocoder returned no results")

// ErrPointUnderspecified signals that a point carries neither an
// address nor a full coordinate pair.
var ErrPointUnderspecified = errors.New("point has neither coordinates nor address")
