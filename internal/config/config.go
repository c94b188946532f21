package config

import (
	"os"
	"time"
)

// Config holds everything read from the environment. It is built once
// in main and handed to the adapters, which keeps tests free of
// environment mutation.
type Config struct {
	RoutingAPIKey  string
	GeocoderAPIKey string

	RoutingURL  string
	GeocoderURL string

	RoutingTimeout  time.Duration
	GeocoderTimeout time.Duration

	Locale string
	Port   string
}

// FromEnv reads the configuration from the process environment.
// Missing API keys are not an error here: operations that require one
// fail fast at call time, and the reverse-geocode path degrades.
func FromEnv() Config {
	return Config{
		RoutingAPIKey:   os.Getenv("DGIS_API_KEY"),
		GeocoderAPIKey:  os.Getenv("YANDEX_API_KEY"),
		RoutingURL:      os.Getenv("ROUTING_URL"),
		GeocoderURL:     os.Getenv("GEOCODER_URL"),
		RoutingTimeout:  duration("ROUTING_TIMEOUT", 15*time.Second),
		GeocoderTimeout: duration("GEOCODER_TIMEOUT", 10*time.Second),
		Locale:          Get("LOCALE", "ru"),
		Port:            Get("PORT", "8080"),
	}
}

// Get returns the environment value for key, or fallback when unset.
func Get(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func duration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return fallback
	}
	return d
}
