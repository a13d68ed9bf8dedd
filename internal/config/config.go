package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// API describes the configuration of the search service and its HTTP layer.
type API struct {
	BindAddr string

	// SerpAPIKey may be empty; the search service then answers every query
	// with the missing-credential sentinel instead of failing at startup.
	SerpAPIKey string

	// ResultThreshold stops the per-retailer fan-out once this many records
	// have been accumulated.
	ResultThreshold int

	// RetryDelay is the pause before the single network-error retry of an
	// upstream call.
	RetryDelay time.Duration
}

// Load builds the API config from environment variables.
func Load() (*API, error) {
	c := &API{
		BindAddr:        getEnv("API_BIND_ADDR", "0.0.0.0:8080"),
		SerpAPIKey:      getEnv("SERPAPI_API_KEY", ""),
		ResultThreshold: getInt("SEARCH_RESULT_THRESHOLD", 20),
		RetryDelay:      getDuration("SERPAPI_RETRY_DELAY", "1s"),
	}

	if c.ResultThreshold <= 0 {
		return nil, fmt.Errorf("SEARCH_RESULT_THRESHOLD must be positive")
	}
	if c.RetryDelay <= 0 {
		return nil, fmt.Errorf("SERPAPI_RETRY_DELAY must be positive")
	}

	return c, nil
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}

func getInt(key string, fallback int) int {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			return parsed
		}
	}
	return fallback
}

func getDuration(key, fallback string) time.Duration {
	raw := getEnv(key, fallback)
	d, err := time.ParseDuration(raw)
	if err != nil {
		fd, ferr := time.ParseDuration(fallback)
		if ferr != nil {
			panic(fmt.Sprintf("invalid fallback duration %q: %v", fallback, ferr))
		}
		return fd
	}
	return d
}
