// Package config loads application configuration from environment variables.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config holds the application configuration loaded from environment variables.
type Config struct {
	Org            string
	ListenAddr     string
	PageSize       int
	RequestTimeout time.Duration
}

// Load reads configuration from environment variables and returns a validated
// Config. ORGFOLIO_ORG is required. Optional variables with defaults:
// ORGFOLIO_LISTEN_ADDR (127.0.0.1:8080), ORGFOLIO_PAGE_SIZE (100, must be
// 1..100), ORGFOLIO_REQUEST_TIMEOUT (15s, applied per upstream load).
func Load() (*Config, error) {
	org := os.Getenv("ORGFOLIO_ORG")
	if org == "" {
		return nil, fmt.Errorf("ORGFOLIO_ORG is required")
	}

	listenAddr := "127.0.0.1:8080"
	if v, ok := os.LookupEnv("ORGFOLIO_LISTEN_ADDR"); ok {
		listenAddr = v
	}

	pageSize := 100
	if v, ok := os.LookupEnv("ORGFOLIO_PAGE_SIZE"); ok {
		parsed, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("ORGFOLIO_PAGE_SIZE has invalid value %q: %w", v, err)
		}
		if parsed < 1 || parsed > 100 {
			return nil, fmt.Errorf("ORGFOLIO_PAGE_SIZE must be between 1 and 100, got %d", parsed)
		}
		pageSize = parsed
	}

	requestTimeout := 15 * time.Second
	if v, ok := os.LookupEnv("ORGFOLIO_REQUEST_TIMEOUT"); ok {
		parsed, err := time.ParseDuration(v)
		if err != nil {
			return nil, fmt.Errorf("ORGFOLIO_REQUEST_TIMEOUT has invalid duration %q: %w", v, err)
		}
		requestTimeout = parsed
	}

	return &Config{
		Org:            org,
		ListenAddr:     listenAddr,
		PageSize:       pageSize,
		RequestTimeout: requestTimeout,
	}, nil
}
