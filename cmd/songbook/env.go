package main

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"
)

// envConfig holds configuration from environment variables.
// Provides CI/CD-friendly overrides without requiring YAML files.
type envConfig struct {
	ConfigPath string        // SONGBOOK_CONFIG: config file path
	Format     string        // SONGBOOK_FORMAT: output format
	Timeout    time.Duration // SONGBOOK_TIMEOUT: PDF generation timeout

	// InvalidTimeout keeps an unparsable or non-positive SONGBOOK_TIMEOUT
	// value so the CLI can warn about it in verbose mode.
	InvalidTimeout string
}

// knownEnvVars lists valid SONGBOOK_* environment variables.
// Used to detect typos and warn users about unknown variables.
var knownEnvVars = map[string]bool{
	"SONGBOOK_CONFIG":  true,
	"SONGBOOK_FORMAT":  true,
	"SONGBOOK_TIMEOUT": true,
}

// loadEnvConfig reads configuration from environment variables.
func loadEnvConfig() *envConfig {
	cfg := &envConfig{
		ConfigPath: os.Getenv("SONGBOOK_CONFIG"),
		Format:     os.Getenv("SONGBOOK_FORMAT"),
	}

	if timeout := os.Getenv("SONGBOOK_TIMEOUT"); timeout != "" {
		if d, err := time.ParseDuration(timeout); err == nil && d > 0 {
			cfg.Timeout = d
		} else {
			cfg.InvalidTimeout = timeout
		}
	}

	return cfg
}

// warnUnknownEnvVars logs warnings for unrecognized SONGBOOK_* variables.
func warnUnknownEnvVars(w io.Writer) {
	for _, kv := range os.Environ() {
		name, _, _ := strings.Cut(kv, "=")
		if strings.HasPrefix(name, "SONGBOOK_") && !knownEnvVars[name] {
			fmt.Fprintf(w, "warning: unknown environment variable %s\n", name)
		}
	}
}
