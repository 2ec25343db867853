package main

import (
	"strings"
	"testing"
	"time"
)

func TestLoadEnvConfig(t *testing.T) {
	t.Setenv("SONGBOOK_CONFIG", "/etc/songbook.yaml")
	t.Setenv("SONGBOOK_FORMAT", "typst")
	t.Setenv("SONGBOOK_TIMEOUT", "45s")

	cfg := loadEnvConfig()
	if cfg.ConfigPath != "/etc/songbook.yaml" {
		t.Errorf("ConfigPath = %q, want %q", cfg.ConfigPath, "/etc/songbook.yaml")
	}
	if cfg.Format != "typst" {
		t.Errorf("Format = %q, want %q", cfg.Format, "typst")
	}
	if cfg.Timeout != 45*time.Second {
		t.Errorf("Timeout = %v, want 45s", cfg.Timeout)
	}
	if cfg.InvalidTimeout != "" {
		t.Errorf("InvalidTimeout = %q, want empty for a valid value", cfg.InvalidTimeout)
	}
}

func TestLoadEnvConfigInvalidTimeout(t *testing.T) {
	tests := []struct {
		name  string
		value string
	}{
		{name: "not a duration", value: "soon"},
		{name: "zero", value: "0s"},
		{name: "negative", value: "-5s"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("SONGBOOK_TIMEOUT", tt.value)

			cfg := loadEnvConfig()
			if cfg.Timeout != 0 {
				t.Errorf("Timeout = %v, want 0 for %q", cfg.Timeout, tt.value)
			}
			if cfg.InvalidTimeout != tt.value {
				t.Errorf("InvalidTimeout = %q, want %q", cfg.InvalidTimeout, tt.value)
			}
		})
	}
}

func TestLoadEnvConfigEmpty(t *testing.T) {
	t.Setenv("SONGBOOK_CONFIG", "")
	t.Setenv("SONGBOOK_FORMAT", "")
	t.Setenv("SONGBOOK_TIMEOUT", "")

	cfg := loadEnvConfig()
	if cfg.ConfigPath != "" || cfg.Format != "" || cfg.Timeout != 0 {
		t.Errorf("expected zero config, got %+v", cfg)
	}
}

func TestWarnUnknownEnvVars(t *testing.T) {
	t.Setenv("SONGBOOK_FORMAT", "html")
	t.Setenv("SONGBOOK_FROMAT", "html") // typo should be flagged

	var buf strings.Builder
	warnUnknownEnvVars(&buf)

	got := buf.String()
	if !strings.Contains(got, "SONGBOOK_FROMAT") {
		t.Errorf("warning output %q does not mention SONGBOOK_FROMAT", got)
	}
	if strings.Contains(got, "SONGBOOK_FORMAT\n") {
		t.Errorf("warning output %q flags a known variable", got)
	}
}
