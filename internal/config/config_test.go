package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "songbook.yaml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadFromPath(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, `
input:
  default: catalog.xlsx
output:
  default: out.typ
format: typst
sections:
  order: [Suomi, Anime]
pdf:
  timeout: 45s
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if cfg.Input.Default != "catalog.xlsx" {
		t.Errorf("Input.Default = %q", cfg.Input.Default)
	}
	if cfg.Output.Default != "out.typ" {
		t.Errorf("Output.Default = %q", cfg.Output.Default)
	}
	if cfg.Format != "typst" {
		t.Errorf("Format = %q", cfg.Format)
	}
	if len(cfg.Sections.Order) != 2 || cfg.Sections.Order[0] != "Suomi" {
		t.Errorf("Sections.Order = %v", cfg.Sections.Order)
	}
	if cfg.Timeout() != 45*time.Second {
		t.Errorf("Timeout() = %v", cfg.Timeout())
	}
}

func TestLoadErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		content string
		wantErr error
	}{
		{
			name:    "unknown field rejected",
			content: "formot: html\n",
			wantErr: ErrConfigParse,
		},
		{
			name:    "invalid format",
			content: "format: docx\n",
			wantErr: ErrInvalidFormat,
		},
		{
			name:    "invalid timeout",
			content: "pdf:\n  timeout: soon\n",
			wantErr: ErrInvalidTimeout,
		},
		{
			name:    "negative timeout",
			content: "pdf:\n  timeout: -5s\n",
			wantErr: ErrInvalidTimeout,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := Load(writeConfig(t, tt.content))
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Load() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestLoadFormatCaseInsensitive(t *testing.T) {
	t.Parallel()

	cfg, err := Load(writeConfig(t, "format: TYPST\n"))
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.Format != "TYPST" {
		t.Errorf("Format = %q", cfg.Format)
	}
}

func TestLoadNotFound(t *testing.T) {
	t.Parallel()

	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if !errors.Is(err, ErrConfigNotFound) {
		t.Errorf("Load() error = %v, want ErrConfigNotFound", err)
	}
}

func TestLoadEmptyName(t *testing.T) {
	t.Parallel()

	_, err := Load("")
	if !errors.Is(err, ErrEmptyConfigName) {
		t.Errorf("Load(\"\") error = %v, want ErrEmptyConfigName", err)
	}
}

func TestTimeoutUnset(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()
	if cfg.Timeout() != 0 {
		t.Errorf("Timeout() = %v, want 0", cfg.Timeout())
	}
}

func TestValidateEmptyConfig(t *testing.T) {
	t.Parallel()

	if err := DefaultConfig().Validate(); err != nil {
		t.Errorf("Validate() on empty config: %v", err)
	}
}
