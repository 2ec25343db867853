// Package config loads songbook configuration from YAML files.
//
// A config file can set defaults for everything the CLI flags cover:
//
//	input:
//	  default: from-google-docs/Frostbite_2026_Karaoke.xlsx
//	output:
//	  default: karaoke.html
//	format: html
//	sections:
//	  order: [Anime, Japani, Suomi, Muut]
//	pdf:
//	  timeout: 45s
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	songbook "github.com/kcsry/karaoke-utils"
	"github.com/kcsry/karaoke-utils/internal/fileutil"
	"github.com/kcsry/karaoke-utils/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrInvalidFormat   = errors.New("invalid format in config")
	ErrInvalidTimeout  = errors.New("invalid timeout in config")
)

// appDir is the directory name under the user config dir searched for
// named configs.
const appDir = "songbook"

// Config holds all configuration for songbook generation.
type Config struct {
	Input    InputConfig    `yaml:"input"`
	Output   OutputConfig   `yaml:"output"`
	Format   string         `yaml:"format"`
	Sections SectionsConfig `yaml:"sections"`
	PDF      PDFConfig      `yaml:"pdf"`
}

// InputConfig defines input source options.
type InputConfig struct {
	Default string `yaml:"default"` // Default workbook path (empty = CLI default)
}

// OutputConfig defines output destination options.
type OutputConfig struct {
	Default string `yaml:"default"` // Default output path (empty = derive from format)
}

// SectionsConfig defines section sequencing options.
type SectionsConfig struct {
	Order []string `yaml:"order"` // Priority list of sheet names (empty = built-in order)
}

// PDFConfig defines PDF generation options.
type PDFConfig struct {
	Timeout string `yaml:"timeout"` // Go duration string, e.g. "45s" (empty = default)
}

// Validate checks that config values are usable.
func (c *Config) Validate() error {
	if c.Format != "" {
		// Same parser the generation path uses, so the two can never
		// disagree on what a valid format is.
		if _, err := songbook.ParseFormat(c.Format); err != nil {
			return fmt.Errorf("%w: %q (must be one of %s)", ErrInvalidFormat, c.Format, formatNames())
		}
	}

	if c.PDF.Timeout != "" {
		d, err := time.ParseDuration(c.PDF.Timeout)
		if err != nil || d <= 0 {
			return fmt.Errorf("%w: %q", ErrInvalidTimeout, c.PDF.Timeout)
		}
	}

	return nil
}

// Timeout returns the parsed PDF timeout, or zero when unset.
// Call Validate first; an unparsable value returns zero here.
func (c *Config) Timeout() time.Duration {
	if c.PDF.Timeout == "" {
		return 0
	}
	d, err := time.ParseDuration(c.PDF.Timeout)
	if err != nil {
		return 0
	}
	return d
}

// formatNames lists the supported formats for error messages.
func formatNames() string {
	all := songbook.Formats()
	names := make([]string, len(all))
	for i, f := range all {
		names[i] = string(f)
	}
	return strings.Join(names, ", ")
}

// DefaultConfig returns a neutral configuration.
func DefaultConfig() *Config {
	return &Config{}
}

// Load loads configuration from a file path or config name.
// If nameOrPath contains a path separator, it's treated as a file path.
// Otherwise, it's treated as a config name and searched in standard
// locations. Returns error if the file is not found (no silent fallback).
func Load(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	var configPath string
	var err error

	if fileutil.IsFilePath(nameOrPath) {
		configPath = nameOrPath
	} else {
		configPath, err = resolveConfigPath(nameOrPath)
		if err != nil {
			return nil, err
		}
	}

	data, err := os.ReadFile(configPath) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	var cfg Config
	if err := yamlutil.UnmarshalStrict(data, &cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// resolveConfigPath searches for a config file by name in standard locations.
// Tries extensions in order: .yaml, .yml
// Tries locations in order: current directory, ~/.config/songbook/
func resolveConfigPath(name string) (string, error) {
	extensions := []string{".yaml", ".yml"}
	triedPaths := make([]string, 0, len(extensions)*2) // 2 locations

	for _, ext := range extensions {
		localPath := name + ext
		if fileutil.FileExists(localPath) {
			return localPath, nil
		}
		triedPaths = append(triedPaths, localPath)
	}

	userConfigDir, err := os.UserConfigDir()
	if err == nil {
		for _, ext := range extensions {
			userPath := filepath.Join(userConfigDir, appDir, name+ext)
			if fileutil.FileExists(userPath) {
				return userPath, nil
			}
			triedPaths = append(triedPaths, userPath)
		}
	}

	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(triedPaths, ", "))
}
