package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"time"

	flag "github.com/spf13/pflag"

	songbook "github.com/kcsry/karaoke-utils"
	"github.com/kcsry/karaoke-utils/internal/config"
	"github.com/kcsry/karaoke-utils/internal/hints"
)

// defaultInputPath is the workbook read when no input argument is given.
const defaultInputPath = "from-google-docs/Frostbite_2026_Karaoke.xlsx"

// defaultConfigName is searched in standard locations when no config is
// specified. Missing is not an error in that case.
const defaultConfigName = "songbook"

// filePermissions for output files: rw-r--r--.
const filePermissions = 0o644

// Sentinel errors for CLI operations.
var (
	ErrTooManyArgs    = errors.New("too many arguments")
	ErrInvalidTimeout = errors.New("invalid timeout")
	ErrWriteOutput    = errors.New("failed to write output file")
)

// generator is the interface for the songbook service.
type generator interface {
	Generate(ctx context.Context, input songbook.Input) (*songbook.Result, error)
	Close() error
}

// newGenerator creates the production service. Tests replace it with a
// fake to run the CLI without excelize or a browser.
var newGenerator = func(opts ...songbook.Option) generator {
	return songbook.New(opts...)
}

// run parses arguments, resolves configuration, and generates the catalog.
// args must not include the program name.
func run(args []string, stdout, stderr io.Writer) error {
	flags, positionals, err := parseFlags(args)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	if flags.version {
		fmt.Fprintf(stdout, "songbook %s\n", Version)
		return nil
	}

	if len(positionals) > 1 {
		return fmt.Errorf("%w: %v", ErrTooManyArgs, positionals[1:])
	}

	env := loadEnvConfig()
	if flags.verbose {
		warnUnknownEnvVars(stderr)
		if env.InvalidTimeout != "" {
			fmt.Fprintf(stderr, "warning: ignoring invalid SONGBOOK_TIMEOUT %q\n", env.InvalidTimeout)
		}
	}

	cfg, err := resolveConfig(flags.config, env.ConfigPath)
	if err != nil {
		return err
	}

	params, err := mergeParams(flags, env, cfg, positionals)
	if err != nil {
		return err
	}

	var opts []songbook.Option
	if params.timeout > 0 {
		opts = append(opts, songbook.WithTimeout(params.timeout))
	}

	svc := newGenerator(opts...)
	defer func() { _ = svc.Close() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if flags.verbose {
		fmt.Fprintf(stderr, "Generating %s from %s\n", params.format, params.input)
	}

	result, err := svc.Generate(ctx, songbook.Input{
		Path:   params.input,
		Format: params.format,
		Order:  params.order,
	})
	if err != nil {
		return withHints(err)
	}

	if err := os.WriteFile(params.output, result.Bytes(), filePermissions); err != nil {
		return fmt.Errorf("%w: %v", ErrWriteOutput, err)
	}

	if !flags.quiet {
		fmt.Fprintf(stdout, "Wrote %s\n", params.output)
	}
	return nil
}

// runParams are the fully merged generation parameters.
type runParams struct {
	input   string
	output  string
	format  songbook.Format
	order   []string
	timeout time.Duration
}

// mergeParams merges flags, environment, and config into final parameters.
// Precedence: flags > environment > config file > defaults.
func mergeParams(flags *cliFlags, env *envConfig, cfg *config.Config, positionals []string) (*runParams, error) {
	p := &runParams{}

	formatStr := firstNonEmpty(flags.format, env.Format, cfg.Format, string(songbook.FormatHTML))
	format, err := songbook.ParseFormat(formatStr)
	if err != nil {
		return nil, err
	}
	p.format = format

	p.input = defaultInputPath
	if cfg.Input.Default != "" {
		p.input = cfg.Input.Default
	}
	if len(positionals) == 1 {
		p.input = positionals[0]
	}

	p.output = firstNonEmpty(flags.output, cfg.Output.Default, format.DefaultOutputName())

	switch {
	case len(flags.order) > 0:
		p.order = flags.order
	case len(cfg.Sections.Order) > 0:
		p.order = cfg.Sections.Order
	}

	switch {
	case flags.timeout != "":
		d, err := time.ParseDuration(flags.timeout)
		if err != nil || d <= 0 {
			return nil, fmt.Errorf("%w: %q", ErrInvalidTimeout, flags.timeout)
		}
		p.timeout = d
	case env.Timeout > 0:
		p.timeout = env.Timeout
	default:
		p.timeout = cfg.Timeout()
	}

	return p, nil
}

// resolveConfig loads the config file named by flag or environment.
// Without either, the default config name is tried in standard locations
// and a missing file falls back to defaults silently.
func resolveConfig(flagPath, envPath string) (*config.Config, error) {
	nameOrPath := firstNonEmpty(flagPath, envPath)
	if nameOrPath != "" {
		cfg, err := config.Load(nameOrPath)
		if err != nil {
			if errors.Is(err, config.ErrConfigNotFound) {
				return nil, fmt.Errorf("%w%s", err, hints.ForConfigNotFound(nil))
			}
			return nil, err
		}
		return cfg, nil
	}

	cfg, err := config.Load(defaultConfigName)
	if err != nil {
		if errors.Is(err, config.ErrConfigNotFound) {
			return config.DefaultConfig(), nil
		}
		return nil, err
	}
	return cfg, nil
}

// withHints appends actionable hints to well-known failures.
func withHints(err error) error {
	switch {
	case errors.Is(err, songbook.ErrBrowserConnect):
		return fmt.Errorf("%w%s", err, hints.ForBrowserConnect())
	case errors.Is(err, context.DeadlineExceeded):
		return fmt.Errorf("%w%s", err, hints.ForTimeout())
	case errors.Is(err, songbook.ErrOpenWorkbook):
		return fmt.Errorf("%w%s", err, hints.ForInputNotFound())
	}
	return err
}

// firstNonEmpty returns the first non-empty string, or "".
func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
