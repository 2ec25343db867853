package main

import (
	"os"

	flag "github.com/spf13/pflag"
)

// cliFlags holds all flags for the songbook command.
type cliFlags struct {
	config  string
	output  string
	format  string
	order   []string
	timeout string
	quiet   bool
	verbose bool
	version bool
}

// parseFlags parses command-line flags and returns positional args.
// args must not include the program name.
func parseFlags(args []string) (*cliFlags, []string, error) {
	fs := flag.NewFlagSet("songbook", flag.ContinueOnError)
	f := &cliFlags{}

	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.StringVarP(&f.output, "output", "o", "", "output file path")
	fs.StringVarP(&f.format, "format", "f", "", "output format: html, typst, pdf")
	fs.StringSliceVar(&f.order, "order", nil, "section order (sheet names)")
	fs.StringVarP(&f.timeout, "timeout", "t", "", "PDF generation timeout (e.g., 30s, 2m)")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show progress details")
	fs.BoolVar(&f.version, "version", false, "show version and exit")

	fs.Usage = func() { printUsage(os.Stderr) }

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}

	return f, fs.Args(), nil
}
