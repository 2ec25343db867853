package main

import (
	"strings"
	"testing"
)

func TestPrintUsage(t *testing.T) {
	t.Parallel()

	var buf strings.Builder
	printUsage(&buf)
	got := buf.String()

	wants := []string{
		"Usage: songbook",
		"-f, --format",
		"comma-separated sheet names, or the",
		"flag repeated once per name",
		"SONGBOOK_TIMEOUT",
		"Precedence: flags > environment > config file > defaults.",
	}
	for _, want := range wants {
		if !strings.Contains(got, want) {
			t.Errorf("usage text missing %q", want)
		}
	}
}
