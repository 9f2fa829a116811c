// Package actionoutput writes GitHub Actions step outputs.
package actionoutput

import (
	"fmt"
	"os"
	"strings"
)

const delimiter = "RUN_RELAY_EOF"

// Writer appends name/value pairs to the file named by GITHUB_OUTPUT.
// A Writer with an empty path discards outputs, which is what happens
// when running outside of Actions.
type Writer struct {
	path string
}

// New creates a writer for the given output file path.
func New(path string) *Writer {
	return &Writer{path: path}
}

// FromEnv creates a writer for $GITHUB_OUTPUT.
func FromEnv() *Writer {
	return New(os.Getenv("GITHUB_OUTPUT"))
}

// Set records one output using the multiline heredoc syntax.
func (w *Writer) Set(name, value string) error {
	if w.path == "" {
		return nil
	}
	if strings.Contains(value, delimiter) {
		return fmt.Errorf("output %q contains reserved delimiter", name)
	}

	//nolint:gosec // G302,G304: path is provided by the Actions runner
	f, err := os.OpenFile(w.path, os.O_APPEND|os.O_WRONLY|os.O_CREATE, 0o666)
	if err != nil {
		return fmt.Errorf("opening output file: %w", err)
	}
	//nolint:errcheck // Deferred cleanup, error not actionable
	defer func() { _ = f.Close() }()

	if _, err := fmt.Fprintf(f, "%s<<%s\n%s\n%s\n", name, delimiter, value, delimiter); err != nil {
		return fmt.Errorf("writing output %s: %w", name, err)
	}
	return nil
}
