// --- START OF FINAL REVISED FILE internal/cli/progress/progress.go ---
// Package progress reports externalized buffer writes on the terminal while a
// conversion is running.
package progress

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"

	"github.com/schollz/progressbar/v3"
	"golang.org/x/term"
)

// Reporter defines the interface needed to report buffer writes.
type Reporter interface {
	Add(bytes int) error
	Describe(description string) error
	Close() error
}

// --- No-Op Implementation for Decoupling ---

// NoOpReporter provides a default null implementation.
type NoOpReporter struct{}

// Add implements Reporter.
func (NoOpReporter) Add(int) error { return nil }

// Describe implements Reporter.
func (NoOpReporter) Describe(string) error { return nil }

// Close implements Reporter.
func (NoOpReporter) Close() error { return nil }

// --- Spinner ---

// Spinner is a Reporter rendering an indeterminate byte counter.
type Spinner struct {
	bar *progressbar.ProgressBar
	mu  sync.Mutex
}

// NewSpinner creates a Spinner writing to w. The line is cleared on Close.
func NewSpinner(w io.Writer, description string) *Spinner {
	bar := progressbar.NewOptions64(-1,
		progressbar.OptionSetWriter(w),
		progressbar.OptionSetDescription(description),
		progressbar.OptionShowBytes(true),
		progressbar.OptionSpinnerType(14),
		progressbar.OptionClearOnFinish(),
	)
	return &Spinner{bar: bar}
}

// Add implements Reporter.
func (s *Spinner) Add(bytes int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.bar.Add(bytes)
}

// Describe implements Reporter.
func (s *Spinner) Describe(description string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.bar.Describe(description)
	return nil
}

// Close implements Reporter.
func (s *Spinner) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.bar.Finish()
}

// --- Selection ---

// Enabled reports whether a spinner should be shown: stderr must be a terminal,
// logs must go to the console, and verbose output must be off.
func Enabled(stderr io.Writer, logFile string, verbose bool) bool {
	f, ok := stderr.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return false
	}
	return logFile == "" && !verbose
}

// New returns a Spinner on w when enabled and a NoOpReporter otherwise.
func New(w io.Writer, enabled bool, input string) Reporter {
	if !enabled {
		return NoOpReporter{}
	}
	return NewSpinner(w, fmt.Sprintf("Converting %s", filepath.Base(input)))
}

// WriteHook adapts r to the buffer writer's per-file callback.
func WriteHook(r Reporter) func(path string, size int) {
	return func(path string, size int) {
		_ = r.Describe(fmt.Sprintf("Wrote %s", filepath.Base(path)))
		_ = r.Add(size)
	}
}

// --- END OF FINAL REVISED FILE internal/cli/progress/progress.go ---
