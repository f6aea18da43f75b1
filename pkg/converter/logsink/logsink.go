// --- START OF NEW FILE pkg/converter/logsink/logsink.go ---
// Package logsink provides the two log destinations handed to the converter:
// a Console sink that prints immediately and a JSON sink that buffers records
// until it is flushed to a log file.
package logsink

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/charmbracelet/lipgloss"
	"github.com/infosia/FBX-glTF-conv/pkg/converter"
	"github.com/infosia/FBX-glTF-conv/pkg/converter/atomicfile"
	"golang.org/x/term"
)

// Sink is a converter.Logger that can be flushed at the end of a run.
type Sink interface {
	converter.Logger
	// Flush persists buffered records. Sinks without buffering return nil.
	Flush() error
}

// Select returns the JSON sink when logFile is non-empty and the Console sink otherwise.
func Select(logFile string, stdout, stderr io.Writer) Sink {
	if logFile != "" {
		return NewJSON(logFile)
	}
	return NewConsole(stdout, stderr)
}

// --- Console ---

var errorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))

// Console prints every message immediately. Messages at LevelError and above go to
// the error stream, everything else to the output stream.
type Console struct {
	out    io.Writer
	err    io.Writer
	styled bool
	mu     sync.Mutex
}

// NewConsole creates a Console sink. Error lines are colored when the error stream is a terminal.
func NewConsole(out, err io.Writer) *Console {
	return &Console{out: out, err: err, styled: isTerminal(err)}
}

// Log implements converter.Logger.
func (c *Console) Log(level converter.Level, msg converter.Message) {
	text := msg.String()
	stream := c.out
	if level >= converter.LevelError {
		stream = c.err
		if c.styled {
			text = errorStyle.Render(text)
		}
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	fmt.Fprintln(stream, text)
}

// Flush implements Sink. Console output is never buffered.
func (c *Console) Flush() error { return nil }

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// --- JSON ---

// Record is one entry of the JSON log.
type Record struct {
	Level   converter.Level `json:"level"`
	Message any             `json:"message"`
}

// JSON buffers records in memory and writes them as one JSON array on Flush.
type JSON struct {
	path    string
	mu      sync.Mutex
	records []Record
}

// NewJSON creates a JSON sink that flushes to path.
func NewJSON(path string) *JSON {
	return &JSON{path: path, records: []Record{}}
}

// Log implements converter.Logger. Free text is stored as a JSON string.
func (j *JSON) Log(level converter.Level, msg converter.Message) {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.records = append(j.records, Record{Level: level, Message: msg.Payload()})
}

// Records returns a copy of the buffered records in insertion order.
func (j *JSON) Records() []Record {
	j.mu.Lock()
	defer j.mu.Unlock()
	return append([]Record(nil), j.records...)
}

// Path returns the log file path.
func (j *JSON) Path() string { return j.path }

// Flush writes all records to the log file, creating parent directories first.
func (j *JSON) Flush() error {
	j.mu.Lock()
	data, err := json.MarshalIndent(j.records, "", "  ")
	j.mu.Unlock()
	if err != nil {
		return fmt.Errorf("%w: cannot encode log records: %w", converter.ErrLogPersist, err)
	}
	if err := atomicfile.WriteBytes(j.path, data, 0644); err != nil {
		return fmt.Errorf("%w: '%s': %w", converter.ErrLogPersist, j.path, err)
	}
	return nil
}

// --- END OF NEW FILE pkg/converter/logsink/logsink.go ---
