// --- START OF FINAL REVISED FILE internal/testutil/helpers.go ---
package testutil

import (
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/infosia/FBX-glTF-conv/pkg/converter"
)

// CreateDummyFile creates a dummy file with specified content at the given path,
// ensuring parent directories exist. It uses require assertions for test setup.
func CreateDummyFile(t *testing.T, path string, content string) {
	t.Helper()
	fullPath := filepath.Clean(path)
	dir := filepath.Dir(fullPath)
	err := os.MkdirAll(dir, 0755)
	require.NoError(t, err, "Failed to create directory %s for dummy file", dir)
	err = os.WriteFile(fullPath, []byte(content), 0644)
	require.NoError(t, err, "Failed to write dummy file %s", fullPath)
}

// CreateDummyDir ensures a directory exists at the given path, creating parents if needed.
func CreateDummyDir(t *testing.T, path string) {
	t.Helper()
	fullPath := filepath.Clean(path)
	err := os.MkdirAll(fullPath, 0755)
	require.NoError(t, err, "Failed to create dummy directory %s", fullPath)
}

// WriteYAMLFile marshals v as YAML into path, creating parent directories.
func WriteYAMLFile(t *testing.T, path string, v any) {
	t.Helper()
	data, err := yaml.Marshal(v)
	require.NoError(t, err, "Failed to marshal YAML for %s", path)
	CreateDummyFile(t, path, string(data))
}

// LogEntry is one call captured by LogRecorder.
type LogEntry struct {
	Level   converter.Level
	Message converter.Message
}

// LogRecorder is a converter.Logger that keeps every call in order.
type LogRecorder struct {
	mu      sync.Mutex
	entries []LogEntry
}

// Log implements converter.Logger.
func (r *LogRecorder) Log(level converter.Level, msg converter.Message) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = append(r.entries, LogEntry{Level: level, Message: msg})
}

// Entries returns a copy of the captured calls.
func (r *LogRecorder) Entries() []LogEntry {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]LogEntry(nil), r.entries...)
}

// Texts returns the rendered text of every captured message.
func (r *LogRecorder) Texts() []string {
	entries := r.Entries()
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = e.Message.String()
	}
	return out
}

// --- END OF FINAL REVISED FILE internal/testutil/helpers.go ---
