// --- START OF NEW FILE pkg/converter/bufwriter/bufwriter.go ---
// Package bufwriter implements the converter.BufferWriter that stores externalized
// binary buffers next to the output document.
package bufwriter

import (
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"strconv"

	"github.com/infosia/FBX-glTF-conv/pkg/converter"
	"github.com/infosia/FBX-glTF-conv/pkg/converter/atomicfile"
)

// FileWriter writes each buffer to its own file in the directory of the output document.
type FileWriter struct {
	outFile string
	logger  *slog.Logger
	onWrite func(path string, size int)
}

// Option configures a FileWriter.
type Option func(*FileWriter)

// WithLogger sets the diagnostics logger. Default: a logger that discards everything.
func WithLogger(logger *slog.Logger) Option {
	return func(w *FileWriter) { w.logger = logger }
}

// WithWriteHook registers a callback invoked after each buffer file is in place.
func WithWriteHook(fn func(path string, size int)) Option {
	return func(w *FileWriter) { w.onWrite = fn }
}

// New creates a FileWriter for the output document at outFile.
func New(outFile string, opts ...Option) *FileWriter {
	w := &FileWriter{
		outFile: outFile,
		logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// BufferPath returns the path the buffer with the given index is written to.
// A single buffer is named <base>.bin; with multiple buffers the index is appended: <base><index>.bin.
func (w *FileWriter) BufferPath(index uint32, multi bool) string {
	name := converter.Stem(w.outFile)
	if multi {
		name += strconv.FormatUint(uint64(index), 10)
	}
	return filepath.Join(filepath.Dir(w.outFile), name+converter.BufferExtension)
}

// Buffer implements converter.BufferWriter.
func (w *FileWriter) Buffer(data []byte, index uint32, multi bool) (string, error) {
	bufferPath := w.BufferPath(index, multi)

	if err := atomicfile.WriteBytes(bufferPath, data, 0644); err != nil {
		w.logger.Error("Failed to write buffer", slog.String("path", bufferPath), slog.Any("error", err))
		return "", fmt.Errorf("%w: buffer %d to '%s': %w", converter.ErrBufferWrite, index, bufferPath, err)
	}

	uri, err := relativeURI(filepath.Dir(w.outFile), bufferPath)
	if err != nil {
		return "", fmt.Errorf("%w: buffer %d: %w", converter.ErrBufferWrite, index, err)
	}

	w.logger.Debug("Buffer written",
		slog.String("path", bufferPath),
		slog.Int("bytes", len(data)),
		slog.Uint64("index", uint64(index)),
		slog.Bool("multi", multi),
	)
	if w.onWrite != nil {
		w.onWrite(bufferPath, len(data))
	}
	return uri, nil
}

// relativeURI expresses target relative to dir, with forward slashes.
func relativeURI(dir, target string) (string, error) {
	rel, err := filepath.Rel(dir, target)
	if err != nil {
		return "", fmt.Errorf("cannot express '%s' relative to '%s': %w", target, dir, err)
	}
	return filepath.ToSlash(rel), nil
}

// --- END OF NEW FILE pkg/converter/bufwriter/bufwriter.go ---
