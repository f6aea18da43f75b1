// --- START OF NEW FILE pkg/converter/atomicfile/atomicfile.go ---
// Package atomicfile writes files through a temporary sibling that is renamed
// into place, so readers never observe a partially written file.
package atomicfile

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

const tempFilePattern = ".tmp-*"

// ErrShortWrite is returned when the writer callback reports fewer bytes than requested.
var ErrShortWrite = errors.New("short write")

// WriteFile creates the parent directories of path, calls write with a temporary file
// in the same directory and renames it to path once write returned successfully.
// On any failure the temporary file is removed and path is left untouched.
func WriteFile(path string, perm os.FileMode, write func(w io.Writer) error) (err error) {
	dir := filepath.Dir(path)
	if mkdirErr := os.MkdirAll(dir, 0755); mkdirErr != nil {
		return fmt.Errorf("cannot create directory '%s': %w", dir, mkdirErr)
	}

	tempFile, err := os.CreateTemp(dir, filepath.Base(path)+tempFilePattern)
	if err != nil {
		return fmt.Errorf("cannot create temporary file in '%s': %w", dir, err)
	}
	tempFilePath := tempFile.Name()

	closed := false
	defer func() {
		if !closed {
			_ = tempFile.Close()
		}
		if err != nil {
			_ = os.Remove(tempFilePath)
		}
	}()

	if writeErr := write(tempFile); writeErr != nil {
		return fmt.Errorf("failed writing temporary file '%s': %w", tempFilePath, writeErr)
	}
	if syncErr := tempFile.Sync(); syncErr != nil {
		return fmt.Errorf("failed to flush temporary file '%s': %w", tempFilePath, syncErr)
	}

	// Close file before renaming
	closeErr := tempFile.Close()
	closed = true
	if closeErr != nil {
		return fmt.Errorf("failed to close temporary file '%s': %w", tempFilePath, closeErr)
	}
	if chmodErr := os.Chmod(tempFilePath, perm); chmodErr != nil {
		return fmt.Errorf("failed to set permissions on '%s': %w", tempFilePath, chmodErr)
	}

	// Atomic Rename
	if renameErr := os.Rename(tempFilePath, path); renameErr != nil {
		return fmt.Errorf("failed to rename temporary file '%s' to '%s': %w", tempFilePath, path, renameErr)
	}
	return nil
}

// WriteBytes writes data to path atomically. All of data lands at path or an error is returned.
func WriteBytes(path string, data []byte, perm os.FileMode) error {
	return WriteFile(path, perm, func(w io.Writer) error {
		n, err := w.Write(data)
		if err != nil {
			return err
		}
		if n != len(data) {
			return fmt.Errorf("%w: wrote %d of %d bytes", ErrShortWrite, n, len(data))
		}
		return nil
	})
}

// --- END OF NEW FILE pkg/converter/atomicfile/atomicfile.go ---
