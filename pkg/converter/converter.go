// --- START OF FINAL REVISED FILE pkg/converter/converter.go ---
package converter

import (
	"bytes"
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"
)

// Stem returns the file name of path without its extension. A leading dot does
// not start an extension, so the stem of ".fbx" is ".fbx".
func Stem(path string) string {
	base := filepath.Base(path)
	if i := strings.LastIndexByte(base, '.'); i > 0 && base != ".." {
		return base[:i]
	}
	return base
}

// JSONDocument is a Document backed by raw glTF JSON. Serialization keeps the
// field order produced by the converter.
type JSONDocument json.RawMessage

// Serialize implements the Document interface.
func (d JSONDocument) Serialize(indent int) ([]byte, error) {
	if len(d) == 0 {
		return nil, fmt.Errorf("%w: empty document", ErrDocumentWrite)
	}
	if indent < 0 {
		indent = 0
	}
	var buf bytes.Buffer
	if indent == 0 {
		if err := json.Compact(&buf, d); err != nil {
			return nil, fmt.Errorf("%w: document is not valid JSON: %w", ErrDocumentWrite, err)
		}
		return buf.Bytes(), nil
	}
	if err := json.Indent(&buf, d, "", strings.Repeat(" ", indent)); err != nil {
		return nil, fmt.Errorf("%w: document is not valid JSON: %w", ErrDocumentWrite, err)
	}
	return buf.Bytes(), nil
}

// MarshalJSON lets a JSONDocument be embedded in other JSON values unchanged.
func (d JSONDocument) MarshalJSON() ([]byte, error) {
	if len(d) == 0 {
		return []byte("null"), nil
	}
	return d, nil
}

// --- END OF FINAL REVISED FILE pkg/converter/converter.go ---
