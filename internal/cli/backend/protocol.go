// --- START OF NEW FILE internal/cli/backend/protocol.go ---
package backend

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"

	"github.com/infosia/FBX-glTF-conv/pkg/converter"
)

// SchemaVersion is sent in the convert frame; engines reject versions they do not speak.
const SchemaVersion = "1.0"

// Frame types.
const (
	FrameConvert      = "convert"
	FrameBufferResult = "bufferResult"
	FrameLog          = "log"
	FrameBuffer       = "buffer"
	FrameDocument     = "document"
	FrameError        = "error"
)

//go:embed frame.schema.json
var frameSchemaJSON []byte

var frameSchema = mustLoadSchema(frameSchemaJSON)

func mustLoadSchema(data []byte) *gojsonschema.Schema {
	s, err := gojsonschema.NewSchema(gojsonschema.NewBytesLoader(data))
	if err != nil {
		panic(fmt.Sprintf("backend: invalid embedded frame schema: %v", err))
	}
	return s
}

// convertFrame starts a conversion (host to engine).
type convertFrame struct {
	SchemaVersion string            `json:"$schemaVersion"`
	Type          string            `json:"type"`
	Input         string            `json:"input"`
	Options       converter.Options `json:"options"`
}

// bufferResultFrame answers one buffer frame (host to engine).
type bufferResultFrame struct {
	Type  string `json:"type"`
	URI   string `json:"uri,omitempty"`
	Error string `json:"error,omitempty"`
}

// engineFrame is the union of all frames an engine may send.
type engineFrame struct {
	Type     string          `json:"type"`
	Level    converter.Level `json:"level"`
	Message  json.RawMessage `json:"message"`
	Index    uint32          `json:"index"`
	Multi    bool            `json:"multi"`
	Data     []byte          `json:"data"` // base64 in the wire format
	Document json.RawMessage `json:"document"`
}

// decodeFrame validates line against the frame schema and decodes it.
func decodeFrame(line []byte) (engineFrame, error) {
	var f engineFrame
	result, err := frameSchema.Validate(gojsonschema.NewBytesLoader(line))
	if err != nil {
		return f, fmt.Errorf("%w: frame is not JSON: %w", converter.ErrBackendProtocol, err)
	}
	if !result.Valid() {
		msgs := make([]string, 0, len(result.Errors()))
		for _, e := range result.Errors() {
			msgs = append(msgs, e.String())
		}
		return f, fmt.Errorf("%w: invalid frame: %s", converter.ErrBackendProtocol, strings.Join(msgs, "; "))
	}
	if err := json.Unmarshal(line, &f); err != nil {
		return f, fmt.Errorf("%w: cannot decode %s frame: %w", converter.ErrBackendProtocol, f.Type, err)
	}
	return f, nil
}

// logMessage turns a log frame's message into a converter.Message:
// JSON strings become free text, anything else a structured payload.
func logMessage(raw json.RawMessage) converter.Message {
	var text string
	if err := json.Unmarshal(raw, &text); err == nil {
		return converter.Text(text)
	}
	return converter.Structured(raw)
}

// errorMessage extracts the text of an error frame.
func errorMessage(raw json.RawMessage) string {
	var text string
	if err := json.Unmarshal(raw, &text); err != nil {
		return string(raw)
	}
	return text
}

// --- END OF NEW FILE internal/cli/backend/protocol.go ---
