// --- START OF FINAL REVISED FILE pkg/converter/options.go ---
package converter

import (
	"context"
	"encoding/json"
)

// TextureResolution holds the settings controlling how texture references are located.
type TextureResolution struct {
	Disabled  bool     `mapstructure:"disabled" json:"disabled"`
	Locations []string `mapstructure:"locations" json:"locations,omitempty"` // Absolute directories, in priority order
}

// Message is the body of a log record: either free text or a structured JSON payload.
type Message struct {
	text    string
	payload any
}

// Text creates a free-text message.
func Text(s string) Message { return Message{text: s} }

// Structured creates a message carrying a structured payload. The payload must be JSON-marshalable.
func Structured(payload any) Message { return Message{payload: payload} }

// IsStructured reports whether the message carries a structured payload.
func (m Message) IsStructured() bool { return m.payload != nil }

// Payload returns the message as a JSON-marshalable value. Free text is returned as a string.
func (m Message) Payload() any {
	if m.payload != nil {
		return m.payload
	}
	return m.text
}

// String renders the message as text. Structured payloads are rendered as indented JSON.
func (m Message) String() string {
	if m.payload == nil {
		return m.text
	}
	data, err := json.MarshalIndent(m.payload, "", "  ")
	if err != nil {
		return m.text
	}
	return string(data)
}

// Logger is the logging capability handed to the converter.
// Implementations are called synchronously from inside Convert.
type Logger interface {
	Log(level Level, msg Message)
}

// BufferWriter is the capability the converter uses to externalize binary payloads.
// Buffer is called once per payload, strictly before Convert returns. index is assigned by
// the converter and multi reports whether more than one buffer is externalized in this
// conversion. The returned string is a URI relative to the output document.
// The writer only reads data; ownership stays with the converter.
type BufferWriter interface {
	Buffer(data []byte, index uint32, multi bool) (uri string, err error)
}

// Document is the converted scene document produced by a Converter.
type Document interface {
	// Serialize renders the document as text, indenting nested values by indent spaces.
	Serialize(indent int) ([]byte, error)
}

// Converter converts a single input file into a Document.
// Implementations report failures as errors wrapping ErrConversion.
type Converter interface {
	Convert(ctx context.Context, inputPath string, opts Options) (Document, error)
}

// NoOpLogger provides a default, do-nothing implementation of the Logger interface.
type NoOpLogger struct{}

// Log implements the Logger interface. It performs no action.
func (NoOpLogger) Log(Level, Message) {}

// Options holds the resolved configuration for one conversion.
type Options struct {
	// --- Core Paths ---
	Out    string `mapstructure:"-" json:"out"`                   // Resolved output document path
	FbmDir string `mapstructure:"fbm-dir" json:"fbmDir,omitempty"` // Directory for embedded media; empty keeps the converter default

	// --- Behavior Toggles ---
	Verbose             bool              `mapstructure:"verbose" json:"verbose"`
	NoFlipV             bool              `mapstructure:"no-flip-v" json:"noFlipV"`
	PreferLocalTimeSpan bool              `mapstructure:"prefer-local-time-span" json:"preferLocalTimeSpan"`
	TextureResolution   TextureResolution `mapstructure:"-" json:"textureResolution"`

	// --- Animation ---
	AnimationBakeRate               float64 `mapstructure:"animation-bake-rate" json:"animationBakeRate"`
	SuspectedAnimationDurationLimit float64 `mapstructure:"suspected-animation-duration-limit" json:"suspectedAnimationDurationLimit"`

	// --- Geometry ---
	UnitConversion UnitConversion `mapstructure:"-" json:"unitConversion"`

	// --- Output Format ---
	UseDataURIForBuffers bool     `mapstructure:"-" json:"useDataUriForBuffers"`
	PathMode             PathMode `mapstructure:"-" json:"pathMode"`

	// --- Injected Capabilities ---
	Writer BufferWriter `mapstructure:"-" json:"-"` // Required when UseDataURIForBuffers is false
	Logger Logger       `mapstructure:"-" json:"-"` // Required: log destination for converter messages
}

// DefaultOptions returns Options populated with the documented defaults.
func DefaultOptions() Options {
	return Options{
		PreferLocalTimeSpan:             DefaultPreferLocalTimeSpan,
		NoFlipV:                         DefaultNoFlipV,
		Verbose:                         DefaultVerbose,
		TextureResolution:               TextureResolution{Disabled: DefaultTextureResolutionDisabled},
		AnimationBakeRate:               DefaultAnimationBakeRate,
		SuspectedAnimationDurationLimit: DefaultSuspectedAnimationDurationLimit,
		UnitConversion:                  DefaultUnitConversion,
		PathMode:                        DefaultPathMode,
		Logger:                          NoOpLogger{},
	}
}

// --- END OF FINAL REVISED FILE pkg/converter/options.go ---
