// --- START OF FINAL REVISED FILE pkg/converter/errors.go ---
package converter

import "errors"

// --- Exported Error Variables ---
// These errors represent specific categories of issues raised while preparing,
// running or persisting a conversion. Callers check against them using errors.Is.

var (
	// ErrResolution indicates that the parsed command line options could not be turned into
	// a usable Options value (missing input file, unresolvable paths).
	// Returned before any conversion is attempted.
	ErrResolution = errors.New("failed to resolve conversion options")

	// ErrMkdirFailed indicates a failure to create a necessary output directory.
	// This is often due to filesystem permissions.
	ErrMkdirFailed = errors.New("failed to create output directory")

	// ErrBufferWrite indicates that an externalized buffer could not be written completely.
	// Partially written buffers are never left at the final path.
	ErrBufferWrite = errors.New("failed to write buffer file")

	// ErrDocumentWrite indicates that the serialized output document could not be written.
	ErrDocumentWrite = errors.New("failed to write output document")

	// ErrLogPersist indicates that the buffered JSON log could not be written to the log file.
	// This is reported directly on stderr and never logged through the failed sink.
	ErrLogPersist = errors.New("failed to persist log file")

	// ErrConversion indicates that the conversion engine reported a failure.
	// The orchestrator catches it, logs it at fatal level and exits with the captured-failure code.
	ErrConversion = errors.New("conversion failed")

	// ErrBackendProtocol indicates that the conversion engine process produced a frame that
	// is not valid JSON or does not conform to the protocol schema.
	// errors.Is(err, ErrConversion) is also true for errors wrapping this one.
	ErrBackendProtocol = errors.New("conversion backend protocol violation")
)

// --- END OF FINAL REVISED FILE pkg/converter/errors.go ---
