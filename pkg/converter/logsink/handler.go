// --- START OF NEW FILE pkg/converter/logsink/handler.go ---
package logsink

import (
	"context"
	"log/slog"

	"github.com/infosia/FBX-glTF-conv/pkg/converter"
)

// LevelFatal is the slog level mapped to converter.LevelFatal.
const LevelFatal = slog.LevelError + 4

// Handler is a slog.Handler that forwards records into a converter.Logger, so the
// tool's own diagnostics end up in the same destination as the converter's messages.
// Records without attributes become free-text messages; records with attributes
// become structured payloads {"msg": ..., <attrs>}.
type Handler struct {
	logger converter.Logger
	level  slog.Leveler
	attrs  []slog.Attr
	group  string
}

// NewHandler creates a Handler writing to logger. Records below level are dropped.
func NewHandler(logger converter.Logger, level slog.Leveler) *Handler {
	if level == nil {
		level = slog.LevelInfo
	}
	return &Handler{logger: logger, level: level}
}

// ToLevel maps a slog level onto the converter severity scale.
func ToLevel(l slog.Level) converter.Level {
	switch {
	case l >= LevelFatal:
		return converter.LevelFatal
	case l >= slog.LevelError:
		return converter.LevelError
	case l >= slog.LevelWarn:
		return converter.LevelWarning
	case l >= slog.LevelInfo:
		return converter.LevelInfo
	default:
		return converter.LevelVerbose
	}
}

// Enabled implements slog.Handler.
func (h *Handler) Enabled(_ context.Context, l slog.Level) bool {
	return l >= h.level.Level()
}

// Handle implements slog.Handler.
func (h *Handler) Handle(_ context.Context, r slog.Record) error {
	if len(h.attrs) == 0 && r.NumAttrs() == 0 {
		h.logger.Log(ToLevel(r.Level), converter.Text(r.Message))
		return nil
	}
	payload := map[string]any{"msg": r.Message}
	for _, a := range h.attrs {
		addAttr(payload, "", a)
	}
	r.Attrs(func(a slog.Attr) bool {
		addAttr(payload, h.group, a)
		return true
	})
	h.logger.Log(ToLevel(r.Level), converter.Structured(payload))
	return nil
}

// WithAttrs implements slog.Handler.
func (h *Handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	clone := *h
	clone.attrs = make([]slog.Attr, 0, len(h.attrs)+len(attrs))
	clone.attrs = append(clone.attrs, h.attrs...)
	for _, a := range attrs {
		if h.group != "" {
			a.Key = h.group + "." + a.Key
		}
		clone.attrs = append(clone.attrs, a)
	}
	return &clone
}

// WithGroup implements slog.Handler.
func (h *Handler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	clone := *h
	if h.group != "" {
		name = h.group + "." + name
	}
	clone.group = name
	return &clone
}

func addAttr(payload map[string]any, prefix string, a slog.Attr) {
	a.Value = a.Value.Resolve()
	if a.Equal(slog.Attr{}) {
		return
	}
	key := a.Key
	if prefix != "" && key != "" {
		key = prefix + "." + key
	} else if key == "" {
		key = prefix
	}
	switch a.Value.Kind() {
	case slog.KindGroup:
		for _, ga := range a.Value.Group() {
			addAttr(payload, key, ga)
		}
	case slog.KindAny:
		if err, ok := a.Value.Any().(error); ok {
			payload[key] = err.Error()
			return
		}
		payload[key] = a.Value.Any()
	case slog.KindDuration:
		payload[key] = a.Value.Duration().String()
	case slog.KindTime:
		payload[key] = a.Value.Time()
	default:
		payload[key] = a.Value.Any()
	}
}

// --- END OF NEW FILE pkg/converter/logsink/handler.go ---
