// --- START OF FINAL REVISED FILE pkg/converter/types.go ---
package converter

import (
	"fmt"
	"strings"
)

// UnitConversion defines how the converter applies unit conversion to the scene.
type UnitConversion string

// Constants representing the defined unit conversion modes.
const (
	UnitConversionGeometryLevel  UnitConversion = "geometry-level"
	UnitConversionHierarchyLevel UnitConversion = "hierarchy-level"
	UnitConversionDisabled       UnitConversion = "disabled"
)

// UnitConversionModes lists every accepted unit conversion mode, in documentation order.
var UnitConversionModes = []UnitConversion{
	UnitConversionGeometryLevel,
	UnitConversionHierarchyLevel,
	UnitConversionDisabled,
}

// ParseUnitConversion maps a mode name to its UnitConversion. Matching is case-sensitive.
func ParseUnitConversion(s string) (UnitConversion, bool) {
	for _, m := range UnitConversionModes {
		if string(m) == s {
			return m, true
		}
	}
	return "", false
}

// PathMode defines how the converter references external files (textures) from the output document.
type PathMode string

const (
	PathModeCopy   PathMode = "copy"
	PathModeStrip  PathMode = "strip"
	PathModeAuto   PathMode = "auto"
	PathModeEmbed  PathMode = "embed"
	PathModeStrict PathMode = "strict"
)

// Level is the severity of a log record. Levels are ordered: a higher value is more severe.
type Level int

const (
	LevelVerbose Level = iota
	LevelInfo
	LevelWarning
	LevelError
	LevelFatal
)

var levelNames = [...]string{"verbose", "info", "warning", "error", "fatal"}

// String returns the lowercase level name used in JSON logs.
func (l Level) String() string {
	if l < LevelVerbose || l > LevelFatal {
		return fmt.Sprintf("level(%d)", int(l))
	}
	return levelNames[l]
}

// MarshalText implements encoding.TextMarshaler so levels serialize by name.
func (l Level) MarshalText() ([]byte, error) {
	if l < LevelVerbose || l > LevelFatal {
		return nil, fmt.Errorf("unknown log level %d", int(l))
	}
	return []byte(levelNames[l]), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. "warn" is accepted as an alias of "warning".
func (l *Level) UnmarshalText(text []byte) error {
	name := strings.ToLower(string(text))
	if name == "warn" {
		name = "warning"
	}
	for i, n := range levelNames {
		if n == name {
			*l = Level(i)
			return nil
		}
	}
	return fmt.Errorf("unknown log level %q", string(text))
}

// --- END OF FINAL REVISED FILE pkg/converter/types.go ---
