// --- START OF NEW FILE internal/cli/options/schema.go ---
// Package options declares the command-line schema and parses normalized
// arguments against it, reporting structured errors.
package options

import (
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"

	"github.com/infosia/FBX-glTF-conv/pkg/converter"
	"github.com/spf13/pflag"
)

// Arity is the number of values an option takes per occurrence and in total.
type Arity int

const (
	// ArityFlag options take no value (an explicit "--name=value" is still accepted).
	ArityFlag Arity = iota
	// AritySingle options take exactly one value and may appear once.
	AritySingle
	// ArityMulti options take one value per occurrence and may be repeated.
	ArityMulti
)

// Kind is the value type of an option.
type Kind int

const (
	KindString Kind = iota
	KindBool
	KindNumber
)

// Option names.
const (
	OptInput                           = "input-file"
	OptOut                             = "out"
	OptFbmDir                          = "fbm-dir"
	OptNoFlipV                         = "no-flip-v"
	OptUnitConversion                  = "unit-conversion"
	OptNoTextureResolution             = "no-texture-resolution"
	OptPreferLocalTimeSpan             = "prefer-local-time-span"
	OptAnimationBakeRate               = "animation-bake-rate"
	OptSuspectedAnimationDurationLimit = "suspected-animation-duration-limit"
	OptTextureSearchLocations          = "texture-search-locations"
	OptVerbose                         = "verbose"
	OptLogFile                         = "log-file"
	OptConfig                          = "config"
	OptHelp                            = "help"
)

// Option declares one named command-line option.
type Option struct {
	Name          string
	Shorthand     string
	Arity         Arity
	Kind          Kind
	Default       string // Textual default, parsed according to Kind. Empty means the zero value.
	Doc           string // Rendered verbatim in help output. Must be a single line.
	ConflictsWith []string
}

// Positional declares the single positional slot.
type Positional struct {
	Name string
	Doc  string
}

// Schema is the full declaration of accepted arguments.
type Schema struct {
	Program    string
	Summary    string
	Positional Positional
	Options    []Option
}

// DefaultSchema returns the schema of the fbx-gltf-conv command.
func DefaultSchema() Schema {
	return Schema{
		Program:    "fbx-gltf-conv",
		Summary:    "This is a FBX to glTF file format converter.",
		Positional: Positional{Name: OptInput, Doc: "Input file"},
		Options: []Option{
			{Name: OptFbmDir, Arity: AritySingle, Kind: KindString,
				Doc: "The directory to store the embedded media."},
			{Name: OptOut, Arity: AritySingle, Kind: KindString,
				Doc: "The output path to the .gltf or .glb file. Defaults to <working-directory>/<FBX-filename-basename>_glTF/<FBX-filename-basename>.gltf"},
			{Name: OptNoFlipV, Arity: ArityFlag, Kind: KindBool,
				Doc: "Do not flip V texture coordinates."},
			{Name: OptUnitConversion, Arity: AritySingle, Kind: KindString, Default: string(converter.DefaultUnitConversion),
				Doc: "How to perform unit conversion: geometry-level converts at geometry level, hierarchy-level converts at hierarchy level and disabled turns conversion off, which may produce glTF that does not conform to the glTF specification."},
			{Name: OptNoTextureResolution, Arity: ArityFlag, Kind: KindBool,
				Doc: "Do not resolve textures."},
			{Name: OptPreferLocalTimeSpan, Arity: AritySingle, Kind: KindBool, Default: strconv.FormatBool(converter.DefaultPreferLocalTimeSpan),
				Doc: "Prefer local time spans recorded in FBX file for animation exporting."},
			{Name: OptAnimationBakeRate, Arity: AritySingle, Kind: KindNumber, Default: formatNumber(converter.DefaultAnimationBakeRate),
				Doc: "Animation bake rate(in FPS)."},
			{Name: OptSuspectedAnimationDurationLimit, Arity: AritySingle, Kind: KindNumber,
				Doc: "The suspected animation duration limit. Animations longer than this are reported."},
			{Name: OptTextureSearchLocations, Arity: ArityMulti, Kind: KindString,
				Doc: "Texture search locations. These path shall be absolute path or relative path from input file's directory."},
			{Name: OptVerbose, Arity: ArityFlag, Kind: KindBool,
				Doc: "Verbose output."},
			{Name: OptLogFile, Arity: AritySingle, Kind: KindString,
				Doc: "Specify the log file(logs are outputed as JSON). If not specified, logs're printed to console"},
			{Name: OptConfig, Arity: AritySingle, Kind: KindString,
				Doc: "Read defaults from this YAML/JSON/TOML config file."},
			{Name: OptHelp, Shorthand: "h", Arity: ArityFlag, Kind: KindBool,
				Doc: "Print help."},
		},
	}
}

// Lookup returns the option named name.
func (s Schema) Lookup(name string) (Option, bool) {
	for _, o := range s.Options {
		if o.Name == name {
			return o, true
		}
	}
	return Option{}, false
}

// LookupShorthand returns the option whose shorthand is c.
func (s Schema) LookupShorthand(c string) (Option, bool) {
	for _, o := range s.Options {
		if o.Shorthand != "" && o.Shorthand == c {
			return o, true
		}
	}
	return Option{}, false
}

// Conflicts reports whether a and b may not be given together. Declarations are symmetric.
func (s Schema) Conflicts(a, b string) bool {
	if oa, ok := s.Lookup(a); ok && slices.Contains(oa.ConflictsWith, b) {
		return true
	}
	if ob, ok := s.Lookup(b); ok && slices.Contains(ob.ConflictsWith, a) {
		return true
	}
	return false
}

// FlagSet builds a fresh pflag set carrying every option with its default and doc.
// It panics if a declared Default does not parse as the option's Kind.
func (s Schema) FlagSet() *pflag.FlagSet {
	fs := pflag.NewFlagSet(s.Program, pflag.ContinueOnError)
	fs.SetOutput(io.Discard)
	for _, o := range s.Options {
		switch {
		case o.Arity == ArityMulti:
			fs.StringSliceP(o.Name, o.Shorthand, nil, o.Doc)
		case o.Kind == KindBool:
			fs.BoolP(o.Name, o.Shorthand, false, o.Doc)
			if o.Arity == AritySingle {
				// Require an explicit value, e.g. --prefer-local-time-span false.
				fs.Lookup(o.Name).NoOptDefVal = ""
			}
		case o.Kind == KindNumber:
			fs.Float64P(o.Name, o.Shorthand, 0, o.Doc)
		default:
			fs.StringP(o.Name, o.Shorthand, "", o.Doc)
		}
		if o.Default != "" {
			f := fs.Lookup(o.Name)
			if err := f.Value.Set(o.Default); err != nil {
				panic(fmt.Sprintf("options: invalid default %q for --%s: %v", o.Default, o.Name, err))
			}
			f.DefValue = f.Value.String()
		}
	}
	return fs
}

// FlagUsages renders the option table, one line per option.
func (s Schema) FlagUsages() string {
	return s.FlagSet().FlagUsages()
}

// Usage renders the complete help text.
func (s Schema) Usage() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s\n\nUsage:\n  %s [options] <%s>\n\n", s.Summary, s.Program, s.Positional.Name)
	fmt.Fprintf(&b, "Arguments:\n  %s   %s\n\n", s.Positional.Name, s.Positional.Doc)
	fmt.Fprintf(&b, "Options:\n%s", s.FlagUsages())
	return b.String()
}

func formatNumber(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// --- END OF NEW FILE internal/cli/options/schema.go ---
