// --- START OF FINAL REVISED FILE internal/cli/config/config.go ---
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/infosia/FBX-glTF-conv/internal/cli/options"
	"github.com/infosia/FBX-glTF-conv/pkg/converter"
)

const (
	EnvPrefix         = "FBXGLTFCONV"
	DefaultConfigName = "fbx-gltf-conv"

	// KeyBackendCommand is the config key holding the conversion engine command line.
	KeyBackendCommand = "backend.command"
)

// DefaultBackendCommand is the engine launched when backend.command is not configured.
var DefaultBackendCommand = []string{"fbx-gltf-conv-backend"}

// Resolution is the result of resolving a parsed option set.
type Resolution struct {
	Options        converter.Options // Typed configuration handed to the converter (Writer and Logger unset)
	InputFile      string            // Input path, verbatim
	OutputFile     string            // Output document path, always set
	LogFile        string            // JSON log path; empty selects the console sink
	ConfigFile     string            // Config file that was read, if any
	BackendCommand []string          // Engine command line (argv form)
	Warnings       []string          // Non-fatal findings to be logged once a sink exists
}

// settings mirrors every configurable key. The embedded Options receives the keys
// it shares with the command line; the rest are translated in Resolve.
type settings struct {
	converter.Options `mapstructure:",squash"`

	Out                    string   `mapstructure:"out"`
	LogFile                string   `mapstructure:"log-file"`
	NoTextureResolution    bool     `mapstructure:"no-texture-resolution"`
	UnitConversion         string   `mapstructure:"unit-conversion"`
	TextureSearchLocations []string `mapstructure:"texture-search-locations"`
	Backend                struct {
		Command []string `mapstructure:"command"`
	} `mapstructure:"backend"`
}

// boundFlags lists the options that map 1:1 onto config keys.
var boundFlags = []string{
	options.OptOut, options.OptFbmDir, options.OptNoFlipV, options.OptUnitConversion,
	options.OptNoTextureResolution, options.OptPreferLocalTimeSpan, options.OptAnimationBakeRate,
	options.OptSuspectedAnimationDurationLimit, options.OptTextureSearchLocations,
	options.OptVerbose, options.OptLogFile,
}

// Resolve merges defaults, the optional config file, FBXGLTFCONV_* environment
// variables and the parsed command line (in increasing priority), then derives the
// converter configuration. Relative --out, --log-file and --config paths are taken
// relative to cwd. When no output path is configured, the default output directory
// is created before Resolve returns.
//
// Every returned error wraps converter.ErrResolution.
func Resolve(set *options.ParsedOptionSet, cwd string, logger *slog.Logger) (*Resolution, error) {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))
	}
	v := viper.New()
	setDefaults(v)

	// --- Load Config File ---
	cfgFile := set.String(options.OptConfig)
	if cfgFile != "" {
		v.SetConfigFile(absFrom(cwd, cfgFile))
	} else {
		v.SetConfigName(DefaultConfigName)
		v.SetConfigType("yaml")
		v.AddConfigPath(cwd)
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".config", DefaultConfigName))
		} else {
			logger.Debug("No home directory, skipping user config lookup", slog.Any("error", err))
		}
	}

	res := &Resolution{}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) || cfgFile != "" {
			return nil, fmt.Errorf("%w: error reading config file '%s': %w", converter.ErrResolution, cfgFile, err)
		}
		logger.Debug("No configuration file found, using defaults/env/flags.")
	} else {
		res.ConfigFile = v.ConfigFileUsed()
		logger.Debug("Using configuration file", slog.String("path", res.ConfigFile))
	}

	// --- Bind Environment Variables ---
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	// --- Bind Flags (Highest Priority) ---
	flags := set.FlagSet()
	for _, key := range boundFlags {
		if err := v.BindPFlag(key, flags.Lookup(key)); err != nil {
			return nil, fmt.Errorf("%w: error binding flag '--%s': %w", converter.ErrResolution, key, err)
		}
	}

	var s settings
	if err := v.Unmarshal(&s); err != nil {
		return nil, fmt.Errorf("%w: error unmarshalling configuration: %w", converter.ErrResolution, err)
	}

	if err := derive(res, &s, set.Input(), cwd, logger); err != nil {
		return nil, err
	}

	logger.Debug("Options resolved",
		slog.String("input", res.InputFile),
		slog.String("output", res.OutputFile),
		slog.String("logFile", res.LogFile),
		slog.String("unitConversion", string(res.Options.UnitConversion)),
		slog.Any("textureSearchLocations", res.Options.TextureResolution.Locations),
	)
	return res, nil
}

// setDefaults establishes the default values for configuration options in Viper.
func setDefaults(v *viper.Viper) {
	// --- Paths ---
	v.SetDefault(options.OptOut, "")
	v.SetDefault(options.OptFbmDir, "")
	v.SetDefault(options.OptLogFile, "")

	// --- Behavior Toggles ---
	v.SetDefault(options.OptVerbose, converter.DefaultVerbose)
	v.SetDefault(options.OptNoFlipV, converter.DefaultNoFlipV)
	v.SetDefault(options.OptNoTextureResolution, converter.DefaultTextureResolutionDisabled)
	v.SetDefault(options.OptPreferLocalTimeSpan, converter.DefaultPreferLocalTimeSpan)
	v.SetDefault(options.OptTextureSearchLocations, []string{})

	// --- Animation & Geometry ---
	v.SetDefault(options.OptAnimationBakeRate, converter.DefaultAnimationBakeRate)
	v.SetDefault(options.OptSuspectedAnimationDurationLimit, converter.DefaultSuspectedAnimationDurationLimit)
	v.SetDefault(options.OptUnitConversion, string(converter.DefaultUnitConversion))

	// --- Backend ---
	v.SetDefault(KeyBackendCommand, DefaultBackendCommand)
}

// derive applies the resolution rules to the merged settings.
func derive(res *Resolution, s *settings, input, cwd string, logger *slog.Logger) error {
	opts := s.Options
	opts.PathMode = converter.PathModeCopy
	opts.UseDataURIForBuffers = false
	opts.UnitConversion = converter.DefaultUnitConversion
	opts.TextureResolution = converter.TextureResolution{Disabled: s.NoTextureResolution}

	if opts.AnimationBakeRate <= 0 {
		return fmt.Errorf("%w: animation bake rate must be positive, got %v", converter.ErrResolution, opts.AnimationBakeRate)
	}
	if len(s.Backend.Command) == 0 || s.Backend.Command[0] == "" {
		return fmt.Errorf("%w: %s must name an executable", converter.ErrResolution, KeyBackendCommand)
	}
	res.BackendCommand = s.Backend.Command

	// Input is copied verbatim; existence is the converter's concern.
	res.InputFile = input

	// Output path, defaulted next to cwd with eager directory creation.
	if s.Out != "" {
		res.OutputFile = absFrom(cwd, s.Out)
	} else {
		out, err := DefaultOutputPath(cwd, input)
		if err != nil {
			return err
		}
		res.OutputFile = out
		logger.Debug("Output path defaulted", slog.String("path", out))
	}
	opts.Out = res.OutputFile

	// Unit conversion: unknown values warn and keep the default.
	if s.UnitConversion != "" {
		if mode, ok := converter.ParseUnitConversion(s.UnitConversion); ok {
			opts.UnitConversion = mode
		} else {
			res.Warnings = append(res.Warnings, fmt.Sprintf("Unknown unit conversion option: %s", s.UnitConversion))
		}
	}

	// Texture search locations, relative to the input's directory, order preserved.
	opts.TextureResolution.Locations = ResolveSearchLocations(cwd, input, s.TextureSearchLocations)

	// Log file; its directory is created when the log is flushed.
	if s.LogFile != "" {
		res.LogFile = absFrom(cwd, s.LogFile)
	}

	res.Options = opts
	return nil
}

// DefaultOutputPath returns <cwd>/<stem>_glTF/<stem>.gltf for input and creates
// its directory. Failures wrap both ErrResolution and ErrMkdirFailed.
func DefaultOutputPath(cwd, input string) (string, error) {
	stem := converter.Stem(input)
	dir := filepath.Join(cwd, stem+converter.OutputDirSuffix)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("%w: %w: '%s': %w", converter.ErrResolution, converter.ErrMkdirFailed, dir, err)
	}
	return filepath.Join(dir, stem+converter.OutputExtension), nil
}

// ResolveSearchLocations makes every location absolute. Absolute entries are kept
// verbatim; relative ones are joined onto the input file's parent directory, itself
// made absolute against cwd. The result is nil when locations is empty.
func ResolveSearchLocations(cwd, input string, locations []string) []string {
	if len(locations) == 0 {
		return nil
	}
	base := absFrom(cwd, filepath.Dir(input))
	out := make([]string, len(locations))
	for i, loc := range locations {
		if filepath.IsAbs(loc) {
			out[i] = loc
			continue
		}
		out[i] = filepath.Join(base, loc)
	}
	return out
}

func absFrom(cwd, p string) string {
	if filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(cwd, p)
}

// --- END OF FINAL REVISED FILE internal/cli/config/config.go ---
