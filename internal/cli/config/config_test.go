// --- START OF FINAL REVISED FILE internal/cli/config/config_test.go ---
package config

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/infosia/FBX-glTF-conv/internal/cli/options"
	"github.com/infosia/FBX-glTF-conv/internal/testutil"
	"github.com/infosia/FBX-glTF-conv/pkg/converter"
)

var discardLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

// isolate keeps the user's home config out of the test.
func isolate(t *testing.T) string {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	return t.TempDir()
}

func mustParse(t *testing.T, tokens ...string) *options.ParsedOptionSet {
	t.Helper()
	set, err := options.Parse(append([]string{"fbx-gltf-conv"}, tokens...), options.DefaultSchema())
	require.NoError(t, err)
	return set
}

func TestResolve_Defaults(t *testing.T) {
	cwd := isolate(t)

	res, err := Resolve(mustParse(t, "assets/model.fbx"), cwd, discardLogger)
	require.NoError(t, err)

	wantOut := filepath.Join(cwd, "model_glTF", "model.gltf")
	want := &Resolution{
		Options: converter.Options{
			Out:                             wantOut,
			PreferLocalTimeSpan:             true,
			AnimationBakeRate:               30,
			SuspectedAnimationDurationLimit: 0,
			UnitConversion:                  converter.UnitConversionGeometryLevel,
			PathMode:                        converter.PathModeCopy,
		},
		InputFile:      "assets/model.fbx",
		OutputFile:     wantOut,
		BackendCommand: DefaultBackendCommand,
	}
	if diff := cmp.Diff(want, res); diff != "" {
		t.Errorf("Resolve() mismatch (-want +got):\n%s", diff)
	}

	info, err := os.Stat(filepath.Dir(wantOut))
	require.NoError(t, err, "default output directory must be created")
	assert.True(t, info.IsDir())
}

func TestDefaultOutputPath_Stems(t *testing.T) {
	testCases := []struct {
		input   string
		wantDir string
		wantOut string
	}{
		{input: "model.fbx", wantDir: "model_glTF", wantOut: "model.gltf"},
		{input: "dir/scene.v2.fbx", wantDir: "scene.v2_glTF", wantOut: "scene.v2.gltf"},
		{input: "noext", wantDir: "noext_glTF", wantOut: "noext.gltf"},
		{input: ".fbx", wantDir: ".fbx_glTF", wantOut: ".fbx.gltf"},
	}
	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			cwd := t.TempDir()

			out, err := DefaultOutputPath(cwd, tc.input)

			require.NoError(t, err)
			assert.Equal(t, filepath.Join(cwd, tc.wantDir, tc.wantOut), out)
			assert.DirExists(t, filepath.Join(cwd, tc.wantDir))
		})
	}
}

func TestResolve_ExplicitPaths(t *testing.T) {
	cwd := isolate(t)

	res, err := Resolve(mustParse(t, "model.fbx", "--out", "build/scene.gltf", "--log-file", "logs/run.json", "--fbm-dir", "/tmp/fbm"), cwd, discardLogger)
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(cwd, "build", "scene.gltf"), res.OutputFile)
	assert.Equal(t, res.OutputFile, res.Options.Out)
	assert.Equal(t, filepath.Join(cwd, "logs", "run.json"), res.LogFile)
	assert.Equal(t, "/tmp/fbm", res.Options.FbmDir)

	_, err = os.Stat(filepath.Join(cwd, "build"))
	assert.True(t, os.IsNotExist(err), "explicit output directory is created at persist time")
	_, err = os.Stat(filepath.Join(cwd, "logs"))
	assert.True(t, os.IsNotExist(err), "log directory is created lazily at flush time")
	_, err = os.Stat(filepath.Join(cwd, "model_glTF"))
	assert.True(t, os.IsNotExist(err))
}

func TestResolve_Toggles(t *testing.T) {
	cwd := isolate(t)

	res, err := Resolve(mustParse(t, "m.fbx", "--verbose", "--no-flip-v", "--no-texture-resolution", "--texture-search-locations", filepath.Join(cwd, "tex"),
		"--prefer-local-time-span", "false", "--animation-bake-rate", "24", "--suspected-animation-duration-limit", "600"), cwd, discardLogger)
	require.NoError(t, err)

	assert.True(t, res.Options.Verbose)
	assert.True(t, res.Options.NoFlipV)
	assert.True(t, res.Options.TextureResolution.Disabled)
	assert.Equal(t, []string{filepath.Join(cwd, "tex")}, res.Options.TextureResolution.Locations, "locations are kept when resolution is disabled")
	assert.False(t, res.Options.PreferLocalTimeSpan)
	assert.Equal(t, 24.0, res.Options.AnimationBakeRate)
	assert.Equal(t, 600.0, res.Options.SuspectedAnimationDurationLimit)
	assert.False(t, res.Options.UseDataURIForBuffers)
}

func TestResolve_UnitConversion(t *testing.T) {
	testCases := []struct {
		value       string
		want        converter.UnitConversion
		wantWarning bool
	}{
		{"geometry-level", converter.UnitConversionGeometryLevel, false},
		{"hierarchy-level", converter.UnitConversionHierarchyLevel, false},
		{"disabled", converter.UnitConversionDisabled, false},
		{"Hierarchy-Level", converter.UnitConversionGeometryLevel, true},
		{"meters", converter.UnitConversionGeometryLevel, true},
	}

	for _, tc := range testCases {
		t.Run(tc.value, func(t *testing.T) {
			cwd := isolate(t)
			res, err := Resolve(mustParse(t, "m.fbx", "--unit-conversion", tc.value), cwd, discardLogger)
			require.NoError(t, err, "unknown unit conversion must never fail resolution")

			assert.Equal(t, tc.want, res.Options.UnitConversion)
			if tc.wantWarning {
				assert.Equal(t, []string{"Unknown unit conversion option: " + tc.value}, res.Warnings)
			} else {
				assert.Empty(t, res.Warnings)
			}
		})
	}
}

func TestResolve_TextureSearchLocations(t *testing.T) {
	cwd := isolate(t)
	abs := filepath.Join(t.TempDir(), "shared")

	res, err := Resolve(mustParse(t, "assets/chars/hero.fbx",
		"--texture-search-locations", "textures,../common",
		"--texture-search-locations", abs,
		"--texture-search-locations", "."), cwd, discardLogger)
	require.NoError(t, err)

	base := filepath.Join(cwd, "assets", "chars")
	want := []string{
		filepath.Join(base, "textures"),
		filepath.Join(cwd, "assets", "common"),
		abs,
		base,
	}
	assert.Equal(t, want, res.Options.TextureResolution.Locations)
	for _, loc := range res.Options.TextureResolution.Locations {
		assert.True(t, filepath.IsAbs(loc), loc)
	}
}

func TestResolveSearchLocations_Empty(t *testing.T) {
	assert.Nil(t, ResolveSearchLocations("/work", "a.fbx", nil))
}

func TestResolve_ConfigFileLayering(t *testing.T) {
	cwd := isolate(t)
	cfgPath := filepath.Join(cwd, "conf", "custom.yaml")
	testutil.WriteYAMLFile(t, cfgPath, map[string]any{
		"animation-bake-rate": 24,
		"unit-conversion":     "hierarchy-level",
		"verbose":             true,
		"backend":             map[string]any{"command": []string{"engine", "--stdio"}},
	})

	t.Run("Config file overrides defaults", func(t *testing.T) {
		res, err := Resolve(mustParse(t, "m.fbx", "--config", "conf/custom.yaml"), cwd, discardLogger)
		require.NoError(t, err)
		assert.Equal(t, cfgPath, res.ConfigFile)
		assert.Equal(t, 24.0, res.Options.AnimationBakeRate)
		assert.Equal(t, converter.UnitConversionHierarchyLevel, res.Options.UnitConversion)
		assert.True(t, res.Options.Verbose)
		assert.Equal(t, []string{"engine", "--stdio"}, res.BackendCommand)
	})

	t.Run("Environment overrides config file", func(t *testing.T) {
		t.Setenv("FBXGLTFCONV_ANIMATION_BAKE_RATE", "12")
		res, err := Resolve(mustParse(t, "m.fbx", "--config", cfgPath), cwd, discardLogger)
		require.NoError(t, err)
		assert.Equal(t, 12.0, res.Options.AnimationBakeRate)
	})

	t.Run("Flags override environment", func(t *testing.T) {
		t.Setenv("FBXGLTFCONV_ANIMATION_BAKE_RATE", "12")
		res, err := Resolve(mustParse(t, "m.fbx", "--config", cfgPath, "--animation-bake-rate", "60", "--unit-conversion", "disabled"), cwd, discardLogger)
		require.NoError(t, err)
		assert.Equal(t, 60.0, res.Options.AnimationBakeRate)
		assert.Equal(t, converter.UnitConversionDisabled, res.Options.UnitConversion)
	})
}

func TestResolve_ConfigFileDiscoveredInCwd(t *testing.T) {
	cwd := isolate(t)
	testutil.WriteYAMLFile(t, filepath.Join(cwd, DefaultConfigName+".yaml"), map[string]any{"no-flip-v": true})

	res, err := Resolve(mustParse(t, "m.fbx"), cwd, discardLogger)
	require.NoError(t, err)
	assert.True(t, res.Options.NoFlipV)
	assert.Equal(t, filepath.Join(cwd, DefaultConfigName+".yaml"), res.ConfigFile)
}

func TestResolve_EnvBackendCommand(t *testing.T) {
	cwd := isolate(t)
	t.Setenv("FBXGLTFCONV_BACKEND_COMMAND", "my-engine")

	res, err := Resolve(mustParse(t, "m.fbx"), cwd, discardLogger)
	require.NoError(t, err)
	assert.Equal(t, []string{"my-engine"}, res.BackendCommand)
}

func TestResolve_Errors(t *testing.T) {
	testCases := []struct {
		name    string
		setup   func(t *testing.T, cwd string)
		tokens  []string
		wantErr error
	}{
		{
			name:    "Explicit config file missing",
			tokens:  []string{"m.fbx", "--config", "missing.yaml"},
			wantErr: converter.ErrResolution,
		},
		{
			name: "Malformed config file",
			setup: func(t *testing.T, cwd string) {
				testutil.CreateDummyFile(t, filepath.Join(cwd, "bad.yaml"), "verbose: [unclosed")
			},
			tokens:  []string{"m.fbx", "--config", "bad.yaml"},
			wantErr: converter.ErrResolution,
		},
		{
			name: "Default output directory blocked by a file",
			setup: func(t *testing.T, cwd string) {
				testutil.CreateDummyFile(t, filepath.Join(cwd, "m_glTF"), "not a directory")
			},
			tokens:  []string{"m.fbx"},
			wantErr: converter.ErrMkdirFailed,
		},
		{
			name:    "Non-positive bake rate",
			tokens:  []string{"m.fbx", "--animation-bake-rate", "0"},
			wantErr: converter.ErrResolution,
		},
		{
			name: "Empty backend command",
			setup: func(t *testing.T, cwd string) {
				testutil.WriteYAMLFile(t, filepath.Join(cwd, "cfg.yaml"), map[string]any{"backend": map[string]any{"command": []string{}}})
			},
			tokens:  []string{"m.fbx", "--config", "cfg.yaml"},
			wantErr: converter.ErrResolution,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cwd := isolate(t)
			if tc.setup != nil {
				tc.setup(t, cwd)
			}
			res, err := Resolve(mustParse(t, tc.tokens...), cwd, discardLogger)
			require.Error(t, err)
			assert.Nil(t, res)
			assert.ErrorIs(t, err, tc.wantErr)
			assert.ErrorIs(t, err, converter.ErrResolution)
		})
	}
}

// --- END OF FINAL REVISED FILE internal/cli/config/config_test.go ---
