// --- START OF FINAL REVISED FILE pkg/converter/constants_test.go ---
package converter_test

import (
	"testing"

	"github.com/infosia/FBX-glTF-conv/pkg/converter"
	"github.com/stretchr/testify/assert"
)

// TestDefaultConfigurationConstants verifies default configuration constants.
func TestDefaultConfigurationConstants(t *testing.T) {
	assert.Equal(t, 30.0, converter.DefaultAnimationBakeRate)
	assert.Equal(t, 0.0, converter.DefaultSuspectedAnimationDurationLimit)
	assert.Equal(t, converter.UnitConversionGeometryLevel, converter.DefaultUnitConversion)
	assert.True(t, converter.DefaultPreferLocalTimeSpan)
	assert.False(t, converter.DefaultNoFlipV)
	assert.False(t, converter.DefaultTextureResolutionDisabled)
	assert.False(t, converter.DefaultVerbose)
	assert.Equal(t, converter.PathModeCopy, converter.DefaultPathMode)
}

// TestOutputNamingConstants verifies constants used to derive output file names.
func TestOutputNamingConstants(t *testing.T) {
	assert.Equal(t, "_glTF", converter.OutputDirSuffix)
	assert.Equal(t, ".gltf", converter.OutputExtension)
	assert.Equal(t, ".bin", converter.BufferExtension)
	assert.Equal(t, 2, converter.DocumentIndent)
}

// --- END OF FINAL REVISED FILE pkg/converter/constants_test.go ---
