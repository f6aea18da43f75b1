// --- START OF FINAL REVISED FILE pkg/converter/constants.go ---
package converter

// Constants defining default values for the conversion options.
// These are used when setting up Viper defaults in the configuration loading process.
const (
	// DefaultAnimationBakeRate is the default animation bake rate, in frames per second.
	DefaultAnimationBakeRate = 30.0
	// DefaultSuspectedAnimationDurationLimit is the animation duration (seconds) above which
	// the converter warns that the animation length looks wrong. 0 disables the check.
	DefaultSuspectedAnimationDurationLimit = 0.0
	// DefaultUnitConversion is the default unit conversion mode.
	DefaultUnitConversion = UnitConversionGeometryLevel
	// DefaultPreferLocalTimeSpan is the default for preferring local time spans recorded in the input file.
	DefaultPreferLocalTimeSpan = true
	// DefaultNoFlipV is the default state of V texture coordinate flipping suppression.
	DefaultNoFlipV = false
	// DefaultTextureResolutionDisabled is the default state of texture resolution.
	DefaultTextureResolutionDisabled = false
	// DefaultVerbose is the default state for verbose logging.
	DefaultVerbose = false
	// DefaultPathMode is the path mode used by the command line tool.
	DefaultPathMode = PathModeCopy
)

// Constants describing output naming.
const (
	// OutputDirSuffix is appended to the input base name to form the default output directory.
	OutputDirSuffix = "_glTF"
	// OutputExtension is the extension of the default output document.
	OutputExtension = ".gltf"
	// BufferExtension is the extension of externalized buffer files.
	BufferExtension = ".bin"
	// DocumentIndent is the indentation width used when serializing the output document and the JSON log.
	DocumentIndent = 2
)

// --- END OF FINAL REVISED FILE pkg/converter/constants.go ---
