// --- START OF FINAL REVISED FILE cmd/fbx-gltf-conv/main.go ---
package main

import "os"

// Note: Build-time variables 'version', 'commit', and 'date' are declared
// in 'root.go' within this package and populated via -ldflags.

// main is the entry point for the fbx-gltf-conv application.
// Execute returns the process exit code; nothing is deferred past it.
func main() {
	os.Exit(Execute())
}

// --- END OF FINAL REVISED FILE cmd/fbx-gltf-conv/main.go ---
