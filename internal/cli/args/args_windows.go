// --- START OF NEW FILE internal/cli/args/args_windows.go ---
//go:build windows

package args

import (
	"fmt"

	"golang.org/x/sys/windows"
)

// platformArgs rebuilds the argument vector from GetCommandLineW, since the
// ANSI argv handed to the process depends on the active console code page.
// Unpaired surrogates decode to U+FFFD.
func platformArgs(_ []string) ([]string, error) {
	p := windows.GetCommandLine()
	if p == nil {
		return nil, fmt.Errorf("%w: GetCommandLineW returned no command line", ErrNormalization)
	}

	tokens, err := windows.DecomposeCommandLine(windows.UTF16PtrToString(p))
	if err != nil {
		return nil, fmt.Errorf("%w: cannot split command line: %w", ErrNormalization, err)
	}
	return tokens, nil
}

// --- END OF NEW FILE internal/cli/args/args_windows.go ---
