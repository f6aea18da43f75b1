// --- START OF NEW FILE internal/cli/args/args_windows_test.go ---
//go:build windows

package args

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize_WideCommandLine(t *testing.T) {
	got, err := Normalizer{}.Normalize([]string{"ignored"})

	require.NoError(t, err)
	require.NotEmpty(t, got)
	assert.Equal(t, os.Args[1:], got[1:], "tokens match the runtime's own split of the wide command line")
}

// --- END OF NEW FILE internal/cli/args/args_windows_test.go ---
