// --- START OF FINAL REVISED FILE internal/testutil/mocks_test.go ---
package testutil_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/infosia/FBX-glTF-conv/internal/testutil"
	"github.com/infosia/FBX-glTF-conv/pkg/converter"
)

// Mocks generated using testify/mock encapsulate minimal logic; their usage is
// verified by the tests of the components that consume them. Only the helpers
// with behavior of their own are tested here.

func TestWriteYAMLFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "cfg.yaml")

	testutil.WriteYAMLFile(t, path, map[string]any{"verbose": true, "backend": map[string]any{"command": []string{"engine"}}})

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	var got map[string]any
	require.NoError(t, yaml.Unmarshal(data, &got))
	assert.Equal(t, true, got["verbose"])
	assert.Equal(t, map[string]any{"command": []any{"engine"}}, got["backend"])
}

func TestLogRecorder(t *testing.T) {
	var rec testutil.LogRecorder
	rec.Log(converter.LevelInfo, converter.Text("one"))
	rec.Log(converter.LevelFatal, converter.Structured(map[string]int{"n": 2}))

	entries := rec.Entries()
	require.Len(t, entries, 2)
	assert.Equal(t, converter.LevelFatal, entries[1].Level)
	assert.Equal(t, []string{"one", "{\n  \"n\": 2\n}"}, rec.Texts())
}

// --- END OF FINAL REVISED FILE internal/testutil/mocks_test.go ---
