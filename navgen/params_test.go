package navgen

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadParamsAppliesPresetOverDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "params.yaml")
	require.NoError(t, os.WriteFile(path, []byte("cellSize: 0.15\nwalkableHeight: 1.8\n"), 0o644))

	p, err := LoadParams(path)
	require.NoError(t, err)
	assert.Equal(t, 0.15, p.Cs)
	assert.Equal(t, 1.8, p.WalkableHeight)
	// Untouched fields keep their defaults.
	assert.Equal(t, 0.2, p.Ch)
	assert.Equal(t, 45.0, p.WalkableSlopeAngle)
	assert.Equal(t, 6, p.MaxVertsPerPoly)
}

func TestLoadParamsRejectsMalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "params.yaml")
	require.NoError(t, os.WriteFile(path, []byte("cellSize: [oops\n"), 0o644))

	_, err := LoadParams(path)
	assert.Error(t, err)
}

func TestLoadParamsMissingFile(t *testing.T) {
	_, err := LoadParams(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}
