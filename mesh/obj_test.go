package mesh

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const quadOBJ = `# flat quad
o Quad
v 0 0 0
v 10 0 0
v 10 0 10
v 0 0 10
f 1 2 3 4
`

func TestParseOBJFanTriangulatesQuads(t *testing.T) {
	g, err := ParseOBJ(strings.NewReader(quadOBJ))
	require.NoError(t, err)
	assert.Equal(t, 4, g.VertCount())
	assert.Equal(t, []uint32{0, 1, 2, 0, 2, 3}, g.Indices)
	assert.Equal(t, float32(10), g.Positions[3])
}

func TestParseOBJTakesPositionIndexOnly(t *testing.T) {
	src := `v 0 0 0
v 1 0 0
v 0 0 1
f 1/4/7 2/5/8 3/6/9
`
	g, err := ParseOBJ(strings.NewReader(src))
	require.NoError(t, err)
	assert.Equal(t, []uint32{0, 1, 2}, g.Indices)
}

func TestParseOBJNegativeIndices(t *testing.T) {
	src := `v 0 0 0
v 1 0 0
v 0 0 1
f -3 -2 -1
`
	g, err := ParseOBJ(strings.NewReader(src))
	require.NoError(t, err)
	assert.Equal(t, []uint32{0, 1, 2}, g.Indices)
}

func TestParseOBJDropsOutOfRangeFaces(t *testing.T) {
	src := `v 0 0 0
v 1 0 0
v 0 0 1
f 1 2 9
`
	g, err := ParseOBJ(strings.NewReader(src))
	require.NoError(t, err)
	assert.Empty(t, g.Indices)
}

func TestParseOBJRejectsMalformedVertex(t *testing.T) {
	src := "v 0 oops 0\n"

	_, err := ParseOBJ(strings.NewReader(src))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "line 1")
	assert.Contains(t, err.Error(), "bad coordinate")
}

func TestParseOBJRejectsShortVertex(t *testing.T) {
	_, err := ParseOBJ(strings.NewReader("v 1 2\n"))
	assert.Error(t, err)
}

func TestParseOBJRejectsMalformedFaceIndex(t *testing.T) {
	src := `v 0 0 0
v 1 0 0
v 0 0 1
f 1 two 3
`
	_, err := ParseOBJ(strings.NewReader(src))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bad face index")
}

func TestLoadOBJMissingFile(t *testing.T) {
	_, err := LoadOBJ("definitely-not-here.obj")
	assert.Error(t, err)
}
