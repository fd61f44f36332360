package geometry

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// quad returns a flat 10x10 quad at y=0 whose two triangles face world up.
func quad() ([]float32, []uint32) {
	positions := []float32{
		0, 0, 0,
		10, 0, 0,
		10, 0, 10,
		0, 0, 10,
	}
	indices := []uint32{0, 2, 1, 0, 3, 2}
	return positions, indices
}

func TestValidateBounds(t *testing.T) {
	positions, _ := quad()
	bb, err := Validate(positions)
	require.NoError(t, err)
	assert.Equal(t, float32(0), bb.Min.X())
	assert.Equal(t, float32(0), bb.Min.Y())
	assert.Equal(t, float32(0), bb.Min.Z())
	assert.Equal(t, float32(10), bb.Max.X())
	assert.Equal(t, float32(0), bb.Max.Y())
	assert.Equal(t, float32(10), bb.Max.Z())
}

func TestValidateCountsNaNAndInfSeparately(t *testing.T) {
	nan := float32(math.NaN())
	inf := float32(math.Inf(1))
	positions := []float32{
		0, nan, 0,
		inf, 0, nan,
		1, 2, float32(math.Inf(-1)),
	}
	before := append([]float32(nil), positions...)

	_, err := Validate(positions)
	var corrupted *CorruptedError
	require.True(t, errors.As(err, &corrupted))
	assert.Equal(t, 2, corrupted.NaNCount)
	assert.Equal(t, 2, corrupted.InfCount)

	// Rejected, never repaired.
	for i := range positions {
		assert.Equal(t, math.IsNaN(float64(before[i])), math.IsNaN(float64(positions[i])))
		if !math.IsNaN(float64(before[i])) {
			assert.Equal(t, before[i], positions[i])
		}
	}
}

func TestValidateEmpty(t *testing.T) {
	bb, err := Validate(nil)
	require.NoError(t, err)
	assert.Equal(t, BBox{}, bb)
}

func TestValidateIndicesRejectsOutOfRange(t *testing.T) {
	_, indices := quad()
	require.NoError(t, ValidateIndices(indices, 4))

	bad := append([]uint32(nil), indices...)
	bad[4] = 4 // one past the last vertex

	err := ValidateIndices(bad, 4)
	var badIndex *IndexError
	require.True(t, errors.As(err, &badIndex))
	assert.Equal(t, 4, badIndex.At)
	assert.Equal(t, uint32(4), badIndex.Value)
	assert.Equal(t, 4, badIndex.VertCount)
}

func TestAvgUpDotFlatQuad(t *testing.T) {
	positions, indices := quad()
	assert.InDelta(t, 1.0, AvgUpDot(positions, indices), 1e-5)
}

func TestAvgUpDotReversedQuad(t *testing.T) {
	positions, indices := quad()
	assert.InDelta(t, -1.0, AvgUpDot(positions, FlipWinding(indices)), 1e-5)
}

func TestAvgUpDotNoTriangles(t *testing.T) {
	positions, _ := quad()
	assert.Equal(t, 0.0, AvgUpDot(positions, nil))
}

func TestAvgUpDotSamplesPrefixOnly(t *testing.T) {
	positions, indices := quad()
	up := indices[:3]
	down := FlipWinding(up)

	// 50 up-facing triangles followed by 25 down-facing ones; only the
	// prefix is sampled.
	var mixed []uint32
	for i := 0; i < 50; i++ {
		mixed = append(mixed, up...)
	}
	for i := 0; i < 25; i++ {
		mixed = append(mixed, down...)
	}
	assert.InDelta(t, 1.0, AvgUpDot(positions, mixed), 1e-5)
}

func TestAvgUpDotDegenerateTriangleCountsAsZero(t *testing.T) {
	positions, indices := quad()
	// One up triangle plus one zero-area triangle averages to 0.5.
	degenerate := []uint32{indices[0], indices[1], indices[2], 0, 0, 0}
	assert.InDelta(t, 0.5, AvgUpDot(positions, degenerate), 1e-5)
}

func TestFlipWinding(t *testing.T) {
	in := []uint32{0, 1, 2, 3, 4, 5, 6, 7, 8}
	orig := append([]uint32(nil), in...)

	out := FlipWinding(in)
	require.Len(t, out, len(in))
	for i := 0; i*3 < len(in); i++ {
		assert.Equal(t, orig[3*i], out[3*i])
		assert.Equal(t, orig[3*i+2], out[3*i+1])
		assert.Equal(t, orig[3*i+1], out[3*i+2])
	}
	assert.Equal(t, orig, in, "input buffer must stay untouched")
}

func TestSteepFraction(t *testing.T) {
	positions, indices := quad()
	assert.Equal(t, 0.0, SteepFraction(positions, indices, 45))

	// A vertical wall is steeper than any walkable slope.
	wall := []float32{
		0, 0, 0,
		10, 0, 0,
		10, 10, 0,
		0, 10, 0,
	}
	wallIdx := []uint32{0, 2, 1, 0, 3, 2}
	assert.Equal(t, 1.0, SteepFraction(wall, wallIdx, 45))
}
