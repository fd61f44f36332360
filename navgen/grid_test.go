package navgen

import (
	"errors"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/splatwalk/navbake/geometry"
)

func box(minX, minY, minZ, maxX, maxY, maxZ float32) geometry.BBox {
	return geometry.BBox{
		Min: mgl32.Vec3{minX, minY, minZ},
		Max: mgl32.Vec3{maxX, maxY, maxZ},
	}
}

func TestPlanGridHeadroomPadding(t *testing.T) {
	params := DefaultParams()
	params.WalkableHeight = 2

	// height 1.0 < 2.5 required.
	plan, err := PlanGrid(box(0, 0, 0, 100, 1, 100), params)
	require.NoError(t, err)
	assert.Equal(t, 1.5, plan.HeadroomPadding)
	assert.Equal(t, 2.5, plan.PaddedMaxY)

	// Enough headroom already; never padded downward.
	plan, err = PlanGrid(box(0, 0, 0, 100, 5, 100), params)
	require.NoError(t, err)
	assert.Equal(t, 0.0, plan.HeadroomPadding)
	assert.Equal(t, 5.0, plan.PaddedMaxY)
}

func TestPlanGridCellSizeAutoScale(t *testing.T) {
	params := DefaultParams()
	params.Cs = 0.3
	params.WalkableHeight = 2

	plan, err := PlanGrid(box(0, 0, 0, 10, 0, 10), params)
	require.NoError(t, err)
	assert.True(t, plan.IsOverride)
	assert.Equal(t, 0.3, plan.OriginalCS)
	assert.Equal(t, 0.2, plan.ActiveCS)
	assert.Equal(t, 50, plan.Width)
	assert.Equal(t, 50, plan.Depth)
}

func TestPlanGridNoOverrideOnLargeScenes(t *testing.T) {
	params := DefaultParams()
	params.Cs = 0.3

	// 100 / 0.3 is well above the minimum resolution.
	plan, err := PlanGrid(box(0, 0, 0, 100, 1, 100), params)
	require.NoError(t, err)
	assert.False(t, plan.IsOverride)
	assert.Equal(t, 0.3, plan.ActiveCS)
	assert.GreaterOrEqual(t, max(plan.Width, plan.Depth), minResolution)
}

func TestPlanGridRoundsOverrideToMillimeters(t *testing.T) {
	params := DefaultParams()
	params.Cs = 1

	// 10.24 / 50 = 0.2048 rounds to 0.205.
	plan, err := PlanGrid(box(0, 0, 0, 10.24, 0, 1), params)
	require.NoError(t, err)
	assert.True(t, plan.IsOverride)
	assert.Equal(t, 0.205, plan.ActiveCS)
	assert.LessOrEqual(t, minResolution-1, max(plan.Width, plan.Depth))
}

func TestPlanGridHeight(t *testing.T) {
	params := DefaultParams()
	params.Ch = 0.2
	params.WalkableHeight = 2

	plan, err := PlanGrid(box(0, 0, 0, 100, 0, 100), params)
	require.NoError(t, err)
	// Padded extent 2.5 over ch 0.2.
	assert.Equal(t, 13, plan.Height)
}

func TestPlanGridTooDense(t *testing.T) {
	params := DefaultParams()
	params.Cs = 1
	params.WalkableHeight = 2

	_, err := PlanGrid(box(0, 0, 0, 4000, 1, 4000), params)
	var dense *DenseGridError
	require.True(t, errors.As(err, &dense))
	assert.Equal(t, 4000, dense.Width)
	assert.Equal(t, 4000, dense.Depth)
}

func TestPlanGridTooDenseHugeExtent(t *testing.T) {
	params := DefaultParams()
	params.Cs = 1
	params.WalkableHeight = 2

	// 2^32 cells per axis; the naive int cell product wraps to exactly 0.
	plan, err := PlanGrid(box(0, 0, 0, 1<<32, 1, 1<<32), params)
	var dense *DenseGridError
	require.True(t, errors.As(err, &dense), "got plan %+v", plan)
	assert.Positive(t, dense.Width)
	assert.Positive(t, dense.Depth)
}

func TestPlanGridDegenerate(t *testing.T) {
	params := DefaultParams()

	_, err := PlanGrid(box(0, 0, 0, 0, 0, 0), params)
	var degenerate *DegenerateGridError
	require.True(t, errors.As(err, &degenerate))

	_, err = PlanGrid(geometry.BBox{}, params)
	require.True(t, errors.As(err, &degenerate))
}
