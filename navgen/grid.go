package navgen

import (
	"math"

	"github.com/splatwalk/navbake/geometry"
	"github.com/splatwalk/navbake/voxbuild"
)

const (
	// minResolution is the smallest cell count the larger horizontal
	// dimension may resolve to before the cell size is tightened.
	minResolution = 50
	// maxGridCells caps gridW*gridD; anything denser is refused before
	// the builder is invoked.
	maxGridCells = 10_000_000
	// headroomSlack is required above the walkable height when sizing the
	// vertical extent of the build volume.
	headroomSlack = 0.5
)

// GridPlan is the resolved voxel-grid layout for one build.
type GridPlan struct {
	OriginalCS float64
	ActiveCS   float64
	IsOverride bool

	// HeadroomPadding is the extra vertical clearance added above the
	// geometry; PaddedMaxY = maxY + HeadroomPadding. Padding only ever
	// grows the volume upward.
	HeadroomPadding float64
	PaddedMaxY      float64

	// Cell counts along x, z and y.
	Width  int
	Depth  int
	Height int
}

// PlanGrid sizes the voxel grid for the given bounds and parameters.
//
// The vertical extent is padded so an agent of WalkableHeight always has
// headroom, and the cell size is tightened when the horizontal extent
// would resolve to fewer than minResolution cells, which on small scenes
// would voxelize the whole mesh into a handful of columns.
func PlanGrid(bb geometry.BBox, params voxbuild.Params) (GridPlan, error) {
	width := float64(bb.Max.X() - bb.Min.X())
	depth := float64(bb.Max.Z() - bb.Min.Z())
	height := float64(bb.Max.Y() - bb.Min.Y())

	plan := GridPlan{
		OriginalCS: params.Cs,
		ActiveCS:   params.Cs,
		PaddedMaxY: float64(bb.Max.Y()),
	}

	if required := params.WalkableHeight + headroomSlack; height < required {
		plan.HeadroomPadding = required - height
		plan.PaddedMaxY += plan.HeadroomPadding
	}

	maxDim := math.Max(width, depth)
	if maxDim/params.Cs < minResolution {
		plan.ActiveCS = math.Round(maxDim/minResolution*1000) / 1000
		plan.IsOverride = true
	}
	if plan.ActiveCS <= 0 {
		return GridPlan{}, &DegenerateGridError{}
	}

	cellsW := math.Ceil(width / plan.ActiveCS)
	cellsD := math.Ceil(depth / plan.ActiveCS)

	// The density check stays in floating point: the int product wraps on
	// huge extents and would wave the densest grids through.
	if cellsW*cellsD > maxGridCells {
		return GridPlan{}, &DenseGridError{Width: int(math.Min(cellsW, maxGridCells)), Depth: int(math.Min(cellsD, maxGridCells))}
	}

	plan.Width = int(cellsW)
	plan.Depth = int(cellsD)
	plan.Height = int(math.Ceil((plan.PaddedMaxY - float64(bb.Min.Y())) / params.Ch))

	if plan.Width == 0 || plan.Depth == 0 {
		return GridPlan{}, &DegenerateGridError{Width: plan.Width, Depth: plan.Depth}
	}
	return plan, nil
}
