package navgen

import (
	"fmt"
	"strings"

	"github.com/splatwalk/navbake/geometry"
)

// Report captures the numeric facts of one build attempt. It is produced
// whether or not the build succeeds and is owned by the caller after
// return.
type Report struct {
	OriginalCS float64
	ActiveCS   float64
	IsOverride bool

	HeadroomPadding float64

	GridWidth  int
	GridDepth  int
	GridHeight int

	// AvgUpDot is the mean face-normal dot with world up over the sampled
	// triangles, in [-1, 1]. WasFlipped records whether winding was
	// reversed before the build.
	AvgUpDot   float64
	WasFlipped bool

	// Build volume bounds. BMax[1] includes the headroom padding.
	BMin [3]float32
	BMax [3]float32
}

// NewReport assembles a report from the pre-build stages. The diagnostic
// CLI uses it to print the same text a build attempt would carry.
func NewReport(bb geometry.BBox, plan GridPlan, avgUpDot float64, flipped bool) Report {
	return Report{
		OriginalCS:      plan.OriginalCS,
		ActiveCS:        plan.ActiveCS,
		IsOverride:      plan.IsOverride,
		HeadroomPadding: plan.HeadroomPadding,
		GridWidth:       plan.Width,
		GridDepth:       plan.Depth,
		GridHeight:      plan.Height,
		AvgUpDot:        avgUpDot,
		WasFlipped:      flipped,
		BMin:            [3]float32{bb.Min.X(), bb.Min.Y(), bb.Min.Z()},
		BMax:            [3]float32{bb.Max.X(), float32(plan.PaddedMaxY), bb.Max.Z()},
	}
}

func (r Report) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "bounds: min(%.3f, %.3f, %.3f) max(%.3f, %.3f, %.3f)\n",
		r.BMin[0], r.BMin[1], r.BMin[2], r.BMax[0], r.BMax[1], r.BMax[2])
	fmt.Fprintf(&b, "grid: %d x %d x %d cells\n", r.GridWidth, r.GridDepth, r.GridHeight)
	fmt.Fprintf(&b, "cell size: %.3f (requested %.3f, override=%v)\n", r.ActiveCS, r.OriginalCS, r.IsOverride)
	fmt.Fprintf(&b, "headroom padding: %.3f\n", r.HeadroomPadding)
	fmt.Fprintf(&b, "avg up dot: %.3f, winding flipped: %v", r.AvgUpDot, r.WasFlipped)
	return b.String()
}
