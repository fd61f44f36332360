package navgen

import "github.com/splatwalk/navbake/voxbuild"

// classifyFailure maps retained intermediate artifacts to the stage that
// stopped producing output, with one line of actionable advice.
func classifyFailure(inter *voxbuild.Intermediates) (FailureStage, string) {
	switch {
	case inter.Heightfield == nil:
		return StageVoxelization, "voxelization produced no heightfield; check the unit scale of the input (meters vs centimeters)"
	case inter.CompactHeightfield == nil:
		return StageCompaction, "heightfield compaction failed; the walkable height is likely too large for the available vertical space"
	case inter.ContourSet == nil:
		return StageNoWalkableArea, "no walkable area survived filtering; reduce the max slope or check for degenerate near-zero-area geometry"
	default:
		return StageNoWalkableArea, "contours were extracted but no polygon mesh was assembled; the walkable area may be too fragmented"
	}
}

// newBuildError assembles the terminal diagnostic for a failed build. When
// the mesh was classified inverted and the automatic winding correction
// still produced nothing walkable, that advice is prepended.
func newBuildError(out *voxbuild.Output, report Report) *BuildError {
	stage, advice := classifyFailure(&out.Intermediates)
	var lines []string
	if report.WasFlipped {
		lines = append(lines, "mesh normals were inverted; winding was corrected automatically but still produced no walkable area, inspect the walkable slope threshold")
	}
	lines = append(lines, advice)
	return &BuildError{
		Stage:      stage,
		BuilderLog: out.LastLog(),
		Advice:     lines,
		Report:     report,
	}
}
