// Package navgen turns raw triangle geometry into a baked navigation mesh
// plus a diagnostic build report. The voxel builder itself is an external
// collaborator injected through voxbuild.Builder; this package owns the
// validation, grid planning, orientation correction and failure
// classification around it.
package navgen

import (
	"context"

	"go.uber.org/zap"

	"github.com/splatwalk/navbake/geometry"
	"github.com/splatwalk/navbake/voxbuild"
)

// InvertedUpDotThreshold is the orientation statistic below which a mesh
// is classified as upside down and gets its winding corrected.
const InvertedUpDotThreshold = -0.5

// Result of a successful build. The navmesh binary and the debug mesh are
// owned by the caller.
type Result struct {
	NavMeshData    []byte
	DebugPositions []float32
	DebugIndices   []uint32
	Report         Report
}

// Pipeline runs builds against one injected builder. All entities it
// creates live for a single Generate call; nothing persists between
// builds.
type Pipeline struct {
	builder voxbuild.Builder
	log     *zap.Logger
}

func NewPipeline(b voxbuild.Builder, log *zap.Logger) *Pipeline {
	if log == nil {
		log = zap.NewNop()
	}
	return &Pipeline{builder: b, log: log}
}

// Generate validates and corrects the input geometry, invokes the voxel
// builder and returns the serialized navmesh with its report. Failures
// come back as one of the typed errors in this package or in geometry;
// the builder is never invoked when a pre-build guard fails.
func (p *Pipeline) Generate(ctx context.Context, geom *geometry.NavGeometry, params voxbuild.Params) (*Result, error) {
	bb, err := geometry.Validate(geom.Positions)
	if err != nil {
		return nil, err
	}
	if err := geometry.ValidateIndices(geom.Indices, geom.VertCount()); err != nil {
		return nil, err
	}

	plan, err := PlanGrid(bb, params)
	if err != nil {
		return nil, err
	}

	avgUpDot := geometry.AvgUpDot(geom.Positions, geom.Indices)
	indices := geom.Indices
	flipped := false
	if avgUpDot < InvertedUpDotThreshold {
		indices = geometry.FlipWinding(indices)
		flipped = true
	}

	report := NewReport(bb, plan, avgUpDot, flipped)

	p.log.Info("building navmesh",
		zap.Int("verts", geom.VertCount()),
		zap.Int("tris", geom.TriCount()),
		zap.Int("gridWidth", plan.Width),
		zap.Int("gridDepth", plan.Depth),
		zap.Int("gridHeight", plan.Height),
		zap.Float64("cellSize", plan.ActiveCS),
		zap.Bool("cellSizeOverride", plan.IsOverride),
		zap.Float64("avgUpDot", avgUpDot),
		zap.Bool("windingFlipped", flipped),
	)

	buildParams := params
	buildParams.Cs = plan.ActiveCS

	out, err := p.builder.Build(ctx, &voxbuild.Input{
		Positions:         geom.Positions,
		Indices:           indices,
		Params:            buildParams,
		BMin:              report.BMin,
		BMax:              report.BMax,
		KeepIntermediates: true,
	})
	if err != nil {
		return nil, &InternalError{Cause: err, Report: report}
	}
	defer out.Intermediates.Release()

	if !out.OK {
		berr := newBuildError(out, report)
		p.log.Warn("navmesh build failed",
			zap.String("stage", string(berr.Stage)),
			zap.String("builderLog", berr.BuilderLog),
		)
		return nil, berr
	}
	defer out.NavMesh.Release()

	debugPositions, debugIndices := out.NavMesh.WalkablePolys()
	data, err := out.NavMesh.Serialize()
	if err != nil {
		return nil, &InternalError{Cause: err, Report: report}
	}

	p.log.Info("navmesh built",
		zap.Int("navMeshBytes", len(data)),
		zap.Int("debugVerts", len(debugPositions)/3),
		zap.Int("debugTris", len(debugIndices)/3),
	)

	return &Result{
		NavMeshData:    data,
		DebugPositions: debugPositions,
		DebugIndices:   debugIndices,
		Report:         report,
	}, nil
}
