// Package voxbuild defines the contract with the external voxel navmesh
// builder. The voxelization, contour extraction and polygon meshing
// pipeline itself lives outside this module; implementations adapt a
// concrete engine to the Builder interface.
package voxbuild

import "context"

// Params is the caller-facing build parameter set, immutable for one
// build. All distances are world units; implementations convert to voxel
// units as their engine requires. Cs and Ch must be > 0.
type Params struct {
	// Cs is the xz-plane cell size, Ch the y-axis cell size.
	Cs float64 `yaml:"cellSize"`
	Ch float64 `yaml:"cellHeight"`

	// WalkableSlopeAngle is the maximum walkable slope in degrees.
	WalkableSlopeAngle float64 `yaml:"walkableSlopeAngle"`
	WalkableHeight     float64 `yaml:"walkableHeight"`
	WalkableClimb      float64 `yaml:"walkableClimb"`
	WalkableRadius     float64 `yaml:"walkableRadius"`

	MaxEdgeLen             float64 `yaml:"maxEdgeLen"`
	MaxSimplificationError float64 `yaml:"maxSimplificationError"`
	MinRegionArea          float64 `yaml:"minRegionArea"`
	MergeRegionArea        float64 `yaml:"mergeRegionArea"`
	MaxVertsPerPoly        int     `yaml:"maxVertsPerPoly"`
	DetailSampleDist       float64 `yaml:"detailSampleDist"`
	DetailSampleMaxError   float64 `yaml:"detailSampleMaxError"`
}

// Handle is an engine-owned build artifact retained for diagnostics.
type Handle interface {
	Release()
}

// NavMesh is a built navigation mesh still owned by the engine.
type NavMesh interface {
	// Serialize renders the mesh to its opaque binary form. The returned
	// bytes are owned by the caller.
	Serialize() ([]byte, error)
	// WalkablePolys returns the walkable polygon geometry as an indexed
	// triangle mesh for debug visualization.
	WalkablePolys() (positions []float32, indices []uint32)
	Release()
}

// Intermediates holds whichever build-stage artifacts survived the run.
// A nil handle means that stage never produced output, which is what the
// failure classification keys on.
type Intermediates struct {
	Heightfield        Handle
	CompactHeightfield Handle
	ContourSet         Handle
	PolyMesh           Handle
}

// Release frees every retained artifact and clears the handles.
func (in *Intermediates) Release() {
	for _, h := range []*Handle{&in.Heightfield, &in.CompactHeightfield, &in.ContourSet, &in.PolyMesh} {
		if *h != nil {
			(*h).Release()
			*h = nil
		}
	}
}

// Input is one build request. BMin/BMax override the bounds the engine
// would otherwise derive from the vertices, so padded or auto-scaled
// bounds are honored.
type Input struct {
	Positions []float32
	Indices   []uint32
	Params    Params
	BMin      [3]float32
	BMax      [3]float32
	// KeepIntermediates asks the engine to retain per-stage artifacts and
	// log lines for failure diagnosis regardless of outcome.
	KeepIntermediates bool
}

// Output is the engine's verdict on one build.
type Output struct {
	OK            bool
	NavMesh       NavMesh // nil unless OK
	Intermediates Intermediates
	Log           []string // engine log lines, oldest first
}

// LastLog returns the engine's most recent log line, or "".
func (o *Output) LastLog() string {
	if len(o.Log) == 0 {
		return ""
	}
	return o.Log[len(o.Log)-1]
}

// Builder runs the external voxelization/contour/polygon pipeline.
// Implementations need not support concurrent Build calls.
type Builder interface {
	// Init prepares the engine runtime. It is invoked before the first
	// Build; repeat calls must be cheap no-ops.
	Init(ctx context.Context) error
	// Build runs one bake. A failed bake is reported through Output.OK,
	// not the error; the error is reserved for faults in the engine
	// invocation itself.
	Build(ctx context.Context, in *Input) (*Output, error)
}
