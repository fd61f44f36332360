package navgen

import (
	"fmt"
	"strings"
)

// DenseGridError refuses a build whose horizontal grid would exceed
// maxGridCells. Retrying with a coarser cell size is the usual fix.
type DenseGridError struct {
	Width int
	Depth int
}

func (e *DenseGridError) Error() string {
	return fmt.Sprintf("grid too dense: %d x %d cells exceeds the %d cell limit; retry with a coarser cell size", e.Width, e.Depth, maxGridCells)
}

// DegenerateGridError refuses a build whose horizontal grid collapses to
// zero cells on either axis.
type DegenerateGridError struct {
	Width int
	Depth int
}

func (e *DegenerateGridError) Error() string {
	return fmt.Sprintf("degenerate grid: %d x %d cells; the geometry has no horizontal extent", e.Width, e.Depth)
}

// FailureStage classifies where a failed build stopped, judged by which
// intermediate artifacts the engine retained.
type FailureStage string

const (
	StageVoxelization   FailureStage = "voxelization"
	StageCompaction     FailureStage = "compaction"
	StageNoWalkableArea FailureStage = "no-walkable-area"
)

// BuildError is raised when the builder ran and reported failure. It
// always carries the engine's last log line and the full numeric report;
// classification augments the raw diagnostics, it never replaces them.
type BuildError struct {
	Stage      FailureStage
	BuilderLog string
	Advice     []string
	Report     Report
}

func (e *BuildError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "navmesh build failed at the %s stage\n", e.Stage)
	for _, a := range e.Advice {
		fmt.Fprintf(&b, "advice: %s\n", a)
	}
	if e.BuilderLog != "" {
		fmt.Fprintf(&b, "builder: %s\n", e.BuilderLog)
	}
	b.WriteString(e.Report.String())
	return b.String()
}

// InternalError wraps an unexpected fault during the builder invocation
// itself, still carrying whatever diagnostics were computed so far.
type InternalError struct {
	Cause  error
	Report Report
}

func (e *InternalError) Error() string {
	return fmt.Sprintf("internal build failure: %v\n%s", e.Cause, e.Report)
}

func (e *InternalError) Unwrap() error { return e.Cause }
