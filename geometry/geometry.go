package geometry

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// NavGeometry is an indexed triangle soup in world space. Positions is a
// flat XYZ float array and Indices references position triples, three per
// triangle. Every index must be < len(Positions)/3.
type NavGeometry struct {
	Positions []float32
	Indices   []uint32
}

func (g *NavGeometry) VertCount() int { return len(g.Positions) / 3 }
func (g *NavGeometry) TriCount() int  { return len(g.Indices) / 3 }

// BBox is an axis-aligned bounding box in world units.
type BBox struct {
	Min mgl32.Vec3
	Max mgl32.Vec3
}

// CorruptedError reports non-finite coordinates found while scanning the
// input positions. NaNCount and InfCount are disjoint.
type CorruptedError struct {
	NaNCount int
	InfCount int
}

func (e *CorruptedError) Error() string {
	return fmt.Sprintf("geometry corrupted: %d NaN and %d infinite coordinates", e.NaNCount, e.InfCount)
}

// IndexError reports a triangle index referencing a vertex outside the
// position buffer.
type IndexError struct {
	At        int // offset into the index buffer
	Value     uint32
	VertCount int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("geometry corrupted: index %d at offset %d exceeds %d vertices", e.Value, e.At, e.VertCount)
}

// ValidateIndices checks every index against the vertex count. Like the
// coordinate scan, out-of-range input is rejected rather than clamped.
func ValidateIndices(indices []uint32, vertCount int) error {
	for i, v := range indices {
		if uint64(v) >= uint64(vertCount) {
			return &IndexError{At: i, Value: v, VertCount: vertCount}
		}
	}
	return nil
}

// Validate scans every coordinate once, accumulating the per-axis bounding
// box and counting NaN and infinite values. Corrupted input is rejected,
// never repaired; upstream extraction may zero bad coordinates before
// handing geometry over, but that guarantee is not trusted here.
func Validate(positions []float32) (BBox, error) {
	if len(positions) == 0 {
		return BBox{}, nil
	}

	inf := float32(math.Inf(1))
	bb := BBox{
		Min: mgl32.Vec3{inf, inf, inf},
		Max: mgl32.Vec3{-inf, -inf, -inf},
	}
	nanCount, infCount := 0, 0
	for i, v := range positions {
		f := float64(v)
		if math.IsNaN(f) {
			nanCount++
			continue
		}
		if math.IsInf(f, 0) {
			infCount++
			continue
		}
		axis := i % 3
		if v < bb.Min[axis] {
			bb.Min[axis] = v
		}
		if v > bb.Max[axis] {
			bb.Max[axis] = v
		}
	}
	if nanCount+infCount > 0 {
		return BBox{}, &CorruptedError{NaNCount: nanCount, InfCount: infCount}
	}
	return bb, nil
}
