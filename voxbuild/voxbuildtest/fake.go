// Package voxbuildtest provides a scripted Builder for tests.
package voxbuildtest

import (
	"context"

	"github.com/splatwalk/navbake/voxbuild"
)

// Artifact is a Handle that remembers whether it was released.
type Artifact struct {
	released bool
}

func (a *Artifact) Release()       { a.released = true }
func (a *Artifact) Released() bool { return a.released }

// NavMesh is a scripted voxbuild.NavMesh.
type NavMesh struct {
	Data           []byte
	DebugPositions []float32
	DebugIndices   []uint32
	SerializeErr   error

	released bool
}

func (m *NavMesh) Serialize() ([]byte, error) {
	if m.SerializeErr != nil {
		return nil, m.SerializeErr
	}
	return m.Data, nil
}

func (m *NavMesh) WalkablePolys() ([]float32, []uint32) {
	return m.DebugPositions, m.DebugIndices
}

func (m *NavMesh) Release()       { m.released = true }
func (m *NavMesh) Released() bool { return m.released }

// Builder is a voxbuild.Builder double. It counts calls, records the last
// Input and replies with a scripted Output.
type Builder struct {
	InitCalls  int
	BuildCalls int

	InitErr  error
	BuildErr error
	Out      *voxbuild.Output

	LastInput *voxbuild.Input
}

func (b *Builder) Init(ctx context.Context) error {
	b.InitCalls++
	return b.InitErr
}

func (b *Builder) Build(ctx context.Context, in *voxbuild.Input) (*voxbuild.Output, error) {
	b.BuildCalls++
	b.LastInput = in
	if b.BuildErr != nil {
		return nil, b.BuildErr
	}
	if b.Out != nil {
		return b.Out, nil
	}
	return Succeed(&NavMesh{Data: []byte("navmesh")}), nil
}

// Succeed scripts a successful build with all intermediates retained.
func Succeed(m *NavMesh) *voxbuild.Output {
	return &voxbuild.Output{
		OK:      true,
		NavMesh: m,
		Intermediates: voxbuild.Intermediates{
			Heightfield:        &Artifact{},
			CompactHeightfield: &Artifact{},
			ContourSet:         &Artifact{},
			PolyMesh:           &Artifact{},
		},
		Log: []string{"build ok"},
	}
}

// FailWith scripts a failed build whose retained artifacts stop after the
// given count: 0 none, 1 heightfield, 2 +compact heightfield, 3 +contour
// set.
func FailWith(stages int, log ...string) *voxbuild.Output {
	out := &voxbuild.Output{Log: log}
	if stages > 0 {
		out.Intermediates.Heightfield = &Artifact{}
	}
	if stages > 1 {
		out.Intermediates.CompactHeightfield = &Artifact{}
	}
	if stages > 2 {
		out.Intermediates.ContourSet = &Artifact{}
	}
	return out
}
