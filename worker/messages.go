package worker

import (
	"github.com/splatwalk/navbake/navgen"
	"github.com/splatwalk/navbake/voxbuild"
)

// Request is a message from the caller. Exactly one Response is produced
// per Request; there is no streaming progress.
type Request interface{ isRequest() }

// Init asks the worker to prepare the builder runtime. Idempotent: a
// second Init while already ready is a no-op acknowledged with Ready.
type Init struct{}

// Generate asks for one navmesh build. Slice ownership moves to the
// worker; the caller must not touch the payload afterwards.
type Generate struct {
	Positions []float32
	Indices   []uint32
	Params    voxbuild.Params
}

func (Init) isRequest()     {}
func (Generate) isRequest() {}

// Response is a message back to the caller.
type Response interface{ isResponse() }

// Ready acknowledges Init.
type Ready struct{}

// Done carries one successful build. Payload ownership transfers to the
// caller; the worker keeps no copy.
type Done struct {
	BuildID        string
	NavMeshData    []byte
	DebugPositions []float32
	DebugIndices   []uint32
	Report         navgen.Report
}

// Error is the single terminal failure response. Message is the
// multi-section human-readable diagnostic text.
type Error struct {
	BuildID string
	Message string
}

func (Ready) isResponse() {}
func (Done) isResponse()  {}
func (Error) isResponse() {}
