// Package navio persists baked navmesh results: a versioned binary
// container carrying the build report, the opaque navmesh blob and the
// debug visualization mesh, plus verbatim export of the navmesh blob and
// a Wavefront OBJ dump of the debug mesh.
package navio

import (
	"fmt"
	"io"
	"os"

	"github.com/splatwalk/navbake/common/rw"
	"github.com/splatwalk/navbake/navgen"
)

const containerMagic = 'N'<<24 | 'A'<<16 | 'V'<<8 | 'B' // 'NAVB'
const containerVersion = 1

// Container is the on-disk form of one successful build.
type Container struct {
	Report         navgen.Report
	NavMeshData    []byte
	DebugPositions []float32
	DebugIndices   []uint32
}

// Encode renders the container to its binary form.
func Encode(c *Container) []byte {
	w := rw.NewWriter()
	w.WriteUint32(containerMagic)
	w.WriteUint32(containerVersion)

	r := &c.Report
	w.WriteFloat64(r.OriginalCS)
	w.WriteFloat64(r.ActiveCS)
	w.WriteBool(r.IsOverride)
	w.WriteFloat64(r.HeadroomPadding)
	w.WriteUint32(uint32(r.GridWidth))
	w.WriteUint32(uint32(r.GridDepth))
	w.WriteUint32(uint32(r.GridHeight))
	w.WriteFloat64(r.AvgUpDot)
	w.WriteBool(r.WasFlipped)
	for i := 0; i < 3; i++ {
		w.WriteFloat32(r.BMin[i])
	}
	for i := 0; i < 3; i++ {
		w.WriteFloat32(r.BMax[i])
	}

	w.WriteBytes(c.NavMeshData)
	w.WriteFloat32s(c.DebugPositions)
	w.WriteUint32s(c.DebugIndices)
	return w.Bytes()
}

// Decode parses a container produced by Encode.
func Decode(data []byte) (*Container, error) {
	r := rw.NewReader(data)
	if magic := r.ReadUint32(); magic != containerMagic {
		return nil, fmt.Errorf("navio: bad magic %#08x", magic)
	}
	if version := r.ReadUint32(); version != containerVersion {
		return nil, fmt.Errorf("navio: unsupported version %d", version)
	}

	var c Container
	rep := &c.Report
	rep.OriginalCS = r.ReadFloat64()
	rep.ActiveCS = r.ReadFloat64()
	rep.IsOverride = r.ReadBool()
	rep.HeadroomPadding = r.ReadFloat64()
	rep.GridWidth = int(r.ReadUint32())
	rep.GridDepth = int(r.ReadUint32())
	rep.GridHeight = int(r.ReadUint32())
	rep.AvgUpDot = r.ReadFloat64()
	rep.WasFlipped = r.ReadBool()
	for i := 0; i < 3; i++ {
		rep.BMin[i] = r.ReadFloat32()
	}
	for i := 0; i < 3; i++ {
		rep.BMax[i] = r.ReadFloat32()
	}

	c.NavMeshData = r.ReadBytes()
	c.DebugPositions = r.ReadFloat32s()
	c.DebugIndices = r.ReadUint32s()
	if err := r.Err(); err != nil {
		return nil, fmt.Errorf("navio: %w", err)
	}
	return &c, nil
}

// Save writes the container to path.
func Save(path string, c *Container) error {
	return os.WriteFile(path, Encode(c), 0o644)
}

// Load reads a container from path.
func Load(path string) (*Container, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Decode(data)
}

// ExportNavMesh persists the opaque navmesh binary verbatim.
func ExportNavMesh(path string, data []byte) error {
	return os.WriteFile(path, data, 0o644)
}

// WriteDebugOBJ dumps the debug visualization mesh as Wavefront OBJ for
// external viewers. Indices are written 1-based per the format.
func WriteDebugOBJ(w io.Writer, positions []float32, indices []uint32) error {
	if _, err := fmt.Fprintf(w, "# navbake debug mesh\no NavMesh\n\n"); err != nil {
		return err
	}
	for i := 0; i+2 < len(positions); i += 3 {
		if _, err := fmt.Fprintf(w, "v %f %f %f\n", positions[i], positions[i+1], positions[i+2]); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintln(w); err != nil {
		return err
	}
	for i := 0; i+2 < len(indices); i += 3 {
		if _, err := fmt.Fprintf(w, "f %d %d %d\n", indices[i]+1, indices[i+1]+1, indices[i+2]+1); err != nil {
			return err
		}
	}
	return nil
}
