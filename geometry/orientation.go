package geometry

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// maxNormalSamples bounds the orientation scan. Triangles are taken from
// the start of the index buffer rather than at random so repeated runs on
// the same mesh agree.
const maxNormalSamples = 50

func vec3At(positions []float32, i uint32) mgl32.Vec3 {
	return mgl32.Vec3{positions[i*3], positions[i*3+1], positions[i*3+2]}
}

// faceNormal returns the unit face normal of triangle t, or the zero
// vector for degenerate triangles.
func faceNormal(positions []float32, indices []uint32, t int) mgl32.Vec3 {
	a := vec3At(positions, indices[t*3])
	b := vec3At(positions, indices[t*3+1])
	c := vec3At(positions, indices[t*3+2])
	n := b.Sub(a).Cross(c.Sub(a))
	l := n.Len()
	if l < 1e-12 {
		return mgl32.Vec3{}
	}
	return n.Mul(1 / l)
}

// AvgUpDot samples up to maxNormalSamples triangles and returns the mean
// dot product of their unit face normals with world up (0,1,0). Returns 0
// when the mesh has no triangles. A result near -1 means the mesh
// predominantly faces down.
func AvgUpDot(positions []float32, indices []uint32) float64 {
	n := len(indices) / 3
	if n == 0 {
		return 0
	}
	if n > maxNormalSamples {
		n = maxNormalSamples
	}
	sum := 0.0
	for t := 0; t < n; t++ {
		sum += float64(faceNormal(positions, indices, t)[1])
	}
	return sum / float64(n)
}

// SteepFraction reports the fraction of sampled triangles whose face
// normal deviates from world up by more than maxSlopeDeg. Degenerate
// triangles count as steep.
func SteepFraction(positions []float32, indices []uint32, maxSlopeDeg float64) float64 {
	n := len(indices) / 3
	if n == 0 {
		return 0
	}
	if n > maxNormalSamples {
		n = maxNormalSamples
	}
	minUpDot := float32(math.Cos(maxSlopeDeg * math.Pi / 180))
	steep := 0
	for t := 0; t < n; t++ {
		if faceNormal(positions, indices, t)[1] < minUpDot {
			steep++
		}
	}
	return float64(steep) / float64(n)
}
