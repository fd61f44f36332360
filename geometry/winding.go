package geometry

// FlipWinding returns a copy of indices with the second and third index of
// every triangle swapped, reversing winding order and therefore the
// effective face normal of each triangle. The input buffer is left
// untouched.
func FlipWinding(indices []uint32) []uint32 {
	out := make([]uint32, len(indices))
	for t := 0; t+2 < len(indices); t += 3 {
		out[t] = indices[t]
		out[t+1] = indices[t+2]
		out[t+2] = indices[t+1]
	}
	return out
}
