package mat

import (
	pmat "github.com/seqsense/pcgol/mat"
)

// Conversions to and from github.com/seqsense/pcgol/mat.
// Both use the same column-major float32 layout.

func Vec3FromPcgol(v pmat.Vec3) Vec3f {
	return Vec3f(v)
}

func Vec3ToPcgol(v Vec3f) pmat.Vec3 {
	return pmat.Vec3(v)
}

func Mat4FromPcgol(m pmat.Mat4) Mat4f {
	return Mat4f(m)
}

func Mat4ToPcgol(m Mat4f) pmat.Mat4 {
	return pmat.Mat4(m)
}
