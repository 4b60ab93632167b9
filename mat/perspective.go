package mat

// Perspective returns an OpenGL style projection for a vertical field of view
// fov in radians, mapping the view frustum between near and far into clip
// space.
//
// fov must be in (0, π) and near must differ from far. Degenerate arguments
// yield non-finite elements.
func Perspective[T Float](fov, width, height, near, far T) Mat4[T] {
	halfFov := tan(fov / 2)
	aspect := width / height
	rng := near - far
	return Mat4[T]{
		1 / (halfFov * aspect), 0, 0, 0,
		0, 1 / halfFov, 0, 0,
		0, 0, (far + near) / rng, -1,
		0, 0, 2 * far * near / rng, 0,
	}
}
