package mat

func Translate[T Float](x, y, z T) Mat4[T] {
	return Mat4[T]{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		x, y, z, 1,
	}
}

func Scale[T Float](x, y, z T) Mat4[T] {
	return Mat4[T]{
		x, 0, 0, 0,
		0, y, 0, 0,
		0, 0, z, 0,
		0, 0, 0, 1,
	}
}

// Rotate returns the rotation by x, y and z radians about the respective
// axes, equal to Rz×Ry×Rx: a point is rotated about X first, then Y, then Z.
func Rotate[T Float](x, y, z T) Mat4[T] {
	sx, cx := sin(x), cos(x)
	sy, cy := sin(y), cos(y)
	sz, cz := sin(z), cos(z)

	return Mat4[T]{
		cz * cy, sz * cy, -sy, 0,
		cz*sy*sx - sz*cx, sz*sy*sx + cz*cx, cy * sx, 0,
		cz*sy*cx + sz*sx, sz*sy*cx - cz*sx, cy * cx, 0,
		0, 0, 0, 1,
	}
}
