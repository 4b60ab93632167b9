package mat

func Orthographic[T Float](left, right, top, bottom, near, far T) Mat4[T] {
	w := right - left
	h := top - bottom
	d := far - near
	return Mat4[T]{
		2 / w, 0, 0, 0,
		0, 2 / h, 0, 0,
		0, 0, -2 / d, 0,
		-(right + left) / w, -(top + bottom) / h, -(far + near) / d, 1,
	}
}
