package mat

// Mat4 is a 4x4 matrix in column-major order: element (row i, column j)
// is stored at index 4*j+i.
type Mat4[T Float] [16]T

func Identity[T Float]() Mat4[T] {
	return Mat4[T]{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

// Mul returns m×a.
func (m Mat4[T]) Mul(a Mat4[T]) Mat4[T] {
	var out Mat4[T]
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			var sum T
			for k := 0; k < 4; k++ {
				sum += m[4*k+i] * a[4*j+k]
			}
			out[4*j+i] = sum
		}
	}
	return out
}

// Transform applies m to the point a, taken as (x, y, z, 1).
//
// Only the first three rows are evaluated and no perspective divide is done.
// This is exact for affine matrices. Points projected by Perspective need the
// w row (indices 3, 7, 11, 15) evaluated and divided by the caller.
func (m Mat4[T]) Transform(a Vec3[T]) Vec3[T] {
	var out Vec3[T]
	out[0] = m[4*0+0]*a[0] + m[4*1+0]*a[1] + m[4*2+0]*a[2] + m[4*3+0]
	out[1] = m[4*0+1]*a[0] + m[4*1+1]*a[1] + m[4*2+1]*a[2] + m[4*3+1]
	out[2] = m[4*0+2]*a[0] + m[4*1+2]*a[1] + m[4*2+2]*a[2] + m[4*3+2]
	return out
}

// ApproxEqual reports whether every element of m differs from a by strictly
// less than eps.
func (m Mat4[T]) ApproxEqual(a Mat4[T], eps T) bool {
	for i := range m {
		if abs(m[i]-a[i]) >= eps {
			return false
		}
	}
	return true
}
