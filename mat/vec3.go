// Package mat provides generic 3D vector and column-major 4x4 matrix types.
package mat

import (
	"fmt"
)

// Vec3 is a three component vector.
type Vec3[T Number] [3]T

func NewVec3[T Number](x, y, z T) Vec3[T] {
	return Vec3[T]{x, y, z}
}

func (v Vec3[T]) X() T { return v[0] }
func (v Vec3[T]) Y() T { return v[1] }
func (v Vec3[T]) Z() T { return v[2] }

func (v Vec3[T]) NormSq() T {
	return v[0]*v[0] + v[1]*v[1] + v[2]*v[2]
}

// Norm returns the Euclidean length of v.
// Integer vectors get the truncated square root.
func (v Vec3[T]) Norm() T {
	return sqrt(v.NormSq())
}

// Normalized returns v divided by its length.
//
// A zero integer vector normalizes to the zero vector.
// Normalizing a zero floating point vector is a programming error and panics.
func (v Vec3[T]) Normalized() Vec3[T] {
	n := v.Norm()
	if n == 0 {
		if !isFloat[T]() {
			return Vec3[T]{}
		}
		panic(fmt.Sprintf("mat: normalizing zero length vector %v", v))
	}
	return Vec3[T]{v[0] / n, v[1] / n, v[2] / n}
}

func (v Vec3[T]) Distance(a Vec3[T]) T {
	return a.Sub(v).Norm()
}

// AddScaled returns v+dir*scale, each component computed as a fused
// multiply-add.
func (v Vec3[T]) AddScaled(dir Vec3[T], scale T) Vec3[T] {
	return Vec3[T]{
		fma(dir[0], scale, v[0]),
		fma(dir[1], scale, v[1]),
		fma(dir[2], scale, v[2]),
	}
}

func (v Vec3[T]) Dot(a Vec3[T]) T {
	return v[0]*a[0] + v[1]*a[1] + v[2]*a[2]
}

// Cross returns the right handed cross product v×a.
func (v Vec3[T]) Cross(a Vec3[T]) Vec3[T] {
	return Vec3[T]{
		v[1]*a[2] - v[2]*a[1],
		v[2]*a[0] - v[0]*a[2],
		v[0]*a[1] - v[1]*a[0],
	}
}

// Clamp limits each component to [lo, hi].
func (v Vec3[T]) Clamp(lo, hi T) Vec3[T] {
	return Vec3[T]{
		min(max(v[0], lo), hi),
		min(max(v[1], lo), hi),
		min(max(v[2], lo), hi),
	}
}

func (v Vec3[T]) Abs() Vec3[T] {
	return Vec3[T]{abs(v[0]), abs(v[1]), abs(v[2])}
}

// ApproxEqual reports whether every component of v differs from a by
// strictly less than eps.
func (v Vec3[T]) ApproxEqual(a Vec3[T], eps T) bool {
	return abs(v[0]-a[0]) < eps &&
		abs(v[1]-a[1]) < eps &&
		abs(v[2]-a[2]) < eps
}

func (v Vec3[T]) Add(a Vec3[T]) Vec3[T] {
	return Vec3[T]{v[0] + a[0], v[1] + a[1], v[2] + a[2]}
}

func (v Vec3[T]) Sub(a Vec3[T]) Vec3[T] {
	return Vec3[T]{v[0] - a[0], v[1] - a[1], v[2] - a[2]}
}

// Mul multiplies elementwise.
func (v Vec3[T]) Mul(a Vec3[T]) Vec3[T] {
	return Vec3[T]{v[0] * a[0], v[1] * a[1], v[2] * a[2]}
}

func (v Vec3[T]) MulScalar(s T) Vec3[T] {
	return Vec3[T]{v[0] * s, v[1] * s, v[2] * s}
}

// ScalarMul returns s*v with the scalar as the left operand.
func ScalarMul[T Number](s T, v Vec3[T]) Vec3[T] {
	return Vec3[T]{s * v[0], s * v[1], s * v[2]}
}

// Div divides elementwise. Zero float components yield ±Inf or NaN.
func (v Vec3[T]) Div(a Vec3[T]) Vec3[T] {
	return Vec3[T]{v[0] / a[0], v[1] / a[1], v[2] / a[2]}
}

func (v *Vec3[T]) SetAdd(a Vec3[T]) {
	v[0] += a[0]
	v[1] += a[1]
	v[2] += a[2]
}

func (v *Vec3[T]) SetSub(a Vec3[T]) {
	v[0] -= a[0]
	v[1] -= a[1]
	v[2] -= a[2]
}

func (v *Vec3[T]) SetMul(a Vec3[T]) {
	v[0] *= a[0]
	v[1] *= a[1]
	v[2] *= a[2]
}

func (v *Vec3[T]) SetDiv(a Vec3[T]) {
	v[0] /= a[0]
	v[1] /= a[1]
	v[2] /= a[2]
}
