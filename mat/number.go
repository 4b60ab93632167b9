package mat

import (
	"math"

	"github.com/chewxy/math32"
	"golang.org/x/exp/constraints"
)

// Number is the element type of Vec3.
type Number interface {
	constraints.Signed | constraints.Float
}

// Float is the element type of Mat4.
type Float interface {
	constraints.Float
}

// isFloat reports whether T keeps fractional parts.
func isFloat[T Number]() bool {
	return T(1)/2 != 0
}

func sqrt[T Number](x T) T {
	if v, ok := any(x).(float32); ok {
		return T(math32.Sqrt(v))
	}
	return T(math.Sqrt(float64(x)))
}

func sin[T Number](x T) T {
	if v, ok := any(x).(float32); ok {
		return T(math32.Sin(v))
	}
	return T(math.Sin(float64(x)))
}

func cos[T Number](x T) T {
	if v, ok := any(x).(float32); ok {
		return T(math32.Cos(v))
	}
	return T(math.Cos(float64(x)))
}

func tan[T Number](x T) T {
	if v, ok := any(x).(float32); ok {
		return T(math32.Tan(v))
	}
	return T(math.Tan(float64(x)))
}

func abs[T Number](x T) T {
	if v, ok := any(x).(float32); ok {
		return T(math32.Abs(v))
	}
	if isFloat[T]() {
		return T(math.Abs(float64(x)))
	}
	if x < 0 {
		return -x
	}
	return x
}

// fma returns x*y+z. Floats are rounded once; integers wrap like plain
// arithmetic.
func fma[T Number](x, y, z T) T {
	if !isFloat[T]() {
		return x*y + z
	}
	return T(math.FMA(float64(x), float64(y), float64(z)))
}
