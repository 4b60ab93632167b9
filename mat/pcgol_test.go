package mat

import (
	"testing"

	pmat "github.com/seqsense/pcgol/mat"
	"github.com/stretchr/testify/assert"
)

func TestPcgolConversion(t *testing.T) {
	v := Vec3f{1, -2, 3.5}
	assert.Equal(t, pmat.Vec3{1, -2, 3.5}, Vec3ToPcgol(v))
	assert.Equal(t, v, Vec3FromPcgol(Vec3ToPcgol(v)))

	m := Rotate[float32](0.1, 0.2, 0.3).Mul(Translate[float32](1, 2, 3))
	assert.Equal(t, m, Mat4FromPcgol(Mat4ToPcgol(m)))
}

func TestPcgolCompatible(t *testing.T) {
	t.Run("Translate", func(t *testing.T) {
		assert.Equal(t, pmat.Translate(0.1, 0.2, 0.3), Mat4ToPcgol(Translate[float32](0.1, 0.2, 0.3)))
	})

	ms := []Mat4f{
		Translate[float32](0.1, 0.2, 0.3),
		Scale[float32](1.1, 1.2, 1.3),
		Rotate[float32](0.4, -0.2, 1.1),
		Orthographic[float32](-2, 3, 1, -4, 0.5, 20),
	}

	t.Run("Mul", func(t *testing.T) {
		for _, a := range ms {
			for _, b := range ms {
				expected := Mat4FromPcgol(Mat4ToPcgol(a).Mul(Mat4ToPcgol(b)))
				got := a.Mul(b)
				if !got.ApproxEqual(expected, epsilon) {
					t.Errorf("Expected:\n%v\nGot:\n%v", expected, got)
				}
			}
		}
	})
	t.Run("Transform", func(t *testing.T) {
		in := Vec3f{1, 2, 3}
		for _, m := range ms {
			expected := Vec3FromPcgol(Mat4ToPcgol(m).Transform(Vec3ToPcgol(in)))
			got := m.Transform(in)
			if !got.ApproxEqual(expected, epsilon) {
				t.Errorf("Expected %v, got %v", expected, got)
			}
		}
	})
	t.Run("Vec3", func(t *testing.T) {
		a, b := Vec3f{1, 2, 3}, Vec3f{-4, 0.5, 2}
		pa, pb := Vec3ToPcgol(a), Vec3ToPcgol(b)
		assert.Equal(t, Vec3FromPcgol(pa.Add(pb)), a.Add(b))
		assert.Equal(t, Vec3FromPcgol(pa.Sub(pb)), a.Sub(b))
		assert.True(t, Vec3FromPcgol(pa.Cross(pb)).ApproxEqual(a.Cross(b), epsilon))
		assert.Equal(t, Vec3FromPcgol(pa.Mul(2.5)), a.MulScalar(2.5))
		assert.True(t, Vec3FromPcgol(pa.Normalized()).ApproxEqual(a.Normalized(), epsilon))
	})
}
