package mat

type (
	Vec3f = Vec3[float32]
	Vec3d = Vec3[float64]
	Vec3i = Vec3[int]

	Mat4f = Mat4[float32]
	Mat4d = Mat4[float64]
)
