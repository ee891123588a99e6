// Package interop converts kernel values to and from the float32 types of
// github.com/go-gl/mathgl/mgl32. Conversions are always explicit; narrowing
// to float32 rounds to nearest even.
package interop

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/spaghettifunk/spatial/engine/math"
)

func Vec2ToFixed[T math.Scalar](v math.Vec2[T]) mgl32.Vec2 {
	return mgl32.Vec2{float32(v.X), float32(v.Y)}
}

func Vec2FromFixed[T math.Scalar](v mgl32.Vec2) math.Vec2[T] {
	return math.NewVec2(T(v[0]), T(v[1]))
}

func Vec3ToFixed[T math.Scalar](v math.Vec3[T]) mgl32.Vec3 {
	return mgl32.Vec3{float32(v.X), float32(v.Y), float32(v.Z)}
}

func Vec3FromFixed[T math.Scalar](v mgl32.Vec3) math.Vec3[T] {
	return math.NewVec3(T(v[0]), T(v[1]), T(v[2]))
}

func Vec4ToFixed[T math.Scalar](v math.Vec4[T]) mgl32.Vec4 {
	return mgl32.Vec4{float32(v.X), float32(v.Y), float32(v.Z), float32(v.W)}
}

func Vec4FromFixed[T math.Scalar](v mgl32.Vec4) math.Vec4[T] {
	return math.NewVec4(T(v[0]), T(v[1]), T(v[2]), T(v[3]))
}

/**
 * @brief Converts a row-vector matrix to mgl32's column-vector Mat4. The
 * row-major storage of the kernel matrix is exactly mgl32's column-major
 * storage of the same transform, so elements are copied in order.
 */
func MatrixToFixed[T math.Scalar](mt math.Matrix[T]) mgl32.Mat4 {
	var out mgl32.Mat4
	for i, v := range mt.ToArray() {
		out[i] = float32(v)
	}
	return out
}

func MatrixFromFixed[T math.Scalar](mt mgl32.Mat4) math.Matrix[T] {
	var data [16]T
	for i, v := range mt {
		data[i] = T(v)
	}
	return math.FromArray(data)
}

func QuaternionToFixed[T math.Scalar](q math.Quaternion[T]) mgl32.Quat {
	return mgl32.Quat{W: float32(q.W), V: mgl32.Vec3{float32(q.X), float32(q.Y), float32(q.Z)}}
}

func QuaternionFromFixed[T math.Scalar](q mgl32.Quat) math.Quaternion[T] {
	return math.NewQuaternion(T(q.V[0]), T(q.V[1]), T(q.V[2]), T(q.W))
}

// PlaneToFixed packs the normal into xyz and D into w.
func PlaneToFixed[T math.Scalar](p math.Plane[T]) mgl32.Vec4 {
	return mgl32.Vec4{float32(p.Normal.X), float32(p.Normal.Y), float32(p.Normal.Z), float32(p.D)}
}

func PlaneFromFixed[T math.Scalar](v mgl32.Vec4) math.Plane[T] {
	return math.NewPlaneFromComponents(T(v[0]), T(v[1]), T(v[2]), T(v[3]))
}
