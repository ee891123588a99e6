package math

import "fmt"

// ------------------------------------------
// Vector 4
// ------------------------------------------

/**
 * @brief Creates and returns a new 4-element vector using the supplied values.
 */
func NewVec4[T Scalar](x, y, z, w T) Vec4[T] {
	return Vec4[T]{X: x, Y: y, Z: z, W: w}
}

/**
 * @brief Returns a new vec4 using v as the x, y and z components and w for w.
 */
func NewVec4FromVec3[T Scalar](v Vec3[T], w T) Vec4[T] {
	return Vec4[T]{v.X, v.Y, v.Z, w}
}

func SplatVec4[T Scalar](value T) Vec4[T] {
	return Vec4[T]{value, value, value, value}
}

/**
 * @brief Creates and returns a 4-component vector with all components set to 0.0f.
 */
func Vec4Zero[T Scalar]() Vec4[T] {
	return Vec4[T]{0, 0, 0, 0}
}

/**
 * @brief Creates and returns a 4-component vector with all components set to 1.0f.
 */
func Vec4One[T Scalar]() Vec4[T] {
	return Vec4[T]{1, 1, 1, 1}
}

/**
 * @brief Returns a new vec3 containing the x, y and z components of v.
 */
func (v Vec4[T]) ToVec3() Vec3[T] {
	return Vec3[T]{v.X, v.Y, v.Z}
}

func (v Vec4[T]) Add(other Vec4[T]) Vec4[T] {
	return Vec4[T]{
		v.X + other.X,
		v.Y + other.Y,
		v.Z + other.Z,
		v.W + other.W}
}

func (v Vec4[T]) Sub(other Vec4[T]) Vec4[T] {
	return Vec4[T]{
		v.X - other.X,
		v.Y - other.Y,
		v.Z - other.Z,
		v.W - other.W}
}

func (v Vec4[T]) Mul(other Vec4[T]) Vec4[T] {
	return Vec4[T]{
		v.X * other.X,
		v.Y * other.Y,
		v.Z * other.Z,
		v.W * other.W}
}

func (v Vec4[T]) MulScalar(scalar T) Vec4[T] {
	return Vec4[T]{v.X * scalar, v.Y * scalar, v.Z * scalar, v.W * scalar}
}

func (v Vec4[T]) Div(other Vec4[T]) Vec4[T] {
	return Vec4[T]{
		v.X / other.X,
		v.Y / other.Y,
		v.Z / other.Z,
		v.W / other.W}
}

func (v Vec4[T]) DivScalar(divider T) Vec4[T] {
	factor := 1 / divider
	return Vec4[T]{v.X * factor, v.Y * factor, v.Z * factor, v.W * factor}
}

func (v Vec4[T]) Negate() Vec4[T] {
	return Vec4[T]{-v.X, -v.Y, -v.Z, -v.W}
}

func (v Vec4[T]) LengthSquared() T {
	return v.X*v.X + v.Y*v.Y + v.Z*v.Z + v.W*v.W
}

func (v Vec4[T]) Length() T {
	return Sqrt(v.LengthSquared())
}

// Normalize divides every component by the length. Zero-length input yields
// NaN components.
func (v Vec4[T]) Normalize() Vec4[T] {
	length := v.Length()
	return Vec4[T]{v.X / length, v.Y / length, v.Z / length, v.W / length}
}

func (v Vec4[T]) Dot(other Vec4[T]) T {
	return v.X*other.X + v.Y*other.Y + v.Z*other.Z + v.W*other.W
}

func (v Vec4[T]) Distance(other Vec4[T]) T {
	return Sqrt(v.DistanceSquared(other))
}

func (v Vec4[T]) DistanceSquared(other Vec4[T]) T {
	return v.Sub(other).LengthSquared()
}

func (v Vec4[T]) Clamp(min, max Vec4[T]) Vec4[T] {
	return Vec4[T]{
		Clamp(v.X, min.X, max.X),
		Clamp(v.Y, min.Y, max.Y),
		Clamp(v.Z, min.Z, max.Z),
		Clamp(v.W, min.W, max.W)}
}

func (v Vec4[T]) Min(other Vec4[T]) Vec4[T] {
	return Vec4[T]{Min(v.X, other.X), Min(v.Y, other.Y), Min(v.Z, other.Z), Min(v.W, other.W)}
}

func (v Vec4[T]) Max(other Vec4[T]) Vec4[T] {
	return Vec4[T]{Max(v.X, other.X), Max(v.Y, other.Y), Max(v.Z, other.Z), Max(v.W, other.W)}
}

func (v Vec4[T]) Abs() Vec4[T] {
	return Vec4[T]{Abs(v.X), Abs(v.Y), Abs(v.Z), Abs(v.W)}
}

func (v Vec4[T]) Round() Vec4[T] {
	return Vec4[T]{Round(v.X), Round(v.Y), Round(v.Z), Round(v.W)}
}

func (v Vec4[T]) Floor() Vec4[T] {
	return Vec4[T]{Floor(v.X), Floor(v.Y), Floor(v.Z), Floor(v.W)}
}

func (v Vec4[T]) Ceiling() Vec4[T] {
	return Vec4[T]{Ceil(v.X), Ceil(v.Y), Ceil(v.Z), Ceil(v.W)}
}

func (v Vec4[T]) Lerp(other Vec4[T], amount T) Vec4[T] {
	return Vec4[T]{
		Lerp(v.X, other.X, amount),
		Lerp(v.Y, other.Y, amount),
		Lerp(v.Z, other.Z, amount),
		Lerp(v.W, other.W, amount)}
}

func (v Vec4[T]) LerpPrecise(other Vec4[T], amount T) Vec4[T] {
	return Vec4[T]{
		LerpPrecise(v.X, other.X, amount),
		LerpPrecise(v.Y, other.Y, amount),
		LerpPrecise(v.Z, other.Z, amount),
		LerpPrecise(v.W, other.W, amount)}
}

func (v Vec4[T]) Hermite(tangent1, other, tangent2 Vec4[T], amount T) Vec4[T] {
	return Vec4[T]{
		Hermite(v.X, tangent1.X, other.X, tangent2.X, amount),
		Hermite(v.Y, tangent1.Y, other.Y, tangent2.Y, amount),
		Hermite(v.Z, tangent1.Z, other.Z, tangent2.Z, amount),
		Hermite(v.W, tangent1.W, other.W, tangent2.W, amount)}
}

func (v Vec4[T]) SmoothStep(other Vec4[T], amount T) Vec4[T] {
	return Vec4[T]{
		SmoothStep(v.X, other.X, amount),
		SmoothStep(v.Y, other.Y, amount),
		SmoothStep(v.Z, other.Z, amount),
		SmoothStep(v.W, other.W, amount)}
}

func CatmullRomVec4[T Scalar](value1, value2, value3, value4 Vec4[T], amount T) Vec4[T] {
	return Vec4[T]{
		CatmullRom(value1.X, value2.X, value3.X, value4.X, amount),
		CatmullRom(value1.Y, value2.Y, value3.Y, value4.Y, amount),
		CatmullRom(value1.Z, value2.Z, value3.Z, value4.Z, amount),
		CatmullRom(value1.W, value2.W, value3.W, value4.W, amount)}
}

func BarycentricVec4[T Scalar](value1, value2, value3 Vec4[T], amount1, amount2 T) Vec4[T] {
	return Vec4[T]{
		Barycentric(value1.X, value2.X, value3.X, amount1, amount2),
		Barycentric(value1.Y, value2.Y, value3.Y, amount1, amount2),
		Barycentric(value1.Z, value2.Z, value3.Z, amount1, amount2),
		Barycentric(value1.W, value2.W, value3.W, amount1, amount2)}
}

/**
 * @brief Transforms v by the full 4x4 matrix as a row vector.
 */
func (v Vec4[T]) Transform(mt Matrix[T]) Vec4[T] {
	return Vec4[T]{
		v.X*mt.M11 + v.Y*mt.M21 + v.Z*mt.M31 + v.W*mt.M41,
		v.X*mt.M12 + v.Y*mt.M22 + v.Z*mt.M32 + v.W*mt.M42,
		v.X*mt.M13 + v.Y*mt.M23 + v.Z*mt.M33 + v.W*mt.M43,
		v.X*mt.M14 + v.Y*mt.M24 + v.Z*mt.M34 + v.W*mt.M44}
}

// TransformQuaternion rotates the xyz part and keeps w.
func (v Vec4[T]) TransformQuaternion(q Quaternion[T]) Vec4[T] {
	r := v.ToVec3().TransformQuaternion(q)
	return Vec4[T]{r.X, r.Y, r.Z, v.W}
}

/**
 * @brief Compares all elements of v and other and ensures the difference
 * is less than or equal to tolerance.
 */
func (v Vec4[T]) NearlyEqual(other Vec4[T], tolerance T) bool {
	return NearlyEqual(v.X, other.X, tolerance) &&
		NearlyEqual(v.Y, other.Y, tolerance) &&
		NearlyEqual(v.Z, other.Z, tolerance) &&
		NearlyEqual(v.W, other.W, tolerance)
}

func (v Vec4[T]) Equals(other Vec4[T]) bool {
	return v.X == other.X && v.Y == other.Y && v.Z == other.Z && v.W == other.W
}

func (v Vec4[T]) String() string {
	return fmt.Sprintf("{X:%v Y:%v Z:%v W:%v}", v.X, v.Y, v.Z, v.W)
}

func ConvertVec4[U, T Scalar](v Vec4[T]) Vec4[U] {
	return Vec4[U]{U(v.X), U(v.Y), U(v.Z), U(v.W)}
}
