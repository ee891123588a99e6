package math

import "fmt"

// ------------------------------------------
// Vector 3
// ------------------------------------------

/**
 * @brief Creates and returns a new 3-element vector using the supplied values.
 *
 * @param x The x value.
 * @param y The y value.
 * @param z The z value.
 * @return A new 3-element vector.
 */
func NewVec3[T Scalar](x, y, z T) Vec3[T] {
	return Vec3[T]{X: x, Y: y, Z: z}
}

/**
 * @brief Creates a 3-component vector with all components set to value.
 */
func SplatVec3[T Scalar](value T) Vec3[T] {
	return Vec3[T]{X: value, Y: value, Z: value}
}

/**
 * @brief Returns a new vec3 containing the x, y and z components of the
 * supplied vec4, essentially dropping the w component.
 */
func NewVec3FromVec4[T Scalar](vector Vec4[T]) Vec3[T] {
	return Vec3[T]{vector.X, vector.Y, vector.Z}
}

/**
 * @brief Returns a new vec3 from a vec2 and a z component.
 */
func NewVec3FromVec2[T Scalar](vector Vec2[T], z T) Vec3[T] {
	return Vec3[T]{vector.X, vector.Y, z}
}

/**
 * @brief Creates and returns a 3-component vector with all components set to 0.0f.
 */
func Vec3Zero[T Scalar]() Vec3[T] {
	return Vec3[T]{0, 0, 0}
}

/**
 * @brief Creates and returns a 3-component vector with all components set to 1.0f.
 */
func Vec3One[T Scalar]() Vec3[T] {
	return Vec3[T]{1, 1, 1}
}

func Vec3UnitX[T Scalar]() Vec3[T] {
	return Vec3[T]{1, 0, 0}
}

func Vec3UnitY[T Scalar]() Vec3[T] {
	return Vec3[T]{0, 1, 0}
}

func Vec3UnitZ[T Scalar]() Vec3[T] {
	return Vec3[T]{0, 0, 1}
}

/**
 * @brief Creates and returns a 3-component vector pointing up (0, 1, 0).
 */
func Vec3Up[T Scalar]() Vec3[T] {
	return Vec3[T]{0, 1, 0}
}

/**
 * @brief Creates and returns a 3-component vector pointing down (0, -1, 0).
 */
func Vec3Down[T Scalar]() Vec3[T] {
	return Vec3[T]{0, -1, 0}
}

/**
 * @brief Creates and returns a 3-component vector pointing left (-1, 0, 0).
 */
func Vec3Left[T Scalar]() Vec3[T] {
	return Vec3[T]{-1, 0, 0}
}

/**
 * @brief Creates and returns a 3-component vector pointing right (1, 0, 0).
 */
func Vec3Right[T Scalar]() Vec3[T] {
	return Vec3[T]{1, 0, 0}
}

/**
 * @brief Creates and returns a 3-component vector pointing forward (0, 0, -1).
 */
func Vec3Forward[T Scalar]() Vec3[T] {
	return Vec3[T]{0, 0, -1}
}

/**
 * @brief Creates and returns a 3-component vector pointing backward (0, 0, 1).
 */
func Vec3Backward[T Scalar]() Vec3[T] {
	return Vec3[T]{0, 0, 1}
}

/**
 * @brief Returns a new vec4 using vector as the x, y and z components and w for w.
 */
func (v Vec3[T]) ToVec4(w T) Vec4[T] {
	return Vec4[T]{v.X, v.Y, v.Z, w}
}

// XY drops the z component.
func (v Vec3[T]) XY() Vec2[T] {
	return Vec2[T]{v.X, v.Y}
}

/**
 * @brief Adds other to v and returns a copy of the result.
 */
func (v Vec3[T]) Add(other Vec3[T]) Vec3[T] {
	return Vec3[T]{
		v.X + other.X,
		v.Y + other.Y,
		v.Z + other.Z}
}

/**
 * @brief Subtracts other from v and returns a copy of the result.
 */
func (v Vec3[T]) Sub(other Vec3[T]) Vec3[T] {
	return Vec3[T]{
		v.X - other.X,
		v.Y - other.Y,
		v.Z - other.Z}
}

/**
 * @brief Multiplies v by other componentwise and returns a copy of the result.
 */
func (v Vec3[T]) Mul(other Vec3[T]) Vec3[T] {
	return Vec3[T]{
		v.X * other.X,
		v.Y * other.Y,
		v.Z * other.Z}
}

/**
 * @brief Multiplies all elements of v by scalar and returns a copy of the result.
 */
func (v Vec3[T]) MulScalar(scalar T) Vec3[T] {
	return Vec3[T]{
		v.X * scalar,
		v.Y * scalar,
		v.Z * scalar}
}

/**
 * @brief Divides v by other componentwise and returns a copy of the result.
 */
func (v Vec3[T]) Div(other Vec3[T]) Vec3[T] {
	return Vec3[T]{
		v.X / other.X,
		v.Y / other.Y,
		v.Z / other.Z}
}

func (v Vec3[T]) DivScalar(divider T) Vec3[T] {
	factor := 1 / divider
	return Vec3[T]{
		v.X * factor,
		v.Y * factor,
		v.Z * factor}
}

func (v Vec3[T]) Negate() Vec3[T] {
	return Vec3[T]{-v.X, -v.Y, -v.Z}
}

/**
 * @brief Returns the squared length of the provided vector.
 */
func (v Vec3[T]) LengthSquared() T {
	return v.X*v.X + v.Y*v.Y + v.Z*v.Z
}

/**
 * @brief Returns the length of the provided vector.
 */
func (v Vec3[T]) Length() T {
	return Sqrt(v.LengthSquared())
}

/**
 * @brief Returns a unit vector pointing in the same direction as v.
 * A zero-length vector yields NaN components.
 */
func (v Vec3[T]) Normalize() Vec3[T] {
	length := v.Length()
	return Vec3[T]{v.X / length, v.Y / length, v.Z / length}
}

/**
 * @brief Returns the dot product between v and other.
 * Typically used to calculate the difference in direction.
 */
func (v Vec3[T]) Dot(other Vec3[T]) T {
	return v.X*other.X + v.Y*other.Y + v.Z*other.Z
}

/**
 * @brief Calculates and returns the cross product of v and other.
 * The cross product is a new vector which is orthoganal to both provided vectors.
 */
func (v Vec3[T]) Cross(other Vec3[T]) Vec3[T] {
	return Vec3[T]{
		v.Y*other.Z - v.Z*other.Y,
		v.Z*other.X - v.X*other.Z,
		v.X*other.Y - v.Y*other.X}
}

/**
 * @brief Returns the distance between v and other.
 */
func (v Vec3[T]) Distance(other Vec3[T]) T {
	return Sqrt(v.DistanceSquared(other))
}

func (v Vec3[T]) DistanceSquared(other Vec3[T]) T {
	dx := v.X - other.X
	dy := v.Y - other.Y
	dz := v.Z - other.Z
	return dx*dx + dy*dy + dz*dz
}

// Reflect returns v mirrored about the plane orthogonal to normal. normal is
// expected to be unit length.
func (v Vec3[T]) Reflect(normal Vec3[T]) Vec3[T] {
	val := 2 * v.Dot(normal)
	return Vec3[T]{
		v.X - normal.X*val,
		v.Y - normal.Y*val,
		v.Z - normal.Z*val}
}

func (v Vec3[T]) Clamp(min, max Vec3[T]) Vec3[T] {
	return Vec3[T]{
		Clamp(v.X, min.X, max.X),
		Clamp(v.Y, min.Y, max.Y),
		Clamp(v.Z, min.Z, max.Z)}
}

func (v Vec3[T]) Min(other Vec3[T]) Vec3[T] {
	return Vec3[T]{Min(v.X, other.X), Min(v.Y, other.Y), Min(v.Z, other.Z)}
}

func (v Vec3[T]) Max(other Vec3[T]) Vec3[T] {
	return Vec3[T]{Max(v.X, other.X), Max(v.Y, other.Y), Max(v.Z, other.Z)}
}

func (v Vec3[T]) Abs() Vec3[T] {
	return Vec3[T]{Abs(v.X), Abs(v.Y), Abs(v.Z)}
}

// Round rounds each component half to even.
func (v Vec3[T]) Round() Vec3[T] {
	return Vec3[T]{Round(v.X), Round(v.Y), Round(v.Z)}
}

func (v Vec3[T]) Floor() Vec3[T] {
	return Vec3[T]{Floor(v.X), Floor(v.Y), Floor(v.Z)}
}

func (v Vec3[T]) Ceiling() Vec3[T] {
	return Vec3[T]{Ceil(v.X), Ceil(v.Y), Ceil(v.Z)}
}

func (v Vec3[T]) Lerp(other Vec3[T], amount T) Vec3[T] {
	return Vec3[T]{
		Lerp(v.X, other.X, amount),
		Lerp(v.Y, other.Y, amount),
		Lerp(v.Z, other.Z, amount)}
}

func (v Vec3[T]) LerpPrecise(other Vec3[T], amount T) Vec3[T] {
	return Vec3[T]{
		LerpPrecise(v.X, other.X, amount),
		LerpPrecise(v.Y, other.Y, amount),
		LerpPrecise(v.Z, other.Z, amount)}
}

// Hermite runs a Hermite spline per component from v (with tangent1) to
// other (with tangent2).
func (v Vec3[T]) Hermite(tangent1, other, tangent2 Vec3[T], amount T) Vec3[T] {
	return Vec3[T]{
		Hermite(v.X, tangent1.X, other.X, tangent2.X, amount),
		Hermite(v.Y, tangent1.Y, other.Y, tangent2.Y, amount),
		Hermite(v.Z, tangent1.Z, other.Z, tangent2.Z, amount)}
}

func (v Vec3[T]) SmoothStep(other Vec3[T], amount T) Vec3[T] {
	return Vec3[T]{
		SmoothStep(v.X, other.X, amount),
		SmoothStep(v.Y, other.Y, amount),
		SmoothStep(v.Z, other.Z, amount)}
}

// CatmullRomVec3 interpolates between value2 and value3.
func CatmullRomVec3[T Scalar](value1, value2, value3, value4 Vec3[T], amount T) Vec3[T] {
	return Vec3[T]{
		CatmullRom(value1.X, value2.X, value3.X, value4.X, amount),
		CatmullRom(value1.Y, value2.Y, value3.Y, value4.Y, amount),
		CatmullRom(value1.Z, value2.Z, value3.Z, value4.Z, amount)}
}

func BarycentricVec3[T Scalar](value1, value2, value3 Vec3[T], amount1, amount2 T) Vec3[T] {
	return Vec3[T]{
		Barycentric(value1.X, value2.X, value3.X, amount1, amount2),
		Barycentric(value1.Y, value2.Y, value3.Y, amount1, amount2),
		Barycentric(value1.Z, value2.Z, value3.Z, amount1, amount2)}
}

/**
 * @brief Transforms v as a point (w = 1) by the full 4x4 matrix. The result
 * is not divided by w.
 */
func (v Vec3[T]) Transform(mt Matrix[T]) Vec3[T] {
	return Vec3[T]{
		v.X*mt.M11 + v.Y*mt.M21 + v.Z*mt.M31 + mt.M41,
		v.X*mt.M12 + v.Y*mt.M22 + v.Z*mt.M32 + mt.M42,
		v.X*mt.M13 + v.Y*mt.M23 + v.Z*mt.M33 + mt.M43}
}

/**
 * @brief Transforms v as a direction using only the upper 3x3 block; the
 * translation row is ignored.
 */
func (v Vec3[T]) TransformNormal(mt Matrix[T]) Vec3[T] {
	return Vec3[T]{
		v.X*mt.M11 + v.Y*mt.M21 + v.Z*mt.M31,
		v.X*mt.M12 + v.Y*mt.M22 + v.Z*mt.M32,
		v.X*mt.M13 + v.Y*mt.M23 + v.Z*mt.M33}
}

/**
 * @brief Rotates v by the quaternion q without building a matrix.
 */
func (v Vec3[T]) TransformQuaternion(q Quaternion[T]) Vec3[T] {
	x := 2 * (q.Y*v.Z - q.Z*v.Y)
	y := 2 * (q.Z*v.X - q.X*v.Z)
	z := 2 * (q.X*v.Y - q.Y*v.X)

	return Vec3[T]{
		v.X + x*q.W + (q.Y*z - q.Z*y),
		v.Y + y*q.W + (q.Z*x - q.X*z),
		v.Z + z*q.W + (q.X*y - q.Y*x)}
}

/**
 * @brief Compares all elements of v and other and ensures the difference
 * is less than or equal to tolerance.
 *
 * @param other The second vector.
 * @param tolerance The difference tolerance. Typically FloatEpsilon or similar.
 * @return True if within tolerance; otherwise false.
 */
func (v Vec3[T]) NearlyEqual(other Vec3[T], tolerance T) bool {
	return NearlyEqual(v.X, other.X, tolerance) &&
		NearlyEqual(v.Y, other.Y, tolerance) &&
		NearlyEqual(v.Z, other.Z, tolerance)
}

func (v Vec3[T]) Equals(other Vec3[T]) bool {
	return v.X == other.X && v.Y == other.Y && v.Z == other.Z
}

// HasNaN reports whether any component is NaN.
func (v Vec3[T]) HasNaN() bool {
	return IsNaN(v.X) || IsNaN(v.Y) || IsNaN(v.Z)
}

func (v Vec3[T]) String() string {
	return fmt.Sprintf("{X:%v Y:%v Z:%v}", v.X, v.Y, v.Z)
}

// ConvertVec3 changes the scalar type of a vector.
func ConvertVec3[U, T Scalar](v Vec3[T]) Vec3[U] {
	return Vec3[U]{U(v.X), U(v.Y), U(v.Z)}
}
