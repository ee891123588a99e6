package math

import "fmt"

// ------------------------------------------
// Vector 2
// ------------------------------------------

/**
 * @brief Creates and returns a new 2-element vector using the supplied values.
 *
 * @param x The x value.
 * @param y The y value.
 * @return A new 2-element vector.
 */
func NewVec2[T Scalar](x, y T) Vec2[T] {
	return Vec2[T]{X: x, Y: y}
}

func SplatVec2[T Scalar](value T) Vec2[T] {
	return Vec2[T]{X: value, Y: value}
}

/**
 * @brief Creates and returns a 2-component vector with all components set to 0.0f.
 */
func Vec2Zero[T Scalar]() Vec2[T] {
	return Vec2[T]{0, 0}
}

/**
 * @brief Creates and returns a 2-component vector with all components set to 1.0f.
 */
func Vec2One[T Scalar]() Vec2[T] {
	return Vec2[T]{1, 1}
}

func Vec2UnitX[T Scalar]() Vec2[T] {
	return Vec2[T]{1, 0}
}

func Vec2UnitY[T Scalar]() Vec2[T] {
	return Vec2[T]{0, 1}
}

func (v Vec2[T]) ToVec3(z T) Vec3[T] {
	return Vec3[T]{v.X, v.Y, z}
}

/**
 * Adds other to v and returns a copy of the result.
 */
func (v Vec2[T]) Add(other Vec2[T]) Vec2[T] {
	return Vec2[T]{v.X + other.X, v.Y + other.Y}
}

/**
 * Subtracts other from v and returns a copy of the result.
 */
func (v Vec2[T]) Sub(other Vec2[T]) Vec2[T] {
	return Vec2[T]{v.X - other.X, v.Y - other.Y}
}

/**
 * Multiplies v by other and returns a copy of the result.
 */
func (v Vec2[T]) Mul(other Vec2[T]) Vec2[T] {
	return Vec2[T]{v.X * other.X, v.Y * other.Y}
}

func (v Vec2[T]) MulScalar(scalar T) Vec2[T] {
	return Vec2[T]{v.X * scalar, v.Y * scalar}
}

/**
 * Divides v by other and returns a copy of the result.
 */
func (v Vec2[T]) Div(other Vec2[T]) Vec2[T] {
	return Vec2[T]{v.X / other.X, v.Y / other.Y}
}

func (v Vec2[T]) DivScalar(divider T) Vec2[T] {
	factor := 1 / divider
	return Vec2[T]{v.X * factor, v.Y * factor}
}

func (v Vec2[T]) Negate() Vec2[T] {
	return Vec2[T]{-v.X, -v.Y}
}

/**
 * Returns the squared length of the provided vector.
 */
func (v Vec2[T]) LengthSquared() T {
	return v.X*v.X + v.Y*v.Y
}

/**
 * @brief Returns the length of the provided vector.
 */
func (v Vec2[T]) Length() T {
	return Sqrt(v.LengthSquared())
}

/**
 * Returns a unit-length copy of v. Zero-length input yields NaN components.
 */
func (v Vec2[T]) Normalize() Vec2[T] {
	length := v.Length()
	return Vec2[T]{v.X / length, v.Y / length}
}

func (v Vec2[T]) Dot(other Vec2[T]) T {
	return v.X*other.X + v.Y*other.Y
}

/**
 * @brief Returns the distance between v and other.
 */
func (v Vec2[T]) Distance(other Vec2[T]) T {
	return Sqrt(v.DistanceSquared(other))
}

func (v Vec2[T]) DistanceSquared(other Vec2[T]) T {
	dx := v.X - other.X
	dy := v.Y - other.Y
	return dx*dx + dy*dy
}

func (v Vec2[T]) Reflect(normal Vec2[T]) Vec2[T] {
	val := 2 * v.Dot(normal)
	return Vec2[T]{v.X - normal.X*val, v.Y - normal.Y*val}
}

func (v Vec2[T]) Clamp(min, max Vec2[T]) Vec2[T] {
	return Vec2[T]{Clamp(v.X, min.X, max.X), Clamp(v.Y, min.Y, max.Y)}
}

func (v Vec2[T]) Min(other Vec2[T]) Vec2[T] {
	return Vec2[T]{Min(v.X, other.X), Min(v.Y, other.Y)}
}

func (v Vec2[T]) Max(other Vec2[T]) Vec2[T] {
	return Vec2[T]{Max(v.X, other.X), Max(v.Y, other.Y)}
}

func (v Vec2[T]) Abs() Vec2[T] {
	return Vec2[T]{Abs(v.X), Abs(v.Y)}
}

func (v Vec2[T]) Round() Vec2[T] {
	return Vec2[T]{Round(v.X), Round(v.Y)}
}

func (v Vec2[T]) Floor() Vec2[T] {
	return Vec2[T]{Floor(v.X), Floor(v.Y)}
}

func (v Vec2[T]) Ceiling() Vec2[T] {
	return Vec2[T]{Ceil(v.X), Ceil(v.Y)}
}

func (v Vec2[T]) Lerp(other Vec2[T], amount T) Vec2[T] {
	return Vec2[T]{Lerp(v.X, other.X, amount), Lerp(v.Y, other.Y, amount)}
}

func (v Vec2[T]) LerpPrecise(other Vec2[T], amount T) Vec2[T] {
	return Vec2[T]{LerpPrecise(v.X, other.X, amount), LerpPrecise(v.Y, other.Y, amount)}
}

func (v Vec2[T]) Hermite(tangent1, other, tangent2 Vec2[T], amount T) Vec2[T] {
	return Vec2[T]{
		Hermite(v.X, tangent1.X, other.X, tangent2.X, amount),
		Hermite(v.Y, tangent1.Y, other.Y, tangent2.Y, amount)}
}

func (v Vec2[T]) SmoothStep(other Vec2[T], amount T) Vec2[T] {
	return Vec2[T]{SmoothStep(v.X, other.X, amount), SmoothStep(v.Y, other.Y, amount)}
}

func CatmullRomVec2[T Scalar](value1, value2, value3, value4 Vec2[T], amount T) Vec2[T] {
	return Vec2[T]{
		CatmullRom(value1.X, value2.X, value3.X, value4.X, amount),
		CatmullRom(value1.Y, value2.Y, value3.Y, value4.Y, amount)}
}

func BarycentricVec2[T Scalar](value1, value2, value3 Vec2[T], amount1, amount2 T) Vec2[T] {
	return Vec2[T]{
		Barycentric(value1.X, value2.X, value3.X, amount1, amount2),
		Barycentric(value1.Y, value2.Y, value3.Y, amount1, amount2)}
}

// Transform treats v as the point (x, y, 0, 1).
func (v Vec2[T]) Transform(mt Matrix[T]) Vec2[T] {
	return Vec2[T]{
		v.X*mt.M11 + v.Y*mt.M21 + mt.M41,
		v.X*mt.M12 + v.Y*mt.M22 + mt.M42}
}

// TransformNormal applies only the upper 2x2 block.
func (v Vec2[T]) TransformNormal(mt Matrix[T]) Vec2[T] {
	return Vec2[T]{
		v.X*mt.M11 + v.Y*mt.M21,
		v.X*mt.M12 + v.Y*mt.M22}
}

func (v Vec2[T]) TransformQuaternion(q Quaternion[T]) Vec2[T] {
	r := Vec3[T]{v.X, v.Y, 0}.TransformQuaternion(q)
	return Vec2[T]{r.X, r.Y}
}

/**
 * @brief Compares all elements of v and other and ensures the difference
 * is less than or equal to tolerance.
 */
func (v Vec2[T]) NearlyEqual(other Vec2[T], tolerance T) bool {
	return NearlyEqual(v.X, other.X, tolerance) && NearlyEqual(v.Y, other.Y, tolerance)
}

func (v Vec2[T]) Equals(other Vec2[T]) bool {
	return v.X == other.X && v.Y == other.Y
}

func (v Vec2[T]) String() string {
	return fmt.Sprintf("{X:%v Y:%v}", v.X, v.Y)
}

func ConvertVec2[U, T Scalar](v Vec2[T]) Vec2[U] {
	return Vec2[U]{U(v.X), U(v.Y)}
}
