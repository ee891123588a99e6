package math

import "fmt"

// ------------------------------------------
// Quaternion
// ------------------------------------------

/**
 * @brief Creates an identity quaternion.
 */
func QuaternionIdentity[T Scalar]() Quaternion[T] {
	return Quaternion[T]{0, 0, 0, 1}
}

func NewQuaternion[T Scalar](x, y, z, w T) Quaternion[T] {
	return Quaternion[T]{X: x, Y: y, Z: z, W: w}
}

// NewQuaternionFromVec3 uses v as the vector part and w as the scalar part.
func NewQuaternionFromVec3[T Scalar](v Vec3[T], w T) Quaternion[T] {
	return Quaternion[T]{v.X, v.Y, v.Z, w}
}

/**
 * @brief Creates a quaternion from the given axis and angle.
 *
 * @param axis The axis of rotation. Expected to be unit length.
 * @param angle The angle of rotation in radians.
 * @return A new quaternion.
 */
func QuaternionFromAxisAngle[T Scalar](axis Vec3[T], angle T) Quaternion[T] {
	half := angle * 0.5
	s := Sin(half)
	c := Cos(half)
	return Quaternion[T]{axis.X * s, axis.Y * s, axis.Z * s, c}
}

/**
 * @brief Extracts the rotation of the upper 3x3 block of a pure rotation
 * matrix. Branches on the largest diagonal term to keep the square root
 * argument away from zero.
 */
func QuaternionFromRotationMatrix[T Scalar](mt Matrix[T]) Quaternion[T] {
	var q Quaternion[T]
	trace := mt.M11 + mt.M22 + mt.M33

	if trace > 0 {
		s := Sqrt(trace + 1)
		q.W = s * 0.5
		s = 0.5 / s
		q.X = (mt.M23 - mt.M32) * s
		q.Y = (mt.M31 - mt.M13) * s
		q.Z = (mt.M12 - mt.M21) * s
		return q
	}
	if mt.M11 >= mt.M22 && mt.M11 >= mt.M33 {
		s := Sqrt(1 + mt.M11 - mt.M22 - mt.M33)
		half := 0.5 / s
		q.X = 0.5 * s
		q.Y = (mt.M12 + mt.M21) * half
		q.Z = (mt.M13 + mt.M31) * half
		q.W = (mt.M23 - mt.M32) * half
		return q
	}
	if mt.M22 > mt.M33 {
		s := Sqrt(1 + mt.M22 - mt.M11 - mt.M33)
		half := 0.5 / s
		q.X = (mt.M21 + mt.M12) * half
		q.Y = 0.5 * s
		q.Z = (mt.M32 + mt.M23) * half
		q.W = (mt.M31 - mt.M13) * half
		return q
	}
	s := Sqrt(1 + mt.M33 - mt.M11 - mt.M22)
	half := 0.5 / s
	q.X = (mt.M31 + mt.M13) * half
	q.Y = (mt.M32 + mt.M23) * half
	q.Z = 0.5 * s
	q.W = (mt.M12 - mt.M21) * half
	return q
}

/**
 * @brief Creates a rotation that applies roll about Z, then pitch about X,
 * then yaw about Y (intrinsic Y-X-Z). ToEulerAngles is its inverse.
 */
func QuaternionFromYawPitchRoll[T Scalar](yaw, pitch, roll T) Quaternion[T] {
	sr, cr := Sin(roll*0.5), Cos(roll*0.5)
	sp, cp := Sin(pitch*0.5), Cos(pitch*0.5)
	sy, cy := Sin(yaw*0.5), Cos(yaw*0.5)

	return Quaternion[T]{
		X: cy*sp*cr + sy*cp*sr,
		Y: sy*cp*cr - cy*sp*sr,
		Z: cy*cp*sr - sy*sp*cr,
		W: cy*cp*cr + sy*sp*sr,
	}
}

/**
 * @brief Recovers yaw (Y), pitch (X) and roll (Z) in radians. Pitch is
 * clamped to +-Pi/2 at the poles.
 */
func (q Quaternion[T]) ToEulerAngles() (yaw, pitch, roll T) {
	sinp := 2 * (q.W*q.X - q.Y*q.Z)
	if Abs(sinp) >= 1 {
		pitch = Copysign(T(PiOver2), sinp)
	} else {
		pitch = Asin(sinp)
	}
	yaw = Atan2(2*(q.W*q.Y+q.X*q.Z), 1-2*(q.X*q.X+q.Y*q.Y))
	roll = Atan2(2*(q.W*q.Z+q.X*q.Y), 1-2*(q.X*q.X+q.Z*q.Z))
	return yaw, pitch, roll
}

// ToAxisAngle returns the rotation axis and angle of a unit quaternion. The
// identity rotation reports the X axis.
func (q Quaternion[T]) ToAxisAngle() (Vec3[T], T) {
	q = q.Normalize()
	angle := 2 * Acos(Clamp(q.W, -1, 1))
	s := Sqrt(1 - q.W*q.W)
	if s < 1e-6 {
		return Vec3UnitX[T](), angle
	}
	return Vec3[T]{q.X / s, q.Y / s, q.Z / s}, angle
}

func (q Quaternion[T]) Add(other Quaternion[T]) Quaternion[T] {
	return Quaternion[T]{q.X + other.X, q.Y + other.Y, q.Z + other.Z, q.W + other.W}
}

func (q Quaternion[T]) Sub(other Quaternion[T]) Quaternion[T] {
	return Quaternion[T]{q.X - other.X, q.Y - other.Y, q.Z - other.Z, q.W - other.W}
}

/**
 * @brief Hamilton product q * other. As a rotation, other is applied first,
 * then q.
 */
func (q Quaternion[T]) Mul(other Quaternion[T]) Quaternion[T] {
	cx := q.Y*other.Z - q.Z*other.Y
	cy := q.Z*other.X - q.X*other.Z
	cz := q.X*other.Y - q.Y*other.X
	dot := q.X*other.X + q.Y*other.Y + q.Z*other.Z

	return Quaternion[T]{
		X: q.X*other.W + other.X*q.W + cx,
		Y: q.Y*other.W + other.Y*q.W + cy,
		Z: q.Z*other.W + other.Z*q.W + cz,
		W: q.W*other.W - dot,
	}
}

/**
 * @brief Concatenate returns other * q: q is applied first, then other.
 * It is the reverse order of Mul.
 */
func (q Quaternion[T]) Concatenate(other Quaternion[T]) Quaternion[T] {
	return other.Mul(q)
}

func (q Quaternion[T]) MulScalar(scalar T) Quaternion[T] {
	return Quaternion[T]{q.X * scalar, q.Y * scalar, q.Z * scalar, q.W * scalar}
}

// Div returns q * other^-1.
func (q Quaternion[T]) Div(other Quaternion[T]) Quaternion[T] {
	return q.Mul(other.Inverse())
}

func (q Quaternion[T]) Negate() Quaternion[T] {
	return Quaternion[T]{-q.X, -q.Y, -q.Z, -q.W}
}

func (q Quaternion[T]) Conjugate() Quaternion[T] {
	return Quaternion[T]{-q.X, -q.Y, -q.Z, q.W}
}

/**
 * @brief Returns the multiplicative inverse. For unit quaternions this equals
 * the conjugate.
 */
func (q Quaternion[T]) Inverse() Quaternion[T] {
	inv := 1 / q.LengthSquared()
	return Quaternion[T]{-q.X * inv, -q.Y * inv, -q.Z * inv, q.W * inv}
}

func (q Quaternion[T]) Dot(other Quaternion[T]) T {
	return q.X*other.X + q.Y*other.Y + q.Z*other.Z + q.W*other.W
}

func (q Quaternion[T]) LengthSquared() T {
	return q.X*q.X + q.Y*q.Y + q.Z*q.Z + q.W*q.W
}

/**
 * @brief Returns the normal (length) of the provided quaternion.
 */
func (q Quaternion[T]) Length() T {
	return Sqrt(q.LengthSquared())
}

/**
 * @brief Returns a normalized copy of the provided quaternion.
 */
func (q Quaternion[T]) Normalize() Quaternion[T] {
	inv := 1 / q.Length()
	return Quaternion[T]{q.X * inv, q.Y * inv, q.Z * inv, q.W * inv}
}

/**
 * @brief Interpolates linearly along the shorter arc and normalizes.
 */
func (q Quaternion[T]) Lerp(other Quaternion[T], amount T) Quaternion[T] {
	inv := 1 - amount
	var out Quaternion[T]
	if q.Dot(other) >= 0 {
		out = Quaternion[T]{
			inv*q.X + amount*other.X,
			inv*q.Y + amount*other.Y,
			inv*q.Z + amount*other.Z,
			inv*q.W + amount*other.W,
		}
	} else {
		out = Quaternion[T]{
			inv*q.X - amount*other.X,
			inv*q.Y - amount*other.Y,
			inv*q.Z - amount*other.Z,
			inv*q.W - amount*other.W,
		}
	}
	return out.Normalize()
}

/**
 * @brief Calculates a spherical linear interpolation along the shorter arc.
 * Nearly parallel inputs (|dot| > 0.999999) use linear weights instead.
 *
 * @param other The second quaternion.
 * @param amount The interpolation amount, usually in [0, 1].
 * @return An interpolated quaternion.
 */
func (q Quaternion[T]) Slerp(other Quaternion[T], amount T) Quaternion[T] {
	var s1, s2 T
	dot := q.Dot(other)
	flip := false
	if dot < 0 {
		flip = true
		dot = -dot
	}

	if dot > 0.999999 {
		s1 = 1 - amount
		s2 = amount
	} else {
		omega := Acos(dot)
		invSin := 1 / Sin(omega)
		s1 = Sin((1-amount)*omega) * invSin
		s2 = Sin(amount*omega) * invSin
	}
	if flip {
		s2 = -s2
	}

	return Quaternion[T]{
		s1*q.X + s2*other.X,
		s1*q.Y + s2*other.Y,
		s1*q.Z + s2*other.Z,
		s1*q.W + s2*other.W,
	}
}

/**
 * @brief Rotates v by q. Same as v.TransformQuaternion(q).
 */
func (q Quaternion[T]) RotateVector(v Vec3[T]) Vec3[T] {
	return v.TransformQuaternion(q)
}

/**
 * @brief Creates a rotation matrix from q. Same as CreateFromQuaternion(q).
 */
func (q Quaternion[T]) ToMatrix() Matrix[T] {
	return CreateFromQuaternion(q)
}

func (q Quaternion[T]) Equals(other Quaternion[T]) bool {
	return q == other
}

func (q Quaternion[T]) NearlyEqual(other Quaternion[T], tolerance T) bool {
	return NearlyEqual(q.X, other.X, tolerance) &&
		NearlyEqual(q.Y, other.Y, tolerance) &&
		NearlyEqual(q.Z, other.Z, tolerance) &&
		NearlyEqual(q.W, other.W, tolerance)
}

func (q Quaternion[T]) String() string {
	return fmt.Sprintf("{X:%v Y:%v Z:%v W:%v}", q.X, q.Y, q.Z, q.W)
}

func ConvertQuaternion[U, T Scalar](q Quaternion[T]) Quaternion[U] {
	return Quaternion[U]{U(q.X), U(q.Y), U(q.Z), U(q.W)}
}
