package math

import (
	"fmt"

	"github.com/spaghettifunk/spatial/engine/core"
)

// ------------------------------------------
// Matrix 4x4
// ------------------------------------------

/**
 * @brief Creates and returns an identity matrix:
 *
 * {
 *   {1, 0, 0, 0},
 *   {0, 1, 0, 0},
 *   {0, 0, 1, 0},
 *   {0, 0, 0, 1}
 * }
 */
func Identity[T Scalar]() Matrix[T] {
	return Matrix[T]{
		M11: 1,
		M22: 1,
		M33: 1,
		M44: 1,
	}
}

// NewMatrix takes the sixteen elements in row-major order.
func NewMatrix[T Scalar](
	m11, m12, m13, m14,
	m21, m22, m23, m24,
	m31, m32, m33, m34,
	m41, m42, m43, m44 T) Matrix[T] {
	return Matrix[T]{
		m11, m12, m13, m14,
		m21, m22, m23, m24,
		m31, m32, m33, m34,
		m41, m42, m43, m44,
	}
}

// FromArray builds a matrix from sixteen row-major elements.
func FromArray[T Scalar](data [16]T) Matrix[T] {
	return Matrix[T]{
		data[0], data[1], data[2], data[3],
		data[4], data[5], data[6], data[7],
		data[8], data[9], data[10], data[11],
		data[12], data[13], data[14], data[15],
	}
}

// ToArray returns the elements in row-major order.
func (mt Matrix[T]) ToArray() [16]T {
	return [16]T{
		mt.M11, mt.M12, mt.M13, mt.M14,
		mt.M21, mt.M22, mt.M23, mt.M24,
		mt.M31, mt.M32, mt.M33, mt.M34,
		mt.M41, mt.M42, mt.M43, mt.M44,
	}
}

/**
 * @brief Returns the element at the row-major linear index (0..15).
 */
func (mt Matrix[T]) At(index int) (T, error) {
	if index < 0 || index > 15 {
		return 0, fmt.Errorf("matrix index %d not in [0, 15]: %w", index, core.ErrOutOfRange)
	}
	return mt.ToArray()[index], nil
}

/**
 * @brief Sets the element at the row-major linear index (0..15).
 */
func (mt *Matrix[T]) SetAt(index int, value T) error {
	if index < 0 || index > 15 {
		return fmt.Errorf("matrix index %d not in [0, 15]: %w", index, core.ErrOutOfRange)
	}
	data := mt.ToArray()
	data[index] = value
	*mt = FromArray(data)
	return nil
}

// Get returns the element at the zero-based row and column.
func (mt Matrix[T]) Get(row, column int) (T, error) {
	if row < 0 || row > 3 || column < 0 || column > 3 {
		return 0, fmt.Errorf("matrix cell (%d, %d) not in [0, 3]: %w", row, column, core.ErrOutOfRange)
	}
	return mt.ToArray()[row*4+column], nil
}

// Set stores value at the zero-based row and column.
func (mt *Matrix[T]) Set(row, column int, value T) error {
	if row < 0 || row > 3 || column < 0 || column > 3 {
		return fmt.Errorf("matrix cell (%d, %d) not in [0, 3]: %w", row, column, core.ErrOutOfRange)
	}
	return mt.SetAt(row*4+column, value)
}

func (mt Matrix[T]) Row(index int) (Vec4[T], error) {
	switch index {
	case 0:
		return Vec4[T]{mt.M11, mt.M12, mt.M13, mt.M14}, nil
	case 1:
		return Vec4[T]{mt.M21, mt.M22, mt.M23, mt.M24}, nil
	case 2:
		return Vec4[T]{mt.M31, mt.M32, mt.M33, mt.M34}, nil
	case 3:
		return Vec4[T]{mt.M41, mt.M42, mt.M43, mt.M44}, nil
	}
	return Vec4[T]{}, fmt.Errorf("matrix row %d not in [0, 3]: %w", index, core.ErrOutOfRange)
}

func (mt Matrix[T]) Column(index int) (Vec4[T], error) {
	switch index {
	case 0:
		return Vec4[T]{mt.M11, mt.M21, mt.M31, mt.M41}, nil
	case 1:
		return Vec4[T]{mt.M12, mt.M22, mt.M32, mt.M42}, nil
	case 2:
		return Vec4[T]{mt.M13, mt.M23, mt.M33, mt.M43}, nil
	case 3:
		return Vec4[T]{mt.M14, mt.M24, mt.M34, mt.M44}, nil
	}
	return Vec4[T]{}, fmt.Errorf("matrix column %d not in [0, 3]: %w", index, core.ErrOutOfRange)
}

// Basis accessors. Forward is -Z, so it reads the negated third row.

func (mt Matrix[T]) Right() Vec3[T] {
	return Vec3[T]{mt.M11, mt.M12, mt.M13}
}

func (mt Matrix[T]) Left() Vec3[T] {
	return Vec3[T]{-mt.M11, -mt.M12, -mt.M13}
}

func (mt Matrix[T]) Up() Vec3[T] {
	return Vec3[T]{mt.M21, mt.M22, mt.M23}
}

func (mt Matrix[T]) Down() Vec3[T] {
	return Vec3[T]{-mt.M21, -mt.M22, -mt.M23}
}

func (mt Matrix[T]) Backward() Vec3[T] {
	return Vec3[T]{mt.M31, mt.M32, mt.M33}
}

func (mt Matrix[T]) Forward() Vec3[T] {
	return Vec3[T]{-mt.M31, -mt.M32, -mt.M33}
}

func (mt Matrix[T]) Translation() Vec3[T] {
	return Vec3[T]{mt.M41, mt.M42, mt.M43}
}

func (mt Matrix[T]) WithRight(v Vec3[T]) Matrix[T] {
	mt.M11, mt.M12, mt.M13 = v.X, v.Y, v.Z
	return mt
}

func (mt Matrix[T]) WithUp(v Vec3[T]) Matrix[T] {
	mt.M21, mt.M22, mt.M23 = v.X, v.Y, v.Z
	return mt
}

func (mt Matrix[T]) WithForward(v Vec3[T]) Matrix[T] {
	mt.M31, mt.M32, mt.M33 = -v.X, -v.Y, -v.Z
	return mt
}

func (mt Matrix[T]) WithBackward(v Vec3[T]) Matrix[T] {
	mt.M31, mt.M32, mt.M33 = v.X, v.Y, v.Z
	return mt
}

func (mt Matrix[T]) WithTranslation(v Vec3[T]) Matrix[T] {
	mt.M41, mt.M42, mt.M43 = v.X, v.Y, v.Z
	return mt
}

/**
 * @brief Creates and returns a translation matrix from the given position.
 */
func CreateTranslation[T Scalar](position Vec3[T]) Matrix[T] {
	out := Identity[T]()
	out.M41 = position.X
	out.M42 = position.Y
	out.M43 = position.Z
	return out
}

/**
 * @brief Returns a scale matrix using the provided scale.
 */
func CreateScale[T Scalar](scale Vec3[T]) Matrix[T] {
	out := Identity[T]()
	out.M11 = scale.X
	out.M22 = scale.Y
	out.M33 = scale.Z
	return out
}

func CreateUniformScale[T Scalar](scale T) Matrix[T] {
	return CreateScale(SplatVec3(scale))
}

// CreateScaleAround scales about center instead of the origin.
func CreateScaleAround[T Scalar](scale, center Vec3[T]) Matrix[T] {
	out := CreateScale(scale)
	out.M41 = center.X * (1 - scale.X)
	out.M42 = center.Y * (1 - scale.Y)
	out.M43 = center.Z * (1 - scale.Z)
	return out
}

/**
 * @brief Creates a rotation matrix from the provided x angle.
 *
 * @param radians The x angle in radians.
 * @return A rotation matrix.
 */
func CreateRotationX[T Scalar](radians T) Matrix[T] {
	out := Identity[T]()
	c := Cos(radians)
	s := Sin(radians)

	out.M22 = c
	out.M23 = s
	out.M32 = -s
	out.M33 = c
	return out
}

/**
 * @brief Creates a rotation matrix from the provided y angle.
 */
func CreateRotationY[T Scalar](radians T) Matrix[T] {
	out := Identity[T]()
	c := Cos(radians)
	s := Sin(radians)

	out.M11 = c
	out.M13 = -s
	out.M31 = s
	out.M33 = c
	return out
}

/**
 * @brief Creates a rotation matrix from the provided z angle.
 */
func CreateRotationZ[T Scalar](radians T) Matrix[T] {
	out := Identity[T]()
	c := Cos(radians)
	s := Sin(radians)

	out.M11 = c
	out.M12 = s
	out.M21 = -s
	out.M22 = c
	return out
}

// CreateRotationAround rotates by rotation about center instead of the origin.
func CreateRotationAround[T Scalar](rotation Matrix[T], center Vec3[T]) Matrix[T] {
	return CreateTranslation(center.Negate()).Mul(rotation).Mul(CreateTranslation(center))
}

/**
 * @brief Creates a rotation of angle radians about axis. axis is expected to
 * be unit length.
 */
func CreateFromAxisAngle[T Scalar](axis Vec3[T], angle T) Matrix[T] {
	x := axis.X
	y := axis.Y
	z := axis.Z
	s := Sin(angle)
	c := Cos(angle)
	xx := x * x
	yy := y * y
	zz := z * z
	xy := x * y
	xz := x * z
	yz := y * z

	out := Identity[T]()
	out.M11 = xx + c*(1-xx)
	out.M12 = xy - c*xy + s*z
	out.M13 = xz - c*xz - s*y
	out.M21 = xy - c*xy - s*z
	out.M22 = yy + c*(1-yy)
	out.M23 = yz - c*yz + s*x
	out.M31 = xz - c*xz + s*y
	out.M32 = yz - c*yz - s*x
	out.M33 = zz + c*(1-zz)
	return out
}

/**
 * @brief Creates a rotation matrix from a unit quaternion.
 */
func CreateFromQuaternion[T Scalar](q Quaternion[T]) Matrix[T] {
	xx := q.X * q.X
	yy := q.Y * q.Y
	zz := q.Z * q.Z
	xy := q.X * q.Y
	zw := q.Z * q.W
	zx := q.Z * q.X
	yw := q.Y * q.W
	yz := q.Y * q.Z
	xw := q.X * q.W

	out := Identity[T]()
	out.M11 = 1 - 2*(yy+zz)
	out.M12 = 2 * (xy + zw)
	out.M13 = 2 * (zx - yw)
	out.M21 = 2 * (xy - zw)
	out.M22 = 1 - 2*(zz+xx)
	out.M23 = 2 * (yz + xw)
	out.M31 = 2 * (zx + yw)
	out.M32 = 2 * (yz - xw)
	out.M33 = 1 - 2*(yy+xx)
	return out
}

// CreateFromYawPitchRoll rotates by roll about Z, then pitch about X, then yaw
// about Y.
func CreateFromYawPitchRoll[T Scalar](yaw, pitch, roll T) Matrix[T] {
	return CreateFromQuaternion(QuaternionFromYawPitchRoll(yaw, pitch, roll))
}

/**
 * @brief Creates and returns a look-at (view) matrix. The camera looks down
 * its local -Z axis towards target.
 *
 * @param position The position of the camera.
 * @param target The position to "look at".
 * @param up The up vector.
 * @return A view matrix.
 */
func CreateLookAt[T Scalar](position, target, up Vec3[T]) Matrix[T] {
	zAxis := position.Sub(target).Normalize()
	xAxis := up.Cross(zAxis).Normalize()
	yAxis := zAxis.Cross(xAxis)

	return Matrix[T]{
		xAxis.X, yAxis.X, zAxis.X, 0,
		xAxis.Y, yAxis.Y, zAxis.Y, 0,
		xAxis.Z, yAxis.Z, zAxis.Z, 0,
		-xAxis.Dot(position), -yAxis.Dot(position), -zAxis.Dot(position), 1,
	}
}

/**
 * @brief Creates and returns an orthographic projection matrix of the given
 * view volume size, centered on the view axis. Typically used to render flat
 * or 2D scenes.
 */
func CreateOrthographic[T Scalar](width, height, nearClip, farClip T) Matrix[T] {
	return Matrix[T]{
		M11: 2 / width,
		M22: 2 / height,
		M33: 1 / (nearClip - farClip),
		M43: nearClip / (nearClip - farClip),
		M44: 1,
	}
}

/**
 * @brief Creates and returns an orthographic projection matrix for the given
 * view volume bounds.
 *
 * @param left The left side of the view frustum.
 * @param right The right side of the view frustum.
 * @param bottom The bottom side of the view frustum.
 * @param top The top side of the view frustum.
 * @param nearClip The near clipping plane distance.
 * @param farClip The far clipping plane distance.
 * @return A new orthographic projection matrix.
 */
func CreateOrthographicOffCenter[T Scalar](left, right, bottom, top, nearClip, farClip T) Matrix[T] {
	return Matrix[T]{
		M11: 2 / (right - left),
		M22: 2 / (top - bottom),
		M33: 1 / (nearClip - farClip),
		M41: (left + right) / (left - right),
		M42: (top + bottom) / (bottom - top),
		M43: nearClip / (nearClip - farClip),
		M44: 1,
	}
}

// negFarRange returns far/(near-far), or -1 when far is +Inf.
func negFarRange[T Scalar](nearClip, farClip T) T {
	if IsInf(farClip, 1) {
		return -1
	}
	return farClip / (nearClip - farClip)
}

func validateClipPlanes[T Scalar](nearClip, farClip T) error {
	if !(nearClip > 0) {
		return fmt.Errorf("near clip %v must be > 0: %w", nearClip, core.ErrInvalidArgument)
	}
	if !(farClip > 0) {
		return fmt.Errorf("far clip %v must be > 0: %w", farClip, core.ErrInvalidArgument)
	}
	if !(nearClip < farClip) {
		return fmt.Errorf("near clip %v must be < far clip %v: %w", nearClip, farClip, core.ErrInvalidArgument)
	}
	return nil
}

/**
 * @brief Creates a perspective projection from the size of the view volume at
 * the near plane. farClip may be +Inf.
 */
func CreatePerspective[T Scalar](width, height, nearClip, farClip T) (Matrix[T], error) {
	if err := validateClipPlanes(nearClip, farClip); err != nil {
		return Matrix[T]{}, fmt.Errorf("CreatePerspective: %w", err)
	}
	nfr := negFarRange(nearClip, farClip)
	return Matrix[T]{
		M11: 2 * nearClip / width,
		M22: 2 * nearClip / height,
		M33: nfr,
		M34: -1,
		M43: nearClip * nfr,
	}, nil
}

/**
 * @brief Creates and returns a perspective matrix.
 *
 * @param fieldOfView The vertical field of view in radians, in (0, Pi).
 * @param aspectRatio The aspect ratio (width / height).
 * @param nearClip The near clipping plane distance.
 * @param farClip The far clipping plane distance. May be +Inf.
 * @return A new perspective matrix, or an error wrapping ErrInvalidArgument.
 */
func CreatePerspectiveFieldOfView[T Scalar](fieldOfView, aspectRatio, nearClip, farClip T) (Matrix[T], error) {
	if !(fieldOfView > 0) || !(fieldOfView < Pi) {
		return Matrix[T]{}, fmt.Errorf("CreatePerspectiveFieldOfView: field of view %v must be in (0, Pi): %w", fieldOfView, core.ErrInvalidArgument)
	}
	if err := validateClipPlanes(nearClip, farClip); err != nil {
		return Matrix[T]{}, fmt.Errorf("CreatePerspectiveFieldOfView: %w", err)
	}
	yScale := 1 / Tan(fieldOfView*0.5)
	xScale := yScale / aspectRatio
	nfr := negFarRange(nearClip, farClip)
	return Matrix[T]{
		M11: xScale,
		M22: yScale,
		M33: nfr,
		M34: -1,
		M43: nearClip * nfr,
	}, nil
}

/**
 * @brief Creates a customized perspective projection from the view volume
 * bounds at the near plane. farClip may be +Inf.
 */
func CreatePerspectiveOffCenter[T Scalar](left, right, bottom, top, nearClip, farClip T) (Matrix[T], error) {
	if err := validateClipPlanes(nearClip, farClip); err != nil {
		return Matrix[T]{}, fmt.Errorf("CreatePerspectiveOffCenter: %w", err)
	}
	nfr := negFarRange(nearClip, farClip)
	return Matrix[T]{
		M11: 2 * nearClip / (right - left),
		M22: 2 * nearClip / (top - bottom),
		M31: (left + right) / (right - left),
		M32: (top + bottom) / (top - bottom),
		M33: nfr,
		M34: -1,
		M43: nearClip * nfr,
	}, nil
}

// billboardThreshold is cos(~3.4°): axes closer than this to the view vector
// fall back to a fixed reference direction.
const billboardThreshold = 0.9982547

/**
 * @brief Creates a spherical billboard that rotates around objectPosition to
 * face cameraPosition. cameraForward is used when the two positions coincide;
 * pass nil to fall back to Vec3Forward.
 */
func CreateBillboard[T Scalar](objectPosition, cameraPosition, cameraUp Vec3[T], cameraForward *Vec3[T]) Matrix[T] {
	vector := objectPosition.Sub(cameraPosition)
	lsq := vector.LengthSquared()
	if lsq < 0.0001 {
		if cameraForward != nil {
			vector = cameraForward.Negate()
		} else {
			vector = Vec3Forward[T]()
		}
	} else {
		vector = vector.MulScalar(1 / Sqrt(lsq))
	}

	right := cameraUp.Cross(vector).Normalize()
	up := vector.Cross(right)

	return Matrix[T]{
		right.X, right.Y, right.Z, 0,
		up.X, up.Y, up.Z, 0,
		vector.X, vector.Y, vector.Z, 0,
		objectPosition.X, objectPosition.Y, objectPosition.Z, 1,
	}
}

/**
 * @brief Creates a cylindrical billboard that rotates around rotateAxis to
 * face cameraPosition. cameraForward and objectForward are optional.
 */
func CreateConstrainedBillboard[T Scalar](objectPosition, cameraPosition, rotateAxis Vec3[T], cameraForward, objectForward *Vec3[T]) Matrix[T] {
	toObject := objectPosition.Sub(cameraPosition)
	lsq := toObject.LengthSquared()
	if lsq < 0.0001 {
		if cameraForward != nil {
			toObject = cameraForward.Negate()
		} else {
			toObject = Vec3Forward[T]()
		}
	} else {
		toObject = toObject.MulScalar(1 / Sqrt(lsq))
	}

	up := rotateAxis
	var forward, right Vec3[T]
	d := rotateAxis.Dot(toObject)
	if Abs(d) > billboardThreshold {
		if objectForward != nil {
			forward = *objectForward
			d = rotateAxis.Dot(forward)
			if Abs(d) > billboardThreshold {
				d = rotateAxis.Dot(Vec3Forward[T]())
				if Abs(d) > billboardThreshold {
					forward = Vec3Right[T]()
				} else {
					forward = Vec3Forward[T]()
				}
			}
		} else {
			d = rotateAxis.Dot(Vec3Forward[T]())
			if Abs(d) > billboardThreshold {
				forward = Vec3Right[T]()
			} else {
				forward = Vec3Forward[T]()
			}
		}
		right = rotateAxis.Cross(forward).Normalize()
		forward = right.Cross(rotateAxis).Normalize()
	} else {
		right = rotateAxis.Cross(toObject).Normalize()
		forward = right.Cross(up).Normalize()
	}

	return Matrix[T]{
		right.X, right.Y, right.Z, 0,
		up.X, up.Y, up.Z, 0,
		forward.X, forward.Y, forward.Z, 0,
		objectPosition.X, objectPosition.Y, objectPosition.Z, 1,
	}
}

/**
 * @brief Creates a matrix that mirrors points about plane. The plane is
 * normalized first.
 */
func CreateReflection[T Scalar](plane Plane[T]) Matrix[T] {
	plane = plane.Normalize()
	x := plane.Normal.X
	y := plane.Normal.Y
	z := plane.Normal.Z
	nx := -2 * x
	ny := -2 * y
	nz := -2 * z

	return Matrix[T]{
		nx*x + 1, ny * x, nz * x, 0,
		nx * y, ny*y + 1, nz * y, 0,
		nx * z, ny * z, nz*z + 1, 0,
		nx * plane.D, ny * plane.D, nz * plane.D, 1,
	}
}

/**
 * @brief Creates a matrix that flattens geometry onto plane as if lit from
 * lightDirection.
 */
func CreateShadow[T Scalar](lightDirection Vec3[T], plane Plane[T]) Matrix[T] {
	dot := plane.Normal.Dot(lightDirection)
	x := -plane.Normal.X
	y := -plane.Normal.Y
	z := -plane.Normal.Z
	d := -plane.D

	return Matrix[T]{
		x*lightDirection.X + dot, x * lightDirection.Y, x * lightDirection.Z, 0,
		y * lightDirection.X, y*lightDirection.Y + dot, y * lightDirection.Z, 0,
		z * lightDirection.X, z * lightDirection.Y, z*lightDirection.Z + dot, 0,
		d * lightDirection.X, d * lightDirection.Y, d * lightDirection.Z, dot,
	}
}

/**
 * @brief Creates a world matrix placing an object at position, facing forward
 * with the given up vector.
 */
func CreateWorld[T Scalar](position, forward, up Vec3[T]) Matrix[T] {
	z := forward.Normalize()
	x := forward.Cross(up)
	y := x.Cross(forward)
	x = x.Normalize()
	y = y.Normalize()

	return Identity[T]().
		WithRight(x).
		WithUp(y).
		WithForward(z).
		WithTranslation(position)
}

func (mt Matrix[T]) Add(other Matrix[T]) Matrix[T] {
	a, b := mt.ToArray(), other.ToArray()
	for i := range a {
		a[i] += b[i]
	}
	return FromArray(a)
}

func (mt Matrix[T]) Sub(other Matrix[T]) Matrix[T] {
	a, b := mt.ToArray(), other.ToArray()
	for i := range a {
		a[i] -= b[i]
	}
	return FromArray(a)
}

/**
 * @brief Returns the result of multiplying mt and other. With row vectors,
 * the result applies mt first, then other.
 */
func (mt Matrix[T]) Mul(other Matrix[T]) Matrix[T] {
	return Matrix[T]{
		M11: mt.M11*other.M11 + mt.M12*other.M21 + mt.M13*other.M31 + mt.M14*other.M41,
		M12: mt.M11*other.M12 + mt.M12*other.M22 + mt.M13*other.M32 + mt.M14*other.M42,
		M13: mt.M11*other.M13 + mt.M12*other.M23 + mt.M13*other.M33 + mt.M14*other.M43,
		M14: mt.M11*other.M14 + mt.M12*other.M24 + mt.M13*other.M34 + mt.M14*other.M44,

		M21: mt.M21*other.M11 + mt.M22*other.M21 + mt.M23*other.M31 + mt.M24*other.M41,
		M22: mt.M21*other.M12 + mt.M22*other.M22 + mt.M23*other.M32 + mt.M24*other.M42,
		M23: mt.M21*other.M13 + mt.M22*other.M23 + mt.M23*other.M33 + mt.M24*other.M43,
		M24: mt.M21*other.M14 + mt.M22*other.M24 + mt.M23*other.M34 + mt.M24*other.M44,

		M31: mt.M31*other.M11 + mt.M32*other.M21 + mt.M33*other.M31 + mt.M34*other.M41,
		M32: mt.M31*other.M12 + mt.M32*other.M22 + mt.M33*other.M32 + mt.M34*other.M42,
		M33: mt.M31*other.M13 + mt.M32*other.M23 + mt.M33*other.M33 + mt.M34*other.M43,
		M34: mt.M31*other.M14 + mt.M32*other.M24 + mt.M33*other.M34 + mt.M34*other.M44,

		M41: mt.M41*other.M11 + mt.M42*other.M21 + mt.M43*other.M31 + mt.M44*other.M41,
		M42: mt.M41*other.M12 + mt.M42*other.M22 + mt.M43*other.M32 + mt.M44*other.M42,
		M43: mt.M41*other.M13 + mt.M42*other.M23 + mt.M43*other.M33 + mt.M44*other.M43,
		M44: mt.M41*other.M14 + mt.M42*other.M24 + mt.M43*other.M34 + mt.M44*other.M44,
	}
}

func (mt Matrix[T]) MulScalar(scalar T) Matrix[T] {
	a := mt.ToArray()
	for i := range a {
		a[i] *= scalar
	}
	return FromArray(a)
}

// Div divides elementwise.
func (mt Matrix[T]) Div(other Matrix[T]) Matrix[T] {
	a, b := mt.ToArray(), other.ToArray()
	for i := range a {
		a[i] /= b[i]
	}
	return FromArray(a)
}

func (mt Matrix[T]) DivScalar(divider T) Matrix[T] {
	return mt.MulScalar(1 / divider)
}

func (mt Matrix[T]) Negate() Matrix[T] {
	return mt.MulScalar(-1)
}

/**
 * @brief Returns a transposed copy of the provided matrix (rows->colums)
 */
func (mt Matrix[T]) Transpose() Matrix[T] {
	return Matrix[T]{
		mt.M11, mt.M21, mt.M31, mt.M41,
		mt.M12, mt.M22, mt.M32, mt.M42,
		mt.M13, mt.M23, mt.M33, mt.M43,
		mt.M14, mt.M24, mt.M34, mt.M44,
	}
}

/**
 * @brief Returns the determinant, expanded along the first row using the
 * 2x2 minors of the last two rows.
 */
func (mt Matrix[T]) Determinant() T {
	a := mt.M33*mt.M44 - mt.M34*mt.M43
	b := mt.M32*mt.M44 - mt.M34*mt.M42
	c := mt.M32*mt.M43 - mt.M33*mt.M42
	d := mt.M31*mt.M44 - mt.M34*mt.M41
	e := mt.M31*mt.M43 - mt.M33*mt.M41
	f := mt.M31*mt.M42 - mt.M32*mt.M41

	return mt.M11*(mt.M22*a-mt.M23*b+mt.M24*c) -
		mt.M12*(mt.M21*a-mt.M23*d+mt.M24*e) +
		mt.M13*(mt.M21*b-mt.M22*d+mt.M24*f) -
		mt.M14*(mt.M21*c-mt.M22*e+mt.M23*f)
}

/**
 * @brief Creates and returns an inverse of the provided matrix.
 * The cofactors are accumulated in float64 regardless of T. A singular
 * matrix produces NaN/Inf elements; it is not reported as an error.
 */
func (mt Matrix[T]) Invert() Matrix[T] {
	m11, m12, m13, m14 := float64(mt.M11), float64(mt.M12), float64(mt.M13), float64(mt.M14)
	m21, m22, m23, m24 := float64(mt.M21), float64(mt.M22), float64(mt.M23), float64(mt.M24)
	m31, m32, m33, m34 := float64(mt.M31), float64(mt.M32), float64(mt.M33), float64(mt.M34)
	m41, m42, m43, m44 := float64(mt.M41), float64(mt.M42), float64(mt.M43), float64(mt.M44)

	// 2x2 minors of rows 3 and 4.
	s0 := m33*m44 - m34*m43
	s1 := m32*m44 - m34*m42
	s2 := m32*m43 - m33*m42
	s3 := m31*m44 - m34*m41
	s4 := m31*m43 - m33*m41
	s5 := m31*m42 - m32*m41

	c11 := m22*s0 - m23*s1 + m24*s2
	c12 := -(m21*s0 - m23*s3 + m24*s4)
	c13 := m21*s1 - m22*s3 + m24*s5
	c14 := -(m21*s2 - m22*s4 + m23*s5)

	invDet := 1.0 / (m11*c11 + m12*c12 + m13*c13 + m14*c14)

	var out Matrix[T]
	out.M11 = T(c11 * invDet)
	out.M21 = T(c12 * invDet)
	out.M31 = T(c13 * invDet)
	out.M41 = T(c14 * invDet)

	out.M12 = T(-(m12*s0 - m13*s1 + m14*s2) * invDet)
	out.M22 = T((m11*s0 - m13*s3 + m14*s4) * invDet)
	out.M32 = T(-(m11*s1 - m12*s3 + m14*s5) * invDet)
	out.M42 = T((m11*s2 - m12*s4 + m13*s5) * invDet)

	// 2x2 minors of rows 2 and 4.
	t0 := m23*m44 - m24*m43
	t1 := m22*m44 - m24*m42
	t2 := m22*m43 - m23*m42
	t3 := m21*m44 - m24*m41
	t4 := m21*m43 - m23*m41
	t5 := m21*m42 - m22*m41

	out.M13 = T((m12*t0 - m13*t1 + m14*t2) * invDet)
	out.M23 = T(-(m11*t0 - m13*t3 + m14*t4) * invDet)
	out.M33 = T((m11*t1 - m12*t3 + m14*t5) * invDet)
	out.M43 = T(-(m11*t2 - m12*t4 + m13*t5) * invDet)

	// 2x2 minors of rows 2 and 3.
	u0 := m23*m34 - m24*m33
	u1 := m22*m34 - m24*m32
	u2 := m22*m33 - m23*m32
	u3 := m21*m34 - m24*m31
	u4 := m21*m33 - m23*m31
	u5 := m21*m32 - m22*m31

	out.M14 = T(-(m12*u0 - m13*u1 + m14*u2) * invDet)
	out.M24 = T((m11*u0 - m13*u3 + m14*u4) * invDet)
	out.M34 = T(-(m11*u1 - m12*u3 + m14*u5) * invDet)
	out.M44 = T((m11*u2 - m12*u4 + m13*u5) * invDet)

	return out
}

/**
 * @brief Splits an affine matrix into scale, rotation and translation.
 * Scale magnitudes are the lengths of the three basis rows. When the upper
 * 3x3 block has a negative determinant the X scale is negated, so the
 * rotation is always taken from a proper rotation block. Returns ok == false
 * with an identity rotation when any scale component is exactly zero.
 */
func (mt Matrix[T]) Decompose() (scale Vec3[T], rotation Quaternion[T], translation Vec3[T], ok bool) {
	translation = Vec3[T]{mt.M41, mt.M42, mt.M43}

	scale.X = Sqrt(mt.M11*mt.M11 + mt.M12*mt.M12 + mt.M13*mt.M13)
	scale.Y = Sqrt(mt.M21*mt.M21 + mt.M22*mt.M22 + mt.M23*mt.M23)
	scale.Z = Sqrt(mt.M31*mt.M31 + mt.M32*mt.M32 + mt.M33*mt.M33)

	det := mt.M11*(mt.M22*mt.M33-mt.M23*mt.M32) -
		mt.M12*(mt.M21*mt.M33-mt.M23*mt.M31) +
		mt.M13*(mt.M21*mt.M32-mt.M22*mt.M31)
	if det < 0 {
		scale.X = -scale.X
	}

	if scale.X == 0 || scale.Y == 0 || scale.Z == 0 {
		return scale, QuaternionIdentity[T](), translation, false
	}

	rm := Matrix[T]{
		mt.M11 / scale.X, mt.M12 / scale.X, mt.M13 / scale.X, 0,
		mt.M21 / scale.Y, mt.M22 / scale.Y, mt.M23 / scale.Y, 0,
		mt.M31 / scale.Z, mt.M32 / scale.Z, mt.M33 / scale.Z, 0,
		0, 0, 0, 1,
	}
	rotation = QuaternionFromRotationMatrix(rm)
	return scale, rotation, translation, true
}

// Lerp interpolates every element independently.
func (mt Matrix[T]) Lerp(other Matrix[T], amount T) Matrix[T] {
	a, b := mt.ToArray(), other.ToArray()
	for i := range a {
		a[i] = Lerp(a[i], b[i], amount)
	}
	return FromArray(a)
}

func (mt Matrix[T]) Equals(other Matrix[T]) bool {
	return mt == other
}

func (mt Matrix[T]) NearlyEqual(other Matrix[T], tolerance T) bool {
	a, b := mt.ToArray(), other.ToArray()
	for i := range a {
		if !NearlyEqual(a[i], b[i], tolerance) {
			return false
		}
	}
	return true
}

func (mt Matrix[T]) IsIdentity() bool {
	return mt == Identity[T]()
}

func (mt Matrix[T]) String() string {
	return fmt.Sprintf("{ {M11:%v M12:%v M13:%v M14:%v} {M21:%v M22:%v M23:%v M24:%v} {M31:%v M32:%v M33:%v M34:%v} {M41:%v M42:%v M43:%v M44:%v} }",
		mt.M11, mt.M12, mt.M13, mt.M14,
		mt.M21, mt.M22, mt.M23, mt.M24,
		mt.M31, mt.M32, mt.M33, mt.M34,
		mt.M41, mt.M42, mt.M43, mt.M44)
}

func ConvertMatrix[U, T Scalar](mt Matrix[T]) Matrix[U] {
	a := mt.ToArray()
	var b [16]U
	for i := range a {
		b[i] = U(a[i])
	}
	return FromArray(b)
}
