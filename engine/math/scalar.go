package math

import (
	m "math"

	"golang.org/x/exp/constraints"
)

// Scalar is the floating-point type every kernel type is parameterized over.
type Scalar interface {
	constraints.Float
}

const (
	/** @brief An approximate representation of PI. */
	Pi = 3.14159265358979323846
	/** @brief PI multiplied by 2. */
	TwoPi = 2.0 * Pi
	/** @brief PI divided by 2. */
	PiOver2 = 0.5 * Pi
	/** @brief PI divided by 4. */
	PiOver4 = 0.25 * Pi
	/** @brief Euler's number. */
	E = 2.71828182845904523536
	/** @brief Base 10 logarithm of E. */
	Log10E = 0.43429448190325182765
	/** @brief Base 2 logarithm of E. */
	Log2E = 1.44269504088896340736
	/** @brief A multiplier used to convert degrees to radians. */
	Deg2Rad = Pi / 180.0
	/** @brief A multiplier used to convert radians to degrees. */
	Rad2Deg = 180.0 / Pi
	/** @brief Smallest positive number where 1.0 + FloatEpsilon != 1.0 for float32 */
	FloatEpsilon = 1.192092896e-07
)

// The transcendental helpers go through float64. For float32 the result is the
// correctly rounded narrowing of the float64 value.

func Sqrt[T Scalar](x T) T {
	return T(m.Sqrt(float64(x)))
}

func Sin[T Scalar](x T) T {
	return T(m.Sin(float64(x)))
}

func Cos[T Scalar](x T) T {
	return T(m.Cos(float64(x)))
}

func Tan[T Scalar](x T) T {
	return T(m.Tan(float64(x)))
}

func Asin[T Scalar](x T) T {
	return T(m.Asin(float64(x)))
}

func Acos[T Scalar](x T) T {
	return T(m.Acos(float64(x)))
}

func Atan2[T Scalar](y, x T) T {
	return T(m.Atan2(float64(y), float64(x)))
}

func Abs[T Scalar](x T) T {
	return T(m.Abs(float64(x)))
}

func Floor[T Scalar](x T) T {
	return T(m.Floor(float64(x)))
}

func Ceil[T Scalar](x T) T {
	return T(m.Ceil(float64(x)))
}

// Round rounds half to even.
func Round[T Scalar](x T) T {
	return T(m.RoundToEven(float64(x)))
}

func Copysign[T Scalar](magnitude, sign T) T {
	return T(m.Copysign(float64(magnitude), float64(sign)))
}

func IsNaN[T Scalar](x T) bool {
	return x != x
}

// IsInf reports whether x is an infinity, according to sign (see math.IsInf).
func IsInf[T Scalar](x T, sign int) bool {
	return m.IsInf(float64(x), sign)
}

func Inf[T Scalar](sign int) T {
	return T(m.Inf(sign))
}

func NaN[T Scalar]() T {
	return T(m.NaN())
}

// Clamp returns the value `f` clamped to the range [low, high].
// It works for any numeric type (integers and floats).
func Clamp[T constraints.Ordered](f, low, high T) T {
	if f < low {
		return low
	}
	if f > high {
		return high
	}
	return f
}

func Min[T constraints.Ordered](a, b T) T {
	if a < b {
		return a
	}
	return b
}

func Max[T constraints.Ordered](a, b T) T {
	if a > b {
		return a
	}
	return b
}

// Distance returns the absolute difference between two values.
func Distance[T Scalar](value1, value2 T) T {
	return Abs(value1 - value2)
}

/**
 * @brief Linearly interpolates between two values. Less precise than
 * LerpPrecise when value1 and value2 differ by orders of magnitude.
 */
func Lerp[T Scalar](value1, value2, amount T) T {
	return value1 + (value2-value1)*amount
}

/**
 * @brief Linearly interpolates between two values, returning exactly value2
 * when amount is 1.
 */
func LerpPrecise[T Scalar](value1, value2, amount T) T {
	return (1-amount)*value1 + value2*amount
}

/**
 * @brief Performs a Hermite spline interpolation.
 *
 * @param value1 Source position.
 * @param tangent1 Source tangent.
 * @param value2 Target position.
 * @param tangent2 Target tangent.
 * @param amount Weighting factor.
 * @return The interpolated value. Exactly value1 at 0 and value2 at 1.
 */
func Hermite[T Scalar](value1, tangent1, value2, tangent2, amount T) T {
	if amount == 0 {
		return value1
	}
	if amount == 1 {
		return value2
	}
	s := amount
	sSquared := s * s
	sCubed := sSquared * s
	return (2*value1-2*value2+tangent2+tangent1)*sCubed +
		(3*value2-3*value1-2*tangent1-tangent2)*sSquared +
		tangent1*s +
		value1
}

// CatmullRom interpolates between value2 and value3 using value1 and value4 as
// the outer control points.
func CatmullRom[T Scalar](value1, value2, value3, value4, amount T) T {
	amountSquared := amount * amount
	amountCubed := amountSquared * amount
	return 0.5 * (2*value2 +
		(value3-value1)*amount +
		(2*value1-5*value2+4*value3-value4)*amountSquared +
		(3*value2-value1-3*value3+value4)*amountCubed)
}

// SmoothStep clamps amount to [0, 1] and evaluates a Hermite curve with zero
// tangents between value1 and value2.
func SmoothStep[T Scalar](value1, value2, amount T) T {
	result := Clamp(amount, 0, 1)
	return Hermite(value1, 0, value2, 0, result)
}

// Barycentric returns the coordinate along one axis of a point defined by the
// normalized barycentric coordinates amount1 and amount2 of a triangle.
func Barycentric[T Scalar](value1, value2, value3, amount1, amount2 T) T {
	return value1 + (value2-value1)*amount1 + (value3-value1)*amount2
}

/**
 * @brief Converts provided degrees to radians.
 */
func ToRadians[T Scalar](degrees T) T {
	return degrees * Deg2Rad
}

/**
 * @brief Converts provided radians to degrees.
 */
func ToDegrees[T Scalar](radians T) T {
	return radians * Rad2Deg
}

// WrapAngle reduces angle into the range (-Pi, Pi].
func WrapAngle[T Scalar](angle T) T {
	if angle > -Pi && angle <= Pi {
		return angle
	}
	angle = T(m.Mod(float64(angle), TwoPi))
	if angle <= -Pi {
		return angle + TwoPi
	}
	if angle > Pi {
		return angle - TwoPi
	}
	return angle
}

func IsPowerOfTwo(value int) bool {
	return value > 0 && value&(value-1) == 0
}

// NearlyEqual reports whether a and b differ by at most tolerance.
func NearlyEqual[T Scalar](a, b, tolerance T) bool {
	return Abs(a-b) <= tolerance
}
