package math

import (
	"golang.org/x/exp/rand"
)

// NewRandomSource returns a deterministic generator for the given seed.
func NewRandomSource(seed uint64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

// RandomInRange returns a uniformly distributed value in [min, max).
func RandomInRange[T Scalar](r *rand.Rand, min, max T) T {
	return min + T(r.Float64())*(max-min)
}

// RandomVec3InRange returns a vector whose components are each drawn from
// [min, max).
func RandomVec3InRange[T Scalar](r *rand.Rand, min, max T) Vec3[T] {
	return Vec3[T]{
		X: RandomInRange(r, min, max),
		Y: RandomInRange(r, min, max),
		Z: RandomInRange(r, min, max),
	}
}

// RandomUnitVec3 returns a random direction. It retries until the sample is
// long enough to normalize safely.
func RandomUnitVec3[T Scalar](r *rand.Rand) Vec3[T] {
	for {
		v := RandomVec3InRange[T](r, -1, 1)
		lsq := v.LengthSquared()
		if lsq > 1e-4 && lsq <= 1 {
			return v.Normalize()
		}
	}
}
