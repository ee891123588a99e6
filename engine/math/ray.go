package math

import "fmt"

const (
	// rayParallelEpsilon is the direction component below which a slab is
	// treated as parallel to the ray.
	rayParallelEpsilon = 1e-6
	// rayPlaneEpsilon bounds both the parallel test and the tolerance for
	// hits just behind the origin in IntersectsPlane.
	rayPlaneEpsilon = 1e-5
)

func NewRay[T Scalar](position, direction Vec3[T]) Ray[T] {
	return Ray[T]{Position: position, Direction: direction}
}

// PointAt returns Position + Direction*distance.
func (r Ray[T]) PointAt(distance T) Vec3[T] {
	return r.Position.Add(r.Direction.MulScalar(distance))
}

/**
 * @brief Intersects the ray with an axis-aligned box using the slab method.
 *
 * @return The distance to the entry point and true on a hit. A ray that
 * starts inside the box reports distance 0. Boxes behind the origin and
 * empty slab intervals report false.
 */
func (r Ray[T]) IntersectsBox(box BoundingBox[T]) (T, bool) {
	var tMin, tMax T
	hasMin, hasMax := false, false

	if Abs(r.Direction.X) < rayParallelEpsilon {
		if r.Position.X < box.Min.X || r.Position.X > box.Max.X {
			return 0, false
		}
	} else {
		tMin = (box.Min.X - r.Position.X) / r.Direction.X
		tMax = (box.Max.X - r.Position.X) / r.Direction.X
		if tMin > tMax {
			tMin, tMax = tMax, tMin
		}
		hasMin, hasMax = true, true
	}

	if Abs(r.Direction.Y) < rayParallelEpsilon {
		if r.Position.Y < box.Min.Y || r.Position.Y > box.Max.Y {
			return 0, false
		}
	} else {
		tMinY := (box.Min.Y - r.Position.Y) / r.Direction.Y
		tMaxY := (box.Max.Y - r.Position.Y) / r.Direction.Y
		if tMinY > tMaxY {
			tMinY, tMaxY = tMaxY, tMinY
		}
		if (hasMin && tMin > tMaxY) || (hasMax && tMinY > tMax) {
			return 0, false
		}
		if !hasMin || tMinY > tMin {
			tMin, hasMin = tMinY, true
		}
		if !hasMax || tMaxY < tMax {
			tMax, hasMax = tMaxY, true
		}
	}

	if Abs(r.Direction.Z) < rayParallelEpsilon {
		if r.Position.Z < box.Min.Z || r.Position.Z > box.Max.Z {
			return 0, false
		}
	} else {
		tMinZ := (box.Min.Z - r.Position.Z) / r.Direction.Z
		tMaxZ := (box.Max.Z - r.Position.Z) / r.Direction.Z
		if tMinZ > tMaxZ {
			tMinZ, tMaxZ = tMaxZ, tMinZ
		}
		if (hasMin && tMin > tMaxZ) || (hasMax && tMinZ > tMax) {
			return 0, false
		}
		if !hasMin || tMinZ > tMin {
			tMin, hasMin = tMinZ, true
		}
		if !hasMax || tMaxZ < tMax {
			tMax, hasMax = tMaxZ, true
		}
	}

	// Origin inside the box.
	if hasMin && tMin < 0 && hasMax && tMax > 0 {
		return 0, true
	}
	// Entry point behind the origin.
	if !hasMin || tMin < 0 {
		return 0, false
	}
	return tMin, true
}

/**
 * @brief Intersects the ray with a sphere.
 *
 * @return The distance to the first hit and true. A ray that starts inside
 * the sphere reports 0. A ray pointing away from the center, or one that
 * passes outside the radius, reports false.
 */
func (r Ray[T]) IntersectsSphere(sphere BoundingSphere[T]) (T, bool) {
	difference := sphere.Center.Sub(r.Position)
	differenceLengthSquared := difference.LengthSquared()
	sphereRadiusSquared := sphere.Radius * sphere.Radius

	if differenceLengthSquared < sphereRadiusSquared {
		return 0, true
	}

	directionLengthSquared := r.Direction.LengthSquared()
	distanceAlongRay := r.Direction.Dot(difference)
	if directionLengthSquared == 0 || distanceAlongRay < 0 {
		return 0, false
	}

	// Roots of |Position + t*Direction - Center|^2 = radius^2, scaled by
	// |Direction|^2 so t stays in units of the direction's length.
	discriminant := distanceAlongRay*distanceAlongRay - directionLengthSquared*(differenceLengthSquared-sphereRadiusSquared)
	if discriminant < 0 {
		return 0, false
	}
	return (distanceAlongRay - Sqrt(discriminant)) / directionLengthSquared, true
}

/**
 * @brief Intersects the ray with a plane.
 *
 * @return The distance along the ray and true. Rays nearly parallel to the
 * plane report false. A hit up to rayPlaneEpsilon behind the origin is
 * snapped to 0.
 */
func (r Ray[T]) IntersectsPlane(plane Plane[T]) (T, bool) {
	den := r.Direction.Dot(plane.Normal)
	if Abs(den) < rayPlaneEpsilon {
		return 0, false
	}

	result := (-plane.D - plane.Normal.Dot(r.Position)) / den
	if result < 0 {
		if result < -rayPlaneEpsilon {
			return 0, false
		}
		result = 0
	}
	return result, true
}

func (r Ray[T]) IntersectsFrustum(frustum BoundingFrustum[T]) (T, bool) {
	return frustum.IntersectsRay(r)
}

func (r Ray[T]) Equals(other Ray[T]) bool {
	return r == other
}

func (r Ray[T]) String() string {
	return fmt.Sprintf("{Position:%v Direction:%v}", r.Position, r.Direction)
}
