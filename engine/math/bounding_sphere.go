package math

import (
	"fmt"

	"github.com/spaghettifunk/spatial/engine/core"
)

func NewBoundingSphere[T Scalar](center Vec3[T], radius T) BoundingSphere[T] {
	return BoundingSphere[T]{Center: center, Radius: radius}
}

// BoundingSphereFromBox returns the sphere through the corners of box.
func BoundingSphereFromBox[T Scalar](box BoundingBox[T]) BoundingSphere[T] {
	center := box.Center()
	return BoundingSphere[T]{Center: center, Radius: center.Distance(box.Max)}
}

/**
 * @brief Builds an approximate bounding sphere (Ritter). The initial sphere
 * spans the most separated pair of axis-extreme points and is grown to
 * include any point left outside.
 */
func BoundingSphereFromPoints[T Scalar](points []Vec3[T]) (BoundingSphere[T], error) {
	if len(points) == 0 {
		return BoundingSphere[T]{}, fmt.Errorf("BoundingSphereFromPoints: no points: %w", core.ErrInvalidArgument)
	}

	minX, maxX := points[0], points[0]
	minY, maxY := points[0], points[0]
	minZ, maxZ := points[0], points[0]
	for _, p := range points[1:] {
		if p.X < minX.X {
			minX = p
		}
		if p.X > maxX.X {
			maxX = p
		}
		if p.Y < minY.Y {
			minY = p
		}
		if p.Y > maxY.Y {
			maxY = p
		}
		if p.Z < minZ.Z {
			minZ = p
		}
		if p.Z > maxZ.Z {
			maxZ = p
		}
	}

	sqDistX := maxX.DistanceSquared(minX)
	sqDistY := maxY.DistanceSquared(minY)
	sqDistZ := maxZ.DistanceSquared(minZ)

	min, max := minX, maxX
	if sqDistY > sqDistX && sqDistY > sqDistZ {
		min, max = minY, maxY
	}
	if sqDistZ > sqDistX && sqDistZ > sqDistY {
		min, max = minZ, maxZ
	}

	center := min.Add(max).MulScalar(0.5)
	radius := max.Distance(center)

	sqRadius := radius * radius
	for _, p := range points {
		diff := p.Sub(center)
		sqDist := diff.LengthSquared()
		if sqDist > sqRadius {
			distance := Sqrt(sqDist)
			direction := diff.DivScalar(distance)
			g := center.Sub(direction.MulScalar(radius))
			center = g.Add(p).MulScalar(0.5)
			radius = p.Distance(center)
			sqRadius = radius * radius
		}
	}

	return BoundingSphere[T]{Center: center, Radius: radius}, nil
}

// BoundingSphereFromFrustum bounds the eight frustum corners.
func BoundingSphereFromFrustum[T Scalar](frustum BoundingFrustum[T]) BoundingSphere[T] {
	corners := frustum.Corners()
	// Eight corners never hit the empty-input error.
	sphere, _ := BoundingSphereFromPoints(corners[:])
	return sphere
}

// BoundingSphereMerged returns the smallest sphere containing both spheres.
func BoundingSphereMerged[T Scalar](original, additional BoundingSphere[T]) BoundingSphere[T] {
	toAdditional := additional.Center.Sub(original.Center)
	distance := toAdditional.Length()

	if distance <= original.Radius+additional.Radius {
		if distance <= original.Radius-additional.Radius {
			return original
		}
		if distance <= additional.Radius-original.Radius {
			return additional
		}
	}

	leftRadius := Max(original.Radius-distance, additional.Radius)
	rightRadius := Max(original.Radius+distance, additional.Radius)
	toAdditional = toAdditional.Add(toAdditional.MulScalar((leftRadius - rightRadius) / (2 * distance)))

	return BoundingSphere[T]{
		Center: original.Center.Add(toAdditional),
		Radius: (leftRadius + rightRadius) * 0.5,
	}
}

// ContainsPoint reports Intersects for points exactly on the surface.
func (s BoundingSphere[T]) ContainsPoint(point Vec3[T]) ContainmentType {
	sqRadius := s.Radius * s.Radius
	sqDistance := point.DistanceSquared(s.Center)
	if sqDistance > sqRadius {
		return Disjoint
	}
	if sqDistance < sqRadius {
		return Contains
	}
	return Intersects
}

func (s BoundingSphere[T]) ContainsBox(box BoundingBox[T]) ContainmentType {
	inside := true
	for _, corner := range box.Corners() {
		if s.ContainsPoint(corner) == Disjoint {
			inside = false
			break
		}
	}
	if inside {
		return Contains
	}

	if box.closestPointDistanceSquared(s.Center) <= s.Radius*s.Radius {
		return Intersects
	}
	return Disjoint
}

func (s BoundingSphere[T]) ContainsSphere(sphere BoundingSphere[T]) ContainmentType {
	sqDistance := sphere.Center.DistanceSquared(s.Center)
	sum := sphere.Radius + s.Radius
	if sqDistance > sum*sum {
		return Disjoint
	}
	diff := s.Radius - sphere.Radius
	if diff >= 0 && sqDistance <= diff*diff {
		return Contains
	}
	return Intersects
}

// ContainsFrustum reports Contains when every frustum corner is inside the
// sphere; otherwise it defers to the frustum's classification of the sphere.
func (s BoundingSphere[T]) ContainsFrustum(frustum BoundingFrustum[T]) ContainmentType {
	for _, corner := range frustum.Corners() {
		if s.ContainsPoint(corner) == Disjoint {
			if frustum.ContainsSphere(s) == Disjoint {
				return Disjoint
			}
			return Intersects
		}
	}
	return Contains
}

func (s BoundingSphere[T]) IntersectsBox(box BoundingBox[T]) bool {
	return box.IntersectsSphere(s)
}

func (s BoundingSphere[T]) IntersectsSphere(sphere BoundingSphere[T]) bool {
	sqDistance := sphere.Center.DistanceSquared(s.Center)
	sum := sphere.Radius + s.Radius
	return !(sqDistance > sum*sum)
}

func (s BoundingSphere[T]) IntersectsFrustum(frustum BoundingFrustum[T]) bool {
	return frustum.IntersectsSphere(s)
}

func (s BoundingSphere[T]) IntersectsPlane(plane Plane[T]) PlaneIntersectionType {
	distance := plane.DotCoordinate(s.Center)
	if distance > s.Radius {
		return Front
	}
	if distance < -s.Radius {
		return Back
	}
	return Intersecting
}

func (s BoundingSphere[T]) IntersectsRay(ray Ray[T]) (T, bool) {
	return ray.IntersectsSphere(s)
}

// Transform moves the center by mt and scales the radius by the largest axis
// scale of mt.
func (s BoundingSphere[T]) Transform(mt Matrix[T]) BoundingSphere[T] {
	sx := mt.M11*mt.M11 + mt.M12*mt.M12 + mt.M13*mt.M13
	sy := mt.M21*mt.M21 + mt.M22*mt.M22 + mt.M23*mt.M23
	sz := mt.M31*mt.M31 + mt.M32*mt.M32 + mt.M33*mt.M33
	return BoundingSphere[T]{
		Center: s.Center.Transform(mt),
		Radius: s.Radius * Sqrt(Max(sx, Max(sy, sz))),
	}
}

// HasNaN reports whether the center or radius is NaN.
func (s BoundingSphere[T]) HasNaN() bool {
	return s.Center.HasNaN() || IsNaN(s.Radius)
}

func (s BoundingSphere[T]) Equals(other BoundingSphere[T]) bool {
	return s == other
}

func (s BoundingSphere[T]) String() string {
	return fmt.Sprintf("{Center:%v Radius:%v}", s.Center, s.Radius)
}

func ConvertBoundingSphere[U, T Scalar](s BoundingSphere[T]) BoundingSphere[U] {
	return BoundingSphere[U]{Center: ConvertVec3[U](s.Center), Radius: U(s.Radius)}
}
