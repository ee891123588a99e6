package math

import (
	"fmt"

	"github.com/spaghettifunk/spatial/engine/core"
)

// CornerCount is the number of corners of a box or frustum.
const CornerCount = 8

func NewBoundingBox[T Scalar](min, max Vec3[T]) BoundingBox[T] {
	return BoundingBox[T]{Min: min, Max: max}
}

// BoundingBoxFromPoints returns the smallest box containing every point.
// An empty slice is rejected with ErrInvalidArgument.
func BoundingBoxFromPoints[T Scalar](points []Vec3[T]) (BoundingBox[T], error) {
	if len(points) == 0 {
		return BoundingBox[T]{}, fmt.Errorf("BoundingBoxFromPoints: no points: %w", core.ErrInvalidArgument)
	}
	min := SplatVec3(Inf[T](1))
	max := SplatVec3(Inf[T](-1))
	for _, p := range points {
		min = min.Min(p)
		max = max.Max(p)
	}
	return BoundingBox[T]{Min: min, Max: max}, nil
}

// BoundingBoxFromSphere returns the box that tightly encloses sphere.
func BoundingBoxFromSphere[T Scalar](sphere BoundingSphere[T]) BoundingBox[T] {
	r := SplatVec3(sphere.Radius)
	return BoundingBox[T]{
		Min: sphere.Center.Sub(r),
		Max: sphere.Center.Add(r),
	}
}

// BoundingBoxMerged returns the smallest box containing both boxes.
func BoundingBoxMerged[T Scalar](original, additional BoundingBox[T]) BoundingBox[T] {
	return BoundingBox[T]{
		Min: original.Min.Min(additional.Min),
		Max: original.Max.Max(additional.Max),
	}
}

func (b BoundingBox[T]) Center() Vec3[T] {
	return b.Min.Add(b.Max).MulScalar(0.5)
}

// Extents returns the half size along each axis.
func (b BoundingBox[T]) Extents() Vec3[T] {
	return b.Max.Sub(b.Min).MulScalar(0.5)
}

/**
 * @brief Returns the eight corners. The first four lie on the Max.Z face,
 * the last four on the Min.Z face; each face starts at (Min.X, Max.Y) and
 * winds clockwise when seen from +Z.
 */
func (b BoundingBox[T]) Corners() [CornerCount]Vec3[T] {
	return [CornerCount]Vec3[T]{
		{b.Min.X, b.Max.Y, b.Max.Z},
		{b.Max.X, b.Max.Y, b.Max.Z},
		{b.Max.X, b.Min.Y, b.Max.Z},
		{b.Min.X, b.Min.Y, b.Max.Z},
		{b.Min.X, b.Max.Y, b.Min.Z},
		{b.Max.X, b.Max.Y, b.Min.Z},
		{b.Max.X, b.Min.Y, b.Min.Z},
		{b.Min.X, b.Min.Y, b.Min.Z},
	}
}

// CornersInto writes the corners into the first eight elements of buf.
func (b BoundingBox[T]) CornersInto(buf []Vec3[T]) error {
	if len(buf) < CornerCount {
		return fmt.Errorf("corner buffer has %d elements, need %d: %w", len(buf), CornerCount, core.ErrInvalidArgument)
	}
	corners := b.Corners()
	copy(buf, corners[:])
	return nil
}

// ContainsPoint reports Intersects for points lying exactly on a face.
func (b BoundingBox[T]) ContainsPoint(point Vec3[T]) ContainmentType {
	if point.X < b.Min.X || point.X > b.Max.X ||
		point.Y < b.Min.Y || point.Y > b.Max.Y ||
		point.Z < b.Min.Z || point.Z > b.Max.Z {
		return Disjoint
	}
	if point.X == b.Min.X || point.X == b.Max.X ||
		point.Y == b.Min.Y || point.Y == b.Max.Y ||
		point.Z == b.Min.Z || point.Z == b.Max.Z {
		return Intersects
	}
	return Contains
}

func (b BoundingBox[T]) ContainsBox(box BoundingBox[T]) ContainmentType {
	if box.Max.X < b.Min.X || box.Min.X > b.Max.X ||
		box.Max.Y < b.Min.Y || box.Min.Y > b.Max.Y ||
		box.Max.Z < b.Min.Z || box.Min.Z > b.Max.Z {
		return Disjoint
	}
	if box.Min.X >= b.Min.X && box.Max.X <= b.Max.X &&
		box.Min.Y >= b.Min.Y && box.Max.Y <= b.Max.Y &&
		box.Min.Z >= b.Min.Z && box.Max.Z <= b.Max.Z {
		return Contains
	}
	return Intersects
}

func (b BoundingBox[T]) ContainsSphere(sphere BoundingSphere[T]) ContainmentType {
	c := sphere.Center
	r := sphere.Radius
	if c.X-b.Min.X >= r && c.Y-b.Min.Y >= r && c.Z-b.Min.Z >= r &&
		b.Max.X-c.X >= r && b.Max.Y-c.Y >= r && b.Max.Z-c.Z >= r {
		return Contains
	}

	var dmin T
	axes := [3][3]T{
		{c.X, b.Min.X, b.Max.X},
		{c.Y, b.Min.Y, b.Max.Y},
		{c.Z, b.Min.Z, b.Max.Z},
	}
	for _, a := range axes {
		e := a[0] - a[1]
		if e < 0 {
			if e < -r {
				return Disjoint
			}
			dmin += e * e
			continue
		}
		e = a[0] - a[2]
		if e > 0 {
			if e > r {
				return Disjoint
			}
			dmin += e * e
		}
	}

	if dmin <= r*r {
		return Intersects
	}
	return Disjoint
}

/**
 * @brief Classifies frustum against the box by walking the frustum corners.
 *
 * NOTE: this is an approximation, not a separating-axis test. It reports
 * Contains when every corner is inside the box. If the first corner is
 * outside, any later corner that is not strictly inside yields Intersects,
 * so a frustum lying fully outside the box is reported as Intersects.
 */
func (b BoundingBox[T]) ContainsFrustum(frustum BoundingFrustum[T]) ContainmentType {
	corners := frustum.Corners()

	i := 0
	for ; i < len(corners); i++ {
		if b.ContainsPoint(corners[i]) == Disjoint {
			break
		}
	}
	if i == len(corners) {
		return Contains
	}
	if i != 0 {
		return Intersects
	}

	i++
	for ; i < len(corners); i++ {
		if b.ContainsPoint(corners[i]) != Contains {
			return Intersects
		}
	}
	return Contains
}

func (b BoundingBox[T]) IntersectsBox(box BoundingBox[T]) bool {
	if b.Max.X >= box.Min.X && b.Min.X <= box.Max.X {
		if b.Max.Y < box.Min.Y || b.Min.Y > box.Max.Y {
			return false
		}
		return b.Max.Z >= box.Min.Z && b.Min.Z <= box.Max.Z
	}
	return false
}

// IntersectsSphere compares the squared distance from the sphere center to
// the closest point of the box with the squared radius.
func (b BoundingBox[T]) IntersectsSphere(sphere BoundingSphere[T]) bool {
	return b.closestPointDistanceSquared(sphere.Center) <= sphere.Radius*sphere.Radius
}

func (b BoundingBox[T]) closestPointDistanceSquared(point Vec3[T]) T {
	var d T
	if point.X < b.Min.X {
		d += (b.Min.X - point.X) * (b.Min.X - point.X)
	} else if point.X > b.Max.X {
		d += (point.X - b.Max.X) * (point.X - b.Max.X)
	}
	if point.Y < b.Min.Y {
		d += (b.Min.Y - point.Y) * (b.Min.Y - point.Y)
	} else if point.Y > b.Max.Y {
		d += (point.Y - b.Max.Y) * (point.Y - b.Max.Y)
	}
	if point.Z < b.Min.Z {
		d += (b.Min.Z - point.Z) * (b.Min.Z - point.Z)
	} else if point.Z > b.Max.Z {
		d += (point.Z - b.Max.Z) * (point.Z - b.Max.Z)
	}
	return d
}

func (b BoundingBox[T]) IntersectsFrustum(frustum BoundingFrustum[T]) bool {
	return frustum.IntersectsBox(b)
}

/**
 * @brief Classifies the box against plane using the corner nearest to and
 * farthest along the plane normal.
 */
func (b BoundingBox[T]) IntersectsPlane(plane Plane[T]) PlaneIntersectionType {
	var positive, negative Vec3[T]

	if plane.Normal.X >= 0 {
		positive.X, negative.X = b.Max.X, b.Min.X
	} else {
		positive.X, negative.X = b.Min.X, b.Max.X
	}
	if plane.Normal.Y >= 0 {
		positive.Y, negative.Y = b.Max.Y, b.Min.Y
	} else {
		positive.Y, negative.Y = b.Min.Y, b.Max.Y
	}
	if plane.Normal.Z >= 0 {
		positive.Z, negative.Z = b.Max.Z, b.Min.Z
	} else {
		positive.Z, negative.Z = b.Min.Z, b.Max.Z
	}

	if plane.DotCoordinate(negative) > 0 {
		return Front
	}
	if plane.DotCoordinate(positive) < 0 {
		return Back
	}
	return Intersecting
}

func (b BoundingBox[T]) IntersectsRay(ray Ray[T]) (T, bool) {
	return ray.IntersectsBox(b)
}

// Transform returns the axis-aligned box enclosing the eight transformed
// corners.
func (b BoundingBox[T]) Transform(mt Matrix[T]) BoundingBox[T] {
	corners := b.Corners()
	min := corners[0].Transform(mt)
	max := min
	for _, c := range corners[1:] {
		p := c.Transform(mt)
		min = min.Min(p)
		max = max.Max(p)
	}
	return BoundingBox[T]{Min: min, Max: max}
}

// HasNaN reports whether any component is NaN.
func (b BoundingBox[T]) HasNaN() bool {
	return b.Min.HasNaN() || b.Max.HasNaN()
}

func (b BoundingBox[T]) Equals(other BoundingBox[T]) bool {
	return b == other
}

func (b BoundingBox[T]) String() string {
	return fmt.Sprintf("{Min:%v Max:%v}", b.Min, b.Max)
}

func ConvertBoundingBox[U, T Scalar](b BoundingBox[T]) BoundingBox[U] {
	return BoundingBox[U]{Min: ConvertVec3[U](b.Min), Max: ConvertVec3[U](b.Max)}
}
