package math

import (
	"fmt"

	"github.com/spaghettifunk/spatial/engine/core"
)

// PlaneCount is the number of planes bounding a frustum.
const PlaneCount = 6

const (
	planeNear = iota
	planeFar
	planeLeft
	planeRight
	planeTop
	planeBottom
)

/**
 * @brief A view frustum derived from a combined view-projection matrix.
 *
 * The six planes and eight corners are computed when the frustum is built and
 * always match the matrix it was built from. Plane normals point out of the
 * volume, so a point is inside when DotCoordinate is not positive for every
 * plane.
 *
 * A BoundingFrustum is a value. Use WithMatrix to derive a new one; Update
 * recomputes in place and is only safe when the caller owns the instance.
 */
type BoundingFrustum[T Scalar] struct {
	matrix  Matrix[T]
	planes  [PlaneCount]Plane[T]
	corners [CornerCount]Vec3[T]
}

func NewBoundingFrustum[T Scalar](mt Matrix[T]) BoundingFrustum[T] {
	var f BoundingFrustum[T]
	f.Update(mt)
	return f
}

// WithMatrix returns a new frustum for mt, leaving f untouched.
func (f BoundingFrustum[T]) WithMatrix(mt Matrix[T]) BoundingFrustum[T] {
	return NewBoundingFrustum(mt)
}

/**
 * @brief Replaces the matrix and recomputes the planes and corners in place.
 * Concurrent readers of the same instance must be synchronized by the caller.
 * @param mt The combined view-projection matrix.
 */
func (f *BoundingFrustum[T]) Update(mt Matrix[T]) {
	f.matrix = mt
	f.createPlanes()
	f.createCorners()
}

// createPlanes extracts the planes from the columns of the matrix
// (Gribb/Hartmann, row-vector convention).
func (f *BoundingFrustum[T]) createPlanes() {
	mt := f.matrix
	f.planes[planeNear] = NewPlaneFromComponents(-mt.M13, -mt.M23, -mt.M33, -mt.M43)
	f.planes[planeFar] = NewPlaneFromComponents(mt.M13-mt.M14, mt.M23-mt.M24, mt.M33-mt.M34, mt.M43-mt.M44)
	f.planes[planeLeft] = NewPlaneFromComponents(-mt.M14-mt.M11, -mt.M24-mt.M21, -mt.M34-mt.M31, -mt.M44-mt.M41)
	f.planes[planeRight] = NewPlaneFromComponents(mt.M11-mt.M14, mt.M21-mt.M24, mt.M31-mt.M34, mt.M41-mt.M44)
	f.planes[planeTop] = NewPlaneFromComponents(mt.M12-mt.M14, mt.M22-mt.M24, mt.M32-mt.M34, mt.M42-mt.M44)
	f.planes[planeBottom] = NewPlaneFromComponents(-mt.M14-mt.M12, -mt.M24-mt.M22, -mt.M34-mt.M32, -mt.M44-mt.M42)

	for i := range f.planes {
		f.planes[i] = f.planes[i].Normalize()
	}
}

func (f *BoundingFrustum[T]) createCorners() {
	p := &f.planes
	f.corners[0] = intersectionPoint(p[planeNear], p[planeLeft], p[planeTop])
	f.corners[1] = intersectionPoint(p[planeNear], p[planeRight], p[planeTop])
	f.corners[2] = intersectionPoint(p[planeNear], p[planeRight], p[planeBottom])
	f.corners[3] = intersectionPoint(p[planeNear], p[planeLeft], p[planeBottom])
	f.corners[4] = intersectionPoint(p[planeFar], p[planeLeft], p[planeTop])
	f.corners[5] = intersectionPoint(p[planeFar], p[planeRight], p[planeTop])
	f.corners[6] = intersectionPoint(p[planeFar], p[planeRight], p[planeBottom])
	f.corners[7] = intersectionPoint(p[planeFar], p[planeLeft], p[planeBottom])
}

func (f BoundingFrustum[T]) Matrix() Matrix[T] {
	return f.matrix
}

func (f BoundingFrustum[T]) Near() Plane[T] {
	return f.planes[planeNear]
}

func (f BoundingFrustum[T]) Far() Plane[T] {
	return f.planes[planeFar]
}

func (f BoundingFrustum[T]) Left() Plane[T] {
	return f.planes[planeLeft]
}

func (f BoundingFrustum[T]) Right() Plane[T] {
	return f.planes[planeRight]
}

func (f BoundingFrustum[T]) Top() Plane[T] {
	return f.planes[planeTop]
}

func (f BoundingFrustum[T]) Bottom() Plane[T] {
	return f.planes[planeBottom]
}

// Planes returns near, far, left, right, top and bottom in that order.
func (f BoundingFrustum[T]) Planes() [PlaneCount]Plane[T] {
	return f.planes
}

/**
 * @brief Returns the corners: the near face first (left-top, right-top,
 * right-bottom, left-bottom) followed by the far face in the same order.
 */
func (f BoundingFrustum[T]) Corners() [CornerCount]Vec3[T] {
	return f.corners
}

// CornersInto writes the corners into the first eight elements of buf.
func (f BoundingFrustum[T]) CornersInto(buf []Vec3[T]) error {
	if len(buf) < CornerCount {
		return fmt.Errorf("corner buffer has %d elements, need %d: %w", len(buf), CornerCount, core.ErrInvalidArgument)
	}
	copy(buf, f.corners[:])
	return nil
}

// ContainsPoint reports Disjoint when the point is in front of any plane.
// Points on the boundary count as contained.
func (f BoundingFrustum[T]) ContainsPoint(point Vec3[T]) ContainmentType {
	for i := range f.planes {
		if f.planes[i].ClassifyPoint(point) > 0 {
			return Disjoint
		}
	}
	return Contains
}

// ContainsBox tests the box against each plane in turn. A box outside the
// frustum near an edge, but not wholly in front of any one plane, reports
// Intersects.
func (f BoundingFrustum[T]) ContainsBox(box BoundingBox[T]) ContainmentType {
	intersects := false
	for i := range f.planes {
		switch box.IntersectsPlane(f.planes[i]) {
		case Front:
			return Disjoint
		case Intersecting:
			intersects = true
		}
	}
	if intersects {
		return Intersects
	}
	return Contains
}

func (f BoundingFrustum[T]) ContainsSphere(sphere BoundingSphere[T]) ContainmentType {
	intersects := false
	for i := range f.planes {
		switch sphere.IntersectsPlane(f.planes[i]) {
		case Front:
			return Disjoint
		case Intersecting:
			intersects = true
		}
	}
	if intersects {
		return Intersects
	}
	return Contains
}

// ContainsFrustum classifies the corners of frustum against each plane. An
// identical frustum is contained.
func (f BoundingFrustum[T]) ContainsFrustum(frustum BoundingFrustum[T]) ContainmentType {
	if f.Equals(frustum) {
		return Contains
	}
	intersects := false
	for i := range f.planes {
		switch frustum.IntersectsPlane(f.planes[i]) {
		case Front:
			return Disjoint
		case Intersecting:
			intersects = true
		}
	}
	if intersects {
		return Intersects
	}
	return Contains
}

func (f BoundingFrustum[T]) IntersectsBox(box BoundingBox[T]) bool {
	return f.ContainsBox(box) != Disjoint
}

func (f BoundingFrustum[T]) IntersectsSphere(sphere BoundingSphere[T]) bool {
	return f.ContainsSphere(sphere) != Disjoint
}

func (f BoundingFrustum[T]) IntersectsFrustum(frustum BoundingFrustum[T]) bool {
	return f.ContainsFrustum(frustum) != Disjoint
}

// IntersectsPlane reports Intersecting when the corners fall on both sides of
// plane.
func (f BoundingFrustum[T]) IntersectsPlane(plane Plane[T]) PlaneIntersectionType {
	result := plane.IntersectsPoint(f.corners[0])
	for i := 1; i < len(f.corners); i++ {
		if plane.IntersectsPoint(f.corners[i]) != result {
			return Intersecting
		}
	}
	return result
}

/**
 * @brief Intersects a ray with the frustum by clipping it against every plane.
 *
 * @return The distance to the entry point and true on a hit. A ray starting
 * inside the frustum reports distance 0.
 */
func (f BoundingFrustum[T]) IntersectsRay(ray Ray[T]) (T, bool) {
	if f.ContainsPoint(ray.Position) == Contains {
		return 0, true
	}

	var enter T
	exit := Inf[T](1)
	for i := range f.planes {
		den := f.planes[i].DotNormal(ray.Direction)
		dist := f.planes[i].DotCoordinate(ray.Position)
		if IsNaN(den) || IsNaN(dist) {
			// Undefined plane, e.g. the far plane of an infinite projection.
			continue
		}
		if Abs(den) < rayPlaneEpsilon {
			// Parallel to the plane and outside it.
			if dist > 0 {
				return 0, false
			}
			continue
		}
		t := -dist / den
		if den < 0 {
			enter = Max(enter, t)
		} else {
			exit = Min(exit, t)
		}
		if enter > exit {
			return 0, false
		}
	}
	return enter, true
}

// Equals compares the source matrices.
func (f BoundingFrustum[T]) Equals(other BoundingFrustum[T]) bool {
	return f.matrix == other.matrix
}

func (f BoundingFrustum[T]) String() string {
	return fmt.Sprintf("{Near:%v Far:%v Left:%v Right:%v Top:%v Bottom:%v}",
		f.planes[planeNear], f.planes[planeFar], f.planes[planeLeft],
		f.planes[planeRight], f.planes[planeTop], f.planes[planeBottom])
}
