package math

import "fmt"

// NewPlane creates a plane from a normal and distance. The normal is used as
// given; call Normalize if it is not unit length.
func NewPlane[T Scalar](normal Vec3[T], d T) Plane[T] {
	return Plane[T]{Normal: normal, D: d}
}

// NewPlaneFromComponents creates the plane a*x + b*y + c*z + d = 0.
func NewPlaneFromComponents[T Scalar](a, b, c, d T) Plane[T] {
	return Plane[T]{Normal: Vec3[T]{a, b, c}, D: d}
}

// NewPlaneFromVec4 uses xyz as the normal and w as D.
func NewPlaneFromVec4[T Scalar](v Vec4[T]) Plane[T] {
	return Plane[T]{Normal: Vec3[T]{v.X, v.Y, v.Z}, D: v.W}
}

// NewPlaneFromPoints creates the plane through a, b and c. The normal is
// normalize(cross(b-a, c-a)), so the points wind counter-clockwise when seen
// from the front.
func NewPlaneFromPoints[T Scalar](a, b, c Vec3[T]) Plane[T] {
	ab := b.Sub(a)
	ac := c.Sub(a)
	normal := ab.Cross(ac).Normalize()
	return Plane[T]{Normal: normal, D: -normal.Dot(a)}
}

// NewPlaneFromNormalAndPoint creates the plane with the given normal passing
// through point.
func NewPlaneFromNormalAndPoint[T Scalar](normal, point Vec3[T]) Plane[T] {
	return Plane[T]{Normal: normal, D: -normal.Dot(point)}
}

// Dot returns Normal·xyz + D*w.
func (p Plane[T]) Dot(v Vec4[T]) T {
	return p.Normal.X*v.X + p.Normal.Y*v.Y + p.Normal.Z*v.Z + p.D*v.W
}

// DotCoordinate returns the signed distance of point, scaled by |Normal|.
func (p Plane[T]) DotCoordinate(point Vec3[T]) T {
	return p.Normal.Dot(point) + p.D
}

func (p Plane[T]) DotNormal(v Vec3[T]) T {
	return p.Normal.Dot(v)
}

// ClassifyPoint is an alias of DotCoordinate: positive in front, negative
// behind.
func (p Plane[T]) ClassifyPoint(point Vec3[T]) T {
	return p.DotCoordinate(point)
}

// Normalize scales Normal to unit length and D by the same factor.
func (p Plane[T]) Normalize() Plane[T] {
	factor := 1 / p.Normal.Length()
	return Plane[T]{Normal: p.Normal.MulScalar(factor), D: p.D * factor}
}

// Transform moves the plane by mt, using the inverse transpose so the normal
// stays perpendicular under non-uniform scale.
func (p Plane[T]) Transform(mt Matrix[T]) Plane[T] {
	it := mt.Invert().Transpose()
	return NewPlaneFromVec4(p.Normal.ToVec4(p.D).Transform(it))
}

// TransformQuaternion rotates the normal; D is unchanged.
func (p Plane[T]) TransformQuaternion(q Quaternion[T]) Plane[T] {
	return Plane[T]{Normal: p.Normal.TransformQuaternion(q), D: p.D}
}

// IntersectsPoint classifies point by the sign of DotCoordinate. Only an
// exact zero is Intersecting.
func (p Plane[T]) IntersectsPoint(point Vec3[T]) PlaneIntersectionType {
	distance := p.DotCoordinate(point)
	if distance > 0 {
		return Front
	}
	if distance < 0 {
		return Back
	}
	return Intersecting
}

func (p Plane[T]) IntersectsBox(box BoundingBox[T]) PlaneIntersectionType {
	return box.IntersectsPlane(p)
}

func (p Plane[T]) IntersectsSphere(sphere BoundingSphere[T]) PlaneIntersectionType {
	return sphere.IntersectsPlane(p)
}

func (p Plane[T]) IntersectsFrustum(frustum BoundingFrustum[T]) PlaneIntersectionType {
	return frustum.IntersectsPlane(p)
}

func (p Plane[T]) Equals(other Plane[T]) bool {
	return p == other
}

func (p Plane[T]) NearlyEqual(other Plane[T], tolerance T) bool {
	return p.Normal.NearlyEqual(other.Normal, tolerance) && NearlyEqual(p.D, other.D, tolerance)
}

func (p Plane[T]) String() string {
	return fmt.Sprintf("{Normal:%v D:%v}", p.Normal, p.D)
}

func ConvertPlane[U, T Scalar](p Plane[T]) Plane[U] {
	return Plane[U]{Normal: ConvertVec3[U](p.Normal), D: U(p.D)}
}

// intersectionPoint returns the point shared by three planes.
func intersectionPoint[T Scalar](a, b, c Plane[T]) Vec3[T] {
	// P = -(d1 (N2 x N3) + d2 (N3 x N1) + d3 (N1 x N2)) / (N1 . (N2 x N3))
	bc := b.Normal.Cross(c.Normal)
	f := -a.Normal.Dot(bc)

	v1 := bc.MulScalar(a.D)
	v2 := c.Normal.Cross(a.Normal).MulScalar(b.D)
	v3 := a.Normal.Cross(b.Normal).MulScalar(c.D)

	return v1.Add(v2).Add(v3).DivScalar(f)
}
