package math

import (
	"errors"
	"testing"

	"github.com/spaghettifunk/spatial/engine/core"
)

// testFrustum looks down -Z from the origin with a 90 degree field of view,
// so the side planes are the diagonals x = ±z and y = ±z.
func testFrustum(t *testing.T, far float64) BoundingFrustum[float64] {
	t.Helper()
	projection, err := CreatePerspectiveFieldOfView(PiOver2, 1.0, 1.0, far)
	if err != nil {
		t.Fatalf("CreatePerspectiveFieldOfView: unexpected error %v", err)
	}
	return NewBoundingFrustum(projection)
}

func TestFrustumPlanes(t *testing.T) {
	f := testFrustum(t, 100)

	for i, p := range f.Planes() {
		if !NearlyEqual(p.Normal.Length(), 1, 1e-9) {
			t.Errorf("plane %d: expected unit normal, got %v", i, p.Normal)
		}
	}

	expected := []struct {
		name  string
		got   Plane[float64]
		plane Plane[float64]
	}{
		{"near", f.Near(), NewPlane(Vec3UnitZ[float64](), 1)},
		{"far", f.Far(), NewPlane(NewVec3(0.0, 0.0, -1.0), -100)},
		{"left", f.Left(), NewPlane(NewVec3(-1.0, 0.0, 1.0).Normalize(), 0)},
		{"right", f.Right(), NewPlane(NewVec3(1.0, 0.0, 1.0).Normalize(), 0)},
		{"top", f.Top(), NewPlane(NewVec3(0.0, 1.0, 1.0).Normalize(), 0)},
		{"bottom", f.Bottom(), NewPlane(NewVec3(0.0, -1.0, 1.0).Normalize(), 0)},
	}
	for _, e := range expected {
		if !e.got.NearlyEqual(e.plane, 1e-9) {
			t.Errorf("%s plane: expected %v, got %v", e.name, e.plane, e.got)
		}
	}
}

func TestFrustumCorners(t *testing.T) {
	f := testFrustum(t, 100)
	expected := [CornerCount]Vec3[float64]{
		{-1, 1, -1}, {1, 1, -1}, {1, -1, -1}, {-1, -1, -1},
		{-100, 100, -100}, {100, 100, -100}, {100, -100, -100}, {-100, -100, -100},
	}
	corners := f.Corners()
	for i := range corners {
		if corners[i].HasNaN() || IsInf(corners[i].X, 0) || IsInf(corners[i].Y, 0) || IsInf(corners[i].Z, 0) {
			t.Errorf("corner %d: expected a finite point, got %v", i, corners[i])
		}
		if !corners[i].NearlyEqual(expected[i], 1e-6) {
			t.Errorf("corner %d: expected %v, got %v", i, expected[i], corners[i])
		}
	}

	buf := make([]Vec3[float64], 10)
	if err := f.CornersInto(buf); err != nil {
		t.Fatalf("CornersInto: unexpected error %v", err)
	}
	if buf[5] != corners[5] {
		t.Errorf("CornersInto: expected %v, got %v", corners[5], buf[5])
	}
	if err := f.CornersInto(buf[:3]); !errors.Is(err, core.ErrInvalidArgument) {
		t.Errorf("CornersInto short buffer: expected ErrInvalidArgument, got %v", err)
	}
}

// Scaling the view-projection matrix must not change the planes.
func TestFrustumNormalization(t *testing.T) {
	projection, err := CreatePerspectiveFieldOfView(1.2, 1.6, 0.5, 250.0)
	if err != nil {
		t.Fatalf("CreatePerspectiveFieldOfView: unexpected error %v", err)
	}
	view := CreateLookAt(NewVec3(3.0, 4.0, 5.0), Vec3Zero[float64](), Vec3Up[float64]())
	mt := view.Mul(projection)

	a := NewBoundingFrustum(mt)
	b := NewBoundingFrustum(mt.MulScalar(7))
	pa, pb := a.Planes(), b.Planes()
	for i := range pa {
		if !pa[i].NearlyEqual(pb[i], 1e-9) {
			t.Errorf("plane %d: expected %v, got %v", i, pa[i], pb[i])
		}
	}
}

func TestFrustumContainsPoint(t *testing.T) {
	f := testFrustum(t, 100)
	cases := []struct {
		point    Vec3[float64]
		expected ContainmentType
	}{
		{NewVec3(0.0, 0.0, -5.0), Contains},
		{NewVec3(0.0, 0.0, 5.0), Disjoint},
		{NewVec3(0.0, 0.0, -0.5), Disjoint},
		{NewVec3(0.0, 0.0, -101.0), Disjoint},
		{NewVec3(-10.0, 0.0, -5.0), Disjoint},
		{NewVec3(0.0, 4.0, -5.0), Contains},
	}
	for _, c := range cases {
		if got := f.ContainsPoint(c.point); got != c.expected {
			t.Errorf("ContainsPoint(%v): expected %v, got %v", c.point, c.expected, got)
		}
	}
}

func TestFrustumContainsVolumes(t *testing.T) {
	f := testFrustum(t, 100)

	inside := NewBoundingBox(NewVec3(-1.0, -1.0, -6.0), NewVec3(1.0, 1.0, -4.0))
	if got := f.ContainsBox(inside); got != Contains {
		t.Errorf("ContainsBox inside: expected Contains, got %v", got)
	}
	straddling := NewBoundingBox(NewVec3(-0.5, -0.5, -2.0), NewVec3(0.5, 0.5, 0.0))
	if got := f.ContainsBox(straddling); got != Intersects {
		t.Errorf("ContainsBox straddling: expected Intersects, got %v", got)
	}
	behind := NewBoundingBox(NewVec3(-1.0, -1.0, 5.0), NewVec3(1.0, 1.0, 6.0))
	if got := f.ContainsBox(behind); got != Disjoint {
		t.Errorf("ContainsBox behind: expected Disjoint, got %v", got)
	}
	if f.IntersectsBox(behind) || !f.IntersectsBox(straddling) {
		t.Errorf("IntersectsBox: expected false for %v and true for %v", behind, straddling)
	}
	if behind.IntersectsFrustum(f) {
		t.Errorf("box.IntersectsFrustum: expected false for %v", behind)
	}

	cases := []struct {
		sphere   BoundingSphere[float64]
		expected ContainmentType
	}{
		{NewBoundingSphere(NewVec3(0.0, 0.0, -50.0), 1), Contains},
		{NewBoundingSphere(NewVec3(0.0, 0.0, -1.0), 0.5), Intersects},
		{NewBoundingSphere(Vec3Zero[float64](), 0.5), Disjoint},
		{NewBoundingSphere(NewVec3(0.0, 0.0, -200.0), 5), Disjoint},
	}
	for _, c := range cases {
		if got := f.ContainsSphere(c.sphere); got != c.expected {
			t.Errorf("ContainsSphere(%v): expected %v, got %v", c.sphere, c.expected, got)
		}
		if got := c.sphere.IntersectsFrustum(f); got != (c.expected != Disjoint) {
			t.Errorf("sphere.IntersectsFrustum(%v): expected %v, got %v", c.sphere, c.expected != Disjoint, got)
		}
	}
}

// Any volume containment reports is also reported by intersection.
func TestFrustumContainmentConsistency(t *testing.T) {
	f := testFrustum(t, 100)
	r := NewRandomSource(2024)
	for i := 0; i < 300; i++ {
		center := RandomVec3InRange(r, -120.0, 120.0)
		radius := RandomInRange(r, 0.1, 10.0)
		sphere := NewBoundingSphere(center, radius)
		box := BoundingBoxFromSphere(sphere)

		if (f.ContainsSphere(sphere) != Disjoint) != f.IntersectsSphere(sphere) {
			t.Errorf("sphere %v: ContainsSphere and IntersectsSphere disagree", sphere)
		}
		if (f.ContainsBox(box) != Disjoint) != f.IntersectsBox(box) {
			t.Errorf("box %v: ContainsBox and IntersectsBox disagree", box)
		}
		// The box encloses the sphere, so it can never be rejected when the
		// sphere is not.
		if f.IntersectsSphere(sphere) && !f.IntersectsBox(box) {
			t.Errorf("box %v rejected while its inscribed sphere is visible", box)
		}
		if f.ContainsPoint(center) == Contains && !f.IntersectsSphere(sphere) {
			t.Errorf("sphere %v rejected while its center is inside", sphere)
		}
	}
}

func TestFrustumInfiniteFar(t *testing.T) {
	f := testFrustum(t, Inf[float64](1))

	// Distant objects are never rejected by the far plane.
	distant := NewBoundingSphere(NewVec3(0.0, 0.0, -1e6), 1)
	if !f.IntersectsSphere(distant) {
		t.Errorf("IntersectsSphere: expected distant sphere to pass the infinite far plane")
	}
	distantBox := NewBoundingBox(NewVec3(-1.0, -1.0, -1e6), NewVec3(1.0, 1.0, -1e6+2))
	if !f.IntersectsBox(distantBox) {
		t.Errorf("IntersectsBox: expected distant box to pass the infinite far plane")
	}

	// The other planes still cull.
	behind := NewBoundingSphere(NewVec3(0.0, 0.0, 10.0), 1)
	if f.IntersectsSphere(behind) {
		t.Errorf("IntersectsSphere: expected sphere behind the camera to be rejected")
	}
	side := NewBoundingSphere(NewVec3(-50.0, 0.0, -5.0), 1)
	if f.IntersectsSphere(side) {
		t.Errorf("IntersectsSphere: expected sphere left of the frustum to be rejected")
	}
}

func TestFrustumFrustum(t *testing.T) {
	f := testFrustum(t, 100)
	if got := f.ContainsFrustum(f); got != Contains {
		t.Errorf("ContainsFrustum self: expected Contains, got %v", got)
	}
	if !f.Equals(testFrustum(t, 100)) {
		t.Errorf("Equals: expected identical frustums to be equal")
	}

	projection, err := CreatePerspectiveFieldOfView(PiOver2, 1.0, 1.0, 100.0)
	if err != nil {
		t.Fatalf("CreatePerspectiveFieldOfView: unexpected error %v", err)
	}
	// Placed behind the origin and looking further away.
	view := CreateLookAt(NewVec3(0.0, 0.0, 10.0), NewVec3(0.0, 0.0, 20.0), Vec3Up[float64]())
	away := NewBoundingFrustum(view.Mul(projection))
	if got := f.ContainsFrustum(away); got != Disjoint {
		t.Errorf("ContainsFrustum facing away: expected Disjoint, got %v", got)
	}
	if f.IntersectsFrustum(away) {
		t.Errorf("IntersectsFrustum facing away: expected false")
	}

	shifted := f.WithMatrix(CreateTranslation(NewVec3(0.0, 0.0, 20.0)).Mul(projection))
	if got := f.ContainsFrustum(shifted); got != Intersects {
		t.Errorf("ContainsFrustum overlapping: expected Intersects, got %v", got)
	}
	if f.Equals(shifted) {
		t.Errorf("WithMatrix: expected a different frustum")
	}
}

func TestFrustumPlaneIntersection(t *testing.T) {
	f := testFrustum(t, 100)
	if got := f.IntersectsPlane(NewPlane(Vec3UnitZ[float64](), 50)); got != Intersecting {
		t.Errorf("IntersectsPlane crossing: expected Intersecting, got %v", got)
	}
	if got := f.IntersectsPlane(NewPlane(Vec3UnitZ[float64](), -10)); got != Back {
		t.Errorf("IntersectsPlane in front of the camera: expected Back, got %v", got)
	}
	if got := f.IntersectsPlane(NewPlane(Vec3UnitZ[float64](), 500)); got != Front {
		t.Errorf("IntersectsPlane beyond far: expected Front, got %v", got)
	}
}

func TestFrustumIntersectsRay(t *testing.T) {
	f := testFrustum(t, 100)

	inside := NewRay(NewVec3(0.0, 0.0, -5.0), NewVec3(1.0, 0.0, 0.0))
	if d, ok := f.IntersectsRay(inside); !ok || d != 0 {
		t.Errorf("IntersectsRay from inside: expected (0, true), got (%v, %v)", d, ok)
	}

	toward := NewRay(NewVec3(0.0, 0.0, 5.0), NewVec3(0.0, 0.0, -1.0))
	if d, ok := f.IntersectsRay(toward); !ok || !NearlyEqual(d, 6, 1e-9) {
		t.Errorf("IntersectsRay toward: expected (6, true), got (%v, %v)", d, ok)
	}
	if d, ok := toward.IntersectsFrustum(f); !ok || !NearlyEqual(d, 6, 1e-9) {
		t.Errorf("ray.IntersectsFrustum: expected (6, true), got (%v, %v)", d, ok)
	}

	away := NewRay(NewVec3(0.0, 0.0, 5.0), NewVec3(0.0, 0.0, 1.0))
	if _, ok := f.IntersectsRay(away); ok {
		t.Errorf("IntersectsRay away: expected miss")
	}

	beside := NewRay(NewVec3(-500.0, 0.0, -5.0), NewVec3(0.0, 0.0, -1.0))
	if _, ok := f.IntersectsRay(beside); ok {
		t.Errorf("IntersectsRay beside: expected miss")
	}
}

func TestFrustumIntersectsRayInfiniteFar(t *testing.T) {
	f := testFrustum(t, Inf[float64](1))

	toward := NewRay(NewVec3(0.0, 0.0, 5.0), NewVec3(0.0, 0.0, -1.0))
	if d, ok := f.IntersectsRay(toward); !ok || !NearlyEqual(d, 6, 1e-9) {
		t.Errorf("IntersectsRay toward: expected (6, true), got (%v, %v)", d, ok)
	}

	// Enters through the left plane at x = -5 and leaves through the right.
	across := NewRay(NewVec3(-10.0, 0.0, -5.0), NewVec3(2.0, 0.0, 0.0))
	if d, ok := f.IntersectsRay(across); !ok || !NearlyEqual(d, 2.5, 1e-9) {
		t.Errorf("IntersectsRay across: expected (2.5, true), got (%v, %v)", d, ok)
	}

	away := NewRay(NewVec3(-10.0, 0.0, -5.0), NewVec3(-1.0, 0.0, 0.0))
	if _, ok := f.IntersectsRay(away); ok {
		t.Errorf("IntersectsRay away: expected miss")
	}

	behind := NewRay(NewVec3(0.0, 0.0, 5.0), NewVec3(0.0, 0.0, 1.0))
	if _, ok := f.IntersectsRay(behind); ok {
		t.Errorf("IntersectsRay behind the camera: expected miss")
	}
}

func TestBoxSphereContainFrustum(t *testing.T) {
	f := testFrustum(t, 100)
	box := NewBoundingBox(SplatVec3(-200.0), SplatVec3(200.0))
	if got := box.ContainsFrustum(f); got != Contains {
		t.Errorf("box.ContainsFrustum: expected Contains, got %v", got)
	}
	sphere := NewBoundingSphere(Vec3Zero[float64](), 1000)
	if got := sphere.ContainsFrustum(f); got != Contains {
		t.Errorf("sphere.ContainsFrustum: expected Contains, got %v", got)
	}
	if got := NewBoundingSphere(NewVec3(0.0, 0.0, 500.0), 1).ContainsFrustum(f); got != Disjoint {
		t.Errorf("sphere.ContainsFrustum far away: expected Disjoint, got %v", got)
	}

	bounds := BoundingSphereFromFrustum(f)
	for _, c := range f.Corners() {
		if c.Distance(bounds.Center) > bounds.Radius*(1+1e-9) {
			t.Errorf("BoundingSphereFromFrustum: corner %v outside %v", c, bounds)
		}
	}
}

func BenchmarkFrustumContainsBox(b *testing.B) {
	projection, _ := CreatePerspectiveFieldOfView(PiOver2, 1.0, 1.0, 100.0)
	f := NewBoundingFrustum(projection)
	box := NewBoundingBox(NewVec3(-1.0, -1.0, -6.0), NewVec3(1.0, 1.0, -4.0))
	for i := 0; i < b.N; i++ {
		f.ContainsBox(box)
	}
}
