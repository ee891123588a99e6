package interop

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/spaghettifunk/spatial/engine/math"
)

func TestMatrixToFixedTranslation(t *testing.T) {
	got := MatrixToFixed(math.CreateTranslation(math.NewVec3(1.0, 2.0, 3.0)))
	expected := mgl32.Translate3D(1, 2, 3)
	if !got.ApproxEqual(expected) {
		t.Errorf("MatrixToFixed: expected %v, got %v", expected, got)
	}
}

func TestMatrixToFixedRotationTransformsAlike(t *testing.T) {
	angle := 0.7
	mt := math.CreateRotationZ(angle)
	fixed := MatrixToFixed(mt)

	if !fixed.ApproxEqualThreshold(mgl32.HomogRotate3DZ(float32(angle)), 1e-6) {
		t.Errorf("MatrixToFixed: expected %v, got %v", mgl32.HomogRotate3DZ(float32(angle)), fixed)
	}

	point := math.NewVec4(1.0, 2.0, 3.0, 1.0)
	want := Vec4ToFixed(point.Transform(mt))
	got := fixed.Mul4x1(Vec4ToFixed(point))
	if !got.ApproxEqualThreshold(want, 1e-5) {
		t.Errorf("Mul4x1: expected %v, got %v", want, got)
	}
}

func TestMatrixRoundTrip(t *testing.T) {
	mt := math.CreateFromYawPitchRoll[float32](0.3, 0.2, 0.1).Mul(math.CreateTranslation(math.NewVec3[float32](4, 5, 6)))
	back := MatrixFromFixed[float32](MatrixToFixed(mt))
	if back != mt {
		t.Errorf("MatrixFromFixed: expected %v, got %v", mt, back)
	}
}

func TestQuaternionConversion(t *testing.T) {
	q := math.QuaternionFromAxisAngle(math.NewVec3(0.0, 0.0, 1.0), math.PiOver2)
	fixed := QuaternionToFixed(q)

	rotated := fixed.Rotate(mgl32.Vec3{1, 0, 0})
	if !rotated.ApproxEqualThreshold(mgl32.Vec3{0, 1, 0}, 1e-6) {
		t.Errorf("Rotate: expected %v, got %v", mgl32.Vec3{0, 1, 0}, rotated)
	}

	back := QuaternionFromFixed[float64](fixed)
	if !back.NearlyEqual(q, 1e-6) {
		t.Errorf("QuaternionFromFixed: expected %v, got %v", q, back)
	}
}

func TestVectorAndPlaneConversion(t *testing.T) {
	v2 := math.NewVec2[float32](1, 2)
	if got := Vec2FromFixed[float32](Vec2ToFixed(v2)); got != v2 {
		t.Errorf("Vec2: expected %v, got %v", v2, got)
	}
	v3 := math.NewVec3[float32](1, 2, 3)
	if got := Vec3FromFixed[float32](Vec3ToFixed(v3)); got != v3 {
		t.Errorf("Vec3: expected %v, got %v", v3, got)
	}
	v4 := math.NewVec4[float32](1, 2, 3, 4)
	if got := Vec4FromFixed[float32](Vec4ToFixed(v4)); got != v4 {
		t.Errorf("Vec4: expected %v, got %v", v4, got)
	}
	p := math.NewPlane(math.NewVec3[float32](0, 1, 0), -2)
	fixed := PlaneToFixed(p)
	if fixed != (mgl32.Vec4{0, 1, 0, -2}) {
		t.Errorf("PlaneToFixed: expected %v, got %v", mgl32.Vec4{0, 1, 0, -2}, fixed)
	}
	if got := PlaneFromFixed[float32](fixed); got != p {
		t.Errorf("PlaneFromFixed: expected %v, got %v", p, got)
	}
}

func TestNarrowingRoundsToNearest(t *testing.T) {
	v := math.NewVec3(0.1, 1.0/3.0, 1e-50)
	got := Vec3ToFixed(v)
	if got[0] != float32(0.1) || got[1] != float32(1.0/3.0) || got[2] != 0 {
		t.Errorf("Vec3ToFixed: expected rounded components, got %v", got)
	}
}
