package math

import (
	"testing"
)

const testEpsilon = 1e-5

func TestClamp(t *testing.T) {
	tests := []struct {
		value, low, high, expected float64
	}{
		{0.5, 0, 1, 0.5},
		{-1, 0, 1, 0},
		{2, 0, 1, 1},
		{1, 0, 1, 1},
	}
	for _, tc := range tests {
		if got := Clamp(tc.value, tc.low, tc.high); got != tc.expected {
			t.Errorf("Clamp(%v, %v, %v): expected %v, got %v", tc.value, tc.low, tc.high, tc.expected, got)
		}
	}
	if got := Clamp(7, 0, 5); got != 5 {
		t.Errorf("Clamp on ints: expected 5, got %d", got)
	}
}

func TestLerp(t *testing.T) {
	if got := Lerp(2.0, 4.0, 0.5); got != 3 {
		t.Errorf("Lerp: expected 3, got %v", got)
	}
	if got := LerpPrecise[float32](1e-8, 1e8, 1); got != 1e8 {
		t.Errorf("LerpPrecise at 1: expected 1e8, got %v", got)
	}
}

func TestHermiteEndpoints(t *testing.T) {
	if got := Hermite(1.0, 5.0, 3.0, -2.0, 0); got != 1 {
		t.Errorf("Hermite at 0: expected 1, got %v", got)
	}
	if got := Hermite(1.0, 5.0, 3.0, -2.0, 1); got != 3 {
		t.Errorf("Hermite at 1: expected 3, got %v", got)
	}
	if got := SmoothStep(0.0, 10.0, 0.5); !NearlyEqual(got, 5, testEpsilon) {
		t.Errorf("SmoothStep at 0.5: expected 5, got %v", got)
	}
	if got := SmoothStep(0.0, 10.0, 2); got != 10 {
		t.Errorf("SmoothStep clamps: expected 10, got %v", got)
	}
}

func TestCatmullRomPassesThroughControlPoints(t *testing.T) {
	if got := CatmullRom(0.0, 1.0, 2.0, 3.0, 0); got != 1 {
		t.Errorf("CatmullRom at 0: expected 1, got %v", got)
	}
	if got := CatmullRom(0.0, 1.0, 2.0, 3.0, 1); !NearlyEqual(got, 2, testEpsilon) {
		t.Errorf("CatmullRom at 1: expected 2, got %v", got)
	}
}

func TestAngles(t *testing.T) {
	if got := ToRadians(180.0); !NearlyEqual(got, Pi, testEpsilon) {
		t.Errorf("ToRadians(180): expected %v, got %v", Pi, got)
	}
	if got := ToDegrees(PiOver2); !NearlyEqual(got, 90, testEpsilon) {
		t.Errorf("ToDegrees(Pi/2): expected 90, got %v", got)
	}

	tests := []struct {
		angle, expected float64
	}{
		{0, 0},
		{Pi, Pi},
		{-Pi, Pi},
		{TwoPi + 0.5, 0.5},
		{-TwoPi - 0.5, -0.5},
	}
	for _, tc := range tests {
		if got := WrapAngle(tc.angle); !NearlyEqual(got, tc.expected, testEpsilon) {
			t.Errorf("WrapAngle(%v): expected %v, got %v", tc.angle, tc.expected, got)
		}
	}
}

func TestIsPowerOfTwo(t *testing.T) {
	for _, v := range []int{1, 2, 64, 1024} {
		if !IsPowerOfTwo(v) {
			t.Errorf("IsPowerOfTwo(%d): expected true", v)
		}
	}
	for _, v := range []int{0, -2, 3, 100} {
		if IsPowerOfTwo(v) {
			t.Errorf("IsPowerOfTwo(%d): expected false", v)
		}
	}
}

func TestNaNAndInf(t *testing.T) {
	if !IsNaN(NaN[float32]()) {
		t.Errorf("IsNaN: expected true for NaN")
	}
	if !IsInf(Inf[float64](1), 1) || !IsInf(Inf[float32](-1), -1) {
		t.Errorf("IsInf: expected true for signed infinities")
	}
}
