package culling

import (
	"bytes"
	"errors"
	"image/png"
	"path/filepath"
	"testing"

	"github.com/spaghettifunk/spatial/engine/core"
	"github.com/spaghettifunk/spatial/engine/math"
)

func TestNewRasterValidation(t *testing.T) {
	bounds := math.NewBoundingBox(math.SplatVec3(-1.0), math.SplatVec3(1.0))
	if _, err := NewRaster(0, 10, bounds); !errors.Is(err, core.ErrInvalidArgument) {
		t.Errorf("NewRaster zero width: expected ErrInvalidArgument, got %v", err)
	}
	if _, err := NewRaster(10, -1, bounds); !errors.Is(err, core.ErrInvalidArgument) {
		t.Errorf("NewRaster negative height: expected ErrInvalidArgument, got %v", err)
	}
	r, err := NewRaster(32, 16, bounds)
	if err != nil {
		t.Fatalf("NewRaster: unexpected error %v", err)
	}
	if b := r.Image().Bounds(); b.Dx() != 32 || b.Dy() != 16 {
		t.Errorf("NewRaster: expected a 32x16 image, got %v", b)
	}
}

func TestRenderPass(t *testing.T) {
	scene, err := LoadScene(sceneFixture)
	if err != nil {
		t.Fatalf("LoadScene: unexpected error %v", err)
	}
	scene.AddSphere("ghost", math.NewBoundingSphere(math.Vec3Zero[float64](), math.NaN[float64]()))
	result := NewCuller(core.DefaultConfig().Culling).CullScene(scene)

	r, err := RenderPass(200, 150, scene, result)
	if err != nil {
		t.Fatalf("RenderPass: unexpected error %v", err)
	}

	// The camera marker is drawn last at the camera position.
	x, y := r.project(scene.Camera.Position())
	if got := r.Image().RGBAAt(int(x), int(y)); got == colourBackground {
		t.Errorf("RenderPass: expected the camera marker at (%v, %v), got the background", x, y)
	}
	if got := r.Image().RGBAAt(0, r.Image().Bounds().Dy()-1); got != colourBackground {
		t.Errorf("RenderPass: expected the background in the corner, got %v", got)
	}

	var buf bytes.Buffer
	if err := r.WritePNG(&buf); err != nil {
		t.Fatalf("WritePNG: unexpected error %v", err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("png.Decode: unexpected error %v", err)
	}
	if img.Bounds().Dx() != 200 || img.Bounds().Dy() != 150 {
		t.Errorf("WritePNG: expected 200x150, got %v", img.Bounds())
	}

	if err := r.SavePNG(filepath.Join(t.TempDir(), "pass.png")); err != nil {
		t.Errorf("SavePNG: unexpected error %v", err)
	}
}

func TestRenderPassInfiniteFar(t *testing.T) {
	scene, err := ParseScene([]byte("[camera]\nfar = \"inf\"\n"))
	if err != nil {
		t.Fatalf("ParseScene: unexpected error %v", err)
	}
	if _, err := RenderPass(64, 64, scene, Result{}); err != nil {
		t.Errorf("RenderPass: unexpected error %v", err)
	}
}

func TestConvexHullXZ(t *testing.T) {
	points := []math.Vec3[float64]{
		{X: 0, Y: 0, Z: 0}, {X: 4, Y: 0, Z: 0}, {X: 4, Y: 0, Z: 4},
		{X: 0, Y: 0, Z: 4}, {X: 2, Y: 5, Z: 2}, {X: 1, Y: 0, Z: 3},
	}
	hull := convexHullXZ(points)
	if len(hull) != 4 {
		t.Fatalf("convexHullXZ: expected 4 points, got %v", hull)
	}
	for _, p := range hull {
		if (p.X != 0 && p.X != 4) || (p.Z != 0 && p.Z != 4) {
			t.Errorf("convexHullXZ: unexpected hull point %v", p)
		}
	}
}
