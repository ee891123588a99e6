package culling

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/spaghettifunk/spatial/engine/core"
	"github.com/spaghettifunk/spatial/engine/math"
)

const sceneFixture = "../../testdata/scene.toml"

func TestLoadScene(t *testing.T) {
	scene, err := LoadScene(sceneFixture)
	if err != nil {
		t.Fatalf("LoadScene: unexpected error %v", err)
	}
	if len(scene.Objects) != 4 {
		t.Fatalf("LoadScene: expected 4 objects, got %d", len(scene.Objects))
	}
	if scene.Objects[0].Name != "crate" || scene.Objects[0].Kind != KindBox {
		t.Errorf("LoadScene: expected the crate box first, got %s %v", scene.Objects[0].Name, scene.Objects[0].Kind)
	}
	if scene.Objects[2].Kind != KindSphere || scene.Objects[2].Sphere.Radius != 1 {
		t.Errorf("LoadScene: expected the ball sphere third, got %+v", scene.Objects[2])
	}
	if scene.Camera.Position() != math.NewVec3(0.0, 2.0, 10.0) {
		t.Errorf("LoadScene: unexpected camera position %v", scene.Camera.Position())
	}

	if _, err := LoadScene(filepath.Join(t.TempDir(), "missing.toml")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("LoadScene missing file: expected ErrNotExist, got %v", err)
	}
}

func TestParseSceneDefaults(t *testing.T) {
	id := uuid.New()
	data := []byte(`
[[sphere]]
id = "` + id.String() + `"
name = "marker"
center = [0.0, 0.0, 0.0]
radius = 2.0
`)
	scene, err := ParseScene(data)
	if err != nil {
		t.Fatalf("ParseScene: unexpected error %v", err)
	}
	if scene.Camera.Position() != math.NewVec3(0.0, 0.0, 10.0) {
		t.Errorf("ParseScene: expected the default camera position, got %v", scene.Camera.Position())
	}
	o, ok := scene.Find(id)
	if !ok || o.Name != "marker" {
		t.Errorf("ParseScene: expected to find the marker by id, got %+v (%v)", o, ok)
	}
}

func TestParseSceneFar(t *testing.T) {
	for _, far := range []string{`"inf"`, `inf`, `250`, `250.5`} {
		data := []byte("[camera]\nfar = " + far + "\n")
		if _, err := ParseScene(data); err != nil {
			t.Errorf("ParseScene far = %s: unexpected error %v", far, err)
		}
	}
	if _, err := ParseScene([]byte("[camera]\nfar = \"forever\"\n")); !errors.Is(err, core.ErrInvalidArgument) {
		t.Errorf("ParseScene bad far: expected ErrInvalidArgument, got %v", err)
	}
}

func TestParseSceneRejects(t *testing.T) {
	cases := map[string]string{
		"inverted box":    "[[box]]\nmin = [1.0, 0.0, 0.0]\nmax = [0.0, 1.0, 1.0]\n",
		"negative radius": "[[sphere]]\ncenter = [0.0, 0.0, 0.0]\nradius = -1.0\n",
		"bad id":          "[[box]]\nid = \"not-a-uuid\"\nmin = [0.0, 0.0, 0.0]\nmax = [1.0, 1.0, 1.0]\n",
		"bad camera":      "[camera]\naspect = 0.0\n",
		"empty mesh":      "[[mesh]]\nname = \"hollow\"\n",
	}
	for name, data := range cases {
		if _, err := ParseScene([]byte(data)); !errors.Is(err, core.ErrInvalidArgument) {
			t.Errorf("ParseScene %s: expected ErrInvalidArgument, got %v", name, err)
		}
	}
	if _, err := ParseScene([]byte("[[box]\n")); err == nil {
		t.Errorf("ParseScene malformed: expected an error")
	}
}

func TestParseSceneMesh(t *testing.T) {
	data := []byte(`
[[mesh]]
name = "pillar"
points = [
  [-1.0, -1.0, -1.0], [1.0, -1.0, -1.0], [1.0, 1.0, -1.0], [-1.0, 1.0, -1.0],
  [-1.0, -1.0, 1.0], [1.0, -1.0, 1.0], [1.0, 1.0, 1.0], [-1.0, 1.0, 1.0],
]
position = [10.0, 0.0, 0.0]
rotation_degrees = [90.0, 0.0, 0.0]
scale = [2.0, 1.0, 1.0]

[[mesh]]
name = "unplaced"
points = [[0.0, 0.0, 0.0], [1.0, 2.0, 3.0]]
`)
	scene, err := ParseScene(data)
	if err != nil {
		t.Fatalf("ParseScene: unexpected error %v", err)
	}
	if len(scene.Objects) != 2 {
		t.Fatalf("ParseScene: expected 2 objects, got %d", len(scene.Objects))
	}

	// Stretched along X, then turned a quarter about Y, so the long side runs along Z.
	pillar := scene.Objects[0]
	if pillar.Kind != KindBox {
		t.Errorf("ParseScene mesh: expected a box volume, got %v", pillar.Kind)
	}
	expected := math.NewBoundingBox(math.NewVec3(9.0, -1.0, -2.0), math.NewVec3(11.0, 1.0, 2.0))
	if !pillar.Box.Min.NearlyEqual(expected.Min, 1e-9) || !pillar.Box.Max.NearlyEqual(expected.Max, 1e-9) {
		t.Errorf("ParseScene mesh: expected %v, got %v", expected, pillar.Box)
	}

	unplaced := scene.Objects[1].Box
	if !unplaced.Min.NearlyEqual(math.Vec3Zero[float64](), 1e-12) || !unplaced.Max.NearlyEqual(math.NewVec3(1.0, 2.0, 3.0), 1e-12) {
		t.Errorf("ParseScene mesh without placement: expected the local bounds, got %v", unplaced)
	}
}

func TestParseSceneKeepsNaN(t *testing.T) {
	scene, err := ParseScene([]byte("[[sphere]]\nname = \"ghost\"\ncenter = [nan, 0.0, 0.0]\nradius = 1.0\n"))
	if err != nil {
		t.Fatalf("ParseScene: unexpected error %v", err)
	}
	if len(scene.Objects) != 1 || !scene.Objects[0].HasNaN() {
		t.Errorf("ParseScene: expected the NaN sphere to be kept, got %+v", scene.Objects)
	}
}

func TestSceneObjects(t *testing.T) {
	scene := NewScene(nil)
	boxID := scene.AddBox("box", math.NewBoundingBox(math.SplatVec3(-1.0), math.SplatVec3(1.0)))
	sphereID := scene.AddSphere("sphere", math.NewBoundingSphere(math.NewVec3(5.0, 0.0, 0.0), 2))
	scene.AddSphere("ghost", math.NewBoundingSphere(math.Vec3Zero[float64](), math.NaN[float64]()))

	bounds, ok := scene.Bounds()
	if !ok {
		t.Fatalf("Bounds: expected a bounding box")
	}
	expected := math.NewBoundingBox(math.NewVec3(-1.0, -2.0, -2.0), math.NewVec3(7.0, 2.0, 2.0))
	if bounds != expected {
		t.Errorf("Bounds: expected %v, got %v", expected, bounds)
	}

	if o, ok := scene.Find(sphereID); !ok || o.Kind != KindSphere {
		t.Errorf("Find: expected the sphere, got %+v (%v)", o, ok)
	}
	if !scene.Remove(boxID) {
		t.Errorf("Remove: expected the box to be removed")
	}
	if scene.Remove(boxID) {
		t.Errorf("Remove twice: expected false")
	}
	if _, ok := scene.Find(boxID); ok {
		t.Errorf("Find after Remove: expected false")
	}
	if len(scene.Objects) != 2 {
		t.Errorf("Remove: expected 2 objects left, got %d", len(scene.Objects))
	}

	if _, ok := NewScene(nil).Bounds(); ok {
		t.Errorf("Bounds of an empty scene: expected false")
	}
	if KindBox.String() != "box" || VolumeKind(7).String() != "VolumeKind(7)" {
		t.Errorf("VolumeKind.String: unexpected names")
	}
}
