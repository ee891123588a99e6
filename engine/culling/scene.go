package culling

import (
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/pelletier/go-toml/v2"
	"github.com/spaghettifunk/spatial/engine/core"
	"github.com/spaghettifunk/spatial/engine/math"
)

type VolumeKind int

const (
	KindBox VolumeKind = iota
	KindSphere
)

func (k VolumeKind) String() string {
	switch k {
	case KindBox:
		return "box"
	case KindSphere:
		return "sphere"
	default:
		return fmt.Sprintf("VolumeKind(%d)", int(k))
	}
}

// Object is one cullable volume of a scene. Only the field matching Kind is
// meaningful.
type Object struct {
	ID     uuid.UUID
	Name   string
	Kind   VolumeKind
	Box    math.BoundingBox[float64]
	Sphere math.BoundingSphere[float64]
}

// HasNaN reports whether the volume of the object is undefined.
func (o Object) HasNaN() bool {
	if o.Kind == KindSphere {
		return o.Sphere.HasNaN()
	}
	return o.Box.HasNaN()
}

// Scene is a camera together with the volumes it looks at.
type Scene struct {
	Camera  *Camera
	Objects []Object
}

func NewScene(camera *Camera) *Scene {
	return &Scene{Camera: camera}
}

func (s *Scene) AddBox(name string, box math.BoundingBox[float64]) uuid.UUID {
	id := uuid.New()
	s.Objects = append(s.Objects, Object{ID: id, Name: name, Kind: KindBox, Box: box})
	return id
}

func (s *Scene) AddSphere(name string, sphere math.BoundingSphere[float64]) uuid.UUID {
	id := uuid.New()
	s.Objects = append(s.Objects, Object{ID: id, Name: name, Kind: KindSphere, Sphere: sphere})
	return id
}

func (s *Scene) Find(id uuid.UUID) (Object, bool) {
	for _, o := range s.Objects {
		if o.ID == id {
			return o, true
		}
	}
	return Object{}, false
}

// Remove deletes the object with id and reports whether it existed.
func (s *Scene) Remove(id uuid.UUID) bool {
	for i, o := range s.Objects {
		if o.ID == id {
			s.Objects = append(s.Objects[:i], s.Objects[i+1:]...)
			return true
		}
	}
	return false
}

// Bounds returns the box enclosing every object that has a defined volume.
func (s *Scene) Bounds() (math.BoundingBox[float64], bool) {
	var bounds math.BoundingBox[float64]
	found := false
	for _, o := range s.Objects {
		if o.HasNaN() {
			continue
		}
		box := o.Box
		if o.Kind == KindSphere {
			box = math.BoundingBoxFromSphere(o.Sphere)
		}
		if !found {
			bounds, found = box, true
			continue
		}
		bounds = math.BoundingBoxMerged(bounds, box)
	}
	return bounds, found
}

type sceneFile struct {
	Camera  cameraFile   `toml:"camera"`
	Boxes   []boxFile    `toml:"box"`
	Spheres []sphereFile `toml:"sphere"`
	Meshes  []meshFile   `toml:"mesh"`
}

type cameraFile struct {
	Position   [3]float64 `toml:"position"`
	Target     [3]float64 `toml:"target"`
	Up         [3]float64 `toml:"up"`
	FovDegrees float64    `toml:"fov_degrees"`
	Aspect     float64    `toml:"aspect"`
	Near       float64    `toml:"near"`
	// Far is a number or the string "inf".
	Far any `toml:"far"`
}

type boxFile struct {
	ID   string     `toml:"id"`
	Name string     `toml:"name"`
	Min  [3]float64 `toml:"min"`
	Max  [3]float64 `toml:"max"`
}

type sphereFile struct {
	ID     string     `toml:"id"`
	Name   string     `toml:"name"`
	Center [3]float64 `toml:"center"`
	Radius float64    `toml:"radius"`
}

// meshFile is a point cloud in local space placed by a transform. It is
// culled as the world-space box around its points.
type meshFile struct {
	ID       string       `toml:"id"`
	Name     string       `toml:"name"`
	Points   [][3]float64 `toml:"points"`
	Position [3]float64   `toml:"position"`
	// Rotation is yaw, pitch and roll in degrees.
	Rotation [3]float64  `toml:"rotation_degrees"`
	Scale    *[3]float64 `toml:"scale"`
}

func (m meshFile) bounds() (math.BoundingBox[float64], error) {
	vertices := make([]math.Vertex3D[float64], len(m.Points))
	for i, p := range m.Points {
		vertices[i].Position = vec3(p)
	}
	local, _, err := math.BoundsOf(vertices)
	if err != nil {
		return math.BoundingBox[float64]{}, err
	}

	scale := math.Vec3One[float64]()
	if m.Scale != nil {
		scale = vec3(*m.Scale)
	}
	rotation := math.QuaternionFromYawPitchRoll(
		math.ToRadians(m.Rotation[0]), math.ToRadians(m.Rotation[1]), math.ToRadians(m.Rotation[2]),
	)
	placement := math.NewTransformFrom(vec3(m.Position), rotation, scale)
	return local.Transform(placement.WorldMatrix()), nil
}

func defaultCameraFile() cameraFile {
	return cameraFile{
		Position:   [3]float64{0, 0, 10},
		Up:         [3]float64{0, 1, 0},
		FovDegrees: 90,
		Aspect:     1,
		Near:       0.1,
		Far:        1000.0,
	}
}

func vec3(a [3]float64) math.Vec3[float64] {
	return math.NewVec3(a[0], a[1], a[2])
}

func parseFar(v any) (float64, error) {
	switch far := v.(type) {
	case float64:
		return far, nil
	case int64:
		return float64(far), nil
	case string:
		if far == "inf" {
			return math.Inf[float64](1), nil
		}
	}
	return 0, fmt.Errorf("camera.far must be a number or \"inf\", got %v: %w", v, core.ErrInvalidArgument)
}

func parseID(s string) (uuid.UUID, error) {
	if s == "" {
		return uuid.New(), nil
	}
	id, err := uuid.Parse(s)
	if err != nil {
		return uuid.Nil, fmt.Errorf("invalid object id %q: %w", s, core.ErrInvalidArgument)
	}
	return id, nil
}

// LoadScene reads and parses a scene file.
func LoadScene(path string) (*Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scene %s: %w", path, err)
	}
	scene, err := ParseScene(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return scene, nil
}

/**
 * @brief Parses a TOML scene: a [camera] table followed by [[box]],
 * [[sphere]] and [[mesh]] arrays. Objects without an id get a random one. Inverted boxes
 * and negative radii are rejected; NaN components are kept so the culler can
 * apply its policy.
 */
func ParseScene(data []byte) (*Scene, error) {
	file := sceneFile{Camera: defaultCameraFile()}
	if err := toml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse scene: %w", err)
	}

	far, err := parseFar(file.Camera.Far)
	if err != nil {
		return nil, err
	}
	camera, err := NewCamera(
		vec3(file.Camera.Position), vec3(file.Camera.Target), vec3(file.Camera.Up),
		math.ToRadians(file.Camera.FovDegrees), file.Camera.Aspect, file.Camera.Near, far,
	)
	if err != nil {
		return nil, err
	}

	scene := NewScene(camera)
	for i, b := range file.Boxes {
		id, err := parseID(b.ID)
		if err != nil {
			return nil, fmt.Errorf("box %d: %w", i, err)
		}
		box := math.NewBoundingBox(vec3(b.Min), vec3(b.Max))
		if box.Min.X > box.Max.X || box.Min.Y > box.Max.Y || box.Min.Z > box.Max.Z {
			return nil, fmt.Errorf("box %d: min %v exceeds max %v: %w", i, box.Min, box.Max, core.ErrInvalidArgument)
		}
		scene.Objects = append(scene.Objects, Object{ID: id, Name: b.Name, Kind: KindBox, Box: box})
	}
	for i, s := range file.Spheres {
		id, err := parseID(s.ID)
		if err != nil {
			return nil, fmt.Errorf("sphere %d: %w", i, err)
		}
		if s.Radius < 0 {
			return nil, fmt.Errorf("sphere %d: negative radius %v: %w", i, s.Radius, core.ErrInvalidArgument)
		}
		sphere := math.NewBoundingSphere(vec3(s.Center), s.Radius)
		scene.Objects = append(scene.Objects, Object{ID: id, Name: s.Name, Kind: KindSphere, Sphere: sphere})
	}

	for i, m := range file.Meshes {
		id, err := parseID(m.ID)
		if err != nil {
			return nil, fmt.Errorf("mesh %d: %w", i, err)
		}
		box, err := m.bounds()
		if err != nil {
			return nil, fmt.Errorf("mesh %d: %w", i, err)
		}
		scene.Objects = append(scene.Objects, Object{ID: id, Name: m.Name, Kind: KindBox, Box: box})
	}

	core.LogDebug("parsed scene with %d objects", len(scene.Objects))
	return scene, nil
}
