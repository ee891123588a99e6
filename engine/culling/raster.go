package culling

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"os"
	"sort"

	"github.com/google/uuid"
	"github.com/spaghettifunk/spatial/engine/core"
	"github.com/spaghettifunk/spatial/engine/math"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"
)

var (
	colourBackground = color.RGBA{0x1e, 0x1e, 0x24, 0xff}
	colourFrustum    = color.RGBA{0x40, 0x60, 0xa0, 0x80}
	colourCamera     = color.RGBA{0xff, 0xff, 0xff, 0xff}
	colourVisible    = color.RGBA{0x40, 0xc0, 0x60, 0xff}
	colourCulled     = color.RGBA{0xc0, 0x40, 0x40, 0xff}
	colourUndefined  = color.RGBA{0xe0, 0xc0, 0x30, 0xff}
	colourLabel      = color.RGBA{0xe0, 0xe0, 0xe0, 0xff}
)

// circleSegments is the number of edges used to draw a sphere outline.
const circleSegments = 32

/**
 * @brief Draws a top-down view of a culling pass onto the XZ plane: the
 * frustum footprint, the camera and every object coloured by its outcome.
 * World -Z points up in the image.
 */
type Raster struct {
	width, height int
	origin        math.Vec2[float64]
	scale         float64
	img           *image.RGBA
}

/**
 * @brief Creates a raster sized to fit bounds.
 * @return An error wrapping core.ErrInvalidArgument for non-positive sizes.
 */
func NewRaster(width, height int, bounds math.BoundingBox[float64]) (*Raster, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("raster size %dx%d must be positive: %w", width, height, core.ErrInvalidArgument)
	}
	extent := bounds.Max.Sub(bounds.Min)
	span := math.Max(extent.X, extent.Z) * 1.1
	if !(span > 0) {
		span = 1
	}
	r := &Raster{
		width:  width,
		height: height,
		origin: math.NewVec2(bounds.Center().X, bounds.Center().Z),
		scale:  float64(math.Min(width, height)) / span,
		img:    image.NewRGBA(image.Rect(0, 0, width, height)),
	}
	draw.Draw(r.img, r.img.Bounds(), image.NewUniform(colourBackground), image.Point{}, draw.Src)
	return r, nil
}

func (r *Raster) Image() *image.RGBA {
	return r.img
}

// project maps a world position to pixel coordinates.
func (r *Raster) project(p math.Vec3[float64]) (float32, float32) {
	x := (p.X-r.origin.X)*r.scale + float64(r.width)/2
	y := (p.Z-r.origin.Y)*r.scale + float64(r.height)/2
	return float32(x), float32(y)
}

func (r *Raster) fill(points []math.Vec3[float64], c color.Color) {
	if len(points) < 3 {
		return
	}
	z := vector.NewRasterizer(r.width, r.height)
	x, y := r.project(points[0])
	z.MoveTo(x, y)
	for _, p := range points[1:] {
		x, y = r.project(p)
		z.LineTo(x, y)
	}
	z.ClosePath()
	z.Draw(r.img, r.img.Bounds(), image.NewUniform(c), image.Point{})
}

func (r *Raster) label(p math.Vec3[float64], text string) {
	if text == "" {
		return
	}
	x, y := r.project(p)
	d := font.Drawer{
		Dst:  r.img,
		Src:  image.NewUniform(colourLabel),
		Face: basicfont.Face7x13,
		Dot:  fixed.P(int(x)+4, int(y)-4),
	}
	d.DrawString(text)
}

// DrawFrustum fills the XZ footprint of the frustum. Frustums with undefined
// corners, such as infinite projections, are skipped.
func (r *Raster) DrawFrustum(frustum math.BoundingFrustum[float64]) {
	corners := frustum.Corners()
	for _, c := range corners {
		if c.HasNaN() || math.IsInf(c.X, 0) || math.IsInf(c.Z, 0) {
			return
		}
	}
	r.fill(convexHullXZ(corners[:]), colourFrustum)
}

func (r *Raster) DrawCamera(position math.Vec3[float64]) {
	half := 3 / r.scale
	r.fill([]math.Vec3[float64]{
		position.Add(math.NewVec3(-half, 0, -half)),
		position.Add(math.NewVec3(half, 0, -half)),
		position.Add(math.NewVec3(half, 0, half)),
		position.Add(math.NewVec3(-half, 0, half)),
	}, colourCamera)
}

func (r *Raster) DrawObject(o Object, c color.Color) {
	if o.HasNaN() {
		return
	}
	switch o.Kind {
	case KindBox:
		r.fill([]math.Vec3[float64]{
			o.Box.Min,
			math.NewVec3(o.Box.Max.X, 0, o.Box.Min.Z),
			o.Box.Max,
			math.NewVec3(o.Box.Min.X, 0, o.Box.Max.Z),
		}, c)
		r.label(o.Box.Max, o.Name)
	case KindSphere:
		points := make([]math.Vec3[float64], circleSegments)
		for i := range points {
			angle := math.TwoPi * float64(i) / circleSegments
			points[i] = o.Sphere.Center.Add(math.NewVec3(math.Cos(angle), 0, math.Sin(angle)).MulScalar(o.Sphere.Radius))
		}
		r.fill(points, c)
		r.label(o.Sphere.Center.Add(math.NewVec3(o.Sphere.Radius, 0, 0)), o.Name)
	}
}

/**
 * @brief Renders a full culling pass. Objects without a defined volume are
 * listed by name in the top-left corner instead of being drawn.
 */
func RenderPass(width, height int, scene *Scene, result Result) (*Raster, error) {
	bounds, ok := scene.Bounds()
	position := scene.Camera.Position()
	if ok {
		bounds = math.BoundingBoxMerged(bounds, math.NewBoundingBox(position, position))
	} else {
		bounds = math.NewBoundingBox(position.Sub(math.SplatVec3(1.0)), position.Add(math.SplatVec3(1.0)))
	}

	r, err := NewRaster(width, height, bounds)
	if err != nil {
		return nil, err
	}
	r.DrawFrustum(scene.Camera.Frustum())

	visible := make(map[uuid.UUID]Visibility, len(result.Visible))
	for _, v := range result.Visible {
		visible[v.ID] = v
	}

	line := 0
	for _, o := range scene.Objects {
		v, ok := visible[o.ID]
		switch {
		case ok && v.Undefined:
			d := font.Drawer{
				Dst:  r.img,
				Src:  image.NewUniform(colourUndefined),
				Face: basicfont.Face7x13,
				Dot:  fixed.P(4, 14+line*14),
			}
			d.DrawString(fmt.Sprintf("undefined: %s", o.Name))
			line++
		case ok:
			r.DrawObject(o, colourVisible)
		default:
			r.DrawObject(o, colourCulled)
		}
	}
	r.DrawCamera(position)
	return r, nil
}

func (r *Raster) WritePNG(w io.Writer) error {
	return png.Encode(w, r.img)
}

func (r *Raster) SavePNG(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	if err := r.WritePNG(f); err != nil {
		f.Close()
		return fmt.Errorf("failed to encode %s: %w", path, err)
	}
	return f.Close()
}

// convexHullXZ returns the hull of the points projected onto XZ in
// counter-clockwise order (monotone chain).
func convexHullXZ(points []math.Vec3[float64]) []math.Vec3[float64] {
	pts := make([]math.Vec3[float64], len(points))
	copy(pts, points)
	sort.Slice(pts, func(i, j int) bool {
		if pts[i].X != pts[j].X {
			return pts[i].X < pts[j].X
		}
		return pts[i].Z < pts[j].Z
	})

	cross := func(o, a, b math.Vec3[float64]) float64 {
		return (a.X-o.X)*(b.Z-o.Z) - (a.Z-o.Z)*(b.X-o.X)
	}

	hull := make([]math.Vec3[float64], 0, 2*len(pts))
	for _, p := range pts {
		for len(hull) >= 2 && cross(hull[len(hull)-2], hull[len(hull)-1], p) <= 0 {
			hull = hull[:len(hull)-1]
		}
		hull = append(hull, p)
	}
	lower := len(hull) + 1
	for i := len(pts) - 2; i >= 0; i-- {
		p := pts[i]
		for len(hull) >= lower && cross(hull[len(hull)-2], hull[len(hull)-1], p) <= 0 {
			hull = hull[:len(hull)-1]
		}
		hull = append(hull, p)
	}
	return hull[:len(hull)-1]
}
