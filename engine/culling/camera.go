package culling

import (
	"fmt"

	"github.com/spaghettifunk/spatial/engine/core"
	"github.com/spaghettifunk/spatial/engine/math"
)

// pitchLimit is 89 degrees.
const pitchLimit = 1.55334306

/**
 * @brief A perspective camera looking from Position towards Target.
 * NOTE: Do not set the fields directly, use the setters so the view,
 * projection and frustum are rebuilt when needed.
 */
type Camera struct {
	position math.Vec3[float64]
	target   math.Vec3[float64]
	up       math.Vec3[float64]

	fov, aspect, near, far float64

	/** @brief Internal flag used to determine when the matrices need to be rebuilt. */
	isDirty    bool
	view       math.Matrix[float64]
	projection math.Matrix[float64]
	frustum    math.BoundingFrustum[float64]
}

/**
 * @brief Creates a camera.
 *
 * @param fov The vertical field of view in radians.
 * @param far The far clip distance; may be +Inf.
 * @return The camera, or an error wrapping core.ErrInvalidArgument when the
 * projection parameters are invalid.
 */
func NewCamera(position, target, up math.Vec3[float64], fov, aspect, near, far float64) (*Camera, error) {
	c := &Camera{position: position, target: target, up: up}
	if err := c.SetPerspective(fov, aspect, near, far); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *Camera) Position() math.Vec3[float64] {
	return c.position
}

func (c *Camera) SetPosition(position math.Vec3[float64]) {
	c.position = position
	c.isDirty = true
}

func (c *Camera) Target() math.Vec3[float64] {
	return c.target
}

func (c *Camera) SetTarget(target math.Vec3[float64]) {
	c.target = target
	c.isDirty = true
}

// SetPerspective validates and stores the projection parameters.
func (c *Camera) SetPerspective(fov, aspect, near, far float64) error {
	if !(aspect > 0) {
		return fmt.Errorf("camera aspect %v must be > 0: %w", aspect, core.ErrInvalidArgument)
	}
	projection, err := math.CreatePerspectiveFieldOfView(fov, aspect, near, far)
	if err != nil {
		return fmt.Errorf("camera: %w", err)
	}
	c.fov, c.aspect, c.near, c.far = fov, aspect, near, far
	c.projection = projection
	c.isDirty = true
	return nil
}

func (c *Camera) rebuild() {
	if !c.isDirty {
		return
	}
	c.view = math.CreateLookAt(c.position, c.target, c.up)
	c.frustum.Update(c.view.Mul(c.projection))
	c.isDirty = false
}

func (c *Camera) View() math.Matrix[float64] {
	c.rebuild()
	return c.view
}

func (c *Camera) Projection() math.Matrix[float64] {
	return c.projection
}

// ViewProjection returns View * Projection for row vectors.
func (c *Camera) ViewProjection() math.Matrix[float64] {
	c.rebuild()
	return c.frustum.Matrix()
}

// Frustum returns a copy of the current view frustum.
func (c *Camera) Frustum() math.BoundingFrustum[float64] {
	c.rebuild()
	return c.frustum
}

// Forward is the unit direction from position towards target.
func (c *Camera) Forward() math.Vec3[float64] {
	return c.target.Sub(c.position).Normalize()
}

func (c *Camera) Right() math.Vec3[float64] {
	return c.Forward().Cross(c.up).Normalize()
}

func (c *Camera) move(direction math.Vec3[float64], amount float64) {
	offset := direction.MulScalar(amount)
	c.position = c.position.Add(offset)
	c.target = c.target.Add(offset)
	c.isDirty = true
}

func (c *Camera) MoveForward(amount float64) {
	c.move(c.Forward(), amount)
}

func (c *Camera) MoveBackward(amount float64) {
	c.move(c.Forward(), -amount)
}

func (c *Camera) MoveLeft(amount float64) {
	c.move(c.Right(), -amount)
}

func (c *Camera) MoveRight(amount float64) {
	c.move(c.Right(), amount)
}

func (c *Camera) MoveUp(amount float64) {
	c.move(c.up.Normalize(), amount)
}

func (c *Camera) MoveDown(amount float64) {
	c.move(c.up.Normalize(), -amount)
}

// Yaw turns the target around the up axis through the camera position.
func (c *Camera) Yaw(amount float64) {
	rotation := math.QuaternionFromAxisAngle(c.up.Normalize(), amount)
	c.target = c.position.Add(c.target.Sub(c.position).TransformQuaternion(rotation))
	c.isDirty = true
}

// Pitch tilts the target around the right axis. The angle to the up axis is
// kept within 89 degrees of the horizon to avoid gimbal lock.
func (c *Camera) Pitch(amount float64) {
	toTarget := c.target.Sub(c.position)
	distance := toTarget.Length()
	up := c.up.Normalize()

	current := math.Asin(math.Clamp(toTarget.Normalize().Dot(up), -1, 1))
	next := math.Clamp(current+amount, -pitchLimit, pitchLimit)

	rotation := math.QuaternionFromAxisAngle(c.Right(), next-current)
	c.target = c.position.Add(toTarget.Normalize().TransformQuaternion(rotation).MulScalar(distance))
	c.isDirty = true
}

/**
 * @brief Builds a world-space picking ray through a point in normalized device
 * coordinates, x and y in [-1, 1] with +y up.
 */
func (c *Camera) Pick(x, y float64) math.Ray[float64] {
	inverse := c.ViewProjection().Invert()
	unproject := func(depth float64) math.Vec3[float64] {
		p := math.NewVec4(x, y, depth, 1).Transform(inverse)
		return math.NewVec3(p.X, p.Y, p.Z).DivScalar(p.W)
	}
	// The far plane may be at infinity, so the direction is taken halfway
	// through the depth range.
	origin := unproject(0)
	return math.NewRay(origin, unproject(0.5).Sub(origin).Normalize())
}
