// Package camera implements an orbit/pan/dolly controller: pointer and wheel
// deltas accumulate into pending spherical and pan offsets, and a per-frame
// Update applies them to the camera transform with optional inertial damping
// and hard angular/radial clamps.
package camera

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// State is the controller's interaction state. It changes only on pointer
// down (chosen by button and modifiers) and pointer up (always back to
// StateNone); Update runs the same regardless of state.
type State int

const (
	StateNone State = iota
	StateRotate
	// StateDolly is reserved for drag-dolly surfaces (e.g. touch pinch);
	// wheel dolly is instantaneous and never holds the state.
	StateDolly
	StatePan
)

// Button is a device-independent pointer button.
type Button int

const (
	ButtonPrimary Button = iota
	ButtonSecondary
	ButtonMiddle
)

// Mods are the modifier keys held during a pointer event.
type Mods struct {
	Control bool
	Shift   bool
	Super   bool
}

func (m Mods) any() bool {
	return m.Control || m.Shift || m.Super
}

// Config holds the controller's clamps and speeds.
type Config struct {
	// Radial clamp; MinDistance is floored at 1e-3 so the spherical
	// conversion never sees a zero-length offset.
	MinDistance float64
	MaxDistance float64

	// Polar clamp, a subset of [0, pi].
	MinPolarAngle float64
	MaxPolarAngle float64

	// Azimuth clamp; leave at the +-Inf defaults for free rotation.
	MinAzimuthAngle float64
	MaxAzimuthAngle float64

	EnableDamping bool
	DampingFactor float64

	RotateSpeed float64
	PanSpeed    float64
	ZoomSpeed   float64
	KeyPanSpeed float64 // pixels per key press

	// FOV is the vertical field of view in degrees; pan speed scales with
	// tan(FOV/2) so the point under the cursor tracks the cursor.
	FOV float64
}

// DefaultConfig mirrors the conventional orbit-control defaults.
func DefaultConfig() Config {
	return Config{
		MinDistance:     1,
		MaxDistance:     500,
		MinPolarAngle:   0,
		MaxPolarAngle:   math.Pi,
		MinAzimuthAngle: math.Inf(-1),
		MaxAzimuthAngle: math.Inf(1),
		EnableDamping:   true,
		DampingFactor:   0.05,
		RotateSpeed:     1,
		PanSpeed:        1,
		ZoomSpeed:       1,
		KeyPanSpeed:     7,
		FOV:             60,
	}
}

// moveEpsilon is the movement threshold below which Update reports no change.
const moveEpsilon = 1e-6

// Controller owns one camera transform. It is bound to a single input
// surface and must be driven from a single render loop; it is not safe for
// concurrent use.
type Controller struct {
	cfg Config

	Position mgl64.Vec3
	Target   mgl64.Vec3
	Up       mgl64.Vec3

	state          State
	sphericalDelta spherical // radius unused; pending theta/phi
	panOffset      mgl64.Vec3
	scale          float64

	rotateStart mgl64.Vec2
	panStart    mgl64.Vec2

	viewportW float64
	viewportH float64

	// dragMove is attached on pointer down and detached on pointer up, so a
	// stray move after release can never mutate the pending deltas.
	dragMove func(x, y float64)

	lastPosition mgl64.Vec3
	lastTarget   mgl64.Vec3
}

// New returns a controller orbiting target from position.
func New(cfg Config, position, target mgl64.Vec3) *Controller {
	if cfg.MinDistance < 1e-3 {
		cfg.MinDistance = 1e-3
	}
	if cfg.MaxDistance < cfg.MinDistance {
		cfg.MaxDistance = cfg.MinDistance
	}
	if cfg.MinPolarAngle < 0 {
		cfg.MinPolarAngle = 0
	}
	if cfg.MaxPolarAngle > math.Pi {
		cfg.MaxPolarAngle = math.Pi
	}
	c := &Controller{
		cfg:      cfg,
		Position: position,
		Target:   target,
		Up:       mgl64.Vec3{0, 1, 0},
		scale:    1,
	}
	c.lastPosition = position
	c.lastTarget = target
	return c
}

// SetViewport tells the controller the input surface size in pixels. Orbit
// speed is normalized by height on both axes so angular speed is independent
// of the aspect ratio.
func (c *Controller) SetViewport(width, height float64) {
	c.viewportW = width
	c.viewportH = height
}

// State returns the current interaction state.
func (c *Controller) State() State {
	return c.state
}

// Update recomputes the camera transform from the accumulated input state and
// returns whether the camera moved beyond a fixed epsilon, letting the render
// loop skip redraws. It must be called once per frame even with no input,
// because damping needs to keep integrating toward rest. The spherical
// coordinates are re-derived from the live Position every call, so external
// code may move the camera between frames without confusing the controller.
func (c *Controller) Update() bool {
	offset := c.Position.Sub(c.Target)
	s := sphericalFromVec3(offset)

	if c.cfg.EnableDamping {
		s.theta += c.sphericalDelta.theta * c.cfg.DampingFactor
		s.phi += c.sphericalDelta.phi * c.cfg.DampingFactor
	} else {
		s.theta += c.sphericalDelta.theta
		s.phi += c.sphericalDelta.phi
	}

	if !math.IsInf(c.cfg.MinAzimuthAngle, 0) || !math.IsInf(c.cfg.MaxAzimuthAngle, 0) {
		s.theta = mgl64.Clamp(s.theta, c.cfg.MinAzimuthAngle, c.cfg.MaxAzimuthAngle)
	}
	s.phi = mgl64.Clamp(s.phi, c.cfg.MinPolarAngle, c.cfg.MaxPolarAngle)
	s.makeSafe()
	s.radius = mgl64.Clamp(s.radius*c.scale, c.cfg.MinDistance, c.cfg.MaxDistance)

	if c.cfg.EnableDamping {
		c.Target = c.Target.Add(c.panOffset.Mul(c.cfg.DampingFactor))
	} else {
		c.Target = c.Target.Add(c.panOffset)
	}
	c.Position = c.Target.Add(s.vec3())

	if c.cfg.EnableDamping {
		decay := 1 - c.cfg.DampingFactor
		c.sphericalDelta.theta *= decay
		c.sphericalDelta.phi *= decay
		c.panOffset = c.panOffset.Mul(decay)
	} else {
		c.sphericalDelta = spherical{}
		c.panOffset = mgl64.Vec3{}
	}
	c.scale = 1

	moved := c.Position.Sub(c.lastPosition).LenSqr() > moveEpsilon*moveEpsilon ||
		c.Target.Sub(c.lastTarget).LenSqr() > moveEpsilon*moveEpsilon
	if moved {
		c.lastPosition = c.Position
		c.lastTarget = c.Target
	}
	return moved
}

// PointerDown starts a drag, choosing the interaction state from the button
// and modifiers: primary with no modifier orbits; primary with any modifier,
// middle, or secondary pans. The matching move handler stays attached until
// PointerUp.
func (c *Controller) PointerDown(button Button, mods Mods, x, y float64) {
	switch {
	case button == ButtonPrimary && !mods.any():
		c.state = StateRotate
		c.rotateStart = mgl64.Vec2{x, y}
		c.dragMove = c.rotateMove
	default:
		c.state = StatePan
		c.panStart = mgl64.Vec2{x, y}
		c.dragMove = c.panMove
	}
}

// PointerMove feeds a cursor position; it has no effect unless a drag is
// active.
func (c *Controller) PointerMove(x, y float64) {
	if c.dragMove != nil {
		c.dragMove(x, y)
	}
}

// PointerUp ends any active drag, detaching the move handler and returning to
// StateNone.
func (c *Controller) PointerUp() {
	c.state = StateNone
	c.dragMove = nil
}

// Wheel dollies by a fixed geometric factor per tick: scrolling up (dy > 0)
// multiplies the radius by 0.95^ZoomSpeed (zoom in), scrolling down divides
// it (zoom out). Wheel input is ignored while a drag is active.
func (c *Controller) Wheel(dy float64) {
	if c.state != StateNone {
		return
	}
	factor := math.Pow(0.95, c.cfg.ZoomSpeed)
	if dy > 0 {
		c.scale *= factor
	} else if dy < 0 {
		c.scale /= factor
	}
}

// PanBy pans by a pixel delta, e.g. from arrow keys.
func (c *Controller) PanBy(dx, dy float64) {
	c.pan(dx*c.cfg.KeyPanSpeed, dy*c.cfg.KeyPanSpeed)
}

// SetTarget moves the focus point directly (used by scripted tours), keeping
// the current offset direction.
func (c *Controller) SetTarget(target mgl64.Vec3) {
	offset := c.Position.Sub(c.Target)
	c.Target = target
	c.Position = target.Add(offset)
}

// SetDistance moves the camera along its current view direction to the given
// distance from the target, subject to the radial clamp on the next Update.
func (c *Controller) SetDistance(d float64) {
	offset := c.Position.Sub(c.Target)
	s := sphericalFromVec3(offset)
	s.radius = mgl64.Clamp(d, c.cfg.MinDistance, c.cfg.MaxDistance)
	s.makeSafe()
	c.Position = c.Target.Add(s.vec3())
}

// Distance returns the current camera-to-target distance.
func (c *Controller) Distance() float64 {
	return c.Position.Sub(c.Target).Len()
}

// ViewMatrix returns the right-handed look-at matrix for the current
// transform.
func (c *Controller) ViewMatrix() mgl64.Mat4 {
	return mgl64.LookAtV(c.Position, c.Target, c.Up)
}

// Dispose detaches any active drag handler. The controller holds no other
// external resources.
func (c *Controller) Dispose() {
	c.PointerUp()
}

func (c *Controller) rotateMove(x, y float64) {
	if c.viewportH <= 0 {
		return
	}
	dx := x - c.rotateStart.X()
	dy := y - c.rotateStart.Y()
	c.rotateStart = mgl64.Vec2{x, y}

	// Height normalizes both axes so angular speed does not depend on the
	// aspect ratio.
	c.sphericalDelta.theta -= 2 * math.Pi * dx / c.viewportH * c.cfg.RotateSpeed
	c.sphericalDelta.phi -= 2 * math.Pi * dy / c.viewportH * c.cfg.RotateSpeed
}

func (c *Controller) panMove(x, y float64) {
	dx := x - c.panStart.X()
	dy := y - c.panStart.Y()
	c.panStart = mgl64.Vec2{x, y}
	c.pan(dx*c.cfg.PanSpeed, dy*c.cfg.PanSpeed)
}

// pan translates the target along the camera's right and up axes. The pixel
// delta is scaled by the distance to the target and the tangent of half the
// vertical field of view, so the world point under the cursor follows the
// cursor at any zoom level.
func (c *Controller) pan(dx, dy float64) {
	if c.viewportH <= 0 {
		return
	}
	offset := c.Position.Sub(c.Target)
	targetDistance := offset.Len() * math.Tan((c.cfg.FOV/2)*math.Pi/180)

	forward := offset.Mul(-1).Normalize()
	right := forward.Cross(c.Up).Normalize()
	up := right.Cross(forward)

	c.panOffset = c.panOffset.
		Add(right.Mul(-2 * dx * targetDistance / c.viewportH)).
		Add(up.Mul(2 * dy * targetDistance / c.viewportH))
}
