package camera

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

func testConfig() Config {
	cfg := DefaultConfig()
	cfg.EnableDamping = false
	return cfg
}

func newTestController(cfg Config) *Controller {
	c := New(cfg, mgl64.Vec3{0, 0, 10}, mgl64.Vec3{0, 0, 0})
	c.SetViewport(800, 600)
	return c
}

func currentSpherical(c *Controller) spherical {
	return sphericalFromVec3(c.Position.Sub(c.Target))
}

func TestClampInvariant(t *testing.T) {
	cfg := testConfig()
	cfg.MinPolarAngle = 0.1
	cfg.MaxPolarAngle = 2.0
	cfg.MinDistance = 2
	cfg.MaxDistance = 50
	c := newTestController(cfg)

	drags := [][4]float64{
		{0, 0, 5000, -4000},
		{100, 100, -9000, 9000},
		{0, 0, 0, 100000},
	}
	for _, d := range drags {
		c.PointerDown(ButtonPrimary, Mods{}, d[0], d[1])
		c.PointerMove(d[2], d[3])
		c.PointerUp()
		c.Update()

		s := currentSpherical(c)
		if s.phi < cfg.MinPolarAngle-1e-9 || s.phi > cfg.MaxPolarAngle+1e-9 {
			t.Fatalf("phi %v escaped [%v, %v]", s.phi, cfg.MinPolarAngle, cfg.MaxPolarAngle)
		}
	}

	for i := 0; i < 300; i++ {
		c.Wheel(-1)
		c.Update()
	}
	if s := currentSpherical(c); s.radius > cfg.MaxDistance+1e-9 {
		t.Fatalf("radius %v exceeded max %v", s.radius, cfg.MaxDistance)
	}
	for i := 0; i < 600; i++ {
		c.Wheel(1)
		c.Update()
	}
	if s := currentSpherical(c); s.radius < cfg.MinDistance-1e-9 {
		t.Fatalf("radius %v fell below min %v", s.radius, cfg.MinDistance)
	}
}

func TestAzimuthClamp(t *testing.T) {
	cfg := testConfig()
	cfg.MinAzimuthAngle = -0.5
	cfg.MaxAzimuthAngle = 0.5
	c := newTestController(cfg)

	c.PointerDown(ButtonPrimary, Mods{}, 0, 0)
	c.PointerMove(-4000, 0)
	c.PointerUp()
	c.Update()

	if s := currentSpherical(c); s.theta > 0.5+1e-9 || s.theta < -0.5-1e-9 {
		t.Errorf("theta %v escaped [-0.5, 0.5]", s.theta)
	}
}

func TestDampingConvergence(t *testing.T) {
	cfg := DefaultConfig() // damping on, factor 0.05
	c := newTestController(cfg)

	c.PointerDown(ButtonPrimary, Mods{}, 300, 300)
	c.PointerMove(400, 350)
	c.PointerUp()

	prev := math.Inf(1)
	for i := 0; i < 200; i++ {
		c.Update()
		mag := math.Hypot(c.sphericalDelta.theta, c.sphericalDelta.phi) + c.panOffset.Len()
		if mag > prev+1e-12 {
			t.Fatalf("frame %d: pending delta grew from %v to %v", i, prev, mag)
		}
		prev = mag
	}
	if prev > 1e-4 {
		t.Errorf("pending delta %v after 200 frames, want < 1e-4", prev)
	}
}

func TestNoDampingInstantApply(t *testing.T) {
	c := newTestController(testConfig())

	c.PointerDown(ButtonPrimary, Mods{}, 100, 100)
	c.PointerMove(160, 100)
	c.PointerUp()

	wantTheta := -2 * math.Pi * 60 / 600
	if !c.Update() {
		t.Fatal("Update reported no movement after a drag")
	}
	if s := currentSpherical(c); math.Abs(s.theta-wantTheta) > 1e-9 {
		t.Errorf("theta = %v, want %v", s.theta, wantTheta)
	}
	if c.sphericalDelta.theta != 0 || c.sphericalDelta.phi != 0 {
		t.Errorf("sphericalDelta not zeroed: %+v", c.sphericalDelta)
	}
	if c.panOffset != (mgl64.Vec3{}) {
		t.Errorf("panOffset not zeroed: %v", c.panOffset)
	}
}

func TestWheelZoomFactor(t *testing.T) {
	c := newTestController(testConfig())

	c.Wheel(1) // scroll up: zoom in
	c.Update()
	if d := c.Distance(); math.Abs(d-9.5) > 1e-9 {
		t.Errorf("distance after zoom in = %v, want 9.5", d)
	}

	c.Wheel(-1) // scroll down: zoom out
	c.Update()
	if d := c.Distance(); math.Abs(d-10) > 1e-9 {
		t.Errorf("distance after zoom out = %v, want 10", d)
	}
}

func TestWheelIgnoredDuringDrag(t *testing.T) {
	c := newTestController(testConfig())
	c.PointerDown(ButtonPrimary, Mods{}, 0, 0)
	c.Wheel(1)
	c.PointerUp()
	c.Update()
	if d := c.Distance(); math.Abs(d-10) > 1e-9 {
		t.Errorf("wheel applied during drag: distance %v", d)
	}
}

func TestPanMovesTargetAlongCameraAxes(t *testing.T) {
	c := newTestController(testConfig())

	c.PointerDown(ButtonPrimary, Mods{Shift: true}, 100, 100)
	if c.State() != StatePan {
		t.Fatalf("state = %v, want StatePan", c.State())
	}
	c.PointerMove(200, 100)
	c.PointerUp()
	c.Update()

	if c.Target.X() >= 0 {
		t.Errorf("target.x = %v, want negative (pan right moves focus left)", c.Target.X())
	}
	if math.Abs(c.Target.Y()) > 1e-9 || math.Abs(c.Target.Z()) > 1e-9 {
		t.Errorf("pan leaked into y/z: %v", c.Target)
	}
	if d := c.Distance(); math.Abs(d-10) > 1e-9 {
		t.Errorf("pan changed distance: %v", d)
	}
}

func TestPanStateFromButtons(t *testing.T) {
	c := newTestController(testConfig())
	cases := []struct {
		button Button
		mods   Mods
		want   State
	}{
		{ButtonPrimary, Mods{}, StateRotate},
		{ButtonPrimary, Mods{Control: true}, StatePan},
		{ButtonPrimary, Mods{Super: true}, StatePan},
		{ButtonMiddle, Mods{}, StatePan},
		{ButtonSecondary, Mods{}, StatePan},
	}
	for _, tc := range cases {
		c.PointerDown(tc.button, tc.mods, 0, 0)
		if c.State() != tc.want {
			t.Errorf("button %v mods %+v: state = %v, want %v", tc.button, tc.mods, c.State(), tc.want)
		}
		c.PointerUp()
		if c.State() != StateNone {
			t.Errorf("state after PointerUp = %v, want StateNone", c.State())
		}
	}
}

func TestMoveDetachedAfterPointerUp(t *testing.T) {
	c := newTestController(testConfig())
	c.PointerDown(ButtonPrimary, Mods{}, 0, 0)
	c.PointerUp()
	c.PointerMove(500, 500)
	if c.sphericalDelta.theta != 0 || c.sphericalDelta.phi != 0 {
		t.Errorf("move after release mutated deltas: %+v", c.sphericalDelta)
	}
}

func TestPoleSafety(t *testing.T) {
	c := newTestController(testConfig())

	// Drag straight up hard enough to push phi past pi.
	c.PointerDown(ButtonPrimary, Mods{}, 0, 600)
	c.PointerMove(0, 0)
	c.PointerUp()
	c.Update()

	s := currentSpherical(c)
	if s.phi >= math.Pi || s.phi <= 0 {
		t.Fatalf("phi = %v reached a pole", s.phi)
	}
	// theta must stay well defined: the offset keeps a horizontal component.
	horiz := math.Hypot(c.Position.X()-c.Target.X(), c.Position.Z()-c.Target.Z())
	if horiz == 0 {
		t.Error("camera sits exactly on the pole axis")
	}
}

func TestUpdateIdleReturnsFalse(t *testing.T) {
	c := newTestController(testConfig())
	if c.Update() {
		t.Error("idle Update reported movement")
	}

	c.PointerDown(ButtonPrimary, Mods{}, 0, 0)
	c.PointerMove(50, 0)
	c.PointerUp()
	if !c.Update() {
		t.Error("Update after drag reported no movement")
	}
	if c.Update() {
		t.Error("second idle Update reported movement")
	}
}

func TestDampingComesToRest(t *testing.T) {
	c := newTestController(DefaultConfig())
	c.PointerDown(ButtonPrimary, Mods{}, 300, 300)
	c.PointerMove(400, 350)
	c.PointerUp()

	rested := false
	for i := 0; i < 2000; i++ {
		if !c.Update() {
			rested = true
			break
		}
	}
	if !rested {
		t.Error("damped motion never came to rest within 2000 frames")
	}
}

func TestMinDistanceFloored(t *testing.T) {
	cfg := testConfig()
	cfg.MinDistance = 0
	c := newTestController(cfg)

	for i := 0; i < 1000; i++ {
		c.Wheel(1)
		c.Update()
	}
	d := c.Distance()
	if math.IsNaN(d) || d < 1e-3-1e-12 {
		t.Errorf("distance %v collapsed below safe minimum", d)
	}
	s := currentSpherical(c)
	if math.IsNaN(s.theta) || math.IsNaN(s.phi) {
		t.Error("spherical conversion degenerated to NaN")
	}
}

func TestExternalCameraMovePickedUp(t *testing.T) {
	c := newTestController(testConfig())
	// Something outside the controller teleports the camera.
	c.Position = mgl64.Vec3{20, 0, 0}
	if !c.Update() {
		t.Error("Update ignored an external position change")
	}
	s := currentSpherical(c)
	if math.Abs(s.radius-20) > 1e-9 {
		t.Errorf("radius = %v, want 20 (re-derived from live position)", s.radius)
	}
}

func BenchmarkUpdate(b *testing.B) {
	c := newTestController(DefaultConfig())
	c.PointerDown(ButtonPrimary, Mods{}, 0, 0)
	c.PointerMove(100, 80)
	c.PointerUp()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		c.Update()
	}
}
