// Package tour plays scripted camera tours: a sequence of focus waypoints
// visited one leg at a time with smoothstep easing, driving the orbit
// controller's target and distance from the render loop.
package tour

import (
	"github.com/go-gl/mathgl/mgl64"
)

// Waypoint is one tour stop: where the camera should look and from how far.
type Waypoint struct {
	Target   mgl64.Vec3
	Distance float64
}

// Tour advances through waypoints at a fixed seconds-per-leg pace. A tour
// with fewer than two waypoints is valid and simply holds the single stop
// (or does nothing when empty).
type Tour struct {
	waypoints   []Waypoint
	legDuration float64

	active  bool
	leg     int
	elapsed float64
}

// New returns an inactive tour over points. legDuration below 0.1s is raised
// to 0.1s so a zero value cannot produce an instant, divide-heavy tour.
func New(points []Waypoint, legDuration float64) *Tour {
	if legDuration < 0.1 {
		legDuration = 0.1
	}
	return &Tour{waypoints: points, legDuration: legDuration}
}

// Start rewinds to the first leg and activates the tour.
func (t *Tour) Start() {
	if len(t.waypoints) == 0 {
		return
	}
	t.leg = 0
	t.elapsed = 0
	t.active = true
}

// Stop deactivates the tour, leaving the camera wherever it is.
func (t *Tour) Stop() {
	t.active = false
}

func (t *Tour) Active() bool {
	return t.active
}

// Update advances the tour by dt seconds and returns the current camera
// waypoint. ok is false once the tour has finished (or was never started);
// the tour deactivates itself after the last leg completes.
func (t *Tour) Update(dt float64) (Waypoint, bool) {
	if !t.active {
		return Waypoint{}, false
	}
	if len(t.waypoints) == 1 {
		return t.waypoints[0], true
	}

	t.elapsed += dt
	for t.elapsed >= t.legDuration {
		t.elapsed -= t.legDuration
		t.leg++
		if t.leg >= len(t.waypoints)-1 {
			t.active = false
			return t.waypoints[len(t.waypoints)-1], true
		}
	}

	from := t.waypoints[t.leg]
	to := t.waypoints[t.leg+1]
	u := smoothstep(t.elapsed / t.legDuration)
	return Waypoint{
		Target:   lerp(from.Target, to.Target, u),
		Distance: from.Distance + (to.Distance-from.Distance)*u,
	}, true
}

// smoothstep maps [0,1] to [0,1] with zero slope at both ends, so each leg
// eases out of one stop and into the next.
func smoothstep(u float64) float64 {
	if u < 0 {
		return 0
	}
	if u > 1 {
		return 1
	}
	return u * u * (3 - 2*u)
}

func lerp(a, b mgl64.Vec3, u float64) mgl64.Vec3 {
	return a.Add(b.Sub(a).Mul(u))
}
