package camera

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// spherical expresses a position relative to the orbit target as distance,
// azimuth around the Y axis, and polar angle from the Y axis.
type spherical struct {
	radius float64
	theta  float64
	phi    float64
}

// sphericalFromVec3 converts an offset vector to spherical coordinates.
// A zero-length offset yields radius 0 with both angles 0; callers clamp the
// radius before converting back so that case never reaches rendering.
func sphericalFromVec3(v mgl64.Vec3) spherical {
	s := spherical{radius: v.Len()}
	if s.radius > 0 {
		s.theta = math.Atan2(v.X(), v.Z())
		s.phi = math.Acos(mgl64.Clamp(v.Y()/s.radius, -1, 1))
	}
	return s
}

// vec3 converts back to an offset vector from the target.
func (s spherical) vec3() mgl64.Vec3 {
	sinPhiRadius := math.Sin(s.phi) * s.radius
	return mgl64.Vec3{
		sinPhiRadius * math.Sin(s.theta),
		math.Cos(s.phi) * s.radius,
		sinPhiRadius * math.Cos(s.theta),
	}
}

// makeSafe nudges phi away from the poles, where theta is undefined.
func (s *spherical) makeSafe() {
	const eps = 1e-6
	s.phi = math.Max(eps, math.Min(math.Pi-eps, s.phi))
}
