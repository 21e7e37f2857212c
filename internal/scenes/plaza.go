package scenes

import (
	"github.com/go-gl/mathgl/mgl64"

	"worldshop/internal/scene"
	"worldshop/internal/tour"
)

// Plaza is a small town square: a paved ground plane, a central fountain and
// four corner pillars. It also publishes tour waypoints circling the square.
type Plaza struct{}

func (p *Plaza) Name() string { return "plaza" }

func (p *Plaza) Bounds() scene.Bounds {
	return scene.Bounds{Width: 10, Height: 3, Depth: 10}
}

func (p *Plaza) Build() []scene.Object {
	objects := []scene.Object{
		{
			Kind:  scene.KindPlane,
			Name:  "pavement",
			Scale: mgl64.Vec3{10, 1, 10},
			Color: 0x9A9A8E,
		},
		{
			Kind:     scene.KindCylinder,
			Name:     "fountain-basin",
			Position: mgl64.Vec3{0, 0.25, 0},
			Scale:    mgl64.Vec3{3, 0.5, 3},
			Color:    0x7A8FA3,
		},
		{
			Kind:     scene.KindSphere,
			Name:     "fountain-orb",
			Position: mgl64.Vec3{0, 1.1, 0},
			Scale:    mgl64.Vec3{1, 1, 1},
			Color:    0x4FA3D1,
		},
	}
	for _, corner := range []mgl64.Vec3{{-4, 0, -4}, {4, 0, -4}, {-4, 0, 4}, {4, 0, 4}} {
		objects = append(objects,
			scene.Object{
				Kind:     scene.KindCylinder,
				Name:     "pillar",
				Position: mgl64.Vec3{corner.X(), 1, corner.Z()},
				Scale:    mgl64.Vec3{0.6, 2, 0.6},
				Color:    0xB8B0A1,
			},
			scene.Object{
				Kind:     scene.KindCone,
				Name:     "pillar-cap",
				Position: mgl64.Vec3{corner.X(), 2.4, corner.Z()},
				Scale:    mgl64.Vec3{0.8, 0.8, 0.8},
				Color:    0x8A4B3B,
			},
		)
	}
	return objects
}

// TourPoints circles the fountain and ends on a close-up of the orb.
func (p *Plaza) TourPoints() []tour.Waypoint {
	return []tour.Waypoint{
		{Target: mgl64.Vec3{0, 1, 0}, Distance: 18},
		{Target: mgl64.Vec3{4, 1, 4}, Distance: 10},
		{Target: mgl64.Vec3{-4, 1, 4}, Distance: 10},
		{Target: mgl64.Vec3{0, 1.1, 0}, Distance: 5},
	}
}
