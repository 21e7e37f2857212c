package scenes

import (
	"github.com/go-gl/mathgl/mgl64"

	"worldshop/internal/scene"
)

// Orchard is a grid of stylized trees (cylinder trunk, cone canopy) on a
// grass plane. It caches its built objects and implements Dispose to release
// the cache, exercising the registry's disposer capability.
type Orchard struct {
	built []scene.Object
}

func (o *Orchard) Name() string { return "orchard" }

func (o *Orchard) Bounds() scene.Bounds {
	return scene.Bounds{Width: 10, Height: 4, Depth: 10}
}

func (o *Orchard) Build() []scene.Object {
	if o.built != nil {
		return o.built
	}
	o.built = append(o.built, scene.Object{
		Kind:  scene.KindPlane,
		Name:  "grass",
		Scale: mgl64.Vec3{10, 1, 10},
		Color: 0x5B8C3E,
	})
	for row := 0; row < 3; row++ {
		for col := 0; col < 3; col++ {
			x := float64(col-1) * 3.5
			z := float64(row-1) * 3.5
			o.built = append(o.built,
				scene.Object{
					Kind:     scene.KindCylinder,
					Name:     "trunk",
					Position: mgl64.Vec3{x, 0.75, z},
					Scale:    mgl64.Vec3{0.4, 1.5, 0.4},
					Color:    0x6B4A2B,
				},
				scene.Object{
					Kind:     scene.KindCone,
					Name:     "canopy",
					Position: mgl64.Vec3{x, 2.4, z},
					Scale:    mgl64.Vec3{2, 2.2, 2},
					Color:    0x3E7A34,
				},
			)
		}
	}
	return o.built
}

// Dispose drops the cached build.
func (o *Orchard) Dispose() {
	o.built = nil
}
