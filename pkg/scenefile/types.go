// Package scenefile defines the two JSON shapes the viewer exchanges:
// a single scene as a flat array of primitive records, and a combined world
// with metadata and one record list per scene.
package scenefile

// Vector is a JSON-friendly 3-component vector.
type Vector struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// PrimitiveRecord describes one placed primitive. Type is one of "box",
// "sphere", "cylinder", "cone" or "plane"; Rotation is Euler radians; Color
// is packed 0xRRGGBB.
type PrimitiveRecord struct {
	ID       string `json:"id"`
	Type     string `json:"type"`
	Name     string `json:"name"`
	Position Vector `json:"position"`
	Rotation Vector `json:"rotation"`
	Scale    Vector `json:"scale"`
	Color    uint32 `json:"color"`
}

// Metadata describes a combined-world export.
type Metadata struct {
	CreatedAt   string `json:"createdAt"`
	TotalScenes int    `json:"totalScenes"`
	Description string `json:"description"`
}

// SceneRecord is one scene inside a combined world.
type SceneRecord struct {
	Name    string            `json:"name"`
	Objects []PrimitiveRecord `json:"objects"`
}

// WorldRecord is the combined-world file shape.
type WorldRecord struct {
	Metadata Metadata      `json:"metadata"`
	Scenes   []SceneRecord `json:"scenes"`
}
