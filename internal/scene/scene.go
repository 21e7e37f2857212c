package scene

import (
	"github.com/go-gl/mathgl/mgl64"
)

// Kind identifies a primitive shape type.
type Kind uint8

const (
	KindBox Kind = iota
	KindSphere
	KindCylinder
	KindCone
	KindPlane
	kindCount
)

var kindNames = [kindCount]string{"box", "sphere", "cylinder", "cone", "plane"}

// Valid reports whether k names a known primitive shape.
func (k Kind) Valid() bool {
	return k < kindCount
}

func (k Kind) String() string {
	if k.Valid() {
		return kindNames[k]
	}
	return "unknown"
}

// ParseKind maps a record type string (e.g. from a scene file) to a Kind.
func ParseKind(s string) (Kind, bool) {
	for k, name := range kindNames {
		if name == s {
			return Kind(k), true
		}
	}
	return kindCount, false
}

// Object is a single primitive placed inside a container. Position, Rotation
// (Euler radians) and Scale are container-local; Color is packed 0xRRGGBB.
type Object struct {
	Kind     Kind
	Name     string
	Position mgl64.Vec3
	Rotation mgl64.Vec3
	Scale    mgl64.Vec3
	Color    uint32
}

// Bounds is a scene's footprint, used by the compositor for spacing checks.
type Bounds struct {
	Width  float64
	Height float64
	Depth  float64
}

// Entry is one independent scene fed to the compositor. Object order is
// preserved; it only determines render order.
type Entry struct {
	Name    string
	Objects []Object
	Bounds  Bounds
}

// Label is a floating billboard text attached to a group, placed Height units
// above the group origin.
type Label struct {
	Text   string
	Height float64
}

// Outline is a closed ground rectangle marking a group's cell boundary.
type Outline struct {
	HalfWidth float64
	HalfDepth float64
}

// Group is a named container of objects sharing one world-space offset.
// Objects keep their container-local transforms; renderers add Offset.
type Group struct {
	Name    string
	Offset  mgl64.Vec3
	Objects []Object
	Label   *Label
	Outline *Outline
}

// Graph is an ordered collection of named groups. Insertion order is stable so
// render order and export order match the order groups were added.
type Graph struct {
	groups []*Group
	byName map[string]*Group
}

func NewGraph() *Graph {
	return &Graph{byName: make(map[string]*Group)}
}

// AddGroup appends a new empty group and returns it. Adding a name that
// already exists replaces the old group in place, keeping its position.
func (g *Graph) AddGroup(name string) *Group {
	grp := &Group{Name: name}
	if old, ok := g.byName[name]; ok {
		for i, cur := range g.groups {
			if cur == old {
				g.groups[i] = grp
				break
			}
		}
	} else {
		g.groups = append(g.groups, grp)
	}
	g.byName[name] = grp
	return grp
}

// Group returns the named group, if present.
func (g *Graph) Group(name string) (*Group, bool) {
	grp, ok := g.byName[name]
	return grp, ok
}

// Groups returns the groups in insertion order. The slice is shared; callers
// must not mutate it.
func (g *Graph) Groups() []*Group {
	return g.groups
}

func (g *Graph) Len() int {
	return len(g.groups)
}

// Remove deletes the named group and reports whether it existed.
func (g *Graph) Remove(name string) bool {
	grp, ok := g.byName[name]
	if !ok {
		return false
	}
	delete(g.byName, name)
	for i, cur := range g.groups {
		if cur == grp {
			g.groups = append(g.groups[:i], g.groups[i+1:]...)
			break
		}
	}
	return true
}

// RemovePrefix deletes every group whose name starts with prefix and returns
// how many were removed.
func (g *Graph) RemovePrefix(prefix string) int {
	removed := 0
	kept := g.groups[:0]
	for _, grp := range g.groups {
		if len(grp.Name) >= len(prefix) && grp.Name[:len(prefix)] == prefix {
			delete(g.byName, grp.Name)
			removed++
			continue
		}
		kept = append(kept, grp)
	}
	g.groups = kept
	return removed
}
