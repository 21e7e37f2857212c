// Package compositor lays independent scenes out on a grid and merges them
// into one scene graph world, one named container per scene with a floating
// name label and a ground outline marking the cell boundary.
package compositor

import (
	"log"

	"worldshop/internal/scene"
)

// ContainerPrefix names every group the compositor creates, so a re-combine
// can find and remove exactly its own containers and nothing else.
const ContainerPrefix = "district:"

// defaultLabelHeight places labels above the tallest common scene content.
const defaultLabelHeight = 6.0

// Compositor owns the per-scene containers inside a shared graph. It is the
// only writer of groups under ContainerPrefix.
type Compositor struct {
	graph     *scene.Graph
	maxPerRow int
	spacing   float64

	entries []scene.Entry
}

// New returns a compositor writing into graph. maxPerRow is clamped to at
// least 1; spacing should be at least the largest scene footprint so cells
// never overlap.
func New(graph *scene.Graph, maxPerRow int, spacing float64) *Compositor {
	if maxPerRow < 1 {
		maxPerRow = 1
	}
	return &Compositor{graph: graph, maxPerRow: maxPerRow, spacing: spacing}
}

// Combine rebuilds the combined world from entries. All containers created by
// a previous Combine are removed first, so calling Combine twice with the
// same input leaves exactly one container set. An entry with no objects still
// gets a labeled, outlined, empty cell. Objects with an unrecognized kind are
// skipped with a warning; one bad record never aborts the whole combine.
func (c *Compositor) Combine(entries []scene.Entry) {
	c.graph.RemovePrefix(ContainerPrefix)
	c.entries = append(c.entries[:0], entries...)

	for i, entry := range entries {
		grp := c.graph.AddGroup(ContainerPrefix + entry.Name)
		grp.Offset = CellOffset(i, len(entries), c.maxPerRow, c.spacing)

		for _, obj := range entry.Objects {
			if !obj.Kind.Valid() {
				log.Printf("compositor: scene %q: skipping object %q with unknown kind %d", entry.Name, obj.Name, obj.Kind)
				continue
			}
			grp.Objects = append(grp.Objects, obj)
		}

		labelHeight := defaultLabelHeight
		if entry.Bounds.Height > labelHeight {
			labelHeight = entry.Bounds.Height + 1
		}
		grp.Label = &scene.Label{Text: entry.Name, Height: labelHeight}
		grp.Outline = &scene.Outline{
			HalfWidth: c.spacing / 2,
			HalfDepth: c.spacing / 2,
		}
	}
}

// Containers returns the compositor-owned groups in placement order.
func (c *Compositor) Containers() []*scene.Group {
	out := make([]*scene.Group, 0, len(c.entries))
	for _, grp := range c.graph.Groups() {
		if len(grp.Name) >= len(ContainerPrefix) && grp.Name[:len(ContainerPrefix)] == ContainerPrefix {
			out = append(out, grp)
		}
	}
	return out
}
