package compositor

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"

	"worldshop/internal/scene"
	"worldshop/pkg/scenefile"
)

func boxAt(pos mgl64.Vec3) scene.Object {
	return scene.Object{
		Kind:     scene.KindBox,
		Position: pos,
		Scale:    mgl64.Vec3{1, 1, 1},
		Color:    0x808080,
	}
}

func twoScenes() []scene.Entry {
	return []scene.Entry{
		{Name: "A", Objects: []scene.Object{boxAt(mgl64.Vec3{0, 1, 0})}},
		{Name: "B", Objects: []scene.Object{boxAt(mgl64.Vec3{0, 1, 0})}},
	}
}

func TestCombineCreatesNamedContainers(t *testing.T) {
	g := scene.NewGraph()
	c := New(g, 2, 10)
	c.Combine(twoScenes())

	if g.Len() != 2 {
		t.Fatalf("graph has %d groups, want 2", g.Len())
	}
	a, ok := g.Group(ContainerPrefix + "A")
	if !ok {
		t.Fatal("container for A missing")
	}
	if a.Label == nil || a.Label.Text != "A" {
		t.Errorf("label for A = %+v", a.Label)
	}
	if a.Outline == nil {
		t.Error("outline for A missing")
	}
	if len(a.Objects) != 1 {
		t.Errorf("A has %d objects, want 1", len(a.Objects))
	}
	// grid placement: two scenes in one row, symmetric around x=0
	if a.Offset.X() != -5 || a.Offset.Z() != 0 {
		t.Errorf("A offset = %v, want (-5,0,0)", a.Offset)
	}
	b, _ := g.Group(ContainerPrefix + "B")
	if b.Offset.X() != 5 {
		t.Errorf("B offset = %v, want x=5", b.Offset)
	}
}

func TestCombineIdempotent(t *testing.T) {
	g := scene.NewGraph()
	c := New(g, 2, 10)
	entries := twoScenes()
	c.Combine(entries)
	c.Combine(entries)

	if g.Len() != 2 {
		t.Fatalf("graph has %d groups after double combine, want 2", g.Len())
	}
	if len(c.Containers()) != 2 {
		t.Fatalf("Containers() = %d, want 2", len(c.Containers()))
	}
}

func TestCombineLeavesForeignGroupsAlone(t *testing.T) {
	g := scene.NewGraph()
	g.AddGroup("terrain")
	c := New(g, 2, 10)
	c.Combine(twoScenes())
	c.Combine(nil)

	if _, ok := g.Group("terrain"); !ok {
		t.Error("combine removed a group it does not own")
	}
	if g.Len() != 1 {
		t.Errorf("graph has %d groups, want 1", g.Len())
	}
}

func TestCombineEmptySceneIsValid(t *testing.T) {
	g := scene.NewGraph()
	c := New(g, 4, 10)
	c.Combine([]scene.Entry{{Name: "empty"}})

	grp, ok := g.Group(ContainerPrefix + "empty")
	if !ok {
		t.Fatal("empty scene got no container")
	}
	if len(grp.Objects) != 0 {
		t.Errorf("empty scene has %d objects", len(grp.Objects))
	}
	if grp.Label == nil || grp.Outline == nil {
		t.Error("empty scene cell is missing label or outline")
	}
}

func TestCombineSkipsUnknownKinds(t *testing.T) {
	g := scene.NewGraph()
	c := New(g, 4, 10)
	entry := scene.Entry{
		Name: "mixed",
		Objects: []scene.Object{
			boxAt(mgl64.Vec3{0, 0, 0}),
			{Kind: scene.Kind(99), Name: "bogus"},
			boxAt(mgl64.Vec3{2, 0, 0}),
		},
	}
	c.Combine([]scene.Entry{entry})

	grp, _ := g.Group(ContainerPrefix + "mixed")
	if len(grp.Objects) != 2 {
		t.Fatalf("composed cell has %d objects, want 2 valid ones", len(grp.Objects))
	}
	for _, obj := range grp.Objects {
		if !obj.Kind.Valid() {
			t.Errorf("invalid kind %d survived combine", obj.Kind)
		}
	}
}

func TestExportRoundTrip(t *testing.T) {
	g := scene.NewGraph()
	c := New(g, 2, 10)
	c.Combine(twoScenes())

	rec := c.Export()
	if rec.Metadata.TotalScenes != 2 {
		t.Errorf("totalScenes = %d, want 2", rec.Metadata.TotalScenes)
	}
	if rec.Metadata.CreatedAt == "" {
		t.Error("createdAt missing")
	}
	if len(rec.Scenes) != 2 {
		t.Fatalf("exported %d scenes, want 2", len(rec.Scenes))
	}
	if rec.Scenes[0].Name != "A" || rec.Scenes[1].Name != "B" {
		t.Errorf("scene names = %q, %q", rec.Scenes[0].Name, rec.Scenes[1].Name)
	}
	for _, sr := range rec.Scenes {
		if len(sr.Objects) != 1 {
			t.Fatalf("scene %q exported %d objects, want 1", sr.Name, len(sr.Objects))
		}
		obj := sr.Objects[0]
		// container-relative, not world-translated: both boxes sit at (0,1,0)
		if obj.Position.X != 0 || obj.Position.Y != 1 || obj.Position.Z != 0 {
			t.Errorf("scene %q exported world-translated position %+v", sr.Name, obj.Position)
		}
		if obj.Type != "box" {
			t.Errorf("scene %q exported type %q, want box", sr.Name, obj.Type)
		}
		if obj.ID == "" {
			t.Errorf("scene %q exported object without id", sr.Name)
		}
	}
}

// Export records the actual primitive kind, not a hard-coded one.
func TestExportPreservesKind(t *testing.T) {
	g := scene.NewGraph()
	c := New(g, 4, 10)
	c.Combine([]scene.Entry{{
		Name: "shapes",
		Objects: []scene.Object{
			{Kind: scene.KindSphere, Scale: mgl64.Vec3{1, 1, 1}},
			{Kind: scene.KindCone, Scale: mgl64.Vec3{1, 1, 1}},
		},
	}})

	rec := c.Export()
	got := []string{rec.Scenes[0].Objects[0].Type, rec.Scenes[0].Objects[1].Type}
	if got[0] != "sphere" || got[1] != "cone" {
		t.Errorf("exported types = %v, want [sphere cone]", got)
	}
}

func TestEntriesFromRecordDropsUnknownTypes(t *testing.T) {
	rec := scenefile.WorldRecord{
		Scenes: []scenefile.SceneRecord{{
			Name: "mixed",
			Objects: []scenefile.PrimitiveRecord{
				{Type: "box", Name: "ok", Scale: scenefile.Vector{X: 1, Y: 1, Z: 1}},
				{Type: "group", Name: "nested"},
			},
		}},
	}
	entries := EntriesFromRecord(rec)
	if len(entries) != 1 {
		t.Fatalf("entries = %d, want 1", len(entries))
	}
	if len(entries[0].Objects) != 1 {
		t.Fatalf("objects = %d, want 1 (unknown type dropped)", len(entries[0].Objects))
	}
	if entries[0].Objects[0].Kind != scene.KindBox {
		t.Errorf("kind = %v, want box", entries[0].Objects[0].Kind)
	}
}
