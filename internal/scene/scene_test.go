package scene

import "testing"

func TestParseKind(t *testing.T) {
	cases := []struct {
		in   string
		want Kind
		ok   bool
	}{
		{"box", KindBox, true},
		{"sphere", KindSphere, true},
		{"cylinder", KindCylinder, true},
		{"cone", KindCone, true},
		{"plane", KindPlane, true},
		{"group", 0, false},
		{"", 0, false},
		{"Box", 0, false},
	}
	for _, c := range cases {
		got, ok := ParseKind(c.in)
		if ok != c.ok {
			t.Errorf("ParseKind(%q) ok = %v, want %v", c.in, ok, c.ok)
			continue
		}
		if ok && got != c.want {
			t.Errorf("ParseKind(%q) = %v, want %v", c.in, got, c.want)
		}
	}
}

func TestKindRoundTrip(t *testing.T) {
	for k := KindBox; k < kindCount; k++ {
		got, ok := ParseKind(k.String())
		if !ok || got != k {
			t.Errorf("ParseKind(%q) = %v, %v; want %v", k.String(), got, ok, k)
		}
	}
	if Kind(200).Valid() {
		t.Error("Kind(200) reported valid")
	}
	if Kind(200).String() != "unknown" {
		t.Errorf("Kind(200).String() = %q", Kind(200).String())
	}
}

func TestGraphOrderAndLookup(t *testing.T) {
	g := NewGraph()
	g.AddGroup("a")
	g.AddGroup("b")
	g.AddGroup("c")

	if g.Len() != 3 {
		t.Fatalf("Len = %d, want 3", g.Len())
	}
	names := []string{}
	for _, grp := range g.Groups() {
		names = append(names, grp.Name)
	}
	if names[0] != "a" || names[1] != "b" || names[2] != "c" {
		t.Errorf("insertion order not preserved: %v", names)
	}

	if _, ok := g.Group("b"); !ok {
		t.Error("Group(b) not found")
	}
	if _, ok := g.Group("missing"); ok {
		t.Error("Group(missing) unexpectedly found")
	}
}

func TestGraphAddGroupReplacesInPlace(t *testing.T) {
	g := NewGraph()
	g.AddGroup("a")
	old := g.AddGroup("b")
	old.Objects = append(old.Objects, Object{Kind: KindBox})
	g.AddGroup("c")

	fresh := g.AddGroup("b")
	if g.Len() != 3 {
		t.Fatalf("Len = %d after replace, want 3", g.Len())
	}
	if g.Groups()[1] != fresh {
		t.Error("replacement did not keep position")
	}
	if len(fresh.Objects) != 0 {
		t.Error("replacement group is not empty")
	}
}

func TestGraphRemovePrefix(t *testing.T) {
	g := NewGraph()
	g.AddGroup("district:a")
	g.AddGroup("helper")
	g.AddGroup("district:b")

	if n := g.RemovePrefix("district:"); n != 2 {
		t.Fatalf("RemovePrefix removed %d, want 2", n)
	}
	if g.Len() != 1 {
		t.Fatalf("Len = %d after RemovePrefix, want 1", g.Len())
	}
	if _, ok := g.Group("helper"); !ok {
		t.Error("unrelated group was removed")
	}
	if _, ok := g.Group("district:a"); ok {
		t.Error("district:a still present")
	}
}

func TestGraphRemove(t *testing.T) {
	g := NewGraph()
	g.AddGroup("a")
	if !g.Remove("a") {
		t.Error("Remove(a) = false")
	}
	if g.Remove("a") {
		t.Error("second Remove(a) = true")
	}
	if g.Len() != 0 {
		t.Errorf("Len = %d, want 0", g.Len())
	}
}
