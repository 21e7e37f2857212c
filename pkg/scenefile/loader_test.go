package scenefile

import (
	"os"
	"path/filepath"
	"testing"
)

func sampleRecords() []PrimitiveRecord {
	return []PrimitiveRecord{
		{
			Type:     "box",
			Name:     "crate",
			Position: Vector{X: 0, Y: 1, Z: 0},
			Scale:    Vector{X: 1, Y: 1, Z: 1},
			Color:    0x8B4513,
		},
		{
			Type:     "cone",
			Name:     "roof",
			Position: Vector{X: 0, Y: 2.5, Z: 0},
			Rotation: Vector{X: 0, Y: 0.5, Z: 0},
			Scale:    Vector{X: 2, Y: 1, Z: 2},
			Color:    0xAA2222,
		},
	}
}

func TestSceneSaveLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scene.json")
	if err := SaveScene(path, sampleRecords()); err != nil {
		t.Fatalf("SaveScene: %v", err)
	}
	loaded, err := LoadScene(path)
	if err != nil {
		t.Fatalf("LoadScene: %v", err)
	}
	if len(loaded) != 2 {
		t.Fatalf("loaded %d records, want 2", len(loaded))
	}
	if loaded[0].Name != "crate" || loaded[1].Type != "cone" {
		t.Errorf("record content lost: %+v", loaded)
	}
	if loaded[1].Position.Y != 2.5 {
		t.Errorf("position.y = %v, want 2.5", loaded[1].Position.Y)
	}
	for _, r := range loaded {
		if r.ID == "" {
			t.Errorf("record %q has no id after load", r.Name)
		}
	}
}

func TestWorldSaveLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "world.json")
	rec := WorldRecord{
		Metadata: Metadata{CreatedAt: "2026-08-25T12:00:00Z", TotalScenes: 1, Description: "test"},
		Scenes:   []SceneRecord{{Name: "plaza", Objects: sampleRecords()}},
	}
	if err := SaveWorld(path, rec); err != nil {
		t.Fatalf("SaveWorld: %v", err)
	}
	loaded, err := LoadWorld(path)
	if err != nil {
		t.Fatalf("LoadWorld: %v", err)
	}
	if loaded.Metadata.TotalScenes != 1 {
		t.Errorf("totalScenes = %d, want 1", loaded.Metadata.TotalScenes)
	}
	if len(loaded.Scenes) != 1 || loaded.Scenes[0].Name != "plaza" {
		t.Fatalf("scenes lost: %+v", loaded.Scenes)
	}
	if len(loaded.Scenes[0].Objects) != 2 {
		t.Errorf("objects lost: %d", len(loaded.Scenes[0].Objects))
	}
}

func TestLoadSceneMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.json")
	if err := os.WriteFile(path, []byte("{not json"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadScene(path); err == nil {
		t.Error("LoadScene accepted malformed json")
	}
	if _, err := LoadScene(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Error("LoadScene accepted missing file")
	}
}
