package compositor

import (
	"fmt"
	"log"
	"time"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/google/uuid"

	"worldshop/internal/scene"
	"worldshop/pkg/scenefile"
)

// Export walks the compositor's containers and emits the combined-world
// record. Transforms are read back container-relative (objects keep their
// local positions inside a group), never world-absolute, so a round trip
// through Combine and Export preserves each scene's original coordinates.
func (c *Compositor) Export() scenefile.WorldRecord {
	containers := c.Containers()
	rec := scenefile.WorldRecord{
		Metadata: scenefile.Metadata{
			CreatedAt:   time.Now().UTC().Format(time.RFC3339),
			TotalScenes: len(containers),
			Description: "combined world export",
		},
	}
	for _, grp := range containers {
		sr := scenefile.SceneRecord{Name: grp.Name[len(ContainerPrefix):]}
		for i, obj := range grp.Objects {
			sr.Objects = append(sr.Objects, recordFromObject(obj, i))
		}
		rec.Scenes = append(rec.Scenes, sr)
	}
	return rec
}

// ExportScene emits a single scene's objects as the flat record array shape.
func ExportScene(objects []scene.Object) []scenefile.PrimitiveRecord {
	out := make([]scenefile.PrimitiveRecord, 0, len(objects))
	for i, obj := range objects {
		out = append(out, recordFromObject(obj, i))
	}
	return out
}

func recordFromObject(obj scene.Object, index int) scenefile.PrimitiveRecord {
	name := obj.Name
	if name == "" {
		name = fmt.Sprintf("%s-%d", obj.Kind, index)
	}
	return scenefile.PrimitiveRecord{
		ID:       uuid.NewString(),
		Type:     obj.Kind.String(),
		Name:     name,
		Position: vectorFrom(obj.Position),
		Rotation: vectorFrom(obj.Rotation),
		Scale:    vectorFrom(obj.Scale),
		Color:    obj.Color,
	}
}

// EntriesFromRecord converts a loaded world record back into compositor
// input. Records with an unrecognized type are dropped with a warning so one
// bad object in a shared file does not blank the whole world.
func EntriesFromRecord(rec scenefile.WorldRecord) []scene.Entry {
	entries := make([]scene.Entry, 0, len(rec.Scenes))
	for _, sr := range rec.Scenes {
		entry := scene.Entry{Name: sr.Name}
		for _, pr := range sr.Objects {
			obj, err := objectFromRecord(pr)
			if err != nil {
				log.Printf("compositor: scene %q: %v", sr.Name, err)
				continue
			}
			entry.Objects = append(entry.Objects, obj)
		}
		entries = append(entries, entry)
	}
	return entries
}

func objectFromRecord(pr scenefile.PrimitiveRecord) (scene.Object, error) {
	kind, ok := scene.ParseKind(pr.Type)
	if !ok {
		return scene.Object{}, fmt.Errorf("skipping record %q: unknown type %q", pr.Name, pr.Type)
	}
	return scene.Object{
		Kind:     kind,
		Name:     pr.Name,
		Position: vectorTo(pr.Position),
		Rotation: vectorTo(pr.Rotation),
		Scale:    vectorTo(pr.Scale),
		Color:    pr.Color,
	}, nil
}

func vectorFrom(v mgl64.Vec3) scenefile.Vector {
	return scenefile.Vector{X: v.X(), Y: v.Y(), Z: v.Z()}
}

func vectorTo(v scenefile.Vector) mgl64.Vec3 {
	return mgl64.Vec3{v.X, v.Y, v.Z}
}
