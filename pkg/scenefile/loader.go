package scenefile

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/google/uuid"
)

// LoadScene reads a single-scene file: a flat JSON array of primitive
// records. Records missing an id are assigned one so callers can rely on
// every record being addressable.
func LoadScene(path string) ([]PrimitiveRecord, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("could not read scene file: %w", err)
	}
	var records []PrimitiveRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("could not unmarshal scene json: %w", err)
	}
	ensureIDs(records)
	return records, nil
}

// SaveScene writes a single-scene file as an indented JSON array.
func SaveScene(path string, records []PrimitiveRecord) error {
	ensureIDs(records)
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("could not marshal scene json: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("could not write scene file: %w", err)
	}
	return nil
}

// LoadWorld reads a combined-world file.
func LoadWorld(path string) (WorldRecord, error) {
	var rec WorldRecord
	data, err := os.ReadFile(path)
	if err != nil {
		return rec, fmt.Errorf("could not read world file: %w", err)
	}
	if err := json.Unmarshal(data, &rec); err != nil {
		return rec, fmt.Errorf("could not unmarshal world json: %w", err)
	}
	for i := range rec.Scenes {
		ensureIDs(rec.Scenes[i].Objects)
	}
	return rec, nil
}

// SaveWorld writes a combined-world file as indented JSON.
func SaveWorld(path string, rec WorldRecord) error {
	for i := range rec.Scenes {
		ensureIDs(rec.Scenes[i].Objects)
	}
	data, err := json.MarshalIndent(rec, "", "  ")
	if err != nil {
		return fmt.Errorf("could not marshal world json: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("could not write world file: %w", err)
	}
	return nil
}

func ensureIDs(records []PrimitiveRecord) {
	for i := range records {
		if records[i].ID == "" {
			records[i].ID = uuid.NewString()
		}
	}
}
