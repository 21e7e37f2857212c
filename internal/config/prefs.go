package config

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// PrefsPath is the viewer preferences file, relative to the working
// directory.
const PrefsPath = "config/viewer.json"

// Prefs holds the settings persisted across runs. In-memory settings not
// listed here (like the FPS cap) reset to defaults on restart.
type Prefs struct {
	MaxPerRow    int     `json:"max_per_row"`
	Spacing      float64 `json:"spacing"`
	ShowLabels   bool    `json:"show_labels"`
	ShowOutlines bool    `json:"show_outlines"`
}

// CurrentPrefs snapshots the persistable settings.
func CurrentPrefs() Prefs {
	return Prefs{
		MaxPerRow:    GetMaxPerRow(),
		Spacing:      GetSpacing(),
		ShowLabels:   GetShowLabels(),
		ShowOutlines: GetShowOutlines(),
	}
}

// LoadPrefs reads the preferences file and applies it through the clamped
// setters. A missing or invalid file leaves the defaults untouched.
func LoadPrefs() {
	data, err := os.ReadFile(PrefsPath)
	if err != nil {
		return
	}
	var p Prefs
	if err := json.Unmarshal(data, &p); err != nil {
		return
	}
	SetMaxPerRow(p.MaxPerRow)
	SetSpacing(p.Spacing)
	SetShowLabels(p.ShowLabels)
	SetShowOutlines(p.ShowOutlines)
}

// SavePrefs writes the current settings, creating the config directory if
// needed.
func SavePrefs() error {
	if err := os.MkdirAll(filepath.Dir(PrefsPath), 0755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(CurrentPrefs(), "", "\t")
	if err != nil {
		return err
	}
	return os.WriteFile(PrefsPath, data, 0644)
}
