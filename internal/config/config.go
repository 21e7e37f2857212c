// Package config holds the viewer's runtime settings. Getters and setters
// are safe to call from input callbacks and the render loop; setters clamp
// to sane ranges.
package config

import "sync"

// LayoutSettings holds grid-composition configuration.
type LayoutSettings struct {
	mu        sync.RWMutex
	maxPerRow int
	spacing   float64
}

var globalLayoutSettings = &LayoutSettings{
	maxPerRow: 3,
	spacing:   14,
}

// GetMaxPerRow returns how many scenes are placed per grid row.
func GetMaxPerRow() int {
	globalLayoutSettings.mu.RLock()
	defer globalLayoutSettings.mu.RUnlock()
	return globalLayoutSettings.maxPerRow
}

// SetMaxPerRow sets the scenes-per-row count, clamped to [1, 16].
func SetMaxPerRow(n int) {
	globalLayoutSettings.mu.Lock()
	defer globalLayoutSettings.mu.Unlock()

	if n < 1 {
		n = 1
	}
	if n > 16 {
		n = 16
	}
	globalLayoutSettings.maxPerRow = n
}

// GetSpacing returns the distance between neighboring cell centers.
func GetSpacing() float64 {
	globalLayoutSettings.mu.RLock()
	defer globalLayoutSettings.mu.RUnlock()
	return globalLayoutSettings.spacing
}

// SetSpacing sets the cell spacing, clamped to [2, 200]. Spacing should stay
// at or above the largest scene footprint so cells cannot overlap.
func SetSpacing(s float64) {
	globalLayoutSettings.mu.Lock()
	defer globalLayoutSettings.mu.Unlock()

	if s < 2 {
		s = 2
	}
	if s > 200 {
		s = 200
	}
	globalLayoutSettings.spacing = s
}

// DisplaySettings holds render-loop and overlay configuration.
type DisplaySettings struct {
	mu           sync.RWMutex
	fpsLimit     int
	showLabels   bool
	showOutlines bool
}

var globalDisplaySettings = &DisplaySettings{
	fpsLimit:     120,
	showLabels:   true,
	showOutlines: true,
}

// GetFPSLimit returns the frame-rate cap; 0 means uncapped.
func GetFPSLimit() int {
	globalDisplaySettings.mu.RLock()
	defer globalDisplaySettings.mu.RUnlock()
	return globalDisplaySettings.fpsLimit
}

// SetFPSLimit sets the frame-rate cap, clamped to [0, 360].
func SetFPSLimit(limit int) {
	globalDisplaySettings.mu.Lock()
	defer globalDisplaySettings.mu.Unlock()

	if limit < 0 {
		limit = 0
	}
	if limit > 360 {
		limit = 360
	}
	globalDisplaySettings.fpsLimit = limit
}

// GetShowLabels returns whether district name labels are drawn.
func GetShowLabels() bool {
	globalDisplaySettings.mu.RLock()
	defer globalDisplaySettings.mu.RUnlock()
	return globalDisplaySettings.showLabels
}

// SetShowLabels sets whether district name labels are drawn.
func SetShowLabels(show bool) {
	globalDisplaySettings.mu.Lock()
	defer globalDisplaySettings.mu.Unlock()
	globalDisplaySettings.showLabels = show
}

// GetShowOutlines returns whether cell boundary outlines are drawn.
func GetShowOutlines() bool {
	globalDisplaySettings.mu.RLock()
	defer globalDisplaySettings.mu.RUnlock()
	return globalDisplaySettings.showOutlines
}

// SetShowOutlines sets whether cell boundary outlines are drawn.
func SetShowOutlines(show bool) {
	globalDisplaySettings.mu.Lock()
	defer globalDisplaySettings.mu.Unlock()
	globalDisplaySettings.showOutlines = show
}
