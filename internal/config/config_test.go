package config

import "testing"

func TestLayoutClamps(t *testing.T) {
	defer func() {
		SetMaxPerRow(3)
		SetSpacing(14)
	}()

	SetMaxPerRow(0)
	if got := GetMaxPerRow(); got != 1 {
		t.Errorf("maxPerRow clamp low: %d", got)
	}
	SetMaxPerRow(100)
	if got := GetMaxPerRow(); got != 16 {
		t.Errorf("maxPerRow clamp high: %d", got)
	}

	SetSpacing(-5)
	if got := GetSpacing(); got != 2 {
		t.Errorf("spacing clamp low: %v", got)
	}
	SetSpacing(1e6)
	if got := GetSpacing(); got != 200 {
		t.Errorf("spacing clamp high: %v", got)
	}
}

func TestFPSLimitClamp(t *testing.T) {
	defer SetFPSLimit(120)

	SetFPSLimit(-1)
	if got := GetFPSLimit(); got != 0 {
		t.Errorf("fps clamp low: %d", got)
	}
	SetFPSLimit(10000)
	if got := GetFPSLimit(); got != 360 {
		t.Errorf("fps clamp high: %d", got)
	}
}

func TestOverlayToggles(t *testing.T) {
	defer func() {
		SetShowLabels(true)
		SetShowOutlines(true)
	}()

	SetShowLabels(false)
	if GetShowLabels() {
		t.Error("labels still on")
	}
	SetShowOutlines(false)
	if GetShowOutlines() {
		t.Error("outlines still on")
	}
}
