package config

import (
	"testing"

	"fyne.io/fyne/v2/test"
)

func TestNewPreferences(t *testing.T) {
	app := test.NewApp()
	prefs := NewPreferences(app)

	if prefs.app != app {
		t.Error("Preferences app reference should match provided app")
	}
}

func TestWindowSize(t *testing.T) {
	app := test.NewApp()
	prefs := NewPreferences(app)

	// Test default value
	size := prefs.GetWindowSize()
	if size.Width != DefaultWindowWidth || size.Height != DefaultWindowHeight {
		t.Errorf("Expected default size %dx%d, got %vx%v", DefaultWindowWidth, DefaultWindowHeight, size.Width, size.Height)
	}

	// Test setting custom value
	prefs.SetWindowSize(1280, 800)
	size = prefs.GetWindowSize()
	if size.Width != 1280 || size.Height != 800 {
		t.Errorf("Expected size 1280x800, got %vx%v", size.Width, size.Height)
	}

	// Test boundary values
	prefs.SetWindowSize(10, 10)
	size = prefs.GetWindowSize()
	if size.Width != MinWindowWidth || size.Height != MinWindowHeight {
		t.Errorf("Window size should be clamped to minimum, got %vx%v", size.Width, size.Height)
	}

	prefs.SetWindowSize(100000, 100000)
	size = prefs.GetWindowSize()
	if size.Width != MaxWindowWidth || size.Height != MaxWindowHeight {
		t.Errorf("Window size should be clamped to maximum, got %vx%v", size.Width, size.Height)
	}
}

func TestLastSearchTerm(t *testing.T) {
	app := test.NewApp()
	prefs := NewPreferences(app)

	if term := prefs.GetLastSearchTerm(); term != "" {
		t.Errorf("Expected empty search term, got %q", term)
	}

	prefs.SetLastSearchTerm("pillow")
	if term := prefs.GetLastSearchTerm(); term != "pillow" {
		t.Errorf("Expected search term pillow, got %q", term)
	}
}
