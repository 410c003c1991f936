package config

import (
	"fyne.io/fyne/v2"
)

// Keys for Fyne preferences
const (
	KeyWindowWidth    = "window_width"
	KeyWindowHeight   = "window_height"
	KeyLastSearchTerm = "last_search_term"
)

// Window size bounds
const (
	DefaultWindowWidth  = 1024
	DefaultWindowHeight = 720
	MinWindowWidth      = 480
	MinWindowHeight     = 360
	MaxWindowWidth      = 7680
	MaxWindowHeight     = 4320
)

// Preferences keeps per-machine UI state in the Fyne preferences store.
// Catalogue display settings live on the remote side, not here.
type Preferences struct {
	app fyne.App
}

// NewPreferences creates a preferences manager
func NewPreferences(app fyne.App) *Preferences {
	return &Preferences{app: app}
}

// GetWindowSize returns the last saved window size
func (p *Preferences) GetWindowSize() fyne.Size {
	w := p.app.Preferences().Int(KeyWindowWidth)
	h := p.app.Preferences().Int(KeyWindowHeight)
	if w <= 0 || h <= 0 {
		p.SetWindowSize(DefaultWindowWidth, DefaultWindowHeight)
		return fyne.NewSize(DefaultWindowWidth, DefaultWindowHeight)
	}
	return fyne.NewSize(float32(w), float32(h))
}

// SetWindowSize stores the window size, clamped to sane bounds
func (p *Preferences) SetWindowSize(width, height int) {
	p.app.Preferences().SetInt(KeyWindowWidth, clamp(width, MinWindowWidth, MaxWindowWidth))
	p.app.Preferences().SetInt(KeyWindowHeight, clamp(height, MinWindowHeight, MaxWindowHeight))
}

// GetLastSearchTerm returns the term last searched from the dashboard
func (p *Preferences) GetLastSearchTerm() string {
	return p.app.Preferences().String(KeyLastSearchTerm)
}

// SetLastSearchTerm stores the dashboard search term
func (p *Preferences) SetLastSearchTerm(term string) {
	p.app.Preferences().SetString(KeyLastSearchTerm, term)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
