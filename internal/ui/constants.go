package ui

import "time"

// UI-wide constants to avoid magic numbers/strings scattered across the codebase.

// Icons (emojis/symbols)
const (
	IconSettings = "⚙"
	IconPalette  = "🎨"
	IconBack     = "←"
	IconAdd      = "+"
	IconSearch   = "🔍"
	IconDelete   = "🗑"
	IconEdit     = "✎"
)

// Text fragments
const (
	CategorySuffixFormat = "%s (%s)"
	SearchTitleFormat    = "Search Results for \"%s\""
	GridColumnsHint      = "1-5"
)

// Layout sizing
const (
	LoginFormWidth float32 = 360

	CardImageSize  float32 = 150
	DetailImageMax float32 = 420
	PreviewSize    float32 = 120

	CategoryTileHeight float32 = 96

	// Touch target minimum sizes (iOS/Android guidelines)
	MinTouchTargetSize float32 = 44
)

// Card grid columns by device
const (
	DesktopCardColumns = 4
	MobileCardColumns  = 2
	MobileMaxColumns   = 2
)

// Image loading
const (
	ImageFetchTimeout   = 20 * time.Second
	MaxImageBytes       = 10 << 20
	MaxConcurrentImages = 4
	PlaceholderText     = "No Image"
)

// Background overlay alpha over the dashboard background image
const BackgroundOverlayAlpha = 0x80

// Debounce durations
const (
	PreviewDebounce = 400 * time.Millisecond
)
