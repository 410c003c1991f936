package model

// Wire keys of the display settings object
const (
	KeyBackgroundURL       = "backgroundUrl"
	KeyPrimaryColor        = "primaryColor"
	KeySecondaryColor      = "secondaryColor"
	KeyFontFamily          = "fontFamily"
	KeyBaseFontSizePx      = "baseFontSizePx"
	KeyCategoryGridColumns = "categoryGridColumns"
)

// Default values
const (
	DefaultBackgroundURL       = ""
	DefaultPrimaryColor        = "#007bff"
	DefaultSecondaryColor      = "#6c757d"
	DefaultFontFamily          = "Segoe UI"
	DefaultBaseFontSizePx      = 16.0
	DefaultCategoryGridColumns = 3

	MinCategoryGridColumns = 1
	MaxCategoryGridColumns = 5
)

// DisplaySettings holds the cosmetic configuration shared by every screen
type DisplaySettings struct {
	BackgroundURL       string  `json:"backgroundUrl"`
	PrimaryColor        string  `json:"primaryColor"`
	SecondaryColor      string  `json:"secondaryColor"`
	FontFamily          string  `json:"fontFamily"`
	BaseFontSizePx      float64 `json:"baseFontSizePx"`
	CategoryGridColumns int     `json:"categoryGridColumns"`
}

// DefaultDisplaySettings returns the settings used until the remote values arrive
func DefaultDisplaySettings() DisplaySettings {
	return DisplaySettings{
		BackgroundURL:       DefaultBackgroundURL,
		PrimaryColor:        DefaultPrimaryColor,
		SecondaryColor:      DefaultSecondaryColor,
		FontFamily:          DefaultFontFamily,
		BaseFontSizePx:      DefaultBaseFontSizePx,
		CategoryGridColumns: DefaultCategoryGridColumns,
	}
}

// Fields returns the settings as a wire object
func (s DisplaySettings) Fields() map[string]any {
	return map[string]any{
		KeyBackgroundURL:       s.BackgroundURL,
		KeyPrimaryColor:        s.PrimaryColor,
		KeySecondaryColor:      s.SecondaryColor,
		KeyFontFamily:          s.FontFamily,
		KeyBaseFontSizePx:      s.BaseFontSizePx,
		KeyCategoryGridColumns: s.CategoryGridColumns,
	}
}

// HasBackground reports whether a background image is configured
func (s DisplaySettings) HasBackground() bool {
	return s.BackgroundURL != ""
}
