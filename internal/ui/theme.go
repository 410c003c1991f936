package ui

import (
	"image/color"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/comfort-hq/digital-catalogue/internal/model"
)

// Fyne's default body text is 14 units; the web layout this mirrors uses 16px
const fyneTextPerPx = 14.0 / 16.0

var monospaceFamilies = []string{"mono", "courier", "consolas", "menlo"}

// CatalogueTheme derives the app theme from the remote display settings
type CatalogueTheme struct {
	settings  model.DisplaySettings
	primary   color.Color
	secondary color.Color
}

// NewCatalogueTheme creates a theme for settings. Colors that do not parse
// fall back to the defaults.
func NewCatalogueTheme(settings model.DisplaySettings) *CatalogueTheme {
	primary, ok := ParseHexColor(settings.PrimaryColor)
	if !ok {
		primary, _ = ParseHexColor(model.DefaultPrimaryColor)
	}
	secondary, ok := ParseHexColor(settings.SecondaryColor)
	if !ok {
		secondary, _ = ParseHexColor(model.DefaultSecondaryColor)
	}
	return &CatalogueTheme{
		settings:  settings,
		primary:   primary,
		secondary: secondary,
	}
}

// ParseHexColor parses #rgb or #rrggbb
func ParseHexColor(s string) (color.Color, bool) {
	c, err := colorful.Hex(strings.TrimSpace(s))
	if err != nil {
		return nil, false
	}
	r, g, b := c.RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: 0xff}, true
}

// Primary returns the parsed primary color
func (t *CatalogueTheme) Primary() color.Color {
	return t.primary
}

// Secondary returns the parsed secondary color
func (t *CatalogueTheme) Secondary() color.Color {
	return t.secondary
}

// Color returns theme colors
func (t *CatalogueTheme) Color(name fyne.ThemeColorName, variant fyne.ThemeVariant) color.Color {
	switch name {
	case theme.ColorNamePrimary, theme.ColorNameHyperlink:
		return t.primary
	case theme.ColorNameFocus, theme.ColorNameSelection:
		return withAlpha(t.primary, 0x55)
	case theme.ColorNameSeparator:
		return withAlpha(t.secondary, 0x66)
	case theme.ColorNameSuccess:
		return color.NRGBA{R: 40, G: 167, B: 69, A: 255}
	case theme.ColorNameError:
		return color.NRGBA{R: 217, G: 83, B: 79, A: 255}
	case theme.ColorNameBackground:
		if variant == theme.VariantDark {
			return color.NRGBA{R: 24, G: 26, B: 28, A: 255}
		}
		return color.NRGBA{R: 244, G: 246, B: 248, A: 255}
	}

	return theme.DefaultTheme().Color(name, variant)
}

// Font returns the monospace font when the configured family names one.
// Fyne cannot load arbitrary system families by name.
func (t *CatalogueTheme) Font(style fyne.TextStyle) fyne.Resource {
	if isMonospaceFamily(t.settings.FontFamily) {
		style.Monospace = true
	}
	return theme.DefaultTheme().Font(style)
}

// Icon returns theme icons
func (t *CatalogueTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return theme.DefaultTheme().Icon(name)
}

// Size scales text sizes from the configured base font size
func (t *CatalogueTheme) Size(name fyne.ThemeSizeName) float32 {
	base := float32(t.settings.BaseFontSizePx * fyneTextPerPx)
	if base <= 0 {
		base = float32(model.DefaultBaseFontSizePx * fyneTextPerPx)
	}

	switch name {
	case theme.SizeNameText:
		return base
	case theme.SizeNameHeadingText:
		return base * 1.5
	case theme.SizeNameSubHeadingText:
		return base * 1.2
	case theme.SizeNameCaptionText:
		return base * 0.8
	case theme.SizeNameInputRadius:
		return 6
	case theme.SizeNameSelectionRadius:
		return 4
	}

	return theme.DefaultTheme().Size(name)
}

func isMonospaceFamily(family string) bool {
	lower := strings.ToLower(family)
	for _, m := range monospaceFamilies {
		if strings.Contains(lower, m) {
			return true
		}
	}
	return false
}

func withAlpha(c color.Color, a uint8) color.Color {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	n.A = a
	return n
}
