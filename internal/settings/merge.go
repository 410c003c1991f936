package settings

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"

	"github.com/comfort-hq/digital-catalogue/internal/model"
)

// Merge overlays incoming wire fields on current. Numeric fields only replace
// the current value when they parse (font size > 0, grid columns a positive
// integer); string fields replace it whenever they are present as strings.
// Unknown keys are ignored.
func Merge(current model.DisplaySettings, incoming map[string]any) model.DisplaySettings {
	merged := current
	if incoming == nil {
		return merged
	}

	if v, ok := stringField(incoming, model.KeyBackgroundURL); ok {
		merged.BackgroundURL = v
	}
	if v, ok := stringField(incoming, model.KeyPrimaryColor); ok {
		merged.PrimaryColor = v
	}
	if v, ok := stringField(incoming, model.KeySecondaryColor); ok {
		merged.SecondaryColor = v
	}
	if v, ok := stringField(incoming, model.KeyFontFamily); ok {
		merged.FontFamily = v
	}

	if v, ok := ParseFontSize(incoming[model.KeyBaseFontSizePx]); ok {
		merged.BaseFontSizePx = v
	}
	if v, ok := ParseGridColumns(incoming[model.KeyCategoryGridColumns]); ok {
		merged.CategoryGridColumns = v
	}

	return merged
}

// ParseFontSize accepts a positive number or numeric string
func ParseFontSize(v any) (float64, bool) {
	n, ok := parseNumber(v)
	if !ok || n <= 0 {
		return 0, false
	}
	return n, true
}

// ParseGridColumns accepts a positive integer or integral numeric string
func ParseGridColumns(v any) (int, bool) {
	n, ok := parseNumber(v)
	if !ok || n < 1 || n != math.Trunc(n) || n > math.MaxInt32 {
		return 0, false
	}
	return int(n), true
}

func stringField(m map[string]any, key string) (string, bool) {
	v, ok := m[key].(string)
	return v, ok
}

func parseNumber(v any) (float64, bool) {
	var n float64
	switch value := v.(type) {
	case float64:
		n = value
	case float32:
		n = float64(value)
	case int:
		n = float64(value)
	case int64:
		n = float64(value)
	case json.Number:
		f, err := value.Float64()
		if err != nil {
			return 0, false
		}
		n = f
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
		if err != nil {
			return 0, false
		}
		n = f
	default:
		return 0, false
	}
	if math.IsNaN(n) || math.IsInf(n, 0) {
		return 0, false
	}
	return n, true
}
