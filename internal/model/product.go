package model

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"
)

// Price display constants
const (
	CurrencySymbol = "$"
	PriceFormat    = "#,###.##"
)

// Product is a transient client-side copy of a catalogue row
type Product struct {
	ID          string    `json:"id,omitempty"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Price       Price     `json:"price"`
	Category    Category  `json:"category"`
	ImageURL    ImageList `json:"imageUrl"`
}

// Price is a decimal amount. It decodes from JSON numbers as well as numeric
// strings; anything else decodes as zero.
type Price float64

// UnmarshalJSON accepts numbers, numeric strings, null and empty strings
func (p *Price) UnmarshalJSON(data []byte) error {
	*p = 0
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return nil
	}

	var number float64
	if err := json.Unmarshal(data, &number); err == nil {
		*p = Price(number)
		return nil
	}

	var text string
	if err := json.Unmarshal(data, &text); err != nil {
		return nil
	}
	if value, err := strconv.ParseFloat(strings.TrimSpace(text), 64); err == nil {
		*p = Price(value)
	}
	return nil
}

// String formats the price for display, e.g. "$1,234.50"
func (p Price) String() string {
	return CurrencySymbol + humanize.FormatFloat(PriceFormat, float64(p))
}

// ImageList is the ordered list of image URLs of a product. A non-list value
// decodes to an empty list so rendering never has to special-case it.
type ImageList []string

// UnmarshalJSON keeps string entries of a JSON array and ignores everything else
func (l *ImageList) UnmarshalJSON(data []byte) error {
	*l = ImageList{}

	var raw []any
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil
	}
	for _, item := range raw {
		if s, ok := item.(string); ok && strings.TrimSpace(s) != "" {
			*l = append(*l, strings.TrimSpace(s))
		}
	}
	return nil
}

// MarshalJSON always emits a list, never null
func (l ImageList) MarshalJSON() ([]byte, error) {
	if l == nil {
		return []byte("[]"), nil
	}
	return json.Marshal([]string(l))
}

// First returns the first image URL, or "" when the list is empty
func (l ImageList) First() string {
	if len(l) == 0 {
		return ""
	}
	return l[0]
}

// UnmarshalJSON decodes a product whose id may be numeric
func (p *Product) UnmarshalJSON(data []byte) error {
	type productAlias Product
	aux := struct {
		*productAlias
		ID          any `json:"id"`
		Name        any `json:"name"`
		Description any `json:"description"`
		Category    any `json:"category"`
	}{productAlias: (*productAlias)(p)}

	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	p.ID = textValue(aux.ID)
	p.Name = textValue(aux.Name)
	p.Description = textValue(aux.Description)
	p.Category = Category(textValue(aux.Category))
	if p.ImageURL == nil {
		p.ImageURL = ImageList{}
	}
	return nil
}

// HasImages reports whether the product has at least one image URL
func (p *Product) HasImages() bool {
	return len(p.ImageURL) > 0
}

// GetDisplayName returns the name, falling back to the id
func (p *Product) GetDisplayName() string {
	if name := strings.TrimSpace(p.Name); name != "" {
		return name
	}
	if p.ID != "" {
		return "#" + p.ID
	}
	return "Untitled product"
}

// textValue renders spreadsheet cells (strings or numbers) as text
func textValue(v any) string {
	switch value := v.(type) {
	case nil:
		return ""
	case string:
		return value
	case float64:
		return strconv.FormatFloat(value, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(value)
	default:
		return ""
	}
}
