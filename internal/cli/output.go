package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/comfort-hq/digital-catalogue/internal/model"
)

// writeJSON prints v as indented JSON
func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// writeProducts prints products in format
func writeProducts(w io.Writer, format string, products []model.Product) error {
	if format == "json" {
		return writeJSON(w, products)
	}

	if len(products) == 0 {
		_, err := fmt.Fprintln(w, "No products found.")
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tCATEGORY\tPRICE\tIMAGES")
	for _, p := range products {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%d\n", p.ID, p.GetDisplayName(), p.Category, p.Price, len(p.ImageURL))
	}
	return tw.Flush()
}

// writeSettings prints display settings in format
func writeSettings(w io.Writer, format string, s model.DisplaySettings) error {
	if format == "json" {
		return writeJSON(w, s)
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "Background image\t%s\n", s.BackgroundURL)
	fmt.Fprintf(tw, "Primary color\t%s\n", s.PrimaryColor)
	fmt.Fprintf(tw, "Secondary color\t%s\n", s.SecondaryColor)
	fmt.Fprintf(tw, "Font family\t%s\n", s.FontFamily)
	fmt.Fprintf(tw, "Base font size\t%gpx\n", s.BaseFontSizePx)
	fmt.Fprintf(tw, "Category grid columns\t%d\n", s.CategoryGridColumns)
	return tw.Flush()
}
