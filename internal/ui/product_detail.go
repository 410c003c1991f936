package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/comfort-hq/digital-catalogue/internal/model"
	"github.com/comfort-hq/digital-catalogue/internal/nav"
)

// ProductDetailScreen shows one product with its image gallery
type ProductDetailScreen struct {
	root    *RootUI
	product model.Product
}

// NewProductDetailScreen creates the screen
func NewProductDetailScreen(root *RootUI, product model.Product) *ProductDetailScreen {
	return &ProductDetailScreen{root: root, product: product}
}

// Content builds the screen
func (ds *ProductDetailScreen) Content() fyne.CanvasObject {
	r := ds.root
	p := ds.product
	size := fyne.NewSize(DetailImageMax, DetailImageMax)

	// A product without images still gets one placeholder
	var gallery []fyne.CanvasObject
	if !p.HasImages() {
		gallery = append(gallery, NewPlaceholder(size))
	}
	for _, url := range p.ImageURL {
		gallery = append(gallery, r.imageView(url, size))
	}

	name := widget.NewLabelWithStyle(p.GetDisplayName(), fyne.TextAlignCenter, fyne.TextStyle{Bold: true})
	price := widget.NewLabelWithStyle(p.Price.String(), fyne.TextAlignCenter, fyne.TextStyle{Bold: true})
	price.Importance = widget.HighImportance
	category := widget.NewLabelWithStyle(p.Category.String(), fyne.TextAlignCenter, fyne.TextStyle{Italic: true})
	description := widget.NewLabel(p.Description)
	description.Wrapping = fyne.TextWrapWord

	editBtn := widget.NewButton(IconEdit+" "+r.texts.GetText(KeyEdit), func() {
		r.nav.Navigate(nav.EditProduct{Product: p})
	})

	body := container.NewVBox(
		container.NewHScroll(container.NewHBox(gallery...)),
		name,
		price,
		category,
		description,
	)

	header := container.NewBorder(nil, nil, r.backButton(KeyBackToList), editBtn)
	return container.NewBorder(container.NewPadded(header), nil, nil, nil, container.NewVScroll(container.NewPadded(body)))
}
