package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/comfort-hq/digital-catalogue/internal/model"
)

// ProductCard is a tappable grid card with thumbnail, name and price
type ProductCard struct {
	widget.BaseWidget

	product model.Product
	image   fyne.CanvasObject

	nameLabel  *widget.Label
	priceLabel *widget.Label

	onTapped func(model.Product)
}

// NewProductCard creates a card. image is the thumbnail view, usually from
// RootUI.imageView.
func NewProductCard(product model.Product, image fyne.CanvasObject, onTapped func(model.Product)) *ProductCard {
	pc := &ProductCard{
		product:  product,
		image:    image,
		onTapped: onTapped,
	}
	pc.ExtendBaseWidget(pc)
	pc.createUI()
	pc.updateFromProduct()
	return pc
}

// Product returns the product shown
func (pc *ProductCard) Product() model.Product {
	return pc.product
}

// Tapped opens the product
func (pc *ProductCard) Tapped(*fyne.PointEvent) {
	if pc.onTapped != nil {
		pc.onTapped(pc.product)
	}
}

func (pc *ProductCard) createUI() {
	pc.nameLabel = widget.NewLabel("")
	pc.nameLabel.TextStyle = fyne.TextStyle{Bold: true}
	pc.nameLabel.Alignment = fyne.TextAlignCenter
	pc.nameLabel.Truncation = fyne.TextTruncateEllipsis

	pc.priceLabel = widget.NewLabel("")
	pc.priceLabel.Alignment = fyne.TextAlignCenter
	pc.priceLabel.Importance = widget.HighImportance
}

func (pc *ProductCard) updateFromProduct() {
	pc.nameLabel.SetText(pc.product.GetDisplayName())
	pc.priceLabel.SetText(pc.product.Price.String())
}

// CreateRenderer creates the widget renderer
func (pc *ProductCard) CreateRenderer() fyne.WidgetRenderer {
	content := container.NewBorder(
		nil,
		container.NewVBox(pc.nameLabel, pc.priceLabel),
		nil,
		nil,
		container.NewPadded(pc.image),
	)
	card := widget.NewCard("", "", content)
	return widget.NewSimpleRenderer(card)
}
