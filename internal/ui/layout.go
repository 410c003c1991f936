package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"

	"github.com/comfort-hq/digital-catalogue/internal/model"
)

// Layout adapts grid sizing to the device
type Layout struct {
	mobile bool
}

// NewLayout inspects the current device
func NewLayout() *Layout {
	return &Layout{mobile: fyne.CurrentDevice().IsMobile()}
}

// IsMobileDevice reports whether the app runs on a phone or tablet
func (l *Layout) IsMobileDevice() bool {
	return l.mobile
}

// CategoryColumns turns the configured grid columns into the column count
// used on this device
func (l *Layout) CategoryColumns(requested int) int {
	if requested < model.MinCategoryGridColumns {
		requested = model.DefaultCategoryGridColumns
	}
	if requested > model.MaxCategoryGridColumns {
		requested = model.MaxCategoryGridColumns
	}
	if l.mobile && requested > MobileMaxColumns {
		return MobileMaxColumns
	}
	return requested
}

// CardColumns is the column count for product card grids
func (l *Layout) CardColumns() int {
	if l.mobile {
		return MobileCardColumns
	}
	return DesktopCardColumns
}

// Grid lays objects out in a fixed column grid
func (l *Layout) Grid(columns int, objects ...fyne.CanvasObject) *fyne.Container {
	return container.NewGridWithColumns(columns, objects...)
}

// ActionHeight is the minimum height of primary action buttons. Phones get
// a finger-sized target.
func (l *Layout) ActionHeight() float32 {
	if l.mobile {
		return MinTouchTargetSize
	}
	return 0
}
