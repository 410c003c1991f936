package ui

import (
	"image/color"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"

	"github.com/comfort-hq/digital-catalogue/internal/model"
	"github.com/comfort-hq/digital-catalogue/internal/nav"
)

// DashboardScreen is the home screen: search, category grid and entry points
// to the management screens
type DashboardScreen struct {
	root *RootUI

	searchEntry *widget.Entry
	grid        *fyne.Container
	columns     int
}

// NewDashboardScreen creates the dashboard
func NewDashboardScreen(root *RootUI) *DashboardScreen {
	ds := &DashboardScreen{root: root}
	ds.searchEntry = widget.NewEntry()
	ds.searchEntry.SetPlaceHolder(root.texts.GetText(KeySearchPlaceholder))
	ds.searchEntry.SetText(root.prefs.GetLastSearchTerm())
	ds.searchEntry.OnSubmitted = func(string) { ds.onSearch() }
	return ds
}

// Content builds the screen
func (ds *DashboardScreen) Content() fyne.CanvasObject {
	r := ds.root
	t := r.texts

	manageBtn := widget.NewButton(IconSettings, func() { r.nav.Navigate(nav.SettingsProducts{}) })
	manageBtn.Importance = widget.LowImportance
	appSettingsBtn := widget.NewButton(IconPalette, func() { r.nav.Navigate(nav.AppSettings{}) })
	appSettingsBtn.Importance = widget.LowImportance

	title := widget.NewLabelWithStyle(t.GetText(KeyAppTitle), fyne.TextAlignLeading, fyne.TextStyle{Bold: true})
	header := container.NewBorder(nil, nil, nil, container.NewHBox(appSettingsBtn, manageBtn), title)

	searchBtn := widget.NewButton(IconSearch+" "+t.GetText(KeySearch), ds.onSearch)
	searchRow := container.NewBorder(nil, nil, nil, searchBtn, ds.searchEntry)

	ds.columns = r.layout.CategoryColumns(r.settings.Current().CategoryGridColumns)
	tiles := make([]fyne.CanvasObject, 0, len(model.Categories()))
	for _, c := range model.Categories() {
		category := c
		btn := widget.NewButton(category.String(), func() {
			r.nav.Navigate(nav.ProductList{Category: category})
		})
		btn.Importance = widget.HighImportance
		tiles = append(tiles, minHeight(CategoryTileHeight, btn))
	}
	ds.grid = r.layout.Grid(ds.columns, tiles...)
	grid := container.NewVBox(
		widget.NewLabelWithStyle(t.GetText(KeyCategories), fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		ds.grid,
	)

	addBtn := widget.NewButton(IconAdd+" "+t.GetText(KeyAddProduct), func() {
		r.nav.Navigate(nav.AddProduct{})
	})
	addBtn.Importance = widget.SuccessImportance

	return container.NewBorder(
		container.NewVBox(container.NewPadded(header), container.NewPadded(searchRow)),
		container.NewPadded(minHeight(r.layout.ActionHeight(), addBtn)),
		nil,
		nil,
		container.NewVScroll(container.NewPadded(grid)),
	)
}

// minHeight gives obj a minimum height using a transparent rectangle underneath
func minHeight(h float32, obj fyne.CanvasObject) fyne.CanvasObject {
	spacer := canvas.NewRectangle(color.Transparent)
	spacer.SetMinSize(fyne.NewSize(0, h))
	return container.NewStack(spacer, obj)
}

// setColumns relayouts the category grid for a new column setting
func (ds *DashboardScreen) setColumns(requested int) {
	if ds.grid == nil {
		return
	}
	ds.columns = ds.root.layout.CategoryColumns(requested)
	ds.grid.Layout = layout.NewGridLayoutWithColumns(ds.columns)
	ds.grid.Refresh()
}

func (ds *DashboardScreen) onSearch() {
	term := strings.TrimSpace(ds.searchEntry.Text)
	ds.root.prefs.SetLastSearchTerm(term)
	ds.root.nav.Navigate(nav.Search{Term: term})
}
