package ui

import (
	"context"
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/comfort-hq/digital-catalogue/internal/model"
	"github.com/comfort-hq/digital-catalogue/internal/nav"
)

// ProductListScreen shows the products of one category
type ProductListScreen struct {
	root     *RootUI
	category model.Category
	body     *fyne.Container
}

// NewProductListScreen creates the screen and starts loading the category
func NewProductListScreen(root *RootUI, category model.Category) *ProductListScreen {
	ps := &ProductListScreen{root: root, category: category}
	ps.body = container.NewStack(loadingView(root.texts))
	ps.load()
	return ps
}

func (ps *ProductListScreen) load() {
	r := ps.root
	r.nav.Run(func(ctx context.Context) func() {
		products := r.catalog.ListCategory(ctx, ps.category)
		return func() {
			ps.body.Objects = []fyne.CanvasObject{ps.results(products)}
			ps.body.Refresh()
		}
	})
}

func (ps *ProductListScreen) results(products []model.Product) fyne.CanvasObject {
	if len(products) == 0 {
		return emptyView(ps.root.texts.GetText(KeyNoProductsCategory))
	}
	return ps.root.productGrid(products)
}

// Content builds the screen
func (ps *ProductListScreen) Content() fyne.CanvasObject {
	r := ps.root
	addBtn := widget.NewButton(IconAdd+" "+r.texts.GetText(KeyAddProduct), func() {
		r.nav.Navigate(nav.AddProduct{Category: ps.category})
	})
	addBtn.Importance = widget.SuccessImportance

	header := container.NewBorder(nil, nil, nil, addBtn,
		r.header(ps.category.String(), r.backButton(KeyBackToDashboard)))
	return container.NewBorder(header, nil, nil, nil, ps.body)
}

// SearchScreen shows the products matching a term
type SearchScreen struct {
	root *RootUI
	term string
	body *fyne.Container
}

// NewSearchScreen creates the screen and starts the search
func NewSearchScreen(root *RootUI, term string) *SearchScreen {
	ss := &SearchScreen{root: root, term: term}
	ss.body = container.NewStack(loadingView(root.texts))
	ss.load()
	return ss
}

func (ss *SearchScreen) load() {
	r := ss.root
	r.nav.Run(func(ctx context.Context) func() {
		products := r.catalog.Search(ctx, ss.term)
		return func() {
			if len(products) == 0 {
				ss.body.Objects = []fyne.CanvasObject{emptyView(r.texts.GetText(KeyNoProducts))}
			} else {
				ss.body.Objects = []fyne.CanvasObject{r.productGrid(products)}
			}
			ss.body.Refresh()
		}
	})
}

// Content builds the screen
func (ss *SearchScreen) Content() fyne.CanvasObject {
	r := ss.root
	title := fmt.Sprintf(SearchTitleFormat, ss.term)
	return container.NewBorder(r.header(title, r.backButton(KeyBackToDashboard)), nil, nil, nil, ss.body)
}

func loadingView(texts *Localization) fyne.CanvasObject {
	return container.NewCenter(container.NewVBox(
		widget.NewProgressBarInfinite(),
		widget.NewLabelWithStyle(texts.GetText(KeyLoading), fyne.TextAlignCenter, fyne.TextStyle{}),
	))
}

func emptyView(text string) fyne.CanvasObject {
	return container.NewCenter(widget.NewLabelWithStyle(text, fyne.TextAlignCenter, fyne.TextStyle{Italic: true}))
}
