package ui

import (
	"context"
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/comfort-hq/digital-catalogue/internal/catalog"
	"github.com/comfort-hq/digital-catalogue/internal/flows"
	"github.com/comfort-hq/digital-catalogue/internal/model"
)

// ManageScreen lists products for deletion and holds the clear-all action
type ManageScreen struct {
	root *RootUI

	products    []model.Product
	filtered    []model.Product
	filterEntry *widget.Entry
	list        *widget.List
	body        *fyne.Container
}

// NewManageScreen creates the screen and loads the product list
func NewManageScreen(root *RootUI) *ManageScreen {
	ms := &ManageScreen{root: root}
	ms.createUI()
	ms.load()
	return ms
}

func (ms *ManageScreen) createUI() {
	t := ms.root.texts

	ms.filterEntry = widget.NewEntry()
	ms.filterEntry.SetPlaceHolder(t.GetText(KeyFilterPlaceholder))
	ms.filterEntry.OnChanged = func(string) { ms.applyFilter() }

	ms.list = widget.NewList(
		func() int { return len(ms.filtered) },
		func() fyne.CanvasObject {
			label := widget.NewLabel("")
			label.Truncation = fyne.TextTruncateEllipsis
			btn := widget.NewButton(IconDelete+" "+t.GetText(KeyDelete), nil)
			btn.Importance = widget.DangerImportance
			return container.NewBorder(nil, nil, nil, btn, label)
		},
		ms.updateRow,
	)

	ms.body = container.NewStack(loadingView(t))
}

func (ms *ManageScreen) updateRow(id widget.ListItemID, obj fyne.CanvasObject) {
	if id >= len(ms.filtered) {
		return
	}
	p := ms.filtered[id]

	row := obj.(*fyne.Container)
	label := row.Objects[0].(*widget.Label)
	btn := row.Objects[1].(*widget.Button)

	label.SetText(fmt.Sprintf(CategorySuffixFormat, p.Name, p.Category))
	btn.OnTapped = func() { ms.onDelete(p) }
}

func (ms *ManageScreen) load() {
	r := ms.root
	r.nav.Run(func(ctx context.Context) func() {
		products := r.catalog.FetchAll(ctx)
		return func() { ms.setProducts(products) }
	})
}

func (ms *ManageScreen) setProducts(products []model.Product) {
	ms.products = products
	ms.applyFilter()
}

func (ms *ManageScreen) applyFilter() {
	ms.filtered = catalog.FilterByName(ms.products, ms.filterEntry.Text)

	var content fyne.CanvasObject = ms.list
	if len(ms.filtered) == 0 {
		content = emptyView(ms.root.texts.GetText(KeyNoProducts))
	}
	ms.body.Objects = []fyne.CanvasObject{content}
	ms.body.Refresh()
	ms.list.Refresh()
}

// onDelete asks for confirmation; the gateway is only called after an explicit yes
func (ms *ManageScreen) onDelete(p model.Product) {
	r := ms.root
	apply := r.nav.Scoped()
	r.flows.ConfirmDelete(r.nav.Context(), r.confirmer, p.ID, func(o flows.Outcome) {
		apply(func() {
			r.showOutcome(o)
			if o.Reload {
				ms.load()
			}
		})
	})
}

func (ms *ManageScreen) onClearAll() {
	r := ms.root
	apply := r.nav.Scoped()
	r.flows.ConfirmClearAll(r.nav.Context(), r.confirmer, func(o flows.Outcome) {
		apply(func() {
			if o.ClearLocal {
				ms.setProducts(nil)
			}
			r.showOutcome(o)
		})
	})
}

// Content builds the screen
func (ms *ManageScreen) Content() fyne.CanvasObject {
	r := ms.root
	t := r.texts

	manageHeader := widget.NewLabelWithStyle(t.GetText(KeyManageProducts), fyne.TextAlignLeading, fyne.TextStyle{Bold: true})

	dangerHeader := widget.NewLabelWithStyle(t.GetText(KeyDangerZone), fyne.TextAlignLeading, fyne.TextStyle{Bold: true})
	dangerHeader.Importance = widget.DangerImportance
	clearBtn := widget.NewButton(t.GetText(KeyClearAll), ms.onClearAll)
	clearBtn.Importance = widget.DangerImportance

	top := container.NewVBox(
		r.header(t.GetText(KeyManageTitle), r.backButton(KeyBackToDashboard)),
		container.NewPadded(manageHeader),
		container.NewPadded(ms.filterEntry),
	)
	bottom := container.NewPadded(container.NewVBox(widget.NewSeparator(), dangerHeader, clearBtn))

	return container.NewBorder(top, bottom, nil, nil, ms.body)
}
