package ui

import (
	"context"
	"sync"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/comfort-hq/digital-catalogue/internal/flows"
	"github.com/comfort-hq/digital-catalogue/internal/model"
)

// ProductFormScreen adds a product, or edits one when original is set
type ProductFormScreen struct {
	root     *RootUI
	original *model.Product

	nameEntry        *widget.Entry
	descriptionEntry *widget.Entry
	priceEntry       *widget.Entry
	imageURLsEntry   *widget.Entry
	categorySelect   *widget.Select
	previews         *fyne.Container
	saveBtn          *widget.Button

	// applyOnScreen delivers debounced preview updates while this screen is shown
	applyOnScreen func(func())
	previewMu     sync.Mutex
	previewTimer  *time.Timer
}

// NewProductFormScreen creates the form. category preselects the picker for a
// new product.
func NewProductFormScreen(root *RootUI, original *model.Product, category model.Category) *ProductFormScreen {
	fs := &ProductFormScreen{
		root:          root,
		original:      original,
		applyOnScreen: root.nav.Scoped(),
	}
	fs.createUI()

	if original != nil {
		fs.setForm(flows.FormFromProduct(*original))
	} else {
		if !category.IsValid() {
			category = model.DefaultCategory
		}
		fs.setForm(flows.ProductForm{Category: category})
	}
	return fs
}

func (fs *ProductFormScreen) createUI() {
	t := fs.root.texts

	fs.nameEntry = widget.NewEntry()
	fs.nameEntry.SetPlaceHolder(t.GetText(KeyProductName))

	fs.descriptionEntry = widget.NewMultiLineEntry()
	fs.descriptionEntry.SetPlaceHolder(t.GetText(KeyDescription))
	fs.descriptionEntry.Wrapping = fyne.TextWrapWord

	fs.priceEntry = widget.NewEntry()
	fs.priceEntry.SetPlaceHolder(t.GetText(KeyPrice))

	fs.imageURLsEntry = widget.NewMultiLineEntry()
	fs.imageURLsEntry.SetPlaceHolder(t.GetText(KeyImageURLs))
	fs.imageURLsEntry.Wrapping = fyne.TextWrapBreak
	fs.imageURLsEntry.OnChanged = func(string) { fs.schedulePreviews() }

	fs.categorySelect = widget.NewSelect(model.CategoryLabels(), nil)

	fs.previews = container.NewHBox()

	label := KeySaveProduct
	if fs.original != nil {
		label = KeySaveChanges
	}
	fs.saveBtn = widget.NewButton(t.GetText(label), fs.onSave)
	fs.saveBtn.Importance = widget.HighImportance
}

func (fs *ProductFormScreen) setForm(form flows.ProductForm) {
	fs.nameEntry.SetText(form.Name)
	fs.descriptionEntry.SetText(form.Description)
	fs.priceEntry.SetText(form.Price)
	fs.imageURLsEntry.SetText(form.ImageURLs)
	fs.categorySelect.SetSelected(string(form.Category))
}

// Form returns the current form values
func (fs *ProductFormScreen) Form() flows.ProductForm {
	return flows.ProductForm{
		Name:        fs.nameEntry.Text,
		Description: fs.descriptionEntry.Text,
		Price:       fs.priceEntry.Text,
		Category:    model.Category(fs.categorySelect.Selected),
		ImageURLs:   fs.imageURLsEntry.Text,
	}
}

// Content builds the screen
func (fs *ProductFormScreen) Content() fyne.CanvasObject {
	r := fs.root
	t := r.texts

	title, back := t.GetText(KeyAddProductTitle), KeyBackToDashboard
	if fs.original != nil {
		title, back = t.GetText(KeyEditProductTitle), KeyBackToProduct
	}

	form := widget.NewForm(
		widget.NewFormItem(t.GetText(KeyProductName), fs.nameEntry),
		widget.NewFormItem(t.GetText(KeyDescription), fs.descriptionEntry),
		widget.NewFormItem(t.GetText(KeyPrice), fs.priceEntry),
		widget.NewFormItem(t.GetText(KeyCategory), fs.categorySelect),
		widget.NewFormItem(t.GetText(KeyImageURLs), fs.imageURLsEntry),
	)

	body := container.NewVBox(form, container.NewHScroll(fs.previews))
	return container.NewBorder(
		r.header(title, r.backButton(back)),
		container.NewPadded(fs.saveBtn),
		nil,
		nil,
		container.NewVScroll(container.NewPadded(body)),
	)
}

func (fs *ProductFormScreen) schedulePreviews() {
	fs.previewMu.Lock()
	defer fs.previewMu.Unlock()

	if fs.previewTimer != nil {
		fs.previewTimer.Stop()
	}
	fs.previewTimer = time.AfterFunc(PreviewDebounce, func() {
		fs.applyOnScreen(fs.refreshPreviews)
	})
}

func (fs *ProductFormScreen) refreshPreviews() {
	size := fyne.NewSize(PreviewSize, PreviewSize)
	urls := flows.ParseImageURLs(fs.imageURLsEntry.Text)

	objects := make([]fyne.CanvasObject, 0, len(urls))
	for _, url := range urls {
		objects = append(objects, fs.root.imageView(url, size))
	}
	fs.previews.Objects = objects
	fs.previews.Refresh()
}

// onSave submits the form. Validation happens inside the flow, so an
// incomplete form never reaches the gateway.
func (fs *ProductFormScreen) onSave() {
	r := fs.root
	form := fs.Form()

	fs.saveBtn.Disable()
	r.nav.Run(func(ctx context.Context) func() {
		var outcome flows.Outcome
		if fs.original != nil {
			outcome = r.flows.Update(ctx, *fs.original, form)
		} else {
			outcome = r.flows.Add(ctx, form)
		}
		return func() {
			fs.saveBtn.Enable()
			if outcome.Success && fs.original == nil {
				fs.setForm(flows.ProductForm{Category: form.Category})
			}
			r.showOutcome(outcome)
		}
	})
}
