package ui

import (
	"context"
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"
	"go.uber.org/zap"

	"github.com/comfort-hq/digital-catalogue/internal/catalog"
	"github.com/comfort-hq/digital-catalogue/internal/config"
	"github.com/comfort-hq/digital-catalogue/internal/flows"
	"github.com/comfort-hq/digital-catalogue/internal/model"
	"github.com/comfort-hq/digital-catalogue/internal/nav"
	"github.com/comfort-hq/digital-catalogue/internal/settings"
)

// Services are the non-UI components the screens talk to
type Services struct {
	Settings *settings.Store
	Catalog  *catalog.Service
	Flows    *flows.Service
	Images   *ImageLoader
	Logger   *zap.Logger
}

// RootUI renders the current screen into the window
type RootUI struct {
	app    fyne.App
	window fyne.Window
	nav    *nav.Controller

	settings *settings.Store
	catalog  *catalog.Service
	flows    *flows.Service
	images   *ImageLoader
	prefs    *config.Preferences
	texts    *Localization
	layout   *Layout
	logger   *zap.Logger

	// dispatch runs on the UI goroutine; fyne.Do outside tests
	dispatch nav.Dispatcher

	theme      *CatalogueTheme
	confirmer  *dialogConfirmer
	background *canvas.Image
	overlay    *canvas.Rectangle
	bgURL      string

	// dashboard is set while the dashboard is shown
	dashboard *DashboardScreen
}

// NewRootUI creates the UI. Call Start to render the first screen.
func NewRootUI(app fyne.App, window fyne.Window, controller *nav.Controller, svc Services, dispatch nav.Dispatcher) *RootUI {
	logger := svc.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	if dispatch == nil {
		dispatch = fyne.Do
	}
	if svc.Images == nil {
		svc.Images = NewImageLoader(nil, logger)
	}

	r := &RootUI{
		app:      app,
		window:   window,
		nav:      controller,
		settings: svc.Settings,
		catalog:  svc.Catalog,
		flows:    svc.Flows,
		images:   svc.Images,
		prefs:    config.NewPreferences(app),
		texts:    NewLocalization(),
		layout:   NewLayout(),
		logger:   logger.Named("ui"),
		dispatch: dispatch,
	}
	r.confirmer = &dialogConfirmer{window: window, texts: r.texts, nav: controller}
	r.background = canvas.NewImageFromResource(nil)
	r.background.FillMode = canvas.ImageFillStretch
	r.overlay = canvas.NewRectangle(color.NRGBA{A: BackgroundOverlayAlpha})
	r.overlay.Hide()

	window.SetTitle(r.texts.GetText(KeyAppTitle))
	return r
}

// Start applies the current settings, renders the first screen and loads the
// remote settings in the background. Later settings changes restyle the shown
// screen in place; nothing the user has typed is rebuilt away.
func (r *RootUI) Start(ctx context.Context) {
	r.applySettings(r.settings.Current())

	r.settings.Subscribe(func(s model.DisplaySettings) {
		r.dispatch(func() {
			r.applySettings(s)
			if r.dashboard != nil {
				r.dashboard.setColumns(s.CategoryGridColumns)
			}
		})
	})
	r.nav.OnChange(r.render)
	r.render(r.nav.State())

	go func() {
		if err := r.settings.Load(ctx); err != nil {
			r.logger.Warn(r.texts.GetText(KeySettingsLoadFailed), zap.Error(err))
		}
	}()
}

// Theme returns the theme built from the latest settings
func (r *RootUI) Theme() *CatalogueTheme {
	return r.theme
}

func (r *RootUI) applySettings(s model.DisplaySettings) {
	r.theme = NewCatalogueTheme(s)
	r.app.Settings().SetTheme(r.theme)
	r.loadBackground(s.BackgroundURL)
}

func (r *RootUI) loadBackground(url string) {
	if url == r.bgURL {
		return
	}
	r.bgURL = url
	r.background.Resource = nil
	r.background.Refresh()
	if url == "" {
		r.overlay.Hide()
		return
	}
	r.overlay.Show()

	go func() {
		res, err := r.images.Load(context.Background(), url)
		if err != nil {
			r.logger.Warn("Background image failed to load", zap.String("url", url), zap.Error(err))
			return
		}
		r.dispatch(func() {
			if r.bgURL != url {
				return
			}
			r.background.Resource = res
			r.background.Refresh()
		})
	}()
}

// render swaps the window content for state. Runs on the UI goroutine.
func (r *RootUI) render(state nav.State) {
	r.dashboard = nil
	if !state.Authenticated {
		r.window.SetContent(NewLoginScreen(r).Content())
		return
	}

	var content fyne.CanvasObject
	switch s := state.Screen.(type) {
	case nav.AddProduct:
		content = NewProductFormScreen(r, nil, s.Category).Content()
	case nav.EditProduct:
		p := s.Product
		content = NewProductFormScreen(r, &p, p.Category).Content()
	case nav.AppSettings:
		content = NewSettingsScreen(r).Content()
	case nav.SettingsProducts:
		content = NewManageScreen(r).Content()
	case nav.Search:
		content = NewSearchScreen(r, s.Term).Content()
	case nav.ProductList:
		content = NewProductListScreen(r, s.Category).Content()
	case nav.ProductDetail:
		content = NewProductDetailScreen(r, s.Product).Content()
	default:
		r.dashboard = NewDashboardScreen(r)
		content = r.dashboard.Content()
	}

	r.window.SetContent(r.withBackground(content))
}

// withBackground stacks content over the background image. The overlay is
// hidden while no background is set.
func (r *RootUI) withBackground(content fyne.CanvasObject) fyne.CanvasObject {
	return container.NewStack(r.background, r.overlay, content)
}

// showMessage shows a dismissible message; next, when set, is navigated to on dismissal
func (r *RootUI) showMessage(message string, next nav.Screen) {
	d := dialog.NewInformation(r.texts.GetText(KeyNoticeTitle), message, r.window)
	if next != nil {
		d.SetOnClosed(func() { r.nav.Navigate(next) })
	}
	d.Show()
}

// showOutcome shows the message of a mutation flow
func (r *RootUI) showOutcome(o flows.Outcome) {
	r.showMessage(o.Message, o.Next)
}

// header is a title row with an optional leading button
func (r *RootUI) header(title string, leading fyne.CanvasObject) fyne.CanvasObject {
	style := widget.RichTextStyleHeading
	style.Alignment = fyne.TextAlignCenter
	heading := widget.NewRichText(&widget.TextSegment{Text: title, Style: style})

	if leading == nil {
		return container.NewPadded(heading)
	}
	return container.NewPadded(container.NewBorder(nil, nil, leading, nil, heading))
}

// backButton navigates to the back target of the current screen
func (r *RootUI) backButton(labelKey string) *widget.Button {
	btn := widget.NewButton(IconBack+" "+r.texts.GetText(labelKey), r.nav.Back)
	btn.Importance = widget.LowImportance
	return btn
}

// imageView shows a placeholder and swaps in the image once it loads. The
// load is tied to the current screen.
func (r *RootUI) imageView(url string, size fyne.Size) fyne.CanvasObject {
	holder := container.NewStack(NewPlaceholder(size))
	if url == "" {
		return holder
	}

	r.nav.Run(func(ctx context.Context) func() {
		res, err := r.images.Load(ctx, url)
		if err != nil {
			r.logger.Debug("Image failed to load, keeping placeholder", zap.String("url", url), zap.Error(err))
			return nil
		}
		return func() {
			img := canvas.NewImageFromResource(res)
			img.FillMode = canvas.ImageFillContain
			img.SetMinSize(size)
			holder.Objects = []fyne.CanvasObject{img}
			holder.Refresh()
		}
	})
	return holder
}

// productGrid lays out product cards that open the detail screen
func (r *RootUI) productGrid(products []model.Product) fyne.CanvasObject {
	size := fyne.NewSize(CardImageSize, CardImageSize)
	cards := make([]fyne.CanvasObject, 0, len(products))
	for _, p := range products {
		cards = append(cards, NewProductCard(p, r.imageView(p.ImageURL.First(), size), func(selected model.Product) {
			r.nav.Navigate(nav.ProductDetail{Product: selected})
		}))
	}
	return container.NewVScroll(r.layout.Grid(r.layout.CardColumns(), cards...))
}

// dialogConfirmer asks through a modal confirm dialog. The answer is delivered
// on a controller task so the confirmed action can block on the network and
// shutdown waits for it.
type dialogConfirmer struct {
	window fyne.Window
	texts  *Localization
	nav    *nav.Controller
}

// Confirm implements flows.Confirmer
func (c *dialogConfirmer) Confirm(message string, onResult func(ok bool)) {
	dialog.ShowConfirm(c.texts.GetText(KeyConfirmTitle), message, func(ok bool) {
		c.deliver(ok, onResult)
	}, c.window)
}

func (c *dialogConfirmer) deliver(ok bool, onResult func(ok bool)) {
	c.nav.Go(func() { onResult(ok) })
}

var _ flows.Confirmer = (*dialogConfirmer)(nil)
