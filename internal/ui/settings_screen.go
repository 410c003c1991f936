package ui

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/comfort-hq/digital-catalogue/internal/model"
	"github.com/comfort-hq/digital-catalogue/internal/nav"
	"github.com/comfort-hq/digital-catalogue/internal/settings"
)

var (
	// ErrInvalidFontSize is returned when the base font size is not a positive number
	ErrInvalidFontSize = errors.New("Base font size must be a positive number.")
	// ErrInvalidGridColumns is returned when grid columns is not a whole number from 1 to 5
	ErrInvalidGridColumns = fmt.Errorf("Category grid columns must be a whole number from %d to %d.",
		model.MinCategoryGridColumns, model.MaxCategoryGridColumns)
)

// SettingsFormValues is the raw text of the app settings form
type SettingsFormValues struct {
	BackgroundURL  string
	PrimaryColor   string
	SecondaryColor string
	FontFamily     string
	BaseFontSize   string
	GridColumns    string
}

// ValidateSettingsForm turns the form text into settings. The grid column
// range is enforced here; the store itself accepts any positive integer.
func ValidateSettingsForm(v SettingsFormValues) (model.DisplaySettings, error) {
	size, ok := settings.ParseFontSize(strings.TrimSpace(v.BaseFontSize))
	if !ok {
		return model.DisplaySettings{}, ErrInvalidFontSize
	}
	columns, ok := settings.ParseGridColumns(strings.TrimSpace(v.GridColumns))
	if !ok || columns > model.MaxCategoryGridColumns {
		return model.DisplaySettings{}, ErrInvalidGridColumns
	}

	return model.DisplaySettings{
		BackgroundURL:       strings.TrimSpace(v.BackgroundURL),
		PrimaryColor:        strings.TrimSpace(v.PrimaryColor),
		SecondaryColor:      strings.TrimSpace(v.SecondaryColor),
		FontFamily:          strings.TrimSpace(v.FontFamily),
		BaseFontSizePx:      size,
		CategoryGridColumns: columns,
	}, nil
}

// SettingsScreen edits the display settings and saves them through the store
type SettingsScreen struct {
	root *RootUI

	backgroundEntry *widget.Entry
	primaryEntry    *widget.Entry
	secondaryEntry  *widget.Entry
	fontEntry       *widget.Entry
	fontSizeEntry   *widget.Entry
	columnsEntry    *widget.Entry
	saveBtn         *widget.Button
}

// NewSettingsScreen creates the screen prefilled from the store
func NewSettingsScreen(root *RootUI) *SettingsScreen {
	ss := &SettingsScreen{root: root}
	ss.createUI()
	ss.loadCurrentSettings()
	return ss
}

func (ss *SettingsScreen) createUI() {
	t := ss.root.texts

	ss.backgroundEntry = widget.NewEntry()
	ss.backgroundEntry.SetPlaceHolder("https://...")
	ss.primaryEntry = widget.NewEntry()
	ss.primaryEntry.SetPlaceHolder(model.DefaultPrimaryColor)
	ss.secondaryEntry = widget.NewEntry()
	ss.secondaryEntry.SetPlaceHolder(model.DefaultSecondaryColor)
	ss.fontEntry = widget.NewEntry()
	ss.fontEntry.SetPlaceHolder(model.DefaultFontFamily)
	ss.fontSizeEntry = widget.NewEntry()
	ss.columnsEntry = widget.NewEntry()
	ss.columnsEntry.SetPlaceHolder(GridColumnsHint)

	ss.saveBtn = widget.NewButton(t.GetText(KeySaveSettings), ss.onSave)
	ss.saveBtn.Importance = widget.HighImportance
}

func (ss *SettingsScreen) loadCurrentSettings() {
	current := ss.root.settings.Current()
	ss.backgroundEntry.SetText(current.BackgroundURL)
	ss.primaryEntry.SetText(current.PrimaryColor)
	ss.secondaryEntry.SetText(current.SecondaryColor)
	ss.fontEntry.SetText(current.FontFamily)
	ss.fontSizeEntry.SetText(strconv.FormatFloat(current.BaseFontSizePx, 'f', -1, 64))
	ss.columnsEntry.SetText(strconv.Itoa(current.CategoryGridColumns))
}

// Values returns the current form text
func (ss *SettingsScreen) Values() SettingsFormValues {
	return SettingsFormValues{
		BackgroundURL:  ss.backgroundEntry.Text,
		PrimaryColor:   ss.primaryEntry.Text,
		SecondaryColor: ss.secondaryEntry.Text,
		FontFamily:     ss.fontEntry.Text,
		BaseFontSize:   ss.fontSizeEntry.Text,
		GridColumns:    ss.columnsEntry.Text,
	}
}

// Content builds the screen
func (ss *SettingsScreen) Content() fyne.CanvasObject {
	t := ss.root.texts

	form := widget.NewForm(
		widget.NewFormItem(t.GetText(KeyBackgroundURL), ss.backgroundEntry),
		widget.NewFormItem(t.GetText(KeyPrimaryColor), ss.primaryEntry),
		widget.NewFormItem(t.GetText(KeySecondaryColor), ss.secondaryEntry),
		widget.NewFormItem(t.GetText(KeyFontFamily), ss.fontEntry),
		widget.NewFormItem(t.GetText(KeyBaseFontSize), ss.fontSizeEntry),
		widget.NewFormItem(fmt.Sprintf("%s (%s)", t.GetText(KeyGridColumns), GridColumnsHint), ss.columnsEntry),
	)

	return container.NewBorder(
		ss.root.header(t.GetText(KeyAppSettings), ss.root.backButton(KeyBackToDashboard)),
		container.NewPadded(ss.saveBtn),
		nil,
		nil,
		container.NewVScroll(container.NewPadded(form)),
	)
}

// onSave validates and pushes the settings. Validation failures never reach the store.
func (ss *SettingsScreen) onSave() {
	next, err := ValidateSettingsForm(ss.Values())
	if err != nil {
		ss.root.showMessage(err.Error(), nil)
		return
	}

	ss.saveBtn.Disable()
	ss.root.nav.Run(func(ctx context.Context) func() {
		result := ss.root.settings.Save(ctx, next)
		return func() {
			ss.saveBtn.Enable()
			var after nav.Screen
			if result.OK {
				after = nav.Dashboard{}
			}
			ss.root.showMessage(result.Message, after)
		}
	})
}
