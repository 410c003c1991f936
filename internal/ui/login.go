package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"
)

// LoginScreen collects the operator credentials
type LoginScreen struct {
	root *RootUI

	usernameEntry *widget.Entry
	passwordEntry *widget.Entry
	errorLabel    *widget.Label
	enterBtn      *widget.Button
}

// NewLoginScreen creates the login form
func NewLoginScreen(root *RootUI) *LoginScreen {
	ls := &LoginScreen{root: root}
	ls.createUI()
	return ls
}

func (ls *LoginScreen) createUI() {
	t := ls.root.texts

	ls.usernameEntry = widget.NewEntry()
	ls.usernameEntry.SetPlaceHolder(t.GetText(KeyUsername))

	ls.passwordEntry = widget.NewPasswordEntry()
	ls.passwordEntry.SetPlaceHolder(t.GetText(KeyPassword))
	ls.passwordEntry.OnSubmitted = func(string) { ls.onLogin() }

	ls.errorLabel = widget.NewLabel(ls.root.nav.LoginError())
	ls.errorLabel.Importance = widget.DangerImportance
	ls.errorLabel.Alignment = fyne.TextAlignCenter
	if ls.errorLabel.Text == "" {
		ls.errorLabel.Hide()
	}

	ls.enterBtn = widget.NewButton(t.GetText(KeyEnter), ls.onLogin)
	ls.enterBtn.Importance = widget.HighImportance
}

// Content builds the screen
func (ls *LoginScreen) Content() fyne.CanvasObject {
	title := widget.NewLabelWithStyle(ls.root.texts.GetText(KeyAppTitle), fyne.TextAlignCenter, fyne.TextStyle{Bold: true})

	form := container.NewVBox(
		title,
		ls.errorLabel,
		ls.usernameEntry,
		ls.passwordEntry,
		ls.enterBtn,
	)
	sized := container.New(layout.NewGridWrapLayout(fyne.NewSize(LoginFormWidth, form.MinSize().Height)), form)
	return container.NewCenter(sized)
}

// onLogin checks the credentials. On success the controller re-renders into
// the dashboard; on failure only the error message changes.
func (ls *LoginScreen) onLogin() {
	if err := ls.root.nav.Login(ls.usernameEntry.Text, ls.passwordEntry.Text); err != nil {
		ls.errorLabel.SetText(ls.root.nav.LoginError())
		ls.errorLabel.Show()
	}
}
