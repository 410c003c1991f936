// Package ui contains the Fyne desktop interface for the catalogue. RootUI
// renders whatever screen the navigation controller holds, applies the remote
// display settings as a theme, and runs remote calls off the UI goroutine
// through screen-scoped tasks.
package ui
