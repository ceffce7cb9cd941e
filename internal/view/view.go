// Package view is the rendering surface the controllers drive: elements
// addressed by identifier, each with a text, a visibility flag and a class set.
// Controllers depend only on these capabilities, never on a concrete renderer.
package view

type Page string

const (
	PageLogin     Page = "index"
	PageRegister  Page = "register"
	PageDashboard Page = "dashboard"
)

// ActiveClass marks the selected filter control and the open modal.
const ActiveClass = "active"

type Bindings interface {
	Text(id string) string
	SetText(id, text string)
	Show(id string)
	Hide(id string)
	Visible(id string) bool
	AddClass(id, class string)
	RemoveClass(id, class string)
	HasClass(id, class string) bool
}

type Navigator interface {
	Navigate(page Page)
}

// Alerter shows a blocking message the user has to acknowledge.
type Alerter interface {
	Alert(msg string)
}

var (
	_ Bindings  = (*Memory)(nil)
	_ Navigator = (*RecordingNavigator)(nil)
	_ Alerter   = (*RecordingAlerter)(nil)
)
