package view

import "sync"

// RecordingNavigator remembers every navigation; the CLI reads Last to decide what runs next.
type RecordingNavigator struct {
	mu    sync.Mutex
	pages []Page
}

func NewRecordingNavigator() *RecordingNavigator {
	return &RecordingNavigator{}
}

func (n *RecordingNavigator) Navigate(page Page) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.pages = append(n.pages, page)
}

// Last returns the most recent destination, or "" if none.
func (n *RecordingNavigator) Last() Page {
	n.mu.Lock()
	defer n.mu.Unlock()
	if len(n.pages) == 0 {
		return ""
	}
	return n.pages[len(n.pages)-1]
}

func (n *RecordingNavigator) Pages() []Page {
	n.mu.Lock()
	defer n.mu.Unlock()
	return append([]Page(nil), n.pages...)
}

type RecordingAlerter struct {
	mu       sync.Mutex
	messages []string
}

func NewRecordingAlerter() *RecordingAlerter {
	return &RecordingAlerter{}
}

func (a *RecordingAlerter) Alert(msg string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.messages = append(a.messages, msg)
}

func (a *RecordingAlerter) Messages() []string {
	a.mu.Lock()
	defer a.mu.Unlock()
	return append([]string(nil), a.messages...)
}
