package view

import (
	"sort"
	"sync"
)

type Element struct {
	Text    string
	Visible bool
	Classes []string
}

type element struct {
	text    string
	hidden  bool
	classes map[string]struct{}
}

// Memory keeps elements in a map. Unknown identifiers are created on first
// touch, visible and empty. Safe for concurrent use.
type Memory struct {
	mu       sync.RWMutex
	elements map[string]*element
}

func NewMemory() *Memory {
	return &Memory{
		elements: make(map[string]*element),
	}
}

// get must be called with the write lock held
func (m *Memory) get(id string) *element {
	el, ok := m.elements[id]
	if !ok {
		el = &element{classes: make(map[string]struct{})}
		m.elements[id] = el
	}
	return el
}

func (m *Memory) Text(id string) string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if el, ok := m.elements[id]; ok {
		return el.text
	}
	return ""
}

func (m *Memory) SetText(id, text string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.get(id).text = text
}

func (m *Memory) Show(id string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.get(id).hidden = false
}

func (m *Memory) Hide(id string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.get(id).hidden = true
}

func (m *Memory) Visible(id string) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if el, ok := m.elements[id]; ok {
		return !el.hidden
	}
	return true
}

func (m *Memory) AddClass(id, class string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.get(id).classes[class] = struct{}{}
}

func (m *Memory) RemoveClass(id, class string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.get(id).classes, class)
}

func (m *Memory) HasClass(id, class string) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	el, ok := m.elements[id]
	if !ok {
		return false
	}
	_, has := el.classes[class]
	return has
}

// WithClass lists the identifiers carrying class, sorted.
func (m *Memory) WithClass(class string) []string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var ids []string
	for id, el := range m.elements {
		if _, has := el.classes[class]; has {
			ids = append(ids, id)
		}
	}
	sort.Strings(ids)
	return ids
}

func (m *Memory) Snapshot(id string) Element {
	m.mu.RLock()
	defer m.mu.RUnlock()
	el, ok := m.elements[id]
	if !ok {
		return Element{Visible: true}
	}
	classes := make([]string, 0, len(el.classes))
	for c := range el.classes {
		classes = append(classes, c)
	}
	sort.Strings(classes)
	return Element{
		Text:    el.text,
		Visible: !el.hidden,
		Classes: classes,
	}
}
