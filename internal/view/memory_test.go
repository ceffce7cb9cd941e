package view

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMemory_TextAndVisibility(t *testing.T) {
	m := NewMemory()
	assert.Equal(t, "", m.Text("login-error"))
	assert.True(t, m.Visible("login-error"))

	m.SetText("login-error", "Invalid login or password")
	m.Hide("login-error")
	assert.Equal(t, "Invalid login or password", m.Text("login-error"))
	assert.False(t, m.Visible("login-error"))

	m.Show("login-error")
	assert.True(t, m.Visible("login-error"))
	assert.Equal(t, Element{Text: "Invalid login or password", Visible: true, Classes: []string{}}, m.Snapshot("login-error"))
}

func TestMemory_Classes(t *testing.T) {
	m := NewMemory()
	assert.False(t, m.HasClass("filter-7", ActiveClass))

	m.AddClass("filter-7", "filter-btn")
	m.AddClass("filter-7", ActiveClass)
	m.AddClass("filter-30", "filter-btn")
	assert.True(t, m.HasClass("filter-7", ActiveClass))
	assert.Equal(t, []string{"filter-30", "filter-7"}, m.WithClass("filter-btn"))
	assert.Equal(t, []string{"filter-7"}, m.WithClass(ActiveClass))

	m.RemoveClass("filter-7", ActiveClass)
	m.RemoveClass("unknown", ActiveClass)
	assert.Empty(t, m.WithClass(ActiveClass))
	assert.Equal(t, []string{"filter-btn"}, m.Snapshot("filter-7").Classes)
}

func TestMemory_ConcurrentWrites(t *testing.T) {
	m := NewMemory()
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			id := fmt.Sprintf("el-%d", i%5)
			m.SetText(id, "x")
			m.AddClass(id, ActiveClass)
			_ = m.Text(id)
		}(i)
	}
	wg.Wait()
	assert.Len(t, m.WithClass(ActiveClass), 5)
}

func TestRecorders(t *testing.T) {
	nav := NewRecordingNavigator()
	assert.Equal(t, Page(""), nav.Last())
	nav.Navigate(PageDashboard)
	nav.Navigate(PageLogin)
	assert.Equal(t, PageLogin, nav.Last())
	assert.Equal(t, []Page{PageDashboard, PageLogin}, nav.Pages())

	alerter := NewRecordingAlerter()
	alerter.Alert("Error: request failed")
	assert.Equal(t, []string{"Error: request failed"}, alerter.Messages())
}
