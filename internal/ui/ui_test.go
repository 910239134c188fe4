package ui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"gigmix/internal/models"
)

func testEntries() []models.PlaylistEntry {
	return []models.PlaylistEntry{
		{Artist: "Band A", Song: "Song A", Selected: true, VideoLink: "https://www.youtube.com/watch?v=aaaaaaaaaaa"},
		{Artist: "Band B", Song: "Song B", Selected: true},
		{Artist: "Band C", Song: "Song C", Selected: true},
	}
}

func keyPress(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestModel(t *testing.T) {
	t.Run("Toggle Current Entry", func(t *testing.T) {
		m := NewModel(testEntries())

		updated, _ := m.Update(keyPress('x'))
		m = updated.(Model)

		if m.Entries()[0].Selected {
			t.Error("expected first entry to be deselected after toggle")
		}

		updated, _ = m.Update(keyPress('x'))
		m = updated.(Model)

		if !m.Entries()[0].Selected {
			t.Error("expected first entry to be selected after second toggle")
		}
	})

	t.Run("Select None Then All", func(t *testing.T) {
		m := NewModel(testEntries())

		updated, _ := m.Update(keyPress('n'))
		m = updated.(Model)

		for i, entry := range m.Entries() {
			if entry.Selected {
				t.Errorf("entry %d should be deselected", i)
			}
		}

		updated, _ = m.Update(keyPress('a'))
		m = updated.(Model)

		for i, entry := range m.Entries() {
			if !entry.Selected {
				t.Errorf("entry %d should be selected", i)
			}
		}
	})

	t.Run("Confirm Quits With Confirmation", func(t *testing.T) {
		m := NewModel(testEntries())

		updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
		m = updated.(Model)

		if !m.Confirmed() {
			t.Error("expected confirmation after enter")
		}
		if cmd == nil {
			t.Error("expected a quit command")
		}
	})

	t.Run("Cancel Quits Without Confirmation", func(t *testing.T) {
		m := NewModel(testEntries())

		updated, cmd := m.Update(keyPress('q'))
		m = updated.(Model)

		if m.Confirmed() {
			t.Error("cancel must not confirm the selection")
		}
		if cmd == nil {
			t.Error("expected a quit command")
		}
	})
}

func TestEntryItem(t *testing.T) {
	selected := entryItem{entry: models.PlaylistEntry{Artist: "Band A", Song: "Song A", Selected: true}}
	if !strings.HasPrefix(selected.Title(), "[x]") {
		t.Errorf("expected checked glyph, got %q", selected.Title())
	}

	unselected := entryItem{entry: models.PlaylistEntry{Artist: "Band B", Song: "Song B"}}
	if !strings.HasPrefix(unselected.Title(), "[ ]") {
		t.Errorf("expected unchecked glyph, got %q", unselected.Title())
	}

	if unselected.Description() != "no video found" {
		t.Errorf("expected missing-video note, got %q", unselected.Description())
	}

	linked := entryItem{entry: models.PlaylistEntry{Artist: "Band A", Song: "Song A", VideoLink: "https://www.youtube.com/watch?v=aaaaaaaaaaa"}}
	if linked.Description() != "https://www.youtube.com/watch?v=aaaaaaaaaaa" {
		t.Errorf("expected video link, got %q", linked.Description())
	}
}
