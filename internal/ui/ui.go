package ui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"gigmix/internal/models"
)

// Model is the track-picker application state.
//
// The picker edits the Selected flag of each entry in place; the caller reads
// the final selection with [Model.Entries] after the program exits.
type Model struct {
	list      list.Model
	entries   []models.PlaylistEntry
	help      help.Model
	keys      keyMap
	confirmed bool
	quitting  bool
	width     int
	height    int
}

// NewModel creates a picker over the given playlist entries.
func NewModel(entries []models.PlaylistEntry) Model {
	delegate := list.NewDefaultDelegate()

	l := list.New(entryItems(entries), delegate, 0, 0)
	l.Title = "Pick tracks for your playlist"
	l.Styles.Title = styles.title
	l.SetShowHelp(false)
	l.SetFilteringEnabled(false)
	l.SetShowStatusBar(false)

	return Model{
		list:    l,
		entries: entries,
		help:    help.New(),
		keys:    newKeyMap(),
	}
}

// Entries returns the entries with their final Selected flags.
func (m Model) Entries() []models.PlaylistEntry {
	return m.entries
}

// Confirmed reports whether the user confirmed the selection rather than
// cancelling out of the picker.
func (m Model) Confirmed() bool {
	return m.confirmed
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.list.SetSize(msg.Width, msg.Height-4)
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.toggle):
			return m.toggleCurrent(), nil

		case key.Matches(msg, m.keys.all):
			return m.setAll(true), nil

		case key.Matches(msg, m.keys.none):
			return m.setAll(false), nil

		case key.Matches(msg, m.keys.confirm):
			m.confirmed = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.quit):
			m.quitting = true
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	if m.quitting || m.confirmed {
		return ""
	}

	count := 0
	for _, entry := range m.entries {
		if entry.Selected {
			count++
		}
	}

	status := styles.status.Render(fmt.Sprintf("%d of %d selected", count, len(m.entries)))
	return m.list.View() + "\n" + status + "\n" + styles.help.Render(m.help.View(m.keys))
}

func (m Model) toggleCurrent() Model {
	idx := m.list.Index()
	if idx < 0 || idx >= len(m.entries) {
		return m
	}

	m.entries[idx].Selected = !m.entries[idx].Selected
	m.list.SetItem(idx, entryItem{entry: m.entries[idx]})
	return m
}

func (m Model) setAll(selected bool) Model {
	for i := range m.entries {
		m.entries[i].Selected = selected
		m.list.SetItem(i, entryItem{entry: m.entries[i]})
	}
	return m
}
