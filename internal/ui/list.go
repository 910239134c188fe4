package ui

import (
	"github.com/charmbracelet/bubbles/list"

	"gigmix/internal/models"
)

var _ list.Item = entryItem{}

// entryItem wraps [models.PlaylistEntry] to implement [list.Item].
//
// The checkbox glyph in the title reflects the entry's Selected flag.
type entryItem struct {
	entry models.PlaylistEntry
}

func (i entryItem) FilterValue() string { return i.entry.Artist }

func (i entryItem) Title() string {
	box := "[ ]"
	if i.entry.Selected {
		box = "[x]"
	}
	return box + " " + i.entry.Artist + " - " + i.entry.Song
}

func (i entryItem) Description() string {
	if i.entry.VideoLink == "" {
		return "no video found"
	}
	return i.entry.VideoLink
}

func entryItems(entries []models.PlaylistEntry) []list.Item {
	items := make([]list.Item, len(entries))
	for i, entry := range entries {
		items[i] = entryItem{entry: entry}
	}
	return items
}
