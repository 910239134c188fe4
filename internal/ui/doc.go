// Package ui implements the interactive track picker using bubbletea's Elm architecture.
//
// The picker shows one checkbox row per playlist entry. Space toggles the row
// under the cursor, "a" and "n" select all or none, enter confirms the
// selection, and q or esc cancels without publishing.
//
// [Model] implements bubbletea's standard Init/Update/View pattern. The caller
// runs the program, then reads the final selection with [Model.Entries] and
// checks [Model.Confirmed] before publishing anything.
//
// Keyboard navigation uses vim-style bindings (j/k) with contextual help displayed via charmbracelet/bubbles/help.
package ui
