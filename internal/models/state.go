package models

import "sync"

// State holds the application's working sets: the current concert list, the
// current playlist entries, and the signed-in credential.
//
// Each search is stamped with a monotonic generation token taken from
// [State.BeginSearch]; results carrying a stale token are discarded, so an
// older search that completes late can never overwrite a newer one.
type State struct {
	mu        sync.Mutex
	searchGen uint64
	concerts  []ConcertRecord
	entries   []PlaylistEntry
	cred      Credential
}

// NewState creates an empty application state.
func NewState() *State {
	return &State{}
}

// BeginSearch advances the search generation and returns the new token.
// Call it before starting a search and pass the token to [State.ReplaceConcerts].
func (s *State) BeginSearch() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.searchGen++
	return s.searchGen
}

// ReplaceConcerts installs a new concert list for the given generation.
//
// It reports false and leaves the state untouched when gen is stale, i.e. a
// newer search has started since the token was taken. A successful replace
// also discards the playlist entries, which were derived from the old list.
func (s *State) ReplaceConcerts(gen uint64, records []ConcertRecord) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if gen != s.searchGen {
		return false
	}
	s.concerts = append([]ConcertRecord(nil), records...)
	s.entries = nil
	return true
}

// Concerts returns a copy of the current concert list.
func (s *State) Concerts() []ConcertRecord {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]ConcertRecord(nil), s.concerts...)
}

// ReplaceEntries installs a freshly synthesized playlist, discarding the old one.
func (s *State) ReplaceEntries(entries []PlaylistEntry) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = append([]PlaylistEntry(nil), entries...)
}

// Entries returns a copy of the current playlist entries.
func (s *State) Entries() []PlaylistEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]PlaylistEntry(nil), s.entries...)
}

// ToggleEntry flips the Selected flag of the entry at index i.
// It reports false when i is out of range.
func (s *State) ToggleEntry(i int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if i < 0 || i >= len(s.entries) {
		return false
	}
	s.entries[i].Selected = !s.entries[i].Selected
	return true
}

// SelectedEntries returns the entries currently marked selected, in order.
func (s *State) SelectedEntries() []PlaylistEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	var selected []PlaylistEntry
	for _, e := range s.entries {
		if e.Selected {
			selected = append(selected, e)
		}
	}
	return selected
}

// SetCredential installs the signed-in credential.
func (s *State) SetCredential(c Credential) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cred = c
}

// ClearCredential removes the identity and bearer token together.
// A retained token from a signed-out account must never survive.
func (s *State) ClearCredential() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cred = Credential{}
}

// Credential returns the current credential and whether a token is present.
func (s *State) Credential() (Credential, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cred, s.cred.Present()
}
