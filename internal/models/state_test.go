package models

import (
	"sync"
	"testing"
)

func TestState(t *testing.T) {
	t.Run("ReplaceConcerts", func(t *testing.T) {
		t.Run("Current Generation Wins", func(t *testing.T) {
			s := NewState()
			gen := s.BeginSearch()

			if !s.ReplaceConcerts(gen, []ConcertRecord{{ID: "ev1"}}) {
				t.Fatal("expected current-generation results to be accepted")
			}

			concerts := s.Concerts()
			if len(concerts) != 1 || concerts[0].ID != "ev1" {
				t.Errorf("unexpected concerts: %+v", concerts)
			}
		})

		t.Run("Stale Generation Discarded", func(t *testing.T) {
			s := NewState()
			stale := s.BeginSearch()
			current := s.BeginSearch()

			if !s.ReplaceConcerts(current, []ConcertRecord{{ID: "new"}}) {
				t.Fatal("expected current results to be accepted")
			}
			if s.ReplaceConcerts(stale, []ConcertRecord{{ID: "old"}}) {
				t.Fatal("expected stale results to be discarded")
			}

			concerts := s.Concerts()
			if len(concerts) != 1 || concerts[0].ID != "new" {
				t.Errorf("stale results must not overwrite newer ones: %+v", concerts)
			}
		})

		t.Run("New Concerts Clear Old Entries", func(t *testing.T) {
			s := NewState()
			s.ReplaceEntries([]PlaylistEntry{{Artist: "Band A", Song: "Song A"}})

			gen := s.BeginSearch()
			s.ReplaceConcerts(gen, []ConcertRecord{{ID: "ev1"}})

			if len(s.Entries()) != 0 {
				t.Error("expected entries to be cleared by a new concert set")
			}
		})
	})

	t.Run("Entries", func(t *testing.T) {
		t.Run("Toggle", func(t *testing.T) {
			s := NewState()
			s.ReplaceEntries([]PlaylistEntry{
				{Artist: "Band A", Song: "Song A", Selected: true},
				{Artist: "Band B", Song: "Song B", Selected: true},
			})

			if !s.ToggleEntry(1) {
				t.Fatal("expected toggle of valid index to succeed")
			}
			if s.ToggleEntry(5) {
				t.Error("expected toggle of invalid index to fail")
			}

			entries := s.Entries()
			if entries[0].Selected != true || entries[1].Selected != false {
				t.Errorf("unexpected selection state: %+v", entries)
			}
		})

		t.Run("SelectedEntries", func(t *testing.T) {
			s := NewState()
			s.ReplaceEntries([]PlaylistEntry{
				{Artist: "Band A", Selected: true},
				{Artist: "Band B", Selected: false},
				{Artist: "Band C", Selected: true},
			})

			selected := s.SelectedEntries()
			if len(selected) != 2 {
				t.Fatalf("expected 2 selected entries, got %d", len(selected))
			}
			if selected[0].Artist != "Band A" || selected[1].Artist != "Band C" {
				t.Errorf("unexpected selection: %+v", selected)
			}
		})
	})

	t.Run("Credential", func(t *testing.T) {
		s := NewState()

		if _, ok := s.Credential(); ok {
			t.Error("expected no credential initially")
		}

		s.SetCredential(Credential{Account: "user@example.com", BearerToken: "tok"})
		cred, ok := s.Credential()
		if !ok || cred.Account != "user@example.com" {
			t.Errorf("expected stored credential, got %+v", cred)
		}

		s.ClearCredential()
		if cred, ok := s.Credential(); ok || cred.BearerToken != "" || cred.Account != "" {
			t.Errorf("expected both fields cleared together, got %+v", cred)
		}
	})

	t.Run("Concurrent Access", func(t *testing.T) {
		s := NewState()
		var wg sync.WaitGroup

		for i := 0; i < 16; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				gen := s.BeginSearch()
				s.ReplaceConcerts(gen, []ConcertRecord{{ID: "ev"}})
				s.Concerts()
				s.SetCredential(Credential{Account: "a", BearerToken: "t"})
				s.Credential()
				s.ClearCredential()
			}()
		}

		wg.Wait()
	})
}

func TestCredentialPresent(t *testing.T) {
	if (Credential{}).Present() {
		t.Error("empty credential must not be present")
	}
	if (Credential{Account: "a"}).Present() {
		t.Error("credential without token must not be present")
	}
	if !(Credential{Account: "a", BearerToken: "t"}).Present() {
		t.Error("credential with token should be present")
	}
}
