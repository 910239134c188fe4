package tasks

import (
	"fmt"

	"gigmix/internal/models"
)

// ProgressUpdate represents a progress event during a long-running operation.
//
// Used to send real-time updates to the CLI layer for display.
type ProgressUpdate struct {
	Phase   Phase  // Operation phase
	Step    int    // Current step number within phase
	Total   int    // Total steps in this phase
	Message string // Human-readable message for display
	Data    any    // Optional phase-specific data for advanced UIs
}

// Operation phase enumeration
type Phase int

const (
	Geocode Phase = iota
	SearchEvents
	SuggestSongs
	ResolveVideos
	CreatePlaylist
	AddItems
)

func (p Phase) String() string {
	switch p {
	case Geocode:
		return "geocode"
	case SearchEvents:
		return "search_events"
	case SuggestSongs:
		return "suggest_songs"
	case ResolveVideos:
		return "resolve_videos"
	case CreatePlaylist:
		return "create_playlist"
	case AddItems:
		return "add_items"
	default:
		return ""
	}
}

func geocodeUpdate(city string) ProgressUpdate {
	return ProgressUpdate{
		Phase:   Geocode,
		Step:    1,
		Total:   2,
		Message: fmt.Sprintf("Locating %s...", city),
	}
}

func searchEventsUpdate(city string) ProgressUpdate {
	return ProgressUpdate{
		Phase:   SearchEvents,
		Step:    2,
		Total:   2,
		Message: fmt.Sprintf("Searching for concerts near %s...", city),
	}
}

func foundConcertsUpdate(records []models.ConcertRecord) ProgressUpdate {
	return ProgressUpdate{
		Phase:   SearchEvents,
		Step:    2,
		Total:   2,
		Message: fmt.Sprintf("Found %d upcoming concerts", len(records)),
		Data:    records,
	}
}

func suggestSongsUpdate(artistCount int) ProgressUpdate {
	return ProgressUpdate{
		Phase:   SuggestSongs,
		Step:    1,
		Total:   1,
		Message: fmt.Sprintf("Picking one song for each of %d artists...", artistCount),
	}
}

func resolveVideosUpdate(step, total int, entry *models.PlaylistEntry) ProgressUpdate {
	if entry == nil {
		return ProgressUpdate{
			Phase:   ResolveVideos,
			Step:    step,
			Total:   total,
			Message: "Looking up videos...",
		}
	}
	return ProgressUpdate{
		Phase:   ResolveVideos,
		Step:    step,
		Total:   total,
		Message: fmt.Sprintf("[%d/%d] %s - %s", step, total, entry.Artist, entry.Song),
	}
}

func createPlaylistUpdate(title string) ProgressUpdate {
	return ProgressUpdate{
		Phase:   CreatePlaylist,
		Step:    1,
		Total:   1,
		Message: fmt.Sprintf("Creating playlist %q...", title),
	}
}

func playlistCreatedUpdate(handle models.PlaylistHandle) ProgressUpdate {
	return ProgressUpdate{
		Phase:   CreatePlaylist,
		Step:    1,
		Total:   1,
		Message: fmt.Sprintf("Playlist created: %s (ID: %s)", handle.Title, handle.ID),
		Data:    handle,
	}
}

func addItemUpdate(step, total int, entry models.PlaylistEntry) ProgressUpdate {
	return ProgressUpdate{
		Phase:   AddItems,
		Step:    step,
		Total:   total,
		Message: fmt.Sprintf("[%d/%d] Adding %s - %s...", step, total, entry.Artist, entry.Song),
	}
}

func addFailedUpdate(step, total int, entry models.PlaylistEntry, err error) ProgressUpdate {
	return ProgressUpdate{
		Phase:   AddItems,
		Step:    step,
		Total:   total,
		Message: fmt.Sprintf("[%d/%d] ✗ %s - %s: %v", step, total, entry.Artist, entry.Song, err),
	}
}
