// package services defines one interface per external provider capability
//
// Geocoding, event search, song suggestion, video search, playlist mutation.
package services

import (
	"context"

	"gigmix/internal/models"
)

// Geocoder resolves a free-text place name into coordinates.
type Geocoder interface {
	// Geocode returns the first matching result for the city, or
	// [shared.ErrPlaceNotFound] when the provider has no match.
	Geocode(ctx context.Context, city string) (models.Coordinates, error)
}

// EventFinder searches for music events around a location.
type EventFinder interface {
	// SearchEvents returns normalized concert records. An empty slice with a
	// nil error means the search succeeded but found nothing.
	SearchEvents(ctx context.Context, at models.Coordinates, radiusMiles int, genre string, windowDays int) ([]models.ConcertRecord, error)
}

// SongSuggester asks a generative text provider for one song per artist.
type SongSuggester interface {
	// SuggestSongs returns one entry per artist, in the provider's order.
	// A malformed or unexpectedly shaped response fails the whole call.
	SuggestSongs(ctx context.Context, artists []string) ([]models.PlaylistEntry, error)
}

// VideoFinder resolves an artist/song pair to a single video id.
type VideoFinder interface {
	// FindVideo returns the best-matching video id, or [shared.ErrNoResults]
	// when the search comes back empty.
	FindVideo(ctx context.Context, artist, song string) (string, error)
}

// PlaylistPublisher mutates remote playlists on behalf of a signed-in user.
type PlaylistPublisher interface {
	// CreatePlaylist creates a new private playlist and returns its handle.
	CreatePlaylist(ctx context.Context, token, title, description string) (models.PlaylistHandle, error)

	// AddPlaylistItem appends one video to an existing playlist.
	AddPlaylistItem(ctx context.Context, token, playlistID, videoID string) error
}
