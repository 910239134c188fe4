// package tasks implements the concert-to-playlist pipeline.
//
// The core abstraction is Engine, which orchestrates concert search, song
// selection, video resolution, and playlist publishing. Operations emit
// progress updates via channels for non-blocking status reporting to the CLI
// layer.
package tasks

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"

	"gigmix/internal/models"
	"gigmix/internal/services"
	"gigmix/internal/shared"
)

// defaultVideoWorkers bounds concurrent video lookups per batch.
const defaultVideoWorkers = 4

// defaultAddRate is the playlist item insert rate in requests per second.
const defaultAddRate = 2.0

const watchURLPrefix = "https://www.youtube.com/watch?v="

// PublishResult contains all data from a playlist publish operation.
type PublishResult struct {
	Handle   models.PlaylistHandle // Created playlist
	Added    int                   // Number of items added successfully
	Failures []models.ItemFailure  // Entries that could not be added
}

// Engine orchestrates the concert-to-playlist pipeline.
// Contains dependencies on the provider clients behind their interfaces.
type Engine struct {
	geo       services.Geocoder
	events    services.EventFinder
	songs     services.SongSuggester
	videos    services.VideoFinder
	publisher services.PlaylistPublisher
	logger    *log.Logger
	limiter   *rate.Limiter
	workers   int
	now       func() time.Time
}

// NewEngine creates a new Engine with the provided services.
// A nil logger falls back to the shared default.
func NewEngine(geo services.Geocoder, events services.EventFinder, songs services.SongSuggester, videos services.VideoFinder, publisher services.PlaylistPublisher, logger *log.Logger) *Engine {
	if logger == nil {
		logger = shared.NewLogger(nil)
	}

	return &Engine{
		geo:       geo,
		events:    events,
		songs:     songs,
		videos:    videos,
		publisher: publisher,
		logger:    logger,
		limiter:   rate.NewLimiter(rate.Limit(defaultAddRate), 1),
		workers:   defaultVideoWorkers,
		now:       time.Now,
	}
}

// sendProgress sends a progress update through the channel without blocking.
// Uses select with default to ensure progress reporting never blocks execution.
func (e *Engine) sendProgress(progress chan<- ProgressUpdate, update ProgressUpdate) {
	if progress == nil {
		return
	}
	select {
	case progress <- update:
		// Sent successfully
	default:
		// Channel full or closed, skip this update
	}
}

// SearchConcerts geocodes the queried city and searches for music events
// around it.
//
// The two calls are strictly sequential; a geocoding failure is terminal and
// no event search is attempted. A successful search with zero events returns
// an empty slice and a nil error.
func (e *Engine) SearchConcerts(ctx context.Context, progress chan<- ProgressUpdate, query models.PlaceQuery) ([]models.ConcertRecord, error) {
	if e.geo == nil {
		return nil, fmt.Errorf("%w: geocoder not initialized", shared.ErrServiceUnavailable)
	}
	if e.events == nil {
		return nil, fmt.Errorf("%w: event finder not initialized", shared.ErrServiceUnavailable)
	}

	city := strings.TrimSpace(query.City)
	if city == "" {
		return nil, fmt.Errorf("%w: city is required", shared.ErrInvalidArgument)
	}

	e.sendProgress(progress, geocodeUpdate(city))

	coords, err := e.geo.Geocode(ctx, city)
	if err != nil {
		return nil, err
	}

	e.logger.Debug("geocoded city", "city", city, "lat", coords.Lat, "lng", coords.Lng)
	e.sendProgress(progress, searchEventsUpdate(city))

	records, err := e.events.SearchEvents(ctx, coords, query.RadiusMiles, query.Genre, query.DateWindowDays)
	if err != nil {
		return nil, err
	}

	e.sendProgress(progress, foundConcertsUpdate(records))
	return records, nil
}

// DistinctArtists extracts artist names from concert records, preserving
// first-appearance order and dropping duplicates and blanks.
func DistinctArtists(records []models.ConcertRecord) []string {
	seen := make(map[string]struct{}, len(records))
	artists := make([]string, 0, len(records))

	for _, record := range records {
		name := strings.TrimSpace(record.Artist)
		if name == "" {
			continue
		}
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		artists = append(artists, name)
	}

	return artists
}

// BuildPlaylist turns a set of artists into playlist entries with resolved
// video links.
//
// Song suggestion is all-or-nothing; a malformed provider response fails the
// whole call. Video lookups run concurrently with a bounded worker count,
// writing results by index so entry order matches the artist order. An entry
// whose video lookup fails keeps an empty VideoLink and never fails the batch.
func (e *Engine) BuildPlaylist(ctx context.Context, progress chan<- ProgressUpdate, artists []string) ([]models.PlaylistEntry, error) {
	if e.songs == nil {
		return nil, fmt.Errorf("%w: song suggester not initialized", shared.ErrServiceUnavailable)
	}
	if e.videos == nil {
		return nil, fmt.Errorf("%w: video finder not initialized", shared.ErrServiceUnavailable)
	}

	if len(artists) == 0 {
		return nil, fmt.Errorf("%w: no artists to build a playlist from", shared.ErrInvalidArgument)
	}

	e.sendProgress(progress, suggestSongsUpdate(len(artists)))

	entries, err := e.songs.SuggestSongs(ctx, artists)
	if err != nil {
		return nil, err
	}

	total := len(entries)
	e.sendProgress(progress, resolveVideosUpdate(0, total, nil))

	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(e.workers)

	for i := range entries {
		group.Go(func() error {
			entry := &entries[i]
			e.sendProgress(progress, resolveVideosUpdate(i+1, total, entry))

			videoID, err := e.videos.FindVideo(groupCtx, entry.Artist, entry.Song)
			if err != nil {
				e.logger.Warn("no video found", "artist", entry.Artist, "song", entry.Song, "error", err)
				return nil
			}

			entry.VideoLink = watchURLPrefix + videoID
			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return nil, err
	}

	return entries, nil
}

// Publish creates a playlist for the signed-in user and adds the selected
// entries to it one at a time.
//
// Playlist creation is terminal on failure. After that, per-item failures are
// recorded as warnings and the loop moves on; the created playlist handle is
// returned even when every item add fails.
func (e *Engine) Publish(ctx context.Context, progress chan<- ProgressUpdate, cred models.Credential, entries []models.PlaylistEntry) (*PublishResult, error) {
	if e.publisher == nil {
		return nil, fmt.Errorf("%w: playlist publisher not initialized", shared.ErrServiceUnavailable)
	}

	selected := make([]models.PlaylistEntry, 0, len(entries))
	for _, entry := range entries {
		if entry.Selected {
			selected = append(selected, entry)
		}
	}
	if len(selected) == 0 {
		return nil, fmt.Errorf("%w: no tracks selected", shared.ErrInvalidArgument)
	}

	if !cred.Present() {
		return nil, fmt.Errorf("%w: sign in before publishing", shared.ErrNotAuthenticated)
	}

	title := "Concert Mix – " + e.now().Format("Jan 2, 2006 3:04 PM")
	description := fmt.Sprintf("Songs from artists playing near you. %d tracks.", len(selected))

	e.sendProgress(progress, createPlaylistUpdate(title))

	handle, err := e.publisher.CreatePlaylist(ctx, cred.BearerToken, title, description)
	if err != nil {
		if errors.Is(err, shared.ErrMissingConfig) || errors.Is(err, shared.ErrNotAuthenticated) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %v", shared.ErrPlaylistCreate, err)
	}

	e.sendProgress(progress, playlistCreatedUpdate(handle))

	result := &PublishResult{Handle: handle}
	total := len(selected)

	for i, entry := range selected {
		if err := e.limiter.Wait(ctx); err != nil {
			return result, err
		}

		videoID, ok := services.ParseVideoID(entry.VideoLink)
		if !ok && e.videos == nil {
			reason := "no video link and no video finder configured"
			result.Failures = append(result.Failures, models.ItemFailure{Entry: entry, Reason: reason})
			e.sendProgress(progress, addFailedUpdate(i+1, total, entry, errors.New(reason)))
			continue
		}
		if !ok {
			id, err := e.videos.FindVideo(ctx, entry.Artist, entry.Song)
			if err != nil {
				e.logger.Warn("skipping entry without video", "artist", entry.Artist, "song", entry.Song, "error", err)
				result.Failures = append(result.Failures, models.ItemFailure{Entry: entry, Reason: err.Error()})
				e.sendProgress(progress, addFailedUpdate(i+1, total, entry, err))
				continue
			}
			videoID = id
		}

		e.sendProgress(progress, addItemUpdate(i+1, total, entry))

		if err := e.publisher.AddPlaylistItem(ctx, cred.BearerToken, handle.ID, videoID); err != nil {
			e.logger.Warn("failed to add playlist item", "artist", entry.Artist, "song", entry.Song, "error", err)
			result.Failures = append(result.Failures, models.ItemFailure{Entry: entry, Reason: err.Error()})
			e.sendProgress(progress, addFailedUpdate(i+1, total, entry, err))
			continue
		}

		result.Added++
	}

	return result, nil
}
