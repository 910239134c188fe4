// Package services implements the external provider clients behind small
// single-capability interfaces.
//
// # Interfaces
//
// Each provider is modeled as exactly one capability, so the task engine can
// be exercised against deterministic fakes without network access:
//   - [Geocoder] : place name → coordinates
//   - [EventFinder] : coordinates + filters → normalized concert records
//   - [SongSuggester] : artist names → one song per artist
//   - [VideoFinder] : artist/song → single video id
//   - [PlaylistPublisher] : create playlist, append items
//
// # Implementations
//
// [OpenCageClient] and [TicketmasterClient] wrap their calls in the bounded
// retry policy from the shared package; geocoding and event search are the two
// flows where a transient provider failure is worth retrying.
//
// [GeminiClient] posts a prompt with a declared JSON response schema and
// treats any parse or shape problem as [shared.ErrBadResponse] with no retry.
//
// [YouTubeClient] covers both video search (API key only) and playlist
// mutation (key + OAuth bearer token).
//
// # Error Handling
//
// Clients wrap failures in the shared sentinel errors:
//   - [shared.ErrMissingConfig] : provider key absent, checked at first use
//   - [shared.ErrAPIRequest] : HTTP failure after any retries
//   - [shared.ErrPlaceNotFound], [shared.ErrNoResults] : well-formed empty lookups
//   - [shared.ErrBadResponse] : malformed or unexpectedly shaped payloads
//
// All base URLs are struct fields so tests can point clients at httptest
// servers.
package services
