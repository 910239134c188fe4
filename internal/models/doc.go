// Package models defines the in-memory domain types for the concert playlist workflow.
//
// The package contains two categories of types:
//
// 1. Value objects passed between the service adapters and the task engine:
//   - [PlaceQuery] : One concert search request as entered by the user
//   - [Coordinates] : Geocoded latitude/longitude for a city
//   - [ConcertRecord] : One normalized event from the event-search provider
//   - [PlaylistEntry] : One artist/song pair, optionally resolved to a video link
//   - [Credential] : The in-memory OAuth bearer credential for playlist mutation
//   - [PlaylistHandle] : The created remote playlist
//   - [ItemFailure] : A per-item warning from a best-effort publish batch
//
// 2. [State], the explicit application-state struct holding the current working
// sets. Nothing in this package is ever persisted; every working set is replaced
// wholesale by the next search or generation request.
package models
