// Package tasks orchestrates the concert-to-playlist pipeline with real-time progress reporting.
//
// # Core Operations
//
// The [Engine] exposes three operations:
//
//  1. [Engine.SearchConcerts] : city → upcoming concerts
//     - Geocodes the city, first result only
//     - Searches music events around the coordinates with radius, genre, and
//       date-window filters
//     - Strictly sequential; a geocoding failure ends the operation
//
//  2. [Engine.BuildPlaylist] : artists → playlist entries
//     - Asks the suggestion provider for exactly one song per artist,
//       all-or-nothing
//     - Resolves a video link per entry concurrently with a bounded worker
//       count; results are written by index so order is preserved
//     - A failed video lookup leaves the entry's link empty, never fails the
//       batch
//
//  3. [Engine.Publish] : entries → private playlist on the user's account
//     - Creates the playlist first; creation failure is terminal
//     - Adds selected items one at a time behind a rate limiter, in order
//     - Per-item failures become [models.ItemFailure] warnings; the handle is
//       returned even when adds fail
//
// # Progress Reporting
//
// All operations report progress over a caller-supplied channel. Updates use
// select with default so a slow or absent consumer never blocks the pipeline.
//
// [DistinctArtists] derives the artist set for [Engine.BuildPlaylist] from a
// concert list, preserving first-appearance order.
package tasks
