package models

// PlaceQuery describes one concert search: a free-text city, a radius in
// miles, an optional genre keyword, and an optional date window in days.
type PlaceQuery struct {
	City           string `json:"city"`
	RadiusMiles    int    `json:"radiusMiles"`
	Genre          string `json:"genre,omitempty"`
	DateWindowDays int    `json:"dateWindowDays,omitempty"` // 0 (unset), 30, 60 or 90
}

// Coordinates is a geocoded latitude/longitude pair.
type Coordinates struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// ConcertRecord is one normalized event from the event-search provider.
//
// Records are immutable once built; missing provider fields are replaced with
// placeholder strings during normalization, never left empty.
type ConcertRecord struct {
	ID          string `json:"id"`
	Artist      string `json:"artistName"`
	Venue       string `json:"venueName"`
	Date        string `json:"date"`
	Genre       string `json:"genre"`
	Location    string `json:"location"`
	Description string `json:"description"`
	TicketURL   string `json:"ticketUrl,omitempty"`
}

// PlaylistEntry is one artist/song pair produced by the synthesizer.
//
// Selected defaults to true; VideoLink stays empty when no video match was
// found, which is not an error.
type PlaylistEntry struct {
	Artist    string `json:"artistName"`
	Song      string `json:"songTitle"`
	Selected  bool   `json:"selected"`
	VideoLink string `json:"videoLink,omitempty"`
}

// Credential is the in-memory bearer credential for playlist mutation.
// It is never written to disk and is cleared as a unit on sign-out.
type Credential struct {
	Account     string
	BearerToken string
}

// Present reports whether the credential carries a usable bearer token.
func (c Credential) Present() bool {
	return c.BearerToken != ""
}

// PlaylistHandle identifies a created remote playlist.
type PlaylistHandle struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	URL   string `json:"url"`
}

// ItemFailure records one entry that could not be added during a publish
// batch. Item failures are warnings; they never abort the batch.
type ItemFailure struct {
	Entry  PlaylistEntry `json:"entry"`
	Reason string        `json:"reason"`
}
