// Ticketmaster Discovery implementation of [EventFinder]
//
// Event responses based on https://developer.ticketmaster.com/products-and-docs/apis/discovery-api/v2/
package services

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"gigmix/internal/models"
	"gigmix/internal/shared"
)

const defaultTicketmasterBaseURL = "https://app.ticketmaster.com/discovery/v2/events.json"

// Whole-second UTC layout required by the Discovery API; fractional seconds
// are truncated, not rounded.
const eventTimeLayout = "2006-01-02T15:04:05Z"

// Placeholder values substituted for missing provider fields.
const (
	UnknownVenue       = "Unknown Venue"
	UnknownCity        = "Unknown City"
	UnknownDate        = "Date TBD"
	UnknownGenre       = "Various"
	UnknownDescription = "No additional info available."
)

// TicketmasterClient implements [EventFinder] against the Discovery API.
type TicketmasterClient struct {
	baseURL    string
	key        string
	httpClient *http.Client
	retry      shared.Retry
	now        func() time.Time
}

// NewTicketmasterClient creates an event-search client with the given API key.
func NewTicketmasterClient(key string, client *http.Client) *TicketmasterClient {
	if client == nil {
		client = http.DefaultClient
	}

	return &TicketmasterClient{
		baseURL:    defaultTicketmasterBaseURL,
		key:        key,
		httpClient: client,
		retry:      shared.NewRetry(),
		now:        time.Now,
	}
}

type tmEvent struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	URL   string `json:"url"`
	Info  string `json:"info"`
	Dates struct {
		Start struct {
			LocalDate string `json:"localDate"`
		} `json:"start"`
	} `json:"dates"`
	Classifications []struct {
		Genre struct {
			Name string `json:"name"`
		} `json:"genre"`
	} `json:"classifications"`
	Embedded struct {
		Venues []struct {
			Name string `json:"name"`
			City struct {
				Name string `json:"name"`
			} `json:"city"`
			State struct {
				StateCode string `json:"stateCode"`
			} `json:"state"`
		} `json:"venues"`
		Attractions []struct {
			Name string `json:"name"`
		} `json:"attractions"`
	} `json:"_embedded"`
}

// SearchEvents queries the music segment around the given coordinates.
//
// genre, when non-empty, is passed through verbatim as a free-text keyword
// rather than a structured classification filter, so it may under- or
// over-match. windowDays, when positive, restricts the search to events
// between now and now+windowDays. A successful response with zero events
// returns an empty slice and a nil error.
func (c *TicketmasterClient) SearchEvents(ctx context.Context, at models.Coordinates, radiusMiles int, genre string, windowDays int) ([]models.ConcertRecord, error) {
	if c.key == "" {
		return nil, fmt.Errorf("%w: event-search API key not set", shared.ErrMissingConfig)
	}

	query := url.Values{}
	query.Set("apikey", c.key)
	query.Set("segmentName", "Music")
	query.Set("latlong", formatLatLong(at))
	query.Set("radius", strconv.Itoa(radiusMiles))
	query.Set("unit", "miles")

	if genre != "" {
		query.Set("keyword", genre)
	}

	if windowDays > 0 {
		start := c.now().UTC().Truncate(time.Second)
		end := start.Add(time.Duration(windowDays) * 24 * time.Hour)
		query.Set("startDateTime", start.Format(eventTimeLayout))
		query.Set("endDateTime", end.Format(eventTimeLayout))
	}

	reqURL := c.baseURL + "?" + query.Encode()

	var body struct {
		Embedded struct {
			Events []tmEvent `json:"events"`
		} `json:"_embedded"`
	}

	err := c.retry.Do(ctx, func(ctx context.Context) error {
		body.Embedded.Events = nil
		return getJSON(ctx, c.httpClient, reqURL, &body)
	})
	if err != nil {
		return nil, fmt.Errorf("%w: event search: %v", shared.ErrAPIRequest, err)
	}

	records := make([]models.ConcertRecord, len(body.Embedded.Events))
	for i, ev := range body.Embedded.Events {
		records[i] = normalizeEvent(ev)
	}

	return records, nil
}

// normalizeEvent maps a provider event to a [models.ConcertRecord],
// substituting placeholder strings for anything the provider left out.
func normalizeEvent(ev tmEvent) models.ConcertRecord {
	id := ev.ID
	if id == "" {
		id = shared.GenerateID()
	}

	record := models.ConcertRecord{
		ID:          id,
		Artist:      ev.Name,
		Venue:       UnknownVenue,
		Date:        UnknownDate,
		Genre:       UnknownGenre,
		Location:    UnknownCity,
		Description: UnknownDescription,
		TicketURL:   ev.URL,
	}

	if len(ev.Embedded.Attractions) > 0 && ev.Embedded.Attractions[0].Name != "" {
		record.Artist = ev.Embedded.Attractions[0].Name
	}

	if len(ev.Embedded.Venues) > 0 {
		venue := ev.Embedded.Venues[0]
		if venue.Name != "" {
			record.Venue = venue.Name
		}
		city := UnknownCity
		if venue.City.Name != "" {
			city = venue.City.Name
		}
		if venue.State.StateCode != "" {
			record.Location = city + ", " + venue.State.StateCode
		} else {
			record.Location = city
		}
	}

	if ev.Dates.Start.LocalDate != "" {
		record.Date = ev.Dates.Start.LocalDate
	}

	if len(ev.Classifications) > 0 && ev.Classifications[0].Genre.Name != "" {
		record.Genre = ev.Classifications[0].Genre.Name
	}

	if ev.Info != "" {
		record.Description = ev.Info
	}

	return record
}

func formatLatLong(at models.Coordinates) string {
	return strconv.FormatFloat(at.Lat, 'f', -1, 64) + "," + strconv.FormatFloat(at.Lng, 'f', -1, 64)
}
