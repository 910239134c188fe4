package services

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"gigmix/internal/models"
	"gigmix/internal/shared"
)

const spartanburgEvents = `{
	"_embedded": {
		"events": [
			{
				"id": "ev1",
				"name": "The Marcus King Band",
				"url": "https://tickets.example.com/ev1",
				"info": "Doors at 7pm.",
				"dates": {"start": {"localDate": "2026-09-12"}},
				"classifications": [{"genre": {"name": "Rock"}}],
				"_embedded": {
					"venues": [{"name": "The Showroom", "city": {"name": "Spartanburg"}, "state": {"stateCode": "SC"}}],
					"attractions": [{"name": "The Marcus King Band"}]
				}
			},
			{
				"id": "ev2",
				"name": "An Evening With Somebody",
				"url": "https://tickets.example.com/ev2",
				"dates": {"start": {}},
				"_embedded": {}
			}
		]
	}
}`

func TestTicketmasterClient(t *testing.T) {
	t.Run("SearchEvents", func(t *testing.T) {
		t.Run("Query Parameters", func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				q := r.URL.Query()
				if got := q.Get("apikey"); got != "tm_key" {
					t.Errorf("expected apikey=tm_key, got %q", got)
				}
				if got := q.Get("segmentName"); got != "Music" {
					t.Errorf("expected segmentName=Music, got %q", got)
				}
				if got := q.Get("latlong"); got != "34.9496,-81.932" {
					t.Errorf("expected latlong=34.9496,-81.932, got %q", got)
				}
				if got := q.Get("radius"); got != "25" {
					t.Errorf("expected radius=25, got %q", got)
				}
				if got := q.Get("unit"); got != "miles" {
					t.Errorf("expected unit=miles, got %q", got)
				}
				if q.Has("keyword") {
					t.Error("empty genre must not send a keyword parameter")
				}
				if q.Has("startDateTime") || q.Has("endDateTime") {
					t.Error("zero window must not send date bounds")
				}

				w.Header().Set("Content-Type", "application/json")
				w.Write([]byte(`{}`))
			}))
			defer server.Close()

			client := NewTicketmasterClient("tm_key", server.Client())
			client.baseURL = server.URL
			client.retry = fastRetry()

			at := models.Coordinates{Lat: 34.9496, Lng: -81.932}
			records, err := client.SearchEvents(context.Background(), at, 25, "", 0)
			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}

			if len(records) != 0 {
				t.Errorf("expected no records for empty response, got %d", len(records))
			}
		})

		t.Run("Genre And Date Window", func(t *testing.T) {
			fixed := time.Date(2026, time.August, 31, 18, 30, 15, 999_000_000, time.UTC)

			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				q := r.URL.Query()
				if got := q.Get("keyword"); got != "rock" {
					t.Errorf("expected keyword=rock, got %q", got)
				}
				if got := q.Get("startDateTime"); got != "2026-08-31T18:30:15Z" {
					t.Errorf("expected whole-second start, got %q", got)
				}
				if got := q.Get("endDateTime"); got != "2026-09-30T18:30:15Z" {
					t.Errorf("expected start plus 30 whole days, got %q", got)
				}

				w.Header().Set("Content-Type", "application/json")
				w.Write([]byte(`{}`))
			}))
			defer server.Close()

			client := NewTicketmasterClient("tm_key", server.Client())
			client.baseURL = server.URL
			client.retry = fastRetry()
			client.now = func() time.Time { return fixed }

			_, err := client.SearchEvents(context.Background(), models.Coordinates{}, 10, "rock", 30)
			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
		})

		t.Run("Normalizes Events", func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				w.Write([]byte(spartanburgEvents))
			}))
			defer server.Close()

			client := NewTicketmasterClient("tm_key", server.Client())
			client.baseURL = server.URL
			client.retry = fastRetry()

			records, err := client.SearchEvents(context.Background(), models.Coordinates{}, 25, "", 0)
			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}

			if len(records) != 2 {
				t.Fatalf("expected 2 records, got %d", len(records))
			}

			full := records[0]
			if full.Artist != "The Marcus King Band" {
				t.Errorf("expected attraction name as artist, got %q", full.Artist)
			}
			if full.Venue != "The Showroom" {
				t.Errorf("unexpected venue: %q", full.Venue)
			}
			if full.Location != "Spartanburg, SC" {
				t.Errorf("expected city and state code, got %q", full.Location)
			}
			if full.Date != "2026-09-12" {
				t.Errorf("unexpected date: %q", full.Date)
			}
			if full.Genre != "Rock" {
				t.Errorf("unexpected genre: %q", full.Genre)
			}
			if full.Description != "Doors at 7pm." {
				t.Errorf("unexpected description: %q", full.Description)
			}

			sparse := records[1]
			if sparse.Artist != "An Evening With Somebody" {
				t.Errorf("expected event name fallback for artist, got %q", sparse.Artist)
			}
			if sparse.Venue != UnknownVenue {
				t.Errorf("expected placeholder venue, got %q", sparse.Venue)
			}
			if sparse.Location != UnknownCity {
				t.Errorf("expected placeholder city, got %q", sparse.Location)
			}
			if sparse.Date != UnknownDate {
				t.Errorf("expected placeholder date, got %q", sparse.Date)
			}
			if sparse.Genre != UnknownGenre {
				t.Errorf("expected placeholder genre, got %q", sparse.Genre)
			}
			if sparse.Description != UnknownDescription {
				t.Errorf("expected placeholder description, got %q", sparse.Description)
			}
		})

		t.Run("Missing API Key", func(t *testing.T) {
			client := NewTicketmasterClient("", nil)

			_, err := client.SearchEvents(context.Background(), models.Coordinates{}, 25, "", 0)
			if !errors.Is(err, shared.ErrMissingConfig) {
				t.Errorf("expected ErrMissingConfig, got %v", err)
			}
		})

		t.Run("Provider Failure", func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusBadGateway)
			}))
			defer server.Close()

			client := NewTicketmasterClient("tm_key", server.Client())
			client.baseURL = server.URL
			client.retry = fastRetry()

			_, err := client.SearchEvents(context.Background(), models.Coordinates{}, 25, "", 0)
			if !errors.Is(err, shared.ErrAPIRequest) {
				t.Errorf("expected ErrAPIRequest, got %v", err)
			}
		})
	})
}
