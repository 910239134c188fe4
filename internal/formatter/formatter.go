// package formatter renders concert and playlist data to terminal-friendly formats (CSV, Markdown, plain text)
package formatter

import (
	"bytes"
	"encoding/csv"
	"fmt"

	"gigmix/internal/models"
)

// ConcertsToCSV converts concert records to CSV with columns: ID, Artist, Venue, Date, Genre, Location, TicketURL
func ConcertsToCSV(records []models.ConcertRecord) ([]byte, error) {
	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	headers := []string{"ID", "Artist", "Venue", "Date", "Genre", "Location", "TicketURL"}
	if err := writer.Write(headers); err != nil {
		return nil, fmt.Errorf("failed to write CSV headers: %w", err)
	}

	for _, record := range records {
		row := []string{
			record.ID,
			record.Artist,
			record.Venue,
			record.Date,
			record.Genre,
			record.Location,
			record.TicketURL,
		}
		if err := writer.Write(row); err != nil {
			return nil, fmt.Errorf("failed to write CSV record: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, fmt.Errorf("CSV writer error: %w", err)
	}

	return buf.Bytes(), nil
}

// ConcertsToMarkdown converts concert records to a Markdown table headed by
// the queried city.
func ConcertsToMarkdown(city string, records []models.ConcertRecord) []byte {
	var buf bytes.Buffer

	buf.WriteString(fmt.Sprintf("# Upcoming concerts near %s\n\n", city))
	buf.WriteString(fmt.Sprintf("**Shows**: %d\n\n", len(records)))

	buf.WriteString("| Artist | Venue | Date | Genre | Location |\n")
	buf.WriteString("| --- | --- | --- | --- | --- |\n")
	for _, record := range records {
		buf.WriteString(fmt.Sprintf("| %s | %s | %s | %s | %s |\n",
			record.Artist, record.Venue, record.Date, record.Genre, record.Location))
	}

	return buf.Bytes()
}

// ConcertsToText converts concert records to plain text, one show per line.
func ConcertsToText(city string, records []models.ConcertRecord) []byte {
	var buf bytes.Buffer

	buf.WriteString(fmt.Sprintf("Concerts near %s: %d\n\n", city, len(records)))
	for i, record := range records {
		buf.WriteString(fmt.Sprintf("%d. %s @ %s (%s)\n", i+1, record.Artist, record.Venue, record.Date))
		buf.WriteString(fmt.Sprintf("   %s · %s\n", record.Genre, record.Location))
		if record.Description != "" {
			buf.WriteString(fmt.Sprintf("   %s\n", record.Description))
		}
	}

	return buf.Bytes()
}

// EntriesToText converts playlist entries to plain text with selection marks.
func EntriesToText(entries []models.PlaylistEntry) []byte {
	var buf bytes.Buffer

	for i, entry := range entries {
		mark := " "
		if entry.Selected {
			mark = "x"
		}
		buf.WriteString(fmt.Sprintf("[%s] %d. %s - %s\n", mark, i+1, entry.Artist, entry.Song))
		if entry.VideoLink != "" {
			buf.WriteString(fmt.Sprintf("       %s\n", entry.VideoLink))
		}
	}

	return buf.Bytes()
}

// PublishSummary renders the outcome of a publish: the playlist link, the add
// count, and one warning line per failed item.
func PublishSummary(handle models.PlaylistHandle, added int, failures []models.ItemFailure) []byte {
	var buf bytes.Buffer

	buf.WriteString(fmt.Sprintf("Playlist created: %s\n", handle.Title))
	buf.WriteString(fmt.Sprintf("%s\n", handle.URL))
	buf.WriteString(fmt.Sprintf("Added %d tracks", added))
	if len(failures) > 0 {
		buf.WriteString(fmt.Sprintf(", %d failed", len(failures)))
	}
	buf.WriteString("\n")

	for _, failure := range failures {
		buf.WriteString(fmt.Sprintf("  ✗ %s - %s: %s\n", failure.Entry.Artist, failure.Entry.Song, failure.Reason))
	}

	return buf.Bytes()
}
