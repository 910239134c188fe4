package main

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"gigmix/internal/formatter"
	"gigmix/internal/models"
	"gigmix/internal/shared"
	"gigmix/internal/tasks"
)

// queryFromFlags builds a place query from the shared search flags.
func queryFromFlags(cmd *cli.Command) (models.PlaceQuery, error) {
	query := models.PlaceQuery{
		City:           cmd.String("city"),
		RadiusMiles:    int(cmd.Int("radius")),
		Genre:          cmd.String("genre"),
		DateWindowDays: int(cmd.Int("window")),
	}

	if query.RadiusMiles <= 0 {
		return query, fmt.Errorf("%w: radius must be positive, got %d", shared.ErrInvalidFlag, query.RadiusMiles)
	}
	if query.DateWindowDays < 0 {
		return query, fmt.Errorf("%w: window cannot be negative, got %d", shared.ErrInvalidFlag, query.DateWindowDays)
	}

	return query, nil
}

// Search finds concerts near the queried city and renders them.
//
// Results are stamped into application state under the generation taken before
// the search started, so output from an abandoned earlier query can never
// overwrite a newer one.
func (r *Runner) Search(ctx context.Context, cmd *cli.Command) error {
	query, err := queryFromFlags(cmd)
	if err != nil {
		return err
	}

	records, err := r.runSearch(ctx, query, !cmd.Bool("json") && !cmd.Bool("csv"))
	if err != nil {
		return err
	}

	if len(records) == 0 {
		return r.writePlain("No concerts found near %s. Try a wider radius or window.\n", query.City)
	}

	switch {
	case cmd.Bool("json"):
		return r.writeJSON(records, cmd.Bool("pretty"))
	case cmd.Bool("csv"):
		data, err := formatter.ConcertsToCSV(records)
		if err != nil {
			return err
		}
		return r.writePlain("%s", data)
	case cmd.Bool("markdown"):
		return r.writePlain("%s", formatter.ConcertsToMarkdown(query.City, records))
	default:
		return r.writePlain("%s", formatter.ConcertsToText(query.City, records))
	}
}

// runSearch executes the search pipeline and stores the results in state.
func (r *Runner) runSearch(ctx context.Context, query models.PlaceQuery, showProgress bool) ([]models.ConcertRecord, error) {
	gen := r.state.BeginSearch()

	var progress chan tasks.ProgressUpdate
	done := make(chan struct{})
	if showProgress {
		progress = make(chan tasks.ProgressUpdate, 16)
		go r.drainProgress(progress, done)
	} else {
		close(done)
	}

	records, err := r.engine.SearchConcerts(ctx, progress, query)

	if progress != nil {
		close(progress)
	}
	<-done

	if err != nil {
		return nil, err
	}

	if !r.state.ReplaceConcerts(gen, records) {
		r.logger.Debug("discarding stale search results", "generation", gen)
		return r.state.Concerts(), nil
	}

	return records, nil
}
