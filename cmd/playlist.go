package main

import (
	"context"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/urfave/cli/v3"

	"gigmix/internal/formatter"
	"gigmix/internal/models"
	"gigmix/internal/shared"
	"gigmix/internal/tasks"
	"gigmix/internal/ui"
)

// PlaylistGenerate runs the search pipeline and prints one suggested song per
// artist playing nearby.
func (r *Runner) PlaylistGenerate(ctx context.Context, cmd *cli.Command) error {
	entries, err := r.generateEntries(ctx, cmd, !cmd.Bool("json"))
	if err != nil {
		return err
	}

	if cmd.Bool("json") {
		return r.writeJSON(entries, cmd.Bool("pretty"))
	}

	r.writePlainHeader(fmt.Sprintf("Suggested playlist (%d tracks)", len(entries)))
	return r.writePlain("%s", formatter.EntriesToText(entries))
}

// PlaylistPublish runs the full pipeline: search, suggest, pick, publish.
//
// Without --all the interactive picker decides which entries go in; on a
// non-terminal output every entry is published.
func (r *Runner) PlaylistPublish(ctx context.Context, cmd *cli.Command) error {
	entries, err := r.generateEntries(ctx, cmd, true)
	if err != nil {
		return err
	}

	if !cmd.Bool("all") && stdoutIsTerminal() {
		entries, err = r.pickEntries(entries)
		if err != nil {
			return err
		}
	}
	r.state.ReplaceEntries(entries)

	cred, err := r.ensureCredential(cmd.String("account"))
	if err != nil {
		return err
	}

	progress := make(chan tasks.ProgressUpdate, 16)
	done := make(chan struct{})
	go r.drainProgress(progress, done)

	result, err := r.engine.Publish(ctx, progress, cred, entries)

	close(progress)
	<-done

	if err != nil {
		return err
	}

	r.writePlainln("")
	return r.writePlain("%s", formatter.PublishSummary(result.Handle, result.Added, result.Failures))
}

// generateEntries runs search → distinct artists → song suggestion → video
// resolution, storing intermediate results in application state.
func (r *Runner) generateEntries(ctx context.Context, cmd *cli.Command, showProgress bool) ([]models.PlaylistEntry, error) {
	query, err := queryFromFlags(cmd)
	if err != nil {
		return nil, err
	}

	records, err := r.runSearch(ctx, query, showProgress)
	if err != nil {
		return nil, err
	}

	artists := tasks.DistinctArtists(records)
	if len(artists) == 0 {
		return nil, fmt.Errorf("%w: no concerts found near %s", shared.ErrNoResults, query.City)
	}

	var progress chan tasks.ProgressUpdate
	done := make(chan struct{})
	if showProgress {
		progress = make(chan tasks.ProgressUpdate, 16)
		go r.drainProgress(progress, done)
	} else {
		close(done)
	}

	entries, err := r.engine.BuildPlaylist(ctx, progress, artists)

	if progress != nil {
		close(progress)
	}
	<-done

	if err != nil {
		return nil, err
	}

	r.state.ReplaceEntries(entries)
	return entries, nil
}

// pickEntries opens the interactive picker and returns the edited entries.
//
// The picker owns the terminal while it runs, so log output is redirected to a
// file until it finishes.
func (r *Runner) pickEntries(entries []models.PlaylistEntry) ([]models.PlaylistEntry, error) {
	prev := r.logger
	if fileLogger, err := shared.NewFileLogger("./tmp/gigmix-picker.log"); err == nil {
		r.SetLogger(fileLogger)
		defer r.SetLogger(prev)
	}

	model := ui.NewModel(entries)
	program := tea.NewProgram(model)

	final, err := program.Run()
	if err != nil {
		return nil, fmt.Errorf("error running track picker: %w", err)
	}

	picked, ok := final.(ui.Model)
	if !ok {
		return nil, fmt.Errorf("unexpected picker model type")
	}

	if !picked.Confirmed() {
		return nil, fmt.Errorf("%w: selection cancelled", shared.ErrInvalidArgument)
	}

	return picked.Entries(), nil
}

// stdoutIsTerminal reports whether stdout is attached to a character device.
func stdoutIsTerminal() bool {
	info, err := os.Stdout.Stat()
	if err != nil {
		return false
	}
	return info.Mode()&os.ModeCharDevice != 0
}

// ensureCredential returns the in-memory credential, running the sign-in flow
// when there is none yet.
func (r *Runner) ensureCredential(account string) (models.Credential, error) {
	if cred, ok := r.state.Credential(); ok {
		return cred, nil
	}

	r.writePlain("→ No credential yet, starting Google sign-in...\n")
	return r.signIn(account)
}
