package main

import (
	"context"
	"os"

	"github.com/urfave/cli/v3"

	"gigmix/internal/shared"
)

// SetupConfig writes a starter config file for the user to fill in.
//
// An existing file is left alone; keys still come from the environment via
// GIGMIX_* variables either way.
func (r *Runner) SetupConfig(ctx context.Context, cmd *cli.Command) error {
	configPath := cmd.String("config")

	if _, err := os.Stat(configPath); err == nil {
		r.logger.Info("config file already exists", "path", configPath)
		return r.writePlain("Config file already exists at %s\n", configPath)
	}

	if err := shared.CreateConfigFile(configPath); err != nil {
		return err
	}

	r.logger.Info("config file created", "path", configPath)

	r.writePlain("✓ Config file created at %s\n", configPath)
	r.writePlainln("Next steps:")
	r.writePlain("1. Add your OpenCage, Ticketmaster, Gemini, and YouTube API keys\n")
	r.writePlain("2. Add your Google OAuth client for playlist publishing\n")
	r.writePlain("3. Run 'gigmix search --city \"your city\"' to test\n")

	return nil
}
