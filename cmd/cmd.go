// submodule cmd contains command definitions
package main

import "github.com/urfave/cli/v3"

// setupCommand handles configuration scaffolding
func setupCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "setup",
		Usage: "Configuration scaffolding",
		Commands: []*cli.Command{
			{
				Name:  "config",
				Usage: "Write a starter config file",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "config",
						Aliases: []string{"c"},
						Usage:   "Path to configuration file",
						Value:   "config.toml",
					},
				},
				Action: r.SetupConfig,
			},
		},
	}
}

// authCommand handles Google sign-in for playlist publishing
func authCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "auth",
		Usage: "Google account authentication",
		Commands: []*cli.Command{
			{
				Name:  "login",
				Usage: "Sign in with Google using OAuth2",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "account",
						Usage: "Label for the signed-in account",
					},
				},
				Action: r.AuthLogin,
			},
			{
				Name:   "status",
				Usage:  "Show credential and provider-key state",
				Action: r.AuthStatus,
			},
			{
				Name:   "logout",
				Usage:  "Discard the in-memory credential",
				Action: r.AuthLogout,
			},
		},
	}
}

// searchCommand finds upcoming concerts near a city
func searchCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "search",
		Usage: "Find upcoming concerts near a city",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "city",
				Usage:    "City to search around",
				Required: true,
			},
			&cli.IntFlag{
				Name:  "radius",
				Usage: "Search radius in miles",
				Value: 25,
			},
			&cli.StringFlag{
				Name:  "genre",
				Usage: "Genre keyword filter",
			},
			&cli.IntFlag{
				Name:  "window",
				Usage: "Restrict to events within this many days (0 = no limit)",
			},
			&cli.BoolFlag{
				Name:  "json",
				Usage: "Output raw JSON",
			},
			&cli.BoolFlag{
				Name:  "pretty",
				Usage: "Pretty-print JSON output",
			},
			&cli.BoolFlag{
				Name:  "csv",
				Usage: "Output CSV",
			},
			&cli.BoolFlag{
				Name:  "markdown",
				Usage: "Output a Markdown table",
			},
		},
		Action: r.Search,
	}
}

// playlistCommand turns concert searches into YouTube playlists
func playlistCommand(r *Runner) *cli.Command {
	searchFlags := []cli.Flag{
		&cli.StringFlag{
			Name:     "city",
			Usage:    "City to search around",
			Required: true,
		},
		&cli.IntFlag{
			Name:  "radius",
			Usage: "Search radius in miles",
			Value: 25,
		},
		&cli.StringFlag{
			Name:  "genre",
			Usage: "Genre keyword filter",
		},
		&cli.IntFlag{
			Name:  "window",
			Usage: "Restrict to events within this many days (0 = no limit)",
		},
	}

	return &cli.Command{
		Name:    "playlist",
		Aliases: []string{"pl"},
		Usage:   "Playlist generation and publishing",
		Commands: []*cli.Command{
			{
				Name:  "generate",
				Usage: "Suggest one song per artist playing nearby",
				Flags: append(searchFlags,
					&cli.BoolFlag{
						Name:  "json",
						Usage: "Output raw JSON",
					},
					&cli.BoolFlag{
						Name:  "pretty",
						Usage: "Pretty-print JSON output",
					},
				),
				Action: r.PlaylistGenerate,
			},
			{
				Name:  "publish",
				Usage: "Pick tracks and publish a private YouTube playlist",
				Flags: append(searchFlags,
					&cli.BoolFlag{
						Name:  "all",
						Usage: "Publish every track without the interactive picker",
					},
					&cli.StringFlag{
						Name:  "account",
						Usage: "Label for the signed-in account",
					},
				),
				Action: r.PlaylistPublish,
			},
		},
	}
}
