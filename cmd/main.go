package main

import (
	"context"
	"net/http"
	"os"
	"time"

	"github.com/urfave/cli/v3"

	"gigmix/internal/services"
	"gigmix/internal/shared"
	"gigmix/internal/tasks"
)

func main() {
	logger := shared.NewLogger(nil)

	config := shared.DefaultConfig()
	if _, err := os.Stat("config.toml"); err == nil {
		if loadedConfig, err := shared.LoadConfig("config.toml"); err == nil {
			config = loadedConfig
		} else {
			logger.Warn("failed to load config.toml, using defaults", "error", err)
		}
	}
	shared.ApplyEnv(config)

	httpClient := &http.Client{Timeout: 30 * time.Second}

	geocoder := services.NewOpenCageClient(config.Providers.OpenCageKey, httpClient)
	eventFinder := services.NewTicketmasterClient(config.Providers.TicketmasterKey, httpClient)
	suggester := services.NewGeminiClient(config.Providers.GeminiKey, httpClient)
	youtube := services.NewYouTubeClient(config.Providers.YouTubeKey, httpClient)

	engine := tasks.NewEngine(geocoder, eventFinder, suggester, youtube, youtube,
		shared.WithLogger(logger, "component", "engine"))

	runner := NewRunner(RunnerOpts{
		Config:     config,
		Engine:     engine,
		HTTPClient: httpClient,
		Logger:     logger,
	})

	app := &cli.Command{
		Name:     "gigmix",
		Usage:    "Find concerts near a city and turn them into a YouTube playlist",
		Version:  "0.1.0",
		Commands: runner.register(),
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		logger.Fatalf("application error: %v", err)
	}
}
