package shared

import (
	_ "embed"
	"fmt"
	"os"
	"strconv"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

//go:embed config.example.toml
var exampleConf []byte

// Config represents the application configuration loaded from a TOML file.
type Config struct {
	Providers ProvidersConfig `toml:"providers"`
	Google    GoogleConfig    `toml:"google"`
	Server    ServerConfig    `toml:"server"`
}

// ProvidersConfig contains API keys for the external providers.
type ProvidersConfig struct {
	OpenCageKey     string `toml:"opencage_key"`
	TicketmasterKey string `toml:"ticketmaster_key"`
	GeminiKey       string `toml:"gemini_key"`
	YouTubeKey      string `toml:"youtube_key"`
}

// GoogleConfig contains the OAuth2 client used for YouTube playlist access.
type GoogleConfig struct {
	ClientID     string `toml:"client_id"`
	ClientSecret string `toml:"client_secret"`
	RedirectURI  string `toml:"redirect_uri"`
}

// ServerConfig contains settings for the local OAuth callback server.
type ServerConfig struct {
	Host string `toml:"host"`
	Port int    `toml:"port"`
}

// LoadConfig reads and parses a TOML configuration file from the specified path.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var config Config
	if err := toml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	return &config, nil
}

// DefaultConfig returns a Config with sensible defaults loaded from the embedded example config.
func DefaultConfig() *Config {
	var config Config
	if err := toml.Unmarshal(exampleConf, &config); err != nil {
		panic(fmt.Sprintf("failed to parse embedded default config: %v", err))
	}
	return &config
}

// CreateConfigFile creates a config.toml file at the specified path using the embedded example config.
func CreateConfigFile(path string) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("%w: config file already exists at %s", ErrInvalidArgument, path)
	}

	if err := os.WriteFile(path, exampleConf, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// ApplyEnv overlays environment variables onto the config.
//
// A .env file in the working directory is loaded first if present (missing is
// not an error). Variables use the GIGMIX_ prefix; set values override the
// TOML file, empty variables leave it untouched.
func ApplyEnv(config *Config) {
	_ = godotenv.Load()

	setString := func(dst *string, key string) {
		if v := os.Getenv(key); v != "" {
			*dst = v
		}
	}

	setString(&config.Providers.OpenCageKey, "GIGMIX_OPENCAGE_KEY")
	setString(&config.Providers.TicketmasterKey, "GIGMIX_TICKETMASTER_KEY")
	setString(&config.Providers.GeminiKey, "GIGMIX_GEMINI_KEY")
	setString(&config.Providers.YouTubeKey, "GIGMIX_YOUTUBE_KEY")
	setString(&config.Google.ClientID, "GIGMIX_GOOGLE_CLIENT_ID")
	setString(&config.Google.ClientSecret, "GIGMIX_GOOGLE_CLIENT_SECRET")
	setString(&config.Google.RedirectURI, "GIGMIX_GOOGLE_REDIRECT_URI")
	setString(&config.Server.Host, "GIGMIX_SERVER_HOST")

	if v := os.Getenv("GIGMIX_SERVER_PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			config.Server.Port = port
		}
	}
}
