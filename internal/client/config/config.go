package config

import (
	"fmt"
	"time"

	"github.com/spf13/pflag"
)

// Config holds runtime settings for the carbonnft CLI.
//
// Fields:
//   - DatabasePath: SQLite file holding the connected wallet and minted collection.
//   - APIKey: Gemini API key; without it bookings fail with a generation error.
//   - TextModel / ImageModel: model names for the description and the image.
//   - MintDelay: simulated chain latency of a mint.
//   - GenerationTimeout: upper bound for one generation; 0 means none.
//   - LogLevel / LogFormat: slog level (debug, info, warn, error) and handler (text, json).
type Config struct {
	DatabasePath      string        `env:"CARBONNFT_DB"`
	APIKey            string        `env:"API_KEY"`
	TextModel         string        `env:"CARBONNFT_TEXT_MODEL"`
	ImageModel        string        `env:"CARBONNFT_IMAGE_MODEL"`
	MintDelay         time.Duration `env:"CARBONNFT_MINT_DELAY"`
	GenerationTimeout time.Duration `env:"CARBONNFT_GENERATION_TIMEOUT"`
	LogLevel          string        `env:"CARBONNFT_LOG_LEVEL"`
	LogFormat         string        `env:"CARBONNFT_LOG_FORMAT"`
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.DatabasePath = "carbonnft.db"
	c.TextModel = "gemini-2.5-flash"
	c.ImageModel = "imagen-4.0-generate-001"
	c.MintDelay = 2 * time.Second
	c.GenerationTimeout = 0
	c.LogLevel = "warn"
	c.LogFormat = "text"
}

// Load constructs a Config, applies defaults, then overlays values from the
// JSON file named by --config (if any), the environment, and finally the
// flags explicitly set on fs. Later sources take precedence.
func Load(fs *pflag.FlagSet) (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()

	path, err := fs.GetString(flagConfig)
	if err != nil {
		return nil, fmt.Errorf("config flag: %w", err)
	}
	if err := parseJson(cfg, path); err != nil {
		return nil, err
	}
	if err := parseEnv(cfg); err != nil {
		return nil, err
	}
	if err := parseFlags(cfg, fs); err != nil {
		return nil, err
	}
	return cfg, nil
}
