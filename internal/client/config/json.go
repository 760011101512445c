package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/dmitrijs2005/carbonnft/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. Intervals
// use timex.Duration so they can be written as "2s" or as nanoseconds.
type JsonConfig struct {
	DatabasePath      string         `json:"database_path"`
	APIKey            string         `json:"api_key"`
	TextModel         string         `json:"text_model"`
	ImageModel        string         `json:"image_model"`
	MintDelay         timex.Duration `json:"mint_delay"`
	GenerationTimeout timex.Duration `json:"generation_timeout"`
	LogLevel          string         `json:"log_level"`
	LogFormat         string         `json:"log_format"`
}

// parseJson overlays Config with the non-empty values of the JSON file at
// path. An empty path loads nothing.
func parseJson(cfg *Config, path string) error {
	if path == "" {
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}

	var jc JsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		return fmt.Errorf("parse config file %s: %w", path, err)
	}

	setString(&cfg.DatabasePath, jc.DatabasePath)
	setString(&cfg.APIKey, jc.APIKey)
	setString(&cfg.TextModel, jc.TextModel)
	setString(&cfg.ImageModel, jc.ImageModel)
	setString(&cfg.LogLevel, jc.LogLevel)
	setString(&cfg.LogFormat, jc.LogFormat)
	if jc.MintDelay.Duration != 0 {
		cfg.MintDelay = jc.MintDelay.Duration
	}
	if jc.GenerationTimeout.Duration != 0 {
		cfg.GenerationTimeout = jc.GenerationTimeout.Duration
	}
	return nil
}

func setString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}
