package config

import (
	"github.com/spf13/pflag"
)

const (
	flagConfig            = "config"
	flagDatabase          = "db"
	flagTextModel         = "text-model"
	flagImageModel        = "image-model"
	flagMintDelay         = "mint-delay"
	flagGenerationTimeout = "generation-timeout"
	flagLogLevel          = "log-level"
	flagLogFormat         = "log-format"
)

// RegisterFlags declares the configuration flags on fs. The defaults shown
// in help are the built-in ones; Load only applies flags that were set.
//
//	-c, --config string              path to a JSON config file
//	-d, --db string                  path to the local database
//	    --text-model string          model writing the description
//	    --image-model string         model painting the image
//	-m, --mint-delay duration        simulated mint latency
//	-t, --generation-timeout duration  bound for one generation (0 = none)
//	    --log-level string           debug, info, warn or error
//	    --log-format string          text or json
func RegisterFlags(fs *pflag.FlagSet) {
	var d Config
	d.LoadDefaults()

	fs.StringP(flagConfig, "c", "", "path to a JSON config file")
	fs.StringP(flagDatabase, "d", d.DatabasePath, "path to the local database")
	fs.String(flagTextModel, d.TextModel, "model writing the NFT description")
	fs.String(flagImageModel, d.ImageModel, "model painting the NFT image")
	fs.DurationP(flagMintDelay, "m", d.MintDelay, "simulated mint latency")
	fs.DurationP(flagGenerationTimeout, "t", d.GenerationTimeout, "bound for one generation (0 = none)")
	fs.String(flagLogLevel, d.LogLevel, "log level: debug, info, warn or error")
	fs.String(flagLogFormat, d.LogFormat, "log format: text or json")
}

// parseFlags copies every flag the user set explicitly into cfg.
func parseFlags(cfg *Config, fs *pflag.FlagSet) error {
	var err error
	strings := map[string]*string{
		flagDatabase:   &cfg.DatabasePath,
		flagTextModel:  &cfg.TextModel,
		flagImageModel: &cfg.ImageModel,
		flagLogLevel:   &cfg.LogLevel,
		flagLogFormat:  &cfg.LogFormat,
	}
	for name, dst := range strings {
		if !fs.Changed(name) {
			continue
		}
		if *dst, err = fs.GetString(name); err != nil {
			return err
		}
	}

	if fs.Changed(flagMintDelay) {
		if cfg.MintDelay, err = fs.GetDuration(flagMintDelay); err != nil {
			return err
		}
	}
	if fs.Changed(flagGenerationTimeout) {
		if cfg.GenerationTimeout, err = fs.GetDuration(flagGenerationTimeout); err != nil {
			return err
		}
	}
	return nil
}
