package config

import (
	"fmt"

	"github.com/BurntSushi/toml"
	"github.com/caarlos0/env/v11"
)

const EnvPrefix = "MATCHUP_"

type Discord struct {
	Token             string `toml:"token" env:"DISCORD_TOKEN"`
	EmojiGuild        string `toml:"emoji_guild" env:"DISCORD_EMOJI_GUILD"`
	AutocompleteLimit int    `toml:"autocomplete_limit" env:"DISCORD_AUTOCOMPLETE_LIMIT"`
}

type Database struct {
	Path string `toml:"path" env:"DB_PATH"`
}

type Log struct {
	Level string `toml:"level" env:"LOG_LEVEL"`
}

type Config struct {
	Discord Discord  `toml:"discord"`
	DB      Database `toml:"database"`
	Log     Log      `toml:"log"`
}

func Default() Config {
	return Config{
		Discord: Discord{
			AutocompleteLimit: 25,
		},
		DB: Database{
			Path: "typechart.db",
		},
	}
}

// Read layers the defaults, the TOML file at path (skipped when path is
// empty) and MATCHUP_ prefixed environment variables, in that order.
func Read(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		_, err := toml.DecodeFile(path, &cfg)
		if err != nil {
			return nil, fmt.Errorf("failed to decode config file %q: %w", path, err)
		}
	}

	err := env.ParseWithOptions(&cfg, env.Options{Prefix: EnvPrefix})
	if err != nil {
		return nil, fmt.Errorf("failed to read config from environment: %w", err)
	}

	return &cfg, nil
}
