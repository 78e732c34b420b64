package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	LogLevel            string        `yaml:"log-level" env:"WORDGAME_LOG_LEVEL" env-default:"info"`
	LogFile             string        `yaml:"log-file" env:"WORDGAME_LOG_FILE" env-default:"wordgame.log"`
	TurnTimeout         time.Duration `yaml:"turn-timeout" env:"WORDGAME_TURN_TIMEOUT" env-default:"15s"`
	HistoryDisplayLimit int           `yaml:"history-display-limit" env:"WORDGAME_HISTORY_DISPLAY_LIMIT" env-default:"10"`
	PlainOutput         bool          `yaml:"plain-output" env:"WORDGAME_PLAIN_OUTPUT"`
	Storage             Storage       `yaml:"storage"`
}

type Storage struct {
	Driver     string `yaml:"driver" env:"WORDGAME_STORAGE_DRIVER" env-default:"file"`
	DataDir    string `yaml:"data-dir" env:"WORDGAME_DATA_DIR" env-default:"."`
	SQLitePath string `yaml:"sqlite-path" env:"WORDGAME_SQLITE_PATH" env-default:"wordgame.db"`
}

// Load - reads the config file, or only the environment when the file does not exist.
func Load(path string) (*Config, error) {
	config := &Config{}

	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		if err = cleanenv.ReadEnv(config); err != nil {
			return nil, fmt.Errorf("unable to read environment: %w", err)
		}

		return config, nil
	}

	if err := cleanenv.ReadConfig(path, config); err != nil {
		return nil, fmt.Errorf("unable to load config file: %w", err)
	}

	return config, nil
}

// MustLoad - load all configurations in config.yml file.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(err)
	}

	return config
}
