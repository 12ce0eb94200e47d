package config

import (
	"fmt"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	LogLevel        string `yaml:"log-level" env:"GAMEBOX_LOG_LEVEL" env-default:"info"`
	LogFile         string `yaml:"log-file" env:"GAMEBOX_LOG_FILE" env-default:""`
	CoinFlipDelayMS int    `yaml:"coin-flip-delay-ms" env:"GAMEBOX_COIN_FLIP_DELAY_MS" env-default:"500"`
	RPS             RPS    `yaml:"rps"`
}

type RPS struct {
	RequireNames  bool `yaml:"require-names" env:"GAMEBOX_RPS_REQUIRE_NAMES" env-default:"true"`
	TwoPlayerMode bool `yaml:"two-player" env:"GAMEBOX_RPS_TWO_PLAYER" env-default:"false"`
}

// MustLoad - loads all configuration from the given file, falling back to
// environment variables and defaults when the file does not exist.
func MustLoad(path string) *Config {
	config := &Config{}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		if err = cleanenv.ReadEnv(config); err != nil {
			panic(fmt.Errorf("unable to read environment: %w", err))
		}

		return config
	}

	if err := cleanenv.ReadConfig(path, config); err != nil {
		panic(fmt.Errorf("unable to load config file: %w", err))
	}

	return config
}
