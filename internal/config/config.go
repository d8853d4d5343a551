package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

type Config struct {
	Decks     DecksConfig     `mapstructure:"decks"`
	Store     StoreConfig     `mapstructure:"store"`
	Scheduler SchedulerConfig `mapstructure:"scheduler"`
	Logging   LoggingConfig   `mapstructure:"logging"`
}

type DecksConfig struct {
	WordsDirectory     string `mapstructure:"words_directory" validate:"required"`
	VerbsDirectory     string `mapstructure:"verbs_directory" validate:"required"`
	SentencesDirectory string `mapstructure:"sentences_directory" validate:"required"`
}

type StoreConfig struct {
	Path string `mapstructure:"path" validate:"required"`
}

type SchedulerConfig struct {
	DailyNewCardLimit int `mapstructure:"daily_new_card_limit" validate:"min=1"`
	SessionCap        int `mapstructure:"session_cap" validate:"min=0"`
}

type LoggingConfig struct {
	Level string `mapstructure:"level" validate:"oneof=debug info warn error"`
}

func Load(configFile string) (*Config, error) {
	v := viper.New()

	v.SetConfigType("yaml")

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.config/flitskaart")
	}

	v.SetDefault("decks.words_directory", filepath.Join("decks", "words"))
	v.SetDefault("decks.verbs_directory", filepath.Join("decks", "verbs"))
	v.SetDefault("decks.sentences_directory", filepath.Join("decks", "sentences"))
	v.SetDefault("store.path", "progress.db")
	v.SetDefault("scheduler.daily_new_card_limit", 20)
	v.SetDefault("scheduler.session_cap", 0)
	v.SetDefault("logging.level", "warn")

	// Overridable without a config file so a one-off session against a
	// second deck collection stays simple.
	if err := v.BindEnv("store.path", "FLITSKAART_STORE_PATH"); err != nil {
		return nil, fmt.Errorf("failed to bind FLITSKAART_STORE_PATH environment variable: %w", err)
	}
	if err := v.BindEnv("decks.words_directory", "FLITSKAART_WORDS_DIR"); err != nil {
		return nil, fmt.Errorf("failed to bind FLITSKAART_WORDS_DIR environment variable: %w", err)
	}
	if err := v.BindEnv("logging.level", "FLITSKAART_LOG_LEVEL"); err != nil {
		return nil, fmt.Errorf("failed to bind FLITSKAART_LOG_LEVEL environment variable: %w", err)
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("configuration file found but could not be read: %w. Please check the file format and permissions", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration format: %w", err)
	}

	return &cfg, nil
}

// Validate checks the loaded configuration and returns human readable
// messages for each violated constraint.
func (c *Config) Validate() error {
	validate, trans, err := newValidator()
	if err != nil {
		return fmt.Errorf("newValidator() > %w", err)
	}

	if err := validate.Struct(c); err != nil {
		var validationErrors validator.ValidationErrors
		if !errors.As(err, &validationErrors) {
			return fmt.Errorf("validate.Struct() > %w", err)
		}
		messages := make([]string, 0, len(validationErrors))
		for _, fieldError := range validationErrors {
			messages = append(messages, fieldError.Translate(trans))
		}
		return fmt.Errorf("invalid configuration: %s", strings.Join(messages, "; "))
	}
	return nil
}
