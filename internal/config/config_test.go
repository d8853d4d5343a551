package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	tests := []struct {
		name              string
		configContent     string
		env               map[string]string
		wantErr           bool
		want              *Config
		wantErrorContains []string
	}{
		{
			name: "valid config file with custom values",
			configContent: `decks:
  words_directory: custom/words
  verbs_directory: custom/verbs
  sentences_directory: custom/sentences
store:
  path: custom/progress.db
scheduler:
  daily_new_card_limit: 5
  session_cap: 30
logging:
  level: debug
`,
			wantErr: false,
			want: &Config{
				Decks: DecksConfig{
					WordsDirectory:     "custom/words",
					VerbsDirectory:     "custom/verbs",
					SentencesDirectory: "custom/sentences",
				},
				Store: StoreConfig{
					Path: "custom/progress.db",
				},
				Scheduler: SchedulerConfig{
					DailyNewCardLimit: 5,
					SessionCap:        30,
				},
				Logging: LoggingConfig{
					Level: "debug",
				},
			},
		},
		{
			name: "partial config with missing fields uses defaults",
			configContent: `decks:
  words_directory: custom/words
`,
			wantErr: false,
			want: &Config{
				Decks: DecksConfig{
					WordsDirectory:     "custom/words",
					VerbsDirectory:     filepath.Join("decks", "verbs"),
					SentencesDirectory: filepath.Join("decks", "sentences"),
				},
				Store: StoreConfig{
					Path: "progress.db",
				},
				Scheduler: SchedulerConfig{
					DailyNewCardLimit: 20,
					SessionCap:        0,
				},
				Logging: LoggingConfig{
					Level: "warn",
				},
			},
		},
		{
			name: "environment variables override the file",
			configContent: `store:
  path: file/progress.db
`,
			env: map[string]string{
				"FLITSKAART_STORE_PATH": "env/progress.db",
				"FLITSKAART_LOG_LEVEL":  "info",
			},
			wantErr: false,
			want: &Config{
				Decks: DecksConfig{
					WordsDirectory:     filepath.Join("decks", "words"),
					VerbsDirectory:     filepath.Join("decks", "verbs"),
					SentencesDirectory: filepath.Join("decks", "sentences"),
				},
				Store: StoreConfig{
					Path: "env/progress.db",
				},
				Scheduler: SchedulerConfig{
					DailyNewCardLimit: 20,
					SessionCap:        0,
				},
				Logging: LoggingConfig{
					Level: "info",
				},
			},
		},
		{
			name: "invalid YAML format",
			configContent: `decks:
  words_directory: custom/words
  invalid yaml format here [[[
`,
			wantErr: true,
			wantErrorContains: []string{
				"configuration file found but could not be read",
				"Please check the file format and permissions",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for key, value := range tt.env {
				t.Setenv(key, value)
			}

			tempDir := t.TempDir()
			configPath := filepath.Join(tempDir, "config.yml")
			err := os.WriteFile(configPath, []byte(tt.configContent), 0644)
			require.NoError(t, err)

			got, err := Load(configPath)

			if tt.wantErr {
				assert.Error(t, err)
				assert.Nil(t, got)
				for _, wantMsg := range tt.wantErrorContains {
					assert.Contains(t, err.Error(), wantMsg)
				}
				return
			}

			require.NoError(t, err)
			require.NotNil(t, got)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestConfigValidate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			Decks: DecksConfig{
				WordsDirectory:     "decks/words",
				VerbsDirectory:     "decks/verbs",
				SentencesDirectory: "decks/sentences",
			},
			Store:     StoreConfig{Path: "progress.db"},
			Scheduler: SchedulerConfig{DailyNewCardLimit: 20},
			Logging:   LoggingConfig{Level: "warn"},
		}
	}

	tests := []struct {
		name              string
		mutate            func(*Config)
		wantErrorContains string
	}{
		{
			name:   "valid",
			mutate: func(*Config) {},
		},
		{
			name:              "missing store path",
			mutate:            func(c *Config) { c.Store.Path = "" },
			wantErrorContains: "path",
		},
		{
			name:              "zero new card limit",
			mutate:            func(c *Config) { c.Scheduler.DailyNewCardLimit = 0 },
			wantErrorContains: "daily_new_card_limit",
		},
		{
			name:              "unknown log level",
			mutate:            func(c *Config) { c.Logging.Level = "loud" },
			wantErrorContains: "level",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErrorContains == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErrorContains)
		})
	}
}
