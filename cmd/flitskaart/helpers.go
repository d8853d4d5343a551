package main

import (
	"fmt"

	"github.com/rvanbeek/flitskaart/internal/config"
	"github.com/rvanbeek/flitskaart/internal/store"
)

func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(configFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// openProgress opens the progress database and pushes the configured
// scheduling limits into it, so the session managers observe the config
// file's values. The caller closes it.
func openProgress(cfg *config.Config) (*store.Progress, func(), error) {
	kv, err := store.Open(cfg.Store.Path)
	if err != nil {
		return nil, nil, fmt.Errorf("store.Open(%s) > %w", cfg.Store.Path, err)
	}
	closeFunc := func() {
		if err := kv.Close(); err != nil {
			logger.Warn(fmt.Sprintf("failed to close the progress database: %v", err))
		}
	}

	progress := store.NewProgress(kv, logger)
	if err := progress.SaveSchedulerConfig(store.SchedulerConfig{
		DailyNewCardLimit: cfg.Scheduler.DailyNewCardLimit,
	}); err != nil {
		closeFunc()
		return nil, nil, fmt.Errorf("failed to store the scheduler configuration > %w", err)
	}
	return progress, closeFunc, nil
}

// resolveSessionCap picks the per-session card cap: the --limit flag wins
// over the configured default.
func resolveSessionCap(configured, flag int) int {
	if flag > 0 {
		return flag
	}
	return configured
}
