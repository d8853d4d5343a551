package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	configFile string
	logger     = zap.NewNop()
)

func main() {
	var debugMode bool
	rootCommand := cobra.Command{
		Use:           "flitskaart",
		Short:         "Dutch vocabulary trainer with spaced repetition",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			logger, err = setupLogger(debugMode, cfg.Logging.Level)
			if err != nil {
				return fmt.Errorf("setupLogger() > %w", err)
			}
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = logger.Sync()
		},
	}
	rootCommand.PersistentFlags().StringVar(&configFile, "config", "", "config file path")
	rootCommand.PersistentFlags().BoolVar(&debugMode, "debug", false, "Enable debug mode")

	rootCommand.AddCommand(
		newQuizCommand(),
		newStatsCommand(),
		newValidateCommand(),
		newResetCommand(),
	)
	if err := rootCommand.Execute(); err != nil {
		if _, fprintfErr := fmt.Fprintf(os.Stderr, "failed to execute a command: %+v\n", err); fprintfErr != nil {
			panic(fmt.Errorf("failed to output an error: %w. Reason: %w", err, fprintfErr))
		}
		os.Exit(1)
	}
	os.Exit(0)
}

// setupLogger builds the application logger. The debug flag wins over the
// configured level.
func setupLogger(debugMode bool, configuredLevel string) (*zap.Logger, error) {
	level := zapcore.WarnLevel
	if err := level.Set(configuredLevel); err != nil {
		return nil, fmt.Errorf("unknown log level %q: %w", configuredLevel, err)
	}
	if debugMode {
		level = zapcore.DebugLevel
	}

	zapConfig := zap.NewDevelopmentConfig()
	zapConfig.Level = zap.NewAtomicLevelAt(level)
	zapConfig.OutputPaths = []string{"stderr"}
	return zapConfig.Build()
}
