package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

func newResetCommand() *cobra.Command {
	var yes bool

	command := &cobra.Command{
		Use:   "reset",
		Short: "Wipe all scheduling progress, known flags and daily counters",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			if !yes {
				fmt.Printf("This wipes all progress in %s. Type 'yes' to continue: ", cfg.Store.Path)
				input, err := bufio.NewReader(os.Stdin).ReadString('\n')
				if err != nil {
					return fmt.Errorf("error reading input: %w", err)
				}
				if strings.TrimSpace(input) != "yes" {
					fmt.Println("Aborted.")
					return nil
				}
			}

			progress, closeProgress, err := openProgress(cfg)
			if err != nil {
				return err
			}
			defer closeProgress()

			if err := progress.Reset(); err != nil {
				return fmt.Errorf("progress.Reset() > %w", err)
			}
			fmt.Println("All progress has been reset.")
			return nil
		},
	}
	command.Flags().BoolVar(&yes, "yes", false, "Skip the confirmation prompt")

	return command
}
