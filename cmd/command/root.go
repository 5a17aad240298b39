// Package command holds the elite-drive CLI. The root command serves the
// HTTP API; "seed" recreates the sample dataset.
//
//	./elite-drive            # same as "serve"
//	./elite-drive serve
//	./elite-drive seed
package command

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var envFile string

var rootCmd = &cobra.Command{
	Use:   "elite-drive",
	Short: "Showroom backend for cars, viewing slots and test drive bookings",
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		return loadEnvFile()
	},
	RunE: runServe,
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", ".env", "dotenv file loaded before reading the environment")
	rootCmd.AddCommand(serveCmd, seedCmd)
}

// loadEnvFile fills unset variables from envFile. A missing file is not an error.
func loadEnvFile() error {
	if envFile == "" {
		return nil
	}
	if _, err := os.Stat(envFile); os.IsNotExist(err) {
		return nil
	}
	if err := godotenv.Load(envFile); err != nil {
		return fmt.Errorf("failed to load %s: %w", envFile, err)
	}
	slog.Debug("environment loaded", "file", envFile)
	return nil
}
