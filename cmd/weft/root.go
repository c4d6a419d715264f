package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/spf13/cobra"

	"github.com/aretw0/weft/internal/logging"
)

// envConfig holds environment overrides shared by all subcommands.
type envConfig struct {
	LogLevel string `env:"WEFT_LOG_LEVEL" envDefault:"info"`
}

var rootCmd = &cobra.Command{
	Use:   "weft",
	Short: "weft runs the bundled unidirectional-data-flow demos",
	Long: `weft is a library for wiring applications around a single immutable
model, a pure update function, and a pure view. This binary ships small
demo loops (counter, clock) that exercise the library end to end.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "Path to a YAML demo config")
	rootCmd.PersistentFlags().String("log-level", "", "Log level (debug, info, warn, error); overrides WEFT_LOG_LEVEL")
}

// newLogger builds the CLI logger from the flag, falling back to the
// environment.
func newLogger(cmd *cobra.Command) *slog.Logger {
	level, _ := cmd.Flags().GetString("log-level")
	if level == "" {
		var cfg envConfig
		if err := env.Parse(&cfg); err == nil {
			level = cfg.LogLevel
		}
	}
	return logging.New(logging.ParseLevel(level))
}
