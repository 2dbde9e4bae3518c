package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/OpenTraceLab/pihwinfo/internal/config"
	"github.com/OpenTraceLab/pihwinfo/internal/logging"
	"github.com/spf13/cobra"
)

var (
	// Global flags
	verbose  bool
	logLevel string
	logJSON  bool

	cfg    config.Config
	logger *slog.Logger
)

var rootCmd = &cobra.Command{
	Use:   "pihw",
	Short: "Raspberry Pi hardware identification",
	Long: `Decode Raspberry Pi revision codes and report board hardware: model,
processor, memory, manufacturer and network interfaces.

Examples:
  pihw decode a020d3                 # Decode a revision code
  pihw decode --json 0005 d04170     # Decode several codes as JSON
  pihw info                          # Report the local board
  pihw table                         # List old-style revision codes`,
	Version:           "0.6.0",
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level: debug, info, warn, error (env PIHW_LOG_LEVEL)")
	rootCmd.PersistentFlags().BoolVar(&logJSON, "log-json", false, "log as JSON (env PIHW_LOG_JSON)")
}

// setup loads configuration from the environment and applies flag overrides.
func setup(cmd *cobra.Command, args []string) error {
	loaded, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	flags := cmd.Flags()
	if flags.Changed("log-level") {
		loaded.LogLevel = logLevel
	}
	if flags.Changed("log-json") {
		loaded.LogJSON = logJSON
	}
	if verbose && !flags.Changed("log-level") {
		loaded.LogLevel = "debug"
	}
	if err := loaded.Validate(); err != nil {
		return err
	}

	cfg = loaded
	logger = logging.New(cmd.ErrOrStderr(), cfg.LogLevel, cfg.LogJSON)
	return nil
}
