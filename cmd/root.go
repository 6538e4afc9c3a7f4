package cmd

import (
	"fmt"
	"os"

	cfgpkg "github.com/KaramelBytes/ridestat-cli/internal/config"
	"github.com/spf13/cobra"
)

var (
	// Global flags (wired to config/viper)
	cfgFile     string
	debug       bool
	flagDataDir string

	// Loaded configuration
	cfg *cfgpkg.Global
)

var rootCmd = &cobra.Command{
	Use:   "ridestat",
	Short: "Ridestat: explore bike-share trip statistics from the terminal",
	Long: `Ridestat computes descriptive statistics over bike-share trip CSVs:
popular travel times, station popularity, trip durations and user
demographics, with optional month and day-of-week filtering.

Running ridestat with no subcommand starts the interactive session.`,
	RunE: runExplore,
}

// Execute is the entry point called by main.main()
func Execute() {
	// Initialize configuration before executing commands
	cobra.OnInitialize(loadConfig)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "✗ Error:", err)
		os.Exit(1)
	}
}

func init() {
	// Persistent global flags available to all subcommands
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ~/.ridestat/config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug output")
	rootCmd.PersistentFlags().StringVar(&flagDataDir, "data-dir", "", "directory with city CSV files (overrides config)")
}

func loadConfig() {
	c, err := cfgpkg.Load(cfgFile)
	if err != nil {
		// Non-fatal: fall back to defaults so the session can still run
		fmt.Fprintf(os.Stderr, "⚠ Warning: failed to load config: %v\n", err)
		c = &cfgpkg.Global{DataDir: "data", PageSize: 5}
	}
	cfg = c

	// Apply CLI overrides if provided
	if rootCmd.PersistentFlags().Changed("data-dir") && flagDataDir != "" {
		cfg.DataDir = flagDataDir
	}
	if debug {
		fmt.Fprintf(os.Stderr, "debug: data_dir=%s page_size=%d\n", cfg.DataDir, cfg.PageSize)
	}
}
