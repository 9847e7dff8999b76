// clickfield is a terminal canvas: click anywhere on the field to drop a
// random square or circle there, click a shape to remove it.
//
// Usage:
//
//	clickfield play     - Open the field in this terminal
//	clickfield serve    - Start SSH server for remote sessions
//	clickfield stats    - Show recorded session statistics
//
// Global flags:
//
//	--seed <value>    - Set RNG seed for reproducible shapes
//	--db <path>       - Set database path (default: ~/.clickfield/sessions.db)
//	--config <path>   - Use a custom config YAML
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/clickfield/internal/config"
)

var (
	// Global flags
	flagSeed   int64
	flagDBPath string
	flagConfig string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "clickfield",
	Short: "clickfield - Drop shapes on a terminal canvas with your mouse",
	Long: `clickfield turns your terminal into a clickable field.

A left click on empty space spawns a square or a circle of random size and
color centered on the click. A click on a shape removes it.

Available commands:
  play     - Open the field in this terminal
  serve    - Start SSH server for remote sessions
  stats    - Show recorded session statistics

Examples:
  clickfield play
  clickfield play --seed 42
  clickfield serve --ssh :2222
  clickfield stats`,
	SilenceUsage: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to sessions database (overrides config)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(statsCmd)
}

// loadConfig loads the configuration and applies global flag overrides.
func loadConfig() (config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return config.Config{}, err
	}
	if flagDBPath != "" {
		cfg.Storage.Path = flagDBPath
	}
	return cfg, nil
}
