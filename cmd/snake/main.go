// snake is a terminal snake game on a wrapping grid.
//
// Usage:
//
//	snake play             - Play in the terminal (default)
//	snake sim              - Run a headless game with the autopilot
//	snake config           - Print the effective configuration
//
// Global flags:
//
//	--config <path>     - Custom game config YAML
//	--seed <value>      - RNG seed for reproducible gameplay
//	--log <path>        - Log file (play) or stderr (sim)
//	--log-level <lvl>   - debug, info, warn, error
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagConfig   string
	flagSeed     int64
	flagLog      string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "snake",
	Short: "Snake on a wrapping grid, in your terminal",
	Long: `Snake steers a growing body around a grid whose edges wrap.
Eat food to grow, grab the flashing special item before it expires and
avoid running into yourself.

Available commands:
  play     - Play in the terminal (default)
  sim      - Headless run driven by the autopilot
  config   - Print the effective configuration as YAML

Examples:
  snake
  snake play --fps 15 --head-color yellow
  snake sim --ticks 5000 --seed 42
  snake config --config ./my-snake.yaml`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runPlay,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagLog, "log", "", "Log file path (play logs nowhere by default)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	registerPlayFlags(rootCmd)

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(configCmd)
}
