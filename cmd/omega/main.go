// omega is a terminal arcade: steer the player around a bordered
// play-field while the score climbs every frame.
//
// Usage:
//
//	omega list               - List available games
//	omega play [game]        - Play a game (default: omega)
//	omega scores [game]      - Print the best runs
//	omega scoreboard         - Browse runs in an interactive table
//	omega serve              - Start SSH server (and optional HTTP leaderboard)
//	omega config             - Print the default game configuration
//
// Global flags:
//
//	--fps <rate>         - Set tick rate (default: 60)
//	--db <path>          - Set database path (default: ~/.omega/scores.db)
//	--config <path>      - Game config file (.yaml or .toml)
//	--log-file <path>    - Write logs to a file
//	--log-level <level>  - debug, info, warn or error
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/omega-arcade/internal/config"
	"github.com/vovakirdan/omega-arcade/internal/games/omega"
	"github.com/vovakirdan/omega-arcade/internal/logging"
)

var (
	// Global flags
	flagFPS      int
	flagDBPath   string
	flagConfig   string
	flagLogFile  string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "omega",
	Short: "Omega - a terminal arcade skeleton",
	Long: `Omega is a minimal arcade game for the terminal: a bordered play-field,
a score banner and a player you steer with the arrow keys.

Available commands:
  list        - Show all available games
  play        - Play a game
  scores      - Print the best runs
  scoreboard  - Interactive high score table
  serve       - Start SSH server for remote play
  config      - Print the default configuration

Examples:
  omega play
  omega play --config ./omega.yaml --watch
  omega scores
  omega serve --ssh :2222 --http :8080`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.omega/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to game config (.yaml or .toml)")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(scoreboardCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(configCmd)
}

// loadGameConfig loads the game configuration and makes it the default
// for games created afterwards.
func loadGameConfig() (config.OmegaConfig, error) {
	cfg, err := config.LoadOmega(flagConfig)
	if err != nil {
		return cfg, err
	}
	omega.SetConfig(cfg)
	return cfg, nil
}

// fileLogger returns a logger writing to --log-file, or a discarding one.
// Interactive commands own the terminal, so they never log to it.
func fileLogger() (*log.Logger, io.Closer, error) {
	if flagLogFile == "" {
		return logging.Discard(), io.NopCloser(nil), nil
	}
	return logging.OpenFile(flagLogFile, "omega", flagLogLevel)
}
