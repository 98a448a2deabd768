package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/omega-arcade/internal/core"
	"github.com/vovakirdan/omega-arcade/internal/games/omega"
	"github.com/vovakirdan/omega-arcade/internal/platform/tui"
	"github.com/vovakirdan/omega-arcade/internal/registry"
	"github.com/vovakirdan/omega-arcade/internal/storage"
)

var (
	flagWatch  bool
	flagPlayer string
)

var playCmd = &cobra.Command{
	Use:   "play [game]",
	Short: "Play a game",
	Long: `Start playing the specified game (omega when omitted).

Controls:
  Arrows/WASD  - Move
  P/Esc        - Pause
  Ctrl+S       - Save a screenshot to ~/.omega/screenshots
  Q/Ctrl+C     - Quit (the run is saved)

Examples:
  omega play
  omega play --config ./omega.toml
  omega play --config ./omega.yaml --watch --log-file omega.log`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().BoolVar(&flagWatch, "watch", false, "Reload --config while playing")
	playCmd.Flags().StringVar(&flagPlayer, "player", "", "Player name stored with the run (default: $USER)")
}

func runPlay(cmd *cobra.Command, args []string) {
	gameID := omega.GameID
	if len(args) == 1 {
		gameID = args[0]
	}

	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'omega list' to see available games.")
		os.Exit(1)
	}
	if flagWatch && flagConfig == "" {
		fmt.Fprintln(os.Stderr, "Error: --watch needs --config")
		os.Exit(1)
	}

	gameCfg, err := loadGameConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	logger, closer, err := fileLogger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening log file: %v\n", err)
		os.Exit(1)
	}
	defer closer.Close()

	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	// The game still works without storage.
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		store = nil
	}

	opts := tui.Options{
		Config: core.RuntimeConfig{
			ScreenW:  width,
			ScreenH:  height,
			TickRate: flagFPS,
		},
		Player:     flagPlayer,
		Logger:     logger,
		HoldWindow: gameCfg.Input.HoldWindow(),
	}
	if flagWatch {
		opts.WatchPath = flagConfig
	}

	runErr := tui.Run(game, store, opts)

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
