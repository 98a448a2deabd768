package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/omega-arcade/internal/platform/tui"
	"github.com/vovakirdan/omega-arcade/internal/storage"
)

var scoreboardCmd = &cobra.Command{
	Use:   "scoreboard",
	Short: "Browse high scores interactively",
	Long: `Open an interactive table of the best runs for every game.

Controls:
  Up/Down      - Scroll
  Tab/Left/Right - Switch game
  Esc/Q        - Close`,
	Args: cobra.NoArgs,
	Run:  runScoreboard,
}

func runScoreboard(cmd *cobra.Command, args []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	if err := tui.RunScoreboard(store, width, height); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}
}
