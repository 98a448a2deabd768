package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/omega-arcade/internal/config"
)

var (
	flagConfigFormat  string
	flagConfigDefault bool
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the game configuration",
	Long: `Print the effective game configuration, after the search path and
--config are applied and the result is validated.

Examples:
  omega config --default > ~/.omega/configs/omega.yaml
  omega config --format toml > omega.toml
  omega config --config ./omega.yaml   # validate and print a custom file`,
	Args: cobra.NoArgs,
	Run:  runConfig,
}

func init() {
	configCmd.Flags().StringVar(&flagConfigFormat, "format", "yaml", "Output format: yaml or toml")
	configCmd.Flags().BoolVar(&flagConfigDefault, "default", false, "Print the commented built-in YAML")
}

func runConfig(cmd *cobra.Command, args []string) {
	if flagConfigDefault {
		os.Stdout.Write(config.GetDefaultYAML("omega"))
		return
	}

	cfg, err := config.LoadOmega(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	out, err := config.Encode(cfg, flagConfigFormat)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	os.Stdout.Write(out)
}
