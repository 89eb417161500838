package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/sumlink/internal/games/sumlink"
	"github.com/vovakirdan/sumlink/internal/platform/tui"
	"github.com/vovakirdan/sumlink/internal/storage"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start Sum Link with the start screen",
	Long: `Start Sum Link in interactive menu mode.

Pick "Play" to start from the configured level, "Select level..." to
start anywhere in the progression, or "High scores" to see past runs.
Leaving a run with Esc records it and returns to the menu.

Controls:
  Up/Down/j/k  - Navigate menu
  Left/Right   - Jump 5 levels in the level picker
  Enter/Space  - Select
  Tab          - High scores
  Q            - Quit

Examples:
  sumlink menu
  sumlink menu --fps 60
  sumlink menu --db ./scores.db`,
	Args: cobra.NoArgs,
	Run:  runMenu,
}

func init() {
	menuCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
}

func runMenu(_ *cobra.Command, _ []string) {
	sumlink.SetConfigPath(flagConfig)

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		store = nil
	}

	runErr := tui.RunSession(store, runtimeConfig(terminalSize()), logger)

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", runErr)
		os.Exit(1)
	}
}
