package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/sumlink/internal/games/sumlink"
	"github.com/vovakirdan/sumlink/internal/platform/tui"
	"github.com/vovakirdan/sumlink/internal/registry"
	"github.com/vovakirdan/sumlink/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
	flagLevel      int
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a run",
	Long: `Start a run of Sum Link.

Controls:
  Mouse drag  - Link neighbouring cells; release to submit the sum
  N           - Deal a new board for the current level
  P/Space     - Pause
  R           - Restart the run
  Esc/B       - End the run
  Q/Ctrl+C    - Quit
  Ctrl+S      - Save a text screenshot

Difficulty options:
  easy   - Start at level 1
  normal - Start at level 4
  hard   - Start at level 8

Examples:
  sumlink play
  sumlink play --level 6
  sumlink play --difficulty hard
  sumlink play --seed 42
  sumlink play --config ./my-sumlink.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	playCmd.Flags().IntVar(&flagLevel, "level", 0, "Start level (overrides config and difficulty)")
}

// terminalSize returns the size of stdout, or 80x24 when unknown.
func terminalSize() (int, int) {
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		return w, h
	}
	return 80, 24
}

func runPlay(cmd *cobra.Command, args []string) {
	sumlink.SetConfigPath(flagConfig)

	if cmd.Flags().Changed("level") {
		params, _ := sumlink.ConfiguredParams() //nolint:errcheck // defaults on error, reported by the game
		if _, err := params.Info(flagLevel); err != nil {
			fmt.Fprintf(os.Stderr, "Error: --level: %v\n", err)
			os.Exit(1)
		}
	}

	sumlink.SetDifficultyPreset(flagDifficulty)
	sumlink.SetStartLevel(flagLevel)

	game, err := registry.Create(sumlink.GameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	runErr := tui.Run(game, store, runtimeConfig(terminalSize()), logger)

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
