// sumlink is a terminal number puzzle: drag across neighbouring cells so
// their values add up to the target sums, level after level.
//
// Usage:
//
//	sumlink play             - Play from the configured start level
//	sumlink menu             - Start screen with level picker and scores
//	sumlink serve            - Start SSH server for remote play
//	sumlink scores           - Show high scores
//	sumlink levels           - Show grid size and targets per level
//	sumlink list             - List registered games
//
// Global flags:
//
//	--fps <rate>       - Set tick rate (default: 30)
//	--seed <value>     - Set RNG seed for reproducible boards
//	--db <path>        - Set database path (default: ~/.sumlink/scores.db)
//	--log-file <path>  - Write logs to a file (the TUI owns the terminal)
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/sumlink/internal/core"
	"github.com/vovakirdan/sumlink/internal/games/sumlink"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagLogFile  string
	flagLogLevel string

	// logger is set up by the root command before any subcommand runs.
	logger  = log.New(io.Discard)
	logFile *os.File
)

func main() {
	err := rootCmd.Execute()
	if logFile != nil {
		logFile.Close()
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "sumlink",
	Short: "Sum Link - drag to add up numbers in your terminal",
	Long: `Sum Link is a terminal number puzzle. Drag the mouse across
neighbouring cells (diagonals count) so their values add up to one of the
target sums. Match every target to clear the level; each level grows the
grid and raises the targets.

Available commands:
  play     - Play a run directly
  menu     - Start screen with level picker and high scores
  serve    - Start SSH server for remote play
  scores   - View high scores
  levels   - Show the level progression
  list     - Show registered games

Examples:
  sumlink play
  sumlink play --level 5
  sumlink menu
  sumlink serve --ssh :2222
  sumlink scores`,
	PersistentPreRunE: setupLogging,
	SilenceUsage:      true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 30, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.sumlink/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(levelsCmd)
}

// setupLogging opens the log file, if any, and hands the logger to the game.
func setupLogging(_ *cobra.Command, _ []string) error {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return fmt.Errorf("invalid --log-level: %w", err)
	}

	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return fmt.Errorf("cannot open log file: %w", err)
		}
		logFile = f
		logger = log.NewWithOptions(f, log.Options{
			ReportTimestamp: true,
			Prefix:          "sumlink",
			Level:           level,
		})
	}

	sumlink.SetLogger(logger)
	return nil
}

// runtimeConfig builds the runtime config from global flags.
func runtimeConfig(width, height int) core.RuntimeConfig {
	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}
