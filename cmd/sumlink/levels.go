package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/sumlink/internal/games/sumlink"
)

var (
	flagLevelsCount  int
	flagLevelsConfig string
)

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "Show the level progression",
	Long: `Print grid size, target count and target range for each level.
Boards are random, but these numbers are fixed by the config.

Examples:
  sumlink levels
  sumlink levels --count 20
  sumlink levels --config ./my-sumlink.yaml`,
	Args: cobra.NoArgs,
	Run:  runLevels,
}

func init() {
	levelsCmd.Flags().IntVarP(&flagLevelsCount, "count", "n", 12, "Number of levels to show")
	levelsCmd.Flags().StringVar(&flagLevelsConfig, "config", "", "Path to custom config YAML")
}

func runLevels(_ *cobra.Command, _ []string) {
	if flagLevelsCount < 1 {
		fmt.Fprintf(os.Stderr, "Error: --count must be at least 1, got %d\n", flagLevelsCount)
		os.Exit(1)
	}

	sumlink.SetConfigPath(flagLevelsConfig)
	params, err := sumlink.ConfiguredParams()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: using default config: %v\n", err)
	}
	infos := params.Progression(flagLevelsCount)

	fmt.Printf("  %-5s  %-5s  %-7s  %s\n", "Level", "Grid", "Targets", "Range")
	fmt.Printf("  %-5s  %-5s  %-7s  %s\n", "-----", "----", "-------", "-----")
	for _, info := range infos {
		grid := fmt.Sprintf("%dx%d", info.Size, info.Size)
		fmt.Printf("  %-5d  %-5s  %-7d  %d-%d\n", info.Level, grid, info.TargetCount, info.TargetMin, info.TargetMax)
	}
}
