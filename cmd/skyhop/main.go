// skyhop is an endless vertical platformer for the terminal and the desktop.
//
// Usage:
//
//	skyhop play              - Play in the terminal
//	skyhop play --gui        - Play in a window
//	skyhop list              - List available games
//	skyhop config            - Print the effective configuration
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible gameplay
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import games to register them
	_ "github.com/vovakirdan/skyhop/internal/games/skyhop"
)

var (
	// Global flags
	flagFPS  int
	flagSeed int64
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "skyhop",
	Short: "Skyhop - bounce up an endless tower of platforms",
	Long: `Skyhop is an endless vertical platformer. Bounce from platform to
platform, climb as high as you can and don't fall off the bottom.

Available commands:
  play     - Play the game in the terminal or in a window
  list     - Show all available games
  config   - Print the effective configuration

Examples:
  skyhop play
  skyhop play --gui
  skyhop play --difficulty hard --seed 42
  skyhop config > ~/.skyhop/configs/skyhop.yaml`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(configCmd)
}
