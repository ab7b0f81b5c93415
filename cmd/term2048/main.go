// term2048 is the 2048 sliding-tile puzzle for the terminal.
//
// Usage:
//
//	term2048                 - Play in the terminal
//	term2048 --plain         - Play with a plain text renderer on a raw terminal
//	term2048 serve           - Start SSH server for remote play
//	term2048 config          - Print the effective configuration
//
// Global flags:
//
//	--config <path> - Use a specific config YAML
//	--size <n>      - Board side length (default: 4)
//	--target <n>    - Winning tile value (default: 2048)
//	--seed <value>  - Set RNG seed for reproducible gameplay
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/term2048/internal/config"
)

var (
	// Global flags
	flagConfig string
	flagSize   int
	flagTarget int
	flagSeed   int64
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "term2048",
	Short: "2048 in your terminal",
	Long: `term2048 is the 2048 sliding-tile puzzle for the terminal.

Slide the board with WASD or the arrow keys. Equal tiles merge when they
collide and their sum is added to the score. Reach the target tile to win;
the game is over when no move can change the board.

Controls:
  W/A/S/D, arrows - Slide up/left/down/right
  R               - Restart (keeps the highscore)
  Q/Ctrl+C        - Exit
  Ctrl+S          - Save a text screenshot (TUI only)

Examples:
  term2048
  term2048 --size 5 --target 1024
  term2048 --plain --seed 42
  term2048 serve --ssh :2222
  term2048 config > ~/.term2048/config.yaml`,
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE:         runPlay,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().IntVar(&flagSize, "size", config.Default().Size, "Board side length")
	rootCmd.PersistentFlags().IntVar(&flagTarget, "target", config.Default().Target, "Winning tile value")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(configCmd)
}

// loadConfig resolves the config file and applies flags the user set.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}

	flags := cmd.Flags()
	if flags.Changed("size") {
		cfg.Size = flagSize
	}
	if flags.Changed("target") {
		cfg.Target = flagTarget
	}
	if flags.Changed("seed") {
		cfg.Seed = flagSeed
	}

	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("flags: %w", err)
	}
	return cfg, nil
}
