// frogger is a terminal crossing game: hop across the grid and dodge the
// obstacles scrolling along their rows.
//
// Usage:
//
//	frogger list             - List available levels
//	frogger play [level]     - Play a level (default: frogger)
//	frogger sim [level]      - Run a level headless and print the final state
//	frogger config [level]   - Print the effective level config as YAML
//	frogger serve            - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>            - Set tick rate (default: 60)
//	--config <path>         - Custom level YAML
//	--difficulty <preset>   - Obstacle speed preset: easy, normal, hard
//	--log-level <level>     - debug, info, warn, error (default: info)
//	--log-file <path>       - Write logs to a file
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-frogger/internal/config"
	"github.com/vovakirdan/tui-frogger/internal/games/frogger"
)

var (
	// Global flags
	flagFPS        int
	flagConfig     string
	flagDifficulty string
	flagLogLevel   string
	flagLogFile    string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "frogger",
	Short: "Frogger - cross the road in your terminal",
	Long: `Frogger is a grid crossing game for the terminal. Move one cell per
key press and avoid the obstacles scrolling along their rows. Any contact
sends you back to the start.

Available commands:
  list     - Show all available levels
  play     - Play a level
  sim      - Run a level without a terminal
  config   - Print the effective level config
  serve    - Start SSH server for remote play

Examples:
  frogger list
  frogger play
  frogger play frogger_walls --difficulty hard
  frogger sim --seconds 4 --moves up,,,left
  frogger serve --ssh :2222`,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom level YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(serveCmd)
}

// newLogger builds the CLI logger. Without --log-file it writes to fallback.
// The returned close func must be called when done.
func newLogger(fallback io.Writer) (*log.Logger, func(), error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid --log-level: %w", err)
	}

	out := fallback
	closeFn := func() {}
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		out = f
		closeFn = func() { f.Close() }
	}

	logger := log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
		Level:           level,
		Prefix:          "frogger",
	})
	return logger, closeFn, nil
}

// applyGameFlags pushes --config and --difficulty into the game package.
func applyGameFlags() error {
	preset, err := config.ParseDifficulty(flagDifficulty)
	if err != nil {
		return err
	}
	frogger.SetConfigPath(flagConfig)
	frogger.SetDifficultyPreset(preset)
	return nil
}

// levelArg returns the optional level argument or the default level.
func levelArg(args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	return config.DefaultLevel
}
