package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-frogger/internal/core"
	"github.com/vovakirdan/tui-frogger/internal/games/frogger"
	"github.com/vovakirdan/tui-frogger/internal/platform/tui"
	"github.com/vovakirdan/tui-frogger/internal/registry"
)

var playCmd = &cobra.Command{
	Use:   "play [level]",
	Short: "Play a level",
	Long: `Start playing the specified level (default: frogger).

Controls:
  Arrows/WASD/HJKL - Move one cell
  ?                - Toggle help
  Ctrl+S           - Save a screenshot to ~/.frogger/screenshots
  Q/Esc/Ctrl+C     - Quit

Difficulty options scale every obstacle speed:
  easy   - 0.75x
  normal - 1x
  hard   - 1.5x

Examples:
  frogger play
  frogger play frogger_rush
  frogger play --difficulty easy
  frogger play --config ./my-level.yaml --log-file frogger.log`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func runPlay(cmd *cobra.Command, args []string) {
	gameID := levelArg(args)

	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown level %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'frogger list' to see available levels.")
		os.Exit(1)
	}

	if err := applyGameFlags(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// Logs would corrupt the alt screen, so they only go to --log-file.
	logger, closeLog, err := newLogger(io.Discard)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()
	frogger.SetNotifier(frogger.LogNotifier{Logger: logger})

	cfg := core.DefaultConfig()
	cfg.TickRate = flagFPS
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	logger.Info("starting", "level", gameID, "fps", cfg.TickRate, "difficulty", flagDifficulty)
	if err := tui.Run(game, cfg, logger); err != nil {
		closeLog()
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		os.Exit(1)
	}
}
