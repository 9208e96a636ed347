package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-frogger/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config [level]",
	Short: "Print the effective level config",
	Long: `Resolve a level the same way 'play' does and print it as YAML.

The search order is --config, ~/.frogger/levels/<level>.yaml,
./configs/<level>.yaml and finally the built-in level. The difficulty
preset is applied to the printed speeds.

Examples:
  frogger config
  frogger config frogger_walls > ~/.frogger/levels/frogger_walls.yaml
  frogger config --difficulty hard`,
	Args: cobra.MaximumNArgs(1),
	Run:  runConfig,
}

func runConfig(_ *cobra.Command, args []string) {
	preset, err := config.ParseDifficulty(flagDifficulty)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	cfg, err := config.LoadFrogger(flagConfig, levelArg(args))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	config.ApplyFroggerPreset(&cfg, preset)

	data, err := config.Marshal(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Print(string(data))
}
