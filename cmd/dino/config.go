package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-dino/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the default configuration",
	Long: `Prints the built-in configuration as YAML. Save it to
~/.dino/configs/dino.yaml or ./configs/dino.yaml and edit it to change
the defaults, or pass a copy with --config.`,
	Args: cobra.NoArgs,
	Run: func(_ *cobra.Command, _ []string) {
		if _, err := os.Stdout.Write(config.DefaultYAML()); err != nil {
			logger.Fatal("cannot write config", "error", err)
		}
	},
}
