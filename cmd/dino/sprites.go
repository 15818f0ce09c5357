package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-dino/internal/assets"
	"github.com/vovakirdan/tui-dino/internal/sprite"
)

var flagExport string

var spritesCmd = &cobra.Command{
	Use:   "sprites",
	Short: "List the sprite atlas",
	Long: `Shows every sprite in the atlas with its rectangle in atlas pixels and
its size in game pixels.

With --export, writes the built-in atlas as a PNG. The file can be edited
and used through the assets.atlas config key.

Examples:
  dino sprites
  dino sprites --export ./atlas.png`,
	Args: cobra.NoArgs,
	Run:  runSprites,
}

func init() {
	spritesCmd.Flags().StringVar(&flagExport, "export", "", "Write the built-in atlas PNG to this path")
}

func runSprites(_ *cobra.Command, _ []string) {
	if flagExport != "" {
		exportAtlas(flagExport)
		return
	}

	names := sprite.Default.Names()

	maxNameLen := 4 // "Name" header
	for _, n := range names {
		if len(n) > maxNameLen {
			maxNameLen = len(n)
		}
	}

	fmt.Printf("  %-*s  %-20s  %s\n", maxNameLen, "Name", "Atlas (x,y wxh)", "Size")
	fmt.Printf("  %-*s  %-20s  %s\n", maxNameLen, "----", "---------------", "----")
	for _, n := range names {
		r := sprite.Default.MustLookup(n)
		atlas := fmt.Sprintf("%d,%d %dx%d", r.X, r.Y, r.W, r.H)
		fmt.Printf("  %-*s  %-20s  %gx%g\n", maxNameLen, n, atlas, r.LogicalW(), r.LogicalH())
	}

	w, h := sprite.Default.Bounds()
	fmt.Println()
	fmt.Printf("Atlas bounds: %dx%d at %dx density\n", w, h, sprite.PixelRatio)
}

func exportAtlas(path string) {
	f, err := os.Create(path)
	if err != nil {
		logger.Fatal("cannot create file", "path", path, "error", err)
	}
	if err := assets.WriteAtlasPNG(f, sprite.Default); err != nil {
		f.Close()
		logger.Fatal("cannot write atlas", "path", path, "error", err)
	}
	if err := f.Close(); err != nil {
		logger.Fatal("cannot write atlas", "path", path, "error", err)
	}
	logger.Info("atlas exported", "path", path)
}
