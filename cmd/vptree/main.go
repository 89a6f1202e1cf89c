// Command vptree prints the computed geometry of a TOML viewport layout.
package main

import (
	"flag"
	"fmt"
	"log"
	"maps"
	"slices"

	"github.com/gogpu/viewport/config"
)

func main() {
	var (
		layout = flag.String("layout", "layout.toml", "layout file")
		width  = flag.Int("width", 0, "window width override")
		height = flag.Int("height", 0, "window height override")
	)
	flag.Parse()

	cfg, err := config.Load(*layout)
	if err != nil {
		log.Fatalf("Failed to load layout: %v", err)
	}
	if *width > 0 {
		cfg.Window.Width = *width
	}
	if *height > 0 {
		cfg.Window.Height = *height
	}

	tree, err := cfg.Build()
	if err != nil {
		log.Fatalf("Failed to build layout: %v", err)
	}

	root, err := tree.Registry.Get(tree.Root)
	if err != nil {
		log.Fatalf("Failed to resolve root: %v", err)
	}

	if cfg.Window.Title != "" {
		fmt.Printf("%s (%dx%d)\n\n", cfg.Window.Title, cfg.Window.Width, cfg.Window.Height)
	}
	fmt.Print(root)

	if len(tree.Named) > 0 {
		fmt.Println()
		for _, name := range slices.Sorted(maps.Keys(tree.Named)) {
			v, err := tree.Registry.Get(tree.Named[name])
			if err != nil {
				continue
			}
			geom := v.Geometry()
			fmt.Printf("%-12s frame %-16s clip %s\n", name, geom.Frame, geom.Clip)
		}
	}
}
