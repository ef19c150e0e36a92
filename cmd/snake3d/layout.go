package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/n3ptun3-dev/3D-Snake-sub000/internal/layout"
)

var layoutCmd = &cobra.Command{
	Use:   "layout",
	Short: "Print the generated city for a seed",
	Long: `Generate a city layout and print it as an ASCII map.

Legend:
  #  wall            R/B  portals
  S  street passage  a    alcove passage
  =  billboard base  o    billboard chamber

Examples:
  snake3d layout --seed 42`,
	Args: cobra.NoArgs,
	Run:  runLayout,
}

func runLayout(cmd *cobra.Command, args []string) {
	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	l := layout.Generate(seed)
	fmt.Printf("seed: %d\n\n", seed)
	fmt.Println(l.Sketch())
	fmt.Printf("street: %s wall, doors %d and %d\n", l.Street.Wall, l.Street.Entry, l.Street.Exit)
	fmt.Printf("alcove: %s wall, doors %d and %d\n", l.Alcove.Wall, l.Alcove.Entry, l.Alcove.Exit)
	fmt.Printf("billboard: %s wall, offset %d\n", l.Billboard.Wall, l.Billboard.Offset)
	fmt.Printf("buildings: %d, banners: %d, flyers: %d\n",
		len(l.Buildings), len(l.Banners), len(l.Flyers))
}
