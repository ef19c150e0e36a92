// snake3d is a terminal snake game set in a procedurally generated city.
//
// Usage:
//
//	snake3d play             - Play in the terminal
//	snake3d serve            - Start SSH server for remote play
//	snake3d scores           - Show best runs
//	snake3d stats            - Show career statistics
//	snake3d layout           - Print the generated city for a seed
//
// Global flags:
//
//	--fps <rate>    - Set frame rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible rounds
//	--db <path>     - Set database path (default: ~/.snake3d/runs.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "snake3d",
	Short: "Snake City - a terminal snake game in a procedural city",
	Long: `Snake City is a terminal snake game played inside a walled city.
Every round the city is rebuilt from a seed: passages through the walls,
teleport portals, a billboard and a skyline of buildings.

Available commands:
  play     - Play in the terminal
  serve    - Start SSH server for remote play
  scores   - View best and recent runs
  stats    - View career statistics
  layout   - Print the generated city for a seed

Examples:
  snake3d play
  snake3d play --seed 42
  snake3d serve --ssh :2222
  snake3d scores
  snake3d layout --seed 42`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Frame rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.snake3d/runs.db", "Path to runs database")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(layoutCmd)
}
