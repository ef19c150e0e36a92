package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/n3ptun3-dev/3D-Snake-sub000/internal/storage"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show career statistics",
	Long: `Display aggregated statistics across every recorded run.

Examples:
  snake3d stats`,
	Args: cobra.NoArgs,
	Run:  runStats,
}

func runStats(cmd *cobra.Command, args []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening runs database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	stats, err := store.GetCareerStats()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving stats: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Career Statistics")
	fmt.Println()

	if stats.Runs == 0 {
		fmt.Println("No runs recorded yet.")
		return
	}

	playTime := (time.Duration(stats.TotalPlayMS) * time.Millisecond).Truncate(time.Second)
	fmt.Printf("  Runs played:        %d\n", stats.Runs)
	fmt.Printf("  High score:         %d\n", stats.HighScore)
	fmt.Printf("  Average score:      %.1f\n", stats.AvgScore)
	fmt.Printf("  Max level:          %d\n", stats.MaxLevel)
	fmt.Printf("  Best length:        %d\n", stats.BestLength)
	fmt.Printf("  Top speed:          %.1f cells/s\n", stats.TopSpeed)
	fmt.Printf("  Apples eaten:       %d\n", stats.TotalApples)
	fmt.Printf("  Portals entered:    %d\n", stats.PortalsEntered)
	fmt.Printf("  Passages completed: %d\n", stats.PassagesCompleted)
	fmt.Printf("  Time played:        %s\n", playTime)
	if !stats.LastPlayed.IsZero() {
		fmt.Printf("  Last played:        %s\n", stats.LastPlayed.Format("2006-01-02 15:04"))
	}
}
