package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/n3ptun3-dev/3D-Snake-sub000/internal/platform/tui"
	"github.com/n3ptun3-dev/3D-Snake-sub000/internal/storage"
)

var flagScoresTUI bool

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show best runs",
	Long: `Display the top 10 runs, or browse the full run history
interactively with --tui.

Examples:
  snake3d scores
  snake3d scores --tui`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagScoresTUI, "tui", false, "Browse runs in an interactive table")
}

func runScores(cmd *cobra.Command, args []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening runs database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagScoresTUI {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width = w
			height = h
		}
		if _, err := tui.RunScoreboard(store, width, height); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	runs, err := store.TopRuns(10)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving runs: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Best Runs")
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Play 'snake3d play' to set the first high score!")
		return
	}

	fmt.Printf("  %-4s  %-8s  %-6s  %-7s  %-7s  %-9s  %s\n",
		"Rank", "Score", "Level", "Apples", "Length", "Time", "Date")
	fmt.Printf("  %-4s  %-8s  %-6s  %-7s  %-7s  %-9s  %s\n",
		"----", "-----", "-----", "------", "------", "----", "----")

	for i, r := range runs {
		dur := (time.Duration(r.DurationMS) * time.Millisecond).Truncate(time.Second)
		fmt.Printf("  %-4d  %-8d  %-6d  %-7d  %-7d  %-9s  %s\n",
			i+1, r.Score, r.Level, r.Apples, r.MaxLength,
			dur, r.CreatedAt.Format("2006-01-02 15:04"))
	}

	fmt.Println()
	if highScore, err := store.HighScore(); err == nil {
		fmt.Printf("Best: %d\n", highScore)
	}
}
