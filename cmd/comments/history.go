package main

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/straight-to-the-comments/internal/platform/tui"
	"github.com/vovakirdan/straight-to-the-comments/internal/storage"
)

var (
	flagHistoryLimit int
	flagHistoryTop   bool
	flagHistoryStats bool
	flagHistoryTUI   bool
	flagHistoryClear bool
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show finished sessions",
	Long: `Display finished sessions from the results history, most recent first.

Examples:
  comments history
  comments history --top --limit 5
  comments history --stats
  comments history --browse`,
	Args: cobra.NoArgs,
	Run:  runHistory,
}

func init() {
	historyCmd.Flags().IntVar(&flagHistoryLimit, "limit", 10, "Number of sessions to show")
	historyCmd.Flags().BoolVar(&flagHistoryTop, "top", false, "Rank by likes instead of recency")
	historyCmd.Flags().BoolVar(&flagHistoryStats, "stats", false, "Show aggregate statistics")
	historyCmd.Flags().BoolVar(&flagHistoryTUI, "browse", false, "Browse results in an interactive table")
	historyCmd.Flags().BoolVar(&flagHistoryClear, "clear", false, "Delete all stored results")
}

func runHistory(_ *cobra.Command, _ []string) {
	cfg, err := loadConfig()
	if err != nil {
		exitErr("%v", err)
	}

	store, err := storage.Open(cfg.DBPath)
	if err != nil {
		exitErr("opening results database: %v", err)
	}
	defer store.Close()

	switch {
	case flagHistoryClear:
		if err := store.ClearResults(); err != nil {
			exitErr("%v", err)
		}
		fmt.Println("Results history cleared.")
	case flagHistoryTUI:
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width, height = w, h
		}
		if err := tui.RunHistory(store, width, height, flagHistoryTop); err != nil {
			exitErr("%v", err)
		}
	case flagHistoryStats:
		printStats(store)
	default:
		printResults(store)
	}
}

func printResults(store *storage.Store) {
	var (
		results []storage.Result
		err     error
		title   = "Recent Sessions"
	)
	if flagHistoryTop {
		title = "Top Sessions"
		results, err = store.TopResults(flagHistoryLimit)
	} else {
		results, err = store.RecentResults(flagHistoryLimit)
	}
	if err != nil {
		exitErr("retrieving results: %v", err)
	}

	fmt.Println(title)
	fmt.Println()

	if len(results) == 0 {
		fmt.Println("No sessions recorded yet.")
		fmt.Println()
		fmt.Println("Play 'comments play' to record the first one!")
		return
	}

	fmt.Printf("  %-4s  %-12s  %8s  %9s  %-18s  %-7s  %s\n", "#", "Player", "Likes", "Footprint", "Rating", "Blocked", "Date")
	fmt.Printf("  %-4s  %-12s  %8s  %9s  %-18s  %-7s  %s\n", "-", "------", "-----", "---------", "------", "-------", "----")
	for i, r := range results {
		fmt.Printf("  %-4d  %-12s  %8s  %9d  %-18s  %-7d  %s\n",
			i+1, r.Player, humanize.Comma(int64(r.Likes)), r.Footprint, r.Rating,
			len(r.Blocked), r.CreatedAt.Format("2006-01-02 15:04"))
	}
}

func printStats(store *storage.Store) {
	stats, err := store.GetStats()
	if err != nil {
		exitErr("%v", err)
	}

	fmt.Println("Results Statistics")
	fmt.Println()
	fmt.Printf("  Sessions:       %d\n", stats.Sessions)
	if stats.Sessions == 0 {
		return
	}
	fmt.Printf("  Best likes:     %s\n", humanize.Comma(int64(stats.BestLikes)))
	fmt.Printf("  Average likes:  %.1f\n", stats.AvgLikes)
	fmt.Printf("  Avg footprint:  %.1f\n", stats.AvgFootprint)
	fmt.Printf("  Last played:    %s\n", humanize.Time(stats.LastPlayed))
	fmt.Println()
	fmt.Println("  Ratings:")

	ratings := make([]string, 0, len(stats.Ratings))
	for r := range stats.Ratings {
		ratings = append(ratings, r)
	}
	sort.Strings(ratings)
	for _, r := range ratings {
		n := stats.Ratings[r]
		fmt.Printf("    %-18s  %3d  %s\n", r, n, strings.Repeat("#", n*20/stats.Sessions))
	}
}
