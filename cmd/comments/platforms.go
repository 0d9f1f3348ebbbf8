package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/straight-to-the-comments/internal/engine"
)

var platformsCmd = &cobra.Command{
	Use:   "platforms",
	Short: "Show platforms, comment styles and scoring",
	Long:  `Shows the platforms in round order and the scoring table for every comment style.`,
	Args:  cobra.NoArgs,
	Run:   runPlatforms,
}

func runPlatforms(_ *cobra.Command, _ []string) {
	fmt.Println("Platforms (one per round):")
	fmt.Println()
	fmt.Printf("  %-5s  %-10s  %-12s  %-10s  %s\n", "Round", "Key", "Label", "Layout", "Accent")
	fmt.Printf("  %-5s  %-10s  %-12s  %-10s  %s\n", "-----", "---", "-----", "------", "------")
	for i, p := range engine.Platforms() {
		layout := "landscape"
		if p.IsPortrait() {
			layout = "portrait"
		}
		fmt.Printf("  %-5d  %-10s  %-12s  %-10s  %s\n", i+1, p.Key, p.Label, layout, p.Accent)
	}

	fmt.Println()
	fmt.Println("Comment styles:")
	fmt.Println()
	fmt.Printf("  %-10s  %-10s  %10s  %10s  %6s\n", "Key", "Label", "Base likes", "Footprint", "Decay")
	fmt.Printf("  %-10s  %-10s  %10s  %10s  %6s\n", "---", "-----", "----------", "---------", "-----")
	for _, st := range engine.Styles() {
		sc, err := engine.ScoreFor(st.Key)
		if err != nil {
			exitErr("%v", err)
		}
		fmt.Printf("  %-10s  %-10s  %10d  %+10d  %6d\n", st.Key, st.Label, sc.BaseLikes, sc.FootprintDelta, sc.DecayPerPastPick)
	}

	fmt.Println()
	fmt.Println("Run 'comments play' to start a session.")
}
