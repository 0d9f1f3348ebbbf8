package main

import (
	"errors"
	"fmt"
	"io"
	"math/rand"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/straight-to-the-comments/internal/dialogue"
	"github.com/vovakirdan/straight-to-the-comments/internal/engine"
)

var flagShowDialogue bool

var simulateCmd = &cobra.Command{
	Use:   "simulate <style>[,<style>...]",
	Short: "Score a sequence of picks without the UI",
	Long: `Run the scoring engine for the given comment styles, one per round in
platform order, and print each round's breakdown followed by the summary.

Styles: hypebeast, supporter, jokester, roaster, critic, hater.
Give between 1 and 5 styles, comma separated or as separate arguments.

Examples:
  comments simulate hater,hater,hater,hater,hater
  comments simulate supporter supporter supporter hypebeast jokester
  comments simulate critic,roaster --show-dialogue --seed 7`,
	Args: cobra.MinimumNArgs(1),
	Run:  runSimulate,
}

func init() {
	simulateCmd.Flags().BoolVar(&flagShowDialogue, "show-dialogue", false, "Print the exchange picked for each round")
}

func runSimulate(_ *cobra.Command, args []string) {
	picks, err := parsePicks(args)
	if err != nil {
		exitErr("%v", err)
	}

	var sel *dialogue.Selector
	if flagShowDialogue {
		cfg, err := loadConfig()
		if err != nil {
			exitErr("%v", err)
		}
		table, err := loadDialogue(cfg)
		if err != nil {
			exitErr("%v", err)
		}
		seed := flagSeed
		if seed == 0 {
			seed = time.Now().UnixNano()
		}
		sel = dialogue.NewSelector(table, rand.New(rand.NewSource(seed)))
	}

	if _, err := simulate(os.Stdout, picks, sel); err != nil {
		exitErr("%v", err)
	}
}

// parsePicks splits and validates style arguments.
func parsePicks(args []string) ([]engine.StyleKey, error) {
	var picks []engine.StyleKey
	for _, arg := range args {
		for _, raw := range strings.Split(arg, ",") {
			raw = strings.ToLower(strings.TrimSpace(raw))
			if raw == "" {
				continue
			}
			style, err := engine.ParseStyle(raw)
			if err != nil {
				return nil, err
			}
			picks = append(picks, style)
		}
	}

	switch {
	case len(picks) == 0:
		return nil, errors.New("no styles given")
	case len(picks) > engine.Rounds:
		return nil, fmt.Errorf("a session has %d rounds, got %d styles", engine.Rounds, len(picks))
	}
	return picks, nil
}

// simulate plays picks from a fresh session and writes the report to w.
// sel may be nil to skip dialogue.
func simulate(w io.Writer, picks []engine.StyleKey, sel *dialogue.Selector) (engine.State, error) {
	s := engine.NewState()

	fmt.Fprintf(w, "  %-5s  %-12s  %-9s  %6s  %9s  %8s\n", "Round", "Platform", "Style", "Likes", "Footprint", "Toxicity")
	fmt.Fprintf(w, "  %-5s  %-12s  %-9s  %6s  %9s  %8s\n", "-----", "--------", "-----", "-----", "---------", "--------")

	for _, style := range picks {
		next, res, err := engine.PickStyle(s, style)
		if err != nil {
			return s, err
		}
		s = next

		label := string(res.Style)
		if st, ok := engine.LookupStyle(res.Style); ok {
			label = st.Label
		}
		gain := fmt.Sprintf("+%d", res.LikesGained)
		if res.Throttled {
			gain += "*"
		}
		fmt.Fprintf(w, "  %-5d  %-12s  %-9s  %6s  %+9d  %8d\n",
			res.Round+1, res.Platform.Label, label, gain, res.FootprintDelta, res.Toxicity)
		if res.NewlyBlocked {
			fmt.Fprintf(w, "         %s blocked you\n", res.Platform.Label)
		}

		if sel != nil {
			ex, err := sel.Select(res.Platform.Key, style)
			if err != nil {
				return s, err
			}
			lines := ex.Lines()
			fmt.Fprintf(w, "         @you: %s\n         @npc: %s\n         @you: %s\n", lines[0], lines[1], lines[2])
		}
	}

	sum := engine.Summarize(s)
	blocked := "None"
	if labels := sum.BlockedLabels(); len(labels) > 0 {
		blocked = strings.Join(labels, ", ")
	}

	fmt.Fprintln(w)
	fmt.Fprintf(w, "Total Likes:        %d\n", sum.Likes)
	fmt.Fprintf(w, "Platforms blocked:  %d (%s)\n", len(sum.Blocked), blocked)
	fmt.Fprintf(w, "Digital Footprint:  %d\n", sum.Footprint)
	if !s.Finished() {
		fmt.Fprintf(w, "Session:            %d of %d rounds played\n", len(s.History()), engine.Rounds)
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Platform Consequences:")
	for _, c := range sum.Consequences {
		fmt.Fprintf(w, "  %-12s  %s\n", c.Platform.Label, c.Result)
	}
	fmt.Fprintln(w)
	fmt.Fprintf(w, "Final Rating: %s\n", sum.Rating)

	return s, nil
}
