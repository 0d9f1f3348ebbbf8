// comments is a terminal game about chasing likes in the comment section.
//
// Usage:
//
//	comments play                        - Play a session in the terminal
//	comments serve                       - Start SSH server for remote play
//	comments simulate <style,...>        - Score a sequence of picks headlessly
//	comments history                     - Show finished sessions
//	comments platforms                   - Show platforms, styles and scoring
//	comments config                      - Print the effective configuration
//
// Global flags:
//
//	--config <path>    - Config file (default search: ~/.comments/config.yaml, ./configs/comments.yaml)
//	--db <path>        - Results database (default: ~/.comments/results.db)
//	--dialogue <path>  - Dialogue table YAML override
//	--seed <value>     - RNG seed for dialogue variants
//	--pace <duration>  - Delay before the next round (default: 900ms)
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/straight-to-the-comments/internal/config"
	"github.com/vovakirdan/straight-to-the-comments/internal/dialogue"
)

var (
	// Global flags
	flagConfig   string
	flagDBPath   string
	flagDialogue string
	flagSeed     int64
	flagPace     time.Duration
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "comments",
	Short: "Straight to the Comments - chase the likes, or do you?",
	Long: `Straight to the Comments is a five-round terminal game. Each round puts
you in the comment section of a different platform and you pick how to reply.
Likes are visible. Your reputation is not.

Available commands:
  play       - Play a session in your terminal
  serve      - Start SSH server for remote play
  simulate   - Score a sequence of picks without the UI
  history    - View finished sessions
  platforms  - Show platforms, comment styles and scoring
  config     - Print the effective configuration

Examples:
  comments play
  comments serve --ssh :2222
  comments simulate hater,hater,supporter,critic,jokester
  comments history --top`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to results database (default from config)")
	rootCmd.PersistentFlags().StringVar(&flagDialogue, "dialogue", "", "Path to dialogue table YAML (default: built-in)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().DurationVar(&flagPace, "pace", 0, "Delay before the next round, 0 for none (default from config)")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(simulateCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(platformsCmd)
	rootCmd.AddCommand(configCmd)
}

// loadConfig reads the config file and applies the global flag overrides.
func loadConfig() (config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}
	var pace *time.Duration
	if rootCmd.PersistentFlags().Changed("pace") {
		pace = &flagPace
	}
	cfg.Apply(config.Overrides{
		Pace:         pace,
		DBPath:       flagDBPath,
		DialoguePath: flagDialogue,
	})
	return cfg, nil
}

// loadDialogue reads the dialogue table named by the config.
func loadDialogue(cfg config.Config) (dialogue.Table, error) {
	path := cfg.DialoguePath
	if path != "" {
		expanded, err := config.ExpandHome(path)
		if err != nil {
			return nil, err
		}
		path = expanded
	}
	return dialogue.Load(path)
}

// exitErr prints an error and exits, matching the other commands' output.
func exitErr(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}
