package main

import (
	"fmt"
	"io"
	"os"
	"os/user"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/straight-to-the-comments/internal/core"
	"github.com/vovakirdan/straight-to-the-comments/internal/platform/tui"
	"github.com/vovakirdan/straight-to-the-comments/internal/storage"
)

var (
	flagLogFile string
	flagDebug   bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a session",
	Long: `Start a five-round session in the terminal.

Controls:
  1-6          - Reply with a comment style
  Arrows/hjkl  - Move between reply buttons
  Enter/Space  - Reply with the highlighted style
  R            - Replay (on the results screen)
  Q/Ctrl+C     - Quit

Finished sessions are added to the results history (see 'comments history').

Examples:
  comments play
  comments play --pace 0
  comments play --seed 42 --log-file ./comments.log --debug`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file (default: no logs)")
	playCmd.Flags().BoolVar(&flagDebug, "debug", false, "Log every round resolution")
}

func runPlay(cmd *cobra.Command, args []string) {
	cfg, err := loadConfig()
	if err != nil {
		exitErr("%v", err)
	}
	table, err := loadDialogue(cfg)
	if err != nil {
		exitErr("%v", err)
	}

	// The UI owns the terminal, so logs only go to a file.
	var logOut io.Writer = io.Discard
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			exitErr("cannot open log file: %v", err)
		}
		defer f.Close()
		logOut = f
	}
	logger := log.NewWithOptions(logOut, log.Options{
		ReportTimestamp: true,
		Prefix:          "comments",
	})
	if flagDebug {
		logger.SetLevel(log.DebugLevel)
	}

	rcfg := core.DefaultConfig()
	rcfg.Seed = flagSeed
	rcfg.Pace = cfg.Pace
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		rcfg.ScreenW = w
		rcfg.ScreenH = h
	}

	// Open results storage
	store, err := storage.Open(cfg.DBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open results database: %v\n", err)
		logger.Warn("could not open results database", "error", err)
		// Continue without storage - the session still works
		store = nil
	}

	runErr := tui.Run(table, store, rcfg, localPlayer(), logger)

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		exitErr("running session: %v", runErr)
	}
}

// localPlayer names the player in the results history.
func localPlayer() string {
	if u, err := user.Current(); err == nil && u.Username != "" {
		return u.Username
	}
	return "local"
}
