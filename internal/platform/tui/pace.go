// Package tui provides the Bubble Tea front end for Straight to the Comments.
// It renders sessions locally or over SSH and feeds style picks to the engine.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// advanceMsg ends the pause after a pick. seq ties it to the pick that
// started it so a pause from a discarded session is ignored.
type advanceMsg struct {
	seq int
}

// paceCmd returns a command that delivers advanceMsg after the pacing delay.
func paceCmd(delay time.Duration, seq int) tea.Cmd {
	if delay <= 0 {
		return func() tea.Msg { return advanceMsg{seq: seq} }
	}
	return tea.Tick(delay, func(time.Time) tea.Msg {
		return advanceMsg{seq: seq}
	})
}
