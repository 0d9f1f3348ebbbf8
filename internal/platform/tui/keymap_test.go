package tui

import (
	"testing"

	"github.com/charmbracelet/bubbles/key"

	"github.com/vovakirdan/straight-to-the-comments/internal/engine"
)

func TestMoveCursor(t *testing.T) {
	tests := []struct {
		name           string
		cursor, dx, dy int
		want           int
	}{
		{"right", 0, 1, 0, 1},
		{"right at row end", 2, 1, 0, 2},
		{"left at row start", 3, -1, 0, 3},
		{"left off grid", 0, -1, 0, 0},
		{"down", 1, 0, 1, 4},
		{"down off grid", 4, 0, 1, 4},
		{"up", 5, 0, -1, 2},
		{"up off grid", 2, 0, -1, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := moveCursor(tt.cursor, tt.dx, tt.dy, 6); got != tt.want {
				t.Errorf("moveCursor(%d, %d, %d) = %d, want %d", tt.cursor, tt.dx, tt.dy, got, tt.want)
			}
		})
	}
}

func TestStyleFor(t *testing.T) {
	keys := DefaultGameKeyMap()
	styles := engine.Styles()

	for i, st := range styles {
		got, ok := keys.styleFor(keyPress(string(rune('1' + i))))
		if !ok || got != st.Key {
			t.Errorf("key %d = %q, %v; want %q", i+1, got, ok, st.Key)
		}
	}

	if _, ok := keys.styleFor(keyPress("7")); ok {
		t.Error("key 7 should not map to a style")
	}
}

func TestSetMode(t *testing.T) {
	keys := DefaultGameKeyMap()
	before := keys.Styles

	keys.setMode(false, true)
	if keys.Select.Enabled() || keys.Styles[0].Enabled() {
		t.Error("pick bindings should be disabled on the results screen")
	}
	if !keys.Replay.Enabled() {
		t.Error("replay should be enabled on the results screen")
	}
	if !before[0].Enabled() {
		t.Error("setMode should not touch the previous binding slice")
	}

	keys.setMode(true, false)
	if !keys.Select.Enabled() || keys.Replay.Enabled() {
		t.Error("bindings not restored for play")
	}
	if !key.Matches(keyPress("q"), keys.Quit) {
		t.Error("quit should always match")
	}
}
