package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/straight-to-the-comments/internal/engine"
)

// styleColumns is the width of the comment button grid.
const styleColumns = 3

// GameKeyMap defines key bindings for a session.
type GameKeyMap struct {
	Styles []key.Binding // one per style, in display order
	Up     key.Binding
	Down   key.Binding
	Left   key.Binding
	Right  key.Binding
	Select key.Binding
	Replay key.Binding
	Quit   key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k GameKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.pickHint(), k.Select, k.Replay, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k GameKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		k.Styles,
		{k.Up, k.Down, k.Left, k.Right, k.Select},
		{k.Replay, k.Quit},
	}
}

// pickHint collapses the numbered style keys into one help entry.
func (k GameKeyMap) pickHint() key.Binding {
	var keys []string
	for _, b := range k.Styles {
		if b.Enabled() {
			keys = append(keys, b.Keys()...)
		}
	}
	return key.NewBinding(
		key.WithKeys(keys...),
		key.WithHelp(fmt.Sprintf("1-%d", len(k.Styles)), "reply"),
	)
}

// DefaultGameKeyMap returns default key bindings.
func DefaultGameKeyMap() GameKeyMap {
	styles := engine.Styles()
	bindings := make([]key.Binding, len(styles))
	for i, st := range styles {
		n := string(rune('1' + i))
		bindings[i] = key.NewBinding(
			key.WithKeys(n),
			key.WithHelp(n, st.Label),
		)
	}

	return GameKeyMap{
		Styles: bindings,
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "move up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "move down"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("left/h", "move left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("right/l", "move right"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "reply"),
		),
		Replay: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "replay"),
			key.WithDisabled(),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// setMode enables the bindings that apply to the current screen: picks
// while a round is interactive, replay once the results are shown.
func (k *GameKeyMap) setMode(interactive, results bool) {
	styles := make([]key.Binding, len(k.Styles))
	copy(styles, k.Styles)
	for i := range styles {
		styles[i].SetEnabled(interactive)
	}
	k.Styles = styles
	k.Up.SetEnabled(interactive)
	k.Down.SetEnabled(interactive)
	k.Left.SetEnabled(interactive)
	k.Right.SetEnabled(interactive)
	k.Select.SetEnabled(interactive)
	k.Replay.SetEnabled(results)
}

// styleFor returns the style bound to a numbered key, if any.
func (k GameKeyMap) styleFor(msg tea.KeyMsg) (engine.StyleKey, bool) {
	styles := engine.Styles()
	for i, b := range k.Styles {
		if i < len(styles) && key.Matches(msg, b) {
			return styles[i].Key, true
		}
	}
	return "", false
}

// moveCursor returns the button index after a grid move, clamped to the
// grid.
func moveCursor(cursor, dx, dy, count int) int {
	next := cursor + dx + dy*styleColumns
	if dx != 0 && next/styleColumns != cursor/styleColumns {
		return cursor
	}
	if next < 0 || next >= count {
		return cursor
	}
	return next
}
