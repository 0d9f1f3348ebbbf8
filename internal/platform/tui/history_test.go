package tui

import (
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/straight-to-the-comments/internal/storage"
)

func TestHistoryModel(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "results.db"))
	if err != nil {
		t.Fatalf("Open() error: %v", err)
	}
	defer store.Close()

	for _, r := range []storage.Result{
		{SessionID: "a", Player: "alice", Likes: 12, Footprint: 40, Rating: "Positive Influence"},
		{SessionID: "b", Player: "bob", Likes: 1200, Footprint: -80, Rating: "Shadow Reputation", Blocked: []string{"discord"}},
	} {
		if _, err := store.SaveResult(r); err != nil {
			t.Fatalf("SaveResult() error: %v", err)
		}
	}

	m := NewHistoryModel(store, 100, 30, true)
	if len(m.results) != 2 || m.results[0].Player != "bob" {
		t.Fatalf("top results = %+v", m.results)
	}

	view := m.View()
	for _, want := range []string{"TOP SESSIONS", "alice", "1,200"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = next.(HistoryModel)
	if m.top {
		t.Error("tab should switch to recent results")
	}
	if !strings.Contains(m.View(), "RECENT SESSIONS") {
		t.Error("view should show the recent title")
	}
}

func TestHistoryModelEmpty(t *testing.T) {
	m := NewHistoryModel(nil, 80, 24, false)
	if !strings.Contains(m.View(), "No sessions recorded yet.") {
		t.Error("empty history should say so")
	}

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if cmd == nil || next.(HistoryModel).View() != "" {
		t.Error("esc should quit")
	}
}
