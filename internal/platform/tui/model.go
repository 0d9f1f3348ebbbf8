package tui

import (
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/straight-to-the-comments/internal/core"
	"github.com/vovakirdan/straight-to-the-comments/internal/dialogue"
	"github.com/vovakirdan/straight-to-the-comments/internal/engine"
	"github.com/vovakirdan/straight-to-the-comments/internal/storage"
)

// SessionObserver is notified as sessions progress.
type SessionObserver interface {
	SessionStarted()
	RoundResolved(res engine.RoundResult)
	SessionFinished(sum engine.Summary)
}

// Model is the Bubble Tea model for one session.
type Model struct {
	state    engine.State
	last     *engine.RoundResult // pick shown while the round is paused
	exchange *dialogue.Exchange
	pending  bool // pacing delay running, input ignored
	seq      int
	err      error

	selector  *dialogue.Selector
	store     *storage.Store
	logger    *log.Logger
	observer  SessionObserver
	config    core.RuntimeConfig
	player    string
	sessionID string
	saved     bool // result for the current session already recorded

	cursor   int
	keys     GameKeyMap
	help     help.Model
	quitting bool
}

// NewModel creates a session model. store and logger may be nil.
func NewModel(table dialogue.Table, store *storage.Store, cfg core.RuntimeConfig, player string, logger *log.Logger) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}
	if player == "" {
		player = "you"
	}

	keys := DefaultGameKeyMap()
	keys.setMode(true, false)

	return Model{
		state:     engine.NewState(),
		selector:  dialogue.NewSelector(table, rand.New(rand.NewSource(cfg.Seed))),
		store:     store,
		logger:    logger,
		config:    cfg,
		player:    player,
		sessionID: uuid.NewString(),
		keys:      keys,
		help:      help.New(),
	}
}

// WithObserver returns a copy of the model reporting to o.
func (m Model) WithObserver(o SessionObserver) Model {
	m.observer = o
	return m
}

// Init starts the model. Rounds are driven by key presses only.
func (m Model) Init() tea.Cmd {
	m.logger.Debug("session started", "player", m.player, "session", m.sessionID)
	if m.observer != nil {
		m.observer.SessionStarted()
	}
	return nil
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case advanceMsg:
		return m.handleAdvance(msg)
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Quit) {
		m.quitting = true
		return m, tea.Quit
	}

	if m.showingResults() {
		if key.Matches(msg, m.keys.Replay) {
			m.replay()
		}
		return m, nil
	}
	if m.pending {
		return m, nil
	}

	if style, ok := m.keys.styleFor(msg); ok {
		return m.pick(style)
	}

	count := len(m.keys.Styles)
	switch {
	case key.Matches(msg, m.keys.Up):
		m.cursor = moveCursor(m.cursor, 0, -1, count)
	case key.Matches(msg, m.keys.Down):
		m.cursor = moveCursor(m.cursor, 0, 1, count)
	case key.Matches(msg, m.keys.Left):
		m.cursor = moveCursor(m.cursor, -1, 0, count)
	case key.Matches(msg, m.keys.Right):
		m.cursor = moveCursor(m.cursor, 1, 0, count)
	case key.Matches(msg, m.keys.Select):
		return m.pick(engine.Styles()[m.cursor].Key)
	}

	return m, nil
}

// pick plays the current round and starts the pacing delay.
func (m Model) pick(style engine.StyleKey) (tea.Model, tea.Cmd) {
	next, res, err := engine.PickStyle(m.state, style)
	if err != nil {
		m.err = err
		m.logger.Warn("pick rejected", "style", style, "error", err)
		return m, nil
	}
	m.state = next
	m.last = &res
	m.err = nil

	if ex, err := m.selector.Select(res.Platform.Key, style); err != nil {
		m.exchange = nil
		m.logger.Warn("no dialogue for pick", "platform", res.Platform.Key, "style", style, "error", err)
	} else {
		m.exchange = &ex
	}

	m.logger.Debug("round resolved",
		"session", m.sessionID,
		"round", res.Round+1,
		"platform", res.Platform.Key,
		"style", style,
		"raw", res.RawDelta,
		"throttled", res.Throttled,
		"gained", res.LikesGained,
		"likes", next.Likes(),
		"footprint", next.Footprint(),
		"toxicity", res.Toxicity,
	)
	if res.NewlyBlocked {
		m.logger.Info("platform blocked player", "player", m.player, "platform", res.Platform.Key)
	}
	if m.observer != nil {
		m.observer.RoundResolved(res)
	}
	// Recorded now so quitting during the final pause keeps the result
	if next.Finished() {
		m.saveResult()
	}

	m.pending = true
	m.seq++
	m.keys.setMode(false, false)
	return m, paceCmd(m.config.Pace, m.seq)
}

// handleAdvance ends the pause after a pick.
func (m Model) handleAdvance(msg advanceMsg) (tea.Model, tea.Cmd) {
	if !m.pending || msg.seq != m.seq {
		return m, nil
	}
	m.pending = false

	if m.state.Finished() {
		m.keys.setMode(false, true)
		return m, nil
	}

	m.last = nil
	m.exchange = nil
	m.keys.setMode(true, false)
	return m, nil
}

// saveResult records the finished session once.
func (m *Model) saveResult() {
	if m.saved {
		return
	}
	m.saved = true

	sum := engine.Summarize(m.state)
	m.logger.Info("session finished",
		"player", m.player,
		"session", m.sessionID,
		"likes", sum.Likes,
		"footprint", sum.Footprint,
		"rating", sum.Rating,
		"blocked", len(sum.Blocked),
	)
	if m.observer != nil {
		m.observer.SessionFinished(sum)
	}

	if m.store == nil {
		return
	}
	if _, err := m.store.SaveResult(storage.NewResult(m.sessionID, m.player, sum, m.state.History())); err != nil {
		m.logger.Warn("could not save result", "session", m.sessionID, "error", err)
	}
}

// replay discards the finished session and starts a new one.
func (m *Model) replay() {
	m.state = engine.Reset()
	m.last = nil
	m.exchange = nil
	m.pending = false
	m.seq++
	m.err = nil
	m.saved = false
	m.cursor = 0
	m.sessionID = uuid.NewString()
	m.keys.setMode(true, false)
	m.logger.Debug("session restarted", "player", m.player, "session", m.sessionID)
	if m.observer != nil {
		m.observer.SessionStarted()
	}
}

// showingResults reports whether the results screen is up.
func (m Model) showingResults() bool {
	return m.state.Finished() && !m.pending
}

// State returns the current engine state.
func (m Model) State() engine.State {
	return m.state
}

// SessionID returns the identifier of the current session.
func (m Model) SessionID() string {
	return m.sessionID
}

// Run starts the Bubble Tea program with a new session model.
func Run(table dialogue.Table, store *storage.Store, cfg core.RuntimeConfig, player string, logger *log.Logger) error {
	model := NewModel(table, store, cfg, player, logger)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
