package engine

import (
	"errors"

	"github.com/vovakirdan/straight-to-the-comments/internal/core"
)

var (
	// ErrUnknownStyle is returned for a style key outside the catalog.
	ErrUnknownStyle = errors.New("engine: unknown style")

	// ErrSessionComplete is returned when a pick arrives after the last round.
	ErrSessionComplete = errors.New("engine: session already complete")
)

// Pick is one history entry: the style chosen on a platform.
type Pick struct {
	Platform PlatformKey
	Style    StyleKey
}

// State is a snapshot of one play session. The zero value is a fresh session.
// A State is only advanced by PickStyle, which returns a new value and never
// touches the one it was given.
type State struct {
	round     int
	likes     int
	footprint int
	history   []Pick
	ledger    ledger
	finished  bool
}

// NewState returns a fresh session at round 0 with all scores at zero.
func NewState() State {
	return State{}
}

// Round returns the 0-indexed current round. It stays on the last round once
// the session is finished.
func (s State) Round() int { return s.round }

// Likes returns the visible score.
func (s State) Likes() int { return s.likes }

// Footprint returns the hidden reputation score in [-100, 100].
func (s State) Footprint() int { return s.footprint }

// Finished reports whether all rounds have been played.
func (s State) Finished() bool { return s.finished }

// Platform returns the platform of the current round.
func (s State) Platform() Platform { return PlatformForRound(s.round) }

// History returns a copy of the picks made so far.
func (s State) History() []Pick {
	out := make([]Pick, len(s.history))
	copy(out, s.history)
	return out
}

// Blocked returns the platforms that blocked the player, in blocking order.
func (s State) Blocked() []PlatformKey {
	out := make([]PlatformKey, len(s.ledger.blocked))
	copy(out, s.ledger.blocked)
	return out
}

// IsBlocked reports whether a platform has blocked the player.
func (s State) IsBlocked(p PlatformKey) bool { return s.ledger.isBlocked(p) }

// Toxicity returns the accumulated negative footprint on a platform.
func (s State) Toxicity(p PlatformKey) int { return s.ledger.toxicity[p] }

// Meter returns the footprint on the 0-100 display scale.
func (s State) Meter() float64 { return Meter(s.footprint) }

// RoundResult describes how a single pick was scored.
type RoundResult struct {
	Round          int // round the pick was made in
	Platform       Platform
	Style          StyleKey
	RawDelta       int  // like delta before throttling
	Throttled      bool // platform had already blocked the player
	LikesGained    int  // amount actually added to likes
	FootprintDelta int
	Toxicity       int // platform toxicity after the pick
	NewlyBlocked   bool
	Finished       bool
}

// PickStyle plays the current round with the given style and returns the
// next state. Scoring reads the footprint, history and block list from
// before the pick; the platform that crosses the block threshold is only
// throttled from its next pick on.
func PickStyle(s State, style StyleKey) (State, RoundResult, error) {
	if s.finished {
		return s, RoundResult{}, ErrSessionComplete
	}
	sc, err := ScoreFor(style)
	if err != nil {
		return s, RoundResult{}, err
	}

	platform := PlatformForRound(s.round)
	res := RoundResult{Round: s.round, Platform: platform, Style: style}

	delta, err := ComputeLikeDelta(style, s.footprint, s.history)
	if err != nil {
		return s, RoundResult{}, err
	}
	res.RawDelta = delta
	if s.ledger.isBlocked(platform.Key) {
		delta = throttle(delta)
		res.Throttled = true
	}

	next := State{
		round:     s.round,
		likes:     max(0, s.likes+max(0, delta)),
		footprint: core.Clamp(s.footprint+sc.FootprintDelta, MinFootprint, MaxFootprint),
		history:   make([]Pick, len(s.history), len(s.history)+1),
		ledger:    s.ledger.clone(),
	}
	res.LikesGained = next.likes - s.likes
	res.FootprintDelta = sc.FootprintDelta

	res.NewlyBlocked = next.ledger.record(platform.Key, sc.FootprintDelta)
	res.Toxicity = next.ledger.toxicity[platform.Key]

	copy(next.history, s.history)
	next.history = append(next.history, Pick{Platform: platform.Key, Style: style})

	if s.round+1 >= Rounds {
		next.finished = true
	} else {
		next.round = s.round + 1
	}
	res.Finished = next.finished

	return next, res, nil
}

// Reset discards a session and returns a fresh one for a replay.
func Reset() State {
	return NewState()
}
