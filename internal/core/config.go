package core

import "time"

// RuntimeConfig carries the per-run values a front end needs to host a
// session: terminal size, dialogue RNG seed and round pacing.
type RuntimeConfig struct {
	ScreenW int           // Screen width in characters
	ScreenH int           // Screen height in characters
	Seed    int64         // RNG seed for dialogue variant selection
	Pace    time.Duration // Delay before the next round becomes interactive
}

// DefaultPace is the delay between a pick and the next interactive round.
const DefaultPace = 900 * time.Millisecond

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW: 80,
		ScreenH: 24,
		Seed:    0, // 0 means use current time in platform layer
		Pace:    DefaultPace,
	}
}
